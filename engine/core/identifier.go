package core

import (
	"fmt"
	"sync"
)

// Allocator hands out small stable uint32 ids, reusing released slots.
// One allocator instance defines one id scope, e.g. the stores of a
// single asset loader.
type Allocator struct {
	mutex  sync.Mutex
	owners []interface{}
}

func NewAllocator() *Allocator {
	return &Allocator{
		owners: make([]interface{}, 0, 8),
	}
}

// AcquireID takes the first free slot, pushing a new one when none is free.
func (a *Allocator) AcquireID(owner interface{}) uint32 {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	for i := 0; i < len(a.owners); i++ {
		// Existing free spot. Take it.
		if a.owners[i] == nil {
			a.owners[i] = owner
			return uint32(i)
		}
	}

	// If here, no existing free slots. Need a new id, so push one.
	a.owners = append(a.owners, owner)
	return uint32(len(a.owners) - 1)
}

// ReleaseID zeroes out the entry, making the id available for reuse.
func (a *Allocator) ReleaseID(id uint32) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if id >= uint32(len(a.owners)) {
		return fmt.Errorf("allocator: id '%d' out of range (max=%d). Nothing was done", id, len(a.owners))
	}
	a.owners[id] = nil
	return nil
}
