package assets

import (
	"sync"

	"github.com/anvil-engine/anvil/engine/systems"
)

// Context owns everything the loader needs for one asset type: the cache
// of in-flight and resolved futures, the store category its bytes live
// under and the final data-to-asset conversion.
type Context[D, A any] interface {
	// Category is the label handed to stores when fetching bytes for
	// this asset type.
	Category() string
	// CreateAsset converts parsed data into the final asset. It runs on
	// a pool worker and may dispatch further pool work.
	CreateAsset(data D, pool *systems.JobSystem) (A, error)
	// Retrieve probes the cache. It returns false on a miss.
	Retrieve(spec AssetSpec) (AssetFuture[A], bool)
	// Cache inserts or replaces the cache slot for spec.
	Cache(spec AssetSpec, future AssetFuture[A])
}

// Cache is a ready-made future table for Contexts to embed; it satisfies
// the Retrieve/Cache half of the Context interface. Entries live as long
// as the cache itself, nothing is ever evicted.
type FutureCache[A any] struct {
	mutex   sync.RWMutex
	entries map[AssetSpec]AssetFuture[A]
}

func (c *FutureCache[A]) Retrieve(spec AssetSpec) (AssetFuture[A], bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	future, ok := c.entries[spec]
	return future, ok
}

func (c *FutureCache[A]) Cache(spec AssetSpec, future AssetFuture[A]) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.entries == nil {
		c.entries = make(map[AssetSpec]AssetFuture[A])
	}
	c.entries[spec] = future
}

// Len reports how many specs currently have a cache slot.
func (c *FutureCache[A]) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.entries)
}
