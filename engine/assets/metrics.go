package assets

import "sync/atomic"

// Metrics counts loader activity. Counters only ever grow; they exist for
// logging and for verifying that de-duplication actually de-duplicates.
type Metrics struct {
	dispatches atomic.Uint64
	cacheHits  atomic.Uint64
	reloads    atomic.Uint64
}

// Dispatches is the number of pipelines handed to the pool, reloads included.
func (m *Metrics) Dispatches() uint64 {
	return m.dispatches.Load()
}

// CacheHits is the number of loads answered from the cache without dispatch.
func (m *Metrics) CacheHits() uint64 {
	return m.cacheHits.Load()
}

// Reloads is the number of reload calls, each of which also dispatched.
func (m *Metrics) Reloads() uint64 {
	return m.reloads.Load()
}
