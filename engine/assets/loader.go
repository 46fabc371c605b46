package assets

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/anvil-engine/anvil/engine/core"
	"github.com/anvil-engine/anvil/engine/systems"
)

// contextEntry pairs a registered context with the mutex that makes its
// cache probe and insert one critical section across concurrent loads.
type contextEntry struct {
	mutex   sync.Mutex
	context interface{}
}

// Loader holds the registered per-asset-type contexts, the named stores,
// the default directory store and the pool that runs load pipelines.
// Registration happens once at startup; loads may come from any goroutine.
type Loader struct {
	mutex     sync.RWMutex
	contexts  map[reflect.Type]*contextEntry
	directory *Directory
	stores    map[string]Store
	pool      *systems.JobSystem
	metrics   Metrics
}

// NewLoader creates a loader whose default store is a directory store
// rooted at the given path.
func NewLoader(alloc *core.Allocator, directory string, pool *systems.JobSystem) *Loader {
	return &Loader{
		contexts:  make(map[reflect.Type]*contextEntry),
		directory: NewDirectory(alloc, directory),
		stores:    make(map[string]Store),
		pool:      pool,
	}
}

// AddStore registers a store which can later be loaded from by supplying
// the same name to LoadFrom or Reload.
func (l *Loader) AddStore(name string, store Store) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.stores[name] = store
	core.LogDebug("loader: added store '%s' with id %d", name, store.StoreID())
}

// Metrics exposes the loader's activity counters.
func (l *Loader) Metrics() *Metrics {
	return &l.metrics
}

// store resolves a store name, the empty name selecting the default
// directory store. An unknown name is a wiring bug and panics.
func (l *Loader) store(name string) Store {
	if name == "" {
		return l.directory
	}

	l.mutex.RLock()
	defer l.mutex.RUnlock()

	store, ok := l.stores[name]
	if !ok {
		known := maps.Keys(l.stores)
		slices.Sort(known)
		panic(fmt.Sprintf("assets: no store named '%s'. Maybe you forgot to add it with Loader.AddStore? (known stores: %v)", name, known))
	}
	return store
}

func (l *Loader) entry(assetType reflect.Type) *contextEntry {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.contexts[assetType]
}

// Register associates a context with its asset type. It must be called
// before the first load of that type; there is no unregistration.
func Register[D, A any](l *Loader, context Context[D, A]) {
	assetType := reflect.TypeOf((*A)(nil)).Elem()

	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.contexts[assetType] = &contextEntry{context: context}
	core.LogDebug("loader: registered context for asset type %s (category '%s')", assetType, context.Category())
}

// contextFor resolves the entry registered for A. Loading an asset type
// that was never registered is a wiring bug and panics before any
// pipeline is dispatched.
func contextFor[A, D any](l *Loader) (*contextEntry, Context[D, A]) {
	assetType := reflect.TypeOf((*A)(nil)).Elem()

	entry := l.entry(assetType)
	if entry == nil {
		panic(fmt.Sprintf("assets: asset type %s needs to be registered with assets.Register before loading", assetType))
	}
	context, ok := entry.context.(Context[D, A])
	if !ok {
		panic(fmt.Sprintf("assets: context registered for %s does not build it from %s data", assetType, reflect.TypeOf((*D)(nil)).Elem()))
	}
	return entry, context
}

// Load loads an asset with the given format from the default directory
// store. The actual work is done on a pool worker; the returned future is
// immediately pollable.
func Load[A, D any](l *Loader, name string, format Format[D]) AssetFuture[A] {
	return LoadFrom[A](l, name, format, "")
}

// LoadFrom loads an asset from the named store, "" selecting the default
// store. Repeating a load for one spec returns the already-cached future,
// even while it is still in flight; dispatched work is never duplicated.
// Panics if the asset type or the store name was never registered.
func LoadFrom[A, D any](l *Loader, name string, format Format[D], storeName string) AssetFuture[A] {
	entry, context := contextFor[A, D](l)
	store := l.store(storeName)

	return loadAsset(l, entry, context, format, name, store)
}

// Reload is LoadFrom without the cache probe: it always dispatches a new
// pipeline and replaces the cache slot. Futures handed out earlier keep
// their original resolution.
func Reload[A, D any](l *Loader, name string, format Format[D], storeName string) AssetFuture[A] {
	entry, context := contextFor[A, D](l)
	store := l.store(storeName)
	spec := NewAssetSpec(name, format.Extension(), store.StoreID())

	entry.mutex.Lock()
	defer entry.mutex.Unlock()

	l.metrics.reloads.Add(1)
	return loadAssetInner(l, context, format, spec, store)
}

// loadAsset returns the cached future for the resolved spec, or
// dispatches a fresh pipeline on a miss. Probe and insert run under one
// lock so a concurrent load of the same spec can never sneak a second
// dispatch in between.
func loadAsset[D, A any](l *Loader, entry *contextEntry, context Context[D, A], format Format[D], name string, store Store) AssetFuture[A] {
	spec := NewAssetSpec(name, format.Extension(), store.StoreID())

	entry.mutex.Lock()
	defer entry.mutex.Unlock()

	if future, ok := context.Retrieve(spec); ok {
		l.metrics.cacheHits.Add(1)
		core.LogDebug("loader: cache hit for %s", spec)
		return future
	}
	return loadAssetInner(l, context, format, spec, store)
}

// loadAssetInner dispatches the fetch/parse/create pipeline as one unit
// of pool work and caches the future before returning it, so later loads
// of the same spec observe it even mid-flight. Callers hold the context
// entry's mutex.
func loadAssetInner[D, A any](l *Loader, context Context[D, A], format Format[D], spec AssetSpec, store Store) AssetFuture[A] {
	dispatchID := uuid.New()
	l.metrics.dispatches.Add(1)
	core.LogDebug("loader: dispatching pipeline %s for %s", dispatchID, spec)

	pool := l.pool
	future := Spawn(pool, func() (A, error) {
		var zero A

		b, err := store.Load(context.Category(), spec.Name, spec.Extension)
		if err != nil {
			core.LogError("loader: pipeline %s failed fetching %s: %v", dispatchID, spec, err)
			return zero, newAssetError(spec, StageStorage, err)
		}

		data, err := format.Parse(b, pool)
		if err != nil {
			core.LogError("loader: pipeline %s failed parsing %s: %v", dispatchID, spec, err)
			return zero, newAssetError(spec, StageFormat, err)
		}

		asset, err := context.CreateAsset(data, pool)
		if err != nil {
			core.LogError("loader: pipeline %s failed creating %s: %v", dispatchID, spec, err)
			return zero, newAssetError(spec, StageAsset, err)
		}
		return asset, nil
	})

	context.Cache(spec, future)
	return future
}
