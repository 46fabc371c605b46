package assets

import (
	"os"
	"path/filepath"

	"github.com/anvil-engine/anvil/engine/core"
)

// Store is a byte source for assets. Stores are selected by name at load
// time and must be safe for concurrent use: Load runs on a pool worker
// and may block there.
type Store interface {
	// StoreID returns the stable id baked into every spec built against
	// this store.
	StoreID() uint32
	// Load fetches the raw bytes of an asset within the given category.
	Load(category, name, extension string) ([]byte, error)
}

// Directory is the default store: a directory tree where an asset lives
// at <root>/<category>/<name>.<extension>.
type Directory struct {
	id   uint32
	root string
}

func NewDirectory(alloc *core.Allocator, root string) *Directory {
	d := &Directory{root: root}
	d.id = alloc.AcquireID(d)
	return d
}

func (d *Directory) StoreID() uint32 {
	return d.id
}

// Path resolves the on-disk location of an asset.
func (d *Directory) Path(category, name, extension string) string {
	return filepath.Join(d.root, category, name+"."+extension)
}

func (d *Directory) Load(category, name, extension string) ([]byte, error) {
	return os.ReadFile(d.Path(category, name, extension))
}
