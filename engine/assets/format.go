package assets

import "github.com/anvil-engine/anvil/engine/systems"

// Format parses the raw bytes of one file extension into the intermediate
// data a Context turns into the final asset. Formats hold no shared
// mutable state between calls; Parse may farm sub-work out to the pool.
type Format[D any] interface {
	// Extension returns the file extension this format is responsible
	// for. It is used, not derived, when specs are built.
	Extension() string
	Parse(b []byte, pool *systems.JobSystem) (D, error)
}
