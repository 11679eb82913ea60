package registry

import (
	"fmt"

	"github.com/letterdesk/letterdesk/pkg/types/v1"
)

var (
	ErrNoLetterFound = fmt.Errorf("no letter found")
)

// Store is the boundary to whatever holds the registry data. The browser
// only ever consumes complete snapshots from it; it never paginates or
// patches at the source.
type Store interface {
	// Snapshot returns every active (non-deleted) letter, newest first.
	// Each call returns a fresh slice, which downstream caches key on.
	Snapshot() ([]*v1.Letter, error)
	// Trash returns the soft-deleted letters, newest first.
	Trash() ([]*v1.Letter, error)
	Get(v1.ID) (*v1.Letter, error)
	Count() int

	// SoftDelete and Restore are the bulk mutation collaborators. Callers
	// are expected to clear their selection and pull a fresh Snapshot
	// once either returns, success or failure.
	SoftDelete(ids ...v1.ID) error
	Restore(ids ...v1.ID) error

	// Watch delivers a signal whenever the underlying data changed and a
	// fresh Snapshot should be pulled.
	Watch() <-chan struct{}

	Path() string
	Validate() error
}

// Exporter receives the filtered sequence by reference for spreadsheet/CSV
// formatting. The format itself is the exporter's business; the browser
// only supplies the ordered records.
type Exporter interface {
	Export(letters []*v1.Letter) (string, error)
}
