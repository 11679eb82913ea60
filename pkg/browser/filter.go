package browser

import (
	"time"

	"github.com/letterdesk/letterdesk/pkg/types/v1"
)

// TypeAll is the synthetic letter-type filter value matching every type.
const TypeAll = "ALL"

// Criteria is the active filter state. The zero value matches nothing
// useful; construct through NewFilter.
type Criteria struct {
	Type      string // TypeAll or a v1.LetterType value
	Direction v1.Direction
	Query     string
	DateFrom  *time.Time
	DateTo    *time.Time
}

func (c Criteria) equal(o Criteria) bool {
	return c.Type == o.Type &&
		c.Direction == o.Direction &&
		c.Query == o.Query &&
		timePtrEqual(c.DateFrom, o.DateFrom) &&
		timePtrEqual(c.DateTo, o.DateTo)
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// Filter owns the criteria and derives the filtered result set. Apply is
// memoized on (collection, criteria) so repeated renders against unchanged
// inputs do not rescan the collection.
type Filter struct {
	criteria Criteria

	memoIn   []*v1.Letter
	memoCrit Criteria
	memoOut  []*v1.Letter
	memoOK   bool
}

func NewFilter(defaultDirection v1.Direction) *Filter {
	return &Filter{
		criteria: Criteria{
			Type:      TypeAll,
			Direction: defaultDirection,
		},
	}
}

func (f *Filter) Criteria() Criteria {
	return f.criteria
}

func (f *Filter) SetType(t string) {
	f.criteria.Type = t
}

func (f *Filter) SetDirection(d v1.Direction) {
	f.criteria.Direction = d
}

// SetQuery replaces the free-text query. Callers should hand in the
// debounced value, not the raw keystroke stream.
func (f *Filter) SetQuery(q string) {
	f.criteria.Query = q
}

func (f *Filter) SetDateFrom(t *time.Time) {
	f.criteria.DateFrom = t
}

func (f *Filter) SetDateTo(t *time.Time) {
	f.criteria.DateTo = t
}

// ResetFilters clears the transient filters (query and date bounds) but
// keeps type and direction: those are primary navigation, not filters the
// user expects a reset to touch.
func (f *Filter) ResetFilters() {
	f.criteria.Query = ""
	f.criteria.DateFrom = nil
	f.criteria.DateTo = nil
}

// Apply returns the letters matching the current criteria, preserving the
// relative order of the input collection. The result is cached and only
// recomputed when the collection or criteria change.
func (f *Filter) Apply(collection []*v1.Letter) []*v1.Letter {
	if f.memoOK && sameCollection(f.memoIn, collection) && f.memoCrit.equal(f.criteria) {
		return f.memoOut
	}

	out := make([]*v1.Letter, 0, len(collection))
	for _, l := range collection {
		if Matches(l, f.criteria) {
			out = append(out, l)
		}
	}

	f.memoIn = collection
	f.memoCrit = f.criteria
	f.memoOut = out
	f.memoOK = true
	return out
}

// sameCollection is a cheap identity check: snapshots are replaced
// wholesale, never patched, so slice identity is a sound cache key.
func sameCollection(a, b []*v1.Letter) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
