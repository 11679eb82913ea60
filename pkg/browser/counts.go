package browser

import (
	"github.com/letterdesk/letterdesk/pkg/types/v1"
)

// Counts derives the header badge numbers. Both aggregates are deliberately
// independent of the search and date filters so the badges show what is
// available before narrowing further:
//
//   - ByType counts the full collection per letter type, plus TypeAll.
//   - ByDirection counts incoming/outgoing over the subset matching only
//     the current type filter.
//
// Results are memoized on (collection, type filter) and recomputed the
// moment either changes.
type Counts struct {
	memoIn   []*v1.Letter
	memoType string
	memoOK   bool

	byType      map[string]int
	byDirection map[v1.Direction]int
}

func NewCounts() *Counts {
	return &Counts{}
}

func (c *Counts) ByType(collection []*v1.Letter, typeFilter string) map[string]int {
	c.ensure(collection, typeFilter)
	return c.byType
}

func (c *Counts) ByDirection(collection []*v1.Letter, typeFilter string) map[v1.Direction]int {
	c.ensure(collection, typeFilter)
	return c.byDirection
}

func (c *Counts) ensure(collection []*v1.Letter, typeFilter string) {
	if c.memoOK && sameCollection(c.memoIn, collection) && c.memoType == typeFilter {
		return
	}

	byType := map[string]int{TypeAll: len(collection)}
	for _, t := range v1.LetterTypes {
		byType[string(t)] = 0
	}
	byDirection := map[v1.Direction]int{
		v1.DirectionIncoming: 0,
		v1.DirectionOutgoing: 0,
	}

	for _, l := range collection {
		byType[string(l.Type)]++
		if matchesType(l, typeFilter) {
			byDirection[l.Direction]++
		}
	}

	c.memoIn = collection
	c.memoType = typeFilter
	c.memoOK = true
	c.byType = byType
	c.byDirection = byDirection
}
