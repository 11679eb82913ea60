package browser

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/letterdesk/letterdesk/pkg/types/v1"
)

func TestCountsByType(t *testing.T) {
	// 3 incoming + 2 outgoing, all the same type.
	letters := append(
		testCollection(3, v1.DirectionIncoming, v1.LetterTypeOfficial),
		testCollection(2, v1.DirectionOutgoing, v1.LetterTypeOfficial)...,
	)

	c := NewCounts()
	byType := c.ByType(letters, TypeAll)

	assert.Equal(t, 5, byType[TypeAll])
	assert.Equal(t, 5, byType[string(v1.LetterTypeOfficial)])
	assert.Equal(t, 0, byType[string(v1.LetterTypeMemo)])
	assert.Equal(t, 0, byType[string(v1.LetterTypeInvitation)])
	assert.Equal(t, 0, byType[string(v1.LetterTypeCircular)])

	// ALL is the collection size, so the per-type counts sum to it.
	sum := 0
	for k, n := range byType {
		if k != TypeAll {
			sum += n
		}
	}
	assert.Equal(t, byType[TypeAll], sum)
}

func TestCountsByDirectionScopedToTypeFilterOnly(t *testing.T) {
	letters := append(
		testCollection(3, v1.DirectionIncoming, v1.LetterTypeOfficial),
		testCollection(2, v1.DirectionOutgoing, v1.LetterTypeMemo)...,
	)

	c := NewCounts()

	byDir := c.ByDirection(letters, TypeAll)
	assert.Equal(t, 3, byDir[v1.DirectionIncoming])
	assert.Equal(t, 2, byDir[v1.DirectionOutgoing])

	byDir = c.ByDirection(letters, string(v1.LetterTypeMemo))
	assert.Equal(t, 0, byDir[v1.DirectionIncoming])
	assert.Equal(t, 2, byDir[v1.DirectionOutgoing])

	// The direction split always totals the count of records matching the
	// type filter, regardless of any search or date filters in play.
	byType := c.ByType(letters, string(v1.LetterTypeMemo))
	assert.Equal(t, byType[string(v1.LetterTypeMemo)],
		byDir[v1.DirectionIncoming]+byDir[v1.DirectionOutgoing])
}

func TestCountsMemoization(t *testing.T) {
	letters := testCollection(10, v1.DirectionIncoming, v1.LetterTypeOfficial)

	c := NewCounts()
	first := c.ByType(letters, TypeAll)
	second := c.ByType(letters, TypeAll)
	// Same inputs, cached map identity.
	assert.Equal(t, reflect.ValueOf(first).Pointer(), reflect.ValueOf(second).Pointer())

	// Changing either input recomputes immediately.
	shrunk := letters[:4]
	assert.Equal(t, 4, c.ByType(shrunk, TypeAll)[TypeAll])
	assert.Equal(t, 4, c.ByDirection(shrunk, TypeAll)[v1.DirectionIncoming])
}

func TestCountsEmptyCollection(t *testing.T) {
	c := NewCounts()

	byType := c.ByType(nil, TypeAll)
	assert.Equal(t, 0, byType[TypeAll])

	byDir := c.ByDirection(nil, TypeAll)
	assert.Equal(t, 0, byDir[v1.DirectionIncoming])
	assert.Equal(t, 0, byDir[v1.DirectionOutgoing])
}
