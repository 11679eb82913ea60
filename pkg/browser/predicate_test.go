package browser

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letterdesk/letterdesk/pkg/types/v1"
)

var testDay = time.Date(2025, 2, 14, 10, 30, 0, 0, time.UTC)

func testLetter(id string, dir v1.Direction, t v1.LetterType, received time.Time) *v1.Letter {
	return &v1.Letter{
		ID:             v1.ID(id),
		Direction:      dir,
		Type:           t,
		AgendaNumber:   "AG/" + id,
		DocumentNumber: "DOC/" + id,
		Subject:        "subject " + id,
		Origin:         "origin " + id,
		Destination:    "destination " + id,
		ReceivedAt:     received,
		LetterDate:     received.AddDate(0, 0, -1),
	}
}

func testCollection(n int, dir v1.Direction, t v1.LetterType) []*v1.Letter {
	out := make([]*v1.Letter, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, testLetter(fmt.Sprintf("%03d", i), dir, t, testDay.Add(-time.Duration(i)*time.Hour)))
	}
	return out
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func incomingCriteria() Criteria {
	return Criteria{Type: TypeAll, Direction: v1.DirectionIncoming}
}

func TestMatchesIsConjunctionOfIndependentPredicates(t *testing.T) {
	letters := []*v1.Letter{
		testLetter("a", v1.DirectionIncoming, v1.LetterTypeOfficial, testDay),
		testLetter("b", v1.DirectionOutgoing, v1.LetterTypeMemo, testDay.AddDate(0, -1, 0)),
		testLetter("c", v1.DirectionIncoming, v1.LetterTypeCircular, testDay.AddDate(0, 0, -10)),
	}

	criteria := []Criteria{
		{Type: TypeAll, Direction: v1.DirectionIncoming},
		{Type: string(v1.LetterTypeMemo), Direction: v1.DirectionOutgoing},
		{Type: TypeAll, Direction: v1.DirectionIncoming, Query: "subject a"},
		{Type: TypeAll, Direction: v1.DirectionIncoming, DateFrom: datePtr(2025, 2, 10), DateTo: datePtr(2025, 2, 20)},
		{Type: string(v1.LetterTypeCircular), Direction: v1.DirectionIncoming, Query: "c", DateFrom: datePtr(2025, 1, 1)},
	}

	for _, c := range criteria {
		for _, l := range letters {
			want := matchesType(l, c.Type) &&
				l.Direction == c.Direction &&
				matchesQuery(l, c.Query) &&
				matchesDateRange(l, c.DateFrom, c.DateTo)
			assert.Equal(t, want, Matches(l, c), "letter %s criteria %+v", l.ID, c)
		}
	}
}

func TestMatchesQueryFields(t *testing.T) {
	l := testLetter("x", v1.DirectionIncoming, v1.LetterTypeOfficial, testDay)
	l.DispositionContent = "prepare the annual budget review"
	l.DispositionTargets = []v1.DispositionTarget{v1.TargetTreasurer}
	l.Attachments = []v1.Attachment{{Filename: "minutes-2025.pdf", StorageKey: "att/1"}}

	c := incomingCriteria()

	// A match through a single field is enough, here the disposition
	// content, which no other field contains.
	c.Query = "budget"
	assert.True(t, Matches(l, c))

	// Human-readable enum labels are searchable.
	c.Query = "official letter"
	assert.True(t, Matches(l, c))
	c.Query = "treasurer"
	assert.True(t, Matches(l, c))

	// Attachment filenames are searchable.
	c.Query = "minutes-2025"
	assert.True(t, Matches(l, c))

	// Case-insensitive substring, not fuzzy.
	c.Query = "BUDGET"
	assert.True(t, Matches(l, c))
	c.Query = "bdgt"
	assert.False(t, Matches(l, c))

	// Blank queries mean no search is active.
	c.Query = "   "
	assert.True(t, Matches(l, c))
}

func TestMatchesQueryNormalizesDiacritics(t *testing.T) {
	l := testLetter("x", v1.DirectionIncoming, v1.LetterTypeOfficial, testDay)
	l.Origin = "Région Café"

	c := incomingCriteria()
	c.Query = "region cafe"
	assert.True(t, Matches(l, c))
}

func TestMatchesDateRangeInclusiveBounds(t *testing.T) {
	received := time.Date(2025, 2, 10, 23, 45, 0, 0, time.UTC)
	l := testLetter("x", v1.DirectionIncoming, v1.LetterTypeOfficial, received)

	c := incomingCriteria()

	// Bounds normalize to start of day / end of day, so a letter received
	// late on the boundary day is still inside.
	c.DateFrom = datePtr(2025, 2, 10)
	c.DateTo = datePtr(2025, 2, 10)
	assert.True(t, Matches(l, c))

	c.DateFrom = datePtr(2025, 2, 11)
	c.DateTo = nil
	assert.False(t, Matches(l, c))

	c.DateFrom = nil
	c.DateTo = datePtr(2025, 2, 9)
	assert.False(t, Matches(l, c))
}

func TestInvertedDateRangeMatchesNothing(t *testing.T) {
	letters := testCollection(20, v1.DirectionIncoming, v1.LetterTypeOfficial)

	f := NewFilter(v1.DirectionIncoming)
	f.SetDateFrom(datePtr(2025, 2, 10))
	f.SetDateTo(datePtr(2025, 2, 1))

	require.NotPanics(t, func() {
		assert.Empty(t, f.Apply(letters))
	})
}
