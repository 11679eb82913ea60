package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/letterdesk/letterdesk/pkg/types/v1"
)

func TestPaginationCoverage(t *testing.T) {
	letters := testCollection(57, v1.DirectionIncoming, v1.LetterTypeOfficial)

	for _, pageSize := range []int{1, 7, 25, 50, 100} {
		p := NewPaginator(pageSize)

		var seen []*v1.Letter
		view := p.Paginate(letters)
		for page := 1; page <= view.TotalPages; page++ {
			p.SetPage(page)
			view = p.Paginate(letters)
			seen = append(seen, view.Items...)
		}

		// Concatenating every page reproduces the sequence exactly, with
		// no duplicates or omissions.
		assert.Len(t, seen, len(letters), "pageSize %d", pageSize)
		for i := range seen {
			assert.Same(t, letters[i], seen[i], "pageSize %d index %d", pageSize, i)
		}
	}
}

func TestPaginationClampAndDisplayBounds(t *testing.T) {
	letters := testCollection(57, v1.DirectionIncoming, v1.LetterTypeOfficial)

	p := NewPaginator(25)
	view := p.Paginate(letters)
	assert.Equal(t, 3, view.TotalPages)

	// Out-of-range pages silently clamp to the last valid page.
	p.SetPage(10)
	view = p.Paginate(letters)
	assert.Equal(t, 3, view.Page)
	assert.Equal(t, 51, view.First)
	assert.Equal(t, 57, view.Last)
	assert.Len(t, view.Items, 7)

	p.SetPage(-4)
	assert.Equal(t, 1, p.Page())

	// Clamping is idempotent.
	p.SetPage(10)
	got := p.Page()
	p.SetPage(got)
	assert.Equal(t, got, p.Page())
}

func TestPaginationResetsOnPageSizeChange(t *testing.T) {
	letters := testCollection(120, v1.DirectionIncoming, v1.LetterTypeOfficial)

	p := NewPaginator(25)
	p.Paginate(letters)
	p.SetPage(4)
	assert.Equal(t, 4, p.Page())

	p.SetPageSize(50)
	view := p.Paginate(letters)
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 3, view.TotalPages)
	assert.Equal(t, 1, view.First)
	assert.Equal(t, 50, view.Last)
}

func TestPaginationResetsOnSequenceChange(t *testing.T) {
	letters := testCollection(100, v1.DirectionIncoming, v1.LetterTypeOfficial)

	p := NewPaginator(25)
	p.Paginate(letters)
	p.SetPage(4)

	// Narrowing the sequence (a new filtered slice) snaps back to page 1
	// rather than showing a page whose content shifted underneath.
	narrowed := letters[:30]
	view := p.Paginate(narrowed)
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 2, view.TotalPages)
}

func TestPaginationEmptySequence(t *testing.T) {
	p := NewPaginator(25)
	view := p.Paginate(nil)

	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 1, view.TotalPages)
	assert.Equal(t, 0, view.First)
	assert.Equal(t, 0, view.Last)
	assert.Empty(t, view.Items)
}

func TestPaginationNextPrev(t *testing.T) {
	letters := testCollection(57, v1.DirectionIncoming, v1.LetterTypeOfficial)

	p := NewPaginator(25)
	p.Paginate(letters)
	assert.True(t, p.OnFirstPage())

	p.NextPage()
	p.NextPage()
	p.NextPage() // clamped at 3
	assert.Equal(t, 3, p.Page())
	assert.True(t, p.OnLastPage())

	p.PrevPage()
	assert.Equal(t, 2, p.Page())
}
