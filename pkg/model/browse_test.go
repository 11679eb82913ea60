package model

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letterdesk/letterdesk/pkg/browser"
	"github.com/letterdesk/letterdesk/pkg/config"
	"github.com/letterdesk/letterdesk/pkg/types/v1"
)

// loadedBrowseModel builds a browse model over n incoming letters, as if a
// snapshot had just arrived.
func loadedBrowseModel(n int) browseModel {
	common := commonModel{cfg: config.Default}
	m := newBrowseModel(&common)

	letters := make([]*v1.Letter, 0, n)
	for i := 0; i < n; i++ {
		letters = append(letters, &v1.Letter{
			ID:         v1.ID(fmt.Sprintf("l-%03d", i)),
			Direction:  v1.DirectionIncoming,
			Type:       v1.LetterTypeOfficial,
			Subject:    fmt.Sprintf("Letter %d", i),
			ReceivedAt: time.Now().Add(-time.Duration(i) * time.Hour),
		})
	}
	m.loaded = true
	m.letters = letters
	m.applyFilters()
	return m
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func day(s string) time.Time {
	t, err := time.Parse(dateRangeLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDateRange(t *testing.T) {
	from, to, err := parseDateRange("2025-02-01..2025-02-14")
	require.NoError(t, err)
	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, day("2025-02-01"), *from)
	assert.Equal(t, day("2025-02-14"), *to)
}

func TestParseDateRangeSingleDayMeansBothBounds(t *testing.T) {
	from, to, err := parseDateRange("2025-02-14")
	require.NoError(t, err)
	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, *from, *to)
}

func TestParseDateRangeOpenEnds(t *testing.T) {
	from, to, err := parseDateRange("..2025-02-14")
	require.NoError(t, err)
	assert.Nil(t, from)
	require.NotNil(t, to)

	from, to, err = parseDateRange("2025-02-01..")
	require.NoError(t, err)
	require.NotNil(t, from)
	assert.Nil(t, to)
}

func TestParseDateRangeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"yesterday", "2025-02-01..soon", "14-02-2025"} {
		_, _, err := parseDateRange(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestToggleAllPaginatedScopesToPage(t *testing.T) {
	m := loadedBrowseModel(57)
	require.Equal(t, browser.ModePaginated, m.mode())
	require.Equal(t, 25, len(m.pageView.Items))

	// Select-all on page one takes only the rows on that page, never the
	// rest of the filtered set.
	m.handleBrowsing(keyPress('a'))
	assert.Equal(t, 25, m.selection.Len())
	for _, l := range m.pageView.Items {
		assert.True(t, m.selection.Has(l.ID))
	}

	// A second press on the same page clears it again.
	m.handleBrowsing(keyPress('a'))
	assert.Equal(t, 0, m.selection.Len())
}

func TestToggleAllWindowedScopesToFilteredSet(t *testing.T) {
	m := loadedBrowseModel(150)
	require.Equal(t, browser.ModeWindowed, m.mode())

	m.handleBrowsing(keyPress('a'))
	assert.Equal(t, 150, m.selection.Len())
}

func TestSelectionViewReportsPageScope(t *testing.T) {
	m := loadedBrowseModel(57)

	m.handleBrowsing(keyPress('a'))
	assert.Contains(t, m.selectionView(), "25 selected (all)")

	// Paging forward leaves the page-one selection out of view.
	m.handleBrowsing(keyPress('f'))
	assert.Contains(t, m.selectionView(), "25 selected (none shown)")
}

func TestLetterRowViewMarksCursorRow(t *testing.T) {
	m := loadedBrowseModel(3)

	var focused, unfocused strings.Builder
	letterRowView(&focused, m, 0, m.visible[0])
	letterRowView(&unfocused, m, 1, m.visible[1])

	assert.Contains(t, focused.String(), verticalLine)
	assert.NotContains(t, unfocused.String(), verticalLine)
}
