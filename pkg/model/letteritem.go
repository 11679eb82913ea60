package model

import (
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"strings"
	"time"

	lib "github.com/charmbracelet/charm/ui/common"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/enescakir/emoji"
	"github.com/muesli/termenv"

	"github.com/letterdesk/letterdesk/pkg/text"
	"github.com/letterdesk/letterdesk/pkg/types/v1"
	"github.com/letterdesk/letterdesk/pkg/ui"
)

const (
	verticalLine      = "│"
	selectedCheckmark = "✓ "
	incomingArrow     = "«"
	outgoingArrow     = "»"
)

var (
	hasher                     = fnv.New32a()
	targetColorHashSalt uint32 = 6969420
	// NOTE: changing these dimensions uncovers some awkward indexing issues
	// in the color selection algo for disposition targets. avoid if you can
	// help it
	targetColors = colorGrid(4, 4)
)

func directionGlyph(d v1.Direction) string {
	if d == v1.DirectionOutgoing {
		return outgoingArrow
	}
	return incomingArrow
}

// coloredTargets renders the disposition targets, each hashed to a stable
// color so the same office always shows in the same hue.
func coloredTargets(targets []v1.DispositionTarget, joiner string) string {
	colorRangeX := len(targetColors)
	colorRangeY := len(targetColors[0])

	labels := make([]string, 0, len(targets))
	for _, t := range targets {
		labels = append(labels, t.Label())
	}
	sort.Strings(labels)

	var colorized []string
	for _, t := range labels {
		hasher.Reset()
		hasher.Write([]byte(t))
		hash := hasher.Sum32() + targetColorHashSalt
		n := colorRangeX * colorRangeY
		idx := hash % uint32(n)
		x := int(idx) / colorRangeX
		y := int(idx) - (x * colorRangeY)

		colorized = append(colorized,
			lipgloss.NewStyle().Foreground(lipgloss.Color(targetColors[x][y])).Render(t))
	}
	return strings.Join(colorized, joiner)
}

// attachmentNote summarizes the attachments of a letter for the row footer.
func attachmentNote(l *v1.Letter) string {
	if len(l.Attachments) == 0 {
		return ""
	}
	var total int64
	for _, a := range l.Attachments {
		total += a.SizeBytes
	}
	if total == 0 {
		return fmt.Sprintf("%s %d", emoji.Paperclip, len(l.Attachments))
	}
	return fmt.Sprintf("%s %d (%s)", emoji.Paperclip, len(l.Attachments), humanize.IBytes(uint64(total)))
}

// rowTitle is the first line of a letter row, sans styling.
func rowTitle(l *v1.Letter) string {
	number := l.DocumentNumber
	if number == "" {
		number = l.AgendaNumber
	}
	if number == "" {
		return l.Subject
	}
	return fmt.Sprintf("%s %s", number, l.Subject)
}

// rowDetails is the second line of a letter row, sans styling.
func rowDetails(l *v1.Letter) string {
	parts := []string{l.Type.Label()}

	switch l.Direction {
	case v1.DirectionOutgoing:
		if l.Destination != "" {
			parts = append(parts, "to "+l.Destination)
		}
	default:
		if l.Origin != "" {
			parts = append(parts, "from "+l.Origin)
		}
	}

	if note := attachmentNote(l); note != "" {
		parts = append(parts, note)
	}

	return strings.Join(parts, dividerDot)
}

func letterRowView(b *strings.Builder, m browseModel, index int, l *v1.Letter) {
	var (
		truncateTo = uint(max(0, m.common.width-browseHorizontalPadding*2))
		gutter     string
		marker     = "  "
		glyph      = directionGlyph(l.Direction)
		title      = text.TruncateWithTail(rowTitle(l), truncateTo, ellipsis)
		details    = text.TruncateWithTail(rowDetails(l), truncateTo, ellipsis)
		date       = relativeTime(l.ReceivedAt)
		targets    = coloredTargets(l.DispositionTargets, " ")
	)

	if m.selection.Has(l.ID) {
		marker = greenFg(selectedCheckmark)
	}

	isSelected := index == m.cursorIndex
	isFiltering := m.filterState == filtering

	if isSelected && !isFiltering {
		gutter = dullFuchsiaFg(verticalLine)
		glyph = dullFuchsiaFg(glyph)
		if m.filterState == filterApplied {
			s := termenv.Style{}.Foreground(lib.Fuschia.Color())
			title = text.StyleFilteredText(title, m.filter.Criteria().Query, s)
		} else {
			title = ui.RowLinePrimaryFocused(title)
		}
		details = ui.RowLineSecondaryFocused(details)
		date = dullFuchsiaFg(date)
	} else {
		gutter = " "
		glyph = grayFg(glyph)
		if isFiltering && m.queryInput.Value() == "" {
			title = ui.RowLinePrimaryUnfocused(title)
			details = ui.RowLineSecondaryUnfocused(details)
			date = ui.RowLineSecondaryUnfocused(date)
		} else {
			s := termenv.Style{}.Foreground(lib.NewColorPair("#dddddd", "#1a1a1a").Color())
			title = text.StyleFilteredText(title, m.queryInput.Value(), s)
			details = midGrayFg(details)
			date = dimBrightGrayFg(date)
		}
	}

	fmt.Fprintf(b, "%s %s%s %s\n", gutter, marker, glyph, title)
	fmt.Fprintf(b, "%s    %s", gutter, details)
	if targets != "" {
		fmt.Fprintf(b, "%s%s", dividerDot, targets)
	}
	fmt.Fprintf(b, "%s%s", dividerDot, date)
}

// Return the time in a human-readable format relative to the current time.
func relativeTime(then time.Time) string {
	now := time.Now()
	ago := now.Sub(then)
	if ago < time.Minute {
		return "just now"
	} else if ago < humanize.Week {
		return humanize.CustomRelTime(then, now, "ago", "from now", magnitudes)
	}
	return then.Format("02 Jan 2006 15:04 MST")
}

// Magnitudes for relative time.
var magnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "now", DivBy: time.Second},
	{D: 2 * time.Second, Format: "1 second %s", DivBy: 1},
	{D: time.Minute, Format: "%d seconds %s", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "1 minute %s", DivBy: 1},
	{D: time.Hour, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hour %s", DivBy: 1},
	{D: humanize.Day, Format: "%d hours %s", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "1 day %s", DivBy: 1},
	{D: humanize.Week, Format: "%d days %s", DivBy: humanize.Day},
	{D: 2 * humanize.Week, Format: "1 week %s", DivBy: 1},
	{D: humanize.Month, Format: "%d weeks %s", DivBy: humanize.Week},
	{D: 2 * humanize.Month, Format: "1 month %s", DivBy: 1},
	{D: humanize.Year, Format: "%d months %s", DivBy: humanize.Month},
	{D: 18 * humanize.Month, Format: "1 year %s", DivBy: 1},
	{D: 2 * humanize.Year, Format: "2 years %s", DivBy: 1},
	{D: humanize.LongTime, Format: "%d years %s", DivBy: humanize.Year},
	{D: math.MaxInt64, Format: "a long while %s", DivBy: 1},
}
