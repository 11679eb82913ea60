package browser

import (
	"strings"
	"time"

	"github.com/letterdesk/letterdesk/pkg/text"
	"github.com/letterdesk/letterdesk/pkg/types/v1"
)

// Matches reports whether a letter satisfies every active criterion. The
// four predicates are evaluated in cheapest-first order and short-circuit,
// but the result is equivalent to evaluating all of them independently.
func Matches(l *v1.Letter, c Criteria) bool {
	if !matchesType(l, c.Type) {
		return false
	}
	if l.Direction != c.Direction {
		return false
	}
	if !matchesQuery(l, c.Query) {
		return false
	}
	return matchesDateRange(l, c.DateFrom, c.DateTo)
}

func matchesType(l *v1.Letter, t string) bool {
	return t == TypeAll || string(l.Type) == t
}

// matchesQuery does a case-insensitive, diacritic-insensitive substring
// check against the fixed set of searchable fields. A blank query means no
// search is active and always matches.
func matchesQuery(l *v1.Letter, query string) bool {
	needle := text.Fold(strings.TrimSpace(query))
	if needle == "" {
		return true
	}

	for _, field := range SearchFields(l) {
		if strings.Contains(text.Fold(field), needle) {
			return true
		}
	}
	return false
}

// SearchFields returns every field of a letter that free-text search runs
// against, including the human-readable enum labels and attachment
// filenames.
func SearchFields(l *v1.Letter) []string {
	fields := []string{
		l.Subject,
		l.DocumentNumber,
		l.AgendaNumber,
		l.Origin,
		l.Destination,
		l.DispositionContent,
		l.Type.Label(),
	}
	for _, t := range l.DispositionTargets {
		fields = append(fields, t.Label())
	}
	for _, a := range l.Attachments {
		fields = append(fields, a.Filename)
	}
	return fields
}

// matchesDateRange checks ReceivedAt against the inclusive bounds. An unset
// bound always passes. An inverted range naturally matches nothing; that is
// deliberate and is surfaced as an ordinary empty result, not an error.
func matchesDateRange(l *v1.Letter, from, to *time.Time) bool {
	if from != nil && l.ReceivedAt.Before(startOfDay(*from)) {
		return false
	}
	if to != nil && l.ReceivedAt.After(endOfDay(*to)) {
		return false
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
