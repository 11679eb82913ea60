package browser

import (
	"sort"

	"github.com/letterdesk/letterdesk/pkg/types/v1"
)

// Selection is the set of record ids selected for bulk actions, scoped at
// read time to whatever sequence is currently visible (one page, or the
// whole filtered set in windowed mode). Entries for ids that scrolled out
// of the visible sequence are tolerated: they simply stop counting toward
// the all/partial derivations until their rows are visible again.
type Selection struct {
	ids map[v1.ID]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: map[v1.ID]struct{}{}}
}

func (s *Selection) Has(id v1.ID) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Len() int {
	return len(s.ids)
}

// Toggle flips membership of a single id. Individually toggled ids survive
// page changes; only ToggleAll and Clear discard them wholesale.
func (s *Selection) Toggle(id v1.ID) {
	if s.Has(id) {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// ToggleAll is the tri-state header checkbox: if every visible row is
// already selected the whole selection is cleared; otherwise the selection
// is replaced with exactly the visible ids. Replacement, not union: a
// partial selection made on another page is dropped here. Bulk actions are
// always confirmed against the listed ids, so the quirk is harmless.
func (s *Selection) ToggleAll(visible []*v1.Letter) {
	if s.AllSelected(visible) {
		s.Clear()
		return
	}

	s.ids = make(map[v1.ID]struct{}, len(visible))
	for _, l := range visible {
		s.ids[l.ID] = struct{}{}
	}
}

func (s *Selection) Clear() {
	s.ids = map[v1.ID]struct{}{}
}

// AllSelected recomputes live against the current visible sequence: true
// when the sequence is non-empty and every visible id is selected.
func (s *Selection) AllSelected(visible []*v1.Letter) bool {
	if len(visible) == 0 {
		return false
	}
	for _, l := range visible {
		if !s.Has(l.ID) {
			return false
		}
	}
	return true
}

// PartiallySelected drives the indeterminate checkbox state: at least one
// visible row selected, but not all of them.
func (s *Selection) PartiallySelected(visible []*v1.Letter) bool {
	if s.AllSelected(visible) {
		return false
	}
	for _, l := range visible {
		if s.Has(l.ID) {
			return true
		}
	}
	return false
}

// IDs returns the selected ids in a stable order, ready to hand to a bulk
// mutation collaborator.
func (s *Selection) IDs() []v1.ID {
	out := make([]v1.ID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Sort(v1.ByID(out))
	return out
}
