package browser

// Mode selects how the filtered result set is rendered.
type Mode int

const (
	// ModePaginated renders discrete pages through the Paginator.
	ModePaginated Mode = iota
	// ModeWindowed renders a continuous list, materializing only the rows
	// inside the scroll window.
	ModeWindowed
)

func (m Mode) String() string {
	if m == ModeWindowed {
		return "windowed"
	}
	return "paginated"
}

// DefaultWindowThreshold is the filtered-result size above which rendering
// switches from pages to a scroll window.
const DefaultWindowThreshold = 100

// DefaultOverscan is the number of extra rows materialized beyond each edge
// of the window so fast scrolling never shows a blank flash.
const DefaultOverscan = 5

// ChooseMode picks the render mode for a filtered-result size. Counts at or
// below the threshold stay paginated.
func ChooseMode(filteredCount, threshold int) Mode {
	if threshold < 1 {
		threshold = DefaultWindowThreshold
	}
	if filteredCount > threshold {
		return ModeWindowed
	}
	return ModePaginated
}

// Window computes which row indices of a long list are materialized for the
// current scroll position. It is pure geometry over row height, container
// height, scroll offset and overscan; it never touches the items
// themselves. Heights and offsets are measured in terminal lines.
type Window struct {
	RowHeight int // lines per row, fixed
	MaxHeight int // cap on the container height
	Overscan  int

	scrollTop int
	lastLen   int
}

func NewWindow(rowHeight, maxHeight, overscan int) *Window {
	if rowHeight < 1 {
		rowHeight = 1
	}
	if overscan < 0 {
		overscan = DefaultOverscan
	}
	return &Window{RowHeight: rowHeight, MaxHeight: maxHeight, Overscan: overscan}
}

// ContainerHeight is the rendered height of the scroll area for n items:
// the natural height of the list plus one row of breathing room, capped at
// MaxHeight.
func (w *Window) ContainerHeight(n int) int {
	h := (n + 1) * w.RowHeight
	if w.MaxHeight > 0 && h > w.MaxHeight {
		h = w.MaxHeight
	}
	return h
}

// Scroll returns the current scroll offset in lines.
func (w *Window) Scroll() int {
	return w.scrollTop
}

// SetScroll moves the window, clamping so the viewport never runs past
// either end of the list of n items.
func (w *Window) SetScroll(top, n int) {
	w.syncLen(n)
	max := n*w.RowHeight - w.ContainerHeight(n)
	if max < 0 {
		max = 0
	}
	if top > max {
		top = max
	}
	if top < 0 {
		top = 0
	}
	w.scrollTop = top
}

// ScrollBy moves the window by a delta in lines.
func (w *Window) ScrollBy(delta, n int) {
	w.SetScroll(w.scrollTop+delta, n)
}

// ScrollToRow scrolls the minimal distance needed to bring row i fully
// inside the viewport (not merely inside the overscan margin).
func (w *Window) ScrollToRow(i, n int) {
	w.syncLen(n)
	rowTop := i * w.RowHeight
	rowBottom := rowTop + w.RowHeight
	height := w.ContainerHeight(n)

	if rowTop < w.scrollTop {
		w.SetScroll(rowTop, n)
	} else if rowBottom > w.scrollTop+height {
		w.SetScroll(rowBottom-height, n)
	}
}

// Range returns the half-open index interval [lo, hi) of rows to
// materialize for n items at the current scroll position: every row
// intersecting the viewport, plus the overscan margin on each side, clipped
// to the list bounds.
func (w *Window) Range(n int) (lo, hi int) {
	w.syncLen(n)
	if n == 0 {
		return 0, 0
	}

	height := w.ContainerHeight(n)
	lo = w.scrollTop/w.RowHeight - w.Overscan
	hi = (w.scrollTop+height)/w.RowHeight + w.Overscan + 1

	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}

// Reset rewinds the window to the top.
func (w *Window) Reset() {
	w.scrollTop = 0
}

// syncLen resets the scroll position when the item count changes, so a
// shorter list is never rendered against a stale offset.
func (w *Window) syncLen(n int) {
	if n != w.lastLen {
		w.lastLen = n
		w.scrollTop = 0
	}
}
