package browser

import (
	"github.com/letterdesk/letterdesk/pkg/types/v1"
)

// DefaultPageSize is used when a paginator is constructed with a
// non-positive page size.
const DefaultPageSize = 25

// PageSizeMenu is the fixed set of page sizes offered in the UI. The
// paginator itself accepts any positive size.
var PageSizeMenu = []int{25, 50, 100}

// PageView is one page of a sequence plus its display bookkeeping. First
// and Last are 1-based bounds for "showing First–Last of N" labels; both
// are zero when the sequence is empty.
type PageView struct {
	Items      []*v1.Letter
	Page       int
	TotalPages int
	First      int
	Last       int
}

// Paginator owns the page number and page size over an arbitrary ordered
// sequence. The page is clamped into [1, totalPages] at all times; an
// out-of-range page is corrected silently, never surfaced as an error.
// Changing the page size or handing in a different sequence resets to page
// one so the user is never left staring at a page whose content silently
// shifted underneath them.
type Paginator struct {
	page     int
	pageSize int

	lastSeq   []*v1.Letter
	lastTotal int
}

func NewPaginator(pageSize int) *Paginator {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Paginator{page: 1, pageSize: pageSize}
}

func (p *Paginator) Page() int {
	return p.page
}

func (p *Paginator) PageSize() int {
	return p.pageSize
}

// SetPageSize switches the page size and returns to page one. Non-positive
// sizes are ignored.
func (p *Paginator) SetPageSize(n int) {
	if n < 1 || n == p.pageSize {
		return
	}
	p.pageSize = n
	p.page = 1
}

// SetPage requests a page, clamping into the valid range for the last
// paginated sequence. Clamping is idempotent: setting the result of a clamp
// is a no-op.
func (p *Paginator) SetPage(n int) {
	total := totalPages(p.lastTotal, p.pageSize)
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	p.page = n
}

func (p *Paginator) NextPage() {
	p.SetPage(p.page + 1)
}

func (p *Paginator) PrevPage() {
	p.SetPage(p.page - 1)
}

func (p *Paginator) OnFirstPage() bool {
	return p.page <= 1
}

func (p *Paginator) OnLastPage() bool {
	return p.page >= totalPages(p.lastTotal, p.pageSize)
}

// Paginate derives the visible slice for the current page. A sequence with
// a different identity than the previous call resets to page one; the page
// is then clamped against the new total, so concatenating pages 1..Total
// always reproduces the sequence exactly.
func (p *Paginator) Paginate(seq []*v1.Letter) PageView {
	if !sameCollection(p.lastSeq, seq) {
		p.page = 1
	}
	p.lastSeq = seq
	p.lastTotal = len(seq)

	total := totalPages(len(seq), p.pageSize)
	if p.page > total {
		p.page = total
	}
	if p.page < 1 {
		p.page = 1
	}

	lo := (p.page - 1) * p.pageSize
	hi := lo + p.pageSize
	if lo > len(seq) {
		lo = len(seq)
	}
	if hi > len(seq) {
		hi = len(seq)
	}

	view := PageView{
		Items:      seq[lo:hi],
		Page:       p.page,
		TotalPages: total,
	}
	if len(seq) > 0 && hi > lo {
		view.First = lo + 1
		view.Last = hi
	}
	return view
}

func totalPages(total, pageSize int) int {
	if total < 1 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}
