package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	lib "github.com/charmbracelet/charm/ui/common"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"

	"github.com/letterdesk/letterdesk/pkg/browser"
	"github.com/letterdesk/letterdesk/pkg/text"
	"github.com/letterdesk/letterdesk/pkg/types/v1"
	"github.com/letterdesk/letterdesk/pkg/ui"
)

const (
	browseIndent            = 1
	browseViewTopPadding    = 5 // logo, header, gaps
	browseViewBottomPadding = 3 // pagination and gaps, but not help
	browseHorizontalPadding = 6

	dateRangeLayout = "2006-01-02"
)

var (
	browseTextInputPromptStyle styleFunc = newFgStyle(lib.YellowGreen)
	dividerDot                 string    = darkGrayFg(" • ")
	dividerBar                 string    = darkGrayFg(" │ ")
)

// MSG

type openLetterMsg struct{ letter *v1.Letter }

// MODEL

// browseViewState is the high-level state of the letter listing.
type browseViewState int

const (
	browseStateReady browseViewState = iota
	browseStateShowingError
)

// filterState is the current free-text query state in the letter listing.
type filterState int

const (
	unfiltered    filterState = iota // no query set
	filtering                        // user is actively typing a query
	filterApplied                    // a query is applied and user is not editing it
)

// selectionState tracks modal interactions layered over the listing.
type selectionState int

const (
	selectionIdle selectionState = iota
	selectionSettingDates
	selectionPromptingDelete
)

// statusMessageType adds some context to the status message being sent.
type statusMessageType int

// Types of status messages.
const (
	normalStatusMessage statusMessageType = iota
	subtleStatusMessage
	errorStatusMessage
)

// statusMessage is an ephemeral note displayed in the UI.
type statusMessage struct {
	status  statusMessageType
	message string
}

// String returns a styled version of the status message appropriate for the
// given context.
func (s statusMessage) String() string {
	switch s.status {
	case subtleStatusMessage:
		return dimGreenFg(s.message)
	case errorStatusMessage:
		return redFg(s.message)
	default:
		return greenFg(s.message)
	}
}

type browseModel struct {
	common             *commonModel
	err                error
	spinner            spinner.Model
	queryInput         textinput.Model
	dateInput          textinput.Model
	loaded             bool
	viewState          browseViewState
	filterState        filterState
	selectionState     selectionState
	showFullHelp       bool
	showStatusMessage  bool
	statusMessage      statusMessage
	statusMessageTimer *time.Timer

	// The master snapshot of registry letters we're working with.
	letters []*v1.Letter

	// Letters currently shown, i.e. the master snapshot run through the
	// filter. This slice's identity keys the pagination cache, so it is
	// only ever replaced wholesale, never mutated.
	visible []*v1.Letter

	filter    *browser.Filter
	debouncer *browser.Debouncer
	counts    *browser.Counts
	pages     *browser.Paginator
	selection *browser.Selection
	window    *browser.Window

	pageView browser.PageView

	// dots is presentation-only; it is synced from pages before rendering
	// and never consulted for pagination decisions.
	dots paginator.Model

	// cursorIndex addresses the focused row within visible, regardless of
	// render mode.
	cursorIndex int

	typeIndex int // index into the type menu
	sizeIndex int // index into the page size menu

	// The last soft-deleted batch, so "u" can bring it back.
	lastDeleted []v1.ID
}

func typeMenu() []string {
	menu := []string{browser.TypeAll}
	for _, t := range v1.LetterTypes {
		menu = append(menu, string(t))
	}
	return menu
}

func (m browseModel) mode() browser.Mode {
	return browser.ChooseMode(len(m.visible), m.common.cfg.WindowedThreshold)
}

// typing reports whether keystrokes belong to a modal interaction and must
// not be treated as global shortcuts.
func (m browseModel) typing() bool {
	return m.filterState == filtering || m.selectionState != selectionIdle
}

// Is a query currently being applied?
func (m browseModel) queryApplied() bool {
	return m.filterState != unfiltered
}

func (m *browseModel) setSize(width, height int) {
	m.common.width = width
	m.common.height = height

	m.queryInput.Width = width - browseHorizontalPadding*2 - ansi.PrintableRuneWidth(m.queryInput.Prompt)
	m.dateInput.Width = width - browseHorizontalPadding*2 - ansi.PrintableRuneWidth(m.dateInput.Prompt)
}

// visibleSequence is what selection-wide operations scope to: the rows the
// user can actually see, meaning the current page when paginated and the
// whole filtered set when scrolling windowed.
func (m browseModel) visibleSequence() []*v1.Letter {
	if m.mode() == browser.ModeWindowed {
		return m.visible
	}
	return m.pageView.Items
}

// Return the letter the cursor is on, or nil when the listing is empty.
func (m browseModel) currentLetter() *v1.Letter {
	if m.cursorIndex < 0 || m.cursorIndex >= len(m.visible) {
		return nil
	}
	return m.visible[m.cursorIndex]
}

// applyFilters reruns the filter over the master snapshot and refreshes the
// derived pagination state.
func (m *browseModel) applyFilters() {
	m.visible = m.filter.Apply(m.letters)
	if m.cursorIndex > len(m.visible)-1 {
		m.cursorIndex = max(0, len(m.visible)-1)
	}
	m.paginate()
}

// paginate rederives the current page and keeps the cursor inside it.
func (m *browseModel) paginate() {
	m.pageView = m.pages.Paginate(m.visible)

	if m.mode() == browser.ModeWindowed {
		m.window.ScrollToRow(m.cursorIndex, len(m.visible))
		return
	}

	// Pull the cursor onto the current page if pagination moved underneath
	// it, e.g. after a page size change or a fresh snapshot.
	if m.pageView.First > 0 {
		if m.cursorIndex < m.pageView.First-1 || m.cursorIndex > m.pageView.Last-1 {
			m.cursorIndex = m.pageView.First - 1
		}
	}
}

// cursorTo moves the focused row and drags the page or scroll window along
// with it.
func (m *browseModel) cursorTo(i int) {
	if len(m.visible) == 0 {
		m.cursorIndex = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i > len(m.visible)-1 {
		i = len(m.visible) - 1
	}
	m.cursorIndex = i

	if m.mode() == browser.ModeWindowed {
		m.window.ScrollToRow(m.cursorIndex, len(m.visible))
		return
	}

	m.pages.SetPage(m.cursorIndex/m.pages.PageSize() + 1)
	m.pageView = m.pages.Paginate(m.visible)
}

func (m *browseModel) resetQuery() {
	m.filterState = unfiltered
	m.queryInput.Reset()
	m.debouncer.Stop()
	m.filter.SetQuery("")
	m.applyFilters()
}

// resetFilters clears the query and date range, keeping the direction tab
// and type filter as they are.
func (m *browseModel) resetFilters() {
	m.queryInput.Reset()
	m.dateInput.Reset()
	m.debouncer.Stop()
	m.filterState = unfiltered
	m.selectionState = selectionIdle
	m.filter.ResetFilters()
	m.applyFilters()
}

func (m *browseModel) toggleDirection() {
	if m.filter.Criteria().Direction == v1.DirectionIncoming {
		m.filter.SetDirection(v1.DirectionOutgoing)
	} else {
		m.filter.SetDirection(v1.DirectionIncoming)
	}
	m.cursorIndex = 0
	m.window.Reset()
	m.applyFilters()
}

func (m *browseModel) cycleType(delta int) {
	menu := typeMenu()
	m.typeIndex = (m.typeIndex + delta + len(menu)) % len(menu)
	m.filter.SetType(menu[m.typeIndex])
	m.cursorIndex = 0
	m.window.Reset()
	m.applyFilters()
}

func (m *browseModel) cyclePageSize() {
	menu := m.common.cfg.PageSizeMenu
	if len(menu) == 0 {
		menu = browser.PageSizeMenu
	}
	m.sizeIndex = (m.sizeIndex + 1) % len(menu)
	m.pages.SetPageSize(menu[m.sizeIndex])
	m.cursorIndex = 0
	m.paginate()
}

func (m *browseModel) newStatusMessage(sm statusMessage) tea.Cmd {
	m.showStatusMessage = true
	m.statusMessage = sm
	if m.statusMessageTimer != nil {
		m.statusMessageTimer.Stop()
	}
	m.statusMessageTimer = time.NewTimer(statusMessageTimeout)
	return waitForStatusMessageTimeout(browseContext, m.statusMessageTimer)
}

func (m *browseModel) hideStatusMessage() {
	m.showStatusMessage = false
	m.statusMessage = statusMessage{}
	if m.statusMessageTimer != nil {
		m.statusMessageTimer.Stop()
	}
}

// INIT

func newBrowseModel(common *commonModel) browseModel {
	sp := spinner.NewModel()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(fuschia)
	sp.HideFor = time.Millisecond * 100
	sp.MinimumLifetime = time.Millisecond * 180
	sp.Start()

	qi := textinput.NewModel()
	qi.Prompt = browseTextInputPromptStyle("Find: ")
	qi.CursorStyle = lipgloss.NewStyle().Foreground(fuschia)
	qi.CharLimit = queryCharacterLimit
	qi.Focus()

	di := textinput.NewModel()
	di.Prompt = browseTextInputPromptStyle("Dates: ")
	di.Placeholder = "2006-01-02..2006-01-02"
	di.CursorStyle = lipgloss.NewStyle().Foreground(fuschia)
	di.CharLimit = queryCharacterLimit
	di.Focus()

	cfg := common.cfg

	pageSize := cfg.PageSize
	sizeIndex := 0
	for i, n := range cfg.PageSizeMenu {
		if n == pageSize {
			sizeIndex = i
		}
	}

	dots := paginator.NewModel()
	dots.Type = paginator.Dots
	dots.ActiveDot = brightGrayFg("•")
	dots.InactiveDot = darkGrayFg("•")

	return browseModel{
		common:     common,
		spinner:    sp,
		queryInput: qi,
		dateInput:  di,
		filter:     browser.NewFilter(cfg.DefaultDirection),
		debouncer:  browser.NewDebouncer(cfg.DebounceInterval),
		counts:     browser.NewCounts(),
		pages:      browser.NewPaginator(pageSize),
		selection:  browser.NewSelection(),
		window:     browser.NewWindow(cfg.RowHeight, cfg.MaxListHeight, cfg.Overscan),
		dots:       dots,
		sizeIndex:  sizeIndex,
	}
}

// UPDATE

func (m browseModel) update(msg tea.Msg) (browseModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case errMsg:
		m.err = msg
		cmds = append(cmds, m.newStatusMessage(statusMessage{
			status:  errorStatusMessage,
			message: msg.Error(),
		}))

	case snapshotLoadedMsg:
		m.spinner.Finish()
		m.loaded = true
		m.letters = msg
		m.applyFilters()
		return m, nil

	case debounceElapsedMsg:
		if q, ok := m.debouncer.Settle(int(msg)); ok {
			m.filter.SetQuery(q)
			m.cursorIndex = 0
			m.window.Reset()
			m.applyFilters()
		}
		return m, nil

	case lettersDeletedMsg:
		m.lastDeleted = msg
		m.selection.Clear()
		note := fmt.Sprintf("Deleted %d, press u to undo", len(msg))
		if trash, err := m.common.store.Trash(); err == nil {
			note = fmt.Sprintf("Deleted %d (%d in trash), press u to undo", len(msg), len(trash))
		}
		cmds = append(cmds,
			loadSnapshot(m.common.store),
			m.newStatusMessage(statusMessage{
				status:  normalStatusMessage,
				message: note,
			}))

	case lettersRestoredMsg:
		m.lastDeleted = nil
		cmds = append(cmds,
			loadSnapshot(m.common.store),
			m.newStatusMessage(statusMessage{
				status:  normalStatusMessage,
				message: fmt.Sprintf("Restored %d", len(msg)),
			}))

	case exportDoneMsg:
		cmds = append(cmds, m.newStatusMessage(statusMessage{
			status:  normalStatusMessage,
			message: "Exported to " + string(msg),
		}))

	case spinner.TickMsg:
		if !m.loaded || m.spinner.Visible() {
			newSpinnerModel, cmd := m.spinner.Update(msg)
			m.spinner = newSpinnerModel
			cmds = append(cmds, cmd)
		}

	case statusMessageTimeoutMsg:
		if applicationContext(msg) == browseContext {
			m.hideStatusMessage()
		}
	}

	if m.filterState == filtering {
		cmds = append(cmds, m.handleQueryInput(msg))
		return m, tea.Batch(cmds...)
	}

	switch m.selectionState {
	case selectionSettingDates:
		cmds = append(cmds, m.handleDateInput(msg))
		return m, tea.Batch(cmds...)
	case selectionPromptingDelete:
		cmds = append(cmds, m.handleDeleteConfirmation(msg))
		return m, tea.Batch(cmds...)
	}

	switch m.viewState {
	case browseStateReady:
		cmds = append(cmds, m.handleBrowsing(msg))
	case browseStateShowingError:
		// Any key exits the error view
		if _, ok := msg.(tea.KeyMsg); ok {
			m.viewState = browseStateReady
		}
	}

	return m, tea.Batch(cmds...)
}

// Updates for when a user is browsing the letter listing.
func (m *browseModel) handleBrowsing(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "k", "ctrl+k", "up":
			m.cursorTo(m.cursorIndex - 1)

		case "j", "ctrl+j", "down":
			m.cursorTo(m.cursorIndex + 1)

		// Go to the very start
		case "home", "g":
			m.cursorTo(0)

		// Go to the very end
		case "end", "G":
			m.cursorTo(len(m.visible) - 1)

		// Page (or scroll) backwards
		case "b", "pgup":
			if m.mode() == browser.ModeWindowed {
				m.window.ScrollBy(-m.window.ContainerHeight(len(m.visible)), len(m.visible))
				m.cursorTo(m.topVisibleRow())
			} else {
				m.pages.PrevPage()
				m.pageView = m.pages.Paginate(m.visible)
				m.cursorIndex = max(0, m.pageView.First-1)
			}

		// Page (or scroll) forwards
		case "f", "pgdown":
			if m.mode() == browser.ModeWindowed {
				m.window.ScrollBy(m.window.ContainerHeight(len(m.visible)), len(m.visible))
				m.cursorTo(m.topVisibleRow())
			} else {
				m.pages.NextPage()
				m.pageView = m.pages.Paginate(m.visible)
				m.cursorIndex = max(0, m.pageView.First-1)
			}

		// Clear the query, then the rest of the filters
		case "esc":
			if m.queryApplied() {
				m.resetQuery()
			} else {
				m.resetFilters()
			}

		// Flip between incoming and outgoing
		case "tab", "L", "shift+tab", "H":
			m.hideStatusMessage()
			m.toggleDirection()

		// Cycle the letter type filter
		case "t":
			m.hideStatusMessage()
			m.cycleType(1)

		case "T":
			m.hideStatusMessage()
			m.cycleType(-1)

		// Cycle the page size
		case "s":
			m.cyclePageSize()

		// Set a received-date range
		case "d":
			m.hideStatusMessage()
			m.selectionState = selectionSettingDates
			m.dateInput.CursorEnd()
			m.dateInput.Focus()
			return textinput.Blink

		// Open letter
		case "enter", "v":
			m.hideStatusMessage()
			letter := m.currentLetter()
			if letter == nil {
				break
			}
			return func() tea.Msg { return openLetterMsg{letter} }

		// Find letters
		case "/":
			m.hideStatusMessage()
			m.cursorTo(0)
			m.filterState = filtering
			m.queryInput.CursorEnd()
			m.queryInput.Focus()
			return textinput.Blink

		// Toggle selection of the focused letter
		case " ", "space", "x":
			letter := m.currentLetter()
			if letter == nil {
				break
			}
			m.selection.Toggle(letter.ID)

		// Select or deselect every letter in view
		case "a":
			m.selection.ToggleAll(m.visibleSequence())

		// Drop the selection
		case "c":
			m.selection.Clear()

		// Prompt to delete the selection
		case "X":
			m.hideStatusMessage()
			if m.selection.Len() == 0 {
				break
			}
			m.selectionState = selectionPromptingDelete

		// Bring back the last deleted batch
		case "u":
			if len(m.lastDeleted) == 0 {
				break
			}
			cmds = append(cmds, restoreLetters(m.common.store, m.lastDeleted))

		// Export what's currently visible
		case "E":
			m.hideStatusMessage()
			if len(m.visible) == 0 {
				break
			}
			cmds = append(cmds, exportLetters(m.common.exporter, m.visible))

		// Reload the snapshot
		case "r":
			cmds = append(cmds, loadSnapshot(m.common.store))

		// Toggle full help
		case "?":
			m.showFullHelp = !m.showFullHelp

		// Show errors
		case "!":
			if m.err != nil && m.viewState == browseStateReady {
				m.viewState = browseStateShowingError
				return nil
			}
		}
	}

	return tea.Batch(cmds...)
}

// topVisibleRow is the first row fully inside the scroll window.
func (m browseModel) topVisibleRow() int {
	row := m.window.Scroll() / m.window.RowHeight
	if m.window.Scroll()%m.window.RowHeight != 0 {
		row++
	}
	return row
}

// Updates for when a user is being prompted whether or not to delete the
// selected letters.
func (m *browseModel) handleDeleteConfirmation(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y":
			if m.selectionState != selectionPromptingDelete {
				break
			}
			m.selectionState = selectionIdle
			return softDeleteLetters(m.common.store, m.selection.IDs())

		// Any other key cancels deletion
		default:
			m.selectionState = selectionIdle
		}
	}

	return nil
}

// Updates for when a user is typing a search query.
func (m *browseModel) handleQueryInput(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	// Handle keys
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			// Cancel the query
			m.resetQuery()
			return nil
		case "enter", "tab", "shift+tab", "ctrl+k", "up", "ctrl+j", "down":
			m.hideStatusMessage()

			// Apply the pending query right away rather than waiting out
			// the quiet window.
			q := m.debouncer.Flush()
			m.filter.SetQuery(q)
			m.queryInput.Blur()

			if q == "" {
				m.resetQuery()
			} else {
				m.filterState = filterApplied
				m.cursorIndex = 0
				m.window.Reset()
				m.applyFilters()
			}
			return nil
		}
	}

	// Update the query text input component
	newQueryInputModel, inputCmd := m.queryInput.Update(msg)
	currentQueryVal := m.queryInput.Value()
	newQueryVal := newQueryInputModel.Value()
	m.queryInput = newQueryInputModel
	cmds = append(cmds, inputCmd)

	// If the query has changed, restart the quiet window; filtering
	// recomputes only once the input settles.
	if newQueryVal != currentQueryVal {
		gen, timer := m.debouncer.Set(newQueryVal)
		cmds = append(cmds, waitForDebounce(gen, timer))
	}

	return tea.Batch(cmds...)
}

// Updates for when a user is typing a date range.
func (m *browseModel) handleDateInput(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			m.selectionState = selectionIdle
			m.dateInput.Reset()
			return nil
		case "enter":
			m.selectionState = selectionIdle

			raw := strings.TrimSpace(m.dateInput.Value())
			if raw == "" {
				m.filter.SetDateFrom(nil)
				m.filter.SetDateTo(nil)
				m.applyFilters()
				return nil
			}

			from, to, err := parseDateRange(raw)
			if err != nil {
				return m.newStatusMessage(statusMessage{
					status:  errorStatusMessage,
					message: err.Error(),
				})
			}
			m.filter.SetDateFrom(from)
			m.filter.SetDateTo(to)
			m.cursorIndex = 0
			m.window.Reset()
			m.applyFilters()
			return nil
		}
	}

	newDateInputModel, inputCmd := m.dateInput.Update(msg)
	m.dateInput = newDateInputModel
	cmds = append(cmds, inputCmd)

	return tea.Batch(cmds...)
}

// parseDateRange understands "2006-01-02..2006-01-09" with either bound
// optional, and a bare date meaning that single day.
func parseDateRange(raw string) (*time.Time, *time.Time, error) {
	parse := func(s string) (*time.Time, error) {
		if s == "" {
			return nil, nil
		}
		t, err := time.Parse(dateRangeLayout, s)
		if err != nil {
			return nil, fmt.Errorf("bad date %q, want YYYY-MM-DD", s)
		}
		return &t, nil
	}

	if !strings.Contains(raw, "..") {
		t, err := parse(raw)
		if err != nil {
			return nil, nil, err
		}
		return t, t, nil
	}

	parts := strings.SplitN(raw, "..", 2)
	from, err := parse(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, nil, err
	}
	to, err := parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

// VIEW

func (m browseModel) view() string {
	var s string
	switch m.viewState {
	case browseStateShowingError:
		return errorView(m.err, false)
	case browseStateReady:
		loadingIndicator := " "
		if !m.loaded || m.spinner.Visible() {
			loadingIndicator = m.spinner.View()
		}

		var header string
		switch m.selectionState {
		case selectionPromptingDelete:
			header = redFg(fmt.Sprintf("Delete %d selected letters? ", m.selection.Len())) + faintRedFg("(y/N)")
		case selectionSettingDates:
			header = m.dateInput.View()
		}

		// Only draw the normal header if we're not using the header area
		// for something else (like a date range or delete prompt).
		if header == "" {
			header = m.headerView()
		}

		// Rules for the logo, query input and status message.
		logoOrQuery := " "
		if m.showStatusMessage && m.filterState == filtering {
			logoOrQuery += m.statusMessage.String()
		} else if m.filterState == filtering {
			logoOrQuery += m.queryInput.View()
		} else {
			logoOrQuery += logoView(" Letterdesk ")
			if m.filterState == filterApplied {
				logoOrQuery += "  " + dullFuchsiaFg(fmt.Sprintf("“%s”", m.filter.Criteria().Query))
			}
			if m.showStatusMessage {
				logoOrQuery += "  " + m.statusMessage.String()
			}
		}
		logoOrQuery = text.TruncateWithTail(logoOrQuery, uint(max(0, m.common.width-1)), ellipsis)

		help, helpHeight := m.helpView()

		populatedView := m.populatedView()
		populatedViewHeight := strings.Count(populatedView, "\n") + 2

		// We need to fill any empty height with newlines so the footer
		// reaches the bottom.
		availHeight := m.common.height -
			browseViewTopPadding -
			populatedViewHeight -
			helpHeight -
			browseViewBottomPadding
		blankLines := strings.Repeat("\n", max(0, availHeight))

		s += fmt.Sprintf(
			"%s%s\n\n  %s\n\n%s\n\n%s%s  %s\n\n%s",
			loadingIndicator,
			logoOrQuery,
			header,
			populatedView,
			blankLines,
			m.footerView(),
			m.selectionView(),
			help,
		)
	}
	return "\n" + indent(s, browseIndent)
}

// headerView renders the direction tabs and the per-type counts. The counts
// come from the master snapshot, never the filtered sequence, so they stay
// stable while searching.
func (m browseModel) headerView() string {
	if m.loaded && len(m.letters) == 0 {
		return lib.Subtle("No letters in the registry.")
	}

	criteria := m.filter.Criteria()
	byDirection := m.counts.ByDirection(m.letters, criteria.Type)
	byType := m.counts.ByType(m.letters, criteria.Type)

	var tabs []string
	for _, d := range v1.Directions {
		s := fmt.Sprintf("%d %s", byDirection[d], d.Label())
		if d == criteria.Direction {
			s = ui.SelectedTabColor(s)
		} else {
			s = ui.TabColor(s)
		}
		tabs = append(tabs, s)
	}

	var typeTabs []string
	for _, t := range typeMenu() {
		label := strings.ToLower(t)
		if t != browser.TypeAll {
			label = v1.LetterType(t).Label()
		}
		s := fmt.Sprintf("%d %s", byType[t], label)
		if t == criteria.Type {
			s = ui.SelectedTabColor(s)
		} else {
			s = ui.TabColor(s)
		}
		typeTabs = append(typeTabs, s)
	}

	return strings.Join(tabs, dividerBar) + dividerBar + strings.Join(typeTabs, dividerDot)
}

// selectionView summarizes the current selection for the footer line.
func (m browseModel) selectionView() string {
	inView := m.visibleSequence()
	switch {
	case m.selection.Len() == 0:
		return ""
	case m.selection.AllSelected(inView):
		return greenFg(fmt.Sprintf("%d selected (all)", m.selection.Len()))
	case m.selection.PartiallySelected(inView):
		return semiDimGreenFg(fmt.Sprintf("%d selected", m.selection.Len()))
	default:
		// The whole selection is out of view.
		return dimGreenFg(fmt.Sprintf("%d selected (none shown)", m.selection.Len()))
	}
}

// footerView renders either the page indicator or the scroll position,
// depending on the render mode.
func (m browseModel) footerView() string {
	if len(m.visible) == 0 {
		return ""
	}

	if m.mode() == browser.ModeWindowed {
		n := len(m.visible)
		span := n*m.window.RowHeight - m.window.ContainerHeight(n)
		pct := 100
		if span > 0 {
			pct = m.window.Scroll() * 100 / span
		}
		return grayFg(fmt.Sprintf("%d letters, %d%%", n, pct))
	}

	pv := m.pageView
	label := grayFg(fmt.Sprintf("%d–%d of %d", pv.First, pv.Last, len(m.visible)))
	if pv.TotalPages <= 1 {
		return label
	}

	dots := m.dots
	dots.PerPage = m.pages.PageSize()
	dots.SetTotalPages(len(m.visible))
	dots.Page = pv.Page - 1

	pagination := dots.View()
	// If the dot pagination is wider than the window use the arabic
	// paginator.
	if ansi.PrintableRuneWidth(pagination) > m.common.width-browseHorizontalPadding {
		dots.Type = paginator.Arabic
		pagination = lib.Subtle(dots.View())
	}
	return pagination + dividerDot + label
}

func (m browseModel) populatedView() string {
	if len(m.visible) == 0 {
		var b strings.Builder
		if !m.loaded {
			b.WriteString("  " + grayFg("Loading the registry..."))
		} else if m.filterState == filtering || m.queryApplied() {
			b.WriteString("  " + grayFg("Nothing found."))
		} else {
			b.WriteString("  " + grayFg("No letters here."))
		}
		return b.String()
	}

	if m.mode() == browser.ModeWindowed {
		return m.windowedView()
	}

	var b strings.Builder
	items := m.pageView.Items
	offset := m.pageView.First - 1

	for i, l := range items {
		letterRowView(&b, m, offset+i, l)
		if i != len(items)-1 {
			fmt.Fprintf(&b, "\n\n")
		}
	}

	// If there aren't enough items to fill up this page (always the last
	// page) then we need to add some newlines to fill up the space where
	// letters would have been.
	if len(items) < m.pages.PageSize() {
		n := (m.pages.PageSize() - len(items)) * m.common.cfg.RowHeight
		for i := 0; i < n; i++ {
			fmt.Fprint(&b, "\n")
		}
	}

	return b.String()
}

// windowedView materializes only the rows inside the scroll window plus the
// overscan margin, then trims the rendered lines to the viewport.
func (m browseModel) windowedView() string {
	n := len(m.visible)
	lo, hi := m.window.Range(n)

	var b strings.Builder
	for i := lo; i < hi; i++ {
		letterRowView(&b, m, i, m.visible[i])
		if i != hi-1 {
			fmt.Fprintf(&b, "\n\n")
		}
	}

	lines := strings.Split(b.String(), "\n")

	// Rows render at a fixed height, so the window's line offsets map
	// straight into the rendered block.
	top := m.window.Scroll() - lo*m.window.RowHeight
	if top < 0 {
		top = 0
	}
	height := m.window.ContainerHeight(n)
	bottom := min(len(lines), top+height)
	if top > len(lines) {
		top = len(lines)
	}

	return strings.Join(lines[top:bottom], "\n")
}

func (m browseModel) helpView() (string, int) {
	var lines []string
	if m.showFullHelp {
		lines = []string{
			"k/↑      up             tab     flip direction      /       search",
			"j/↓      down           t/T     cycle type          d       date range",
			"b/f      page back/fwd  s       cycle page size     esc     clear filters",
			"g/G      first/last     space   select              a       select all shown",
			"enter    open           c       clear selection     X       delete selected",
			"r        reload         u       undo delete         E       export shown",
			"?        close help     q       quit",
		}
	} else {
		lines = []string{
			"j/k: move" + dividerDot + "/: search" + dividerDot + "tab: direction" + dividerDot + "space: select" + dividerDot + "?: help",
		}
	}

	s := indent(strings.Join(lines, "\n"), 2)
	return grayFg(s), strings.Count(s, "\n") + 1
}
