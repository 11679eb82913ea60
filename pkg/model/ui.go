package model

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	lib "github.com/charmbracelet/charm/ui/common"
	te "github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/letterdesk/letterdesk/pkg/config"
	"github.com/letterdesk/letterdesk/pkg/registry"
	"github.com/letterdesk/letterdesk/pkg/types/v1"
)

const (
	queryCharacterLimit  = 256
	statusMessageTimeout = time.Second * 2 // how long to show status messages like "Deleted!"
	ellipsis             = "…"
)

var (
	logoTextColor = lib.Color("#ECFD65")
)

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

type snapshotLoadedMsg []*v1.Letter
type storeChangedMsg struct{}
type debounceElapsedMsg int
type statusMessageTimeoutMsg applicationContext
type lettersDeletedMsg []v1.ID
type lettersRestoredMsg []v1.ID
type exportDoneMsg string
type detailReleasedMsg struct{}

// applicationContext indicates the area of the application something applies
// to. Occasionally used as an argument to commands and messages.
type applicationContext int

const (
	browseContext applicationContext = iota
	detailContext
)

// state is the top-level application state.
type state int

const (
	stateShowBrowse state = iota
	stateShowDetail
)

func (s state) String() string {
	return map[state]string{
		stateShowBrowse: "showing letter listing",
		stateShowDetail: "showing letter",
	}[s]
}

// Common stuff we'll need to access in all models.
type commonModel struct {
	cfg      config.Config
	store    registry.Store
	exporter registry.Exporter
	log      zerolog.Logger
	width    int
	height   int
}

type Model struct {
	common   *commonModel
	state    state
	fatalErr error

	browse browseModel
	detail *detailModel
}

// closeDetail returns from the detail view to the listing. The detail model
// keeps its letter reference until the release timer fires so the exit
// transition never renders against a nil record.
func (m *Model) closeDetail() []tea.Cmd {
	m.state = stateShowBrowse
	m.browse.viewState = browseStateReady

	var batch []tea.Cmd
	if m.detail.viewport.HighPerformanceRendering {
		batch = append(batch, tea.ClearScrollArea)
	}
	batch = append(batch, m.detail.scheduleRelease())
	return batch
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		spinner.Tick,
		loadSnapshot(m.common.store),
		waitForStoreChange(m.common.store),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// If there's been a fatal error, any key exits
	if m.fatalErr != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, tea.Quit
		}
	}

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.state == stateShowDetail {
				return m, tea.Batch(m.closeDetail()...)
			}

		case "q":
			if m.state == stateShowBrowse && m.browse.typing() {
				// pass through all keys while editing an input
				var cmd tea.Cmd
				m.browse, cmd = m.browse.update(msg)
				return m, cmd
			}
			return m, tea.Quit

		case "left", "h", "delete":
			if m.state == stateShowDetail {
				cmds = append(cmds, m.closeDetail()...)
				return m, tea.Batch(cmds...)
			}

		// Ctrl+C always quits no matter where in the application you are.
		case "ctrl+c":
			return m, tea.Quit
		}

	// Window size is received when starting up and on every resize
	case tea.WindowSizeMsg:
		m.common.width = msg.Width
		m.common.height = msg.Height
		m.browse.setSize(msg.Width, msg.Height)
		m.detail.setSize(msg.Width, msg.Height)

	case errMsg:
		m.common.log.Error().Err(msg.err).Msg("ui error")

	case snapshotLoadedMsg:
		// Always route snapshots to the listing, even when the user is
		// reading a letter, so the collection is current on return.
		newBrowseModel, cmd := m.browse.update(msg)
		m.browse = newBrowseModel
		cmds = append(cmds, cmd)
		if m.state == stateShowDetail {
			cmds = append(cmds, m.detail.refreshCurrent(msg))
		}
		return m, tea.Batch(cmds...)

	case storeChangedMsg:
		m.common.log.Debug().Msg("registry changed, reloading snapshot")
		cmds = append(cmds, loadSnapshot(m.common.store), waitForStoreChange(m.common.store))
		return m, tea.Batch(cmds...)

	case openLetterMsg:
		m.state = stateShowDetail
		cmds = append(cmds, m.detail.load(msg.letter))
		return m, tea.Batch(cmds...)

	case contentRenderedMsg:
		newDetailModel, cmd := m.detail.update(msg)
		m.detail = newDetailModel
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Process children
	switch m.state {
	case stateShowBrowse:
		newBrowseModel, cmd := m.browse.update(msg)
		m.browse = newBrowseModel
		cmds = append(cmds, cmd)

	case stateShowDetail:
		newDetailModel, cmd := m.detail.update(msg)
		m.detail = newDetailModel
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.fatalErr != nil {
		return errorView(m.fatalErr, true)
	}

	switch m.state {
	case stateShowDetail:
		return m.detail.View()
	default:
		return m.browse.view()
	}
}

func logoView(text string) string {
	return te.String(text).
		Bold().
		Foreground(logoTextColor).
		Background(lib.Fuschia.Color()).
		String()
}
