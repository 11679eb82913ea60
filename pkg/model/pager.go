package model

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	lib "github.com/charmbracelet/charm/ui/common"
	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"

	"github.com/letterdesk/letterdesk/pkg/text"
	"github.com/letterdesk/letterdesk/pkg/types/v1"
	"github.com/letterdesk/letterdesk/pkg/ui"
)

const statusBarHeight = 1

var (
	detailHelpHeight int

	statusBarNoteFg = lib.NewColorPair("#7D7D7D", "#656565")
	statusBarBg     = lib.NewColorPair("#242424", "#E6E6E6")

	// Styling funcs.
	statusBarScrollPosStyle = ui.NewStyle(lib.NewColorPair("#5A5A5A", "#949494"), statusBarBg, false)
	statusBarNoteStyle      = ui.NewStyle(statusBarNoteFg, statusBarBg, false)
	statusBarHelpStyle      = ui.NewStyle(statusBarNoteFg, lib.NewColorPair("#323232", "#DCDCDC"), false)
	helpViewStyle           = ui.NewStyle(statusBarNoteFg, lib.NewColorPair("#1B1B1B", "#f2f2f2"), false)
)

type contentRenderedMsg string

type detailModel struct {
	common   *commonModel
	viewport viewport.Model
	showHelp bool

	// The letter being shown, sans-glamour rendering. We cache it here so
	// we can re-render it on resize, and we keep it briefly after closing
	// so the exit transition never draws against nil.
	currentLetter *v1.Letter
	releaseTimer  *time.Timer
}

func newDetailModel(common *commonModel) *detailModel {
	vp := viewport.Model{}
	vp.YPosition = 0

	return &detailModel{
		common:   common,
		viewport: vp,
	}
}

func (m *detailModel) setSize(w, h int) {
	m.viewport.Width = w
	m.viewport.Height = h - statusBarHeight

	if m.showHelp {
		if detailHelpHeight == 0 {
			detailHelpHeight = strings.Count(m.helpView(), "\n")
		}
		m.viewport.Height -= (statusBarHeight + detailHelpHeight)
	}
}

func (m *detailModel) toggleHelp() {
	m.showHelp = !m.showHelp
	m.setSize(m.common.width, m.common.height)
	if m.viewport.PastBottom() {
		m.viewport.GotoBottom()
	}
}

// load points the pager at a letter and kicks off rendering.
func (m *detailModel) load(l *v1.Letter) tea.Cmd {
	if m.releaseTimer != nil {
		m.releaseTimer.Stop()
	}
	m.currentLetter = l
	m.viewport.YOffset = 0
	return renderWithGlamour(m, letterMarkdown(l))
}

// scheduleRelease keeps the letter reference alive for the close delay,
// then drops it. Presentation only; pressing esc already returned control
// to the listing.
func (m *detailModel) scheduleRelease() tea.Cmd {
	if m.releaseTimer != nil {
		m.releaseTimer.Stop()
	}
	delay := m.common.cfg.DetailCloseDelay
	if delay <= 0 {
		m.release()
		return nil
	}
	m.releaseTimer = time.NewTimer(delay)
	t := m.releaseTimer
	return func() tea.Msg {
		<-t.C
		return detailReleasedMsg{}
	}
}

func (m *detailModel) release() {
	if m.showHelp {
		m.toggleHelp()
	}
	m.currentLetter = nil
	m.viewport.SetContent("")
	m.viewport.YOffset = 0
}

// refreshCurrent re-renders the open letter from a fresh snapshot, in case
// the record changed underneath us.
func (m *detailModel) refreshCurrent(letters []*v1.Letter) tea.Cmd {
	if m.currentLetter == nil {
		return nil
	}
	for _, l := range letters {
		if l.ID == m.currentLetter.ID {
			m.currentLetter = l
			return renderWithGlamour(m, letterMarkdown(l))
		}
	}
	return nil
}

func (m *detailModel) update(msg tea.Msg) (*detailModel, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "home", "g":
			m.viewport.GotoTop()
			if m.viewport.HighPerformanceRendering {
				cmds = append(cmds, viewport.Sync(m.viewport))
			}
		case "end", "G":
			m.viewport.GotoBottom()
			if m.viewport.HighPerformanceRendering {
				cmds = append(cmds, viewport.Sync(m.viewport))
			}
		case "?":
			m.toggleHelp()
			if m.viewport.HighPerformanceRendering {
				cmds = append(cmds, viewport.Sync(m.viewport))
			}
		}

	case contentRenderedMsg:
		m.viewport.SetContent(string(msg))
		if m.viewport.HighPerformanceRendering {
			cmds = append(cmds, viewport.Sync(m.viewport))
		}

	case detailReleasedMsg:
		m.release()
		return m, nil

	// We've received terminal dimensions, either for the first time or
	// after a resize
	case tea.WindowSizeMsg:
		if m.currentLetter != nil {
			return m, renderWithGlamour(m, letterMarkdown(m.currentLetter))
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m detailModel) View() string {
	var b strings.Builder
	fmt.Fprint(&b, m.viewport.View()+"\n")

	m.statusBarView(&b)

	if m.showHelp {
		fmt.Fprint(&b, "\n"+m.helpView())
	}

	return b.String()
}

func (m detailModel) statusBarView(b *strings.Builder) {
	const (
		minPercent               float64 = 0.0
		maxPercent               float64 = 1.0
		percentToStringMagnitude float64 = 100.0
	)

	kind := "letter"
	if m.currentLetter != nil {
		kind = fmt.Sprintf("%s %s", m.currentLetter.Direction.Label(), m.currentLetter.Type.Label())
	}

	// Logo
	logo := logoView(fmt.Sprintf(" %s ", kind))

	// Scroll percent
	percent := math.Max(minPercent, math.Min(maxPercent, m.viewport.ScrollPercent()))
	scrollPercent := statusBarScrollPosStyle(fmt.Sprintf(" %3.f%% ", percent*percentToStringMagnitude))

	// "Help" note
	helpNote := statusBarHelpStyle(" ? Help ")

	// Note
	var note string
	if m.currentLetter != nil {
		note = m.currentLetter.Subject
	}
	note = text.TruncateWithTail(" "+note+" ", uint(max(0,
		m.common.width-
			ansi.PrintableRuneWidth(logo)-
			ansi.PrintableRuneWidth(scrollPercent)-
			ansi.PrintableRuneWidth(helpNote),
	)), ellipsis)
	note = statusBarNoteStyle(note)

	// Empty space
	padding := max(0,
		m.common.width-
			ansi.PrintableRuneWidth(logo)-
			ansi.PrintableRuneWidth(note)-
			ansi.PrintableRuneWidth(scrollPercent)-
			ansi.PrintableRuneWidth(helpNote),
	)
	emptySpace := statusBarNoteStyle(strings.Repeat(" ", padding))

	fmt.Fprintf(b, "%s%s%s%s%s",
		logo,
		note,
		emptySpace,
		scrollPercent,
		helpNote,
	)
}

func (m detailModel) helpView() (s string) {
	col1 := []string{
		"g/home  go to top",
		"G/end   go to bottom",
		"",
		"esc     back to listing",
		"q       quit",
	}

	s += "\n"
	s += "k/↑      up                  " + col1[0] + "\n"
	s += "j/↓      down                " + col1[1] + "\n"
	s += "b/pgup   page up             " + col1[2] + "\n"
	s += "f/pgdn   page down           " + col1[3] + "\n"
	s += "u        ½ page up           " + col1[4] + "\n"
	s += "d        ½ page down         "

	if len(col1) > 5 {
		s += col1[5]
	}

	s = indent(s, 2)

	// Fill up empty cells with spaces for background coloring
	if m.common.width > 0 {
		lines := strings.Split(s, "\n")
		for i := 0; i < len(lines); i++ {
			l := runewidth.StringWidth(lines[i])
			n := max(m.common.width-l, 0)
			lines[i] += strings.Repeat(" ", n)
		}

		s = strings.Join(lines, "\n")
	}

	return helpViewStyle(s)
}

// letterMarkdown lays a letter out as a markdown document for glamour.
func letterMarkdown(l *v1.Letter) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", l.Subject)

	write := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "**%s:** %s\n\n", label, value)
	}

	write("Direction", l.Direction.Label())
	write("Type", l.Type.Label())
	write("Agenda number", l.AgendaNumber)
	write("Document number", l.DocumentNumber)
	write("Origin", l.Origin)
	write("Destination", l.Destination)
	if !l.LetterDate.IsZero() {
		write("Letter date", l.LetterDate.Format("02 Jan 2006"))
	}
	write("Received", l.ReceivedAt.Format("02 Jan 2006 15:04 MST"))

	if len(l.DispositionTargets) > 0 {
		labels := make([]string, 0, len(l.DispositionTargets))
		for _, t := range l.DispositionTargets {
			labels = append(labels, t.Label())
		}
		write("Disposition to", strings.Join(labels, ", "))
	}

	if l.DispositionContent != "" {
		fmt.Fprintf(&b, "## Disposition\n\n%s\n\n", l.DispositionContent)
	}

	if len(l.Attachments) > 0 {
		fmt.Fprint(&b, "## Attachments\n\n")
		for _, a := range l.Attachments {
			if a.SizeBytes > 0 {
				fmt.Fprintf(&b, "* %s (%s)\n", a.Filename, humanize.IBytes(uint64(a.SizeBytes)))
			} else {
				fmt.Fprintf(&b, "* %s\n", a.Filename)
			}
		}
		fmt.Fprint(&b, "\n")
	}

	return b.String()
}

// COMMANDS

func renderWithGlamour(m *detailModel, md string) tea.Cmd {
	return func() tea.Msg {
		s, err := glamourRender(m, md)
		if err != nil {
			return errMsg{err}
		}
		return contentRenderedMsg(s)
	}
}

// This is where the magic happens.
func glamourRender(m *detailModel, markdown string) (string, error) {
	width := max(0, m.viewport.Width)
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		return "", err
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", err
	}

	// trim lines
	lines := strings.Split(out, "\n")

	var content string
	for i, s := range lines {
		content += strings.TrimSpace(s)

		// don't add an artificial newline after the last split
		if i+1 < len(lines) {
			content += "\n"
		}
	}

	return content, nil
}
