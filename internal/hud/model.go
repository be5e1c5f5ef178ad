package hud

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/blockdeck/handview/internal/poker"
)

// BoardMsg delivers a new board state to the watch model
type BoardMsg struct {
	TableID   string
	Hole      []poker.Card
	Community []poker.Card
}

// FeedErrorMsg reports a feed failure; the model shows it and keeps the
// last known board on screen.
type FeedErrorMsg struct {
	Err error
}

// Model is the Bubble Tea model for live hand display. It holds the last
// board state pushed by the feed and re-evaluates on every update.
type Model struct {
	theme  Theme
	logger *log.Logger

	spinner   spinner.Model
	tableID   string
	hole      []poker.Card
	community []poker.Card
	feedErr   error
	quitting  bool
}

// NewModel creates a watch model with the given theme
func NewModel(theme Theme, logger *log.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	return Model{
		theme:   theme,
		logger:  logger,
		spinner: sp,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case BoardMsg:
		m.tableID = msg.TableID
		m.hole = msg.Hole
		m.community = msg.Community
		m.feedErr = nil
		m.logger.Debug("Board updated",
			"table", msg.TableID,
			"hole", len(msg.Hole),
			"community", len(msg.Community))
		return m, nil

	case FeedErrorMsg:
		m.feedErr = msg.Err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.tableID != "" {
		b.WriteString(m.theme.Detail.Render("table " + m.tableID))
		b.WriteString("\n\n")
	}

	if len(m.hole) == 0 {
		b.WriteString(m.spinner.View())
		b.WriteString(" waiting for cards...\n")
		return b.String()
	}

	b.WriteString("hole:  ")
	b.WriteString(m.theme.Cards(m.hole, nil))
	b.WriteString("\n")
	if len(m.community) > 0 {
		b.WriteString("board: ")
		b.WriteString(m.theme.Cards(m.community, nil))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.resultView())
	b.WriteString("\n")

	if m.feedErr != nil {
		b.WriteString(m.theme.Kicker.Render("feed: " + m.feedErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Kicker.Render("q to quit"))
	b.WriteString("\n")
	return b.String()
}

// resultView shows the quick result for partial boards and switches to the
// full evaluation, with key cards highlighted, once the board is complete.
func (m Model) resultView() string {
	all := make([]poker.Card, 0, len(m.hole)+len(m.community))
	all = append(all, m.hole...)
	all = append(all, m.community...)

	if len(m.community) >= 5 {
		ev, err := poker.Evaluate(all)
		if err == nil {
			return m.theme.Result(all, ev)
		}
	}

	res, ok := poker.QuickEvaluate(m.hole, m.community)
	if !ok {
		return m.spinner.View() + " board incomplete"
	}
	return m.theme.Quick(res)
}
