package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const (
	modeListMinWidth = 72 // Below this the mode list becomes a row of tabs
	modeListWidth    = 16
	historyLimit     = 50
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	paneStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	activeModeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreHistory is the read side of score storage. *storage.Store implements it.
type ScoreHistory interface {
	TopScores(modeID string, limit int) ([]storage.ScoreEntry, error)
	GetModeStats(modeID string) (*storage.ModeStats, error)
}

// ScoreboardModel shows the finished games of one mode at a time.
type ScoreboardModel struct {
	store  ScoreHistory
	modes  []registry.ModeInfo
	keys   ScoreboardKeyMap
	help   help.Model
	table  table.Model
	width  int
	height int

	modeCursor int
	scores     []storage.ScoreEntry
	stats      *storage.ModeStats

	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens on the first registered mode. A nil store shows
// every mode as unplayed.
func NewScoreboardModel(store ScoreHistory, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		modes:  registry.List(),
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = newScoreTable(height)
	m.selectMode(0)
	return m
}

func newScoreTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 7},
			{Title: "Length", Width: 7},
			{Title: "Ended", Width: 11},
			{Title: "Played", Width: 13},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("22"))
	t.SetStyles(s)
	return t
}

// selectMode switches to mode i and reloads its history. Store errors show
// up as an empty table.
func (m *ScoreboardModel) selectMode(i int) {
	m.scores, m.stats = nil, nil
	if len(m.modes) == 0 {
		return
	}
	m.modeCursor = (i%len(m.modes) + len(m.modes)) % len(m.modes)

	if m.store != nil {
		id := m.modes[m.modeCursor].ID
		if scores, err := m.store.TopScores(id, historyLimit); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetModeStats(id); err == nil && stats.GamesCount > 0 {
			m.stats = stats
		}
	}

	m.table.SetRows(scoreRows(m.scores))
	m.table.GotoTop()
}

func scoreRows(scores []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Length),
			outcomeLabel(s.Outcome),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// outcomeLabel turns a stored outcome into a short column value.
func outcomeLabel(outcome string) string {
	switch outcome {
	case "out_of_bounds":
		return "edge"
	case "board_full":
		return "board full"
	case "":
		return "-"
	default:
		return outcome
	}
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.selectMode(m.modeCursor + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.selectMode(m.modeCursor - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(msg.Height)
		m.table.SetRows(scoreRows(m.scores))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.modes) > 0 {
		title += " - " + m.modes[m.modeCursor].Title
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	scores := paneStyle.Render(m.scorePane())
	if m.width >= modeListMinWidth {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, paneStyle.Render(m.modeList()), " ", scores))
	} else {
		b.WriteString(centerText(m.modeTabs(), m.width))
		b.WriteString("\n")
		b.WriteString(scores)
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) modeList() string {
	lines := []string{"Modes", strings.Repeat("─", modeListWidth-4)}
	for i, mode := range m.modes {
		if i == m.modeCursor {
			lines = append(lines, activeModeStyle.Render("> "+mode.Title))
		} else {
			lines = append(lines, "  "+mode.Title)
		}
	}
	return lipgloss.NewStyle().Width(modeListWidth - 4).Render(strings.Join(lines, "\n"))
}

func (m ScoreboardModel) modeTabs() string {
	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.modeCursor {
			tabs[i] = activeModeStyle.Render("[" + mode.Title + "]")
		} else {
			tabs[i] = dimStyle.Render(" " + mode.Title + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// scorePane is the table plus a summary line, or a placeholder for a mode
// nobody has finished yet.
func (m ScoreboardModel) scorePane() string {
	if len(m.scores) == 0 {
		return dimStyle.Italic(true).Padding(1, 2).
			Render("No scores recorded yet.\nFinish a game to get on the board.")
	}

	summary := ""
	if m.stats != nil {
		summary = fmt.Sprintf("\nBest %d  Games %d  Average %.1f",
			m.stats.HighScore, m.stats.GamesCount, m.stats.AvgScore)
	}
	return m.table.View() + dimStyle.Render(summary)
}

// IsGoingBack reports whether the player asked for the menu rather than
// quitting.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// RunScoreboard shows the scoreboard. It returns true if the player wants the
// menu back, false if they quit.
func RunScoreboard(store ScoreHistory, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
