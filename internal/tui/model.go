package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"faqmatch/internal/domain"
)

// MatcherPort is the TUI-facing subset of the matching service.
type MatcherPort interface {
	Predict(query string) (*domain.PredictResult, error)
}

// Model is the Bubble Tea model for the interactive query screen.
type Model struct {
	matcher   MatcherPort
	input     textinput.Model
	viewport  viewport.Model
	matches   []domain.Match
	status    string
	cursor    int
	ready     bool
	lastQuery string
}

// New creates a new TUI model instance over a trained matcher.
func New(matcher MatcherPort, corpusSize int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a question and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		matcher:  matcher,
		input:    ti,
		viewport: vp,
		status:   fmt.Sprintf("%d questions loaded. Type to search.", corpusSize),
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around result and query boxes
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		totalHeaderLines := 1
		totalFooterLines := 1
		reserved := totalHeaderLines + totalFooterLines + qh + 1 // 1 spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderCurrentMatch())
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				res, err := m.matcher.Predict(q)
				if err != nil {
					m.status = "Error: " + err.Error()
					m.matches = nil
				} else if len(res.Matches) == 0 {
					m.status = fmt.Sprintf("No match above threshold for %q", q)
					m.matches = nil
				} else {
					m.status = fmt.Sprintf("Matches for %q", q)
					m.matches = res.Matches
					m.cursor = 0
					m.lastQuery = q
				}
				m.viewport.SetContent(m.renderCurrentMatch())
				return m, nil
			}
		case "down":
			if len(m.matches) > 0 {
				m.cursor = (m.cursor + 1) % len(m.matches)
				m.viewport.SetContent(m.renderCurrentMatch())
				return m, nil
			}
		case "up":
			if len(m.matches) > 0 {
				m.cursor = (m.cursor - 1 + len(m.matches)) % len(m.matches)
				m.viewport.SetContent(m.renderCurrentMatch())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and current match.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("FAQ Match")
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) renderCurrentMatch() string {
	if len(m.matches) == 0 {
		return "No matches yet."
	}
	r := m.matches[m.cursor]
	title := fmt.Sprintf("Match %d/%d  score=%.3f  id=%d", m.cursor+1, len(m.matches), r.Score, r.ID)
	question := questionStyle.Render("Q: " + r.Question)
	answer := "A: " + r.Answer
	return title + "\n\n" + question + "\n" + answer
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	questionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
