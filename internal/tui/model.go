// Package tui renders the consultation chat in the terminal.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/TALA-AI/tala-web/internal/chat"
)

// Model is the Bubble Tea model for the chat front end. Each submitted
// line triggers exactly one backend call and blocks until the response
// is rendered.
type Model struct {
	session  *chat.Session
	input    textinput.Model
	viewport viewport.Model
	status   string
	ready    bool
}

// New creates a chat model over the given session.
func New(session *chat.Session) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "사고 상황을 설명해주세요..."
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{session: session, input: ti, viewport: vp, status: "교통사고 AI 상담 챗봇"}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, fh := transcriptStyle.GetFrameSize()
		_, qh := inputBoxStyle.GetFrameSize()
		reserved := 1 + 1 + qh + 1 // header, status, input frame, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-fh)
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			if line != "" {
				m.session.Submit(context.Background(), line)
				m.input.SetValue("")
				m.input.Placeholder = placeholderFor(m.session.State())
				m.viewport.SetContent(m.renderTranscript())
				m.viewport.GotoBottom()
				return m, nil
			}
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("TALA 교통사고 AI 상담")
	transcript := transcriptStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + transcript + "\n" + input + "\n" + status
}

func (m Model) renderTranscript() string {
	turns := m.session.Turns()
	if len(turns) == 0 {
		return "사고 상황을 설명하면 유사한 사고 사례를 찾아드립니다."
	}
	var b strings.Builder
	for i, turn := range turns {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if turn.Role == chat.RoleUser {
			b.WriteString(userStyle.Render("나: "))
		} else {
			b.WriteString(assistantStyle.Render("상담봇: "))
		}
		b.WriteString(turn.Content)
	}
	return b.String()
}

func placeholderFor(state chat.State) string {
	switch state {
	case chat.AwaitingCaseSelection:
		return "사고 번호를 입력해주세요 (예: 1, 2, 3)"
	case chat.AwaitingQuestion:
		return "해당 사고에 대해 질문해주세요!"
	default:
		return "사고 상황을 설명해주세요..."
	}
}

var (
	transcriptStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	userStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	assistantStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
