// Package chat renders the conversation with the assistant: a scrollback
// viewport over the transcript plus a single-line input. Sending is reported
// to the parent model via SendMsg; the parent runs the turn and calls
// SetMessages when the reply lands.
package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/attune/internal/models"
)

// SendMsg asks the parent model to run a chat turn.
type SendMsg struct {
	Text string
}

type KeyMap struct {
	Send key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
	}
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	botStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110")).
			Bold(true)

	bodyStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)

type Model struct {
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	keys     KeyMap

	messages []models.ChatMessage
	typing   bool
	offline  bool
	width    int
	height   int
}

func New(messages []models.ChatMessage, offline bool, width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "How are you feeling?"
	ti.CharLimit = 2000
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	vp := viewport.New(width, height)

	m := Model{
		viewport: vp,
		input:    ti,
		spinner:  sp,
		keys:     DefaultKeyMap(),
		messages: messages,
		offline:  offline,
		width:    width,
		height:   height,
	}
	m.refreshContent()
	return m
}

// SetMessages replaces the rendered transcript and scrolls to the bottom.
func (m *Model) SetMessages(messages []models.ChatMessage) {
	m.messages = messages
	m.refreshContent()
}

// SetTyping toggles the thinking indicator and input availability.
func (m *Model) SetTyping(typing bool) {
	m.typing = typing
	m.refreshContent()
}

func (m *Model) Typing() bool {
	return m.typing
}

func (m *Model) refreshContent() {
	var b strings.Builder
	if len(m.messages) == 0 {
		b.WriteString("\n  Say hello - the assistant is listening.\n")
		if m.offline {
			b.WriteString("  (offline mode: responses come from local heuristics)\n")
		}
	}
	for _, msg := range m.messages {
		if msg.Sender == models.SenderUser {
			b.WriteString(userStyle.Render("you") + "\n")
		} else {
			b.WriteString(botStyle.Render("attune") + "\n")
		}
		b.WriteString(bodyStyle.Width(m.width - 2).Render(msg.Text))
		b.WriteString("\n\n")
	}
	if m.typing {
		b.WriteString(botStyle.Render("attune") + "\n")
		b.WriteString(bodyStyle.Render(m.spinner.View() + " thinking..."))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Send) && !m.typing {
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				m.input.Reset()
				return m, func() tea.Msg { return SendMsg{Text: text} }
			}
			return m, nil
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.typing {
			m.refreshContent()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	prompt := "> " + m.input.View()
	if m.typing {
		prompt = "  (waiting for reply...)"
	}
	return m.viewport.View() + "\n" + prompt
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	// One line for the input prompt.
	m.viewport.Height = height - 1
	m.input.Width = width - 4
	m.refreshContent()
}
