package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/attune/internal/models"
)

type EditSettingsMsg struct{}

type KeyMap struct {
	Edit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit settings"),
		),
	}
}

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(26)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))
)

type Model struct {
	settings models.Settings
	keys     KeyMap
}

func New(settings models.Settings, width, height int) Model {
	return Model{settings: settings, keys: DefaultKeyMap()}
}

func (m *Model) SetSettings(settings models.Settings) {
	m.settings = settings
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Edit) {
			return m, func() tea.Msg { return EditSettingsMsg{} }
		}
	}
	return m, nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString("\n")
	rows := [][2]string{
		{"Sound", onOff(m.settings.SoundEnabled)},
		{"Theme", m.settings.Theme},
		{"Chat panel (dashboard)", fmt.Sprintf("%d x %d", m.settings.ChatPanelWidth, m.settings.ChatPanelHeight)},
		{"Chat panel (tab)", fmt.Sprintf("%d x %d", m.settings.ChatTabPanelWidth, m.settings.ChatTabPanelHeight)},
		{"Notifications on exit", onOff(m.settings.NotificationsOnExit)},
	}
	for _, row := range rows {
		b.WriteString("  " + labelStyle.Render(row[0]) + valueStyle.Render(row[1]) + "\n")
	}
	b.WriteString("\n  Press 'e' to edit.\n")
	return b.String()
}

func (m *Model) SetSize(width, height int) {}
