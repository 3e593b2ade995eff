package stress

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/attune/internal/models"
)

type AddEntryMsg struct{}

type Item struct {
	Entry models.StressEntry
}

func levelBadge(level models.StressLevel) string {
	switch level {
	case models.StressVeryHigh:
		return "🔴 very high"
	case models.StressHigh:
		return "🟠 high"
	case models.StressLow:
		return "🟢 low"
	case models.StressVeryLow:
		return "🟢 very low"
	default:
		return "🟡 moderate"
	}
}

func (i Item) Title() string {
	return levelBadge(i.Entry.StressLevel)
}

func (i Item) Description() string {
	desc := i.Entry.Date
	if i.Entry.Note != "" {
		desc += " | " + i.Entry.Note
	}
	return desc
}

func (i Item) FilterValue() string { return i.Entry.Note }

type KeyMap struct {
	Add key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "log stress"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(entries []models.StressEntry, width, height int) Model {
	l := list.New(buildItems(entries), list.NewDefaultDelegate(), width, height)
	l.Title = "Stress"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add}
	}

	return Model{list: l, keys: keys}
}

func buildItems(entries []models.StressEntry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}
	return items
}

func (m *Model) SetEntries(entries []models.StressEntry) {
	m.list.SetItems(buildItems(entries))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		if key.Matches(msg, m.keys.Add) {
			return m, func() tea.Msg { return AddEntryMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No stress entries yet.\n  Press 'a' to log how you're doing, or just tell the assistant."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
