package sleep

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/attune/internal/models"
)

type AddEntryMsg struct{}

type Item struct {
	Entry models.SleepEntry
}

func (i Item) Title() string {
	hours := i.Entry.DurationMinutes / 60
	mins := i.Entry.DurationMinutes % 60
	return fmt.Sprintf("😴 %s — %dh %02dm", i.Entry.Date, hours, mins)
}

func (i Item) Description() string {
	return fmt.Sprintf("%s → %s | quality: %s", i.Entry.Bedtime, i.Entry.Wakeup, i.Entry.Quality)
}

func (i Item) FilterValue() string { return i.Entry.Date }

type KeyMap struct {
	Add key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "log sleep"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(entries []models.SleepEntry, width, height int) Model {
	l := list.New(buildItems(entries), list.NewDefaultDelegate(), width, height)
	l.Title = "Sleep"
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

func buildItems(entries []models.SleepEntry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}
	return items
}

func (m *Model) SetEntries(entries []models.SleepEntry) {
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
		return "\n  No sleep entries yet.\n  Press 'a' to log last night."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
