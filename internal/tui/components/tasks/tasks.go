// Package tasks shows todos and chat suggestions in one list. Suggestions can
// be completed, promoted into habits, or dismissed; todos can be completed or
// deleted.
package tasks

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/attune/internal/models"
)

type ToggleTodoMsg struct {
	ID string
}

type DeleteTodoMsg struct {
	ID string
}

type ToggleSuggestionMsg struct {
	ID string
}

type PromoteSuggestionMsg struct {
	ID string
}

type DismissSuggestionMsg struct {
	ID string
}

type ClearSuggestionsMsg struct{}

// Item wraps either a todo or a suggestion.
type Item struct {
	Todo       *models.Todo
	Suggestion *models.Suggestion
}

func (i Item) Title() string {
	switch {
	case i.Todo != nil:
		check := "○"
		if i.Todo.Completed {
			check = "✓"
		}
		return fmt.Sprintf("%s %s", check, i.Todo.Title)
	case i.Suggestion != nil:
		check := "○"
		if i.Suggestion.Completed {
			check = "✓"
		}
		return fmt.Sprintf("%s %s", check, i.Suggestion.Name)
	}
	return ""
}

func (i Item) Description() string {
	switch {
	case i.Todo != nil:
		return fmt.Sprintf("todo | %s", i.Todo.Category)
	case i.Suggestion != nil:
		return fmt.Sprintf("suggested | %s | 'P' to make a habit, 'x' to dismiss", i.Suggestion.Category)
	}
	return ""
}

func (i Item) FilterValue() string {
	if i.Todo != nil {
		return i.Todo.Title
	}
	if i.Suggestion != nil {
		return i.Suggestion.Name
	}
	return ""
}

type KeyMap struct {
	Toggle   key.Binding
	Delete   key.Binding
	Promote  key.Binding
	Dismiss  key.Binding
	ClearAll key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete todo"),
		),
		Promote: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "promote suggestion"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss suggestion"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "clear all suggestions"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(todos []models.Todo, suggestions []models.Suggestion, width, height int) Model {
	l := list.New(buildItems(todos, suggestions), list.NewDefaultDelegate(), width, height)
	l.Title = "Tasks"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Delete, keys.Promote, keys.Dismiss, keys.ClearAll}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Delete, keys.Promote, keys.Dismiss, keys.ClearAll}
	}

	return Model{list: l, keys: keys}
}

func buildItems(todos []models.Todo, suggestions []models.Suggestion) []list.Item {
	items := make([]list.Item, 0, len(todos)+len(suggestions))
	for i := range todos {
		items = append(items, Item{Todo: &todos[i]})
	}
	for i := range suggestions {
		items = append(items, Item{Suggestion: &suggestions[i]})
	}
	return items
}

func (m *Model) SetTasks(todos []models.Todo, suggestions []models.Suggestion) {
	m.list.SetItems(buildItems(todos, suggestions))
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
		switch {
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Todo != nil {
					return m, func() tea.Msg { return ToggleTodoMsg{ID: i.Todo.ID} }
				}
				if i.Suggestion != nil {
					return m, func() tea.Msg { return ToggleSuggestionMsg{ID: i.Suggestion.ID} }
				}
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok && i.Todo != nil {
				return m, func() tea.Msg { return DeleteTodoMsg{ID: i.Todo.ID} }
			}
		case key.Matches(msg, m.keys.Promote):
			if i, ok := m.list.SelectedItem().(Item); ok && i.Suggestion != nil {
				return m, func() tea.Msg { return PromoteSuggestionMsg{ID: i.Suggestion.ID} }
			}
		case key.Matches(msg, m.keys.Dismiss):
			if i, ok := m.list.SelectedItem().(Item); ok && i.Suggestion != nil {
				return m, func() tea.Msg { return DismissSuggestionMsg{ID: i.Suggestion.ID} }
			}
		case key.Matches(msg, m.keys.ClearAll):
			return m, func() tea.Msg { return ClearSuggestionsMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  Nothing here yet.\n  Tasks and suggestions appear as you chat with the assistant."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
