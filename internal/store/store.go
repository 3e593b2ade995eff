// Package store holds the in-memory wellness session state: habits, todos,
// chat-derived suggestions, stress/sleep/journal entries, and the chat
// transcript. Everything lives for the process lifetime only; durable data is
// limited to UI preferences handled elsewhere. A single normalized-title
// registry spans habits, todos, and suggestions so the same suggested text can
// never materialize twice across the three collections.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/attune/internal/models"
)

var (
	// ErrNotFound is returned when the referenced entity does not exist
	ErrNotFound = errors.New("entity not found")
	// ErrDuplicate is returned when an insert would violate title uniqueness
	ErrDuplicate = errors.New("a task with that title already exists")
)

// Session is the owned application-state object handed to the orchestrator
// and the views. All methods are safe for concurrent use; the TUI event loop
// and the orchestrator goroutine both touch it.
type Session struct {
	mu sync.Mutex

	habits      []models.Habit
	todos       []models.Todo
	suggestions []models.Suggestion

	stressEntries  []models.StressEntry
	sleepEntries   []models.SleepEntry
	journalEntries []models.JournalEntry
	messages       []models.ChatMessage

	// titles indexes normalized titles across habits, todos, and
	// suggestions. Every insert into those collections goes through it.
	titles map[string]struct{}

	now func() time.Time
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{
		titles: make(map[string]struct{}),
		now:    time.Now,
	}
}

// normalizeTitle lowercases, trims, and strips everything but letters,
// digits, and spaces, so "Morning walk!" and "morning walk" collide.
func normalizeTitle(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (s *Session) titleTaken(title string) bool {
	_, ok := s.titles[normalizeTitle(title)]
	return ok
}

func (s *Session) claimTitle(title string) {
	s.titles[normalizeTitle(title)] = struct{}{}
}

func (s *Session) releaseTitle(title string) {
	delete(s.titles, normalizeTitle(title))
}

// AddHabit creates a habit. Returns ErrDuplicate if an entity with the same
// normalized title already exists in any task-like collection.
func (s *Session) AddHabit(name string, category models.TaskCategory, permanent bool) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, errors.New("habit name cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.titleTaken(name) {
		return models.Habit{}, fmt.Errorf("%w: %q", ErrDuplicate, name)
	}

	habit := models.Habit{
		ID:          uuid.NewString(),
		Name:        name,
		Category:    category.OrDefault(),
		IsPermanent: permanent,
	}
	s.habits = append(s.habits, habit)
	s.claimTitle(name)
	return habit, nil
}

// ToggleHabit flips completion and adjusts the streak.
func (s *Session) ToggleHabit(id string) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.habits {
		if s.habits[i].ID != id {
			continue
		}
		s.habits[i].Completed = !s.habits[i].Completed
		if s.habits[i].Completed {
			s.habits[i].Streak++
		} else if s.habits[i].Streak > 0 {
			s.habits[i].Streak--
		}
		return s.habits[i], nil
	}
	return models.Habit{}, fmt.Errorf("%w: habit %s", ErrNotFound, id)
}

// RenameHabit changes a habit's name, keeping the title registry consistent.
func (s *Session) RenameHabit(id, newName string) (models.Habit, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return models.Habit{}, errors.New("habit name cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.habits {
		if s.habits[i].ID != id {
			continue
		}
		if normalizeTitle(newName) != normalizeTitle(s.habits[i].Name) && s.titleTaken(newName) {
			return models.Habit{}, fmt.Errorf("%w: %q", ErrDuplicate, newName)
		}
		s.releaseTitle(s.habits[i].Name)
		s.habits[i].Name = newName
		s.claimTitle(newName)
		return s.habits[i], nil
	}
	return models.Habit{}, fmt.Errorf("%w: habit %s", ErrNotFound, id)
}

// SetHabitPinned marks or unmarks a habit as permanent.
func (s *Session) SetHabitPinned(id string, pinned bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.habits {
		if s.habits[i].ID == id {
			s.habits[i].IsPermanent = pinned
			return nil
		}
	}
	return fmt.Errorf("%w: habit %s", ErrNotFound, id)
}

// DeleteHabit removes a habit and frees its title.
func (s *Session) DeleteHabit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.habits {
		if s.habits[i].ID == id {
			s.releaseTitle(s.habits[i].Name)
			s.habits = append(s.habits[:i], s.habits[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: habit %s", ErrNotFound, id)
}

// FindHabitByName looks a habit up by case-insensitive trimmed name. Used by
// the chat assistant to resolve habit-management commands.
func (s *Session) FindHabitByName(name string) (models.Habit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	want := strings.ToLower(strings.TrimSpace(name))
	for _, h := range s.habits {
		if strings.ToLower(strings.TrimSpace(h.Name)) == want {
			return h, true
		}
	}
	return models.Habit{}, false
}

// Habits returns a copy of the habit list.
func (s *Session) Habits() []models.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Habit, len(s.habits))
	copy(out, s.habits)
	return out
}

// AddTodos inserts the candidates that do not collide with an existing title
// and returns the titles actually added. Duplicates are skipped silently;
// candidates with empty titles are rejected with an error after the valid
// ones have been applied.
func (s *Session) AddTodos(candidates []models.TaskCandidate) (added []string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range candidates {
		title := strings.TrimSpace(c.Title)
		if title == "" {
			err = errors.New("todo title cannot be empty")
			continue
		}
		if s.titleTaken(title) {
			continue
		}
		s.todos = append(s.todos, models.Todo{
			ID:        uuid.NewString(),
			Title:     title,
			Category:  c.Category.OrDefault(),
			CreatedAt: s.now(),
		})
		s.claimTitle(title)
		added = append(added, title)
	}
	return added, err
}

// ToggleTodo flips completion and stamps or clears the completion time.
func (s *Session) ToggleTodo(id string) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID != id {
			continue
		}
		s.todos[i].Completed = !s.todos[i].Completed
		if s.todos[i].Completed {
			t := s.now()
			s.todos[i].CompletedAt = &t
		} else {
			s.todos[i].CompletedAt = nil
		}
		return s.todos[i], nil
	}
	return models.Todo{}, fmt.Errorf("%w: todo %s", ErrNotFound, id)
}

// DeleteTodo removes a todo and frees its title.
func (s *Session) DeleteTodo(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID == id {
			s.releaseTitle(s.todos[i].Title)
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: todo %s", ErrNotFound, id)
}

// Todos returns a copy of the todo list.
func (s *Session) Todos() []models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// RegisterSuggestions records chat-derived task suggestions, skipping any
// whose normalized title already exists in habits, todos, or suggestions.
// Returns the names actually added; len(candidates)-len(added) were
// duplicates.
func (s *Session) RegisterSuggestions(candidates []models.TaskCandidate, highlighted bool) (added []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range candidates {
		name := strings.TrimSpace(c.Title)
		if name == "" || s.titleTaken(name) {
			continue
		}
		s.suggestions = append(s.suggestions, models.Suggestion{
			ID:          uuid.NewString(),
			Name:        name,
			Category:    c.Category.OrDefault(),
			Source:      models.SuggestionSourceChat,
			Highlighted: highlighted,
			Timestamp:   s.now(),
		})
		s.claimTitle(name)
		added = append(added, name)
	}
	return added
}

// ToggleSuggestion flips completion and adjusts the streak, mirroring habits.
func (s *Session) ToggleSuggestion(id string) (models.Suggestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.suggestions {
		if s.suggestions[i].ID != id {
			continue
		}
		s.suggestions[i].Completed = !s.suggestions[i].Completed
		if s.suggestions[i].Completed {
			t := s.now()
			s.suggestions[i].CompletedAt = &t
			s.suggestions[i].Streak++
		} else {
			s.suggestions[i].CompletedAt = nil
			if s.suggestions[i].Streak > 0 {
				s.suggestions[i].Streak--
			}
		}
		return s.suggestions[i], nil
	}
	return models.Suggestion{}, fmt.Errorf("%w: suggestion %s", ErrNotFound, id)
}

// PromoteSuggestion converts an accepted suggestion into a habit. The title
// stays claimed, so the move cannot introduce a duplicate.
func (s *Session) PromoteSuggestion(id string) (models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.suggestions {
		if s.suggestions[i].ID != id {
			continue
		}
		sg := s.suggestions[i]
		s.suggestions = append(s.suggestions[:i], s.suggestions[i+1:]...)
		habit := models.Habit{
			ID:       uuid.NewString(),
			Name:     sg.Name,
			Category: sg.Category,
			Streak:   sg.Streak,
		}
		s.habits = append(s.habits, habit)
		return habit, nil
	}
	return models.Habit{}, fmt.Errorf("%w: suggestion %s", ErrNotFound, id)
}

// DismissSuggestion drops a suggestion and frees its title for future turns.
func (s *Session) DismissSuggestion(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.suggestions {
		if s.suggestions[i].ID == id {
			s.releaseTitle(s.suggestions[i].Name)
			s.suggestions = append(s.suggestions[:i], s.suggestions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: suggestion %s", ErrNotFound, id)
}

// ClearSuggestions drops every suggestion and frees their titles.
func (s *Session) ClearSuggestions() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.suggestions)
	for _, sg := range s.suggestions {
		s.releaseTitle(sg.Name)
	}
	s.suggestions = nil
	return n
}

// Suggestions returns a copy of the suggestion list.
func (s *Session) Suggestions() []models.Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Suggestion, len(s.suggestions))
	copy(out, s.suggestions)
	return out
}
