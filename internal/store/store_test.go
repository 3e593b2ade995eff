package store

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/attune/internal/models"
)

func TestAddHabit(t *testing.T) {
	s := NewSession()

	h, err := s.AddHabit("Morning walk", models.CategoryExercise, false)
	if err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}
	if h.ID == "" {
		t.Error("expected a generated ID")
	}
	if h.Name != "Morning walk" {
		t.Errorf("name = %q", h.Name)
	}

	t.Run("duplicate name rejected", func(t *testing.T) {
		if _, err := s.AddHabit("morning walk", models.CategoryExercise, false); !errors.Is(err, ErrDuplicate) {
			t.Errorf("expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("punctuation-insensitive duplicate rejected", func(t *testing.T) {
		if _, err := s.AddHabit("Morning walk!", models.CategoryExercise, false); !errors.Is(err, ErrDuplicate) {
			t.Errorf("expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		if _, err := s.AddHabit("   ", models.CategoryHealth, false); err == nil {
			t.Error("expected error for empty name")
		}
	})
}

func TestToggleHabit(t *testing.T) {
	s := NewSession()
	h, _ := s.AddHabit("Meditation", models.CategoryMindfulness, false)

	got, err := s.ToggleHabit(h.ID)
	if err != nil {
		t.Fatalf("ToggleHabit failed: %v", err)
	}
	if !got.Completed || got.Streak != 1 {
		t.Errorf("after toggle: completed=%v streak=%d, want true/1", got.Completed, got.Streak)
	}

	got, _ = s.ToggleHabit(h.ID)
	if got.Completed || got.Streak != 0 {
		t.Errorf("after untoggle: completed=%v streak=%d, want false/0", got.Completed, got.Streak)
	}

	if _, err := s.ToggleHabit("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteHabitFreesTitle(t *testing.T) {
	s := NewSession()
	h, _ := s.AddHabit("Evening stretch", models.CategoryExercise, false)

	if err := s.DeleteHabit(h.ID); err != nil {
		t.Fatalf("DeleteHabit failed: %v", err)
	}
	if _, err := s.AddHabit("Evening stretch", models.CategoryExercise, false); err != nil {
		t.Errorf("title should be reusable after delete, got %v", err)
	}
}

func TestRenameHabit(t *testing.T) {
	s := NewSession()
	h, _ := s.AddHabit("Read before bed", models.CategoryLearning, false)
	s.AddHabit("Drink water", models.CategoryHealth, false)

	t.Run("rename to taken title rejected", func(t *testing.T) {
		if _, err := s.RenameHabit(h.ID, "drink water"); !errors.Is(err, ErrDuplicate) {
			t.Errorf("expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("rename frees old title", func(t *testing.T) {
		if _, err := s.RenameHabit(h.ID, "Read in the morning"); err != nil {
			t.Fatalf("RenameHabit failed: %v", err)
		}
		if _, err := s.AddHabit("Read before bed", models.CategoryLearning, false); err != nil {
			t.Errorf("old title should be reusable, got %v", err)
		}
	})

	t.Run("case-only rename allowed", func(t *testing.T) {
		if _, err := s.RenameHabit(h.ID, "read in the Morning"); err != nil {
			t.Errorf("case change of own name should succeed, got %v", err)
		}
	})
}

func TestFindHabitByName(t *testing.T) {
	s := NewSession()
	s.AddHabit("Morning walk", models.CategoryExercise, false)

	if _, ok := s.FindHabitByName("  MORNING WALK "); !ok {
		t.Error("expected case-insensitive match")
	}
	if _, ok := s.FindHabitByName("evening walk"); ok {
		t.Error("expected no match")
	}
}

func TestAddTodos(t *testing.T) {
	s := NewSession()
	s.now = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }

	added, err := s.AddTodos([]models.TaskCandidate{
		{Title: "Take a 15-minute walk outside", Category: models.CategoryExercise},
		{Title: "take a 15-minute walk outside", Category: models.CategoryExercise},
		{Title: "Deep breathing exercise", Category: models.CategoryMindfulness},
	})
	if err != nil {
		t.Fatalf("AddTodos failed: %v", err)
	}
	if len(added) != 2 {
		t.Fatalf("added = %v, want 2 titles", added)
	}
	if len(s.Todos()) != 2 {
		t.Errorf("stored %d todos, want 2", len(s.Todos()))
	}

	t.Run("cross-collection duplicate skipped", func(t *testing.T) {
		s.AddHabit("Mindful journaling", models.CategoryReflection, false)
		added, _ := s.AddTodos([]models.TaskCandidate{{Title: "Mindful journaling", Category: models.CategoryReflection}})
		if len(added) != 0 {
			t.Errorf("habit title should block the todo, added %v", added)
		}
	})

	t.Run("empty title reported after valid inserts", func(t *testing.T) {
		added, err := s.AddTodos([]models.TaskCandidate{
			{Title: "  ", Category: models.CategoryHealth},
			{Title: "Drink a glass of water", Category: models.CategoryHealth},
		})
		if err == nil {
			t.Error("expected an error for the empty title")
		}
		if len(added) != 1 {
			t.Errorf("valid candidate should still be added, got %v", added)
		}
	})
}

func TestToggleTodo(t *testing.T) {
	s := NewSession()
	added, _ := s.AddTodos([]models.TaskCandidate{{Title: "Progressive muscle relaxation", Category: models.CategoryMindfulness}})
	if len(added) != 1 {
		t.Fatalf("setup failed: %v", added)
	}
	id := s.Todos()[0].ID

	todo, err := s.ToggleTodo(id)
	if err != nil {
		t.Fatalf("ToggleTodo failed: %v", err)
	}
	if !todo.Completed || todo.CompletedAt == nil {
		t.Error("expected completion flag and timestamp")
	}

	todo, _ = s.ToggleTodo(id)
	if todo.Completed || todo.CompletedAt != nil {
		t.Error("expected completion cleared")
	}
}

func TestRegisterSuggestions(t *testing.T) {
	s := NewSession()

	added := s.RegisterSuggestions([]models.TaskCandidate{
		{Title: "Box breathing for 5 minutes", Category: models.CategoryMindfulness},
	}, false)
	if len(added) != 1 {
		t.Fatalf("added = %v, want 1", added)
	}

	t.Run("same title registers once", func(t *testing.T) {
		added := s.RegisterSuggestions([]models.TaskCandidate{
			{Title: "box breathing, for 5 minutes!", Category: models.CategoryMindfulness},
		}, false)
		if len(added) != 0 {
			t.Errorf("normalized duplicate should be skipped, added %v", added)
		}
		if len(s.Suggestions()) != 1 {
			t.Errorf("stored %d suggestions, want 1", len(s.Suggestions()))
		}
	})

	t.Run("titles in habits and todos block suggestions", func(t *testing.T) {
		s.AddHabit("Morning walk", models.CategoryExercise, false)
		s.AddTodos([]models.TaskCandidate{{Title: "Drink water", Category: models.CategoryHealth}})

		added := s.RegisterSuggestions([]models.TaskCandidate{
			{Title: "morning walk", Category: models.CategoryExercise},
			{Title: "DRINK WATER", Category: models.CategoryHealth},
			{Title: "Gentle stretching", Category: models.CategoryExercise},
		}, false)
		if len(added) != 1 || added[0] != "Gentle stretching" {
			t.Errorf("added = %v, want only the new title", added)
		}
	})
}

func TestPromoteSuggestion(t *testing.T) {
	s := NewSession()
	s.RegisterSuggestions([]models.TaskCandidate{{Title: "Mindful journaling", Category: models.CategoryReflection}}, false)
	id := s.Suggestions()[0].ID

	habit, err := s.PromoteSuggestion(id)
	if err != nil {
		t.Fatalf("PromoteSuggestion failed: %v", err)
	}
	if habit.Name != "Mindful journaling" {
		t.Errorf("habit name = %q", habit.Name)
	}
	if len(s.Suggestions()) != 0 {
		t.Error("suggestion should be removed after promotion")
	}

	// Title stays claimed by the promoted habit.
	added := s.RegisterSuggestions([]models.TaskCandidate{{Title: "mindful journaling", Category: models.CategoryReflection}}, false)
	if len(added) != 0 {
		t.Errorf("promoted title should still block suggestions, added %v", added)
	}
}

func TestDismissSuggestion(t *testing.T) {
	s := NewSession()
	s.RegisterSuggestions([]models.TaskCandidate{{Title: "Take a walk", Category: models.CategoryExercise}}, false)
	id := s.Suggestions()[0].ID

	if err := s.DismissSuggestion(id); err != nil {
		t.Fatalf("DismissSuggestion failed: %v", err)
	}
	added := s.RegisterSuggestions([]models.TaskCandidate{{Title: "Take a walk", Category: models.CategoryExercise}}, false)
	if len(added) != 1 {
		t.Error("dismissed title should be reusable")
	}
}

func TestClearSuggestions(t *testing.T) {
	s := NewSession()
	s.RegisterSuggestions([]models.TaskCandidate{
		{Title: "Take a walk", Category: models.CategoryExercise},
		{Title: "Call a friend", Category: models.CategoryHealth},
	}, false)

	if n := s.ClearSuggestions(); n != 2 {
		t.Errorf("ClearSuggestions returned %d, want 2", n)
	}
	if got := s.Suggestions(); len(got) != 0 {
		t.Errorf("expected empty suggestions, got %d", len(got))
	}
	added := s.RegisterSuggestions([]models.TaskCandidate{{Title: "take a walk", Category: models.CategoryExercise}}, false)
	if len(added) != 1 {
		t.Error("cleared titles should be reusable")
	}
}
