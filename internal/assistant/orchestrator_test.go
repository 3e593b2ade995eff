package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/julianstephens/attune/internal/heuristics"
	"github.com/julianstephens/attune/internal/models"
	"github.com/julianstephens/attune/internal/notify"
	"github.com/julianstephens/attune/internal/store"
)

// offlineTurn wires an orchestrator with no model client, so every turn runs
// on the local fallbacks and is fully deterministic.
func offlineTurn(t *testing.T, pick int) (*Orchestrator, *store.Session, *notify.Center) {
	t.Helper()
	session := store.NewSession()
	center := notify.NewCenter()
	a := New(nil, center)
	a.pick = func(int) int { return pick }
	return NewOrchestrator(a, session, center), session, center
}

func TestHandleTurnStressfulMessage(t *testing.T) {
	o, session, center := offlineTurn(t, 0)

	msg, err := o.HandleTurn(context.Background(), "I'm so stressed about my work deadline")
	if err != nil {
		t.Fatalf("HandleTurn failed: %v", err)
	}
	if msg.Sender != models.SenderBot || msg.Text != cannedReplies[0] {
		t.Errorf("bot message = %+v", msg)
	}

	entries := session.StressEntries()
	if len(entries) != 1 {
		t.Fatalf("stress entries = %d, want 1", len(entries))
	}
	if entries[0].StressLevel != models.StressHigh {
		t.Errorf("level = %v, want high (negative affect with an explicit cause)", entries[0].StressLevel)
	}
	if !strings.Contains(entries[0].Note, "work deadline") {
		t.Errorf("note should quote the trigger text: %q", entries[0].Note)
	}
	if !strings.Contains(entries[0].Note, "Suggested 2 stress relief activities") {
		t.Errorf("note should count the suggested activities: %q", entries[0].Note)
	}

	suggestions := session.Suggestions()
	if len(suggestions) != 2 {
		t.Fatalf("suggestions = %+v, want the 2 fallback relief tasks", suggestions)
	}
	for _, s := range suggestions {
		if s.Source != models.SuggestionSourceChat {
			t.Errorf("suggestion %q source = %v", s.Name, s.Source)
		}
	}

	if msgs := session.Messages(); len(msgs) != 2 {
		t.Errorf("transcript = %d messages, want user plus bot", len(msgs))
	}

	var sawLevel, sawAdded bool
	for _, n := range center.Active() {
		if strings.Contains(n.Message, `detected as "high"`) {
			sawLevel = true
		}
		if strings.Contains(n.Message, "stress-related") {
			sawAdded = true
		}
	}
	if !sawLevel || !sawAdded {
		t.Errorf("banners = %+v, want a level notice and an added-tasks notice", center.Active())
	}
}

func TestHandleTurnOffTopic(t *testing.T) {
	o, session, center := offlineTurn(t, 0)

	msg, err := o.HandleTurn(context.Background(), "Can you tell me about the weather today?")
	if err != nil {
		t.Fatalf("HandleTurn failed: %v", err)
	}
	if msg.Text != offTopicRedirect {
		t.Errorf("reply = %q, want the fixed redirect", msg.Text)
	}

	if n := len(session.StressEntries()); n != 0 {
		t.Errorf("stress entries = %d, off-topic turns must not record stress", n)
	}
	if n := len(session.Suggestions()); n != 0 {
		t.Errorf("suggestions = %d, want 0", n)
	}
	if n := len(session.Todos()); n != 0 {
		t.Errorf("todos = %d, want 0", n)
	}
	if n := len(center.Active()); n != 0 {
		t.Errorf("banners = %d, want 0", n)
	}
	if msgs := session.Messages(); len(msgs) != 2 {
		t.Errorf("transcript = %d messages, want user plus bot", len(msgs))
	}
}

func TestHandleTurnRemoveHabit(t *testing.T) {
	o, session, _ := offlineTurn(t, 0)
	if _, err := session.AddHabit("Morning walk", models.CategoryExercise, false); err != nil {
		t.Fatalf("seed habit: %v", err)
	}

	msg, err := o.HandleTurn(context.Background(), "Remove morning walk from my habits")
	if err != nil {
		t.Fatalf("HandleTurn failed: %v", err)
	}
	if !strings.Contains(msg.Text, `removed "Morning walk"`) {
		t.Errorf("reply = %q, want a removal confirmation", msg.Text)
	}

	if n := len(session.Habits()); n != 0 {
		t.Errorf("habits = %d, want 0 after removal", n)
	}
	if n := len(session.StressEntries()); n != 0 {
		t.Errorf("stress entries = %d, habit commands skip stress analysis", n)
	}
	if msgs := session.Messages(); len(msgs) != 2 {
		t.Errorf("transcript = %d messages, want user plus bot", len(msgs))
	}
}

func TestHandleTurnAddHabitIntent(t *testing.T) {
	o, session, _ := offlineTurn(t, 0)

	msg, err := o.HandleTurn(context.Background(), "I want to start a new habit of meditation")
	if err != nil {
		t.Fatalf("HandleTurn failed: %v", err)
	}
	if !strings.Contains(msg.Text, "Daily meditation") {
		t.Errorf("reply = %q, want the added habit named", msg.Text)
	}

	habits := session.Habits()
	if len(habits) != 1 || habits[0].Name != "Daily meditation" {
		t.Fatalf("habits = %+v", habits)
	}
	if habits[0].Category != models.CategoryMindfulness {
		t.Errorf("category = %v, want mindfulness", habits[0].Category)
	}

	// The same command again finds the habit already present.
	msg, err = o.HandleTurn(context.Background(), "I want to start a new habit of meditation")
	if err != nil {
		t.Fatalf("second turn failed: %v", err)
	}
	if !strings.Contains(msg.Text, "already in your tracker") {
		t.Errorf("reply = %q, want the already-present response", msg.Text)
	}
	if n := len(session.Habits()); n != 1 {
		t.Errorf("habits = %d, duplicates must not accumulate", n)
	}
}

func TestHandleTurnExerciseRequest(t *testing.T) {
	o, session, center := offlineTurn(t, 1)

	if _, err := o.HandleTurn(context.Background(), "I need exercises to relax"); err != nil {
		t.Fatalf("HandleTurn failed: %v", err)
	}

	todos := session.Todos()
	if len(todos) != 5 {
		t.Fatalf("todos = %d, want the 5 relief activities", len(todos))
	}
	want := heuristics.ReliefActivities()
	for i, todo := range todos {
		if todo.Title != want[i].Title {
			t.Errorf("todo[%d] = %q, want %q", i, todo.Title, want[i].Title)
		}
		if todo.Category != want[i].Category {
			t.Errorf("todo[%d] category = %v, want %v", i, todo.Category, want[i].Category)
		}
	}

	var sawAdded bool
	for _, n := range center.Active() {
		if strings.Contains(n.Message, "automatically added 5 exercises") {
			sawAdded = true
		}
	}
	if !sawAdded {
		t.Errorf("banners = %+v, want the added-exercises notice", center.Active())
	}

	// A repeat request hits the dedup registry instead of adding again.
	if _, err := o.HandleTurn(context.Background(), "I need exercises to relax"); err != nil {
		t.Fatalf("second turn failed: %v", err)
	}
	if n := len(session.Todos()); n != 5 {
		t.Errorf("todos = %d after repeat request, want still 5", n)
	}
	var sawDup bool
	for _, n := range center.Active() {
		if strings.Contains(n.Message, "already in your tracker") {
			sawDup = true
		}
	}
	if !sawDup {
		t.Errorf("banners = %+v, want an already-present notice", center.Active())
	}
}

func TestHandleTurnEmptyMessage(t *testing.T) {
	o, session, _ := offlineTurn(t, 0)

	if _, err := o.HandleTurn(context.Background(), "   \n"); err == nil {
		t.Error("expected an error for blank input")
	}
	if n := len(session.Messages()); n != 0 {
		t.Errorf("transcript = %d messages, blank input must not be recorded", n)
	}
}

func TestHandleTurnSerialized(t *testing.T) {
	o, _, _ := offlineTurn(t, 0)
	o.busy = true

	_, err := o.HandleTurn(context.Background(), "hi, feeling fine")
	if !errors.Is(err, ErrTurnInProgress) {
		t.Errorf("err = %v, want ErrTurnInProgress", err)
	}

	o.busy = false
	if _, err := o.HandleTurn(context.Background(), "hi, feeling fine"); err != nil {
		t.Errorf("turn after release failed: %v", err)
	}
}
