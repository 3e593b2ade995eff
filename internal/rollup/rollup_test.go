package rollup

import (
	"testing"
	"time"

	"github.com/julianstephens/attune/internal/models"
	"github.com/julianstephens/attune/internal/store"
)

func TestDayAggregation(t *testing.T) {
	session := store.NewSession()
	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	if _, err := session.AddJournalEntry(models.JournalEntry{Title: "Checking in", Content: "long day", Date: today}); err != nil {
		t.Fatalf("seed journal: %v", err)
	}
	if _, err := session.AddJournalEntry(models.JournalEntry{Title: "Old note", Date: yesterday}); err != nil {
		t.Fatalf("seed journal: %v", err)
	}

	session.AddStressEntry(models.StressModerate, "manual check-in")
	session.AddStressEntry(models.StressHigh, "after the meeting")

	if _, err := session.AddSleepEntry(models.SleepEntry{Date: today, Bedtime: "23:30", Wakeup: "07:00", Quality: models.SleepGood}); err != nil {
		t.Fatalf("seed sleep: %v", err)
	}

	if _, err := session.AddTodos([]models.TaskCandidate{
		{Title: "Box breathing", Category: models.CategoryMindfulness},
		{Title: "Short walk", Category: models.CategoryExercise},
	}); err != nil {
		t.Fatalf("seed todos: %v", err)
	}
	todos := session.Todos()
	if _, err := session.ToggleTodo(todos[0].ID); err != nil {
		t.Fatalf("toggle todo: %v", err)
	}

	session.RegisterSuggestions([]models.TaskCandidate{
		{Title: "Mindful journaling", Category: models.CategoryReflection},
	}, false)

	habit, err := session.AddHabit("Evening stretch", models.CategoryExercise, false)
	if err != nil {
		t.Fatalf("seed habit: %v", err)
	}
	if _, err := session.ToggleHabit(habit.ID); err != nil {
		t.Fatalf("toggle habit: %v", err)
	}
	if _, err := session.AddHabit("Morning pages", models.CategoryReflection, false); err != nil {
		t.Fatalf("seed habit: %v", err)
	}

	agg := New(session)
	got := agg.Day(today)

	if got.JournalCount != 1 {
		t.Errorf("journal count = %d, want 1", got.JournalCount)
	}
	if got.StressLevel != models.StressHigh {
		t.Errorf("stress level = %v, want the latest entry (high)", got.StressLevel)
	}
	if got.SleepMinutes != 450 {
		t.Errorf("sleep minutes = %d, want 450 for 23:30-07:00", got.SleepMinutes)
	}
	if got.TodosTotal != 2 || got.TodosDone != 1 {
		t.Errorf("todos = %d/%d, want 1/2", got.TodosDone, got.TodosTotal)
	}
	if got.SuggestionCount != 1 {
		t.Errorf("suggestion count = %d, want 1", got.SuggestionCount)
	}
	if got.HabitsTotal != 2 || got.HabitsCompleted != 1 {
		t.Errorf("habits = %d/%d, want 1/2", got.HabitsCompleted, got.HabitsTotal)
	}
	if !got.HasActivity() {
		t.Error("today should report activity")
	}

	prev := agg.Day(yesterday)
	if prev.JournalCount != 1 {
		t.Errorf("yesterday journal count = %d, want 1", prev.JournalCount)
	}
	if prev.HabitsTotal != 0 {
		t.Errorf("habit state must only surface on the current date, got total %d", prev.HabitsTotal)
	}
	if prev.StressLevel != "" || prev.SleepMinutes != 0 || prev.TodosTotal != 0 {
		t.Errorf("yesterday picked up today's data: %+v", prev)
	}
}

func TestMonthGrid(t *testing.T) {
	session := store.NewSession()
	if _, err := session.AddJournalEntry(models.JournalEntry{Title: "Leap day prep", Date: "2024-02-10"}); err != nil {
		t.Fatalf("seed journal: %v", err)
	}
	if _, err := session.AddSleepEntry(models.SleepEntry{Date: "2024-02-10", Bedtime: "22:00", Wakeup: "06:00", Quality: models.SleepExcellent}); err != nil {
		t.Fatalf("seed sleep: %v", err)
	}

	m := New(session).Month(2024, time.February)
	if len(m.Days) != 29 {
		t.Fatalf("days = %d, want 29 for a leap-year February", len(m.Days))
	}
	if m.Days[0].Date != "2024-02-01" || m.Days[28].Date != "2024-02-29" {
		t.Errorf("day range = %s .. %s", m.Days[0].Date, m.Days[28].Date)
	}

	day := m.Days[9]
	if day.Date != "2024-02-10" {
		t.Fatalf("day[9] = %s", day.Date)
	}
	if day.JournalCount != 1 || day.SleepMinutes != 480 {
		t.Errorf("day summary = %+v", day)
	}
	for i, d := range m.Days {
		if i != 9 && d.HasActivity() {
			t.Errorf("day %s unexpectedly has activity", d.Date)
		}
	}
}

func TestDayEmpty(t *testing.T) {
	agg := New(store.NewSession())
	got := agg.Day("2024-06-01")
	if got.HasActivity() {
		t.Errorf("empty session day = %+v", got)
	}
}
