// Package rollup aggregates session collections into per-day summaries for
// the calendar view. Aggregation is read-only over store snapshots; nothing
// here mutates session state.
package rollup

import (
	"time"

	"github.com/julianstephens/attune/internal/models"
	"github.com/julianstephens/attune/internal/store"
)

const dateLayout = "2006-01-02"

// Day is the calendar summary for one date.
type Day struct {
	Date string

	JournalCount    int
	HabitsCompleted int
	HabitsTotal     int
	TodosDone       int
	TodosTotal      int
	SuggestionCount int

	// StressLevel is the most recent stress reading logged on the date;
	// empty when none was recorded.
	StressLevel models.StressLevel

	// SleepMinutes sums all sleep logged for the date.
	SleepMinutes int
}

// HasActivity reports whether anything at all was logged on the day.
func (d Day) HasActivity() bool {
	return d.JournalCount > 0 || d.HabitsTotal > 0 || d.TodosTotal > 0 ||
		d.SuggestionCount > 0 || d.StressLevel != "" || d.SleepMinutes > 0
}

// Month is a full month of day summaries, first through last.
type Month struct {
	Year  int
	Month time.Month
	Days  []Day
}

// Aggregator computes calendar summaries from a session.
type Aggregator struct {
	session *store.Session
	now     func() time.Time
}

// New returns an aggregator over the session.
func New(session *store.Session) *Aggregator {
	return &Aggregator{session: session, now: time.Now}
}

// Day builds the summary for one YYYY-MM-DD date. Habit counts only appear on
// the current date: habit completion is daily state, not a dated log.
func (a *Aggregator) Day(date string) Day {
	d := Day{Date: date}

	for _, e := range a.session.JournalEntries() {
		if e.Date == date {
			d.JournalCount++
		}
	}

	// Stress entries are newest-first, so the first hit is the latest.
	for _, e := range a.session.StressEntries() {
		if e.Date == date {
			d.StressLevel = e.StressLevel
			break
		}
	}

	for _, e := range a.session.SleepEntries() {
		if e.Date == date {
			d.SleepMinutes += e.DurationMinutes
		}
	}

	for _, t := range a.session.Todos() {
		if t.CreatedAt.Format(dateLayout) != date {
			continue
		}
		d.TodosTotal++
		if t.Completed {
			d.TodosDone++
		}
	}

	for _, s := range a.session.Suggestions() {
		if s.Timestamp.Format(dateLayout) == date {
			d.SuggestionCount++
		}
	}

	if a.now().Format(dateLayout) == date {
		for _, h := range a.session.Habits() {
			d.HabitsTotal++
			if h.Completed {
				d.HabitsCompleted++
			}
		}
	}

	return d
}

// Month builds summaries for every day of the given month.
func (a *Aggregator) Month(year int, month time.Month) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := first.AddDate(0, 1, -1).Day()

	m := Month{Year: year, Month: month, Days: make([]Day, 0, lastDay)}
	for day := 1; day <= lastDay; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(dateLayout)
		m.Days = append(m.Days, a.Day(date))
	}
	return m
}
