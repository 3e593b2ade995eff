// Package calendar renders the monthly activity grid built by the rollup
// aggregator. The component only holds rendered data; the parent recomputes
// the month when the user navigates.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/attune/internal/rollup"
)

// MonthChangedMsg asks the parent to aggregate a different month.
type MonthChangedMsg struct {
	Year  int
	Month time.Month
}

type KeyMap struct {
	PrevMonth key.Binding
	NextMonth key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevMonth: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next month"),
		),
	}
}

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	weekdayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(10)

	dayStyle = lipgloss.NewStyle().
			Width(10)

	todayStyle = lipgloss.NewStyle().
			Width(10).
			Foreground(lipgloss.Color("205")).
			Bold(true)

	legendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)

type Model struct {
	month rollup.Month
	keys  KeyMap
	today string
	width int
}

func New(month rollup.Month, width, height int) Model {
	return Model{
		month: month,
		keys:  DefaultKeyMap(),
		today: time.Now().Format("2006-01-02"),
		width: width,
	}
}

// SetMonth replaces the rendered month.
func (m *Model) SetMonth(month rollup.Month) {
	m.month = month
	m.today = time.Now().Format("2006-01-02")
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.PrevMonth):
			year, month := m.month.Year, m.month.Month
			prev := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
			return m, func() tea.Msg {
				return MonthChangedMsg{Year: prev.Year(), Month: prev.Month()}
			}
		case key.Matches(msg, m.keys.NextMonth):
			year, month := m.month.Year, m.month.Month
			next := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
			return m, func() tea.Msg {
				return MonthChangedMsg{Year: next.Year(), Month: next.Month()}
			}
		}
	}
	return m, nil
}

// dayMarkers compresses a day summary into at most four glyphs.
func dayMarkers(d rollup.Day) string {
	var markers strings.Builder
	if d.JournalCount > 0 {
		markers.WriteString("📓")
	}
	if d.HabitsTotal > 0 && d.HabitsCompleted == d.HabitsTotal {
		markers.WriteString("✓")
	}
	if d.SleepMinutes > 0 {
		markers.WriteString("😴")
	}
	if d.StressLevel.Elevated() {
		markers.WriteString("!")
	}
	return markers.String()
}

func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", m.month.Month, m.month.Year)
	b.WriteString(headerStyle.Render(title) + "   [ and ] to change month\n\n")

	var weekdays []string
	for _, wd := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		weekdays = append(weekdays, weekdayStyle.Render(wd))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, weekdays...) + "\n")

	first := time.Date(m.month.Year, m.month.Month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())

	var cells []string
	for i := 0; i < offset; i++ {
		cells = append(cells, dayStyle.Render(""))
	}
	for i, day := range m.month.Days {
		label := fmt.Sprintf("%2d %s", i+1, dayMarkers(day))
		style := dayStyle
		if day.Date == m.today {
			style = todayStyle
		}
		cells = append(cells, style.Render(label))

		if len(cells) == 7 {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
			cells = nil
		}
	}
	if len(cells) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
	}

	b.WriteString(legendStyle.Render("📓 journal  ✓ all habits done  😴 sleep logged  ! elevated stress"))

	if today := m.todaySummary(); today != "" {
		b.WriteString("\n\n" + today)
	}

	return b.String()
}

// todaySummary spells out the current day's numbers under the grid.
func (m Model) todaySummary() string {
	for _, day := range m.month.Days {
		if day.Date != m.today || !day.HasActivity() {
			continue
		}
		parts := []string{fmt.Sprintf("Today: %d/%d habits", day.HabitsCompleted, day.HabitsTotal)}
		parts = append(parts, fmt.Sprintf("%d/%d todos", day.TodosDone, day.TodosTotal))
		if day.JournalCount > 0 {
			parts = append(parts, fmt.Sprintf("%d journal", day.JournalCount))
		}
		if day.SleepMinutes > 0 {
			parts = append(parts, fmt.Sprintf("%dh%02dm sleep", day.SleepMinutes/60, day.SleepMinutes%60))
		}
		if day.StressLevel != "" {
			parts = append(parts, "stress "+string(day.StressLevel))
		}
		return strings.Join(parts, " | ")
	}
	return ""
}

func (m *Model) SetSize(width, height int) {
	m.width = width
}
