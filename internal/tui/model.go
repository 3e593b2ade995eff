// Package tui is the full-screen terminal interface: a tabbed layout over the
// chat assistant and the wellness trackers, with huh forms for manual entry.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/attune/internal/assistant"
	"github.com/julianstephens/attune/internal/models"
	"github.com/julianstephens/attune/internal/notify"
	"github.com/julianstephens/attune/internal/rollup"
	"github.com/julianstephens/attune/internal/storage"
	"github.com/julianstephens/attune/internal/store"
	"github.com/julianstephens/attune/internal/tui/components/calendar"
	"github.com/julianstephens/attune/internal/tui/components/chat"
	"github.com/julianstephens/attune/internal/tui/components/habits"
	"github.com/julianstephens/attune/internal/tui/components/journal"
	"github.com/julianstephens/attune/internal/tui/components/settings"
	"github.com/julianstephens/attune/internal/tui/components/sleep"
	"github.com/julianstephens/attune/internal/tui/components/stress"
	"github.com/julianstephens/attune/internal/tui/components/tasks"
)

type SessionState int

const (
	StateChat SessionState = iota
	StateHabits
	StateTasks
	StateStress
	StateSleep
	StateJournal
	StateCalendar
	StateSettings

	// Modal states; previousState remembers the tab to return to.
	StateAddHabit
	StateRenameHabit
	StateLogStress
	StateLogSleep
	StateEditJournal
	StateEditSettings
)

// tabCount is the number of top-level tabs, excluding modal states.
const tabCount = 8

var tabTitles = []string{"Chat", "Habits", "Tasks", "Stress", "Sleep", "Journal", "Calendar", "Settings"}

type HabitFormModel struct {
	Name     string
	Category models.TaskCategory
	Pinned   bool
}

type StressFormModel struct {
	Level models.StressLevel
	Note  string
}

type SleepFormModel struct {
	Date    string
	Bedtime string
	Wakeup  string
	Quality models.SleepQuality
}

type JournalFormModel struct {
	Title   string
	Content string
}

type SettingsFormModel struct {
	SoundEnabled        bool
	Theme               string
	ChatPanelWidth      string
	ChatPanelHeight     string
	ChatTabPanelWidth   string
	ChatTabPanelHeight  string
	NotificationsOnExit bool
}

type Model struct {
	store         storage.Provider
	session       *store.Session
	orchestrator  *assistant.Orchestrator
	notifications *notify.Center
	aggregator    *rollup.Aggregator

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	chatModel     chat.Model
	habitsModel   habits.Model
	tasksModel    tasks.Model
	stressModel   stress.Model
	sleepModel    sleep.Model
	journalModel  journal.Model
	calendarModel calendar.Model
	settingsModel settings.Model

	form           *huh.Form
	habitForm      *HabitFormModel
	stressForm     *StressFormModel
	sleepForm      *SleepFormModel
	journalForm    *JournalFormModel
	settingsForm   *SettingsFormModel
	renamingHabit  *models.Habit
	editingJournal *models.JournalEntry

	calYear  int
	calMonth time.Month

	quitting bool
	width    int
	height   int
}

func NewModel(provider storage.Provider, session *store.Session, orch *assistant.Orchestrator, notifications *notify.Center) Model {
	// The saver suppresses redundant settings writes from the settings form.
	saver := storage.NewSaver(provider)
	agg := rollup.New(session)

	currentSettings, err := saver.GetSettings()
	if err != nil {
		currentSettings = storage.DefaultSettings()
	}

	now := time.Now()

	m := Model{
		store:         saver,
		session:       session,
		orchestrator:  orch,
		notifications: notifications,
		aggregator:    agg,
		state:         StateChat,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		chatModel:     chat.New(session.Messages(), !orch.Online(), 0, 0),
		habitsModel:   habits.New(session.Habits(), 0, 0),
		tasksModel:    tasks.New(session.Todos(), session.Suggestions(), 0, 0),
		stressModel:   stress.New(session.StressEntries(), 0, 0),
		sleepModel:    sleep.New(session.SleepEntries(), 0, 0),
		journalModel:  journal.New(session.JournalEntries(), 0, 0),
		calendarModel: calendar.New(agg.Month(now.Year(), now.Month()), 0, 0),
		settingsModel: settings.New(currentSettings, 0, 0),
		calYear:       now.Year(),
		calMonth:      now.Month(),
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.chatModel.Init(), tickCmd())
}

// refreshTrackers re-reads every session collection into the view components.
// Cheap enough to run after any mutation.
func (m *Model) refreshTrackers() {
	m.habitsModel.SetHabits(m.session.Habits())
	m.tasksModel.SetTasks(m.session.Todos(), m.session.Suggestions())
	m.stressModel.SetEntries(m.session.StressEntries())
	m.sleepModel.SetEntries(m.session.SleepEntries())
	m.journalModel.SetEntries(m.session.JournalEntries())
	m.calendarModel.SetMonth(m.aggregator.Month(m.calYear, m.calMonth))
}
