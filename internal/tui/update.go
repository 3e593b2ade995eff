package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/attune/internal/logger"
	"github.com/julianstephens/attune/internal/models"
	"github.com/julianstephens/attune/internal/tui/components/calendar"
	"github.com/julianstephens/attune/internal/tui/components/chat"
	"github.com/julianstephens/attune/internal/tui/components/habits"
	"github.com/julianstephens/attune/internal/tui/components/journal"
	"github.com/julianstephens/attune/internal/tui/components/settings"
	"github.com/julianstephens/attune/internal/tui/components/sleep"
	"github.com/julianstephens/attune/internal/tui/components/stress"
	"github.com/julianstephens/attune/internal/tui/components/tasks"
)

// tickMsg drives banner expiry and transcript refresh during a turn.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// chatTurnMsg reports a finished orchestrator turn.
type chatTurnMsg struct {
	err error
}

func (m Model) runTurn(text string) tea.Cmd {
	orch := m.orchestrator
	return func() tea.Msg {
		_, err := orch.HandleTurn(context.Background(), text)
		return chatTurnMsg{err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state >= StateAddHabit {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.setComponentSizes()
		return m, nil

	case tickMsg:
		// The transcript grows mid-turn (user message lands first), and
		// banners expire by timestamp; both need a periodic repaint.
		if m.chatModel.Typing() {
			m.chatModel.SetMessages(m.session.Messages())
		}
		return m, tickCmd()

	case chatTurnMsg:
		m.chatModel.SetTyping(false)
		m.chatModel.SetMessages(m.session.Messages())
		m.refreshTrackers()
		if msg.err != nil {
			logger.Warn("chat turn failed", "error", msg.err)
		}
		return m, nil

	case chat.SendMsg:
		m.chatModel.SetTyping(true)
		return m, m.runTurn(msg.Text)

	case habits.AddHabitMsg:
		m.habitForm = &HabitFormModel{Category: models.CategoryHealth}
		m.form = NewHabitForm(m.habitForm)
		m.openForm(StateAddHabit)
		return m, m.form.Init()

	case habits.ToggleHabitMsg:
		if _, err := m.session.ToggleHabit(msg.ID); err != nil {
			logger.Warn("failed to toggle habit", "error", err)
		}
		m.refreshTrackers()
		return m, nil

	case habits.DeleteHabitMsg:
		if err := m.session.DeleteHabit(msg.ID); err != nil {
			logger.Warn("failed to delete habit", "error", err)
		} else {
			m.notifications.Success("Habit removed")
		}
		m.refreshTrackers()
		return m, nil

	case habits.PinHabitMsg:
		if err := m.session.SetHabitPinned(msg.ID, msg.Pinned); err != nil {
			logger.Warn("failed to pin habit", "error", err)
		}
		m.refreshTrackers()
		return m, nil

	case habits.RenameHabitMsg:
		h := msg.Habit
		m.renamingHabit = &h
		m.habitForm = &HabitFormModel{Name: h.Name}
		m.form = NewRenameHabitForm(m.habitForm)
		m.openForm(StateRenameHabit)
		return m, m.form.Init()

	case tasks.ToggleTodoMsg:
		if _, err := m.session.ToggleTodo(msg.ID); err != nil {
			logger.Warn("failed to toggle todo", "error", err)
		}
		m.refreshTrackers()
		return m, nil

	case tasks.DeleteTodoMsg:
		if err := m.session.DeleteTodo(msg.ID); err != nil {
			logger.Warn("failed to delete todo", "error", err)
		}
		m.refreshTrackers()
		return m, nil

	case tasks.ToggleSuggestionMsg:
		if _, err := m.session.ToggleSuggestion(msg.ID); err != nil {
			logger.Warn("failed to toggle suggestion", "error", err)
		}
		m.refreshTrackers()
		return m, nil

	case tasks.PromoteSuggestionMsg:
		if habit, err := m.session.PromoteSuggestion(msg.ID); err != nil {
			m.notifications.Info(fmt.Sprintf("Could not promote suggestion: %v", err))
		} else {
			m.notifications.Success(fmt.Sprintf("%q is now a habit", habit.Name))
		}
		m.refreshTrackers()
		return m, nil

	case tasks.DismissSuggestionMsg:
		if err := m.session.DismissSuggestion(msg.ID); err != nil {
			logger.Warn("failed to dismiss suggestion", "error", err)
		}
		m.refreshTrackers()
		return m, nil

	case tasks.ClearSuggestionsMsg:
		if n := m.session.ClearSuggestions(); n > 0 {
			m.notifications.Info(fmt.Sprintf("Cleared %d suggestions", n))
		}
		m.refreshTrackers()
		return m, nil

	case stress.AddEntryMsg:
		m.stressForm = &StressFormModel{Level: models.StressModerate}
		m.form = NewStressForm(m.stressForm)
		m.openForm(StateLogStress)
		return m, m.form.Init()

	case sleep.AddEntryMsg:
		m.sleepForm = &SleepFormModel{
			Date:    time.Now().Format("2006-01-02"),
			Quality: models.SleepGood,
		}
		m.form = NewSleepForm(m.sleepForm)
		m.openForm(StateLogSleep)
		return m, m.form.Init()

	case journal.AddEntryMsg:
		m.editingJournal = nil
		m.journalForm = &JournalFormModel{}
		m.form = NewJournalForm(m.journalForm)
		m.openForm(StateEditJournal)
		return m, m.form.Init()

	case journal.EditEntryMsg:
		e := msg.Entry
		m.editingJournal = &e
		m.journalForm = &JournalFormModel{Title: e.Title, Content: e.Content}
		m.form = NewJournalForm(m.journalForm)
		m.openForm(StateEditJournal)
		return m, m.form.Init()

	case journal.DeleteEntryMsg:
		if err := m.session.DeleteJournalEntry(msg.ID); err != nil {
			logger.Warn("failed to delete journal entry", "error", err)
		}
		m.refreshTrackers()
		return m, nil

	case settings.EditSettingsMsg:
		current, err := m.store.GetSettings()
		if err != nil {
			m.notifications.Info("Could not load settings")
			return m, nil
		}
		m.settingsForm = settingsFormFrom(current)
		m.form = NewSettingsForm(m.settingsForm)
		m.openForm(StateEditSettings)
		return m, m.form.Init()

	case calendar.MonthChangedMsg:
		m.calYear = msg.Year
		m.calMonth = msg.Month
		m.calendarModel.SetMonth(m.aggregator.Month(m.calYear, m.calMonth))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		// In the chat tab every printable key belongs to the input.
		case key.Matches(msg, m.keys.Quit) && m.state != StateChat:
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help) && m.state != StateChat:
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	return m.updateActiveComponent(msg)
}

// openForm remembers the tab to return to when the form closes.
func (m *Model) openForm(state SessionState) {
	m.previousState = m.state
	m.state = state
}

func (m *Model) closeForm() {
	m.state = m.previousState
	m.form = nil
}

func (m Model) updateActiveComponent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case StateChat:
		m.chatModel, cmd = m.chatModel.Update(msg)
	case StateHabits:
		m.habitsModel, cmd = m.habitsModel.Update(msg)
	case StateTasks:
		m.tasksModel, cmd = m.tasksModel.Update(msg)
	case StateStress:
		m.stressModel, cmd = m.stressModel.Update(msg)
	case StateSleep:
		m.sleepModel, cmd = m.sleepModel.Update(msg)
	case StateJournal:
		m.journalModel, cmd = m.journalModel.Update(msg)
	case StateCalendar:
		m.calendarModel, cmd = m.calendarModel.Update(msg)
	case StateSettings:
		m.settingsModel, cmd = m.settingsModel.Update(msg)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeForm()
		return m, nil
	}
	if _, ok := msg.(tickMsg); ok {
		return m, tickCmd()
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		m.applyForm()
		m.refreshTrackers()
		m.closeForm()
	case huh.StateAborted:
		m.closeForm()
	}
	return m, tea.Batch(cmds...)
}

// applyForm commits a completed form to the session or the settings store.
func (m *Model) applyForm() {
	switch m.state {
	case StateAddHabit:
		if _, err := m.session.AddHabit(m.habitForm.Name, m.habitForm.Category, m.habitForm.Pinned); err != nil {
			m.notifications.Info(fmt.Sprintf("Could not add habit: %v", err))
		} else {
			m.notifications.Success(fmt.Sprintf("Added %q to your habits", m.habitForm.Name))
		}

	case StateRenameHabit:
		if m.renamingHabit == nil {
			return
		}
		if _, err := m.session.RenameHabit(m.renamingHabit.ID, m.habitForm.Name); err != nil {
			m.notifications.Info(fmt.Sprintf("Could not rename habit: %v", err))
		}
		m.renamingHabit = nil

	case StateLogStress:
		m.session.AddStressEntry(m.stressForm.Level, m.stressForm.Note)
		m.notifications.Success("Stress entry logged")

	case StateLogSleep:
		entry := models.SleepEntry{
			Date:    m.sleepForm.Date,
			Bedtime: m.sleepForm.Bedtime,
			Wakeup:  m.sleepForm.Wakeup,
			Quality: m.sleepForm.Quality,
		}
		if saved, err := m.session.AddSleepEntry(entry); err != nil {
			m.notifications.Info(fmt.Sprintf("Could not log sleep: %v", err))
		} else {
			m.notifications.Success(fmt.Sprintf("Logged %dh %02dm of sleep", saved.DurationMinutes/60, saved.DurationMinutes%60))
		}

	case StateEditJournal:
		if m.editingJournal != nil {
			updated := *m.editingJournal
			updated.Title = m.journalForm.Title
			updated.Content = m.journalForm.Content
			if err := m.session.UpdateJournalEntry(updated); err != nil {
				m.notifications.Info(fmt.Sprintf("Could not update journal entry: %v", err))
			}
			m.editingJournal = nil
			return
		}
		entry := models.JournalEntry{
			Title:   m.journalForm.Title,
			Content: m.journalForm.Content,
			Date:    time.Now().Format("2006-01-02"),
		}
		if _, err := m.session.AddJournalEntry(entry); err != nil {
			m.notifications.Info(fmt.Sprintf("Could not save journal entry: %v", err))
		} else {
			m.notifications.Success("Journal entry saved")
		}

	case StateEditSettings:
		next := settingsFromForm(m.settingsForm)
		if err := next.Validate(); err != nil {
			m.notifications.Info(fmt.Sprintf("Invalid settings: %v", err))
			return
		}
		if err := m.store.SaveSettings(next); err != nil {
			m.notifications.Info(fmt.Sprintf("Could not save settings: %v", err))
			return
		}
		m.settingsModel.SetSettings(next)
		m.notifications.Success("Settings saved")
	}
}

func (m *Model) setComponentSizes() {
	// Tabs, banner row, and help line take four rows total.
	contentHeight := m.height - 4
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.chatModel.SetSize(m.width, contentHeight)
	m.habitsModel.SetSize(m.width, contentHeight)
	m.tasksModel.SetSize(m.width, contentHeight)
	m.stressModel.SetSize(m.width, contentHeight)
	m.sleepModel.SetSize(m.width, contentHeight)
	m.journalModel.SetSize(m.width, contentHeight)
	m.calendarModel.SetSize(m.width, contentHeight)
	m.settingsModel.SetSize(m.width, contentHeight)
}
