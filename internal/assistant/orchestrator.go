package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/julianstephens/attune/internal/heuristics"
	"github.com/julianstephens/attune/internal/logger"
	"github.com/julianstephens/attune/internal/models"
	"github.com/julianstephens/attune/internal/notify"
	"github.com/julianstephens/attune/internal/store"
)

// ErrTurnInProgress is returned when a turn is submitted before the previous
// one finished. Turns are strictly serialized.
var ErrTurnInProgress = errors.New("a chat turn is already in progress")

// Orchestrator sequences one chat turn: habit-intent check, stress analysis,
// reply generation, task extraction, store mutations, and notifications. A
// turn always ends with a bot message appended to the transcript; every
// downstream failure is downgraded to a banner.
type Orchestrator struct {
	assistant     *Assistant
	session       *store.Session
	notifications *notify.Center

	mu   sync.Mutex
	busy bool
}

// NewOrchestrator wires the turn pipeline.
func NewOrchestrator(a *Assistant, session *store.Session, notifications *notify.Center) *Orchestrator {
	return &Orchestrator{
		assistant:     a,
		session:       session,
		notifications: notifications,
	}
}

// Online reports whether the underlying assistant has a remote client.
func (o *Orchestrator) Online() bool {
	return o.assistant.Online()
}

// Busy reports whether a turn is currently running.
func (o *Orchestrator) Busy() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.busy
}

func (o *Orchestrator) acquire() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.busy {
		return false
	}
	o.busy = true
	return true
}

func (o *Orchestrator) release() {
	o.mu.Lock()
	o.busy = false
	o.mu.Unlock()
}

// HandleTurn processes one user message end to end and returns the bot's
// reply message. Empty input is ignored. Only one turn may run at a time.
func (o *Orchestrator) HandleTurn(ctx context.Context, userText string) (models.ChatMessage, error) {
	userText = strings.TrimSpace(userText)
	if userText == "" {
		return models.ChatMessage{}, errors.New("message is empty")
	}
	if !o.acquire() {
		return models.ChatMessage{}, ErrTurnInProgress
	}
	defer o.release()

	history := o.session.Messages()
	userMsg := o.session.AppendMessage(models.SenderUser, userText)
	history = append(history, userMsg)

	// Habit-management commands skip stress analysis entirely.
	intent := o.assistant.AnalyzeHabitIntent(ctx, userText)
	if intent.Action != IntentNone {
		reply := o.handleHabitIntent(intent)
		return o.session.AppendMessage(models.SenderBot, reply), nil
	}

	// Off-topic turns get the fixed redirect and leave the trackers alone.
	if heuristics.IsOffTopic(userText) {
		return o.session.AppendMessage(models.SenderBot, offTopicRedirect), nil
	}

	analysis := o.assistant.AnalyzeMessage(ctx, userText)
	causes, hasClearReason := heuristics.ExtractCauses(userText)

	// A stress entry is recorded when the level is conclusive or the raw
	// text itself carries affect vocabulary.
	meaningfulStress := analysis.StressLevel != models.StressModerate || heuristics.HasAffectWords(userText)
	if meaningfulStress {
		o.recordStress(userText, analysis, causes, hasClearReason)
	} else {
		logger.Debug("no emotional content detected, skipping stress analysis", "text_len", len(userText))
	}

	reply := o.assistant.GenerateReply(ctx, history, userText)

	extracted := heuristics.ExtractTasks(reply, heuristics.DefaultExtractPolicy())
	o.registerReplyTasks(extracted, causes, hasClearReason)

	// Re-register the stress-relevant subset with a highlight marker; the
	// shared title registry makes this idempotent.
	if meaningfulStress && analysis.StressLevel.Elevated() && hasClearReason {
		o.highlightStressTasks(extracted, causes)
	}

	o.addExercises(extracted, userText)

	return o.session.AppendMessage(models.SenderBot, reply), nil
}

// recordStress appends a stress entry and, for elevated stress with a clear
// cause, registers relief activities as chat suggestions.
func (o *Orchestrator) recordStress(userText string, analysis Analysis, causes []string, hasClearReason bool) {
	note := fmt.Sprintf("Auto-detected from chat: %q", truncate(userText, 100))
	if len(analysis.Todos) > 0 {
		note += fmt.Sprintf(" | Suggested %d stress relief activities", len(analysis.Todos))
	}
	o.session.AddStressEntry(analysis.StressLevel, note)

	levelText := strings.ReplaceAll(string(analysis.StressLevel), "-", " ")
	if analysis.StressLevel.Elevated() {
		o.notifications.Info(fmt.Sprintf("Stress level detected as %q. Check your stress tracker for the entry.", levelText))
	} else {
		o.notifications.Success(fmt.Sprintf("Stress level detected as %q. Check your stress tracker for the entry.", levelText))
	}

	switch {
	case analysis.StressLevel.Elevated() && hasClearReason:
		activities := analysis.Todos
		if len(activities) == 0 {
			activities = heuristics.ReliefActivities()
		}

		relevant := filterRelevant(activities, causes)
		toAdd := relevant
		if len(toAdd) == 0 {
			toAdd = activities
		}

		added := o.session.RegisterSuggestions(toAdd, false)
		if len(added) > 0 {
			o.notifications.Success(fmt.Sprintf("I've added %d stress-related %s to today's tasks: %s",
				len(added), plural("task", len(added)), strings.Join(added, ", ")))
		} else if len(toAdd) > 0 {
			o.notifications.Info(fmt.Sprintf("I suggested %d stress %s, but they were already listed today",
				len(toAdd), plural("task", len(toAdd))))
		}
	case analysis.StressLevel == models.StressVeryLow:
		o.notifications.Success("Great to hear you're feeling very relaxed! Keep up the positive energy.")
	case analysis.StressLevel == models.StressLow:
		o.notifications.Success("Great to hear you're feeling relaxed! Keep up the positive energy.")
	case analysis.StressLevel == models.StressModerate:
		o.notifications.Info("I notice you might be experiencing some stress. Remember to take care of yourself today.")
	}
}

// registerReplyTasks registers tasks extracted from the reply text. Without a
// clear cause nothing is taken from free text.
func (o *Orchestrator) registerReplyTasks(extracted []models.TaskCandidate, causes []string, hasClearReason bool) {
	if !hasClearReason {
		return
	}
	suggested := filterRelevant(extracted, causes)
	if len(suggested) == 0 {
		return
	}

	added := o.session.RegisterSuggestions(suggested, false)
	if len(added) > 0 {
		o.notifications.Success(fmt.Sprintf("I've added %d suggested %s from my response into today's tasks.",
			len(added), plural("task", len(added))))
	}
}

// highlightStressTasks re-registers the cause-relevant subset with the
// highlight flag. Titles already present are skipped by the registry.
func (o *Orchestrator) highlightStressTasks(extracted []models.TaskCandidate, causes []string) {
	relevant := filterRelevant(extracted, causes)
	if len(relevant) == 0 {
		return
	}
	if added := o.session.RegisterSuggestions(relevant, true); len(added) > 0 {
		logger.Debug("registered highlighted stress tasks", "count", len(added))
	}
}

// addExercises records exercise-flavored tasks as todos. When the user
// explicitly asked for exercises and the reply yielded none, the fixed relief
// list substitutes.
func (o *Orchestrator) addExercises(extracted []models.TaskCandidate, userText string) {
	exercises := heuristics.FilterExercises(extracted)
	if len(exercises) == 0 && heuristics.IsExerciseRequest(userText) {
		exercises = heuristics.ReliefActivities()
	}
	if len(exercises) == 0 {
		return
	}

	added, err := o.session.AddTodos(exercises)
	if err != nil {
		logger.Warn("failed to add exercises", "error", err)
		o.notifications.Info(fmt.Sprintf("I suggested %d %s, but there was an issue adding them to your tracker",
			len(exercises), plural("exercise", len(exercises))))
		return
	}
	if len(added) > 0 {
		o.notifications.Success(fmt.Sprintf("I've automatically added %d %s to your tracker: %s",
			len(added), plural("exercise", len(added)), strings.Join(added, ", ")))
	} else {
		o.notifications.Info(fmt.Sprintf("I suggested %d %s, but they were already in your tracker",
			len(exercises), plural("exercise", len(exercises))))
	}
}

// handleHabitIntent applies an add/remove/update command and returns the
// confirmation text for the transcript.
func (o *Orchestrator) handleHabitIntent(intent HabitIntent) string {
	switch intent.Action {
	case IntentAdd:
		if len(intent.Habits) == 0 {
			break
		}
		var added []string
		for _, h := range intent.Habits {
			if _, err := o.session.AddHabit(h.Title, h.Category, false); err == nil {
				added = append(added, h.Title)
			}
		}
		if len(added) == 0 {
			return "All the habits you mentioned are already in your tracker. Great job staying consistent!"
		}
		o.notifications.Success(fmt.Sprintf("Added %d new %s to your tracker: %s",
			len(added), plural("habit", len(added)), strings.Join(added, ", ")))
		var b strings.Builder
		fmt.Fprintf(&b, "I've added %d %s to your tracker:\n", len(added), plural("habit", len(added)))
		for _, name := range added {
			fmt.Fprintf(&b, "• %s\n", name)
		}
		b.WriteString("\nThese are now part of your daily wellness routine!")
		return b.String()

	case IntentRemove:
		if intent.HabitToRemove == "" {
			break
		}
		habit, ok := o.findHabitFuzzy(intent.HabitToRemove)
		if !ok {
			return fmt.Sprintf("I couldn't find a habit matching %q in your tracker. Could you check the exact name?", intent.HabitToRemove)
		}
		if err := o.session.DeleteHabit(habit.ID); err != nil {
			logger.Warn("failed to delete habit", "id", habit.ID, "error", err)
			return "I encountered an error while managing your habits. Please try again or let me know what you'd like to do."
		}
		o.notifications.Success(fmt.Sprintf("Removed %q from your habit tracker", habit.Name))
		return fmt.Sprintf("I've removed %q from your habit tracker.", habit.Name)

	case IntentUpdate:
		if intent.HabitToUpdate == nil {
			break
		}
		habit, ok := o.findHabitFuzzy(intent.HabitToUpdate.OldTitle)
		if !ok {
			return fmt.Sprintf("I couldn't find a habit matching %q in your tracker. Could you check the exact name?", intent.HabitToUpdate.OldTitle)
		}
		if _, err := o.session.RenameHabit(habit.ID, intent.HabitToUpdate.NewTitle); err != nil {
			logger.Warn("failed to rename habit", "id", habit.ID, "error", err)
			return "I encountered an error while managing your habits. Please try again or let me know what you'd like to do."
		}
		o.notifications.Success(fmt.Sprintf("Updated habit from %q to %q", habit.Name, intent.HabitToUpdate.NewTitle))
		return fmt.Sprintf("I've updated your habit from %q to %q. Your progress has been preserved!", habit.Name, intent.HabitToUpdate.NewTitle)
	}

	return "I wasn't sure what habit change you wanted. Could you rephrase it?"
}

// findHabitFuzzy matches a habit by bidirectional case-insensitive substring,
// so "morning walk" resolves "Morning walk" and vice versa.
func (o *Orchestrator) findHabitFuzzy(name string) (models.Habit, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return models.Habit{}, false
	}
	for _, h := range o.session.Habits() {
		have := strings.ToLower(h.Name)
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return h, true
		}
	}
	return models.Habit{}, false
}

func filterRelevant(tasks []models.TaskCandidate, causes []string) []models.TaskCandidate {
	var out []models.TaskCandidate
	for _, t := range tasks {
		if heuristics.IsTaskRelevant(t.Title, causes) {
			out = append(out, t)
		}
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
