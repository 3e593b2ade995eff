package assistant

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/julianstephens/attune/internal/logger"
	"github.com/julianstephens/attune/internal/models"
)

// IntentAction is the habit-management classification of a user turn.
type IntentAction string

const (
	IntentAdd    IntentAction = "add"
	IntentRemove IntentAction = "remove"
	IntentUpdate IntentAction = "update"
	IntentNone   IntentAction = "none"
)

// HabitRename describes an update intent.
type HabitRename struct {
	OldTitle string              `json:"oldTitle"`
	NewTitle string              `json:"newTitle"`
	Category models.TaskCategory `json:"category,omitempty"`
}

// HabitIntent is the parsed habit-management request.
type HabitIntent struct {
	Action        IntentAction           `json:"action"`
	Habits        []models.TaskCandidate `json:"habits,omitempty"`
	HabitToRemove string                 `json:"habitToRemove,omitempty"`
	HabitToUpdate *HabitRename           `json:"habitToUpdate,omitempty"`
	Confidence    float64                `json:"confidence"`
}

// AnalyzeHabitIntent classifies userText as a habit-management command or
// ordinary conversation. The model result is accepted only above the
// confidence gate; otherwise the regex fallback decides. Never fails.
func (a *Assistant) AnalyzeHabitIntent(ctx context.Context, userText string) HabitIntent {
	lower := strings.ToLower(userText)
	if a.client == nil {
		return fallbackHabitIntent(lower)
	}

	ctx, cancel := context.WithTimeout(ctx, intentTimeout)
	defer cancel()

	out, err := a.client.Generate(ctx, Request{Prompt: intentPrompt(userText)})
	if err != nil {
		logger.Warn("habit intent analysis failed, using fallback", "error", err)
		return fallbackHabitIntent(lower)
	}

	raw, ok := extractJSONObject(out)
	if !ok {
		return fallbackHabitIntent(lower)
	}

	var parsed struct {
		Action IntentAction `json:"action"`
		Habits []struct {
			Title    string              `json:"title"`
			Category models.TaskCategory `json:"category"`
		} `json:"habits"`
		HabitToRemove string       `json:"habitToRemove"`
		HabitToUpdate *HabitRename `json:"habitToUpdate"`
		Confidence    float64      `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		logger.Warn("failed to parse habit intent response", "error", err)
		return fallbackHabitIntent(lower)
	}
	if parsed.Action == "" || parsed.Confidence <= intentConfidenceGate {
		return fallbackHabitIntent(lower)
	}

	intent := HabitIntent{
		Action:        parsed.Action,
		HabitToRemove: strings.TrimSpace(parsed.HabitToRemove),
		HabitToUpdate: parsed.HabitToUpdate,
		Confidence:    parsed.Confidence,
	}
	for _, h := range parsed.Habits {
		title := strings.TrimSpace(h.Title)
		if title == "" {
			continue
		}
		intent.Habits = append(intent.Habits, models.TaskCandidate{Title: title, Category: h.Category.OrDefault()})
	}
	return intent
}

// Fallback phrasing patterns for habit management.
var (
	addIntentPattern    = regexp.MustCompile(`(?:want|need|start|begin|add|create|make)\s+(?:to\s+)?(?:a\s+)?(?:new\s+)?(?:habit|routine|practice)`)
	removeIntentPattern = regexp.MustCompile(`(?:remove|delete|stop|quit|drop)\s+(?:the\s+)?(?:habit\s+)?(?:of\s+)?(.+)`)
	updateIntentPattern = regexp.MustCompile(`(?:change|modify|update|edit)\s+(?:the\s+)?(?:habit\s+)?(?:of\s+)?(.+?)\s+(?:to|into)\s+(.+)`)

	meditationPattern = regexp.MustCompile(`meditation|meditate|mindfulness`)
	exerciseIntentRe  = regexp.MustCompile(`walk|exercise|workout|gym`)
	journalingPattern = regexp.MustCompile(`journal|write|reflect`)
	readingPattern    = regexp.MustCompile(`read|learn|study`)
	healthIntentRe    = regexp.MustCompile(`sleep|eat|drink|water`)
)

// fallbackHabitIntent is the rule-based classification used when the model is
// unavailable or its answer fails the confidence gate. text must already be
// lowercased.
func fallbackHabitIntent(text string) HabitIntent {
	if addIntentPattern.MatchString(text) {
		var habits []models.TaskCandidate
		if meditationPattern.MatchString(text) {
			habits = append(habits, models.TaskCandidate{Title: "Daily meditation", Category: models.CategoryMindfulness})
		}
		if exerciseIntentRe.MatchString(text) {
			habits = append(habits, models.TaskCandidate{Title: "Daily exercise", Category: models.CategoryExercise})
		}
		if journalingPattern.MatchString(text) {
			habits = append(habits, models.TaskCandidate{Title: "Daily journaling", Category: models.CategoryReflection})
		}
		if readingPattern.MatchString(text) {
			habits = append(habits, models.TaskCandidate{Title: "Daily reading", Category: models.CategoryLearning})
		}
		if healthIntentRe.MatchString(text) {
			habits = append(habits, models.TaskCandidate{Title: "Healthy habits", Category: models.CategoryHealth})
		}
		if len(habits) > 0 {
			return HabitIntent{Action: IntentAdd, Habits: habits, Confidence: 0.8}
		}
	}

	if m := updateIntentPattern.FindStringSubmatch(text); m != nil {
		return HabitIntent{
			Action:        IntentUpdate,
			HabitToUpdate: &HabitRename{OldTitle: strings.TrimSpace(m[1]), NewTitle: strings.TrimSpace(m[2])},
			Confidence:    0.8,
		}
	}

	if m := removeIntentPattern.FindStringSubmatch(text); m != nil {
		return HabitIntent{Action: IntentRemove, HabitToRemove: strings.TrimSpace(m[1]), Confidence: 0.85}
	}

	return HabitIntent{Action: IntentNone, Confidence: 0.9}
}
