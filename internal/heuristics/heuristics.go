// Package heuristics provides the deterministic, local text-classification
// rules behind the chat assistant: off-topic detection, stress estimation,
// cause tagging, task relevance, and bullet-point task extraction. Every
// remote model call has a fallback here, so the assistant keeps working when
// the API is unreachable. All functions are pure string operations; they
// degrade to empty or neutral results rather than failing.
package heuristics

import (
	"strings"

	"github.com/julianstephens/attune/internal/models"
)

// IsOffTopic reports whether text touches any of the out-of-scope subject
// areas. Pure substring match, case-insensitive, no stemming.
func IsOffTopic(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range offTopicKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// EstimateStressLevel derives a coarse stress level from affect vocabulary.
// Negative affect escalates to high only when an explicit cause token is also
// present; without one the estimate caps at moderate.
func EstimateStressLevel(text string) models.StressLevel {
	t := strings.ToLower(text)
	switch {
	case veryLowAffectPattern.MatchString(t):
		return models.StressVeryLow
	case lowAffectPattern.MatchString(t):
		return models.StressLow
	case negativeAffectPattern.MatchString(t):
		if stressCausePattern.MatchString(t) {
			return models.StressHigh
		}
		return models.StressModerate
	case veryHighAffectPattern.MatchString(t):
		return models.StressVeryHigh
	}
	return models.StressModerate
}

// HasAffectWords reports whether text carries any emotion-bearing vocabulary.
// A moderate classification still counts as meaningful stress when this is
// true.
func HasAffectWords(text string) bool {
	return affectWordsPattern.MatchString(strings.ToLower(text))
}

// ExtractCauses tags text with zero or more stress-cause categories.
func ExtractCauses(text string) (causes []string, hasClearReason bool) {
	lower := strings.ToLower(text)
	for _, label := range causeOrder {
		for _, p := range causePatterns[label] {
			if p.MatchString(lower) {
				causes = append(causes, label)
				break
			}
		}
	}
	return causes, len(causes) > 0
}

// IsTaskRelevant reports whether a candidate task title plausibly addresses
// the detected causes. Generic evidence-based coping techniques are always
// relevant; anything else must match a cause-specific pattern.
func IsTaskRelevant(title string, causes []string) bool {
	t := strings.ToLower(title)
	if genericCopingPattern.MatchString(t) {
		return true
	}
	for _, c := range causes {
		if p, ok := relevancePatterns[c]; ok && p.MatchString(t) {
			return true
		}
	}
	return false
}

// Categorize assigns a task category by keyword scan, defaulting to health.
func Categorize(title string) models.TaskCategory {
	lower := strings.ToLower(title)
	switch {
	case mindfulnessCategoryPattern.MatchString(lower):
		return models.CategoryMindfulness
	case exerciseCategoryPattern.MatchString(lower):
		return models.CategoryExercise
	case reflectionCategoryPattern.MatchString(lower):
		return models.CategoryReflection
	case learningCategoryPattern.MatchString(lower):
		return models.CategoryLearning
	case healthCategoryPattern.MatchString(lower):
		return models.CategoryHealth
	}
	return models.CategoryHealth
}

// IsExerciseRequest reports whether the user is explicitly asking for
// exercises or activities.
func IsExerciseRequest(text string) bool {
	return exerciseRequestPattern.MatchString(strings.ToLower(text))
}

// FilterExercises keeps only the exercise-flavored candidates.
func FilterExercises(tasks []models.TaskCandidate) []models.TaskCandidate {
	var out []models.TaskCandidate
	for _, t := range tasks {
		if exercisePattern.MatchString(strings.ToLower(t.Title)) {
			out = append(out, t)
		}
	}
	return out
}

// ReliefActivities is the fixed stress-relief list used when no usable
// activities came back from analysis or extraction.
func ReliefActivities() []models.TaskCandidate {
	return []models.TaskCandidate{
		{Title: "Deep breathing exercise (4-7-8 technique)", Category: models.CategoryMindfulness},
		{Title: "10-minute gentle stretching", Category: models.CategoryExercise},
		{Title: "Mindful journaling for 5 minutes", Category: models.CategoryReflection},
		{Title: "Progressive muscle relaxation", Category: models.CategoryMindfulness},
		{Title: "Take a 15-minute walk outside", Category: models.CategoryExercise},
	}
}

// IsCrisisText reports whether user text matches the crisis-risk pattern.
func IsCrisisText(text string) bool {
	return CrisisPattern.MatchString(text)
}
