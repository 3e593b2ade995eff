package heuristics

import (
	"strings"

	"github.com/julianstephens/attune/internal/models"
)

// ExtractPolicy bounds task extraction. The numbers mirror the shipped UI
// behavior but are policy, not domain logic, so callers may tune them.
type ExtractPolicy struct {
	MaxTasks         int // overall cap on extracted tasks
	MinTitleLen      int // lines at or below this length are discarded
	MaxTitleLen      int // lines at or above this length are discarded
	ShortenThreshold int // single fragments longer than this get shortened
	MinFragmentLen   int // clause fragments at or below this length are dropped
	MaxFragmentLen   int // clause fragments at or above this length are dropped
}

// DefaultExtractPolicy returns the standard extraction bounds.
func DefaultExtractPolicy() ExtractPolicy {
	return ExtractPolicy{
		MaxTasks:         8,
		MinTitleLen:      8,
		MaxTitleLen:      100,
		ShortenThreshold: 60,
		MinFragmentLen:   5,
		MaxFragmentLen:   80,
	}
}

// ExtractTasks pulls actionable task candidates out of an assistant reply.
// It matches bullet, arrow, and numbered lines, strips emphasis markup and
// filler prefixes, discards question-form and conversational lines, splits
// multi-clause lines on connector words, shortens overlong fragments, and
// assigns each survivor a category. Results are deduplicated
// case-insensitively and capped by the policy.
func ExtractTasks(responseText string, policy ExtractPolicy) []models.TaskCandidate {
	var tasks []models.TaskCandidate

	for _, line := range strings.Split(responseText, "\n") {
		line = strings.TrimSuffix(line, "\r")

		var m []string
		if m = bulletLinePattern.FindStringSubmatch(line); m == nil {
			if m = numberLinePattern.FindStringSubmatch(line); m == nil {
				m = arrowLinePattern.FindStringSubmatch(line)
			}
		}
		if m == nil {
			continue
		}

		title := strings.TrimSpace(m[1])
		title = emphasisPattern.ReplaceAllString(title, "$1")
		title = fillerPrefixPattern.ReplaceAllString(title, "")

		if questionPattern.MatchString(title) || fillerLinePattern.MatchString(title) {
			continue
		}
		if len(title) <= policy.MinTitleLen || len(title) >= policy.MaxTitleLen {
			continue
		}

		for _, fragment := range fragmentTask(title, policy) {
			tasks = append(tasks, models.TaskCandidate{
				Title:    fragment,
				Category: Categorize(fragment),
			})
		}
	}

	return dedupeTasks(tasks, policy.MaxTasks)
}

// fragmentTask splits a multi-clause task on connector words into separate
// actionable items, or shortens a single overlong one.
func fragmentTask(title string, policy ExtractPolicy) []string {
	var fragments []string

	parts := connectorPattern.Split(title, -1)
	if len(parts) > 1 {
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if len(part) <= policy.MinFragmentLen || len(part) >= policy.MaxFragmentLen {
				continue
			}
			if !actionVerbPattern.MatchString(part) {
				part = "Do " + strings.ToLower(part)
			}
			fragments = append(fragments, part)
		}
	} else if len(title) > policy.ShortenThreshold {
		if core := extractCoreAction(title); core != "" {
			fragments = append(fragments, core)
		} else {
			fragments = append(fragments, title)
		}
	} else {
		fragments = append(fragments, title)
	}

	out := fragments[:0]
	for _, f := range fragments {
		if len(f) > policy.MinFragmentLen {
			out = append(out, f)
		}
	}
	return out
}

// extractCoreAction pulls the leading imperative clause or a time-duration
// clause out of a verbose description, falling back to the first clause.
func extractCoreAction(title string) string {
	if m := coreActionPattern.FindStringSubmatch(title); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := timeDurationPattern.FindStringSubmatch(title); m != nil {
		return strings.TrimSpace(m[1])
	}
	first := strings.TrimSpace(strings.FieldsFunc(title, func(r rune) bool {
		return r == ',' || r == '.'
	})[0])
	if len(first) > 10 {
		return first
	}
	return title
}

func dedupeTasks(tasks []models.TaskCandidate, limit int) []models.TaskCandidate {
	seen := make(map[string]struct{}, len(tasks))
	var out []models.TaskCandidate
	for _, t := range tasks {
		key := strings.ToLower(t.Title)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
		if len(out) == limit {
			break
		}
	}
	return out
}
