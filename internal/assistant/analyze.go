package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/julianstephens/attune/internal/heuristics"
	"github.com/julianstephens/attune/internal/logger"
	"github.com/julianstephens/attune/internal/models"
)

// Analysis is the structured result of classifying one user message.
type Analysis struct {
	StressLevel models.StressLevel     `json:"stressLevel"`
	Todos       []models.TaskCandidate `json:"todos"`
}

// AnalyzeMessage classifies userText into a stress level plus suggested
// activities. The remote call is bounded by a hard deadline and the overload
// retry policy; on any failure, malformed output, or timeout the local
// heuristic analysis is returned instead. AnalyzeMessage never fails.
func (a *Assistant) AnalyzeMessage(ctx context.Context, userText string) Analysis {
	fallback := a.fallbackAnalysis(userText)
	if a.client == nil {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, analyzeTimeout)
	defer cancel()

	req := Request{Prompt: analysisPrompt(userText)}

	var parsed Analysis
	err := a.analyzePolicy.Do(ctx, func(ctx context.Context) error {
		out, err := a.client.Generate(ctx, req)
		if err != nil {
			return err
		}
		p, err := parseAnalysis(out)
		if err != nil {
			return err
		}
		parsed = p
		return nil
	})
	if err != nil {
		if IsOverloaded(err) {
			a.notifyInfo("Analysis is temporarily unavailable due to high load. Using local fallback.")
		}
		logger.Warn("message analysis failed, using local fallback", "error", err)
		return fallback
	}

	parsed.Todos = sanitizeTodos(parsed.Todos)
	if len(parsed.Todos) == 0 {
		parsed.Todos = fallback.Todos
	}
	return parsed
}

// parseAnalysis extracts the first balanced JSON object from the model output
// and validates it.
func parseAnalysis(text string) (Analysis, error) {
	raw, ok := extractJSONObject(text)
	if !ok {
		return Analysis{}, fmt.Errorf("no JSON object in response")
	}

	var parsed struct {
		StressLevel models.StressLevel `json:"stressLevel"`
		Todos       []struct {
			Title    string              `json:"title"`
			Category models.TaskCategory `json:"category"`
		} `json:"todos"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Analysis{}, fmt.Errorf("invalid analysis JSON: %w", err)
	}
	if !parsed.StressLevel.IsValid() {
		return Analysis{}, fmt.Errorf("invalid stress level %q", parsed.StressLevel)
	}
	if parsed.Todos == nil {
		return Analysis{}, fmt.Errorf("missing todos array")
	}

	out := Analysis{StressLevel: parsed.StressLevel}
	for _, t := range parsed.Todos {
		out.Todos = append(out.Todos, models.TaskCandidate{Title: t.Title, Category: t.Category})
	}
	return out, nil
}

// sanitizeTodos trims titles, drops empties, defaults categories, and caps
// the list.
func sanitizeTodos(todos []models.TaskCandidate) []models.TaskCandidate {
	var out []models.TaskCandidate
	for _, t := range todos {
		if len(out) == maxAnalysisTodos {
			break
		}
		title := strings.TrimSpace(t.Title)
		if title == "" {
			continue
		}
		out = append(out, models.TaskCandidate{Title: title, Category: t.Category.OrDefault()})
	}
	return out
}

// extractJSONObject returns the first balanced {...} substring in text. The
// scan tracks string literals so braces inside JSON strings do not skew the
// depth count.
func extractJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// fallbackAnalysis is the local heuristic analysis: tiered stress estimate
// plus at most two safety-net activities, populated only for elevated stress.
func (a *Assistant) fallbackAnalysis(userText string) Analysis {
	level := heuristics.EstimateStressLevel(userText)

	var todos []models.TaskCandidate
	if level.Elevated() {
		todos = []models.TaskCandidate{
			{Title: "Take 3 deep breaths slowly", Category: models.CategoryMindfulness},
			{Title: "Step outside for fresh air", Category: models.CategoryHealth},
		}
	}
	return Analysis{StressLevel: level, Todos: todos}
}
