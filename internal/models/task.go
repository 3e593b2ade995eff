package models

import "time"

// Todo is a one-off actionable item, typically an exercise or activity
// derived from chat analysis.
type Todo struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Category    TaskCategory `json:"category"`
	Completed   bool         `json:"completed"`
	CreatedAt   time.Time    `json:"created_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
}

// Suggestion is a task proposed by the chat assistant, tracked separately
// from todos and habits until the user acts on it.
type Suggestion struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Completed   bool         `json:"completed"`
	Streak      int          `json:"streak"`
	Category    TaskCategory `json:"category"`
	Source      string       `json:"source"`
	Highlighted bool         `json:"highlighted"`
	Timestamp   time.Time    `json:"timestamp"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
}

// SuggestionSourceChat marks suggestions produced by the chat assistant.
const SuggestionSourceChat = "chatbot"

// TaskCandidate is a proposed task title plus category, before it is
// registered with any collection. Both the analysis client and the
// bullet-point extractor produce candidates.
type TaskCandidate struct {
	Title    string       `json:"title"`
	Category TaskCategory `json:"category"`
}
