package models

// Habit is a recurring user-defined activity tracked with a completion streak.
// Pinned habits (IsPermanent) survive the daily reset in the tracker view.
type Habit struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    TaskCategory `json:"category"`
	Completed   bool         `json:"completed"`
	IsPermanent bool         `json:"is_permanent"`
	Streak      int          `json:"streak"`
}
