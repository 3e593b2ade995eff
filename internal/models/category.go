package models

// TaskCategory classifies habits, todos, and chat suggestions.
type TaskCategory string

const (
	CategoryMindfulness TaskCategory = "mindfulness"
	CategoryHealth      TaskCategory = "health"
	CategoryReflection  TaskCategory = "reflection"
	CategoryExercise    TaskCategory = "exercise"
	CategoryLearning    TaskCategory = "learning"
)

// IsValid reports whether c is one of the known categories.
func (c TaskCategory) IsValid() bool {
	switch c {
	case CategoryMindfulness, CategoryHealth, CategoryReflection, CategoryExercise, CategoryLearning:
		return true
	}
	return false
}

// OrDefault returns c when valid, otherwise CategoryHealth.
func (c TaskCategory) OrDefault() TaskCategory {
	if c.IsValid() {
		return c
	}
	return CategoryHealth
}

// StressLevel is the coarse five-step stress classification.
type StressLevel string

const (
	StressVeryLow  StressLevel = "very-low"
	StressLow      StressLevel = "low"
	StressModerate StressLevel = "moderate"
	StressHigh     StressLevel = "high"
	StressVeryHigh StressLevel = "very-high"
)

// IsValid reports whether l is one of the five known levels.
func (l StressLevel) IsValid() bool {
	switch l {
	case StressVeryLow, StressLow, StressModerate, StressHigh, StressVeryHigh:
		return true
	}
	return false
}

// OrDefault returns l when valid, otherwise StressModerate.
func (l StressLevel) OrDefault() StressLevel {
	if l.IsValid() {
		return l
	}
	return StressModerate
}

// Elevated reports whether l is high or very-high.
func (l StressLevel) Elevated() bool {
	return l == StressHigh || l == StressVeryHigh
}

// SleepQuality rates a night of sleep.
type SleepQuality string

const (
	SleepExcellent SleepQuality = "excellent"
	SleepGood      SleepQuality = "good"
	SleepFair      SleepQuality = "fair"
	SleepPoor      SleepQuality = "poor"
)

// IsValid reports whether q is one of the known quality ratings.
func (q SleepQuality) IsValid() bool {
	switch q {
	case SleepExcellent, SleepGood, SleepFair, SleepPoor:
		return true
	}
	return false
}
