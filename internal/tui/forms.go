package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/attune/internal/models"
)

// NewHabitForm creates the add/rename habit form.
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[models.TaskCategory]().
				Title("Category").
				Options(
					huh.NewOption("Mindfulness", models.CategoryMindfulness),
					huh.NewOption("Health", models.CategoryHealth),
					huh.NewOption("Reflection", models.CategoryReflection),
					huh.NewOption("Exercise", models.CategoryExercise),
					huh.NewOption("Learning", models.CategoryLearning),
				).
				Value(&fm.Category),
			huh.NewConfirm().
				Title("Pin (survives the daily reset)").
				Value(&fm.Pinned),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewRenameHabitForm creates the single-field rename form.
func NewRenameHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewStressForm creates the manual stress-log form.
func NewStressForm(fm *StressFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.StressLevel]().
				Title("How stressed are you?").
				Options(
					huh.NewOption("Very low", models.StressVeryLow),
					huh.NewOption("Low", models.StressLow),
					huh.NewOption("Moderate", models.StressModerate),
					huh.NewOption("High", models.StressHigh),
					huh.NewOption("Very high", models.StressVeryHigh),
				).
				Value(&fm.Level),
			huh.NewInput().
				Title("Note (optional)").
				Value(&fm.Note),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewSleepForm creates the sleep-log form. Duration is computed from bedtime
// and wakeup, wrapping overnight.
func NewSleepForm(fm *SleepFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&fm.Date).
				Validate(func(s string) error {
					if _, err := time.Parse("2006-01-02", s); err != nil {
						return fmt.Errorf("invalid date format, use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Bedtime (HH:MM)").
				Value(&fm.Bedtime).
				Validate(validateClock),
			huh.NewInput().
				Title("Wakeup (HH:MM)").
				Value(&fm.Wakeup).
				Validate(validateClock),
			huh.NewSelect[models.SleepQuality]().
				Title("Quality").
				Options(
					huh.NewOption("Excellent", models.SleepExcellent),
					huh.NewOption("Good", models.SleepGood),
					huh.NewOption("Fair", models.SleepFair),
					huh.NewOption("Poor", models.SleepPoor),
				).
				Value(&fm.Quality),
		),
	).WithTheme(huh.ThemeDracula())
}

func validateClock(s string) error {
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("invalid time format, use HH:MM")
	}
	return nil
}

// NewJournalForm creates the journal entry form, used for both add and edit.
func NewJournalForm(fm *JournalFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),
			huh.NewText().
				Title("Entry").
				Value(&fm.Content),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewSettingsForm creates the preferences form.
func NewSettingsForm(fm *SettingsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Sound").
				Value(&fm.SoundEnabled),
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("System", "system"),
					huh.NewOption("Light", "light"),
					huh.NewOption("Dark", "dark"),
				).
				Value(&fm.Theme),
			huh.NewInput().
				Title("Chat panel width (dashboard)").
				Value(&fm.ChatPanelWidth).
				Validate(validateDimension),
			huh.NewInput().
				Title("Chat panel height (dashboard)").
				Value(&fm.ChatPanelHeight).
				Validate(validateDimension),
			huh.NewInput().
				Title("Chat panel width (tab)").
				Value(&fm.ChatTabPanelWidth).
				Validate(validateDimension),
			huh.NewInput().
				Title("Chat panel height (tab)").
				Value(&fm.ChatTabPanelHeight).
				Validate(validateDimension),
			huh.NewConfirm().
				Title("Print pending notifications on exit").
				Value(&fm.NotificationsOnExit),
		),
	).WithTheme(huh.ThemeDracula())
}

func validateDimension(s string) error {
	i, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if i < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

// settingsFormFrom seeds the form model from persisted settings.
func settingsFormFrom(s models.Settings) *SettingsFormModel {
	return &SettingsFormModel{
		SoundEnabled:        s.SoundEnabled,
		Theme:               s.Theme,
		ChatPanelWidth:      strconv.Itoa(s.ChatPanelWidth),
		ChatPanelHeight:     strconv.Itoa(s.ChatPanelHeight),
		ChatTabPanelWidth:   strconv.Itoa(s.ChatTabPanelWidth),
		ChatTabPanelHeight:  strconv.Itoa(s.ChatTabPanelHeight),
		NotificationsOnExit: s.NotificationsOnExit,
	}
}

// settingsFromForm converts the validated form back into settings.
func settingsFromForm(fm *SettingsFormModel) models.Settings {
	atoi := func(s string) int {
		i, _ := strconv.Atoi(s)
		return i
	}
	return models.Settings{
		SoundEnabled:        fm.SoundEnabled,
		Theme:               fm.Theme,
		ChatPanelWidth:      atoi(fm.ChatPanelWidth),
		ChatPanelHeight:     atoi(fm.ChatPanelHeight),
		ChatTabPanelWidth:   atoi(fm.ChatTabPanelWidth),
		ChatTabPanelHeight:  atoi(fm.ChatTabPanelHeight),
		NotificationsOnExit: fm.NotificationsOnExit,
	}
}
