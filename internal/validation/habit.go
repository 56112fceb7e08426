package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/thrivelog/thrivelog/internal/apperr"
	"github.com/thrivelog/thrivelog/internal/model"
)

const (
	MaxHabitTitle       = 100
	MaxHabitDescription = 500
)

// NormalizeHabit validates a new habit and fills defaults: category "other",
// frequency "daily", goal 1.
func NormalizeHabit(in model.NewHabit) (model.NewHabit, error) {
	out := model.NewHabit{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    NormalizeEnum(in.Category),
		Frequency:   NormalizeEnum(in.Frequency),
		Goal:        in.Goal,
	}

	if out.Title == "" {
		return out, apperr.New(apperr.ErrInvalidArgument, "title is required")
	}
	if utf8.RuneCountInString(out.Title) > MaxHabitTitle {
		return out, apperr.Newf(apperr.ErrInvalidArgument, "title is too long (max %d characters)", MaxHabitTitle)
	}
	if utf8.RuneCountInString(out.Description) > MaxHabitDescription {
		return out, apperr.Newf(apperr.ErrInvalidArgument, "description is too long (max %d characters)", MaxHabitDescription)
	}

	if out.Category == "" {
		out.Category = model.HabitCategoryOther
	}
	if !model.IsHabitCategory(out.Category) {
		return out, apperr.Newf(apperr.ErrInvalidArgument, "invalid category %q (allowed: %s)", in.Category, strings.Join(model.HabitCategories, ", "))
	}

	if out.Frequency == "" {
		out.Frequency = model.HabitFrequencyDaily
	}
	if !model.IsHabitFrequency(out.Frequency) {
		return out, apperr.Newf(apperr.ErrInvalidArgument, "invalid frequency %q (allowed: %s)", in.Frequency, strings.Join(model.HabitFrequencies, ", "))
	}

	if out.Goal == 0 {
		out.Goal = 1
	}
	if out.Goal < 1 {
		return out, apperr.New(apperr.ErrInvalidArgument, "goal must be at least 1")
	}

	return out, nil
}
