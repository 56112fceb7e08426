package model

import (
	"time"

	"github.com/thrivelog/thrivelog/internal/tracking"
)

const (
	HabitCategoryHealth       = "health"
	HabitCategoryProductivity = "productivity"
	HabitCategoryLearning     = "learning"
	HabitCategorySocial       = "social"
	HabitCategoryMindfulness  = "mindfulness"
	HabitCategoryOther        = "other"
)

const (
	HabitFrequencyDaily   = "daily"
	HabitFrequencyWeekly  = "weekly"
	HabitFrequencyMonthly = "monthly"
)

var HabitCategories = []string{
	HabitCategoryHealth,
	HabitCategoryProductivity,
	HabitCategoryLearning,
	HabitCategorySocial,
	HabitCategoryMindfulness,
	HabitCategoryOther,
}

var HabitFrequencies = []string{
	HabitFrequencyDaily,
	HabitFrequencyWeekly,
	HabitFrequencyMonthly,
}

// MaxActiveHabits is the per-user cap on active habits.
const MaxActiveHabits = 3

type Habit struct {
	ID          string `db:"id" json:"id"`
	UserID      string `db:"user_id" json:"user_id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Category    string `db:"category" json:"category"`
	Frequency   string `db:"frequency" json:"frequency"`
	Goal        int    `db:"goal" json:"goal"`

	tracking.Progress

	IsActive  bool      `db:"is_active" json:"is_active"`
	Version   int       `db:"version" json:"version"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NewHabit is the validated input for creating a habit.
type NewHabit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Frequency   string `json:"frequency"`
	Goal        int    `json:"goal"`
}

func IsHabitCategory(s string) bool {
	return contains(HabitCategories, s)
}

func IsHabitFrequency(s string) bool {
	return contains(HabitFrequencies, s)
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// HabitStats summarises a user's active habits.
type HabitStats struct {
	TotalHabits   int `json:"total_habits"`
	AvgStreak     int `json:"avg_streak"`
	LongestStreak int `json:"longest_streak"`
}

// StatsOf computes HabitStats over habits. AvgStreak is rounded half up.
func StatsOf(habits []*Habit) HabitStats {
	stats := HabitStats{TotalHabits: len(habits)}
	if len(habits) == 0 {
		return stats
	}

	sum := 0
	for _, h := range habits {
		sum += h.Streak
		if h.LongestStreak > stats.LongestStreak {
			stats.LongestStreak = h.LongestStreak
		}
	}
	stats.AvgStreak = (2*sum + len(habits)) / (2 * len(habits))

	return stats
}
