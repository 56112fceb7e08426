package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/thrivelog/thrivelog/internal/apperr"
	"github.com/thrivelog/thrivelog/internal/model"
	"github.com/thrivelog/thrivelog/internal/repository"
	"github.com/thrivelog/thrivelog/internal/tracking"
	"github.com/thrivelog/thrivelog/internal/validation"
)

const (
	trackAttempts = 5
	trackRetryGap = 20 * time.Millisecond
)

type HabitService struct {
	repo repository.HabitRepository
}

func NewHabitService(repo repository.HabitRepository) *HabitService {
	return &HabitService{
		repo: repo,
	}
}

// Create validates in and stores a new active habit, failing with
// ErrHabitLimitReached when the owner already has MaxActiveHabits.
func (s *HabitService) Create(userID string, in model.NewHabit) (*model.Habit, error) {
	in, err := validation.NormalizeHabit(in)
	if err != nil {
		return nil, err
	}

	habit := &model.Habit{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Frequency:   in.Frequency,
		Goal:        in.Goal,
		Progress:    tracking.Progress{Log: tracking.NewLog(nil)},
	}

	err = s.repo.CreateWithinLimit(habit, model.MaxActiveHabits)
	if err != nil {
		if apperr.Kind(err) == nil {
			return nil, fmt.Errorf("failed to create habit: %w", err)
		}
		return nil, err
	}

	slog.Info("habit created", "user_id", userID, "habit_id", habit.ID)
	return habit, nil
}

func (s *HabitService) ByID(userID, habitID string) (*model.Habit, error) {
	return s.repo.ByID(userID, habitID)
}

func (s *HabitService) Habits(userID string, active *bool) ([]*model.Habit, error) {
	return s.repo.Habits(userID, active)
}

// Track records completed for date and persists the recomputed progress. Lost
// compare-and-swap races are retried on a fresh read a bounded number of times.
func (s *HabitService) Track(userID, habitID, date string, completed bool) (*model.Habit, error) {
	day, err := tracking.ParseDate(date)
	if err != nil {
		return nil, err
	}

	var habit *model.Habit
	operation := func() error {
		h, err := s.repo.ByID(userID, habitID)
		if err != nil {
			return backoff.Permanent(err)
		}

		h.Record(day, completed)

		err = s.repo.UpdateProgress(h)
		if errors.Is(err, apperr.ErrConflict) {
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}

		habit = h
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(trackRetryGap), trackAttempts-1)
	err = backoff.RetryNotify(operation, policy, func(err error, wait time.Duration) {
		slog.Warn("habit tracking conflict, retrying", "user_id", userID, "habit_id", habitID, "wait", wait)
	})
	if err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) Deactivate(userID, habitID string) error {
	err := s.repo.Deactivate(userID, habitID)
	if err != nil {
		return err
	}

	slog.Info("habit deactivated", "user_id", userID, "habit_id", habitID)
	return nil
}

// Stats summarises the owner's active habits.
func (s *HabitService) Stats(userID string) (model.HabitStats, error) {
	active := true
	habits, err := s.repo.Habits(userID, &active)
	if err != nil {
		return model.HabitStats{}, err
	}
	return model.StatsOf(habits), nil
}
