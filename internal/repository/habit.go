package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/thrivelog/thrivelog/internal/apperr"
	"github.com/thrivelog/thrivelog/internal/model"
)

var (
	ErrHabitNotFound        = apperr.New(apperr.ErrNotFound, "habit not found")
	ErrHabitLimitReached    = apperr.Newf(apperr.ErrQuotaExceeded, "maximum %d active habits allowed", model.MaxActiveHabits)
	ErrHabitVersionConflict = apperr.New(apperr.ErrConflict, "habit was modified concurrently")
)

type HabitRepository interface {
	// CreateWithinLimit inserts habit unless the owner already has limit active habits.
	CreateWithinLimit(habit *model.Habit, limit int) error
	ByID(userID, habitID string) (*model.Habit, error)
	// Habits lists the owner's habits, newest first. A nil active matches all.
	Habits(userID string, active *bool) ([]*model.Habit, error)
	CountActive(userID string) (int, error)
	// UpdateProgress writes the tracking fields if habit.Version is still current.
	UpdateProgress(habit *model.Habit) error
	Deactivate(userID, habitID string) error
}

type habitRepository struct {
	db *sqlx.DB
}

func NewHabitRepository(db *sqlx.DB) HabitRepository {
	return &habitRepository{db: db}
}

func (r *habitRepository) CreateWithinLimit(habit *model.Habit, limit int) error {
	if habit.ID == "" {
		habit.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	habit.CreatedAt = now
	habit.UpdatedAt = now
	habit.IsActive = true
	habit.Version = 1

	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Touching the owner row serializes concurrent creates for the same user on
	// both SQLite and Postgres before the count is taken.
	result, err := tx.Exec(`UPDATE users SET updated_at = updated_at WHERE id = $1`, habit.UserID)
	if err != nil {
		return fmt.Errorf("lock owner: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	var active int
	err = tx.Get(&active, `SELECT COUNT(*) FROM habits WHERE user_id = $1 AND is_active = $2`, habit.UserID, true)
	if err != nil {
		return err
	}
	if active >= limit {
		return ErrHabitLimitReached
	}

	query := `INSERT INTO habits (id, user_id, title, description, category, frequency, goal,
	                              tracking, completed, streak, longest_streak, is_active, version, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err = tx.Exec(query,
		habit.ID,
		habit.UserID,
		habit.Title,
		habit.Description,
		habit.Category,
		habit.Frequency,
		habit.Goal,
		habit.Log,
		habit.Completed,
		habit.Streak,
		habit.LongestStreak,
		habit.IsActive,
		habit.Version,
		habit.CreatedAt,
		habit.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *habitRepository) ByID(userID, habitID string) (*model.Habit, error) {
	habit := &model.Habit{}
	query := `SELECT * FROM habits WHERE id = $1 AND user_id = $2`

	err := r.db.Get(habit, query, habitID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrHabitNotFound
	}

	return habit, err
}

func (r *habitRepository) Habits(userID string, active *bool) ([]*model.Habit, error) {
	habits := []*model.Habit{}

	query := `SELECT * FROM habits WHERE user_id = $1`
	args := []any{userID}
	if active != nil {
		query += ` AND is_active = $2`
		args = append(args, *active)
	}
	query += ` ORDER BY created_at DESC`

	err := r.db.Select(&habits, query, args...)
	if err != nil {
		return nil, err
	}

	return habits, nil
}

func (r *habitRepository) CountActive(userID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM habits WHERE user_id = $1 AND is_active = $2`
	err := r.db.QueryRow(query, userID, true).Scan(&count)
	return count, err
}

func (r *habitRepository) UpdateProgress(habit *model.Habit) error {
	now := time.Now().UTC()
	query := `UPDATE habits
	          SET tracking = $1, completed = $2, streak = $3, longest_streak = $4, version = version + 1, updated_at = $5
	          WHERE id = $6 AND user_id = $7 AND version = $8`

	result, err := r.db.Exec(query,
		habit.Log,
		habit.Completed,
		habit.Streak,
		habit.LongestStreak,
		now,
		habit.ID,
		habit.UserID,
		habit.Version,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		if _, err := r.ByID(habit.UserID, habit.ID); err != nil {
			return err
		}
		return ErrHabitVersionConflict
	}

	habit.Version++
	habit.UpdatedAt = now
	return nil
}

func (r *habitRepository) Deactivate(userID, habitID string) error {
	query := `UPDATE habits SET is_active = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`

	result, err := r.db.Exec(query, false, time.Now().UTC(), habitID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrHabitNotFound
	}

	return nil
}
