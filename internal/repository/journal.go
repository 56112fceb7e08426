package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/thrivelog/thrivelog/internal/apperr"
	"github.com/thrivelog/thrivelog/internal/model"
)

var (
	ErrJournalEntryNotFound = apperr.New(apperr.ErrNotFound, "journal entry not found")
)

type JournalRepository interface {
	Create(entry *model.JournalEntry) error
	ByID(userID, entryID string) (*model.JournalEntry, error)
	// Entries lists the owner's entries, most recent date first.
	Entries(userID string, filter model.JournalFilter) ([]*model.JournalEntry, error)
	Count(userID string, filter model.JournalFilter) (int, error)
	UpdateAnalysis(userID, entryID string, analysis *model.JournalAnalysis) error
}

type journalRepository struct {
	db *sqlx.DB
}

func NewJournalRepository(db *sqlx.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) Create(entry *model.JournalEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if entry.Date.IsZero() {
		entry.Date = now
	}
	entry.CreatedAt = now
	entry.UpdatedAt = now

	query := `INSERT INTO journal_entries (id, user_id, date, title, content, mood, tags, is_private, analysis, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(query,
		entry.ID,
		entry.UserID,
		entry.Date,
		entry.Title,
		entry.Content,
		entry.Mood,
		entry.Tags,
		entry.IsPrivate,
		entry.Analysis,
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	return err
}

func (r *journalRepository) ByID(userID, entryID string) (*model.JournalEntry, error) {
	entry := &model.JournalEntry{}
	query := `SELECT * FROM journal_entries WHERE id = $1 AND user_id = $2`

	err := r.db.Get(entry, query, entryID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrJournalEntryNotFound
	}

	return entry, err
}

func (r *journalRepository) Entries(userID string, filter model.JournalFilter) ([]*model.JournalEntry, error) {
	entries := []*model.JournalEntry{}

	where, args := journalWhere(userID, filter)
	query := `SELECT * FROM journal_entries ` + where + ` ORDER BY date DESC, created_at DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d OFFSET %d`, filter.Limit, max(filter.Offset, 0))
	}

	err := r.db.Select(&entries, query, args...)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *journalRepository) Count(userID string, filter model.JournalFilter) (int, error) {
	var count int
	where, args := journalWhere(userID, filter)
	err := r.db.Get(&count, `SELECT COUNT(*) FROM journal_entries `+where, args...)
	return count, err
}

func (r *journalRepository) UpdateAnalysis(userID, entryID string, analysis *model.JournalAnalysis) error {
	query := `UPDATE journal_entries SET analysis = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`

	result, err := r.db.Exec(query, analysis, time.Now().UTC(), entryID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrJournalEntryNotFound
	}

	return nil
}

func journalWhere(userID string, filter model.JournalFilter) (string, []any) {
	conds := []string{"user_id = $1"}
	args := []any{userID}

	if filter.IsPrivate != nil {
		args = append(args, *filter.IsPrivate)
		conds = append(conds, fmt.Sprintf("is_private = $%d", len(args)))
	}
	if filter.Since != nil {
		args = append(args, filter.Since.UTC())
		conds = append(conds, fmt.Sprintf("date >= $%d", len(args)))
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}
