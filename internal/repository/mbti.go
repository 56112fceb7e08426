package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/thrivelog/thrivelog/internal/apperr"
	"github.com/thrivelog/thrivelog/internal/model"
)

var (
	ErrMBTIProfileNotFound = apperr.New(apperr.ErrNotFound, "no MBTI profile found, take the quiz first")
)

type MBTIRepository interface {
	// Upsert replaces the owner's profile or creates it. There is no partial merge.
	Upsert(profile *model.MBTIProfile) (*model.MBTIProfile, error)
	ByUserID(userID string) (*model.MBTIProfile, error)
}

type mbtiRepository struct {
	db *sqlx.DB
}

func NewMBTIRepository(db *sqlx.DB) MBTIRepository {
	return &mbtiRepository{db: db}
}

func (r *mbtiRepository) Upsert(profile *model.MBTIProfile) (*model.MBTIProfile, error) {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if profile.AssessmentDate.IsZero() {
		profile.AssessmentDate = now
	}

	query := `INSERT INTO mbti_profiles (id, user_id, mbti_type, confidence, answers, assessment_date, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          ON CONFLICT (user_id) DO UPDATE
	          SET mbti_type = excluded.mbti_type, confidence = excluded.confidence, answers = excluded.answers,
	              assessment_date = excluded.assessment_date, updated_at = excluded.updated_at`

	_, err := r.db.Exec(query,
		profile.ID,
		profile.UserID,
		profile.MBTIType,
		profile.Confidence,
		profile.Answers,
		profile.AssessmentDate,
		now,
		now,
	)
	if err != nil {
		return nil, err
	}

	return r.ByUserID(profile.UserID)
}

func (r *mbtiRepository) ByUserID(userID string) (*model.MBTIProfile, error) {
	var profile model.MBTIProfile
	err := r.db.Get(&profile, `SELECT * FROM mbti_profiles WHERE user_id = $1`, userID)

	if err == sql.ErrNoRows {
		return nil, ErrMBTIProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}
