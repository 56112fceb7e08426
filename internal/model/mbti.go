package model

import (
	"database/sql/driver"
	"time"
)

type MBTIProfile struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"user_id"`
	MBTIType       string    `db:"mbti_type" json:"mbti_type"`
	Confidence     int       `db:"confidence" json:"confidence"`
	Answers        Answers   `db:"answers" json:"answers"`
	AssessmentDate time.Time `db:"assessment_date" json:"assessment_date"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Answers maps a quiz question key to the trait letter chosen.
type Answers map[string]string

func (a *Answers) Scan(src any) error {
	m := Answers{}
	if err := scanJSON(src, &m); err != nil {
		return err
	}
	*a = m
	return nil
}

func (a Answers) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	return jsonValue(map[string]string(a))
}
