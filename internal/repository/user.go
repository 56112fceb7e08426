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
	ErrUserNotFound = apperr.New(apperr.ErrNotFound, "user not found")
)

type UserRepository interface {
	// Upsert creates the user for user.Subject or refreshes its profile fields.
	Upsert(user *model.User) (*model.User, error)
	ByID(id string) (*model.User, error)
	BySubject(subject string) (*model.User, error)
	ByEmail(email string) (*model.User, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Upsert(user *model.User) (*model.User, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now().UTC()

	query := `INSERT INTO users (id, subject, email, name, picture, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (subject) DO UPDATE
	          SET email = excluded.email, name = excluded.name, picture = excluded.picture, updated_at = excluded.updated_at`

	_, err := r.db.Exec(query, user.ID, user.Subject, user.Email, user.Name, user.Picture, now, now)
	if err != nil {
		return nil, err
	}

	return r.BySubject(user.Subject)
}

func (r *userRepository) ByID(id string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.Get(user, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *userRepository) BySubject(subject string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE subject = $1`

	err := r.db.Get(user, query, subject)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *userRepository) ByEmail(email string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE email = $1 ORDER BY created_at LIMIT 1`

	err := r.db.Get(user, query, email)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}
