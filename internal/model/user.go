package model

import (
	"time"
)

type User struct {
	ID        string    `db:"id" json:"id"`
	Subject   string    `db:"subject" json:"-"` // identity provider subject
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	Picture   string    `db:"picture" json:"picture"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// DisplayName falls back to the email when the provider gave no name.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
