package validation

import (
	"net/mail"

	"github.com/thrivelog/thrivelog/internal/apperr"
)

// ValidateEmail checks RFC 5322 format and the 254 character limit.
func ValidateEmail(email string) error {
	if email == "" {
		return apperr.New(apperr.ErrInvalidArgument, "email address is required")
	}
	if len(email) > 254 {
		return apperr.New(apperr.ErrInvalidArgument, "email address is too long (max 254 characters)")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return apperr.New(apperr.ErrInvalidArgument, "invalid email address format")
	}

	return nil
}
