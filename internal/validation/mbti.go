package validation

import (
	"github.com/thrivelog/thrivelog/internal/apperr"
	"github.com/thrivelog/thrivelog/internal/mbti"
)

const MaxAnswers = 64

// ValidateAnswers requires at least one answer and only trait letters as values.
func ValidateAnswers(answers map[string]string) error {
	if len(answers) == 0 {
		return apperr.New(apperr.ErrInvalidArgument, "answers are required")
	}
	if len(answers) > MaxAnswers {
		return apperr.Newf(apperr.ErrInvalidArgument, "too many answers (max %d)", MaxAnswers)
	}

	for key, value := range answers {
		if _, ok := mbti.ParseTrait(value); !ok {
			return apperr.Newf(apperr.ErrInvalidArgument, "invalid answer %q for %q: expected one of E, I, S, N, T, F, J, P", value, key)
		}
	}

	return nil
}

// ValidateType requires one of the 16 canonical type codes.
func ValidateType(mbtiType string) error {
	if !mbti.IsType(mbtiType) {
		return apperr.Newf(apperr.ErrInvalidArgument, "invalid MBTI type %q", mbtiType)
	}
	return nil
}
