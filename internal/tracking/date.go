package tracking

import (
	"time"

	"github.com/thrivelog/thrivelog/internal/apperr"
)

// DateLayout is the only accepted date form. Zero padding keeps lexicographic order
// identical to calendar order, which the log relies on.
const DateLayout = "2006-01-02"

// Date is a calendar day in canonical YYYY-MM-DD form.
type Date string

// ParseDate validates s as a real calendar date in canonical form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return "", apperr.Newf(apperr.ErrInvalidArgument, "invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date(s), nil
}

// DateOf returns the UTC calendar day of t.
func DateOf(t time.Time) Date {
	return Date(t.UTC().Format(DateLayout))
}

func (d Date) String() string {
	return string(d)
}

func (d Date) Time() time.Time {
	t, _ := time.Parse(DateLayout, string(d))
	return t
}
