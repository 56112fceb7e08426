package validation

import (
	"strings"

	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// NormalizeEnum trims and case-folds s so "Daily " matches "daily".
func NormalizeEnum(s string) string {
	return fold.String(strings.TrimSpace(s))
}
