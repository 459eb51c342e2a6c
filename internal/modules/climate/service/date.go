package service

import (
	"regexp"
	"time"

	"climate-server/internal/modules/climate/types"
)

const dateLayoutLabel = "YYYY-MM-DD"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate accepts exactly YYYY-MM-DD naming a real calendar day.
func ValidateDate(text string) error {
	if !dateRe.MatchString(text) {
		return &InvalidDateFormatError{Value: text, Layout: dateLayoutLabel}
	}
	if _, err := time.Parse(types.DateLayout, text); err != nil {
		return &InvalidDateFormatError{Value: text, Layout: dateLayoutLabel}
	}
	return nil
}
