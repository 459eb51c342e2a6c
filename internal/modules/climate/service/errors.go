package service

import (
	"errors"
	"fmt"
)

// Guidance errors. Their text is shown to API clients verbatim.
var (
	ErrMissingStartDate = errors.New("Please enter the start date")
	ErrInvalidRange     = errors.New("End date should be greater than start date")
	ErrNoData           = errors.New("Temperatures not found!")
)

// InvalidDateFormatError reports a query date that is not a real YYYY-MM-DD date.
type InvalidDateFormatError struct {
	Value  string
	Layout string
}

func (e *InvalidDateFormatError) Error() string {
	return fmt.Sprintf("Incorrect date format %q, should be %s", e.Value, e.Layout)
}
