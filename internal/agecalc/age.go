// Package agecalc derives a child's age at the moment an artwork was made.
//
// Dates are naive calendar dates: only the year, month and day fields of a
// time.Time are read, never the clock or the location. Days are not
// compared, so a birth on the 28th observed on the 1st of the next month
// already counts as one month.
package agecalc

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/atelier/internal/common"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// Age is a whole number of years and months, 0 <= Months <= 11.
type Age struct {
	Years  int
	Months int
}

// String renders the fixed two-field label stored with an artwork.
func (a Age) String() string {
	return fmt.Sprintf("%d歳 %dヶ月", a.Years, a.Months)
}

// Compute returns the age at observed of someone born at birth.
// It returns common.ErrOutOfRange when observed is an earlier calendar date
// than birth, including an earlier day of the same month.
func Compute(birth, observed time.Time) (Age, error) {
	if Date(observed).Before(Date(birth)) {
		return Age{}, common.ErrOutOfRange
	}

	years := observed.Year() - birth.Year()
	months := int(observed.Month()) - int(birth.Month())

	if months < 0 {
		years--
		months += 12
	}

	if years < 0 {
		return Age{}, common.ErrOutOfRange
	}

	return Age{Years: years, Months: months}, nil
}

// ParseDate parses a YYYY-MM-DD calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, common.ErrorValidation)
	}
	return t, nil
}

// Date truncates t to its calendar date in UTC, keeping t's own Y/M/D.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
