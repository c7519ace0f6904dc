// Package datecalc computes age, cycle, pregnancy and heart-rate figures.
//
// Dates are calendar days: inputs are parsed as UTC midnights and "today"
// is taken from the caller's clock in its own location.
package datecalc

import (
	"time"

	"github.com/Dan9191/calc-service/internal/models"
)

// civil returns the calendar day of t as a UTC midnight
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Age returns the years, months and days between birth and now.
// A negative day difference borrows the length of the month before now's
// month, then of the month before that while days stay negative; a
// negative month difference borrows a year. Birth dates after
// today are not ready.
func Age(birth, now time.Time) (models.AgeResult, bool) {
	birth, today := civil(birth), civil(now)
	if birth.After(today) {
		return models.AgeResult{}, false
	}

	years := today.Year() - birth.Year()
	months := int(today.Month()) - int(birth.Month())
	days := today.Day() - birth.Day()

	// day 0 of month m is the last day of the month before it. A birth day
	// past the end of that month (Jan 31 seen from Mar 1) needs a second borrow.
	for m := today.Month(); days < 0; m-- {
		months--
		days += time.Date(today.Year(), m, 0, 0, 0, 0, 0, time.UTC).Day()
	}
	if months < 0 {
		years--
		months += 12
	}
	return models.AgeResult{Years: years, Months: months, Days: days}, true
}
