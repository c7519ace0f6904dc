package datecalc

import (
	"time"

	"github.com/Dan9191/calc-service/internal/models"
)

// GestationDays is the length of a pregnancy counted from the LMP
const GestationDays = 280

// Pregnancy estimates the due date, gestational age and trimester from the
// last menstrual period. An LMP after today is not ready.
func Pregnancy(lmp, now time.Time) (models.PregnancyResult, bool) {
	lmp = civil(lmp)
	elapsed := Days(lmp, now)
	if elapsed < 0 {
		return models.PregnancyResult{}, false
	}
	weeks := elapsed / 7
	return models.PregnancyResult{
		DueDate:        lmp.AddDate(0, 0, GestationDays),
		GestationalAge: models.GestationalAge{Weeks: weeks, Days: elapsed % 7},
		Trimester:      TrimesterOf(weeks),
	}, true
}

// TrimesterOf maps completed weeks to a trimester
func TrimesterOf(weeks int) models.Trimester {
	switch {
	case weeks <= 12:
		return models.FirstTrimester
	case weeks <= 26:
		return models.SecondTrimester
	default:
		return models.ThirdTrimester
	}
}
