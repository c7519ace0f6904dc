package datecalc

import (
	"strings"
	"time"

	"github.com/Dan9191/calc-service/internal/engine/numeric"
	"github.com/Dan9191/calc-service/internal/models"
)

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5

	// lutealPhaseDays separates ovulation from the next period
	lutealPhaseDays = 14
	// fertileLeadDays is how far the fertile window opens before ovulation
	fertileLeadDays = 5
)

// ParseCycleInput reads the period calculator form. Empty length fields fall
// back to the form defaults; anything else must pass the gating rule.
func ParseCycleInput(lastPeriod, cycleLength, periodLength string) (models.CycleInput, bool) {
	last, ok := numeric.ParseDate(lastPeriod)
	if !ok {
		return models.CycleInput{}, false
	}
	cycle, ok := countOrDefault(cycleLength, DefaultCycleLength)
	if !ok {
		return models.CycleInput{}, false
	}
	period, ok := countOrDefault(periodLength, DefaultPeriodLength)
	if !ok {
		return models.CycleInput{}, false
	}
	return models.CycleInput{LastPeriodStart: last, CycleLengthDays: cycle, PeriodLengthDays: period}, true
}

func countOrDefault(text string, def int) (int, bool) {
	if strings.TrimSpace(text) == "" {
		return def, true
	}
	return numeric.Count(text)
}

// Cycle projects the next period, ovulation and fertile window by fixed
// day offsets from the last period start.
func Cycle(in models.CycleInput) (models.CycleProjection, bool) {
	if in.LastPeriodStart.IsZero() || in.CycleLengthDays <= 0 {
		return models.CycleProjection{}, false
	}
	next := civil(in.LastPeriodStart).AddDate(0, 0, in.CycleLengthDays)
	ovulation := next.AddDate(0, 0, -lutealPhaseDays)

	periodLength := in.PeriodLengthDays
	if periodLength <= 0 {
		periodLength = DefaultPeriodLength
	}
	return models.CycleProjection{
		NextPeriodStart: next,
		NextPeriodEnd:   next.AddDate(0, 0, periodLength-1),
		OvulationDate:   ovulation,
		FertileWindow: models.DateRange{
			Start: ovulation.AddDate(0, 0, -fertileLeadDays),
			End:   ovulation,
		},
	}, true
}

// Days between two calendar dates, b − a
func Days(a, b time.Time) int {
	return int(civil(b).Sub(civil(a)).Hours() / 24)
}
