package datecalc

import (
	"testing"
	"time"

	"github.com/Dan9191/calc-service/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAge(t *testing.T) {
	now := time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC)
	tests := []struct {
		name  string
		birth time.Time
		want  models.AgeResult
	}{
		{"one year one month one day", date(2023, time.February, 14), models.AgeResult{Years: 1, Months: 1, Days: 1}},
		{"born today", date(2024, time.March, 15), models.AgeResult{}},
		{"day and month borrow", date(2000, time.May, 20), models.AgeResult{Years: 23, Months: 9, Days: 24}},
		{"borrow reduces year to zero", date(2023, time.April, 16), models.AgeResult{Years: 0, Months: 10, Days: 28}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Age(tt.birth, now)
			if !ok {
				t.Fatal("expected a result")
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
			if got.Months < 0 || got.Days < 0 {
				t.Errorf("negative fields in %+v", got)
			}
		})
	}
}

func TestAge_DoubleBorrow(t *testing.T) {
	tests := []struct {
		name       string
		birth, now time.Time
		want       models.AgeResult
	}{
		{"jan 31 to mar 1", date(2023, time.January, 31), date(2023, time.March, 1), models.AgeResult{Days: 29}},
		{"jan 31 to mar 1 leap year", date(2024, time.January, 31), date(2024, time.March, 1), models.AgeResult{Days: 30}},
		{"dec 31 to mar 2 across years", date(2022, time.December, 31), date(2023, time.March, 2), models.AgeResult{Months: 1, Days: 30}},
		{"may 31 to jul 1 needs one borrow", date(2020, time.May, 31), date(2023, time.July, 1), models.AgeResult{Years: 3, Months: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Age(tt.birth, tt.now)
			if !ok {
				t.Fatal("expected a result")
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
			if got.Months < 0 || got.Days < 0 {
				t.Errorf("negative fields in %+v", got)
			}
		})
	}
}

func TestAge_FutureBirthDate(t *testing.T) {
	if _, ok := Age(date(2030, time.January, 1), date(2024, time.January, 1)); ok {
		t.Error("expected future birth date to be not ready")
	}
}

func TestCycle(t *testing.T) {
	in, ok := ParseCycleInput("2024-01-01", "28", "")
	if !ok {
		t.Fatal("expected input to be ready")
	}
	got, ok := Cycle(in)
	if !ok {
		t.Fatal("expected a projection")
	}
	checks := map[string][2]time.Time{
		"next period":   {got.NextPeriodStart, date(2024, time.January, 29)},
		"period end":    {got.NextPeriodEnd, date(2024, time.February, 2)},
		"ovulation":     {got.OvulationDate, date(2024, time.January, 15)},
		"fertile start": {got.FertileWindow.Start, date(2024, time.January, 10)},
		"fertile end":   {got.FertileWindow.End, date(2024, time.January, 15)},
	}
	for name, c := range checks {
		if !c[0].Equal(c[1]) {
			t.Errorf("%s: got %s, want %s", name, c[0].Format("2006-01-02"), c[1].Format("2006-01-02"))
		}
	}
	if Days(got.OvulationDate, got.NextPeriodStart) != 14 {
		t.Error("ovulation must sit 14 days before the next period")
	}
}

func TestParseCycleInput(t *testing.T) {
	if _, ok := ParseCycleInput("", "28", "5"); ok {
		t.Error("expected missing date to be not ready")
	}
	if _, ok := ParseCycleInput("2024-01-01", "0", "5"); ok {
		t.Error("expected zero cycle length to be not ready")
	}
	in, ok := ParseCycleInput("2024-01-01", "", "")
	if !ok || in.CycleLengthDays != DefaultCycleLength || in.PeriodLengthDays != DefaultPeriodLength {
		t.Errorf("expected defaults, got %+v", in)
	}
}

func TestPregnancy(t *testing.T) {
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
	got, ok := Pregnancy(date(2024, time.January, 1), now)
	if !ok {
		t.Fatal("expected a result")
	}
	if !got.DueDate.Equal(date(2024, time.October, 7)) {
		t.Errorf("due date %s", got.DueDate.Format("2006-01-02"))
	}
	if got.GestationalAge != (models.GestationalAge{Weeks: 10, Days: 4}) {
		t.Errorf("gestational age %+v", got.GestationalAge)
	}
	if got.Trimester != models.FirstTrimester {
		t.Errorf("trimester %v", got.Trimester)
	}
	if _, ok := Pregnancy(date(2024, time.April, 1), now); ok {
		t.Error("expected future LMP to be not ready")
	}
}

func TestTrimesterBoundaries(t *testing.T) {
	tests := map[int]models.Trimester{
		0:  models.FirstTrimester,
		12: models.FirstTrimester,
		13: models.SecondTrimester,
		26: models.SecondTrimester,
		27: models.ThirdTrimester,
		41: models.ThirdTrimester,
	}
	for weeks, want := range tests {
		if got := TrimesterOf(weeks); got != want {
			t.Errorf("TrimesterOf(%d) = %v, want %v", weeks, got, want)
		}
	}
}

func TestHeartRateZones(t *testing.T) {
	in, ok := ParseHeartRateInput("30", "60")
	if !ok {
		t.Fatal("expected input to be ready")
	}
	got, ok := HeartRateZones(in)
	if !ok {
		t.Fatal("expected zones")
	}
	if got.MaxHR != 190 || got.Reserve != 130 {
		t.Errorf("max %d reserve %d", got.MaxHR, got.Reserve)
	}
	if len(got.Zones) != 5 {
		t.Fatalf("expected 5 zones, got %d", len(got.Zones))
	}
	if z := got.Zones[0]; z.Low != 125 || z.High != 138 {
		t.Errorf("warm up zone %+v", z)
	}
	if z := got.Zones[4]; z.Low != 177 || z.High != 190 {
		t.Errorf("maximum zone %+v", z)
	}
	for i := 1; i < len(got.Zones); i++ {
		if got.Zones[i].Low != got.Zones[i-1].High {
			t.Errorf("zone %d does not start where zone %d ends", i, i-1)
		}
	}
}

func TestHeartRateZones_NotReady(t *testing.T) {
	if _, ok := ParseHeartRateInput("", "60"); ok {
		t.Error("expected missing age to be not ready")
	}
	if _, ok := HeartRateZones(models.HeartRateInput{Age: 30, RestingHR: 200}); ok {
		t.Error("expected resting above max to be not ready")
	}
}
