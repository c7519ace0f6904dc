package models

import "time"

// AgeResult represents a calendar difference between a birth date and today
type AgeResult struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

// CycleInput represents the inputs of a menstrual cycle projection
type CycleInput struct {
	LastPeriodStart  time.Time `json:"last_period_start"`
	CycleLengthDays  int       `json:"cycle_length_days"`
	PeriodLengthDays int       `json:"period_length_days"`
}

// DateRange is an inclusive range of calendar days
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CycleProjection represents the next period and fertility dates
type CycleProjection struct {
	NextPeriodStart time.Time `json:"next_period_start"`
	NextPeriodEnd   time.Time `json:"next_period_end"`
	OvulationDate   time.Time `json:"ovulation_date"`
	FertileWindow   DateRange `json:"fertile_window"`
}

// Trimester of a pregnancy
type Trimester int

const (
	FirstTrimester Trimester = iota + 1
	SecondTrimester
	ThirdTrimester
)

// String returns the display label of the trimester
func (t Trimester) String() string {
	switch t {
	case FirstTrimester:
		return "First Trimester (Weeks 1-12)"
	case SecondTrimester:
		return "Second Trimester (Weeks 13-26)"
	case ThirdTrimester:
		return "Third Trimester (Weeks 27-40)"
	}
	return "Unknown"
}

// MarshalText encodes the trimester as its label
func (t Trimester) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// GestationalAge is the elapsed time since the last menstrual period
type GestationalAge struct {
	Weeks int `json:"weeks"`
	Days  int `json:"days"`
}

// PregnancyResult represents a due date estimate
type PregnancyResult struct {
	DueDate        time.Time      `json:"due_date"`
	GestationalAge GestationalAge `json:"gestational_age"`
	Trimester      Trimester      `json:"trimester"`
}

// HeartRateInput represents the vitals used for training zones
type HeartRateInput struct {
	Age       int `json:"age"`
	RestingHR int `json:"resting_hr"`
}

// HeartRateZone is one training intensity band in beats per minute
type HeartRateZone struct {
	Name       string `json:"name"`
	Percentage string `json:"percentage"`
	Low        int    `json:"low"`
	High       int    `json:"high"`
	Benefit    string `json:"benefit"`
}

// HeartRateZones represents the Karvonen zones for a person
type HeartRateZones struct {
	MaxHR   int             `json:"max_hr"`
	Reserve int             `json:"reserve"`
	Zones   []HeartRateZone `json:"zones"`
}
