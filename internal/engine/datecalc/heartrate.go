package datecalc

import (
	"math"

	"github.com/Dan9191/calc-service/internal/engine/numeric"
	"github.com/Dan9191/calc-service/internal/models"
)

type band struct {
	name     string
	low      float64
	high     float64
	benefit  string
	percents string
}

var bands = []band{
	{"Warm Up Zone", 0.5, 0.6, "Very light activity, good for warming up", "50-60%"},
	{"Fat Burn Zone", 0.6, 0.7, "Light activity, improves basic endurance and fat burning", "60-70%"},
	{"Cardio Zone", 0.7, 0.8, "Moderate activity, improves aerobic fitness", "70-80%"},
	{"Peak Zone", 0.8, 0.9, "Hard activity, increases maximum performance capacity", "80-90%"},
	{"Maximum Zone", 0.9, 1.0, "Very hard activity, only for very short bursts", "90-100%"},
}

// ParseHeartRateInput reads the target zone form
func ParseHeartRateInput(age, restingHR string) (models.HeartRateInput, bool) {
	a, ok1 := numeric.Count(age)
	r, ok2 := numeric.Count(restingHR)
	if !ok1 || !ok2 {
		return models.HeartRateInput{}, false
	}
	return models.HeartRateInput{Age: a, RestingHR: r}, true
}

// HeartRateZones applies the Karvonen formula: max HR is 220 − age and each
// band bound is resting + reserve × bound. Inputs leaving no reserve are not ready.
func HeartRateZones(in models.HeartRateInput) (models.HeartRateZones, bool) {
	if in.Age <= 0 || in.RestingHR <= 0 {
		return models.HeartRateZones{}, false
	}
	maxHR := 220 - in.Age
	reserve := maxHR - in.RestingHR
	if reserve <= 0 {
		return models.HeartRateZones{}, false
	}

	at := func(bound float64) int {
		return int(math.Round(float64(in.RestingHR) + float64(reserve)*bound))
	}
	zones := make([]models.HeartRateZone, len(bands))
	for i, b := range bands {
		zones[i] = models.HeartRateZone{
			Name:       b.name,
			Percentage: b.percents,
			Low:        at(b.low),
			High:       at(b.high),
			Benefit:    b.benefit,
		}
	}
	zones[len(zones)-1].High = maxHR
	return models.HeartRateZones{MaxHR: maxHR, Reserve: reserve, Zones: zones}, true
}
