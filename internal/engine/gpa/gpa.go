// Package gpa computes a credit-weighted grade point average.
package gpa

import (
	"strings"

	"github.com/Dan9191/calc-service/internal/engine/numeric"
	"github.com/Dan9191/calc-service/internal/models"
)

// Points maps letter grades to grade points on a 4.0 scale
var Points = map[string]float64{
	"A+": 4.0, "A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D": 1.0, "F": 0.0,
}

// Calculate averages the grade points of every course weighted by credits.
// Courses with an unknown grade or without credits are skipped; the result
// is not ready when no course counts.
func Calculate(courses []models.Course) (models.GPAResult, bool) {
	var points, credits float64
	for _, c := range courses {
		cr, ok := numeric.Ready(c.Credits)
		if !ok {
			continue
		}
		p, ok := Points[strings.ToUpper(strings.TrimSpace(c.Grade))]
		if !ok {
			continue
		}
		points += p * cr
		credits += cr
	}
	if credits <= 0 {
		return models.GPAResult{}, false
	}
	return models.GPAResult{
		GPA:          numeric.Round2(points / credits),
		TotalCredits: credits,
		TotalPoints:  numeric.Round2(points),
	}, true
}
