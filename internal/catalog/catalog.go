package catalog

import (
	"errors"
	"strings"

	"github.com/Dan9191/calc-service/internal/models"
)

// ErrUnknownCalculator is returned for routes or IDs not in the catalog
var ErrUnknownCalculator = errors.New("unknown calculator")

const (
	CategoryBasic   = "basic"
	CategoryFinance = "finance"
	CategoryHealth  = "health"
	CategoryTools   = "tools"
)

// calculators is the navigation table, in menu order
var calculators = []models.Calculator{
	{ID: "simple", Name: "Simple Calculator", Category: CategoryBasic, Route: "/simple-calculator", Description: "Basic arithmetic operations", Routed: true},
	{ID: "emi", Name: "EMI Calculator", Category: CategoryFinance, Route: "/emi-calculator", Description: "Calculate loan EMI", Routed: true},
	{ID: "interest", Name: "Interest Calculator", Category: CategoryFinance, Route: "/interest-calculator", Description: "Simple & compound interest", Routed: true},
	{ID: "investment", Name: "Investment Return Calculator", Category: CategoryFinance, Route: "/investment-calculator", Description: "Calculate investment returns", Routed: true},
	{ID: "period", Name: "Women Periods Calculator", Category: CategoryHealth, Route: "/period-calculator", Description: "Track menstrual cycle", Routed: true},
	{ID: "age", Name: "Age Calculator", Category: CategoryHealth, Route: "/age-calculator", Description: "Years, months and days since a date", Routed: true},
	{ID: "fuel", Name: "Fuel Cost Calculator", Category: CategoryTools, Route: "/fuel-calculator", Description: "Trip fuel and cost", Routed: true},
	{ID: "gpa", Name: "GPA Calculator", Category: CategoryTools, Route: "/gpa-calculator", Description: "Credit-weighted grade point average", Routed: true},
	{ID: "hex", Name: "Hexadecimal Calculator", Category: CategoryTools, Route: "/hex-calculator", Description: "Convert between hex and decimal", Routed: true},
	{ID: "world-time", Name: "World Time Calculator", Category: CategoryTools, Route: "/world-time-calculator", Description: "Current time around the world", Routed: true},
	{ID: "pregnancy", Name: "Pregnancy Calculator", Category: CategoryHealth, Route: "/pregnancy-calculator", Description: "Due date and trimester", Routed: false},
	{ID: "target-zone", Name: "Target Heart Rate Calculator", Category: CategoryHealth, Route: "/target-zone-calculator", Description: "Karvonen training zones", Routed: false},
}

// All returns a copy of the catalog
func All() []models.Calculator {
	out := make([]models.Calculator, len(calculators))
	copy(out, calculators)
	return out
}

// ByRoute finds a calculator by its route, with or without the leading slash
func ByRoute(route string) (models.Calculator, error) {
	route = "/" + strings.TrimPrefix(strings.TrimSpace(route), "/")
	for _, c := range calculators {
		if c.Route == route {
			return c, nil
		}
	}
	return models.Calculator{}, ErrUnknownCalculator
}

// ByID finds a calculator by its ID
func ByID(id string) (models.Calculator, error) {
	for _, c := range calculators {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Calculator{}, ErrUnknownCalculator
}

// InCategory returns the calculators of one category, in menu order
func InCategory(category string) []models.Calculator {
	var out []models.Calculator
	for _, c := range calculators {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}
