// Package finance holds the closed-form money formulas behind the EMI,
// interest, investment and fuel calculators.
//
// Results are rounded to two decimals on the way out; the formulas themselves
// run at full float64 precision.
package finance

import (
	"math"

	"github.com/Dan9191/calc-service/internal/engine/numeric"
	"github.com/Dan9191/calc-service/internal/models"
)

// MonthlyRate converts an annual percentage rate to a monthly fraction
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 12 / 100
}

// EMI computes the equated monthly installment of a loan.
// It reports false unless principal, rate and term are all positive.
func EMI(t models.LoanTerms) (models.LoanResult, bool) {
	p, r, n := t.Principal, MonthlyRate(t.AnnualRatePercent), t.TermMonths
	if p <= 0 || r <= 0 || n <= 0 {
		return models.LoanResult{}, false
	}
	growth := math.Pow(1+r, n)
	emi := p * r * growth / (growth - 1)
	if math.IsNaN(emi) || math.IsInf(emi, 0) {
		return models.LoanResult{}, false
	}
	total := emi * n
	return models.LoanResult{
		MonthlyPayment: numeric.Round2(emi),
		TotalPaid:      numeric.Round2(total),
		TotalInterest:  numeric.Round2(total - p),
	}, true
}

// SimpleInterest computes P·r·t/100. The total adds the rounded interest.
func SimpleInterest(t models.InterestTerms) (models.InterestResult, bool) {
	if !interestReady(t) {
		return models.InterestResult{}, false
	}
	si := numeric.Round2(t.Principal * t.RatePercent * t.PeriodYears / 100)
	return models.InterestResult{
		Interest:    si,
		TotalAmount: numeric.Round2(t.Principal + si),
	}, true
}

// CompoundInterest computes P·(1+r/100)^t − P with yearly compounding.
// The total adds the rounded interest.
func CompoundInterest(t models.InterestTerms) (models.InterestResult, bool) {
	if !interestReady(t) {
		return models.InterestResult{}, false
	}
	ci := t.Principal*math.Pow(1+t.RatePercent/100, t.PeriodYears) - t.Principal
	if math.IsNaN(ci) || math.IsInf(ci, 0) {
		return models.InterestResult{}, false
	}
	ci = numeric.Round2(ci)
	return models.InterestResult{
		Interest:    ci,
		TotalAmount: numeric.Round2(t.Principal + ci),
	}, true
}

func interestReady(t models.InterestTerms) bool {
	return t.Principal != 0 && t.RatePercent != 0 && t.PeriodYears != 0
}

// Investment projects the future value of an initial sum plus monthly
// contributions compounded monthly. Only a positive duration is required;
// a zero return rate degrades the annuity term to monthly·months.
func Investment(p models.InvestmentPlan) (models.InvestmentResult, bool) {
	months := p.Years * 12
	if !(months > 0) {
		return models.InvestmentResult{}, false
	}
	r := MonthlyRate(p.AnnualReturnPercent)

	var fv float64
	if r == 0 {
		fv = p.Initial + p.MonthlyContribution*months
	} else {
		growth := math.Pow(1+r, months)
		fv = p.Initial*growth + p.MonthlyContribution*(growth-1)/r
	}
	if math.IsNaN(fv) || math.IsInf(fv, 0) {
		return models.InvestmentResult{}, false
	}
	contributed := p.Initial + p.MonthlyContribution*months
	return models.InvestmentResult{
		FutureValue:      numeric.Round2(fv),
		TotalContributed: numeric.Round2(contributed),
		TotalReturn:      numeric.Round2(fv - contributed),
	}, true
}

// FuelCost estimates the fuel needed for a trip and what it costs
func FuelCost(t models.FuelTrip) (models.FuelResult, bool) {
	if t.Distance == 0 || t.FuelPrice == 0 || t.Mileage == 0 {
		return models.FuelResult{}, false
	}
	fuel := t.Distance / t.Mileage
	return models.FuelResult{
		FuelNeeded: numeric.Round2(fuel),
		TotalCost:  numeric.Round2(fuel * t.FuelPrice),
	}, true
}
