package finance

import (
	"github.com/Dan9191/calc-service/internal/engine/numeric"
	"github.com/Dan9191/calc-service/internal/models"
)

// ParseLoanTerms reads the EMI form fields
func ParseLoanTerms(principal, annualRate, termMonths string) (models.LoanTerms, bool) {
	p, ok1 := numeric.Ready(principal)
	r, ok2 := numeric.Ready(annualRate)
	n, ok3 := numeric.Ready(termMonths)
	if !ok1 || !ok2 || !ok3 {
		return models.LoanTerms{}, false
	}
	return models.LoanTerms{Principal: p, AnnualRatePercent: r, TermMonths: n}, true
}

// ParseInterestTerms reads the interest form fields
func ParseInterestTerms(principal, rate, years string) (models.InterestTerms, bool) {
	p, ok1 := numeric.Ready(principal)
	r, ok2 := numeric.Ready(rate)
	t, ok3 := numeric.Ready(years)
	if !ok1 || !ok2 || !ok3 {
		return models.InterestTerms{}, false
	}
	return models.InterestTerms{Principal: p, RatePercent: r, PeriodYears: t}, true
}

// ParseInvestmentPlan reads the investment form fields. Missing amounts and
// a missing rate count as zero; the duration must be provided.
func ParseInvestmentPlan(initial, monthly, annualReturn, years string) (models.InvestmentPlan, bool) {
	y, ok := numeric.Ready(years)
	if !ok {
		return models.InvestmentPlan{}, false
	}
	return models.InvestmentPlan{
		Initial:             numeric.OrZero(initial),
		MonthlyContribution: numeric.OrZero(monthly),
		AnnualReturnPercent: numeric.OrZero(annualReturn),
		Years:               y,
	}, true
}

// ParseFuelTrip reads the fuel cost form fields
func ParseFuelTrip(distance, price, mileage string) (models.FuelTrip, bool) {
	d, ok1 := numeric.Ready(distance)
	p, ok2 := numeric.Ready(price)
	m, ok3 := numeric.Ready(mileage)
	if !ok1 || !ok2 || !ok3 {
		return models.FuelTrip{}, false
	}
	return models.FuelTrip{Distance: d, FuelPrice: p, Mileage: m}, true
}
