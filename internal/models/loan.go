package models

// LoanTerms represents the inputs of an EMI calculation
type LoanTerms struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermMonths        float64 `json:"term_months"`
}

// LoanResult represents the amortized repayment of a loan
type LoanResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPaid      float64 `json:"total_paid"`
	TotalInterest  float64 `json:"total_interest"`
}

// InterestTerms represents the inputs shared by simple and compound interest
type InterestTerms struct {
	Principal   float64 `json:"principal"`
	RatePercent float64 `json:"rate_percent"`
	PeriodYears float64 `json:"period_years"`
}

// InterestResult represents the accrued interest and the final amount
type InterestResult struct {
	Interest    float64 `json:"interest"`
	TotalAmount float64 `json:"total_amount"`
}

// InvestmentPlan represents a lump sum plus monthly contributions
type InvestmentPlan struct {
	Initial             float64 `json:"initial"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	AnnualReturnPercent float64 `json:"annual_return_percent"`
	Years               float64 `json:"years"`
}

// InvestmentResult represents the projected value of an investment plan
type InvestmentResult struct {
	FutureValue      float64 `json:"future_value"`
	TotalContributed float64 `json:"total_contributed"`
	TotalReturn      float64 `json:"total_return"`
}

// FuelTrip represents the inputs of a fuel cost estimate
type FuelTrip struct {
	Distance  float64 `json:"distance"`
	FuelPrice float64 `json:"fuel_price"`
	Mileage   float64 `json:"mileage"` // distance per unit of fuel
}

// FuelResult represents the fuel needed for a trip and its cost
type FuelResult struct {
	FuelNeeded float64 `json:"fuel_needed"`
	TotalCost  float64 `json:"total_cost"`
}
