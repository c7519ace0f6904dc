package finance

import (
	"math"
	"testing"

	"github.com/Dan9191/calc-service/internal/models"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestEMI(t *testing.T) {
	terms, ok := ParseLoanTerms("100000", "10", "12")
	if !ok {
		t.Fatal("expected terms to be ready")
	}
	if !near(MonthlyRate(terms.AnnualRatePercent), 0.0083333, 1e-7) {
		t.Errorf("unexpected monthly rate %v", MonthlyRate(terms.AnnualRatePercent))
	}
	result, ok := EMI(terms)
	if !ok {
		t.Fatal("expected a result")
	}
	if !near(result.MonthlyPayment, 8791.59, 0.01) {
		t.Errorf("expected emi ≈ 8791.59, got %.2f", result.MonthlyPayment)
	}
	if !near(result.TotalPaid, result.MonthlyPayment*12, 0.1) {
		t.Errorf("total %.2f does not match emi×12", result.TotalPaid)
	}
	if !near(result.TotalInterest, result.TotalPaid-100000, 0.01) {
		t.Errorf("interest %.2f != total − principal", result.TotalInterest)
	}
}

func TestEMI_NotReady(t *testing.T) {
	cases := [][3]string{
		{"", "10", "12"},
		{"100000", "0", "12"},
		{"100000", "10", "abc"},
	}
	for _, c := range cases {
		if _, ok := ParseLoanTerms(c[0], c[1], c[2]); ok {
			t.Errorf("ParseLoanTerms(%q) should not be ready", c)
		}
	}
	if _, ok := EMI(models.LoanTerms{Principal: 1000, TermMonths: 12}); ok {
		t.Error("expected zero rate to withhold the result")
	}

	negative := [][3]string{
		{"100000", "10", "-12"},
		{"-100000", "10", "12"},
		{"100000", "-10", "12"},
	}
	for _, c := range negative {
		terms, ok := ParseLoanTerms(c[0], c[1], c[2])
		if !ok {
			t.Fatalf("ParseLoanTerms(%q) should parse", c)
		}
		if res, ok := EMI(terms); ok {
			t.Errorf("EMI(%q) = %+v, want no result", c, res)
		}
	}
}

func TestSimpleInterest(t *testing.T) {
	terms, _ := ParseInterestTerms("1000", "5", "2")
	got, ok := SimpleInterest(terms)
	if !ok {
		t.Fatal("expected a result")
	}
	if got.Interest != 100 || got.TotalAmount != 1100 {
		t.Errorf("got %+v", got)
	}
}

func TestCompoundInterest(t *testing.T) {
	terms, _ := ParseInterestTerms("1000", "10", "2")
	got, ok := CompoundInterest(terms)
	if !ok {
		t.Fatal("expected a result")
	}
	if got.Interest != 210 || got.TotalAmount != 1210 {
		t.Errorf("got %+v", got)
	}
}

func TestInterestTotalUsesRoundedInterest(t *testing.T) {
	// 2.004·0.2·1/100 = 0.004008 rounds to 0.00, so the total stays 2.00
	// instead of 2.01 from the unrounded sum.
	got, ok := SimpleInterest(models.InterestTerms{Principal: 2.004, RatePercent: 0.2, PeriodYears: 1})
	if !ok {
		t.Fatal("expected a result")
	}
	if got.Interest != 0 || got.TotalAmount != 2 {
		t.Errorf("got %+v", got)
	}
}

func TestInvestment(t *testing.T) {
	plan, ok := ParseInvestmentPlan("1000", "100", "12", "1")
	if !ok {
		t.Fatal("expected plan to be ready")
	}
	got, ok := Investment(plan)
	if !ok {
		t.Fatal("expected a result")
	}
	// 1000·1.01^12 + 100·(1.01^12 − 1)/0.01
	want := 1000*math.Pow(1.01, 12) + 100*(math.Pow(1.01, 12)-1)/0.01
	if !near(got.FutureValue, want, 0.01) {
		t.Errorf("future value %.2f, want %.2f", got.FutureValue, want)
	}
	if got.TotalContributed != 2200 {
		t.Errorf("contributed %.2f", got.TotalContributed)
	}
	if !near(got.TotalReturn, got.FutureValue-2200, 0.01) {
		t.Errorf("return %.2f", got.TotalReturn)
	}
}

func TestInvestment_ZeroRate(t *testing.T) {
	for _, rate := range []string{"0", ""} {
		plan, ok := ParseInvestmentPlan("500", "50", rate, "2")
		if !ok {
			t.Fatal("expected plan to be ready")
		}
		got, ok := Investment(plan)
		if !ok {
			t.Fatal("expected a result")
		}
		if got.FutureValue != 500+50*24 {
			t.Errorf("rate %q: future value %.2f", rate, got.FutureValue)
		}
		if got.TotalReturn != 0 {
			t.Errorf("rate %q: expected no return, got %.2f", rate, got.TotalReturn)
		}
	}
}

func TestInvestment_NoDuration(t *testing.T) {
	if _, ok := ParseInvestmentPlan("500", "50", "5", ""); ok {
		t.Error("expected missing years to withhold the plan")
	}
	if _, ok := Investment(models.InvestmentPlan{Initial: 1, Years: -1}); ok {
		t.Error("expected negative duration to withhold the result")
	}
}

func TestFuelCost(t *testing.T) {
	trip, ok := ParseFuelTrip("300", "1.5", "30")
	if !ok {
		t.Fatal("expected trip to be ready")
	}
	got, _ := FuelCost(trip)
	if got.FuelNeeded != 10 || got.TotalCost != 15 {
		t.Errorf("got %+v", got)
	}
	if _, ok := ParseFuelTrip("300", "", "30"); ok {
		t.Error("expected missing price to withhold the trip")
	}
}
