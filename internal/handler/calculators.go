package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Dan9191/calc-service/internal/catalog"
	"github.com/Dan9191/calc-service/internal/engine/arithmetic"
	"github.com/Dan9191/calc-service/internal/engine/baseconv"
	"github.com/Dan9191/calc-service/internal/engine/datecalc"
	"github.com/Dan9191/calc-service/internal/engine/finance"
	"github.com/Dan9191/calc-service/internal/engine/gpa"
	"github.com/Dan9191/calc-service/internal/engine/numeric"
	"github.com/Dan9191/calc-service/internal/models"
)

// Field is a raw form value. It accepts JSON strings and numbers alike so
// that "12.5" and 12.5 go through the same parsing.
type Field string

func (f *Field) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*f = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Field(s)
	default:
		*f = Field(b)
	}
	return nil
}

func (f Field) String() string { return string(f) }

type emiRequest struct {
	Principal Field `json:"principal"`
	Rate      Field `json:"rate"`
	Tenure    Field `json:"tenure"`
}

// EMI handles the loan installment calculator
func (h *Handler) EMI(w http.ResponseWriter, r *http.Request) {
	var req emiRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	terms, ok := finance.ParseLoanTerms(req.Principal.String(), req.Rate.String(), req.Tenure.String())
	var res models.LoanResult
	if ok {
		res, ok = finance.EMI(terms)
	}
	h.writeJSON(w, http.StatusOK, outcome(res, ok))
}

type interestRequest struct {
	Principal Field  `json:"principal"`
	Rate      Field  `json:"rate"`
	Time      Field  `json:"time"`
	Type      string `json:"type"`
}

// Interest handles simple and compound interest
func (h *Handler) Interest(w http.ResponseWriter, r *http.Request) {
	var req interestRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	calc := finance.SimpleInterest
	switch strings.ToLower(req.Type) {
	case "", "simple":
	case "compound":
		calc = finance.CompoundInterest
	default:
		h.writeError(w, http.StatusBadRequest, "type must be simple or compound")
		return
	}
	terms, ok := finance.ParseInterestTerms(req.Principal.String(), req.Rate.String(), req.Time.String())
	var res models.InterestResult
	if ok {
		res, ok = calc(terms)
	}
	h.writeJSON(w, http.StatusOK, outcome(res, ok))
}

type investmentRequest struct {
	Initial Field `json:"initial"`
	Monthly Field `json:"monthly"`
	Rate    Field `json:"rate"`
	Years   Field `json:"years"`
}

// Investment handles the investment return calculator
func (h *Handler) Investment(w http.ResponseWriter, r *http.Request) {
	var req investmentRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	plan, ok := finance.ParseInvestmentPlan(req.Initial.String(), req.Monthly.String(), req.Rate.String(), req.Years.String())
	var res models.InvestmentResult
	if ok {
		res, ok = finance.Investment(plan)
	}
	h.writeJSON(w, http.StatusOK, outcome(res, ok))
}

type fuelRequest struct {
	Distance Field `json:"distance"`
	Price    Field `json:"price"`
	Mileage  Field `json:"mileage"`
}

// Fuel handles the trip fuel cost calculator
func (h *Handler) Fuel(w http.ResponseWriter, r *http.Request) {
	var req fuelRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	trip, ok := finance.ParseFuelTrip(req.Distance.String(), req.Price.String(), req.Mileage.String())
	var res models.FuelResult
	if ok {
		res, ok = finance.FuelCost(trip)
	}
	h.writeJSON(w, http.StatusOK, outcome(res, ok))
}

type periodRequest struct {
	LastPeriod   Field `json:"last_period"`
	CycleLength  Field `json:"cycle_length"`
	PeriodLength Field `json:"period_length"`
}

// Period handles the menstrual cycle projection
func (h *Handler) Period(w http.ResponseWriter, r *http.Request) {
	var req periodRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	in, ok := datecalc.ParseCycleInput(req.LastPeriod.String(), req.CycleLength.String(), req.PeriodLength.String())
	var res models.CycleProjection
	if ok {
		res, ok = datecalc.Cycle(in)
	}
	h.writeJSON(w, http.StatusOK, outcome(res, ok))
}

type ageRequest struct {
	BirthDate Field `json:"birth_date"`
}

// Age handles the age calculator
func (h *Handler) Age(w http.ResponseWriter, r *http.Request) {
	var req ageRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	birth, ok := numeric.ParseDate(req.BirthDate.String())
	var res models.AgeResult
	if ok {
		res, ok = datecalc.Age(birth, h.now())
	}
	h.writeJSON(w, http.StatusOK, outcome(res, ok))
}

type pregnancyRequest struct {
	LMP Field `json:"lmp"`
}

// Pregnancy handles the due date calculator
func (h *Handler) Pregnancy(w http.ResponseWriter, r *http.Request) {
	var req pregnancyRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	lmp, ok := numeric.ParseDate(req.LMP.String())
	var res models.PregnancyResult
	if ok {
		res, ok = datecalc.Pregnancy(lmp, h.now())
	}
	h.writeJSON(w, http.StatusOK, outcome(res, ok))
}

type heartRateRequest struct {
	Age       Field `json:"age"`
	RestingHR Field `json:"resting_hr"`
}

// TargetZone handles the Karvonen heart-rate zones
func (h *Handler) TargetZone(w http.ResponseWriter, r *http.Request) {
	var req heartRateRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	in, ok := datecalc.ParseHeartRateInput(req.Age.String(), req.RestingHR.String())
	var res models.HeartRateZones
	if ok {
		res, ok = datecalc.HeartRateZones(in)
	}
	h.writeJSON(w, http.StatusOK, outcome(res, ok))
}

type gpaRequest struct {
	Courses []struct {
		Grade   string `json:"grade"`
		Credits Field  `json:"credits"`
	} `json:"courses"`
}

// GPA handles the grade point average calculator
func (h *Handler) GPA(w http.ResponseWriter, r *http.Request) {
	var req gpaRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	courses := make([]models.Course, len(req.Courses))
	for i, c := range req.Courses {
		courses[i] = models.Course{Grade: c.Grade, Credits: c.Credits.String()}
	}
	res, ok := gpa.Calculate(courses)
	h.writeJSON(w, http.StatusOK, outcome(res, ok))
}

type hexRequest struct {
	Digits Field  `json:"digits"`
	Mode   string `json:"mode"`
}

type hexResponse struct {
	Digits string        `json:"digits"`
	Mode   baseconv.Mode `json:"mode"`
}

// Hex converts the submitted buffer to the other radix
func (h *Handler) Hex(w http.ResponseWriter, r *http.Request) {
	var req hexRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// the keypad opens in HEX
	mode := baseconv.Mode(strings.ToUpper(req.Mode))
	if mode == "" {
		mode = baseconv.Hex
	}
	c := baseconv.New(mode)
	if err := c.Load(req.Digits.String(), mode); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := c.Convert(); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, hexResponse{Digits: c.Digits(), Mode: c.Mode()})
}

type simpleRequest struct {
	Keys [][]string `json:"keys"`
}

// Simple replays key presses on one keypad per entry of keys
func (h *Handler) Simple(w http.ResponseWriter, r *http.Request) {
	var req simpleRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Keys) == 0 {
		req.Keys = [][]string{nil}
	}

	grid := arithmetic.NewGrid(len(req.Keys))
	for i, keys := range req.Keys {
		c, _ := grid.Cell(i)
		for j, k := range keys {
			if err := c.Press(k); err != nil {
				h.writeError(w, http.StatusBadRequest, fmt.Sprintf("keypad %d key %d (%q): %v", i, j, k, err))
				return
			}
		}
	}
	h.writeJSON(w, http.StatusOK, grid.Snapshots())
}

// Calculators lists the catalog, optionally filtered by ?category=
func (h *Handler) Calculators(w http.ResponseWriter, r *http.Request) {
	if cat := r.URL.Query().Get("category"); cat != "" {
		list := catalog.InCategory(cat)
		if list == nil {
			list = []models.Calculator{}
		}
		h.writeJSON(w, http.StatusOK, list)
		return
	}
	h.writeJSON(w, http.StatusOK, catalog.All())
}

// ReferenceRate returns the central bank key rate for prefilling rate fields
func (h *Handler) ReferenceRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.rates.GetKeyRate(r.Context())
	if err != nil {
		h.log.Errorf("Failed to get key rate: %v", err)
		h.writeError(w, http.StatusBadGateway, "reference rate unavailable")
		return
	}
	h.writeJSON(w, http.StatusOK, rate)
}
