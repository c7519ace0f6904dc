package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Dan9191/calc-service/internal/models"

	_ "time/tzdata"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFinanceCommands(t *testing.T) {
	out, err := run(t, "emi", "--principal", "100000", "--rate", "10", "--tenure", "12")
	if err != nil || !strings.Contains(out, "Monthly EMI:     8791.59") {
		t.Errorf("emi: %v\n%s", err, out)
	}

	out, _ = run(t, "emi", "--principal", "0", "--rate", "10", "--tenure", "12")
	if !strings.Contains(out, "Enter all values") {
		t.Errorf("emi not ready: %s", out)
	}

	out, _ = run(t, "interest", "--principal", "1000", "--rate", "10", "--years", "2", "--compound", "--json")
	var ir models.InterestResult
	if err := json.Unmarshal([]byte(out), &ir); err != nil || ir.TotalAmount != 1210 {
		t.Errorf("interest: %v %s", err, out)
	}

	out, _ = run(t, "investment", "--initial", "500", "--monthly", "100", "--years", "1")
	if !strings.Contains(out, "Future value:       1700.00") {
		t.Errorf("investment: %s", out)
	}

	out, _ = run(t, "fuel", "--distance", "150", "--price", "1.5", "--mileage", "15")
	if !strings.Contains(out, "Total cost:   15.00") {
		t.Errorf("fuel: %s", out)
	}
}

func TestDateCommands(t *testing.T) {
	defer func(f func() time.Time) { now = f }(now)
	now = func() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) }

	out, _ := run(t, "age", "2000-05-20")
	if !strings.Contains(out, "23 years, 9 months, 24 days") {
		t.Errorf("age: %s", out)
	}

	out, _ = run(t, "period", "2024-01-01")
	if !strings.Contains(out, "Next period:     Jan 29, 2024 - Feb 2, 2024") || !strings.Contains(out, "Ovulation:       Jan 15, 2024") {
		t.Errorf("period: %s", out)
	}

	out, _ = run(t, "pregnancy", "2024-01-01")
	if !strings.Contains(out, "Oct 7, 2024") || !strings.Contains(out, "First Trimester") {
		t.Errorf("pregnancy: %s", out)
	}

	out, _ = run(t, "heart", "--age", "30", "--resting", "60")
	if !strings.Contains(out, "Max HR: 190 bpm, reserve: 130 bpm") {
		t.Errorf("zones: %s", out)
	}
}

func TestToolCommands(t *testing.T) {
	out, err := run(t, "simple", "12", "+", "3", "=")
	if err != nil || strings.TrimSpace(out) != "15" {
		t.Errorf("simple: %v %q", err, out)
	}
	if _, err := run(t, "simple", "5", "?!"); err == nil {
		t.Error("simple: expected unknown key error")
	}

	out, _ = run(t, "hex", "--from", "dec", "255")
	if strings.TrimSpace(out) != "FF (HEX)" {
		t.Errorf("hex: %q", out)
	}
	out, _ = run(t, "hex", "ff")
	if strings.TrimSpace(out) != "255 (DEC)" {
		t.Errorf("hex back: %q", out)
	}
	if _, err := run(t, "hex", "--from", "dec", "1F"); err == nil {
		t.Error("hex: expected digit error in DEC mode")
	}
	if _, err := run(t, "hex", "--from", "oct", "17"); err == nil {
		t.Error("hex: expected unknown mode error")
	}

	out, _ = run(t, "gpa", "A:3", "B:3")
	if !strings.Contains(out, "GPA: 3.50 (6 credits)") {
		t.Errorf("gpa: %s", out)
	}

	out, _ = run(t, "calculators", "--category", "finance")
	if strings.Count(out, "\n") != 3 {
		t.Errorf("calculators: %s", out)
	}
}

func TestClockOnce(t *testing.T) {
	defer func(f func() time.Time) { now = f }(now)
	now = func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }

	out, err := run(t, "clock", "--once", "--city", "New York", "--city", "London", "--slots", "2")
	if err != nil {
		t.Fatalf("clock: %v", err)
	}
	if !strings.Contains(out, "07:00:00 AM") || !strings.Contains(out, "New York is 5 hours apart from London") {
		t.Errorf("clock: %s", out)
	}

	if _, err := run(t, "clock", "--once", "--city", "Atlantis"); err == nil {
		t.Error("expected unknown city error")
	}
}

func TestNotesAndFavorites(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "--home", dir, "--json", "notes", "add", "emi", "home", "loan")
	if err != nil {
		t.Fatalf("add: %v %s", err, out)
	}
	var note models.Note
	if err := json.Unmarshal([]byte(out), &note); err != nil || note.Text != "home loan" {
		t.Fatalf("note: %v %s", err, out)
	}

	out, _ = run(t, "--home", dir, "notes", "list", "emi")
	if !strings.Contains(out, "home loan") {
		t.Errorf("list: %s", out)
	}
	if _, err := run(t, "--home", dir, "notes", "rm", "emi", note.ID); err != nil {
		t.Errorf("rm: %v", err)
	}
	out, _ = run(t, "--home", dir, "notes", "list", "emi")
	if !strings.Contains(out, "No notes yet.") {
		t.Errorf("list after rm: %s", out)
	}

	out, _ = run(t, "--home", dir, "fav", "toggle", "/gpa-calculator")
	if !strings.Contains(out, "added to favorites") {
		t.Errorf("toggle: %s", out)
	}
	out, _ = run(t, "--home", dir, "favorites")
	if strings.TrimSpace(out) != "/gpa-calculator" {
		t.Errorf("favorites: %q", out)
	}
}
