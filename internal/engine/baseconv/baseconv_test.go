package baseconv

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"testing"
)

func TestConvertHexToDec(t *testing.T) {
	c := New(Hex)
	for _, d := range "FF" {
		if err := c.Input(d); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Convert(); err != nil {
		t.Fatal(err)
	}
	if c.Digits() != "255" || c.Mode() != Dec {
		t.Errorf("got %s in %s", c.Digits(), c.Mode())
	}
	if err := c.Convert(); err != nil {
		t.Fatal(err)
	}
	if c.Digits() != "FF" || c.Mode() != Hex {
		t.Errorf("got %s in %s", c.Digits(), c.Mode())
	}
}

func TestHexDigitsGatedByMode(t *testing.T) {
	c := New(Dec)
	if err := c.Input('A'); !errors.Is(err, ErrDigitNotAllowed) {
		t.Errorf("expected ErrDigitNotAllowed, got %v", err)
	}
	if c.Digits() != "0" {
		t.Errorf("buffer changed to %s", c.Digits())
	}
	if err := c.Input('7'); err != nil {
		t.Fatal(err)
	}
	if c.Digits() != "7" {
		t.Errorf("expected leading zero replaced, got %s", c.Digits())
	}
	h := New(Hex)
	if err := h.Input('c'); err != nil || h.Digits() != "C" {
		t.Errorf("lower-case hex digit: %s, %v", h.Digits(), err)
	}
	if err := h.Input('G'); !errors.Is(err, ErrDigitNotAllowed) {
		t.Errorf("expected G to be rejected, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 9, 10, 15, 16, 255, 4095, 1<<32 - 1}
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		values = append(values, uint64(r.Uint32()))
	}
	for _, n := range values {
		c := New(Dec)
		if err := c.Load(strconv.FormatUint(n, 10), Dec); err != nil {
			t.Fatalf("load %d: %v", n, err)
		}
		if err := c.Convert(); err != nil {
			t.Fatal(err)
		}
		if c.Digits() != upper(strconv.FormatUint(n, 16)) {
			t.Fatalf("%d: hex %s", n, c.Digits())
		}
		if err := c.Convert(); err != nil {
			t.Fatal(err)
		}
		if c.Digits() != strconv.FormatUint(n, 10) {
			t.Fatalf("round trip of %d gave %s", n, c.Digits())
		}
	}
}

func upper(s string) string {
	b := []byte(s)
	for i, ch := range b {
		if ch >= 'a' && ch <= 'f' {
			b[i] = ch - 'a' + 'A'
		}
	}
	return string(b)
}

func TestClearAndBackspace(t *testing.T) {
	c := New(Hex)
	_ = c.Load("1A2", Hex)
	c.Backspace()
	if c.Digits() != "1A" {
		t.Errorf("got %s", c.Digits())
	}
	c.Clear()
	if c.Digits() != "0" || c.Mode() != Hex {
		t.Errorf("got %s in %s", c.Digits(), c.Mode())
	}
	c.Backspace()
	if c.Digits() != "0" {
		t.Errorf("got %s", c.Digits())
	}
}

func TestLoadRejectsForeignDigits(t *testing.T) {
	c := New(Hex)
	if err := c.Load("12F", Dec); !errors.Is(err, ErrDigitNotAllowed) {
		t.Errorf("expected ErrDigitNotAllowed, got %v", err)
	}
	if c.Digits() != "0" || c.Mode() != Hex {
		t.Error("failed load must leave the converter untouched")
	}
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	c := New(Hex)
	if err := c.Load("17", Mode("OCT")); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
	if c.Digits() != "0" || c.Mode() != Hex {
		t.Error("failed load must leave the converter untouched")
	}
}
