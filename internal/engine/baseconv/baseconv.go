// Package baseconv implements the hexadecimal/decimal converter keypad.
package baseconv

import (
	"errors"
	"math/big"
	"strings"
)

// Mode is the radix the digit buffer is currently written in
type Mode string

const (
	Hex Mode = "HEX"
	Dec Mode = "DEC"
)

// Radix returns the numeric base of the mode
func (m Mode) Radix() int {
	if m == Dec {
		return 10
	}
	return 16
}

// Other returns the mode Convert switches to
func (m Mode) Other() Mode {
	if m == Dec {
		return Hex
	}
	return Dec
}

var (
	// ErrDigitNotAllowed is returned for a digit outside the current mode's radix
	ErrDigitNotAllowed = errors.New("digit not available in current mode")
	// ErrInvalidBuffer is returned when the buffer does not parse under the current radix
	ErrInvalidBuffer = errors.New("buffer is not a number in current mode")
	// ErrUnknownMode is returned for a mode other than HEX or DEC
	ErrUnknownMode = errors.New("mode must be HEX or DEC")
)

// Converter holds one digit buffer shared by both modes
type Converter struct {
	digits string
	mode   Mode
}

// New returns a converter showing "0" in the given mode
func New(mode Mode) *Converter {
	if mode != Dec {
		mode = Hex
	}
	return &Converter{digits: "0", mode: mode}
}

// Digits returns the buffer
func (c *Converter) Digits() string {
	return c.digits
}

// Mode returns the current mode
func (c *Converter) Mode() Mode {
	return c.mode
}

// Input appends a digit. A–F are accepted only in Hex mode.
func (c *Converter) Input(d rune) error {
	d = toUpper(d)
	if !validDigit(d, c.mode) {
		return ErrDigitNotAllowed
	}
	if c.digits == "0" {
		c.digits = string(d)
	} else {
		c.digits += string(d)
	}
	return nil
}

// Clear resets the buffer to "0", keeping the mode
func (c *Converter) Clear() {
	c.digits = "0"
}

// Backspace removes the last digit
func (c *Converter) Backspace() {
	if len(c.digits) <= 1 {
		c.digits = "0"
		return
	}
	c.digits = c.digits[:len(c.digits)-1]
}

// Convert reparses the buffer under the current radix, rewrites it in the
// other radix and flips the mode
func (c *Converter) Convert() error {
	n, ok := new(big.Int).SetString(c.digits, c.mode.Radix())
	if !ok {
		return ErrInvalidBuffer
	}
	next := c.mode.Other()
	c.digits = strings.ToUpper(n.Text(next.Radix()))
	c.mode = next
	return nil
}

// Load replaces the buffer after checking every digit against mode
func (c *Converter) Load(digits string, mode Mode) error {
	if mode != Dec && mode != Hex {
		return ErrUnknownMode
	}
	digits = strings.TrimSpace(digits)
	if digits == "" {
		digits = "0"
	}
	next := New(mode)
	for _, d := range digits {
		if err := next.Input(d); err != nil {
			return err
		}
	}
	*c = *next
	return nil
}

func validDigit(d rune, mode Mode) bool {
	switch {
	case d >= '0' && d <= '9':
		return true
	case d >= 'A' && d <= 'F':
		return mode == Hex
	}
	return false
}

func toUpper(d rune) rune {
	if d >= 'a' && d <= 'f' {
		return d - 'a' + 'A'
	}
	return d
}
