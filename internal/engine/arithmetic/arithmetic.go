// Package arithmetic implements the four-function calculator keypad.
//
// Operator presses evaluate eagerly: when an operand and operator are already
// pending, pressing another operator folds the pair into a new pending operand,
// so "5 + 3 + 2 =" yields 10.
package arithmetic

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/Dan9191/calc-service/internal/engine/numeric"
)

// ErrUnknownKey is returned by Press for keys the keypad does not have
var ErrUnknownKey = errors.New("unknown key")

// Operator is a binary operator key
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "×"
	Divide   Operator = "÷"
)

// State of the keypad
type State int

const (
	// Entering: typing an operand with no operator pending
	Entering State = iota
	// OperatorPending: an operator was pressed, the next digit starts a new operand
	OperatorPending
	// Chained: typing the right-hand operand of a pending operation
	Chained
)

func (s State) String() string {
	switch s {
	case Entering:
		return "entering"
	case OperatorPending:
		return "operator_pending"
	case Chained:
		return "chained"
	}
	return "unknown"
}

// Calculator holds the state of one keypad. The zero value is not ready; use New.
type Calculator struct {
	current    string
	pending    float64
	hasPending bool
	operator   Operator
	state      State
	// fresh marks current as a result; the next digit replaces it
	fresh bool
}

// New returns a cleared calculator
func New() *Calculator {
	c := &Calculator{}
	c.Clear()
	return c
}

// Clear resets every field to the initial state
func (c *Calculator) Clear() {
	c.current = "0"
	c.pending = 0
	c.hasPending = false
	c.operator = ""
	c.state = Entering
	c.fresh = false
}

// Digit appends a decimal digit to the current operand
func (c *Calculator) Digit(d rune) error {
	if d < '0' || d > '9' {
		return ErrUnknownKey
	}
	switch {
	case c.state == OperatorPending:
		c.current = string(d)
		c.state = Chained
	case c.fresh:
		c.current = string(d)
		c.fresh = false
	case c.current == "0":
		c.current = string(d)
	default:
		c.current += string(d)
	}
	return nil
}

// Decimal adds a decimal point unless the operand already has one
func (c *Calculator) Decimal() {
	switch {
	case c.state == OperatorPending:
		c.current = "0."
		c.state = Chained
	case c.fresh:
		c.current = "0."
		c.fresh = false
	case !strings.Contains(c.current, "."):
		c.current += "."
	}
}

// Operator records op. A pending operation with a typed right-hand operand
// is evaluated first and its result becomes the new pending operand.
func (c *Calculator) Operator(op Operator) {
	switch {
	case !c.hasPending:
		c.pending = c.value()
		c.hasPending = true
	case c.state == Chained:
		result := apply(c.pending, c.value(), c.operator)
		c.pending = result
		c.current = numeric.Format(result)
	}
	// OperatorPending with nothing typed yet only swaps the operator.
	c.operator = op
	c.state = OperatorPending
	c.fresh = false
}

// Equals evaluates the pending operation and leaves the result as the
// current operand, ready to start a new chain.
func (c *Calculator) Equals() {
	if !c.hasPending || c.operator == "" {
		return
	}
	result := apply(c.pending, c.value(), c.operator)
	c.current = numeric.Format(result)
	c.pending = 0
	c.hasPending = false
	c.operator = ""
	c.state = Entering
	c.fresh = true
}

// Backspace removes the last character of the operand being typed.
// Results that have not been edited yet are left alone.
func (c *Calculator) Backspace() {
	if c.fresh || c.state == OperatorPending {
		return
	}
	r := []rune(c.current)
	c.current = string(r[:len(r)-1])
	if c.current == "" || c.current == "-" {
		c.current = "0"
	}
}

// Percent divides the current operand by 100 in place
func (c *Calculator) Percent() {
	c.current = numeric.Format(c.value() / 100)
	if c.state == OperatorPending {
		c.state = Chained
	}
}

// Press dispatches a single keypad key
func (c *Calculator) Press(key string) error {
	switch strings.TrimSpace(key) {
	case ".", ",":
		c.Decimal()
	case "+":
		c.Operator(Add)
	case "-", "−":
		c.Operator(Subtract)
	case "×", "*", "x":
		c.Operator(Multiply)
	case "÷", "/":
		c.Operator(Divide)
	case "%":
		c.Percent()
	case "=":
		c.Equals()
	case "C", "c", "AC":
		c.Clear()
	case "⌫", "backspace", "del":
		c.Backspace()
	default:
		r := []rune(strings.TrimSpace(key))
		if len(r) != 1 {
			return ErrUnknownKey
		}
		return c.Digit(r[0])
	}
	return nil
}

// Display returns the operand shown on the screen
func (c *Calculator) Display() string {
	return c.current
}

// Expression returns the pending operation as text, e.g. "5 + 3"
func (c *Calculator) Expression() string {
	if c.operator == "" {
		return c.current
	}
	expr := numeric.Format(c.pending) + " " + string(c.operator)
	if c.state == Chained {
		expr += " " + c.current
	}
	return expr
}

// State returns the keypad state
func (c *Calculator) State() State {
	return c.state
}

// Preview returns what "=" would produce now without changing the state
func (c *Calculator) Preview() (float64, bool) {
	if !c.hasPending || c.state != Chained {
		return 0, false
	}
	return apply(c.pending, c.value(), c.operator), true
}

// Value returns the current operand as a number
func (c *Calculator) Value() float64 {
	return c.value()
}

func (c *Calculator) value() float64 {
	v, err := strconv.ParseFloat(c.current, 64)
	if err != nil {
		return 0
	}
	return v
}

// apply evaluates a op b. Division by zero, and any other operation that
// would not produce a finite number, returns the dividend a unchanged.
func apply(a, b float64, op Operator) float64 {
	var r float64
	switch op {
	case Add:
		r = a + b
	case Subtract:
		r = a - b
	case Multiply:
		r = a * b
	case Divide:
		if b == 0 {
			return a
		}
		r = a / b
	default:
		return b
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return a
	}
	return r
}
