package arithmetic

import (
	"fmt"
)

// Snapshot is the observable state of a keypad
type Snapshot struct {
	Display    string   `json:"display"`
	Expression string   `json:"expression"`
	State      string   `json:"state"`
	Preview    *float64 `json:"preview,omitempty"`
}

// Snapshot captures the current display
func (c *Calculator) Snapshot() Snapshot {
	s := Snapshot{
		Display:    c.Display(),
		Expression: c.Expression(),
		State:      c.state.String(),
	}
	if v, ok := c.Preview(); ok {
		s.Preview = &v
	}
	return s
}

// Replay feeds keys into a new calculator
func Replay(keys []string) (*Calculator, error) {
	c := New()
	for i, k := range keys {
		if err := c.Press(k); err != nil {
			return nil, fmt.Errorf("key %d (%q): %w", i, k, err)
		}
	}
	return c, nil
}

// Grid is a set of independent calculators shown side by side
type Grid struct {
	cells []*Calculator
}

// NewGrid creates n independent calculators
func NewGrid(n int) *Grid {
	g := &Grid{cells: make([]*Calculator, n)}
	for i := range g.cells {
		g.cells[i] = New()
	}
	return g
}

// Len returns the number of calculators in the grid
func (g *Grid) Len() int {
	return len(g.cells)
}

// Cell returns calculator i
func (g *Grid) Cell(i int) (*Calculator, error) {
	if i < 0 || i >= len(g.cells) {
		return nil, fmt.Errorf("grid cell %d out of range [0,%d)", i, len(g.cells))
	}
	return g.cells[i], nil
}

// Snapshots captures every calculator in order
func (g *Grid) Snapshots() []Snapshot {
	out := make([]Snapshot, len(g.cells))
	for i, c := range g.cells {
		out[i] = c.Snapshot()
	}
	return out
}
