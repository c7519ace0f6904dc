package worldclock

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/Dan9191/calc-service/internal/models"
)

const (
	TimeLayout = "03:04:05 PM"
	DateLayout = "Monday, January 2, 2006"
)

// Board is an ordered, fixed-size selection of zones
type Board struct {
	mu    sync.Mutex
	slots []models.TimezoneSlot
	locs  map[string]*time.Location
}

// NewBoard selects the first n catalog entries. n <= 0 selects DefaultSlots.
func NewBoard(n int) *Board {
	if n <= 0 {
		n = DefaultSlots
	}
	if n > len(Catalog) {
		n = len(Catalog)
	}
	slots := make([]models.TimezoneSlot, n)
	copy(slots, Catalog[:n])
	return &Board{slots: slots, locs: make(map[string]*time.Location)}
}

// Select reassigns slot index to the catalog entry for city
func (b *Board) Select(index int, city string) error {
	slot, err := Lookup(city)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if index < 0 || index >= len(b.slots) {
		return fmt.Errorf("slot %d out of range [0,%d)", index, len(b.slots))
	}
	b.slots[index] = slot
	return nil
}

// Slots returns a copy of the current selection
func (b *Board) Slots() []models.TimezoneSlot {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.TimezoneSlot, len(b.slots))
	copy(out, b.slots)
	return out
}

// Readings formats now in every selected zone
func (b *Board) Readings(now time.Time) ([]models.ClockReading, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.ClockReading, 0, len(b.slots))
	for _, s := range b.slots {
		loc, err := b.location(s.Zone)
		if err != nil {
			return nil, err
		}
		local := now.In(loc)
		out = append(out, models.ClockReading{
			Slot: s,
			Time: local.Format(TimeLayout),
			Date: local.Format(DateLayout),
		})
	}
	return out, nil
}

// HourDifference returns the absolute difference, in hours, between the
// UTC offsets of the first two slots at instant now
func (b *Board) HourDifference(now time.Time) (float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.slots) < 2 {
		return 0, fmt.Errorf("need two slots, have %d", len(b.slots))
	}
	a, err := b.location(b.slots[0].Zone)
	if err != nil {
		return 0, err
	}
	c, err := b.location(b.slots[1].Zone)
	if err != nil {
		return 0, err
	}
	_, offA := now.In(a).Zone()
	_, offC := now.In(c).Zone()
	return math.Abs(float64(offA-offC)) / 3600, nil
}

// location caches time.LoadLocation; callers hold b.mu
func (b *Board) location(zone string) (*time.Location, error) {
	if loc, ok := b.locs[zone]; ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("failed to load zone %s: %w", zone, err)
	}
	b.locs[zone] = loc
	return loc, nil
}
