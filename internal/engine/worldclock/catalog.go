// Package worldclock formats the current time in a handful of selected zones.
//
// Zone rules come from the host time zone database via time.LoadLocation;
// nothing here computes offsets or daylight saving itself.
package worldclock

import (
	"errors"
	"strings"

	"github.com/Dan9191/calc-service/internal/models"
)

// DefaultSlots is the number of zones shown side by side
const DefaultSlots = 3

// ErrUnknownCity is returned when a city is not in the catalog
var ErrUnknownCity = errors.New("city not in timezone catalog")

// Catalog lists the selectable zones in display order
var Catalog = []models.TimezoneSlot{
	{City: "New York", Country: "USA", Zone: "America/New_York"},
	{City: "London", Country: "UK", Zone: "Europe/London"},
	{City: "Tokyo", Country: "Japan", Zone: "Asia/Tokyo"},
	{City: "Dubai", Country: "UAE", Zone: "Asia/Dubai"},
	{City: "Sydney", Country: "Australia", Zone: "Australia/Sydney"},
	{City: "Paris", Country: "France", Zone: "Europe/Paris"},
	{City: "Mumbai", Country: "India", Zone: "Asia/Kolkata"},
	{City: "Singapore", Country: "Singapore", Zone: "Asia/Singapore"},
	{City: "Los Angeles", Country: "USA", Zone: "America/Los_Angeles"},
	{City: "Toronto", Country: "Canada", Zone: "America/Toronto"},
	{City: "Berlin", Country: "Germany", Zone: "Europe/Berlin"},
	{City: "Hong Kong", Country: "China", Zone: "Asia/Hong_Kong"},
}

// Lookup finds a catalog entry by city name (case-insensitive) or zone identifier
func Lookup(key string) (models.TimezoneSlot, error) {
	key = strings.TrimSpace(key)
	for _, s := range Catalog {
		if strings.EqualFold(s.City, key) || s.Zone == key {
			return s, nil
		}
	}
	return models.TimezoneSlot{}, ErrUnknownCity
}
