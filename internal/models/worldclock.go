package models

// TimezoneSlot represents a selectable city and its IANA zone
type TimezoneSlot struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Zone    string `json:"zone"`
}

// ClockReading represents the formatted wall clock of one slot
type ClockReading struct {
	Slot TimezoneSlot `json:"slot"`
	Time string       `json:"time"`
	Date string       `json:"date"`
}
