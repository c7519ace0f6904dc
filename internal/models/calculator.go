package models

// Calculator represents one entry of the navigation catalog
type Calculator struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Route       string `json:"route"`
	Description string `json:"description"`
	Routed      bool   `json:"routed"`
}

// Note represents a sticky note attached to a calculator
type Note struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Color string `json:"color"`
}

// Course represents one row of the GPA calculator
type Course struct {
	Grade   string `json:"grade"`
	Credits string `json:"credits"`
}

// GPAResult represents a credit-weighted grade point average
type GPAResult struct {
	GPA          float64 `json:"gpa"`
	TotalCredits float64 `json:"total_credits"`
	TotalPoints  float64 `json:"total_points"`
}
