package domain

// Availability is display data only; slot generation does not consult it.
type Availability struct {
	Days  []string `json:"days"`
	Hours string   `json:"hours"`
}

type Doctor struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Specialty    string       `json:"specialty"`
	Image        string       `json:"image"`
	Rating       float64      `json:"rating"`
	ReviewCount  int          `json:"review_count"`
	Availability Availability `json:"availability"`
	Experience   int          `json:"experience"`
	Bio          string       `json:"bio"`
}
