package db

// StaffRecord is a persisted roster entry for one hospital
type StaffRecord struct {
	ID         string
	HospitalID string
	Name       string

	// MaxGuardsPerMonth overrides the hospital default when > 0
	MaxGuardsPerMonth int

	// Unavailable holds YYYY-MM-DD dates the member cannot work
	Unavailable []string

	Preferred []string
	Avoided   []string
}

// ShiftRecord is a persisted shift assignment
type ShiftRecord struct {
	ID         string
	HospitalID string
	Date       string // YYYY-MM-DD
	TypeID     string

	// StaffID is empty for open or unfilled slots
	StaffID string

	Status string
}
