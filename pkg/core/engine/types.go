package engine

import "time"

// ShiftCategory classifies a shift type for constraint purposes.
// Night shifts feed the consecutive-night counter, extended (24h) shifts
// trigger the no-back-to-back-24h rule.
type ShiftCategory string

const (
	CategoryDay      ShiftCategory = "day"
	CategoryNight    ShiftCategory = "night"
	CategoryExtended ShiftCategory = "extended"
)

// ShiftPattern names a hospital's guard coverage policy
type ShiftPattern string

const (
	PatternOnly24       ShiftPattern = "only_24"
	PatternStandard1224 ShiftPattern = "standard_12_24"
	PatternCustom       ShiftPattern = "custom"
)

// Well-known shift type ids used by the standard patterns
const (
	ShiftGarda24 = "GARDA_24"
	ShiftGardaZi = "GARDA_ZI"
	ShiftNoapte  = "NOAPTE"
)

// ShiftType is immutable reference data describing one kind of guard shift.
// A single instance is shared across all shifts of that type for a hospital.
type ShiftType struct {
	ID            string
	Name          string
	Start         string // "HH:MM"
	End           string // "HH:MM"; earlier than Start means the shift wraps past midnight
	Color         string
	DurationHours int
	Category      ShiftCategory
}

// IsNight reports whether the shift counts toward the consecutive-night streak
func (st ShiftType) IsNight() bool {
	return st.Category == CategoryNight
}

// Is24Hour reports whether the shift is a full-day guard
func (st ShiftType) Is24Hour() bool {
	return st.DurationHours == 24
}

// HospitalConfig is the read-only scheduling policy for one hospital.
// Loaded once per generation run; never mutated during generation.
type HospitalConfig struct {
	HospitalID string

	Pattern    ShiftPattern
	ShiftTypes map[string]ShiftType

	// Required shift-type ids per day class, used only by PatternCustom.
	// Ids absent from ShiftTypes are silently dropped.
	WeekdayShifts []string
	WeekendShifts []string
	HolidayShifts []string

	// Holidays is the set of YYYY-MM-DD dates treated as holidays.
	// Populated by the config layer from fixed dates and rrule expansion.
	Holidays map[string]bool

	MaxShiftsPerMonth    int
	MaxConsecutiveNights int
	MinRestHours         int
}

// Day is one generated calendar day with its required coverage.
// Produced fresh per generation call and never mutated afterward.
type Day struct {
	Date     string // YYYY-MM-DD
	Weekday  time.Weekday
	DayName  string
	Required []ShiftType
}

// IsWeekend reports whether the day falls on a Saturday or Sunday
func (d Day) IsWeekend() bool {
	return d.Weekday == time.Saturday || d.Weekday == time.Sunday
}

// StaffPreferences carries a staff member's shift-type likes and dislikes
type StaffPreferences struct {
	PreferredShiftTypes []string
	AvoidedShiftTypes   []string
}

// Staff is the roster record the engine consumes from its caller
type Staff struct {
	ID   string
	Name string

	// MaxGuardsPerMonth overrides the hospital default when > 0
	MaxGuardsPerMonth int

	// Unavailable holds YYYY-MM-DD dates the member cannot work
	Unavailable []string

	Preferences *StaffPreferences
}

// Candidate is a staff member prepared for scheduling: constraint sets
// precomputed for O(1) lookups plus the tracking state mutated as slots
// are filled. Candidates live only for the duration of one run.
type Candidate struct {
	ID        string
	Name      string
	MaxShifts int

	Unavailable map[string]bool
	Preferred   map[string]bool
	Avoided     map[string]bool

	TotalAssigned     int
	ConsecutiveNights int
	LastShiftDate     string
	LastShiftType     *ShiftType
	Last24Hour        bool
	WeekendShifts     int

	// BasePriority is a fairness tiebreak recomputed after each assignment
	// as TotalAssigned * 100, so lightly loaded candidates sort first.
	BasePriority int
}

// ExistingShift is a reservation made before generation (manual assignment,
// approved swap). Shifts with a non-empty StaffIDs list are carried over
// verbatim and never reassigned.
type ExistingShift struct {
	Type     string
	StaffIDs []string
	Status   string
}

// Shift assignment statuses
const (
	StatusOpen     = "open"
	StatusUnfilled = "UNFILLED - No available staff"
)

// AssignedShift is the outcome for one shift slot
type AssignedShift struct {
	ID   string
	Type ShiftType

	// AssigneeID is empty when the slot could not be filled
	AssigneeID   string
	AssigneeName string

	Status string

	// CarriedOver marks slots copied unchanged from existing reservations
	CarriedOver bool

	// Emergency marks assignments made under relaxed constraints
	Emergency bool
}

// DayResult pairs a calendar date with its assembled shift outcomes
type DayResult struct {
	Date   string
	Shifts []AssignedShift
}

// ValidationError describes one problem found in an assembled schedule
type ValidationError struct {
	Date      string
	ShiftName string
	Message   string
}

// ValidationReport is the post-generation scan result
type ValidationReport struct {
	IsValid  bool
	Errors   []ValidationError
	Warnings []ValidationError
}

// Quota is the advisory fair-share figures for one staff member
type Quota struct {
	Total  int
	ByType map[string]int
}

// StaffQuota annotates a roster entry with its advisory quota
type StaffQuota struct {
	StaffID string
	Name    string
	Quota   Quota
}
