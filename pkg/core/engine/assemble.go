package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// basePriorityStep scales the fairness tiebreak recomputed after each
// assignment
const basePriorityStep = 100

// run is the per-generation arena: the candidate pool, its index, and the
// rest-hours cache all live and die with one GenerateSchedule call, so
// concurrent runs never share mutable state.
type run struct {
	cfg  *HospitalConfig
	pool []*Candidate
	byID map[string]*Candidate
	rest *restCache
}

func newRun(staff []Staff, cfg *HospitalConfig) *run {
	pool := BuildPool(staff, cfg)
	byID := make(map[string]*Candidate, len(pool))
	for _, c := range pool {
		byID[c.ID] = c
	}
	return &run{cfg: cfg, pool: pool, byID: byID, rest: newRestCache()}
}

// GenerateSchedule assigns staff to every required shift slot of the given
// days, folding in existing reservations unmodified. Days are processed in
// calendar order; each day carries over pre-assigned shifts first (so later
// slots respect their rest and quota impact) and then fills the remaining
// required types by scored greedy selection.
//
// Slots nobody can take are emitted with an empty assignee and an explicit
// unfilled status rather than failing the run.
func GenerateSchedule(staff []Staff, days []Day, cfg *HospitalConfig, existing map[string][]ExistingShift) []DayResult {
	r := newRun(staff, cfg)

	results := make([]DayResult, 0, len(days))
	for _, day := range days {
		results = append(results, r.assembleDay(day, existing[day.Date]))
	}
	return results
}

// assembleDay runs the two-pass fill for one day: carried-over reservations
// first, fresh selection for the remaining required types second
func (r *run) assembleDay(day Day, existing []ExistingShift) DayResult {
	result := DayResult{Date: day.Date, Shifts: []AssignedShift{}}
	covered := make(map[string]bool)

	for _, ex := range existing {
		if len(ex.StaffIDs) == 0 {
			continue
		}

		assigned := r.carryOver(day, ex)
		result.Shifts = append(result.Shifts, assigned)
		covered[ex.Type] = true
	}

	for _, st := range day.Required {
		if covered[st.ID] {
			continue
		}
		result.Shifts = append(result.Shifts, r.fillSlot(day, st))
	}

	return result
}

// carryOver copies an existing reservation into the output verbatim and
// feeds its assignees into the tracking state
func (r *run) carryOver(day Day, ex ExistingShift) AssignedShift {
	st, ok := r.cfg.ShiftTypes[ex.Type]
	if !ok {
		// Reservation for a type no longer configured: keep it, the caller
		// guaranteed it exists.
		st = ShiftType{ID: ex.Type, Name: ex.Type}
	}

	status := ex.Status
	if status == "" {
		status = StatusOpen
	}

	assigned := AssignedShift{
		ID:          fmt.Sprintf("%s-%s", day.Date, st.ID),
		Type:        st,
		AssigneeID:  ex.StaffIDs[0],
		Status:      status,
		CarriedOver: true,
	}

	for _, staffID := range ex.StaffIDs {
		c, ok := r.byID[staffID]
		if !ok {
			continue
		}
		if assigned.AssigneeName == "" {
			assigned.AssigneeName = c.Name
		}
		r.recordAssignment(c, day.Date, st)
	}

	return assigned
}

// fillSlot selects and records a candidate for one required shift type,
// or emits an explicit unfilled slot
func (r *run) fillSlot(day Day, st ShiftType) AssignedShift {
	c, emergency := r.selectCandidate(day, st)
	if c == nil {
		return AssignedShift{
			ID:     fmt.Sprintf("%s-%s", day.Date, st.ID),
			Type:   st,
			Status: StatusUnfilled,
		}
	}

	r.recordAssignment(c, day.Date, st)

	return AssignedShift{
		ID:           freshShiftID(day.Date, st.ID, c.ID),
		Type:         st,
		AssigneeID:   c.ID,
		AssigneeName: c.Name,
		Status:       StatusOpen,
		Emergency:    emergency,
	}
}

// recordAssignment applies the post-assignment tracking state transition
func (r *run) recordAssignment(c *Candidate, date string, st ShiftType) {
	// The night-streak rule needs the previous assignment, so settle it
	// before overwriting the last-shift fields. A non-night shift only
	// breaks the streak when at least 24 hours of rest preceded it.
	if st.IsNight() {
		c.ConsecutiveNights++
	} else if c.LastShiftDate != "" && c.LastShiftType != nil {
		if r.rest.hoursBetween(c.LastShiftDate, *c.LastShiftType, date, st) >= 24 {
			c.ConsecutiveNights = 0
		}
	} else {
		c.ConsecutiveNights = 0
	}

	c.TotalAssigned++

	if wd := weekdayOf(date); wd == time.Saturday || wd == time.Sunday {
		c.WeekendShifts++
	}

	c.LastShiftDate = date
	last := st
	c.LastShiftType = &last
	c.Last24Hour = st.Is24Hour()
	c.BasePriority = c.TotalAssigned * basePriorityStep
}

// freshShiftID builds a unique id for a newly generated assignment
func freshShiftID(date, typeID, staffID string) string {
	return fmt.Sprintf("%s-%s-%s-%s", date, typeID, staffID, uuid.NewString()[:8])
}
