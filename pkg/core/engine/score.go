package engine

import "time"

// Scoring weights. Lower scores win; penalties push a candidate down the
// ranking, bonuses (subtractions) pull it up.
const (
	weightAssigned         = 1000  // per shift already assigned this run
	weightWeekendShift     = 3000  // per prior weekend shift, applied on weekend slots
	weightConsecutiveNight = 2000  // per consecutive night, applied on night slots
	bonusPreferred         = 5000  // flat, when the slot's type is preferred
	bonusRestPerDay        = 100   // per day since last shift
	bonusRestCap           = 500   // ceiling on the rest bonus
	penaltyEmergency       = 10000 // flat, on every relaxed-constraint candidate
)

// How many extra shifts the emergency fallback may assign past the quota
const emergencyQuotaSlack = 2

// eligibleStrict applies the full constraint set for a slot
func (r *run) eligibleStrict(c *Candidate, day Day, st ShiftType) bool {
	if c.Unavailable[day.Date] {
		return false
	}
	if c.TotalAssigned >= c.MaxShifts {
		return false
	}
	if c.Avoided[st.ID] {
		return false
	}

	// Rest check only applies once a prior assignment exists
	if c.LastShiftDate != "" && c.LastShiftType != nil && r.cfg.MinRestHours > 0 {
		rest := r.rest.hoursBetween(c.LastShiftDate, *c.LastShiftType, day.Date, st)
		if rest < float64(r.cfg.MinRestHours) {
			return false
		}
	}

	if st.IsNight() && r.cfg.MaxConsecutiveNights > 0 && c.ConsecutiveNights >= r.cfg.MaxConsecutiveNights {
		return false
	}

	// No 24h guard on the day immediately after a prior 24h guard
	if st.Is24Hour() && c.Last24Hour && isNextDay(c.LastShiftDate, day.Date) {
		return false
	}

	return true
}

// eligibleRelaxed is the emergency fallback filter: only unavailability and
// a widened quota are enforced
func (r *run) eligibleRelaxed(c *Candidate, day Day) bool {
	if c.Unavailable[day.Date] {
		return false
	}
	return c.TotalAssigned < c.MaxShifts+emergencyQuotaSlack
}

// score ranks an eligible candidate for a slot; lower is better
func (r *run) score(c *Candidate, day Day, st ShiftType) float64 {
	score := float64(c.BasePriority)
	score += float64(c.TotalAssigned * weightAssigned)

	if day.IsWeekend() {
		score += float64(c.WeekendShifts * weightWeekendShift)
	}

	if c.Preferred[st.ID] {
		score -= bonusPreferred
	}

	if st.IsNight() {
		score += float64(c.ConsecutiveNights * weightConsecutiveNight)
	}

	if c.LastShiftDate != "" {
		bonus := daysBetween(c.LastShiftDate, day.Date) * bonusRestPerDay
		if bonus > bonusRestCap {
			bonus = bonusRestCap
		}
		score -= float64(bonus)
	}

	return score
}

// selectCandidate picks the best candidate for a slot. It first tries the
// strict constraint set, then falls back to the relaxed emergency filter
// with a flat score penalty. Returns nil when no one can take the slot.
//
// Ties resolve to the earliest candidate in pool order, giving a stable,
// deterministic pick without a random tiebreak.
func (r *run) selectCandidate(day Day, st ShiftType) (best *Candidate, emergency bool) {
	var bestScore float64

	for _, c := range r.pool {
		if !r.eligibleStrict(c, day, st) {
			continue
		}
		score := r.score(c, day, st)
		if best == nil || score < bestScore {
			best = c
			bestScore = score
		}
	}
	if best != nil {
		return best, false
	}

	for _, c := range r.pool {
		if !r.eligibleRelaxed(c, day) {
			continue
		}
		score := r.score(c, day, st) + penaltyEmergency
		if best == nil || score < bestScore {
			best = c
			bestScore = score
		}
	}

	return best, best != nil
}

// daysBetween counts whole days from one YYYY-MM-DD date to another.
// Dates are anchored at local noon so DST transitions cannot skew the count.
func daysBetween(from, to string) int {
	start := atClock(from, "12:00")
	end := atClock(to, "12:00")
	return int(end.Sub(start).Hours() / 24)
}

// isNextDay reports whether date falls exactly one calendar day after prev
func isNextDay(prev, date string) bool {
	if prev == "" {
		return false
	}
	return daysBetween(prev, date) == 1
}

// weekdayOf resolves the weekday of a YYYY-MM-DD date
func weekdayOf(date string) time.Weekday {
	return atClock(date, "12:00").Weekday()
}
