package engine

// DefaultMaxShifts is the quota fallback when neither the staff record nor
// the hospital config specifies one.
const DefaultMaxShifts = 10

// BuildPool converts raw staff records into scheduling-ready candidates:
// constraint lists become sets for O(1) membership tests and all tracking
// state starts zeroed. Input records are not mutated.
func BuildPool(staff []Staff, cfg *HospitalConfig) []*Candidate {
	pool := make([]*Candidate, 0, len(staff))

	for _, s := range staff {
		c := &Candidate{
			ID:          s.ID,
			Name:        s.Name,
			MaxShifts:   resolveMaxShifts(s, cfg),
			Unavailable: make(map[string]bool, len(s.Unavailable)),
			Preferred:   make(map[string]bool),
			Avoided:     make(map[string]bool),
		}

		for _, date := range s.Unavailable {
			c.Unavailable[date] = true
		}

		if s.Preferences != nil {
			for _, id := range s.Preferences.PreferredShiftTypes {
				c.Preferred[id] = true
			}
			for _, id := range s.Preferences.AvoidedShiftTypes {
				c.Avoided[id] = true
			}
		}

		pool = append(pool, c)
	}

	return pool
}

// resolveMaxShifts applies the quota precedence: staff override, then
// hospital default, then the constant fallback
func resolveMaxShifts(s Staff, cfg *HospitalConfig) int {
	if s.MaxGuardsPerMonth > 0 {
		return s.MaxGuardsPerMonth
	}
	if cfg != nil && cfg.MaxShiftsPerMonth > 0 {
		return cfg.MaxShiftsPerMonth
	}
	return DefaultMaxShifts
}
