package services

import (
	"github.com/gardaplan/gardaplan/pkg/core/engine"
	"github.com/gardaplan/gardaplan/pkg/db"
)

// staffFromRecords converts persisted roster records into engine staff inputs
func staffFromRecords(records []db.StaffRecord) []engine.Staff {
	staff := make([]engine.Staff, 0, len(records))
	for _, rec := range records {
		s := engine.Staff{
			ID:                rec.ID,
			Name:              rec.Name,
			MaxGuardsPerMonth: rec.MaxGuardsPerMonth,
			Unavailable:       rec.Unavailable,
		}
		if len(rec.Preferred) > 0 || len(rec.Avoided) > 0 {
			s.Preferences = &engine.StaffPreferences{
				PreferredShiftTypes: rec.Preferred,
				AvoidedShiftTypes:   rec.Avoided,
			}
		}
		staff = append(staff, s)
	}
	return staff
}

// existingFromRecords groups persisted shift records into the engine's
// per-date existing-shift map. Records sharing a date and type merge into
// one reservation with all assignees listed.
func existingFromRecords(records []db.ShiftRecord) map[string][]engine.ExistingShift {
	existing := make(map[string][]engine.ExistingShift)
	slot := make(map[string]int) // date+type -> index within existing[date]

	for _, rec := range records {
		key := rec.Date + "|" + rec.TypeID
		if i, ok := slot[key]; ok {
			if rec.StaffID != "" {
				existing[rec.Date][i].StaffIDs = append(existing[rec.Date][i].StaffIDs, rec.StaffID)
			}
			continue
		}

		shift := engine.ExistingShift{
			Type:   rec.TypeID,
			Status: rec.Status,
		}
		if rec.StaffID != "" {
			shift.StaffIDs = []string{rec.StaffID}
		}
		slot[key] = len(existing[rec.Date])
		existing[rec.Date] = append(existing[rec.Date], shift)
	}

	return existing
}
