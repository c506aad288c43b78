package engine

// ValidateSchedule scans an assembled schedule for problems. Every slot
// without an assignee is recorded as an error; the report is valid only
// when no errors were found.
//
// Warnings are reserved for coverage-adequacy checks owned by a separate
// consumer and are currently always empty.
func ValidateSchedule(schedule []DayResult, staff []Staff, cfg *HospitalConfig) ValidationReport {
	report := ValidationReport{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	for _, day := range schedule {
		for _, shift := range day.Shifts {
			if shift.AssigneeID == "" {
				report.Errors = append(report.Errors, ValidationError{
					Date:      day.Date,
					ShiftName: shift.Type.Name,
					Message:   "Unfilled shift",
				})
			}
		}
	}

	report.IsValid = len(report.Errors) == 0
	return report
}
