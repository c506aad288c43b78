package engine

import (
	"time"

	"github.com/teambition/rrule-go"
)

// Romanian weekday names, indexed by time.Weekday (0 = Sunday)
var dayNames = [7]string{
	"Duminică",
	"Luni",
	"Marți",
	"Miercuri",
	"Joi",
	"Vineri",
	"Sâmbătă",
}

// GenerateDaysForMonth produces every calendar day of the anchor's month,
// each tagged with the shift types the hospital's pattern requires that day.
//
// Pure function: identical inputs always yield structurally identical output.
// Shift-type ids referenced by the pattern but absent from the hospital's
// ShiftTypes map are dropped, never emitted as empty entries.
func GenerateDaysForMonth(anchor time.Time, cfg *HospitalConfig) []Day {
	year, month, _ := anchor.Date()

	// Anchor every day at local noon so DST transitions cannot shift the date.
	first := time.Date(year, month, 1, 12, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	daysInMonth := last.Day()

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: first,
		Until:   last,
	})
	if err != nil {
		// The rule is built from fixed constants; it cannot fail for a valid month.
		return nil
	}

	var days []Day
	for _, date := range rule.All() {
		day := Day{
			Date:    date.Format("2006-01-02"),
			Weekday: date.Weekday(),
			DayName: dayNames[date.Weekday()],
		}
		day.Required = requiredShifts(date, daysInMonth, cfg)
		days = append(days, day)
	}

	return days
}

// requiredShifts resolves the shift types required on one date per the
// hospital's pattern
func requiredShifts(date time.Time, daysInMonth int, cfg *HospitalConfig) []ShiftType {
	switch cfg.Pattern {
	case PatternOnly24:
		return resolveShiftIDs(cfg, ShiftGarda24)

	case PatternStandard1224:
		return standardShifts(date, daysInMonth, cfg)

	case PatternCustom:
		dateStr := date.Format("2006-01-02")
		if cfg.Holidays[dateStr] {
			if len(cfg.HolidayShifts) > 0 {
				return resolveShiftIDs(cfg, cfg.HolidayShifts...)
			}
			return resolveShiftIDs(cfg, cfg.WeekendShifts...)
		}
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			return resolveShiftIDs(cfg, cfg.WeekendShifts...)
		}
		return resolveShiftIDs(cfg, cfg.WeekdayShifts...)
	}

	return nil
}

// standardShifts implements the standard_12_24 pattern:
//   - Monday–Thursday: night shift only
//   - Friday: night shift, except the last Friday of the month which takes
//     the 24h guard instead
//   - Saturday: the 2nd and 3rd Saturdays take the 24h guard; other
//     Saturdays take day + night
//   - Sunday: day + night
func standardShifts(date time.Time, daysInMonth int, cfg *HospitalConfig) []ShiftType {
	switch date.Weekday() {
	case time.Saturday:
		ordinal := (date.Day()-1)/7 + 1
		if ordinal == 2 || ordinal == 3 {
			return resolveShiftIDs(cfg, ShiftGarda24)
		}
		return resolveShiftIDs(cfg, ShiftGardaZi, ShiftNoapte)

	case time.Sunday:
		return resolveShiftIDs(cfg, ShiftGardaZi, ShiftNoapte)

	case time.Friday:
		if date.Day()+7 > daysInMonth {
			return resolveShiftIDs(cfg, ShiftGarda24)
		}
		return resolveShiftIDs(cfg, ShiftNoapte)

	default:
		return resolveShiftIDs(cfg, ShiftNoapte)
	}
}

// resolveShiftIDs maps ids to the hospital's ShiftTypes, dropping unknown ids
func resolveShiftIDs(cfg *HospitalConfig, ids ...string) []ShiftType {
	shifts := make([]ShiftType, 0, len(ids))
	for _, id := range ids {
		if st, ok := cfg.ShiftTypes[id]; ok {
			shifts = append(shifts, st)
		}
	}
	return shifts
}
