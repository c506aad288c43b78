package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShiftTypes() map[string]ShiftType {
	return map[string]ShiftType{
		ShiftGardaZi: {
			ID: ShiftGardaZi, Name: "Gardă de zi",
			Start: "08:00", End: "20:00", DurationHours: 12, Category: CategoryDay,
		},
		ShiftNoapte: {
			ID: ShiftNoapte, Name: "Gardă de noapte",
			Start: "20:00", End: "08:00", DurationHours: 12, Category: CategoryNight,
		},
		ShiftGarda24: {
			ID: ShiftGarda24, Name: "Gardă 24 ore",
			Start: "08:00", End: "08:00", DurationHours: 24, Category: CategoryExtended,
		},
	}
}

func standardConfig() *HospitalConfig {
	return &HospitalConfig{
		HospitalID:           "spital-1",
		Pattern:              PatternStandard1224,
		ShiftTypes:           testShiftTypes(),
		MaxShiftsPerMonth:    10,
		MaxConsecutiveNights: 3,
		MinRestHours:         12,
	}
}

func requiredIDs(day Day) []string {
	ids := make([]string, 0, len(day.Required))
	for _, st := range day.Required {
		ids = append(ids, st.ID)
	}
	return ids
}

func dayByDate(t *testing.T, days []Day, date string) Day {
	t.Helper()
	for _, d := range days {
		if d.Date == date {
			return d
		}
	}
	t.Fatalf("no day generated for %s", date)
	return Day{}
}

func TestGenerateDaysForMonth_CoversWholeMonth(t *testing.T) {
	cfg := standardConfig()
	days := GenerateDaysForMonth(time.Date(2025, time.January, 15, 0, 0, 0, 0, time.Local), cfg)

	require.Len(t, days, 31)
	assert.Equal(t, "2025-01-01", days[0].Date)
	assert.Equal(t, "2025-01-31", days[30].Date)
	assert.Equal(t, time.Wednesday, days[0].Weekday)
	assert.Equal(t, "Miercuri", days[0].DayName)
}

func TestGenerateDaysForMonth_Only24Pattern(t *testing.T) {
	cfg := &HospitalConfig{
		Pattern:    PatternOnly24,
		ShiftTypes: testShiftTypes(),
	}

	days := GenerateDaysForMonth(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local), cfg)

	require.Len(t, days, 31)
	for _, day := range days {
		assert.Equal(t, []string{ShiftGarda24}, requiredIDs(day), "every day requires exactly the 24h guard")
	}
}

func TestGenerateDaysForMonth_Only24WithoutConfiguredType(t *testing.T) {
	cfg := &HospitalConfig{
		Pattern: PatternOnly24,
		ShiftTypes: map[string]ShiftType{
			ShiftNoapte: testShiftTypes()[ShiftNoapte],
		},
	}

	days := GenerateDaysForMonth(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local), cfg)

	for _, day := range days {
		assert.Empty(t, day.Required, "unconfigured ids are dropped, never emitted as empty entries")
	}
}

func TestGenerateDaysForMonth_StandardPattern_January2025(t *testing.T) {
	cfg := standardConfig()
	days := GenerateDaysForMonth(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local), cfg)

	// Plain Monday takes the night guard only
	assert.Equal(t, []string{ShiftNoapte}, requiredIDs(dayByDate(t, days, "2025-01-06")))

	// 2nd and 3rd Saturdays take the 24h guard
	assert.Equal(t, []string{ShiftGarda24}, requiredIDs(dayByDate(t, days, "2025-01-11")))
	assert.Equal(t, []string{ShiftGarda24}, requiredIDs(dayByDate(t, days, "2025-01-18")))

	// Other Saturdays take day + night
	assert.Equal(t, []string{ShiftGardaZi, ShiftNoapte}, requiredIDs(dayByDate(t, days, "2025-01-04")))
	assert.Equal(t, []string{ShiftGardaZi, ShiftNoapte}, requiredIDs(dayByDate(t, days, "2025-01-25")))

	// Sundays always take day + night
	assert.Equal(t, []string{ShiftGardaZi, ShiftNoapte}, requiredIDs(dayByDate(t, days, "2025-01-05")))

	// Last Friday of the month takes the 24h guard, earlier Fridays the night
	assert.Equal(t, []string{ShiftGarda24}, requiredIDs(dayByDate(t, days, "2025-01-31")))
	assert.Equal(t, []string{ShiftNoapte}, requiredIDs(dayByDate(t, days, "2025-01-24")))
}

func TestGenerateDaysForMonth_CustomPattern(t *testing.T) {
	cfg := &HospitalConfig{
		Pattern:       PatternCustom,
		ShiftTypes:    testShiftTypes(),
		WeekdayShifts: []string{ShiftNoapte, "TURA_INEXISTENTA"},
		WeekendShifts: []string{ShiftGarda24},
	}

	days := GenerateDaysForMonth(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local), cfg)

	// Unknown ids are silently dropped from the weekday list
	assert.Equal(t, []string{ShiftNoapte}, requiredIDs(dayByDate(t, days, "2025-01-06")))
	assert.Equal(t, []string{ShiftGarda24}, requiredIDs(dayByDate(t, days, "2025-01-11")))
	assert.Equal(t, []string{ShiftGarda24}, requiredIDs(dayByDate(t, days, "2025-01-05")))
}

func TestGenerateDaysForMonth_CustomPatternHolidays(t *testing.T) {
	cfg := &HospitalConfig{
		Pattern:       PatternCustom,
		ShiftTypes:    testShiftTypes(),
		WeekdayShifts: []string{ShiftNoapte},
		WeekendShifts: []string{ShiftGardaZi, ShiftNoapte},
		HolidayShifts: []string{ShiftGarda24},
		Holidays:      map[string]bool{"2025-01-01": true, "2025-01-02": true},
	}

	days := GenerateDaysForMonth(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local), cfg)

	assert.Equal(t, []string{ShiftGarda24}, requiredIDs(dayByDate(t, days, "2025-01-01")))
	assert.Equal(t, []string{ShiftGarda24}, requiredIDs(dayByDate(t, days, "2025-01-02")))
	assert.Equal(t, []string{ShiftNoapte}, requiredIDs(dayByDate(t, days, "2025-01-03")))
}

func TestGenerateDaysForMonth_HolidayFallsBackToWeekendList(t *testing.T) {
	cfg := &HospitalConfig{
		Pattern:       PatternCustom,
		ShiftTypes:    testShiftTypes(),
		WeekdayShifts: []string{ShiftNoapte},
		WeekendShifts: []string{ShiftGarda24},
		Holidays:      map[string]bool{"2025-01-01": true},
	}

	days := GenerateDaysForMonth(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local), cfg)

	assert.Equal(t, []string{ShiftGarda24}, requiredIDs(dayByDate(t, days, "2025-01-01")))
}

func TestGenerateDaysForMonth_Idempotent(t *testing.T) {
	cfg := standardConfig()
	anchor := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.Local)

	first := GenerateDaysForMonth(anchor, cfg)
	second := GenerateDaysForMonth(anchor, cfg)

	assert.Equal(t, first, second)
}
