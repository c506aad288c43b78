package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPool_QuotaPrecedence(t *testing.T) {
	cfg := &HospitalConfig{MaxShiftsPerMonth: 8}

	staff := []Staff{
		{ID: "m1", Name: "Dr. Ionescu", MaxGuardsPerMonth: 6},
		{ID: "m2", Name: "Dr. Popescu"},
	}

	pool := BuildPool(staff, cfg)
	require.Len(t, pool, 2)

	assert.Equal(t, 6, pool[0].MaxShifts, "staff override wins")
	assert.Equal(t, 8, pool[1].MaxShifts, "hospital default applies without override")

	pool = BuildPool(staff, &HospitalConfig{})
	assert.Equal(t, DefaultMaxShifts, pool[1].MaxShifts, "constant fallback when nothing is configured")
}

func TestBuildPool_MaterializesConstraintSets(t *testing.T) {
	staff := []Staff{{
		ID:          "m1",
		Name:        "Dr. Ionescu",
		Unavailable: []string{"2025-01-11", "2025-01-12"},
		Preferences: &StaffPreferences{
			PreferredShiftTypes: []string{ShiftNoapte},
			AvoidedShiftTypes:   []string{ShiftGarda24},
		},
	}}

	pool := BuildPool(staff, standardConfig())
	require.Len(t, pool, 1)
	c := pool[0]

	assert.True(t, c.Unavailable["2025-01-11"])
	assert.True(t, c.Unavailable["2025-01-12"])
	assert.False(t, c.Unavailable["2025-01-13"])
	assert.True(t, c.Preferred[ShiftNoapte])
	assert.True(t, c.Avoided[ShiftGarda24])
}

func TestBuildPool_ZeroedTrackingState(t *testing.T) {
	pool := BuildPool([]Staff{{ID: "m1"}}, standardConfig())
	require.Len(t, pool, 1)
	c := pool[0]

	assert.Zero(t, c.TotalAssigned)
	assert.Zero(t, c.ConsecutiveNights)
	assert.Zero(t, c.WeekendShifts)
	assert.Zero(t, c.BasePriority)
	assert.Empty(t, c.LastShiftDate)
	assert.Nil(t, c.LastShiftType)
	assert.False(t, c.Last24Hour)
}

func TestBuildPool_DoesNotMutateInput(t *testing.T) {
	staff := []Staff{{ID: "m1", Unavailable: []string{"2025-01-11"}}}

	BuildPool(staff, standardConfig())

	assert.Equal(t, []string{"2025-01-11"}, staff[0].Unavailable)
}
