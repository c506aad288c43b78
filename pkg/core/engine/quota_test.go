package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateFairQuotas_EvenSplitWithRemainder(t *testing.T) {
	cfg := nightEveryDayConfig()
	days := january2025(cfg) // 31 night slots

	staff := []Staff{
		{ID: "m1", Name: "Dr. Ionescu"},
		{ID: "m2", Name: "Dr. Popescu"},
		{ID: "m3", Name: "Dr. Georgescu"},
	}

	quotas := CalculateFairQuotas(staff, days, cfg)
	require.Len(t, quotas, 3)

	// 31 slots over 3 staff: remainder goes to the first entry in input order
	assert.Equal(t, 11, quotas[0].Quota.Total)
	assert.Equal(t, 10, quotas[1].Quota.Total)
	assert.Equal(t, 10, quotas[2].Quota.Total)

	total := 0
	for _, q := range quotas {
		total += q.Quota.Total
	}
	assert.Equal(t, 31, total)
}

func TestCalculateFairQuotas_PerTypeCeiling(t *testing.T) {
	cfg := standardConfig()
	days := GenerateDaysForMonth(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local), cfg)

	// January 2025 standard pattern: count slots per type
	slotsByType := make(map[string]int)
	for _, day := range days {
		for _, st := range day.Required {
			slotsByType[st.ID]++
		}
	}

	staff := []Staff{
		{ID: "m1", Name: "Dr. Ionescu"},
		{ID: "m2", Name: "Dr. Popescu"},
		{ID: "m3", Name: "Dr. Georgescu"},
		{ID: "m4", Name: "Dr. Vasilescu"},
	}

	quotas := CalculateFairQuotas(staff, days, cfg)
	require.Len(t, quotas, 4)

	for typeID, count := range slotsByType {
		want := (count + len(staff) - 1) / len(staff)
		assert.Equal(t, want, quotas[0].Quota.ByType[typeID], "ceiling division for %s", typeID)
	}
}

func TestCalculateFairQuotas_EmptyRoster(t *testing.T) {
	cfg := standardConfig()
	days := january2025(cfg)

	quotas := CalculateFairQuotas(nil, days, cfg)
	assert.Empty(t, quotas)
}

func TestCalculateFairQuotas_IgnoresExistingAssignments(t *testing.T) {
	// Quotas are computed from required slots alone; they are advisory and
	// independent of what the assembler later produces.
	cfg := nightEveryDayConfig()
	days := january2025(cfg)

	staff := []Staff{
		{ID: "m1", Name: "Dr. Ionescu"},
		{ID: "m2", Name: "Dr. Popescu"},
	}

	quotas := CalculateFairQuotas(staff, days, cfg)
	require.Len(t, quotas, 2)
	assert.Equal(t, 16, quotas[0].Quota.Total)
	assert.Equal(t, 15, quotas[1].Quota.Total)
}
