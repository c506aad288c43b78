package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gardaplan/gardaplan/pkg/core/engine"
)

func sampleSchedule() []engine.DayResult {
	night := engine.ShiftType{ID: engine.ShiftNoapte, Name: "Gardă de noapte"}
	return []engine.DayResult{
		{
			Date: "2025-01-10",
			Shifts: []engine.AssignedShift{
				{ID: "2025-01-10-NOAPTE-m1-abc123", Type: night, AssigneeID: "m1", AssigneeName: "Dr. Ionescu", Status: engine.StatusOpen},
			},
		},
		{
			Date: "2025-01-11",
			Shifts: []engine.AssignedShift{
				{ID: "2025-01-11-NOAPTE", Type: night, AssigneeID: "m2", AssigneeName: "Dr. Popescu", Status: engine.StatusOpen, CarriedOver: true},
			},
		},
		{
			Date: "2025-01-12",
			Shifts: []engine.AssignedShift{
				{ID: "2025-01-12-NOAPTE", Type: night, Status: engine.StatusUnfilled},
			},
		},
	}
}

func TestPublishSchedule_WritesFreshRecordsOnly(t *testing.T) {
	store := &mockScheduleStore{}

	count, err := PublishSchedule(context.Background(), store, zap.NewNop(), "spital-1", sampleSchedule())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, store.insertedShifts, 2)

	first := store.insertedShifts[0]
	assert.Equal(t, "2025-01-10-NOAPTE-m1-abc123", first.ID)
	assert.Equal(t, "spital-1", first.HospitalID)
	assert.Equal(t, "2025-01-10", first.Date)
	assert.Equal(t, engine.ShiftNoapte, first.TypeID)
	assert.Equal(t, "m1", first.StaffID)
	assert.Equal(t, engine.StatusOpen, first.Status)

	// Unfilled slots are persisted with an empty assignee for follow-up
	second := store.insertedShifts[1]
	assert.Empty(t, second.StaffID)
	assert.Equal(t, engine.StatusUnfilled, second.Status)
}

func TestPublishSchedule_EmptySchedule(t *testing.T) {
	store := &mockScheduleStore{}

	count, err := PublishSchedule(context.Background(), store, zap.NewNop(), "spital-1", nil)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, store.insertedShifts)
}

func TestPublishSchedule_StoreError(t *testing.T) {
	store := &mockScheduleStore{insertShiftsErr: errors.New("connection refused")}

	_, err := PublishSchedule(context.Background(), store, zap.NewNop(), "spital-1", sampleSchedule())
	assert.ErrorContains(t, err, "failed to insert shifts")
}

func TestQuotaReport_Success(t *testing.T) {
	store := &mockScheduleStore{staff: testRoster()}

	month := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local)
	quotas, err := QuotaReport(context.Background(), store, testEngineConfig(), zap.NewNop(), month)
	require.NoError(t, err)
	require.Len(t, quotas, 3)

	// 31 slots over 3 staff: 11/10/10 in roster order
	assert.Equal(t, 11, quotas[0].Quota.Total)
	assert.Equal(t, 10, quotas[1].Quota.Total)
	assert.Equal(t, 10, quotas[2].Quota.Total)
}

func TestListStaff_Success(t *testing.T) {
	store := &mockScheduleStore{staff: testRoster()}

	staff, err := ListStaff(context.Background(), store, zap.NewNop(), "spital-1")
	require.NoError(t, err)
	assert.Len(t, staff, 3)
}

func TestListStaff_StoreError(t *testing.T) {
	store := &mockScheduleStore{getStaffErr: errors.New("connection refused")}

	_, err := ListStaff(context.Background(), store, zap.NewNop(), "spital-1")
	assert.ErrorContains(t, err, "failed to fetch staff")
}
