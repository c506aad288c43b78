package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gardaplan/gardaplan/pkg/core/engine"
	"github.com/gardaplan/gardaplan/pkg/db"
)

// PublishScheduleStore defines the database operations schedule publishing
// needs
type PublishScheduleStore interface {
	InsertShifts(ctx context.Context, shifts []db.ShiftRecord) error
}

// PublishSchedule persists the freshly generated assignments of a schedule.
// Carried-over shifts already exist in storage and are skipped; unfilled
// slots are written with an empty assignee so they stay visible for manual
// follow-up. Returns the number of records written.
func PublishSchedule(ctx context.Context, database PublishScheduleStore, logger *zap.Logger, hospitalID string, schedule []engine.DayResult) (int, error) {
	var records []db.ShiftRecord

	for _, day := range schedule {
		for _, shift := range day.Shifts {
			if shift.CarriedOver {
				continue
			}
			records = append(records, db.ShiftRecord{
				ID:         shift.ID,
				HospitalID: hospitalID,
				Date:       day.Date,
				TypeID:     shift.Type.ID,
				StaffID:    shift.AssigneeID,
				Status:     shift.Status,
			})
		}
	}

	if len(records) == 0 {
		logger.Info("Nothing to publish", zap.String("hospital_id", hospitalID))
		return 0, nil
	}

	if err := database.InsertShifts(ctx, records); err != nil {
		return 0, fmt.Errorf("failed to insert shifts: %w", err)
	}

	logger.Info("Schedule published",
		zap.String("hospital_id", hospitalID),
		zap.Int("records", len(records)))

	return len(records), nil
}
