package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gardaplan/gardaplan/pkg/core/engine"
	"github.com/gardaplan/gardaplan/pkg/db"
)

// GenerateScheduleStore defines the database operations schedule generation
// needs
type GenerateScheduleStore interface {
	GetStaff(ctx context.Context, hospitalID string) ([]db.StaffRecord, error)
	GetShiftsForMonth(ctx context.Context, hospitalID, month string) ([]db.ShiftRecord, error)
}

// ScheduleResult is the outcome of one schedule generation run
type ScheduleResult struct {
	HospitalID string
	Month      string // YYYY-MM
	Days       []engine.Day
	Schedule   []engine.DayResult
	Report     engine.ValidationReport
	Quotas     []engine.StaffQuota
}

// GenerateSchedule loads the hospital's roster and existing reservations,
// runs the assignment engine for the given month, and validates the result.
// Nothing is persisted; PublishSchedule writes an accepted result back.
func GenerateSchedule(ctx context.Context, database GenerateScheduleStore, cfg *engine.HospitalConfig, logger *zap.Logger, month time.Time) (*ScheduleResult, error) {
	monthKey := month.Format("2006-01")
	logger.Info("Generating schedule",
		zap.String("hospital_id", cfg.HospitalID),
		zap.String("month", monthKey),
		zap.String("pattern", string(cfg.Pattern)))

	staffRecords, err := database.GetStaff(ctx, cfg.HospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	if len(staffRecords) == 0 {
		return nil, fmt.Errorf("hospital %s has no staff to schedule", cfg.HospitalID)
	}
	logger.Debug("Roster loaded", zap.Int("staff", len(staffRecords)))

	shiftRecords, err := database.GetShiftsForMonth(ctx, cfg.HospitalID, monthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing shifts: %w", err)
	}
	logger.Debug("Existing shifts loaded", zap.Int("shifts", len(shiftRecords)))

	staff := staffFromRecords(staffRecords)
	existing := existingFromRecords(shiftRecords)

	days := engine.GenerateDaysForMonth(month, cfg)
	schedule := engine.GenerateSchedule(staff, days, cfg, existing)
	report := engine.ValidateSchedule(schedule, staff, cfg)
	quotas := engine.CalculateFairQuotas(staff, days, cfg)

	filled, unfilled, carried := 0, 0, 0
	for _, day := range schedule {
		for _, shift := range day.Shifts {
			switch {
			case shift.AssigneeID == "":
				unfilled++
			case shift.CarriedOver:
				carried++
			default:
				filled++
			}
		}
	}

	logger.Info("Schedule generated",
		zap.String("hospital_id", cfg.HospitalID),
		zap.Int("days", len(days)),
		zap.Int("assigned", filled),
		zap.Int("carried_over", carried),
		zap.Int("unfilled", unfilled),
		zap.Bool("valid", report.IsValid))

	return &ScheduleResult{
		HospitalID: cfg.HospitalID,
		Month:      monthKey,
		Days:       days,
		Schedule:   schedule,
		Report:     report,
		Quotas:     quotas,
	}, nil
}
