package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gardaplan/gardaplan/pkg/core/engine"
	"github.com/gardaplan/gardaplan/pkg/db"
)

// StaffReader defines the roster read operation shared by staff-centric
// services
type StaffReader interface {
	GetStaff(ctx context.Context, hospitalID string) ([]db.StaffRecord, error)
}

// QuotaReport computes the advisory fair-share quotas for a hospital's
// roster over the given month. Quotas are informational; the assignment
// engine does not enforce them.
func QuotaReport(ctx context.Context, database StaffReader, cfg *engine.HospitalConfig, logger *zap.Logger, month time.Time) ([]engine.StaffQuota, error) {
	logger.Debug("Computing quota report",
		zap.String("hospital_id", cfg.HospitalID),
		zap.String("month", month.Format("2006-01")))

	staffRecords, err := database.GetStaff(ctx, cfg.HospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}

	staff := staffFromRecords(staffRecords)
	days := engine.GenerateDaysForMonth(month, cfg)

	return engine.CalculateFairQuotas(staff, days, cfg), nil
}

// ListStaff returns the roster for a hospital
func ListStaff(ctx context.Context, database StaffReader, logger *zap.Logger, hospitalID string) ([]db.StaffRecord, error) {
	logger.Debug("Listing staff", zap.String("hospital_id", hospitalID))

	staff, err := database.GetStaff(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}

	return staff, nil
}
