package postgres

import (
	"context"
	"fmt"

	"github.com/gardaplan/gardaplan/pkg/db"
)

// GetShiftsForMonth retrieves all shift records for a hospital in the given
// YYYY-MM month
func (d *DB) GetShiftsForMonth(ctx context.Context, hospitalID, month string) ([]db.ShiftRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, hospital_id, to_char(date, 'YYYY-MM-DD'), type_id, staff_id, status
		FROM shifts
		WHERE hospital_id = $1 AND to_char(date, 'YYYY-MM') = $2
		ORDER BY date
	`, hospitalID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []db.ShiftRecord
	for rows.Next() {
		var s db.ShiftRecord
		var staffID *string
		if err := rows.Scan(&s.ID, &s.HospitalID, &s.Date, &s.TypeID, &staffID, &s.Status); err != nil {
			return nil, fmt.Errorf("failed to scan shift record: %w", err)
		}
		if staffID != nil {
			s.StaffID = *staffID
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}

	return shifts, nil
}

// InsertShifts inserts shift records in a single transaction
func (d *DB) InsertShifts(ctx context.Context, shifts []db.ShiftRecord) error {
	if len(shifts) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, s := range shifts {
		var staffID *string
		if s.StaffID != "" {
			staffID = &s.StaffID
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO shifts (id, hospital_id, date, type_id, staff_id, status)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, s.ID, s.HospitalID, s.Date, s.TypeID, staffID, s.Status); err != nil {
			return fmt.Errorf("failed to insert shift %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit shifts: %w", err)
	}
	return nil
}
