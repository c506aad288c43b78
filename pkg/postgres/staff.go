package postgres

import (
	"context"
	"fmt"

	"github.com/gardaplan/gardaplan/pkg/db"
)

// GetStaff retrieves the roster for a hospital, including unavailable dates
func (d *DB) GetStaff(ctx context.Context, hospitalID string) ([]db.StaffRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, hospital_id, name, max_guards_per_month, preferred_shift_types, avoided_shift_types
		FROM staff
		WHERE hospital_id = $1
		ORDER BY name
	`, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var staff []db.StaffRecord
	index := make(map[string]int)
	for rows.Next() {
		var s db.StaffRecord
		if err := rows.Scan(&s.ID, &s.HospitalID, &s.Name, &s.MaxGuardsPerMonth, &s.Preferred, &s.Avoided); err != nil {
			return nil, fmt.Errorf("failed to scan staff record: %w", err)
		}
		index[s.ID] = len(staff)
		staff = append(staff, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff: %w", err)
	}

	unavailRows, err := d.pool.Query(ctx, `
		SELECT u.staff_id, to_char(u.date, 'YYYY-MM-DD')
		FROM staff_unavailability u
		JOIN staff s ON s.id = u.staff_id
		WHERE s.hospital_id = $1
		ORDER BY u.date
	`, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff unavailability: %w", err)
	}
	defer unavailRows.Close()

	for unavailRows.Next() {
		var staffID, date string
		if err := unavailRows.Scan(&staffID, &date); err != nil {
			return nil, fmt.Errorf("failed to scan unavailability: %w", err)
		}
		if i, ok := index[staffID]; ok {
			staff[i].Unavailable = append(staff[i].Unavailable, date)
		}
	}
	if err := unavailRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unavailability: %w", err)
	}

	return staff, nil
}

// InsertStaff inserts a staff record
func (d *DB) InsertStaff(ctx context.Context, staff *db.StaffRecord) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO staff (id, hospital_id, name, max_guards_per_month, preferred_shift_types, avoided_shift_types)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, staff.ID, staff.HospitalID, staff.Name, staff.MaxGuardsPerMonth, staff.Preferred, staff.Avoided)
	if err != nil {
		return fmt.Errorf("failed to insert staff: %w", err)
	}
	return nil
}

// SetUnavailability replaces a staff member's unavailable dates
func (d *DB) SetUnavailability(ctx context.Context, staffID string, dates []string) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM staff_unavailability WHERE staff_id = $1`, staffID); err != nil {
		return fmt.Errorf("failed to clear unavailability: %w", err)
	}

	for _, date := range dates {
		if _, err := tx.Exec(ctx, `
			INSERT INTO staff_unavailability (staff_id, date) VALUES ($1, $2)
		`, staffID, date); err != nil {
			return fmt.Errorf("failed to insert unavailability: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit unavailability: %w", err)
	}
	return nil
}
