package db

import "context"

// StaffStore defines the interface for staff roster database operations
type StaffStore interface {
	GetStaff(ctx context.Context, hospitalID string) ([]StaffRecord, error)
	InsertStaff(ctx context.Context, staff *StaffRecord) error
	SetUnavailability(ctx context.Context, staffID string, dates []string) error
}

// ShiftStore defines the interface for shift database operations
type ShiftStore interface {
	GetShiftsForMonth(ctx context.Context, hospitalID, month string) ([]ShiftRecord, error)
	InsertShifts(ctx context.Context, shifts []ShiftRecord) error
}
