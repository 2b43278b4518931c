package payroll

import (
	"context"
	"time"
)

// WageRepository - interface for wage_records table
type WageRepository interface {
	BulkCreate(ctx context.Context, records []WageRecord) error
	ListByEmployee(ctx context.Context, employeeID string) ([]WageRecord, error)
	ListByPayDateRange(ctx context.Context, from, to time.Time) ([]WageRecord, error)
}
