package shift

import (
	"context"
	"time"
)

// ShiftTemplateRepository - interface for shift_templates table
type ShiftTemplateRepository interface {
	Create(ctx context.Context, tmpl ShiftTemplate) (ShiftTemplate, error)
	GetByID(ctx context.Context, id string) (ShiftTemplate, error)
	GetByName(ctx context.Context, name string) (ShiftTemplate, error)
	List(ctx context.Context) ([]ShiftTemplate, error)
	Update(ctx context.Context, tmpl ShiftTemplate) error
	Delete(ctx context.Context, id string) error
}

// ScheduledShiftRepository - interface for scheduled_shifts table
type ScheduledShiftRepository interface {
	Create(ctx context.Context, s ScheduledShift) (ScheduledShift, error)
	BulkCreate(ctx context.Context, shifts []ScheduledShift) error
	GetByID(ctx context.Context, id string) (ScheduledShift, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]ScheduledShift, error)
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]ScheduledShift, error)
	ListUnpaidByDate(ctx context.Context, date time.Time) ([]ScheduledShift, error)
	ExistsInRange(ctx context.Context, from, to time.Time) (bool, error)
	Update(ctx context.Context, s ScheduledShift) error
	MarkPaid(ctx context.Context, ids []string) error
	Delete(ctx context.Context, id string) error
}
