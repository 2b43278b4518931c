package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/rosterhq/roster-backend-go/internal/domain/employee"
	"github.com/rosterhq/roster-backend-go/internal/domain/payroll"
	"github.com/rosterhq/roster-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }

func (r *fakeEmployeeRepo) ListByPositionType(ctx context.Context, positionType employee.PositionType, activeOnly bool) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

type fakeTemplateRepo struct {
	templates map[string]shift.ShiftTemplate
}

func (r *fakeTemplateRepo) Create(ctx context.Context, tmpl shift.ShiftTemplate) (shift.ShiftTemplate, error) {
	r.templates[tmpl.ID] = tmpl
	return tmpl, nil
}

func (r *fakeTemplateRepo) GetByID(ctx context.Context, id string) (shift.ShiftTemplate, error) {
	tmpl, ok := r.templates[id]
	if !ok {
		return shift.ShiftTemplate{}, shift.ErrTemplateNotFound
	}
	return tmpl, nil
}

func (r *fakeTemplateRepo) GetByName(ctx context.Context, name string) (shift.ShiftTemplate, error) {
	return shift.ShiftTemplate{}, shift.ErrTemplateNotFound
}

func (r *fakeTemplateRepo) List(ctx context.Context) ([]shift.ShiftTemplate, error) { return nil, nil }
func (r *fakeTemplateRepo) Update(ctx context.Context, tmpl shift.ShiftTemplate) error {
	return nil
}
func (r *fakeTemplateRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeShiftRepo struct {
	shifts map[string]shift.ScheduledShift
}

func (r *fakeShiftRepo) Create(ctx context.Context, s shift.ScheduledShift) (shift.ScheduledShift, error) {
	r.shifts[s.ID] = s
	return s, nil
}

func (r *fakeShiftRepo) BulkCreate(ctx context.Context, shifts []shift.ScheduledShift) error {
	for _, s := range shifts {
		r.shifts[s.ID] = s
	}
	return nil
}

func (r *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.ScheduledShift, error) {
	s, ok := r.shifts[id]
	if !ok {
		return shift.ScheduledShift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (r *fakeShiftRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]shift.ScheduledShift, error) {
	return nil, nil
}

func (r *fakeShiftRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]shift.ScheduledShift, error) {
	return nil, nil
}

func (r *fakeShiftRepo) ListUnpaidByDate(ctx context.Context, date time.Time) ([]shift.ScheduledShift, error) {
	var out []shift.ScheduledShift
	for _, s := range r.shifts {
		if !s.HasPayslip && s.ShiftDate.Equal(date) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeShiftRepo) ExistsInRange(ctx context.Context, from, to time.Time) (bool, error) {
	return false, nil
}

func (r *fakeShiftRepo) Update(ctx context.Context, s shift.ScheduledShift) error {
	r.shifts[s.ID] = s
	return nil
}

func (r *fakeShiftRepo) MarkPaid(ctx context.Context, ids []string) error {
	for _, id := range ids {
		s := r.shifts[id]
		s.HasPayslip = true
		r.shifts[id] = s
	}
	return nil
}

func (r *fakeShiftRepo) Delete(ctx context.Context, id string) error {
	delete(r.shifts, id)
	return nil
}

type fakeWageRepo struct {
	records []payroll.WageRecord
}

func (r *fakeWageRepo) BulkCreate(ctx context.Context, records []payroll.WageRecord) error {
	r.records = append(r.records, records...)
	return nil
}

func (r *fakeWageRepo) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.WageRecord, error) {
	return nil, nil
}

func (r *fakeWageRepo) ListByPayDateRange(ctx context.Context, from, to time.Time) ([]payroll.WageRecord, error) {
	return nil, nil
}

var payDate = time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC)

func payrollFixture() (*Service, *fakeShiftRepo, *fakeWageRepo) {
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"ft-1":  {ID: "ft-1", PositionType: employee.PositionFullTime, PayRate: decimal.RequireFromString("30")},
		"cas-1": {ID: "cas-1", PositionType: employee.PositionCasual, PayRate: decimal.RequireFromString("20")},
	}}
	// 09:00-17:30 with a 30 minute break is an 8 hour day.
	templateRepo := &fakeTemplateRepo{templates: map[string]shift.ShiftTemplate{
		"tpl-1": {ID: "tpl-1", Name: shift.TemplateMorning, StartTime: "09:00", EndTime: "17:30", BreakPolicy: shift.BreakRegular},
	}}
	shiftRepo := &fakeShiftRepo{shifts: make(map[string]shift.ScheduledShift)}
	wageRepo := &fakeWageRepo{}

	svc := NewService(nil, shiftRepo, templateRepo, wageRepo, employeeRepo)
	return svc, shiftRepo, wageRepo
}

func TestRunDailyComputesSalaries(t *testing.T) {
	svc, shiftRepo, wageRepo := payrollFixture()
	shiftRepo.shifts["sh-1"] = shift.ScheduledShift{
		ID: "sh-1", ShiftDate: payDate, StaffID: "ft-1", ShiftTemplateID: "tpl-1",
	}
	shiftRepo.shifts["sh-2"] = shift.ScheduledShift{
		ID: "sh-2", ShiftDate: payDate, StaffID: "cas-1", ShiftTemplateID: "tpl-1",
	}

	count, err := svc.RunDaily(context.Background(), payDate)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, wageRepo.records, 2)

	byEmployee := make(map[string]payroll.WageRecord)
	for _, rec := range wageRepo.records {
		byEmployee[rec.EmployeeID] = rec
	}

	// Full-timer: 8h x 30.
	assert.Equal(t, "240.00", byEmployee["ft-1"].Salary.StringFixed(2))
	// Casual: 8h x 20 x 1.25 loading.
	assert.Equal(t, "200.00", byEmployee["cas-1"].Salary.StringFixed(2))

	for _, rec := range wageRepo.records {
		assert.True(t, rec.PayDate.Equal(payDate))
	}
}

func TestRunDailyMarksShiftsPaidAndIsIdempotent(t *testing.T) {
	svc, shiftRepo, wageRepo := payrollFixture()
	shiftRepo.shifts["sh-1"] = shift.ScheduledShift{
		ID: "sh-1", ShiftDate: payDate, StaffID: "ft-1", ShiftTemplateID: "tpl-1",
	}

	count, err := svc.RunDaily(context.Background(), payDate)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, shiftRepo.shifts["sh-1"].HasPayslip)

	// A second run over the same date finds nothing left to pay.
	count, err = svc.RunDaily(context.Background(), payDate)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Len(t, wageRepo.records, 1)
}

func TestRunDailyPaysCoverWorker(t *testing.T) {
	svc, shiftRepo, wageRepo := payrollFixture()
	alt := "cas-1"
	shiftRepo.shifts["sh-1"] = shift.ScheduledShift{
		ID: "sh-1", ShiftDate: payDate, StaffID: "ft-1", ShiftTemplateID: "tpl-1",
		CoverShift: true, AlternativeStaffID: &alt,
	}

	count, err := svc.RunDaily(context.Background(), payDate)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, wageRepo.records, 1)

	// The stand-in earns the wage at their own casual-loaded rate.
	assert.Equal(t, "cas-1", wageRepo.records[0].EmployeeID)
	assert.Equal(t, "200.00", wageRepo.records[0].Salary.StringFixed(2))
}

func TestRunDailySkipsOtherDates(t *testing.T) {
	svc, shiftRepo, wageRepo := payrollFixture()
	shiftRepo.shifts["sh-1"] = shift.ScheduledShift{
		ID: "sh-1", ShiftDate: payDate.AddDate(0, 0, 1), StaffID: "ft-1", ShiftTemplateID: "tpl-1",
	}

	count, err := svc.RunDaily(context.Background(), payDate)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, wageRepo.records)
	assert.False(t, shiftRepo.shifts["sh-1"].HasPayslip)
}
