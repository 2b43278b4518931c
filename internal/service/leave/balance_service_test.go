package leave

import (
	"context"
	"testing"
	"time"

	"github.com/rosterhq/roster-backend-go/internal/domain/employee"
	"github.com/rosterhq/roster-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(value string) func() time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func datePtr(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestAvailableHoursEligibilityGates(t *testing.T) {
	svc := NewBalanceService(newFakeBalanceRepo(), newFakeEmployeeRepo()).
		WithClock(fixedClock("2026-06-20"))

	tests := []struct {
		name string
		emp  employee.Employee
	}{
		{
			name: "no start date",
			emp: employee.Employee{
				PositionType:      employee.PositionFullTime,
				PermanentPosition: true,
			},
		},
		{
			name: "terminated",
			emp: employee.Employee{
				PositionType:      employee.PositionFullTime,
				PermanentPosition: true,
				StartDate:         datePtr("2025-06-15"),
				EndDate:           datePtr("2026-01-31"),
			},
		},
		{
			name: "not permanent",
			emp: employee.Employee{
				PositionType: employee.PositionCasual,
				StartDate:    datePtr("2025-06-15"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			annual := svc.AvailableAnnualHours(tt.emp, leave.LeaveBalance{})
			sick := svc.AvailableSickHours(tt.emp, leave.LeaveBalance{})
			assert.True(t, annual.IsZero(), "annual should be zero, got %s", annual)
			assert.True(t, sick.IsZero(), "sick should be zero, got %s", sick)
		})
	}
}

func TestAvailableHoursAfterTwelveMonths(t *testing.T) {
	svc := NewBalanceService(newFakeBalanceRepo(), newFakeEmployeeRepo()).
		WithClock(fixedClock("2026-06-20"))

	emp := employee.Employee{
		PositionType:      employee.PositionFullTime,
		PermanentPosition: true,
		StartDate:         datePtr("2025-06-15"),
	}

	annual := svc.AvailableAnnualHours(emp, leave.LeaveBalance{})
	sick := svc.AvailableSickHours(emp, leave.LeaveBalance{})

	assert.Equal(t, "152.04", annual.StringFixed(2))
	assert.Equal(t, "75.96", sick.StringFixed(2))
}

func TestAvailableHoursPartTimeScaling(t *testing.T) {
	svc := NewBalanceService(newFakeBalanceRepo(), newFakeEmployeeRepo()).
		WithClock(fixedClock("2026-06-20"))

	emp := employee.Employee{
		PositionType:      employee.PositionPartTime,
		PermanentPosition: true,
		PartTimeRate:      decimal.RequireFromString("0.5"),
		StartDate:         datePtr("2025-06-15"),
	}

	annual := svc.AvailableAnnualHours(emp, leave.LeaveBalance{})
	assert.Equal(t, "76.02", annual.StringFixed(2))
}

func TestAvailableHoursSubtractsUsedAndFloorsAtZero(t *testing.T) {
	svc := NewBalanceService(newFakeBalanceRepo(), newFakeEmployeeRepo()).
		WithClock(fixedClock("2026-06-20"))

	emp := employee.Employee{
		PositionType:      employee.PositionFullTime,
		PermanentPosition: true,
		StartDate:         datePtr("2025-06-15"),
	}

	balance := leave.LeaveBalance{AnnualLeaveUsed: decimal.RequireFromString("40")}
	annual := svc.AvailableAnnualHours(emp, balance)
	assert.Equal(t, "112.04", annual.StringFixed(2))

	// Overdrawn counters clamp to zero rather than going negative.
	balance.AnnualLeaveUsed = decimal.RequireFromString("500")
	annual = svc.AvailableAnnualHours(emp, balance)
	assert.True(t, annual.IsZero())
}

func TestComputeAvailableMissingBalanceCountsAsZeroUsed(t *testing.T) {
	emp := employee.Employee{
		ID:                "emp-1",
		PositionType:      employee.PositionFullTime,
		PermanentPosition: true,
		StartDate:         datePtr("2025-06-15"),
	}

	svc := NewBalanceService(newFakeBalanceRepo(), newFakeEmployeeRepo(emp)).
		WithClock(fixedClock("2026-06-20"))

	summary, err := svc.ComputeAvailable(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "emp-1", summary.EmployeeID)
	assert.Equal(t, "152.04", summary.AvailableAnnual.StringFixed(2))
	assert.Equal(t, "75.96", summary.AvailableSick.StringFixed(2))
}

func TestSyncForPositionLifecycle(t *testing.T) {
	balanceRepo := newFakeBalanceRepo()
	svc := NewBalanceService(balanceRepo, newFakeEmployeeRepo())
	ctx := context.Background()

	fullTimer := employee.Employee{
		ID:           "emp-1",
		PositionType: employee.PositionFullTime,
		IsActive:     true,
	}
	require.NoError(t, svc.SyncForPosition(ctx, fullTimer))

	balance, err := balanceRepo.GetByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	assert.True(t, balance.AnnualLeaveUsed.IsZero())

	// Re-syncing must not reset an existing ledger.
	balance.AnnualLeaveUsed = decimal.RequireFromString("8")
	require.NoError(t, balanceRepo.Update(ctx, balance))
	require.NoError(t, svc.SyncForPosition(ctx, fullTimer))

	balance, err = balanceRepo.GetByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "8", balance.AnnualLeaveUsed.String())

	// Moving to casual drops the record and its counters.
	fullTimer.PositionType = employee.PositionCasual
	require.NoError(t, svc.SyncForPosition(ctx, fullTimer))

	_, err = balanceRepo.GetByEmployee(ctx, "emp-1")
	assert.ErrorIs(t, err, leave.ErrBalanceNotFound)
}
