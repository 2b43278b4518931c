package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

type LeaveType string

const (
	LeaveTypeAnnual    LeaveType = "annual"
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypeMaternity LeaveType = "maternity"
	LeaveTypePersonal  LeaveType = "personal"
	LeaveTypeUnpaid    LeaveType = "unpaid"
	LeaveTypeNoShow    LeaveType = "no_show"
)

var LeaveTypeValues = []string{
	string(LeaveTypeAnnual),
	string(LeaveTypeSick),
	string(LeaveTypeMaternity),
	string(LeaveTypePersonal),
	string(LeaveTypeUnpaid),
	string(LeaveTypeNoShow),
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
	LeaveRequestStatusCanceled LeaveRequestStatus = "canceled"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	LeaveHours decimal.Decimal
	Reason     string

	Status      LeaveRequestStatus
	RequestedAt time.Time
	ReviewedAt  *time.Time
	ReviewedBy  *string

	// Joined fields (for responses)
	EmployeeName *string
	ReviewerName *string
}

// LeaveBalance holds the running used-hours counters for one employee.
// Available hours are never stored; they are derived from the accrual
// formula at read time.
type LeaveBalance struct {
	ID              string
	EmployeeID      string
	AnnualLeaveUsed decimal.Decimal
	SickLeaveUsed   decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
