package leave

import (
	"testing"

	"github.com/rosterhq/roster-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAllowedTransition(t *testing.T) {
	tests := []struct {
		old     leave.LeaveRequestStatus
		new     leave.LeaveRequestStatus
		allowed bool
	}{
		{leave.LeaveRequestStatusPending, leave.LeaveRequestStatusApproved, true},
		{leave.LeaveRequestStatusPending, leave.LeaveRequestStatusRejected, true},
		{leave.LeaveRequestStatusPending, leave.LeaveRequestStatusCanceled, true},
		{leave.LeaveRequestStatusApproved, leave.LeaveRequestStatusCanceled, true},
		{leave.LeaveRequestStatusApproved, leave.LeaveRequestStatusRejected, false},
		{leave.LeaveRequestStatusApproved, leave.LeaveRequestStatusPending, false},
		{leave.LeaveRequestStatusRejected, leave.LeaveRequestStatusApproved, false},
		{leave.LeaveRequestStatusCanceled, leave.LeaveRequestStatusPending, false},
	}

	for _, tt := range tests {
		got := allowedTransition(tt.old, tt.new)
		assert.Equal(t, tt.allowed, got, "%s -> %s", tt.old, tt.new)
	}
}

func TestTransitionDelta(t *testing.T) {
	hours := decimal.RequireFromString("15.2")

	annualReq := leave.LeaveRequest{LeaveType: leave.LeaveTypeAnnual, LeaveHours: hours}
	sickReq := leave.LeaveRequest{LeaveType: leave.LeaveTypeSick, LeaveHours: hours}
	unpaidReq := leave.LeaveRequest{LeaveType: leave.LeaveTypeUnpaid, LeaveHours: hours}

	// Approval books the hours against the matching counter.
	delta := transitionDelta(annualReq, leave.LeaveRequestStatusPending, leave.LeaveRequestStatusApproved)
	assert.Equal(t, "15.2", delta.Annual.String())
	assert.True(t, delta.Sick.IsZero())

	delta = transitionDelta(sickReq, leave.LeaveRequestStatusPending, leave.LeaveRequestStatusApproved)
	assert.True(t, delta.Annual.IsZero())
	assert.Equal(t, "15.2", delta.Sick.String())

	// Canceling an approved request books them back.
	delta = transitionDelta(annualReq, leave.LeaveRequestStatusApproved, leave.LeaveRequestStatusCanceled)
	assert.Equal(t, "-15.2", delta.Annual.String())

	// Rejection and pending cancellation leave the ledger alone.
	delta = transitionDelta(annualReq, leave.LeaveRequestStatusPending, leave.LeaveRequestStatusRejected)
	assert.True(t, delta.IsZero())

	delta = transitionDelta(annualReq, leave.LeaveRequestStatusPending, leave.LeaveRequestStatusCanceled)
	assert.True(t, delta.IsZero())

	// Untracked leave types never touch the counters.
	delta = transitionDelta(unpaidReq, leave.LeaveRequestStatusPending, leave.LeaveRequestStatusApproved)
	assert.True(t, delta.IsZero())
}
