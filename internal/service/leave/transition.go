package leave

import (
	"github.com/rosterhq/roster-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

// balanceDelta is the signed change a status transition applies to the
// stored used-hours counters.
type balanceDelta struct {
	Annual decimal.Decimal
	Sick   decimal.Decimal
}

func (d balanceDelta) IsZero() bool {
	return d.Annual.IsZero() && d.Sick.IsZero()
}

// allowedTransition reports whether old -> new is a legal lifecycle move:
// pending may go to approved, rejected, or canceled; approved only to
// canceled; rejected and canceled are terminal.
func allowedTransition(old, new leave.LeaveRequestStatus) bool {
	switch old {
	case leave.LeaveRequestStatusPending:
		return new == leave.LeaveRequestStatusApproved ||
			new == leave.LeaveRequestStatusRejected ||
			new == leave.LeaveRequestStatusCanceled
	case leave.LeaveRequestStatusApproved:
		return new == leave.LeaveRequestStatusCanceled
	default:
		return false
	}
}

// transitionDelta returns the ledger mutation for a legal transition.
// Approving books the requested hours against the matching counter;
// canceling an approved request books them back. Leave types other than
// annual and sick never touch the ledger. The stored counters are
// deliberately not bounds-checked here.
func transitionDelta(req leave.LeaveRequest, old, new leave.LeaveRequestStatus) balanceDelta {
	var hours decimal.Decimal

	switch {
	case old == leave.LeaveRequestStatusPending && new == leave.LeaveRequestStatusApproved:
		hours = req.LeaveHours
	case old == leave.LeaveRequestStatusApproved && new == leave.LeaveRequestStatusCanceled:
		hours = req.LeaveHours.Neg()
	default:
		return balanceDelta{Annual: decimal.Zero, Sick: decimal.Zero}
	}

	switch req.LeaveType {
	case leave.LeaveTypeAnnual:
		return balanceDelta{Annual: hours, Sick: decimal.Zero}
	case leave.LeaveTypeSick:
		return balanceDelta{Annual: decimal.Zero, Sick: hours}
	default:
		return balanceDelta{Annual: decimal.Zero, Sick: decimal.Zero}
	}
}
