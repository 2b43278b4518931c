package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("Leave request not found")
	ErrBalanceNotFound      = errors.New("Leave balance not found")
	ErrDuplicateRequest     = errors.New("An existing leave request matches this period")
	ErrInvalidTransition    = errors.New("Illegal leave request status transition")
	ErrSelfReview           = errors.New("You cannot review your own leave request")
	ErrReviewForbidden      = errors.New("Only staff can review leave requests")
	ErrCancelForbidden      = errors.New("Only the requester or staff can cancel a leave request")
)
