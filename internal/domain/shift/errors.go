package shift

import "errors"

var (
	ErrTemplateNotFound   = errors.New("Shift template not found")
	ErrShiftNotFound      = errors.New("Scheduled shift not found")
	ErrCoverStaffRequired = errors.New("alternative_staff is required for a cover shift")
)
