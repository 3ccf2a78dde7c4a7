package shift

import "errors"

var (
	ErrShiftNotFound     = errors.New("Shift not found")
	ErrInvalidType       = errors.New("Invalid shift type")
	ErrInvalidPriority   = errors.New("Invalid shift priority")
	ErrInvalidStatus     = errors.New("Invalid shift status")
	ErrInvalidPhase      = errors.New("Invalid policy phase")
	ErrEndBeforeStart    = errors.New("End date must not be before start date")
	ErrSpanTooLong       = errors.New("Shift span exceeds the maximum number of days")
	ErrOffAdminOnly      = errors.New("Off days can only be created by an admin")
	ErrNormalUnavailable = errors.New("Normal priority leave is not available in the current phase")
	ErrTierAlreadyUsed   = errors.New("Priority tier already used this year")
)
