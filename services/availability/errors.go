package availability

import "errors"

var (
	// ErrUnknownWeekday rejects a day key outside monday..sunday.
	ErrUnknownWeekday = errors.New("unknown weekday")
	// ErrInvalidSlot rejects a slot that is not "HH:00" inside the operating window.
	ErrInvalidSlot = errors.New("invalid slot")
	// ErrPersistFailed wraps a failed write. The in-memory change is kept.
	ErrPersistFailed = errors.New("failed to persist availability")
)

// IsPersistFailure reports whether err only means the change was not saved.
func IsPersistFailure(err error) bool {
	return errors.Is(err, ErrPersistFailed)
}
