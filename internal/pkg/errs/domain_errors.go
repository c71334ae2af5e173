package errs

import (
	"errors"
	"fmt"
	"time"
)

// Outcome sentinels shared by the booking and rating coordinators.
// All of them are expected refusals; only ErrDatabaseOperationFailed is an internal failure.
var (
	ErrNotFound                 = errors.New("not found")
	ErrInvalidRequest           = errors.New("invalid request")
	ErrCapacityExceeded         = errors.New("capacity exceeded")
	ErrCapacityExhausted        = errors.New("capacity exhausted")
	ErrAlreadyRated             = errors.New("already rated")
	ErrCancellationWindowClosed = errors.New("cancellation window closed")

	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// CapacityError carries the capacity left in the pool at decision time.
type CapacityError struct {
	Remaining int
	exhausted bool
}

func CapacityExceeded(remaining int) error {
	return &CapacityError{Remaining: remaining}
}

func CapacityExhausted() error {
	return &CapacityError{Remaining: 0, exhausted: true}
}

func (e *CapacityError) Error() string {
	if e.exhausted {
		return "capacity exhausted: no places left"
	}
	return fmt.Sprintf("capacity exceeded: only %d places left", e.Remaining)
}

func (e *CapacityError) Is(target error) bool {
	if e.exhausted {
		return target == ErrCapacityExhausted
	}
	return target == ErrCapacityExceeded
}

// RemainingCapacity extracts the remaining capacity from a capacity refusal.
func RemainingCapacity(err error) (int, bool) {
	var ce *CapacityError
	if As(err, &ce) {
		return ce.Remaining, true
	}
	return 0, false
}

// CancellationWindowError carries the minimum lead time that was violated.
type CancellationWindowError struct {
	Threshold time.Duration
}

func CancellationWindowClosed(threshold time.Duration) error {
	return &CancellationWindowError{Threshold: threshold}
}

func (e *CancellationWindowError) Error() string {
	return fmt.Sprintf("cancellation window closed: reservations must be cancelled at least %s before the meal", FormatLead(e.Threshold))
}

func (e *CancellationWindowError) Is(target error) bool {
	return target == ErrCancellationWindowClosed
}

func CancellationThreshold(err error) (time.Duration, bool) {
	var we *CancellationWindowError
	if As(err, &we) {
		return we.Threshold, true
	}
	return 0, false
}

// FormatLead renders whole-hour thresholds as "12h" / "4h".
func FormatLead(d time.Duration) string {
	if d%time.Hour == 0 {
		return fmt.Sprintf("%dh", int(d/time.Hour))
	}
	return d.String()
}

// Invalid marks a validation failure as ErrInvalidRequest while keeping its message.
func Invalid(msg string) error {
	return Mark(New(msg), ErrInvalidRequest)
}

func NotFound(what string) error {
	return Mark(Newf("%s not found", what), ErrNotFound)
}
