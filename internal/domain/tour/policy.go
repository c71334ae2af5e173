package tour

import (
	"tourism-api/internal/domain/capacity"
	"tourism-api/internal/pkg/errs"
)

type Decision int

const (
	DecisionCreate Decision = iota + 1
	DecisionMerge
)

func (d Decision) String() string {
	switch d {
	case DecisionCreate:
		return "create"
	case DecisionMerge:
		return "merge"
	default:
		return "unknown"
	}
}

// Policy decides whether a booking request fits into a tour.
//
// With UnboundedFirstBooking set, a tour without any reservation admits the
// first booking whatever its size. Otherwise the first booking is checked
// against MaxGuests like every other.
type Policy struct {
	UnboundedFirstBooking bool
}

// Admit runs against usage read under the tour's capacity lock. hasExisting
// tells whether the user already holds a reservation for the tour.
func (p Policy) Admit(t Tour, usage capacity.Usage, hasExisting bool, requested int) (Decision, error) {
	if requested <= 0 {
		return 0, ErrInvalidGuestsCount
	}
	if p.UnboundedFirstBooking && usage.Empty() {
		return DecisionCreate, nil
	}

	remaining := usage.Remaining(t.MaxGuests)
	if remaining <= 0 {
		return 0, errs.CapacityExhausted()
	}
	if requested > remaining {
		return 0, errs.CapacityExceeded(remaining)
	}
	if hasExisting {
		return DecisionMerge, nil
	}
	return DecisionCreate, nil
}
