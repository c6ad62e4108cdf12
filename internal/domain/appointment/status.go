package appointment

import "github.com/barberdesk/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal states admit no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Blocking statuses hold their time slot against new bookings.
func (s Status) Blocking() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Transitions
// ===============================

// CanTransition enforces the status graph:
//
//	pending   -> confirmed | cancelled
//	confirmed -> completed | cancelled
func CanTransition(from, to Status) error {
	switch from {
	case StatusPending:
		if to == StatusConfirmed || to == StatusCancelled {
			return nil
		}
	case StatusConfirmed:
		if to == StatusCompleted || to == StatusCancelled {
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeInvalidState)
}

// InitialStatus is pending unless the booking flow elects immediate
// confirmation.
func InitialStatus(confirm bool) Status {
	if confirm {
		return StatusConfirmed
	}
	return StatusPending
}
