package appointment

import (
	"time"

	"github.com/lanavaja/barber-platform/internal/httperr"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusNoShow    Status = "NO_SHOW"
)

const (
	PaymentUnpaid = "UNPAID"
	PaymentPaid   = "PAID"
)

// CancellationNotice is the minimum lead time a non-admin needs to cancel.
const CancellationNotice = 24 * time.Hour

// IsValidStatus reports whether s is one of the known lifecycle states.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// IsActive reports whether the appointment still occupies its slot.
func IsActive(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanCancelAt enforces the 24-hour cancellation rule. Admins bypass it.
func CanCancelAt(start, now time.Time, isAdmin bool) error {
	if isAdmin {
		return nil
	}
	if start.Sub(now) < CancellationNotice {
		return httperr.ErrBusiness("cancellation_window")
	}
	return nil
}

// CanComplete defines from which states an appointment may be completed.
func CanComplete(current Status) error {
	if !IsActive(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
