package domain

// allowedTransitions is the booking lifecycle table:
// pending -> confirmed | cancelled
// confirmed -> completed | cancelled
// completed and cancelled are terminal.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether a booking may move from one status to
// another. Transitions into the current status are not allowed (cancelling
// an already cancelled booking is an invalid transition).
func CanTransition(from, to BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidBookingStatuses lists every recognized booking status
var ValidBookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// IsValidStatus returns true if s is a recognized booking status
func IsValidStatus(s BookingStatus) bool {
	for _, valid := range ValidBookingStatuses {
		if s == valid {
			return true
		}
	}
	return false
}
