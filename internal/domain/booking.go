package domain

import (
	"time"

	"github.com/playden/GPR-BookingService/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// PaymentStatus represents the payment state of a booking.
// Independent axis from BookingStatus; stored but not interpreted by
// the scheduling core.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking represents a console-unit rental booking in the system
type Booking struct {
	ID            int64
	UserID        int64
	ParlourID     int64
	DeviceID      int64
	ConsoleUnitID string // consoleId within the device, e.g. "PS5-2"

	BookingDate time.Time        // calendar date, no time component
	StartTime   types.TimeString // "10:00"
	EndTime     types.TimeString // "13:00"

	// Derived at validation time and persisted verbatim so history can be
	// re-displayed without recomputation
	DurationHours float64
	TotalPrice    float64

	Status        BookingStatus
	PaymentStatus PaymentStatus
	PaymentID     *string

	SpecialRequests *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status != StatusCompleted && b.Status != StatusCancelled
}

// CanBeUpdated returns true if the booking can still be updated
func (b *Booking) CanBeUpdated() bool {
	return b.Status != StatusCompleted && b.Status != StatusCancelled
}

// Actor is the authenticated identity performing an operation.
// How identity is established is an external concern; the core only needs
// the user id and the admin flag.
type Actor struct {
	UserID  int64
	IsAdmin bool
}

// MayManage returns true if the actor owns the booking or is an admin
func (b *Booking) MayManage(actor Actor) bool {
	return b.UserID == actor.UserID || actor.IsAdmin
}

// UserBookingsFilter фильтр для получения бронирований пользователя
type UserBookingsFilter struct {
	UserID int64
	Status *BookingStatus // опционально, если nil - все статусы
}
