package domain

import (
	"fmt"

	"github.com/playden/GPR-BookingService/pkg/types"
)

// Slot is one fixed interval on the canonical daily grid
type Slot struct {
	Start types.TimeString
	End   types.TimeString
}

// SlotState is the availability state of a slot for a console unit
type SlotState string

const (
	SlotAvailable   SlotState = "available"
	SlotBooked      SlotState = "booked"
	SlotMaintenance SlotState = "maintenance"
)

// SlotAvailability is a grid slot annotated with its state
type SlotAvailability struct {
	Start types.TimeString
	End   types.TimeString
	State SlotState
}

// ConsoleUnitAvailability is the per-unit result of the availability
// calculator: every grid slot with its computed state
type ConsoleUnitAvailability struct {
	ConsoleID string
	Slots     []SlotAvailability
}

// DailySlots returns the canonical daily grid: hourly slots from
// OpeningHour to ClosingHour, [10:00-11:00) ... [21:00-22:00).
// Pure and deterministic, always the same 12 slots.
func DailySlots() []Slot {
	slots := make([]Slot, 0, ClosingHour-OpeningHour)
	for hour := OpeningHour; hour < ClosingHour; hour++ {
		slots = append(slots, Slot{
			Start: types.TimeString(fmt.Sprintf("%02d:00", hour)),
			End:   types.TimeString(fmt.Sprintf("%02d:00", hour+1)),
		})
	}
	return slots
}

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one instant. Back-to-back intervals
// (one ends exactly where the other starts) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}
