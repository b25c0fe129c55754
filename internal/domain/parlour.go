package domain

import (
	"time"

	"github.com/playden/GPR-BookingService/pkg/types"
)

// DaySchedule is one weekday entry of a parlour's display schedule
type DaySchedule struct {
	Open  bool
	Start *types.TimeString
	End   *types.TimeString
}

// WeeklyAvailability is the parlour's advertised opening schedule.
// Display-only: slot generation runs on the fixed grid (see constants.go),
// this schedule is an override hook for an outer layer.
type WeeklyAvailability struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// Parlour represents a gaming-console rental parlour
type Parlour struct {
	ID       int64
	Name     string
	Location string
	Price    float64 // hourly price, source of truth for booking totals
	OwnerID  int64

	// Display-only aggregates, not consulted by the scheduling core
	Rating     float64
	NumReviews int

	Availability WeeklyAvailability

	CreatedAt time.Time
}
