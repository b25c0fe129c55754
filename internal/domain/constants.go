package domain

// Operating hours of the daily slot grid.
// The grid is fixed for every parlour: hourly slots from 10:00 up to 22:00,
// i.e. [10:00-11:00) ... [21:00-22:00), 12 slots per day. The parlour's
// weekly availability schedule is stored for display but does not drive
// slot generation.
const (
	OpeningHour         = 10
	ClosingHour         = 22
	SlotDurationMinutes = 60
)

// Business validation constants
const (
	MaxSpecialRequestsLength = 500
	MaxParlourNameLength     = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
