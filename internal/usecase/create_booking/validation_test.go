package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playden/GPR-BookingService/internal/domain"
	"github.com/playden/GPR-BookingService/pkg/ptr"
)

func validTestRequest() *Request {
	return &Request{
		UserID:        1,
		ParlourID:     10,
		DeviceID:      100,
		ConsoleUnitID: "PS5-1",
		Date:          time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		EndTime:       "13:00",
	}
}

func TestValidateRequest(t *testing.T) {
	longText := make([]byte, domain.MaxSpecialRequestsLength+1)
	for i := range longText {
		longText[i] = 'x'
	}

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr bool
	}{
		{"valid", func(r *Request) {}, false},
		{"valid with special requests", func(r *Request) {
			r.SpecialRequests = ptr.Ptr("у окна, пожалуйста")
		}, false},
		{"zero user", func(r *Request) { r.UserID = 0 }, true},
		{"negative parlour", func(r *Request) { r.ParlourID = -1 }, true},
		{"zero device", func(r *Request) { r.DeviceID = 0 }, true},
		{"empty console unit", func(r *Request) { r.ConsoleUnitID = "" }, true},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, true},
		{"empty start time", func(r *Request) { r.StartTime = "" }, true},
		{"empty end time", func(r *Request) { r.EndTime = "" }, true},
		{"special requests too long", func(r *Request) {
			r.SpecialRequests = ptr.Ptr(string(longText))
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTestRequest()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)

	// Вчера - в прошлом
	err := validateDate(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), now)
	assert.ErrorIs(t, err, ErrDateInPast)

	// Сегодня проходит даже вечером: сравниваются только календарные даты
	assert.NoError(t, validateDate(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), now))

	// Завтра проходит
	assert.NoError(t, validateDate(time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), now))
}

func TestValidateTimeRange(t *testing.T) {
	hours, err := validateTimeRange("10:00", "13:00")
	require.NoError(t, err)
	assert.Equal(t, 3.0, hours)

	// Дробная длительность допустима
	hours, err = validateTimeRange("10:00", "11:30")
	require.NoError(t, err)
	assert.Equal(t, 1.5, hours)

	_, err = validateTimeRange("13:00", "10:00")
	assert.ErrorIs(t, err, ErrEndBeforeStart)

	_, err = validateTimeRange("10:00", "10:00")
	assert.ErrorIs(t, err, ErrEndBeforeStart)

	_, err = validateTimeRange("25:00", "26:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestFindOverlap(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, StartTime: "10:00", EndTime: "12:00", Status: domain.StatusConfirmed},
		{ID: 2, StartTime: "12:00", EndTime: "14:00", Status: domain.StatusCancelled},
		{ID: 3, StartTime: "16:00", EndTime: "18:00", Status: domain.StatusPending},
	}

	// Пересечение с активным бронированием
	conflict := findOverlap(bookings, "11:00", "13:00")
	require.NotNil(t, conflict)
	assert.Equal(t, int64(1), conflict.ID)

	// Отмененное бронирование слот не занимает
	assert.Nil(t, findOverlap(bookings, "12:30", "13:30"))

	// Встык к активному - не конфликт
	assert.Nil(t, findOverlap(bookings, "12:00", "16:00"))

	// pending тоже занимает слот
	conflict = findOverlap(bookings, "17:00", "19:00")
	require.NotNil(t, conflict)
	assert.Equal(t, int64(3), conflict.ID)
}
