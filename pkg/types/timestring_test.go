package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid morning", "10:00", false},
		{"valid midnight", "00:00", false},
		{"valid end of day", "23:59", false},
		{"valid half hour", "13:30", false},
		{"empty", "", true},
		{"no colon", "1000", true},
		{"hour out of range", "24:00", true},
		{"minute out of range", "10:60", true},
		{"too short", "9:00", true},
		{"too long", "10:00:00", true},
		{"garbage", "ab:cd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TimeString(tt.value).Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("15:45")
	require.NoError(t, err)
	assert.Equal(t, "15:45", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 15, 9, 5, 33, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), ts)
}

func TestTimeString_MinutesUntil(t *testing.T) {
	minutes, err := TimeString("10:00").MinutesUntil("13:30")
	require.NoError(t, err)
	assert.Equal(t, 210, minutes)

	// Обратное направление дает отрицательную разницу
	minutes, err = TimeString("13:30").MinutesUntil("10:00")
	require.NoError(t, err)
	assert.Equal(t, -210, minutes)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("10:00").IsZero())
}
