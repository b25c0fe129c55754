package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playden/GPR-BookingService/pkg/types"
)

func TestDailySlots(t *testing.T) {
	slots := DailySlots()

	require.Len(t, slots, 12)
	assert.Equal(t, types.TimeString("10:00"), slots[0].Start)
	assert.Equal(t, types.TimeString("11:00"), slots[0].End)
	assert.Equal(t, types.TimeString("21:00"), slots[11].Start)
	assert.Equal(t, types.TimeString("22:00"), slots[11].End)

	// Сетка непрерывна: конец каждого слота совпадает с началом следующего
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].End, slots[i].Start)
	}

	// Детерминированность: повторный вызов дает ту же сетку
	assert.Equal(t, slots, DailySlots())
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd types.TimeString
		want                       bool
	}{
		{"identical", "10:00", "12:00", "10:00", "12:00", true},
		{"partial overlap", "10:00", "12:00", "11:00", "13:00", true},
		{"containment", "10:00", "14:00", "11:00", "12:00", true},
		{"back-to-back", "10:00", "12:00", "12:00", "14:00", false},
		{"disjoint", "10:00", "11:00", "13:00", "14:00", false},
		{"one minute overlap", "10:00", "12:01", "12:00", "14:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Пересечение симметрично
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
