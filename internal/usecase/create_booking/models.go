package create_booking

import (
	"time"

	"github.com/playden/GPR-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          int64            // ID пользователя
	ParlourID       int64            // ID парлора
	DeviceID        int64            // ID устройства
	ConsoleUnitID   string           // consoleId внутри устройства
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала, например "10:00"
	EndTime         types.TimeString // Время окончания, например "13:00"
	SpecialRequests *string          // Пожелания (опционально, до 500 символов)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	UserID        int64
	ParlourID     int64
	DeviceID      int64
	ConsoleUnitID string
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString

	// Производные поля, вычисленные валидатором
	DurationHours float64 // часы, дробные допустимы
	TotalPrice    float64 // DurationHours * почасовая цена парлора

	Status          string
	PaymentStatus   string
	SpecialRequests *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
