package get_device_availability

import (
	"time"

	"github.com/playden/GPR-BookingService/internal/domain"
)

// Request модель запроса на получение доступности консолей устройства
type Request struct {
	DeviceID int64     // ID устройства
	Date     time.Time // Дата, для которой считается доступность
}

// Response модель ответа: сетка слотов по каждой консоли устройства
type Response struct {
	DeviceID     int64
	Date         time.Time
	DeviceType   domain.DeviceType
	PricePerHour float64
	Units        []domain.ConsoleUnitAvailability
}
