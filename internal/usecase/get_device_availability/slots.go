package get_device_availability

import "github.com/playden/GPR-BookingService/internal/domain"

// computeAvailability вычисляет состояние каждого слота дневной сетки для
// каждой консоли устройства. Чистая функция: одинаковый вход дает
// одинаковый выход, порядок консолей повторяет порядок в устройстве.
//
// Правила:
//   - консоль в статусе maintenance: все слоты maintenance, бронирования
//     не учитываются вовсе
//   - иначе слот booked, если пересекается хотя бы с одним активным
//     бронированием именно этой консоли, и available в остальных случаях
//   - бронирования с consoleId, которого нет в устройстве (устаревшие
//     данные), игнорируются
func computeAvailability(device *domain.Device, bookings []*domain.Booking) []domain.ConsoleUnitAvailability {
	grid := domain.DailySlots()

	// Группируем активные бронирования по консоли
	byUnit := make(map[string][]*domain.Booking, len(device.ConsoleUnits))
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		byUnit[booking.ConsoleUnitID] = append(byUnit[booking.ConsoleUnitID], booking)
	}

	result := make([]domain.ConsoleUnitAvailability, 0, len(device.ConsoleUnits))

	for _, unit := range device.ConsoleUnits {
		availability := domain.ConsoleUnitAvailability{
			ConsoleID: unit.ConsoleID,
			Slots:     make([]domain.SlotAvailability, 0, len(grid)),
		}

		if unit.Status == domain.UnitMaintenance {
			// Обслуживание перекрывает календарь целиком
			for _, slot := range grid {
				availability.Slots = append(availability.Slots, domain.SlotAvailability{
					Start: slot.Start,
					End:   slot.End,
					State: domain.SlotMaintenance,
				})
			}
			result = append(result, availability)
			continue
		}

		unitBookings := byUnit[unit.ConsoleID]
		for _, slot := range grid {
			state := domain.SlotAvailable
			for _, booking := range unitBookings {
				if domain.Overlaps(slot.Start, slot.End, booking.StartTime, booking.EndTime) {
					state = domain.SlotBooked
					break
				}
			}
			availability.Slots = append(availability.Slots, domain.SlotAvailability{
				Start: slot.Start,
				End:   slot.End,
				State: state,
			})
		}

		result = append(result, availability)
	}

	return result
}
