package get_device_availability

import (
	"github.com/playden/GPR-BookingService/internal/domain"
	deviceAvailability "github.com/playden/GPR-BookingService/internal/usecase/get_device_availability"
)

// SlotResponse один слот дневной сетки
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
	State     string `json:"state"`     // available | booked | maintenance
}

// ConsoleUnitResponse сетка слотов одной консоли
type ConsoleUnitResponse struct {
	ConsoleID string         `json:"consoleId"`
	Slots     []SlotResponse `json:"slots"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	DeviceID     int64                 `json:"deviceId"`
	Date         string                `json:"date"`
	DeviceType   string                `json:"deviceType"`
	PricePerHour float64               `json:"pricePerHour"`
	Units        []ConsoleUnitResponse `json:"units"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *deviceAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		DeviceID:     resp.DeviceID,
		Date:         resp.Date.Format(domain.DateFormat),
		DeviceType:   string(resp.DeviceType),
		PricePerHour: resp.PricePerHour,
		Units:        make([]ConsoleUnitResponse, 0, len(resp.Units)),
	}

	for _, unit := range resp.Units {
		unitResp := ConsoleUnitResponse{
			ConsoleID: unit.ConsoleID,
			Slots:     make([]SlotResponse, 0, len(unit.Slots)),
		}
		for _, slot := range unit.Slots {
			unitResp.Slots = append(unitResp.Slots, SlotResponse{
				StartTime: slot.Start.String(),
				EndTime:   slot.End.String(),
				State:     string(slot.State),
			})
		}
		out.Units = append(out.Units, unitResp)
	}

	return out
}
