package update_booking

import (
	"github.com/playden/GPR-BookingService/internal/domain"
	"github.com/playden/GPR-BookingService/internal/service/bookings/models"
)

// UpdateBookingRequest HTTP request model
// Обновлять можно статус и пожелания, остальные поля неизменяемы
type UpdateBookingRequest struct {
	Status          *string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	SpecialRequests *string `json:"specialRequests,omitempty" validate:"omitempty,max=500"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBookingRequest) ToServiceRequest(actor domain.Actor) *models.UpdateBookingRequest {
	return &models.UpdateBookingRequest{
		Actor:           actor,
		Status:          r.Status,
		SpecialRequests: r.SpecialRequests,
	}
}
