package create_booking

import (
	"time"

	"github.com/playden/GPR-BookingService/internal/domain"
	createBooking "github.com/playden/GPR-BookingService/internal/usecase/create_booking"
	"github.com/playden/GPR-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ParlourID       int64   `json:"parlourId" validate:"required,gt=0"`
	DeviceID        int64   `json:"deviceId" validate:"required,gt=0"`
	ConsoleUnitID   string  `json:"consoleUnitId" validate:"required"`
	BookingDate     string  `json:"bookingDate" validate:"required"` // "2026-03-15"
	StartTime       string  `json:"startTime" validate:"required"`   // "10:00"
	EndTime         string  `json:"endTime" validate:"required"`     // "13:00"
	SpecialRequests *string `json:"specialRequests,omitempty" validate:"omitempty,max=500"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	ParlourID       int64   `json:"parlourId"`
	DeviceID        int64   `json:"deviceId"`
	ConsoleUnitID   string  `json:"consoleUnitId"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationHours   float64 `json:"durationHours"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время начала и окончания
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:          userID,
		ParlourID:       r.ParlourID,
		DeviceID:        r.DeviceID,
		ConsoleUnitID:   r.ConsoleUnitID,
		Date:            bookingDate,
		StartTime:       startTime,
		EndTime:         endTime,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		ParlourID:       resp.ParlourID,
		DeviceID:        resp.DeviceID,
		ConsoleUnitID:   resp.ConsoleUnitID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationHours:   resp.DurationHours,
		TotalPrice:      resp.TotalPrice,
		Status:          resp.Status,
		PaymentStatus:   resp.PaymentStatus,
		SpecialRequests: resp.SpecialRequests,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
