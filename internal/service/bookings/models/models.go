package models

import (
	"errors"
	"time"

	"github.com/playden/GPR-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Actor domain.Actor
}

// UpdateBookingRequest запрос на обновление бронирования
// Обновлять можно статус и пожелания, остальные поля неизменяемы
type UpdateBookingRequest struct {
	Actor           domain.Actor
	Status          *string
	SpecialRequests *string
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	Actor  domain.Actor
	UserID int64
	Status *string
}

// GetParlourBookingsRequest запрос на получение бронирований клуба на дату
type GetParlourBookingsRequest struct {
	ParlourID int64
	Date      time.Time
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	ParlourID     int64   `json:"parlourId"`
	DeviceID      int64   `json:"deviceId"`
	ConsoleUnitID string  `json:"consoleUnitId"`
	BookingDate   string  `json:"bookingDate"` // "2026-03-15"
	StartTime     string  `json:"startTime"`   // "10:00"
	EndTime       string  `json:"endTime"`     // "12:00"
	DurationHours float64 `json:"durationHours"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`

	PaymentID       *string `json:"paymentId,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ParlourBookingSlot публичная проекция бронирования клуба: занятый
// интервал без данных о пользователе и оплате
type ParlourBookingSlot struct {
	DeviceID      int64  `json:"deviceId"`
	ConsoleUnitID string `json:"consoleUnitId"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Status        string `json:"status"`
}

// ParlourBookingsResponse ответ с занятыми интервалами клуба на дату
type ParlourBookingsResponse struct {
	ParlourID int64                `json:"parlourId"`
	Date      string               `json:"date"`
	Bookings  []ParlourBookingSlot `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		ParlourID:       b.ParlourID,
		DeviceID:        b.DeviceID,
		ConsoleUnitID:   b.ConsoleUnitID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		DurationHours:   b.DurationHours,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		PaymentID:       b.PaymentID,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainParlourBookings конвертирует бронирования клуба в публичную проекцию
func FromDomainParlourBookings(parlourID int64, date time.Time, bookings []*domain.Booking) *ParlourBookingsResponse {
	resp := &ParlourBookingsResponse{
		ParlourID: parlourID,
		Date:      date.Format(domain.DateFormat),
		Bookings:  make([]ParlourBookingSlot, 0, len(bookings)),
	}

	for _, b := range bookings {
		if b == nil || !b.IsActive() {
			continue
		}
		resp.Bookings = append(resp.Bookings, ParlourBookingSlot{
			DeviceID:      b.DeviceID,
			ConsoleUnitID: b.ConsoleUnitID,
			StartTime:     b.StartTime.String(),
			EndTime:       b.EndTime.String(),
			Status:        string(b.Status),
		})
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
