package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/playden/GPR-BookingService/internal/domain"
	bookingRepo "github.com/playden/GPR-BookingService/internal/infra/storage/booking"
	parlourRepo "github.com/playden/GPR-BookingService/internal/infra/storage/parlour"
	"github.com/playden/GPR-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	parlourRepo ParlourRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	parlourRepo ParlourRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		parlourRepo: parlourRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование, админ - любое
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, actor.UserID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	// Проверяем права доступа
	if !booking.MayManage(actor) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Пользователь видит только свою историю, админ - любую
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, requested by user=%d", req.UserID, req.Actor.UserID)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Actor.UserID != req.UserID && !req.Actor.IsAdmin {
		s.logger.Warn("GetUserBookings: access denied for user=%d to bookings of user=%d", req.Actor.UserID, req.UserID)
		return nil, ErrAccessDenied
	}

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetParlourBookings получает занятые интервалы клуба на дату
// Публичный метод: возвращает проекцию без данных о пользователях
func (s *Service) GetParlourBookings(ctx context.Context, req *models.GetParlourBookingsRequest) (*models.ParlourBookingsResponse, error) {
	s.logger.Info("GetParlourBookings: fetching bookings for parlour=%d, date=%s",
		req.ParlourID, req.Date.Format(domain.DateFormat))

	if req.ParlourID <= 0 {
		return nil, fmt.Errorf("%w: parlourID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := s.parlourRepo.GetByID(ctx, req.ParlourID); err != nil {
		if errors.Is(err, parlourRepo.ErrParlourNotFound) {
			s.logger.Warn("GetParlourBookings: parlour id=%d not found", req.ParlourID)
			return nil, ErrParlourNotFound
		}
		s.logger.Error("GetParlourBookings: failed to get parlour id=%d: %v", req.ParlourID, err)
		return nil, fmt.Errorf("%w: GetParlourBookings - repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByParlourAndDate(ctx, req.ParlourID, req.Date)
	if err != nil {
		s.logger.Error("GetParlourBookings: repository error for parlour=%d: %v", req.ParlourID, err)
		return nil, fmt.Errorf("%w: GetParlourBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetParlourBookings: successfully fetched %d bookings for parlour=%d", len(bookings), req.ParlourID)
	return models.FromDomainParlourBookings(req.ParlourID, req.Date, bookings), nil
}

// Cancel отменяет бронирование (мягкое удаление)
// Пользователь может отменить только своё бронирование, админ - любое
// Завершённое или уже отменённое бронирование отменить нельзя
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.Actor.UserID)

	booking, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return err
	}

	// Проверяем права доступа
	if !booking.MayManage(req.Actor) {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.Actor.UserID, bookingID)
		return ErrAccessDenied
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Update обновляет бронирование
// Обновлять можно статус (с проверкой допустимости перехода) и пожелания
// Пользователь может менять только своё бронирование, админ - любое
func (s *Service) Update(ctx context.Context, bookingID int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%d by user=%d", bookingID, req.Actor.UserID)

	booking, err := s.getBooking(ctx, "Update", bookingID)
	if err != nil {
		return nil, err
	}

	// Проверяем права доступа
	if !booking.MayManage(req.Actor) {
		s.logger.Warn("Update: access denied for user=%d to update booking id=%d", req.Actor.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	// Завершённые и отменённые бронирования неизменяемы
	if !booking.CanBeUpdated() {
		s.logger.Warn("Update: booking id=%d cannot be updated, status=%s", bookingID, booking.Status)
		return nil, fmt.Errorf("%w: booking is %s", ErrInvalidTransition, booking.Status)
	}

	if req.Status != nil {
		newStatus, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("Update: invalid status=%s for booking id=%d", *req.Status, bookingID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		if newStatus != booking.Status {
			if !domain.CanTransition(booking.Status, newStatus) {
				s.logger.Warn("Update: invalid transition %s -> %s for booking id=%d", booking.Status, newStatus, bookingID)
				return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
			}
			booking.Status = newStatus
		}
	}

	if req.SpecialRequests != nil {
		if len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
			s.logger.Warn("Update: special requests too long for booking id=%d", bookingID)
			return nil, fmt.Errorf("%w: special requests must be at most %d characters",
				ErrInvalidInput, domain.MaxSpecialRequestsLength)
		}
		booking.SpecialRequests = req.SpecialRequests
	}

	updated, err := s.bookingRepo.Update(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%d not found during update", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking id=%d, status=%s", bookingID, updated.Status)
	return models.FromDomainBooking(updated), nil
}

// Вспомогательные методы

// getBooking загружает бронирование с единообразным маппингом ошибок репозитория
func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
