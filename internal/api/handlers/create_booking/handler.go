package create_booking

import (
	"errors"
	"net/http"

	"github.com/playden/GPR-BookingService/internal/api/handlers"
	"github.com/playden/GPR-BookingService/internal/api/middleware"
	createBooking "github.com/playden/GPR-BookingService/internal/usecase/create_booking"
	"github.com/playden/GPR-BookingService/pkg/types"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime           = "некорректный формат времени, ожидается HH:MM"
	msgSlotTaken             = "выбранный временной слот уже занят"
	msgParlourNotFound       = "игровой клуб не найден"
	msgDeviceNotFound        = "устройство не найдено"
	msgConsoleNotFound       = "консоль не найдена"
	msgConsoleUnavailable    = "консоль недоступна для бронирования"
	msgDateInPast            = "дата бронирования уже прошла"
	msgEndBeforeStart        = "время окончания должно быть позже времени начала"
	msgInvalidBookingRequest = "некорректные данные бронирования"
	msgUnauthorized          = "требуется аутентификация"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(actor.UserID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: user_id=%d, device_id=%d, console=%s",
				actor.UserID, req.DeviceID, req.ConsoleUnitID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrParlourNotFound):
			h.logger.Warn("POST /bookings - Parlour not found: parlour_id=%d", req.ParlourID)
			handlers.RespondNotFound(w, msgParlourNotFound)

		case errors.Is(err, createBooking.ErrDeviceNotFound):
			h.logger.Warn("POST /bookings - Device not found: device_id=%d, parlour_id=%d", req.DeviceID, req.ParlourID)
			handlers.RespondNotFound(w, msgDeviceNotFound)

		case errors.Is(err, createBooking.ErrConsoleUnitNotFound):
			h.logger.Warn("POST /bookings - Console unit not found: device_id=%d, console=%s", req.DeviceID, req.ConsoleUnitID)
			handlers.RespondNotFound(w, msgConsoleNotFound)

		case errors.Is(err, createBooking.ErrConsoleUnitUnavailable):
			h.logger.Warn("POST /bookings - Console unit unavailable: device_id=%d, console=%s", req.DeviceID, req.ConsoleUnitID)
			handlers.RespondConflict(w, msgConsoleUnavailable)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: user_id=%d, date=%s", actor.UserID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrInvalidTimeFormat):
			h.logger.Warn("POST /bookings - Invalid time format: start=%s, end=%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createBooking.ErrEndBeforeStart):
			h.logger.Warn("POST /bookings - End before start: start=%s, end=%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgEndBeforeStart)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingRequest)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, device_id=%d, error=%v",
				actor.UserID, req.DeviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, device_id=%d",
		result.ID, actor.UserID, req.DeviceID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
