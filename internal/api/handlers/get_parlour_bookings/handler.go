package get_parlour_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/playden/GPR-BookingService/internal/api/handlers"
	"github.com/playden/GPR-BookingService/internal/domain"
	"github.com/playden/GPR-BookingService/internal/service/bookings"
	"github.com/playden/GPR-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidParlourID = "некорректный ID игрового клуба"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDate      = "требуется query-параметр date"
	msgNotFound         = "игровой клуб не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/parlours/{parlourId}/bookings?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем parlourId из URL
	vars := mux.Vars(r)
	parlourIDStr := vars["parlourId"]

	parlourID, err := strconv.ParseInt(parlourIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /parlours/{id}/bookings - Invalid parlour ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParlourID)
		return
	}

	// Извлекаем дату из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /parlours/{id}/bookings - Missing date parameter: parlour_id=%d", parlourID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /parlours/{id}/bookings - Invalid date=%s: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Получаем занятые интервалы клуба
	result, err := h.service.GetParlourBookings(r.Context(), &models.GetParlourBookingsRequest{
		ParlourID: parlourID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrParlourNotFound):
			h.logger.Warn("GET /parlours/{id}/bookings - Parlour not found: parlour_id=%d", parlourID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /parlours/{id}/bookings - Invalid input: parlour_id=%d, error=%v", parlourID, err)
			handlers.RespondBadRequest(w, msgInvalidParlourID)

		default:
			h.logger.Error("GET /parlours/{id}/bookings - Failed to get bookings: parlour_id=%d, error=%v",
				parlourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /parlours/{id}/bookings - Bookings retrieved successfully: parlour_id=%d, date=%s, count=%d",
		parlourID, dateStr, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
