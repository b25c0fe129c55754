package get_device_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/playden/GPR-BookingService/internal/api/handlers"
	"github.com/playden/GPR-BookingService/internal/domain"
	deviceAvailability "github.com/playden/GPR-BookingService/internal/usecase/get_device_availability"
)

const (
	msgInvalidDeviceID = "некорректный ID устройства"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDate     = "требуется query-параметр date"
	msgNotFound        = "устройство не найдено"
)

type Handler struct {
	useCase GetDeviceAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetDeviceAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/devices/{deviceId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем deviceId из URL
	vars := mux.Vars(r)
	deviceIDStr := vars["deviceId"]

	deviceID, err := strconv.ParseInt(deviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /devices/{id}/availability - Invalid device ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDeviceID)
		return
	}

	// Извлекаем дату из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /devices/{id}/availability - Missing date parameter: device_id=%d", deviceID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /devices/{id}/availability - Invalid date=%s: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &deviceAvailability.Request{
		DeviceID: deviceID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, deviceAvailability.ErrDeviceNotFound):
			h.logger.Warn("GET /devices/{id}/availability - Device not found: device_id=%d", deviceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, deviceAvailability.ErrInvalidInput):
			h.logger.Warn("GET /devices/{id}/availability - Invalid input: device_id=%d, error=%v", deviceID, err)
			handlers.RespondBadRequest(w, msgInvalidDeviceID)

		default:
			h.logger.Error("GET /devices/{id}/availability - Failed to get availability: device_id=%d, error=%v",
				deviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /devices/{id}/availability - Availability retrieved successfully: device_id=%d, date=%s, units=%d",
		deviceID, dateStr, len(result.Units))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
