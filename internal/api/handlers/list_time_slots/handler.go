package list_time_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-BookingWizard/internal/usecase/get_available_slots"
)

const (
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput    = "некорректные параметры запроса"
	msgServiceNotFound = "услуга не найдена"
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	calendar DateParser
	logger   Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, calendar DateParser, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		calendar: calendar,
		logger:   logger,
	}
}

// Handle GET /api/v1/time-slots
// Query params: date (required, YYYY-MM-DD), serviceId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /time-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := h.calendar.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /time-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailableSlots.Request{Date: date}
	if query.Has("serviceId") {
		serviceID := query.Get("serviceId")
		req.ServiceID = &serviceID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /time-slots - Service not found: service_id=%s", *req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /time-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /time-slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /time-slots - Slots retrieved successfully: date=%s, count=%d", dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
