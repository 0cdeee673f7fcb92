package check_date

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	calendar Calendar
	logger   Logger
}

func NewHandler(calendar Calendar, logger Logger) *Handler {
	return &Handler{
		calendar: calendar,
		logger:   logger,
	}
}

// Handle GET /api/v1/calendar/selectable?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /calendar/selectable - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := h.calendar.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /calendar/selectable - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SelectableResponse{
		Date:       dateStr,
		Selectable: h.calendar.IsSelectable(date),
		ClosedDay:  strings.ToLower(h.calendar.ClosedDay().String()),
	})
}
