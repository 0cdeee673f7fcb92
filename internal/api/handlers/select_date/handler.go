package select_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers"
	"github.com/m04kA/SMC-BookingWizard/internal/service/wizards"
	"github.com/m04kA/SMC-BookingWizard/internal/service/wizards/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateNotSelectable  = "дата недоступна: прошедший день или выходной"
	msgNotFound           = "сессия мастера не найдена"
	msgBusy               = "идёт подтверждение бронирования, изменения недоступны"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/wizards/{wizardId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	wizardID := mux.Vars(r)["wizardId"]

	var req models.SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizards/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	wizard, err := h.service.SelectDate(r.Context(), wizardID, req)
	if err != nil {
		switch {
		case errors.Is(err, wizards.ErrInvalidDate):
			h.logger.Warn("PUT /wizards/{id}/date - Invalid date: wizard_id=%s, date=%q", wizardID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, wizards.ErrDateNotSelectable):
			h.logger.Warn("PUT /wizards/{id}/date - Date not selectable: wizard_id=%s, date=%s", wizardID, req.Date)
			handlers.RespondBadRequest(w, msgDateNotSelectable)

		case errors.Is(err, wizards.ErrWizardNotFound):
			h.logger.Warn("PUT /wizards/{id}/date - Wizard not found: wizard_id=%s", wizardID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, wizards.ErrWizardBusy):
			h.logger.Warn("PUT /wizards/{id}/date - Wizard busy: wizard_id=%s", wizardID)
			handlers.RespondConflict(w, msgBusy)

		default:
			h.logger.Error("PUT /wizards/{id}/date - Failed to select date: wizard_id=%s, error=%v", wizardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /wizards/{id}/date - Date selected: wizard_id=%s, date=%s", wizardID, req.Date)
	handlers.RespondJSON(w, http.StatusOK, wizard)
}
