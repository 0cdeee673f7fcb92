package reset_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers"
	"github.com/m04kA/SMC-BookingWizard/internal/service/wizards"
)

const (
	msgNotFound = "сессия мастера не найдена"
	msgBusy     = "идёт подтверждение бронирования, изменения недоступны"
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

// Handle POST /api/v1/wizards/{wizardId}/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	wizardID := mux.Vars(r)["wizardId"]

	wizard, err := h.service.Reset(r.Context(), wizardID)
	if err != nil {
		switch {
		case errors.Is(err, wizards.ErrWizardNotFound):
			h.logger.Warn("POST /wizards/{id}/reset - Wizard not found: wizard_id=%s", wizardID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, wizards.ErrWizardBusy):
			h.logger.Warn("POST /wizards/{id}/reset - Wizard busy: wizard_id=%s", wizardID)
			handlers.RespondConflict(w, msgBusy)

		default:
			h.logger.Error("POST /wizards/{id}/reset - Failed to reset wizard: wizard_id=%s, error=%v", wizardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizards/{id}/reset - Wizard reset: wizard_id=%s", wizardID)
	handlers.RespondJSON(w, http.StatusOK, wizard)
}
