package delete_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers"
	"github.com/m04kA/SMC-BookingWizard/internal/service/wizards"
)

const (
	msgNotFound = "сессия мастера не найдена"
	msgBusy     = "идёт подтверждение бронирования, сессию нельзя удалить"
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

// Handle DELETE /api/v1/wizards/{wizardId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	wizardID := mux.Vars(r)["wizardId"]

	if err := h.service.Delete(r.Context(), wizardID); err != nil {
		switch {
		case errors.Is(err, wizards.ErrWizardNotFound):
			h.logger.Warn("DELETE /wizards/{id} - Wizard not found: wizard_id=%s", wizardID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, wizards.ErrWizardBusy):
			h.logger.Warn("DELETE /wizards/{id} - Wizard busy: wizard_id=%s", wizardID)
			handlers.RespondConflict(w, msgBusy)

		default:
			h.logger.Error("DELETE /wizards/{id} - Failed to delete wizard: wizard_id=%s, error=%v", wizardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /wizards/{id} - Wizard discarded: wizard_id=%s", wizardID)
	handlers.RespondNoContent(w)
}
