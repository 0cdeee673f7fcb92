package get_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers"
	"github.com/m04kA/SMC-BookingWizard/internal/service/wizards"
)

const msgNotFound = "сессия мастера не найдена"

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

// Handle GET /api/v1/wizards/{wizardId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	wizardID := mux.Vars(r)["wizardId"]

	wizard, err := h.service.Get(r.Context(), wizardID)
	if err != nil {
		switch {
		case errors.Is(err, wizards.ErrWizardNotFound):
			h.logger.Warn("GET /wizards/{id} - Wizard not found: wizard_id=%s", wizardID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /wizards/{id} - Failed to get wizard: wizard_id=%s, error=%v", wizardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, wizard)
}
