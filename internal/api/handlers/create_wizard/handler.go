package create_wizard

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers"
	"github.com/m04kA/SMC-BookingWizard/internal/service/wizards"
)

const msgTooManyWizards = "слишком много активных сессий, попробуйте позже"

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

// Handle POST /api/v1/wizards
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	wizard, err := h.service.Create(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, wizards.ErrTooManyWizards):
			h.logger.Warn("POST /wizards - Session limit reached")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgTooManyWizards)

		default:
			h.logger.Error("POST /wizards - Failed to create wizard: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizards - Wizard created successfully: wizard_id=%s", wizard.ID)
	handlers.RespondJSON(w, http.StatusCreated, wizard)
}
