package advance_step

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
	msgInvalidStep        = "неизвестный шаг, ожидается date, time, service, details или confirm"
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

// Handle POST /api/v1/wizards/{wizardId}/step
// Body: {"step": "time"}; без тела - переход на следующий шаг.
// Закрытый шаг отвечает 200 с advanced=false.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	wizardID := mux.Vars(r)["wizardId"]

	var req models.AdvanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /wizards/{id}/step - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AdvanceTo(r.Context(), wizardID, req)
	if err != nil {
		switch {
		case errors.Is(err, wizards.ErrInvalidStep):
			h.logger.Warn("POST /wizards/{id}/step - Invalid step: wizard_id=%s, step=%q", wizardID, req.Step)
			handlers.RespondBadRequest(w, msgInvalidStep)

		case errors.Is(err, wizards.ErrWizardNotFound):
			h.logger.Warn("POST /wizards/{id}/step - Wizard not found: wizard_id=%s", wizardID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, wizards.ErrWizardBusy):
			h.logger.Warn("POST /wizards/{id}/step - Wizard busy: wizard_id=%s", wizardID)
			handlers.RespondConflict(w, msgBusy)

		default:
			h.logger.Error("POST /wizards/{id}/step - Failed to change step: wizard_id=%s, error=%v", wizardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizards/{id}/step - Step requested: wizard_id=%s, advanced=%t, step=%s",
		wizardID, result.Advanced, result.Wizard.Step)
	handlers.RespondJSON(w, http.StatusOK, result)
}
