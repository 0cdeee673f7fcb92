package submit_customer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers"
	"github.com/m04kA/SMC-BookingWizard/internal/service/wizards"
	"github.com/m04kA/SMC-BookingWizard/internal/service/wizards/models"
	"github.com/m04kA/SMC-BookingWizard/internal/validation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "проверьте данные формы"
	msgStepLocked         = "сначала выберите дату, время и услугу"
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

// Handle POST /api/v1/wizards/{wizardId}/customer
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	wizardID := mux.Vars(r)["wizardId"]

	var req models.CustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizards/{id}/customer - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	wizard, err := h.service.SubmitCustomer(r.Context(), wizardID, req)
	if err != nil {
		var validationErrs validation.Errors
		switch {
		case errors.As(err, &validationErrs):
			h.logger.Info("POST /wizards/{id}/customer - Validation failed: wizard_id=%s, fields=%d", wizardID, len(validationErrs))
			handlers.RespondValidationErrors(w, msgValidationFailed, validationErrs.ToMap())

		case errors.Is(err, wizards.ErrStepLocked):
			h.logger.Warn("POST /wizards/{id}/customer - Step locked: wizard_id=%s", wizardID)
			handlers.RespondConflict(w, msgStepLocked)

		case errors.Is(err, wizards.ErrWizardNotFound):
			h.logger.Warn("POST /wizards/{id}/customer - Wizard not found: wizard_id=%s", wizardID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, wizards.ErrWizardBusy):
			h.logger.Warn("POST /wizards/{id}/customer - Wizard busy: wizard_id=%s", wizardID)
			handlers.RespondConflict(w, msgBusy)

		default:
			h.logger.Error("POST /wizards/{id}/customer - Failed to submit customer: wizard_id=%s, error=%v", wizardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizards/{id}/customer - Customer details saved: wizard_id=%s", wizardID)
	handlers.RespondJSON(w, http.StatusOK, wizard)
}
