package validate_field

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
	msgUnknownField       = "неизвестное поле, ожидается name, email, phone или notes"
	msgNotFound           = "сессия мастера не найдена"
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

// Handle POST /api/v1/wizards/{wizardId}/customer/validate
// Проверка одного поля при потере фокуса; невалидное значение - это 200 с valid=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	wizardID := mux.Vars(r)["wizardId"]

	var req models.ValidateFieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizards/{id}/customer/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ValidateField(r.Context(), wizardID, req)
	if err != nil {
		switch {
		case errors.Is(err, wizards.ErrUnknownField):
			h.logger.Warn("POST /wizards/{id}/customer/validate - Unknown field: wizard_id=%s, field=%q", wizardID, req.Field)
			handlers.RespondBadRequest(w, msgUnknownField)

		case errors.Is(err, wizards.ErrWizardNotFound):
			h.logger.Warn("POST /wizards/{id}/customer/validate - Wizard not found: wizard_id=%s", wizardID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /wizards/{id}/customer/validate - Failed to validate field: wizard_id=%s, error=%v", wizardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
