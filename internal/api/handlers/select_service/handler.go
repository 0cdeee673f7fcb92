package select_service

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
	msgMissingServiceID   = "ID услуги обязателен"
	msgServiceNotFound    = "услуга не найдена"
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

// Handle PUT /api/v1/wizards/{wizardId}/service
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	wizardID := mux.Vars(r)["wizardId"]

	var req models.SelectServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizards/{id}/service - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.ServiceID == "" {
		h.logger.Warn("PUT /wizards/{id}/service - Missing service ID: wizard_id=%s", wizardID)
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	wizard, err := h.service.SelectService(r.Context(), wizardID, req)
	if err != nil {
		switch {
		case errors.Is(err, wizards.ErrServiceNotFound):
			h.logger.Warn("PUT /wizards/{id}/service - Service not found: wizard_id=%s, service_id=%s", wizardID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, wizards.ErrWizardNotFound):
			h.logger.Warn("PUT /wizards/{id}/service - Wizard not found: wizard_id=%s", wizardID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, wizards.ErrWizardBusy):
			h.logger.Warn("PUT /wizards/{id}/service - Wizard busy: wizard_id=%s", wizardID)
			handlers.RespondConflict(w, msgBusy)

		default:
			h.logger.Error("PUT /wizards/{id}/service - Failed to select service: wizard_id=%s, error=%v", wizardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /wizards/{id}/service - Service selected: wizard_id=%s, service_id=%s", wizardID, req.ServiceID)
	handlers.RespondJSON(w, http.StatusOK, wizard)
}
