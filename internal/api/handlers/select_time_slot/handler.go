package select_time_slot

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
	msgInvalidTimeSlot    = "некорректный формат времени, ожидается HH:MM"
	msgTimeSlotNotFound   = "такого временного слота нет в расписании"
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

// Handle PUT /api/v1/wizards/{wizardId}/time-slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	wizardID := mux.Vars(r)["wizardId"]

	var req models.SelectTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizards/{id}/time-slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	wizard, err := h.service.SelectTimeSlot(r.Context(), wizardID, req)
	if err != nil {
		switch {
		case errors.Is(err, wizards.ErrInvalidTimeSlot):
			h.logger.Warn("PUT /wizards/{id}/time-slot - Invalid time slot: wizard_id=%s, time_slot=%q", wizardID, req.TimeSlot)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, wizards.ErrTimeSlotNotFound):
			h.logger.Warn("PUT /wizards/{id}/time-slot - Time slot not in catalog: wizard_id=%s, time_slot=%s", wizardID, req.TimeSlot)
			handlers.RespondBadRequest(w, msgTimeSlotNotFound)

		case errors.Is(err, wizards.ErrWizardNotFound):
			h.logger.Warn("PUT /wizards/{id}/time-slot - Wizard not found: wizard_id=%s", wizardID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, wizards.ErrWizardBusy):
			h.logger.Warn("PUT /wizards/{id}/time-slot - Wizard busy: wizard_id=%s", wizardID)
			handlers.RespondConflict(w, msgBusy)

		default:
			h.logger.Error("PUT /wizards/{id}/time-slot - Failed to select time slot: wizard_id=%s, error=%v", wizardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /wizards/{id}/time-slot - Time slot selected: wizard_id=%s, time_slot=%s", wizardID, req.TimeSlot)
	handlers.RespondJSON(w, http.StatusOK, wizard)
}
