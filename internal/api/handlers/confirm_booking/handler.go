package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers"
	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	confirmBooking "github.com/m04kA/SMC-BookingWizard/internal/usecase/confirm_booking"
)

const (
	msgNotFound          = "сессия мастера не найдена"
	msgBusy              = "бронирование уже отправляется"
	msgIncompleteBooking = "Missing booking information"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizards/{wizardId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	wizardID := mux.Vars(r)["wizardId"]

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{WizardID: wizardID})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrWizardNotFound):
			h.logger.Warn("POST /wizards/{id}/confirm - Wizard not found: wizard_id=%s", wizardID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmBooking.ErrWizardBusy):
			h.logger.Warn("POST /wizards/{id}/confirm - Confirmation in progress: wizard_id=%s", wizardID)
			handlers.RespondConflict(w, msgBusy)

		case errors.Is(err, confirmBooking.ErrIncompleteBooking):
			h.logger.Warn("POST /wizards/{id}/confirm - Incomplete booking: wizard_id=%s, error=%v", wizardID, err)
			handlers.RespondBadRequest(w, msgIncompleteBooking)

		case errors.Is(err, confirmBooking.ErrSubmissionFailed):
			h.logger.Error("POST /wizards/{id}/confirm - Submission failed: wizard_id=%s, error=%v", wizardID, err)
			handlers.RespondJSON(w, http.StatusBadGateway, FailureResponse{
				Code:      http.StatusBadGateway,
				Message:   confirmBooking.MessageFailed,
				Retryable: true,
			})

		default:
			h.logger.Error("POST /wizards/{id}/confirm - Failed to confirm booking: wizard_id=%s, error=%v", wizardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizards/{id}/confirm - Booking confirmed: wizard_id=%s, date=%s, time=%s",
		wizardID, result.Date.Format(domain.DateFormat), result.TimeSlot)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
