package confirm_booking

import (
	"time"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	"github.com/m04kA/SMC-BookingWizard/internal/service/wizards/models"
	confirmBooking "github.com/m04kA/SMC-BookingWizard/internal/usecase/confirm_booking"
)

// ConfirmationResponse HTTP response model
type ConfirmationResponse struct {
	Date        string                  `json:"date"`
	TimeSlot    string                  `json:"timeSlot"`
	EndTime     string                  `json:"endTime"`
	Service     models.ServiceResponse  `json:"service"`
	Customer    models.CustomerResponse `json:"customer"`
	Message     string                  `json:"message"`
	SubmittedAt string                  `json:"submittedAt"`
}

// FailureResponse HTTP response model при ошибке отправки
type FailureResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmationResponse {
	return &ConfirmationResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		TimeSlot: resp.TimeSlot.String(),
		EndTime:  resp.EndTime.String(),
		Service:  models.FromDomainService(resp.Service),
		Customer: models.CustomerResponse{
			Name:  resp.Customer.Name,
			Email: resp.Customer.Email,
			Phone: resp.Customer.Phone,
			Notes: resp.Customer.Notes,
		},
		Message:     resp.Message,
		SubmittedAt: resp.Submitted.Format(time.RFC3339),
	}
}
