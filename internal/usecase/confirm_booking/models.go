package confirm_booking

import (
	"time"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	"github.com/m04kA/SMC-BookingWizard/pkg/types"
)

const (
	// MessageConfirmed уведомление пользователю после успешного подтверждения
	MessageConfirmed = "Booking confirmed! You'll receive a confirmation email shortly."

	// MessageFailed уведомление пользователю при ошибке отправки
	MessageFailed = "There was an error processing your booking. Please try again."
)

// Request модель запроса на подтверждение бронирования
type Request struct {
	WizardID string // ID сессии мастера
}

// Response модель ответа с подтверждённым бронированием
type Response struct {
	Date      time.Time           // Дата бронирования
	TimeSlot  types.TimeString    // Время начала
	EndTime   types.TimeString    // Время окончания (начало + длительность услуги)
	Service   domain.Service      // Выбранная услуга
	Customer  domain.CustomerInfo // Данные клиента
	Message   string              // Уведомление для пользователя
	Submitted time.Time           // Время подтверждения
}

func newResponse(record domain.BookingRecord, submitted time.Time) (*Response, error) {
	if !record.IsComplete() {
		return nil, ErrIncompleteBooking
	}

	endTime, err := record.EndTime()
	if err != nil {
		return nil, err
	}

	customer := *record.Customer
	return &Response{
		Date:      *record.Date,
		TimeSlot:  *record.TimeSlot,
		EndTime:   endTime,
		Service:   *record.Service,
		Customer:  customer,
		Message:   MessageConfirmed,
		Submitted: submitted,
	}, nil
}
