package simulated

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

// DefaultDelay задержка имитации отправки
const DefaultDelay = 1500 * time.Millisecond

// Submitter имитирует внешний сервис бронирований: ждёт фиксированную задержку и всегда принимает запись
type Submitter struct {
	delay time.Duration
	log   Logger
}

// NewSubmitter создает новый экземпляр имитатора
func NewSubmitter(delay time.Duration, log Logger) *Submitter {
	if delay < 0 {
		delay = 0
	}
	return &Submitter{
		delay: delay,
		log:   log,
	}
}

// Submit ждёт задержку и логирует бронирование
func (s *Submitter) Submit(ctx context.Context, record domain.BookingRecord) error {
	if !record.IsComplete() {
		return ErrIncompleteRecord
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrCanceled, ctx.Err())
	case <-timer.C:
	}

	s.log.Info("Booking submitted: date=%s, time=%s, service=%s, customer=%s",
		record.Date.Format(domain.DateFormat), record.TimeSlot.String(), record.Service.ID, record.Customer.Email)
	return nil
}
