package wizard

import (
	"context"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

// Submitter внешний сервис, принимающий готовое бронирование
// Реализации: integrations/simulated (фиксированная задержка) и integrations/bookingapi (HTTP)
type Submitter interface {
	Submit(ctx context.Context, record domain.BookingRecord) error
}

// SubmitterFunc адаптер функции к интерфейсу Submitter
type SubmitterFunc func(ctx context.Context, record domain.BookingRecord) error

// Submit вызывает f(ctx, record)
func (f SubmitterFunc) Submit(ctx context.Context, record domain.BookingRecord) error {
	return f(ctx, record)
}
