package confirm_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingWizard/internal/wizard"
)

// WizardRepository интерфейс хранилища сессий мастера
type WizardRepository interface {
	GetByID(ctx context.Context, id string) (*wizard.Wizard, error)
}

// Metrics интерфейс метрик подтверждения
type Metrics interface {
	ObserveConfirmation(result string, duration time.Duration)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
