package wizards

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	"github.com/m04kA/SMC-BookingWizard/internal/wizard"
	"github.com/m04kA/SMC-BookingWizard/pkg/types"
)

// WizardRepository интерфейс хранилища сессий мастера
type WizardRepository interface {
	Create(ctx context.Context, w *wizard.Wizard) (string, error)
	GetByID(ctx context.Context, id string) (*wizard.Wizard, error)
	Delete(ctx context.Context, id string) error
	DeleteIdle(ctx context.Context, before time.Time) (int, error)
	Count() int
}

// Catalog интерфейс каталога услуг, слотов и календаря
type Catalog interface {
	GetService(id string) (domain.Service, error)
	HasTimeSlot(slot types.TimeString) bool
	IsSelectable(date time.Time) bool
	ParseDate(value string) (time.Time, error)
}

// Metrics интерфейс метрик мастера
type Metrics interface {
	SetActiveWizards(n int)
	ObserveStepTransition(step string, advanced bool)
	ObserveValidationFailure(field string)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
