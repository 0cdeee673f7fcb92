package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	"github.com/m04kA/SMC-BookingWizard/pkg/types"
)

// Catalog интерфейс каталога услуг, слотов и календаря
type Catalog interface {
	GetService(id string) (domain.Service, error)
	ListTimeSlots() []types.TimeString
	IsSelectable(date time.Time) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
