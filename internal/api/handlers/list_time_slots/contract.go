package list_time_slots

import (
	"context"
	"time"

	getAvailableSlots "github.com/m04kA/SMC-BookingWizard/internal/usecase/get_available_slots"
)

type GetAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

type DateParser interface {
	ParseDate(value string) (time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
