package reset_wizard

import (
	"context"

	"github.com/m04kA/SMC-BookingWizard/internal/service/wizards/models"
)

type WizardService interface {
	Reset(ctx context.Context, id string) (*models.WizardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
