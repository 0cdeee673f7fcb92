package create_wizard

import (
	"context"

	"github.com/m04kA/SMC-BookingWizard/internal/service/wizards/models"
)

type WizardService interface {
	Create(ctx context.Context) (*models.WizardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
