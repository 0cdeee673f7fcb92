package advance_step

import (
	"context"

	"github.com/m04kA/SMC-BookingWizard/internal/service/wizards/models"
)

type WizardService interface {
	AdvanceTo(ctx context.Context, id string, req models.AdvanceRequest) (*models.StepResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
