package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	wizardRepo "github.com/m04kA/SMC-BookingWizard/internal/infra/storage/wizard"
	"github.com/m04kA/SMC-BookingWizard/internal/wizard"
	"github.com/m04kA/SMC-BookingWizard/pkg/metrics"
)

// UseCase use case для подтверждения бронирования
type UseCase struct {
	wizardRepo   WizardRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	wizardRepo WizardRepository,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		wizardRepo:   wizardRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute отправляет запись бронирования внешнему сервису
//
// Вызов блокируется до окончания отправки; отмена контекста клиента её не прерывает.
// При успехе мастер сбрасывается на шаг Date, при ошибке состояние сохраняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || strings.TrimSpace(req.WizardID) == "" {
		return nil, fmt.Errorf("%w: wizard id is required", ErrInvalidInput)
	}

	uc.logger.Info("ConfirmBooking: wizard=%s", req.WizardID)

	// 1. Получаем сессию мастера
	w, err := uc.wizardRepo.GetByID(ctx, req.WizardID)
	if err != nil {
		if errors.Is(err, wizardRepo.ErrWizardNotFound) {
			uc.logger.Warn("ConfirmBooking: wizard=%s not found", req.WizardID)
			return nil, ErrWizardNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get wizard=%s: %v", req.WizardID, err)
		return nil, fmt.Errorf("%w: failed to get wizard: %v", ErrInternal, err)
	}

	// 2. Отправляем запись (busy на время отправки)
	started := uc.timeProvider.Now()
	record, err := w.ConfirmBooking(ctx)
	elapsed := uc.timeProvider.Now().Sub(started)

	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSubmissionInProgress):
			uc.metrics.ObserveConfirmation(metrics.ConfirmationRejected, elapsed)
			uc.logger.Warn("ConfirmBooking: wizard=%s is already submitting", req.WizardID)
			return nil, ErrWizardBusy
		case errors.Is(err, wizard.ErrWizardClosed):
			uc.metrics.ObserveConfirmation(metrics.ConfirmationRejected, elapsed)
			uc.logger.Warn("ConfirmBooking: wizard=%s was discarded", req.WizardID)
			return nil, ErrWizardNotFound
		case errors.Is(err, wizard.ErrNotOnConfirmStep), errors.Is(err, wizard.ErrIncompleteBooking):
			uc.metrics.ObserveConfirmation(metrics.ConfirmationRejected, elapsed)
			uc.logger.Warn("ConfirmBooking: wizard=%s: %v", req.WizardID, err)
			return nil, fmt.Errorf("%w: %v", ErrIncompleteBooking, err)
		case errors.Is(err, wizard.ErrSubmissionFailed):
			uc.metrics.ObserveConfirmation(metrics.ConfirmationFailure, elapsed)
			uc.logger.Error("ConfirmBooking: wizard=%s submission failed after %s: %v", req.WizardID, elapsed, err)
			return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
		default:
			uc.logger.Error("ConfirmBooking: wizard=%s unexpected error: %v", req.WizardID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.metrics.ObserveConfirmation(metrics.ConfirmationSuccess, elapsed)

	// 3. Формируем сводку подтверждённого бронирования
	resp, err := newResponse(record, started)
	if err != nil {
		uc.logger.Error("ConfirmBooking: wizard=%s failed to build response: %v", req.WizardID, err)
		return nil, fmt.Errorf("%w: failed to build response: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmBooking: wizard=%s confirmed, date=%s, time=%s-%s, service=%s",
		req.WizardID, resp.Date.Format(domain.DateFormat), resp.TimeSlot, resp.EndTime, resp.Service.ID)

	return resp, nil
}
