package wizards

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	wizardRepo "github.com/m04kA/SMC-BookingWizard/internal/infra/storage/wizard"
	"github.com/m04kA/SMC-BookingWizard/internal/service/catalog"
	"github.com/m04kA/SMC-BookingWizard/internal/service/wizards/models"
	"github.com/m04kA/SMC-BookingWizard/internal/validation"
	"github.com/m04kA/SMC-BookingWizard/internal/wizard"
	"github.com/m04kA/SMC-BookingWizard/pkg/types"
)

// Service сервис управления сессиями мастера бронирования
type Service struct {
	repo         WizardRepository
	catalog      Catalog
	submitter    wizard.Submitter
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	repo WizardRepository,
	catalog Catalog,
	submitter wizard.Submitter,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		catalog:      catalog,
		submitter:    submitter,
		metrics:      metrics,
		timeProvider: RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Create создает новую сессию на шаге Date с пустой записью
func (s *Service) Create(ctx context.Context) (*models.WizardResponse, error) {
	w := wizard.New(s.submitter)

	id, err := s.repo.Create(ctx, w)
	if err != nil {
		if errors.Is(err, wizardRepo.ErrTooManyWizards) {
			s.logger.Warn("Create: session limit reached, active=%d", s.repo.Count())
			return nil, ErrTooManyWizards
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.updateActive()
	s.logger.Info("Create: wizard created id=%s", id)

	resp := models.FromState(id, w.State())
	return &resp, nil
}

// Get возвращает текущее состояние мастера
func (s *Service) Get(ctx context.Context, id string) (*models.WizardResponse, error) {
	w, err := s.get(ctx, id, "Get")
	if err != nil {
		return nil, err
	}

	resp := models.FromState(id, w.State())
	return &resp, nil
}

// SelectDate выбирает дату; прошедшие даты и выходной день отклоняются
func (s *Service) SelectDate(ctx context.Context, id string, req models.SelectDateRequest) (*models.WizardResponse, error) {
	date, err := s.catalog.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}
	if !s.catalog.IsSelectable(date) {
		s.logger.Warn("SelectDate: date=%s is not selectable, wizard=%s", req.Date, id)
		return nil, ErrDateNotSelectable
	}

	w, err := s.get(ctx, id, "SelectDate")
	if err != nil {
		return nil, err
	}

	if err := w.SelectDate(date); err != nil {
		return nil, s.mapWizardError(err, id, "SelectDate")
	}

	s.logger.Info("SelectDate: wizard=%s, date=%s", id, req.Date)
	resp := models.FromState(id, w.State())
	return &resp, nil
}

// SelectTimeSlot выбирает слот из каталога
func (s *Service) SelectTimeSlot(ctx context.Context, id string, req models.SelectTimeSlotRequest) (*models.WizardResponse, error) {
	slot, err := types.NewTimeStringFromString(req.TimeSlot)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, req.TimeSlot)
	}
	if !s.catalog.HasTimeSlot(slot) {
		return nil, ErrTimeSlotNotFound
	}

	w, err := s.get(ctx, id, "SelectTimeSlot")
	if err != nil {
		return nil, err
	}

	if err := w.SelectTimeSlot(slot); err != nil {
		return nil, s.mapWizardError(err, id, "SelectTimeSlot")
	}

	s.logger.Info("SelectTimeSlot: wizard=%s, timeSlot=%s", id, slot)
	resp := models.FromState(id, w.State())
	return &resp, nil
}

// SelectService выбирает услугу по ID
func (s *Service) SelectService(ctx context.Context, id string, req models.SelectServiceRequest) (*models.WizardResponse, error) {
	service, err := s.catalog.GetService(req.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: SelectService - catalog error: %v", ErrInternal, err)
	}

	w, err := s.get(ctx, id, "SelectService")
	if err != nil {
		return nil, err
	}

	if err := w.SelectService(service); err != nil {
		return nil, s.mapWizardError(err, id, "SelectService")
	}

	s.logger.Info("SelectService: wizard=%s, service=%s", id, service.ID)
	resp := models.FromState(id, w.State())
	return &resp, nil
}

// AdvanceTo переходит на указанный шаг (пустой - следующий)
// Закрытый шаг не является ошибкой: возвращается Advanced = false
func (s *Service) AdvanceTo(ctx context.Context, id string, req models.AdvanceRequest) (*models.StepResponse, error) {
	w, err := s.get(ctx, id, "AdvanceTo")
	if err != nil {
		return nil, err
	}
	if w.Busy() {
		return nil, ErrWizardBusy
	}

	target, err := s.resolveTarget(w, req.Step)
	if err != nil {
		return nil, err
	}

	advanced := w.AdvanceTo(target)
	s.metrics.ObserveStepTransition(target.String(), advanced)

	if advanced {
		s.logger.Info("AdvanceTo: wizard=%s moved to step=%s", id, target)
	} else {
		s.logger.Info("AdvanceTo: wizard=%s step=%s is locked", id, target)
	}

	return &models.StepResponse{
		Advanced: advanced,
		Wizard:   models.FromState(id, w.State()),
	}, nil
}

// Back переходит на предыдущий шаг без проверок, данные сохраняются
func (s *Service) Back(ctx context.Context, id string) (*models.StepResponse, error) {
	w, err := s.get(ctx, id, "Back")
	if err != nil {
		return nil, err
	}
	if w.Busy() {
		return nil, ErrWizardBusy
	}

	moved := w.Back()
	if moved {
		s.metrics.ObserveStepTransition(w.Step().String(), true)
	}

	return &models.StepResponse{
		Advanced: moved,
		Wizard:   models.FromState(id, w.State()),
	}, nil
}

// ValidateField проверяет одно поле формы клиента (on-blur), состояние не меняется
func (s *Service) ValidateField(ctx context.Context, id string, req models.ValidateFieldRequest) (*models.ValidateFieldResponse, error) {
	if _, err := s.get(ctx, id, "ValidateField"); err != nil {
		return nil, err
	}

	field, err := validation.ParseField(req.Field)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, req.Field)
	}

	resp := &models.ValidateFieldResponse{
		Field: string(field),
		Valid: true,
	}

	if err := validation.Validate(field, req.Value); err != nil {
		var fieldErr *validation.FieldError
		if !errors.As(err, &fieldErr) {
			return nil, fmt.Errorf("%w: ValidateField - validator error: %v", ErrInternal, err)
		}
		s.metrics.ObserveValidationFailure(string(field))
		resp.Valid = false
		resp.Message = fieldErr.Message
	}

	return resp, nil
}

// SubmitCustomer валидирует форму клиента и переходит на шаг Confirm
// При ошибках валидации возвращает validation.Errors
func (s *Service) SubmitCustomer(ctx context.Context, id string, req models.CustomerRequest) (*models.WizardResponse, error) {
	w, err := s.get(ctx, id, "SubmitCustomer")
	if err != nil {
		return nil, err
	}

	if err := w.SubmitCustomerInfo(req.ToValidationInput()); err != nil {
		var validationErrs validation.Errors
		if errors.As(err, &validationErrs) {
			for field := range validationErrs {
				s.metrics.ObserveValidationFailure(string(field))
			}
			s.logger.Info("SubmitCustomer: wizard=%s, validation failed: %v", id, validationErrs)
			return nil, validationErrs
		}
		return nil, s.mapWizardError(err, id, "SubmitCustomer")
	}

	s.metrics.ObserveStepTransition(domain.StepConfirm.String(), true)
	s.logger.Info("SubmitCustomer: wizard=%s moved to step=%s", id, domain.StepConfirm)

	resp := models.FromState(id, w.State())
	return &resp, nil
}

// Reset очищает запись и возвращает мастер на шаг Date
func (s *Service) Reset(ctx context.Context, id string) (*models.WizardResponse, error) {
	w, err := s.get(ctx, id, "Reset")
	if err != nil {
		return nil, err
	}

	if err := w.Reset(); err != nil {
		return nil, s.mapWizardError(err, id, "Reset")
	}

	s.logger.Info("Reset: wizard=%s", id)
	resp := models.FromState(id, w.State())
	return &resp, nil
}

// Delete удаляет сессию (закрытие страницы)
// Проверка busy и удаление выполняются хранилищем атомарно
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, wizardRepo.ErrWizardNotFound):
			s.logger.Warn("Delete: wizard=%s not found", id)
			return ErrWizardNotFound
		case errors.Is(err, wizardRepo.ErrWizardBusy):
			s.logger.Warn("Delete: wizard=%s is busy", id)
			return ErrWizardBusy
		default:
			s.logger.Error("Delete: repository error for wizard=%s: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.updateActive()
	s.logger.Info("Delete: wizard=%s discarded", id)
	return nil
}

// CleanupIdle удаляет сессии, к которым не обращались дольше idleTimeout
func (s *Service) CleanupIdle(ctx context.Context, idleTimeout time.Duration) (*models.CleanupResult, error) {
	before := s.timeProvider.Now().Add(-idleTimeout)

	removed, err := s.repo.DeleteIdle(ctx, before)
	if err != nil {
		return nil, fmt.Errorf("%w: CleanupIdle - repository error: %v", ErrInternal, err)
	}

	s.updateActive()
	if removed > 0 {
		s.logger.Info("CleanupIdle: removed=%d idle wizards", removed)
	}

	return &models.CleanupResult{
		Removed: removed,
		Active:  s.repo.Count(),
	}, nil
}

func (s *Service) get(ctx context.Context, id, op string) (*wizard.Wizard, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, wizardRepo.ErrWizardNotFound) {
			s.logger.Warn("%s: wizard=%s not found", op, id)
			return nil, ErrWizardNotFound
		}
		s.logger.Error("%s: repository error for wizard=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return w, nil
}

func (s *Service) resolveTarget(w *wizard.Wizard, name string) (domain.Step, error) {
	if name == "" {
		next, ok := w.Step().Next()
		if !ok {
			return 0, fmt.Errorf("%w: %s is the last step", ErrInvalidStep, domain.StepConfirm)
		}
		return next, nil
	}

	step, err := domain.ParseStep(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidStep, err)
	}
	return step, nil
}

func (s *Service) mapWizardError(err error, id, op string) error {
	switch {
	case errors.Is(err, wizard.ErrSubmissionInProgress):
		s.logger.Warn("%s: wizard=%s is busy", op, id)
		return ErrWizardBusy
	case errors.Is(err, wizard.ErrWizardClosed):
		s.logger.Warn("%s: wizard=%s was discarded", op, id)
		return ErrWizardNotFound
	case errors.Is(err, wizard.ErrStepLocked):
		s.logger.Warn("%s: wizard=%s: %v", op, id, err)
		return fmt.Errorf("%w: %v", ErrStepLocked, err)
	default:
		s.logger.Error("%s: wizard=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
}

func (s *Service) updateActive() {
	s.metrics.SetActiveWizards(s.repo.Count())
}
