package wizard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	"github.com/m04kA/SMC-BookingWizard/internal/validation"
	"github.com/m04kA/SMC-BookingWizard/pkg/types"
)

// State снимок состояния мастера для отображения
type State struct {
	Step      domain.Step
	Record    domain.BookingRecord
	Busy      bool
	Reachable []domain.Step
}

// Wizard машина состояний мастера бронирования
//
// Запись бронирования принадлежит только мастеру: наружу отдаются копии,
// каждое изменение заменяет поле целиком. Пока идёт подтверждение (busy),
// все изменяющие операции отклоняются с ErrSubmissionInProgress.
type Wizard struct {
	mu        sync.Mutex
	step      domain.Step
	record    domain.BookingRecord
	busy      bool
	closed    bool
	submitter Submitter
}

// New создает мастер на шаге Date с пустой записью
func New(submitter Submitter) *Wizard {
	return &Wizard{
		step:      domain.StepDate,
		submitter: submitter,
	}
}

// State возвращает копию текущего состояния
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	return State{
		Step:      w.step,
		Record:    w.record.Clone(),
		Busy:      w.busy,
		Reachable: domain.ReachableSteps(w.record),
	}
}

// Step возвращает активный шаг
func (w *Wizard) Step() domain.Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Record возвращает копию записи бронирования
func (w *Wizard) Record() domain.BookingRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.record.Clone()
}

// Busy возвращает true, пока выполняется подтверждение
func (w *Wizard) Busy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.busy
}

// SelectDate устанавливает дату без проверок
// Прошедшие даты и выходной день отсекает календарь до вызова (catalog.IsSelectable)
func (w *Wizard) SelectDate(date time.Time) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.guardLocked(); err != nil {
		return err
	}

	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	next := w.record.Clone()
	next.Date = &d
	w.record = next
	return nil
}

// SelectTimeSlot устанавливает слот, шаг не меняется
func (w *Wizard) SelectTimeSlot(slot types.TimeString) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.guardLocked(); err != nil {
		return err
	}

	next := w.record.Clone()
	next.TimeSlot = &slot
	w.record = next
	return nil
}

// SelectService устанавливает услугу, шаг не меняется
func (w *Wizard) SelectService(service domain.Service) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.guardLocked(); err != nil {
		return err
	}

	next := w.record.Clone()
	next.Service = &service
	w.record = next
	return nil
}

// CanAdvance возвращает true, если с активного шага можно перейти на следующий
func (w *Wizard) CanAdvance() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.busy && domain.CanAdvance(w.step, w.record)
}

// AdvanceTo переходит на шаг, если это разрешено
// Назад можно всегда, вперёд - только при выполненном условии шага.
// Запрещённый переход - тихий no-op, возвращается false.
func (w *Wizard) AdvanceTo(step domain.Step) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.guardLocked() != nil || !step.IsValid() {
		return false
	}

	if step > w.step && !domain.CanEnter(step, w.record) {
		return false
	}

	w.step = step
	return true
}

// Back переходит на предыдущий шаг, данные записи не теряются
func (w *Wizard) Back() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.guardLocked() != nil {
		return false
	}

	prev, ok := w.step.Prev()
	if !ok {
		return false
	}
	w.step = prev
	return true
}

// SubmitCustomerInfo валидирует данные клиента, сохраняет их и переходит на Confirm
//
// При ошибках валидации возвращает validation.Errors и ничего не меняет.
// Если услуга ещё не выбрана (шаг Details закрыт), возвращает ErrStepLocked.
func (w *Wizard) SubmitCustomerInfo(input validation.CustomerInput) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.guardLocked(); err != nil {
		return err
	}

	if errs := validation.ValidateCustomer(input); errs != nil {
		return errs
	}

	if !domain.CanEnter(domain.StepDetails, w.record) {
		return fmt.Errorf("%w: %s requires a selected service", ErrStepLocked, domain.StepDetails)
	}

	customer := &domain.CustomerInfo{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}
	if input.Notes != "" {
		notes := input.Notes
		customer.Notes = &notes
	}

	next := w.record.Clone()
	next.Customer = customer

	if !domain.CanEnter(domain.StepConfirm, next) {
		return fmt.Errorf("%w: %s requires date, time slot and service", ErrStepLocked, domain.StepConfirm)
	}

	w.record = next
	w.step = domain.StepConfirm
	return nil
}

// ConfirmBooking отправляет запись внешнему сервису
//
// Одновременно выполняется не больше одного подтверждения. Отмены нет:
// submitter получает контекст без отмены и отрабатывает до конца.
// При успехе мастер сбрасывается на Date с пустой записью, при ошибке
// состояние сохраняется и возвращается ErrSubmissionFailed.
func (w *Wizard) ConfirmBooking(ctx context.Context) (domain.BookingRecord, error) {
	w.mu.Lock()
	if err := w.guardLocked(); err != nil {
		w.mu.Unlock()
		return domain.BookingRecord{}, err
	}
	if w.step != domain.StepConfirm {
		w.mu.Unlock()
		return domain.BookingRecord{}, ErrNotOnConfirmStep
	}
	if !w.record.IsComplete() {
		w.mu.Unlock()
		return domain.BookingRecord{}, ErrIncompleteBooking
	}

	record := w.record.Clone()
	w.busy = true
	w.mu.Unlock()

	err := w.submitter.Submit(context.WithoutCancel(ctx), record.Clone())

	w.mu.Lock()
	defer w.mu.Unlock()
	w.busy = false

	if err != nil {
		return record, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	w.resetLocked()
	return record, nil
}

// Reset очищает запись и возвращает мастер на шаг Date
func (w *Wizard) Reset() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.guardLocked(); err != nil {
		return err
	}

	w.resetLocked()
	return nil
}

// Close помечает мастер удалённым; занятый мастер закрыть нельзя
// После закрытия все изменяющие операции возвращают ErrWizardClosed
func (w *Wizard) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.busy {
		return ErrSubmissionInProgress
	}
	w.closed = true
	return nil
}

func (w *Wizard) guardLocked() error {
	if w.closed {
		return ErrWizardClosed
	}
	if w.busy {
		return ErrSubmissionInProgress
	}
	return nil
}

func (w *Wizard) resetLocked() {
	w.record = domain.BookingRecord{}
	w.step = domain.StepDate
}
