package wizard

import "errors"

var (
	// ErrSubmissionInProgress возвращается, пока подтверждение ещё выполняется
	ErrSubmissionInProgress = errors.New("wizard: submission in progress")

	// ErrSubmissionFailed возвращается, когда внешний сервис отклонил бронирование
	// Состояние мастера при этом не меняется, можно повторить попытку
	ErrSubmissionFailed = errors.New("wizard: submission failed")

	// ErrIncompleteBooking возвращается при подтверждении неполного бронирования
	ErrIncompleteBooking = errors.New("wizard: missing booking information")

	// ErrNotOnConfirmStep возвращается при подтверждении не с шага Confirm
	ErrNotOnConfirmStep = errors.New("wizard: confirm step is not active")

	// ErrStepLocked возвращается, когда для операции не выполнено условие шага
	ErrStepLocked = errors.New("wizard: step is locked")

	// ErrWizardClosed возвращается после удаления мастера
	ErrWizardClosed = errors.New("wizard: wizard is closed")
)
