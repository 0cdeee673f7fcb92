package confirm_booking

import "errors"

var (
	// ErrWizardNotFound возвращается, когда сессия мастера не найдена
	ErrWizardNotFound = errors.New("confirm_booking: wizard not found")

	// ErrWizardBusy возвращается, пока предыдущее подтверждение ещё выполняется
	ErrWizardBusy = errors.New("confirm_booking: confirmation already in progress")

	// ErrIncompleteBooking возвращается, если мастер не на шаге Confirm или запись неполная
	ErrIncompleteBooking = errors.New("confirm_booking: missing booking information")

	// ErrSubmissionFailed возвращается, когда внешний сервис не принял бронирование
	// Состояние мастера сохраняется, можно повторить попытку
	ErrSubmissionFailed = errors.New("confirm_booking: submission failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
