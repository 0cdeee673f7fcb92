package simulated

import "errors"

var (
	// ErrIncompleteRecord возвращается при попытке отправить неполную запись
	ErrIncompleteRecord = errors.New("simulated submitter: incomplete booking record")

	// ErrCanceled возвращается, если контекст отменён до окончания задержки
	ErrCanceled = errors.New("simulated submitter: canceled")
)
