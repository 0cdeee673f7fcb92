package domain

import "errors"

var (
	// ErrUnknownStep возвращается при неизвестном имени шага
	ErrUnknownStep = errors.New("domain: unknown wizard step")

	// ErrIncompleteRecord возвращается, когда для вычисления не хватает данных
	ErrIncompleteRecord = errors.New("domain: booking record is incomplete")
)
