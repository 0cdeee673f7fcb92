package wizard

import "errors"

var (
	// ErrWizardNotFound возвращается, когда сессия мастера не найдена
	ErrWizardNotFound = errors.New("wizard.repository: wizard not found")

	// ErrTooManyWizards возвращается при превышении лимита сессий
	ErrTooManyWizards = errors.New("wizard.repository: too many active wizards")

	// ErrWizardBusy возвращается при удалении сессии, у которой идёт подтверждение
	ErrWizardBusy = errors.New("wizard.repository: wizard is busy")
)
