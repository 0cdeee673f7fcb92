package wizards

import "errors"

var (
	// ErrWizardNotFound возвращается, когда сессия мастера не найдена
	ErrWizardNotFound = errors.New("wizards: wizard not found")

	// ErrTooManyWizards возвращается при превышении лимита сессий
	ErrTooManyWizards = errors.New("wizards: too many active wizards")

	// ErrWizardBusy возвращается, пока выполняется подтверждение бронирования
	ErrWizardBusy = errors.New("wizards: confirmation in progress")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("wizards: invalid date")

	// ErrDateNotSelectable возвращается для прошедших дат и выходного дня
	ErrDateNotSelectable = errors.New("wizards: date is not selectable")

	// ErrInvalidTimeSlot возвращается при некорректном формате слота
	ErrInvalidTimeSlot = errors.New("wizards: invalid time slot")

	// ErrTimeSlotNotFound возвращается, если слота нет в каталоге
	ErrTimeSlotNotFound = errors.New("wizards: time slot not found")

	// ErrServiceNotFound возвращается, если услуги нет в каталоге
	ErrServiceNotFound = errors.New("wizards: service not found")

	// ErrInvalidStep возвращается при неизвестном имени шага
	ErrInvalidStep = errors.New("wizards: invalid step")

	// ErrUnknownField возвращается при неизвестном поле формы клиента
	ErrUnknownField = errors.New("wizards: unknown customer field")

	// ErrStepLocked возвращается, если для шага Details не выбрана услуга
	ErrStepLocked = errors.New("wizards: step is locked")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wizards: internal error")
)
