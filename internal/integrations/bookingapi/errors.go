package bookingapi

import "errors"

var (
	// ErrSlotTaken возвращается, когда выбранный слот уже занят
	ErrSlotTaken = errors.New("bookingapi client: slot already taken")

	// ErrRejected возвращается, когда сервис отклонил данные бронирования
	ErrRejected = errors.New("bookingapi client: booking rejected")

	// ErrIncompleteRecord возвращается при попытке отправить неполную запись
	ErrIncompleteRecord = errors.New("bookingapi client: incomplete booking record")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")
)
