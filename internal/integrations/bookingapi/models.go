package bookingapi

// BookingPayload тело запроса на создание бронирования во внешнем сервисе
type BookingPayload struct {
	Date     string          `json:"date"`     // "2026-10-20"
	TimeSlot string          `json:"timeSlot"` // "10:00"
	Service  ServicePayload  `json:"service"`
	Customer CustomerPayload `json:"customer"`
}

// ServicePayload выбранная услуга
type ServicePayload struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// CustomerPayload данные клиента
type CustomerPayload struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone string  `json:"phone"`
	Notes *string `json:"notes,omitempty"`
}

// ErrorResponse модель ошибки от внешнего сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
