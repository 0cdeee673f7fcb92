package get_available_slots

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ServiceID != nil && strings.TrimSpace(*req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId must not be empty", ErrInvalidInput)
	}

	return nil
}
