package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BookingWizard/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	Date      time.Time // Дата для получения слотов
	ServiceID *string   // Услуга для расчёта времени окончания (опционально)
}

// Response модель ответа со списком слотов
type Response struct {
	Date       time.Time // Дата, на которую запрашивались слоты
	Selectable bool      // false - дата в прошлом или выходной, слотов нет
	Slots      []Slot    // Слоты в порядке возрастания
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString  // Время начала слота (например, "10:00")
	EndTime   *types.TimeString // Время окончания, если указана услуга
}
