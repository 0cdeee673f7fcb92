package list_time_slots

import (
	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BookingWizard/internal/usecase/get_available_slots"
)

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	Date       string         `json:"date"`
	Selectable bool           `json:"selectable"`
	Slots      []SlotResponse `json:"slots"`
}

// SlotResponse HTTP response model
type SlotResponse struct {
	StartTime string  `json:"startTime"`
	EndTime   *string `json:"endTime,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *TimeSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		item := SlotResponse{StartTime: slot.StartTime.String()}
		if slot.EndTime != nil {
			end := slot.EndTime.String()
			item.EndTime = &end
		}
		slots = append(slots, item)
	}

	return &TimeSlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		Selectable: resp.Selectable,
		Slots:      slots,
	}
}
