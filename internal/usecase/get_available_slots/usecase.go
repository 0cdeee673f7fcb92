package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	"github.com/m04kA/SMC-BookingWizard/internal/service/catalog"
)

// UseCase use case для получения слотов на дату
type UseCase struct {
	catalog Catalog
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog Catalog, logger Logger) *UseCase {
	return &UseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// Execute возвращает слоты каталога для выбираемой даты
// Для прошедших дат и выходного дня список пустой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 2. Получаем услугу, если указана
	var service *domain.Service
	if req.ServiceID != nil {
		s, err := uc.catalog.GetService(*req.ServiceID)
		if err != nil {
			if errors.Is(err, catalog.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableSlots: service id=%s not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		service = &s
	}

	resp := &Response{
		Date:       req.Date,
		Selectable: uc.catalog.IsSelectable(req.Date),
		Slots:      []Slot{},
	}

	// 3. Закрытая дата - пустой список
	if !resp.Selectable {
		uc.logger.Info("GetAvailableSlots: date=%s is not selectable", req.Date.Format(domain.DateFormat))
		return resp, nil
	}

	// 4. Собираем слоты; услуга, не помещающаяся в сутки, отбрасывает слот
	for _, start := range uc.catalog.ListTimeSlots() {
		slot := Slot{StartTime: start}
		if service != nil {
			end, err := start.AddMinutes(service.DurationMinutes)
			if err != nil {
				continue
			}
			slot.EndTime = &end
		}
		resp.Slots = append(resp.Slots, slot)
	}

	uc.logger.Info("GetAvailableSlots: date=%s, found %d slots", req.Date.Format(domain.DateFormat), len(resp.Slots))
	return resp, nil
}
