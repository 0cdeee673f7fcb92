package catalog

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	"github.com/m04kA/SMC-BookingWizard/pkg/types"
)

// Service статические каталоги услуг и слотов плюс правило выбора даты
type Service struct {
	services     []domain.Service
	servicesByID map[string]domain.Service
	timeSlots    []types.TimeString
	closedDay    time.Weekday
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// Options параметры каталога; пустые списки заменяются значениями по умолчанию
type Options struct {
	Services  []domain.Service
	TimeSlots []types.TimeString
	ClosedDay time.Weekday
	Location  *time.Location
}

// NewService создает каталог и проверяет его корректность
func NewService(opts Options, logger Logger) (*Service, error) {
	services := opts.Services
	if len(services) == 0 {
		services = domain.DefaultServices
	}
	slots := opts.TimeSlots
	if len(slots) == 0 {
		slots = domain.DefaultTimeSlots
	}
	location := opts.Location
	if location == nil {
		location = time.UTC
	}

	if err := validateServices(services); err != nil {
		return nil, err
	}
	if err := validateTimeSlots(slots); err != nil {
		return nil, err
	}
	if opts.ClosedDay < time.Sunday || opts.ClosedDay > time.Saturday {
		return nil, fmt.Errorf("%w: closed day %d out of range", ErrInvalidCatalog, opts.ClosedDay)
	}

	byID := make(map[string]domain.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	logger.Info("Catalog: %d services, %d time slots, closed on %s, timezone=%s",
		len(services), len(slots), opts.ClosedDay, location)

	return &Service{
		services:     append([]domain.Service(nil), services...),
		servicesByID: byID,
		timeSlots:    append([]types.TimeString(nil), slots...),
		closedDay:    opts.ClosedDay,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}, nil
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// ListServices возвращает копию каталога услуг
func (s *Service) ListServices() []domain.Service {
	return append([]domain.Service(nil), s.services...)
}

// GetService ищет услугу по ID
func (s *Service) GetService(id string) (domain.Service, error) {
	service, ok := s.servicesByID[id]
	if !ok {
		return domain.Service{}, fmt.Errorf("%w: id=%q", ErrServiceNotFound, id)
	}
	return service, nil
}

// ListTimeSlots возвращает копию каталога слотов
func (s *Service) ListTimeSlots() []types.TimeString {
	return append([]types.TimeString(nil), s.timeSlots...)
}

// HasTimeSlot проверяет, что слот есть в каталоге
func (s *Service) HasTimeSlot(slot types.TimeString) bool {
	for _, ts := range s.timeSlots {
		if ts == slot {
			return true
		}
	}
	return false
}

// Location возвращает часовой пояс салона
func (s *Service) Location() *time.Location {
	return s.location
}

// ClosedDay возвращает выходной день недели
func (s *Service) ClosedDay() time.Weekday {
	return s.closedDay
}

// IsSelectable правило календаря: date >= today и не выходной день
func (s *Service) IsSelectable(date time.Time) bool {
	return isSelectable(date, s.timeProvider.Now(), s.closedDay, s.location)
}

// ParseDate парсит дату YYYY-MM-DD в часовом поясе салона
func (s *Service) ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, value, s.location)
}

func isSelectable(date, now time.Time, closedDay time.Weekday, location *time.Location) bool {
	localNow := now.In(location)
	today := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, location)

	localDate := date.In(location)
	day := time.Date(localDate.Year(), localDate.Month(), localDate.Day(), 0, 0, 0, 0, location)

	if day.Before(today) {
		return false
	}
	return day.Weekday() != closedDay
}

func validateServices(services []domain.Service) error {
	seen := make(map[string]struct{}, len(services))
	for _, s := range services {
		if s.ID == "" {
			return fmt.Errorf("%w: service id is required", ErrInvalidCatalog)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("%w: duplicate service id %q", ErrInvalidCatalog, s.ID)
		}
		seen[s.ID] = struct{}{}

		if s.Name == "" {
			return fmt.Errorf("%w: service %q has no name", ErrInvalidCatalog, s.ID)
		}
		if s.DurationMinutes <= 0 {
			return fmt.Errorf("%w: service %q duration must be positive", ErrInvalidCatalog, s.ID)
		}
		if s.Price < 0 {
			return fmt.Errorf("%w: service %q price must be non-negative", ErrInvalidCatalog, s.ID)
		}
	}
	return nil
}

func validateTimeSlots(slots []types.TimeString) error {
	for i, slot := range slots {
		if err := slot.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
		// слоты должны идти строго по возрастанию
		if i > 0 && !slots[i-1].IsBefore(slot) {
			return fmt.Errorf("%w: time slots must be strictly ascending (%s after %s)",
				ErrInvalidCatalog, slot, slots[i-1])
		}
	}
	return nil
}
