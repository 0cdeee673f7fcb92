package models

import (
	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	"github.com/m04kA/SMC-BookingWizard/internal/validation"
	"github.com/m04kA/SMC-BookingWizard/internal/wizard"
)

// Request модели

// SelectDateRequest запрос на выбор даты
type SelectDateRequest struct {
	Date string `json:"date"` // "2026-10-20"
}

// SelectTimeSlotRequest запрос на выбор слота
type SelectTimeSlotRequest struct {
	TimeSlot string `json:"timeSlot"` // "10:00"
}

// SelectServiceRequest запрос на выбор услуги
type SelectServiceRequest struct {
	ServiceID string `json:"serviceId"`
}

// AdvanceRequest запрос на переход к шагу
// Пустой Step означает следующий шаг
type AdvanceRequest struct {
	Step string `json:"step,omitempty"`
}

// ValidateFieldRequest запрос на проверку одного поля формы (on-blur)
type ValidateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// CustomerRequest данные формы клиента
type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes,omitempty"`
}

// ToValidationInput конвертирует request во входные данные валидатора
func (r CustomerRequest) ToValidationInput() validation.CustomerInput {
	return validation.CustomerInput{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Notes: r.Notes,
	}
}

// Response модели

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// CustomerResponse данные клиента
type CustomerResponse struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone string  `json:"phone"`
	Notes *string `json:"notes,omitempty"`
}

// RecordResponse запись бронирования; незаполненные поля - null
type RecordResponse struct {
	Date     *string           `json:"date"`
	TimeSlot *string           `json:"timeSlot"`
	EndTime  *string           `json:"endTime,omitempty"` // слот + длительность услуги
	Service  *ServiceResponse  `json:"service"`
	Customer *CustomerResponse `json:"customer"`
}

// CustomerForm значения для предзаполнения формы на шаге Details
type CustomerForm struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// WizardResponse состояние мастера
type WizardResponse struct {
	ID             string         `json:"id"`
	Step           string         `json:"step"`
	Busy           bool           `json:"busy"`
	CanAdvance     bool           `json:"canAdvance"`
	ReachableSteps []string       `json:"reachableSteps"`
	Record         RecordResponse `json:"record"`
	CustomerForm   CustomerForm   `json:"customerForm"`
}

// StepResponse результат навигации по шагам
// Advanced = false - переход заблокирован, состояние не изменилось
type StepResponse struct {
	Advanced bool           `json:"advanced"`
	Wizard   WizardResponse `json:"wizard"`
}

// ValidateFieldResponse результат проверки поля
type ValidateFieldResponse struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// CleanupResult результат очистки простаивающих сессий
type CleanupResult struct {
	Removed int
	Active  int
}

// FromDomainService конвертирует domain.Service в response
func FromDomainService(s domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
	}
}

// FromDomainServices конвертирует список услуг
func FromDomainServices(services []domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		result = append(result, FromDomainService(s))
	}
	return result
}

// FromDomainRecord конвертирует domain.BookingRecord в response
func FromDomainRecord(r domain.BookingRecord) RecordResponse {
	var resp RecordResponse

	if r.Date != nil {
		date := r.Date.Format(domain.DateFormat)
		resp.Date = &date
	}
	if r.TimeSlot != nil {
		slot := r.TimeSlot.String()
		resp.TimeSlot = &slot
	}
	if r.Service != nil {
		service := FromDomainService(*r.Service)
		resp.Service = &service
	}
	if end, err := r.EndTime(); err == nil {
		endTime := end.String()
		resp.EndTime = &endTime
	}
	if r.Customer != nil {
		resp.Customer = &CustomerResponse{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
			Notes: r.Customer.Notes,
		}
	}

	return resp
}

// FromState конвертирует снимок мастера в response
func FromState(id string, state wizard.State) WizardResponse {
	reachable := make([]string, 0, len(state.Reachable))
	for _, step := range state.Reachable {
		reachable = append(reachable, step.String())
	}

	return WizardResponse{
		ID:             id,
		Step:           state.Step.String(),
		Busy:           state.Busy,
		CanAdvance:     !state.Busy && domain.CanAdvance(state.Step, state.Record),
		ReachableSteps: reachable,
		Record:         FromDomainRecord(state.Record),
		CustomerForm:   customerForm(state.Record.Customer),
	}
}

func customerForm(c *domain.CustomerInfo) CustomerForm {
	if c == nil {
		return CustomerForm{}
	}

	form := CustomerForm{
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
	if c.Notes != nil {
		form.Notes = *c.Notes
	}
	return form
}
