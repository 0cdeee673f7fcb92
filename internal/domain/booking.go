package domain

import (
	"time"

	"github.com/m04kA/SMC-BookingWizard/pkg/types"
)

// Service represents a bookable service from the catalog
type Service struct {
	ID              string
	Name            string
	DurationMinutes int
	Price           float64
}

// CustomerInfo represents customer details that passed validation
type CustomerInfo struct {
	Name  string
	Email string
	Phone string
	Notes *string // Пожелания клиента (опционально)
}

// BookingRecord accumulated in-progress booking data owned by a wizard
// Все поля опциональны: nil означает, что значение ещё не выбрано
type BookingRecord struct {
	Date     *time.Time
	TimeSlot *types.TimeString
	Service  *Service
	Customer *CustomerInfo
}

// HasDate returns true if a calendar date has been chosen
func (r BookingRecord) HasDate() bool {
	return r.Date != nil
}

// HasTimeSlot returns true if a time slot has been chosen
func (r BookingRecord) HasTimeSlot() bool {
	return r.TimeSlot != nil
}

// HasService returns true if a service has been chosen
func (r BookingRecord) HasService() bool {
	return r.Service != nil
}

// HasCustomer returns true if customer details have been submitted
func (r BookingRecord) HasCustomer() bool {
	return r.Customer != nil
}

// IsComplete returns true if all four fields are set
func (r BookingRecord) IsComplete() bool {
	return r.HasDate() && r.HasTimeSlot() && r.HasService() && r.HasCustomer()
}

// IsEmpty returns true if no field is set
func (r BookingRecord) IsEmpty() bool {
	return !r.HasDate() && !r.HasTimeSlot() && !r.HasService() && !r.HasCustomer()
}

// EndTime returns the slot end computed from the service duration
func (r BookingRecord) EndTime() (types.TimeString, error) {
	if r.TimeSlot == nil || r.Service == nil {
		return "", ErrIncompleteRecord
	}
	return r.TimeSlot.AddMinutes(r.Service.DurationMinutes)
}

// Clone returns a deep copy, so callers never share pointers with the wizard
func (r BookingRecord) Clone() BookingRecord {
	var out BookingRecord

	if r.Date != nil {
		d := *r.Date
		out.Date = &d
	}
	if r.TimeSlot != nil {
		ts := *r.TimeSlot
		out.TimeSlot = &ts
	}
	if r.Service != nil {
		s := *r.Service
		out.Service = &s
	}
	if r.Customer != nil {
		c := *r.Customer
		if r.Customer.Notes != nil {
			notes := *r.Customer.Notes
			c.Notes = &notes
		}
		out.Customer = &c
	}

	return out
}
