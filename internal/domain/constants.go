package domain

import (
	"time"

	"github.com/m04kA/SMC-BookingWizard/pkg/types"
)

// Time format constants
const (
	TimeFormat = types.TimeFormat // HH:MM
	DateFormat = "2006-01-02"     // YYYY-MM-DD
)

// DefaultClosedDay день недели, когда салон закрыт
const DefaultClosedDay = time.Sunday

// Business validation constants
const (
	MinNameLength  = 2
	MinPhoneLength = 10
	MaxPhoneLength = 15
)

// DefaultServices каталог услуг по умолчанию
var DefaultServices = []Service{
	{ID: "haircut", Name: "Haircut", DurationMinutes: 30, Price: 35},
	{ID: "haircut-style", Name: "Haircut & Styling", DurationMinutes: 45, Price: 50},
	{ID: "color", Name: "Hair Coloring", DurationMinutes: 90, Price: 85},
	{ID: "highlights", Name: "Highlights", DurationMinutes: 120, Price: 110},
	{ID: "blowout", Name: "Blowout", DurationMinutes: 30, Price: 30},
	{ID: "treatment", Name: "Hair Treatment", DurationMinutes: 45, Price: 45},
}

// DefaultTimeSlots получасовые слоты двух смен с обеденным перерывом 12:00-13:00
var DefaultTimeSlots = []types.TimeString{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
}
