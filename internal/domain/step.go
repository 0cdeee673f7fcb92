package domain

import (
	"fmt"
	"strings"
)

// Step one stage of the booking wizard, totally ordered
type Step int

const (
	StepDate Step = iota
	StepTime
	StepService
	StepDetails
	StepConfirm
)

// Steps all wizard steps in navigation order
var Steps = []Step{StepDate, StepTime, StepService, StepDetails, StepConfirm}

var stepNames = map[Step]string{
	StepDate:    "date",
	StepTime:    "time",
	StepService: "service",
	StepDetails: "details",
	StepConfirm: "confirm",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// IsValid returns true if the step belongs to the wizard
func (s Step) IsValid() bool {
	return s >= StepDate && s <= StepConfirm
}

// Next returns the following step, ok=false on the last one
func (s Step) Next() (Step, bool) {
	if !s.IsValid() || s == StepConfirm {
		return s, false
	}
	return s + 1, true
}

// Prev returns the preceding step, ok=false on the first one
func (s Step) Prev() (Step, bool) {
	if !s.IsValid() || s == StepDate {
		return s, false
	}
	return s - 1, true
}

// ParseStep парсит имя шага ("date", "time", "service", "details", "confirm")
func ParseStep(name string) (Step, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for step, stepName := range stepNames {
		if stepName == normalized {
			return step, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStep, name)
}

// CanEnter gating invariant: step is reachable for the given record
// Time требует дату, Service - слот, Details - услугу, Confirm - все четыре поля
func CanEnter(step Step, record BookingRecord) bool {
	switch step {
	case StepDate:
		return true
	case StepTime:
		return record.HasDate()
	case StepService:
		return record.HasTimeSlot()
	case StepDetails:
		return record.HasService()
	case StepConfirm:
		return record.IsComplete()
	default:
		return false
	}
}

// CanAdvance returns true if the step after from is reachable
// Используется и UI (блокировка кнопки Next), и самим переходом
func CanAdvance(from Step, record BookingRecord) bool {
	next, ok := from.Next()
	if !ok {
		return false
	}
	return CanEnter(next, record)
}

// ReachableSteps returns every step whose gate holds for the record
func ReachableSteps(record BookingRecord) []Step {
	reachable := make([]Step, 0, len(Steps))
	for _, step := range Steps {
		if CanEnter(step, record) {
			reachable = append(reachable, step)
		}
	}
	return reachable
}
