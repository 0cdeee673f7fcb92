package check_date

import "time"

type Calendar interface {
	ParseDate(value string) (time.Time, error)
	IsSelectable(date time.Time) bool
	ClosedDay() time.Weekday
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
