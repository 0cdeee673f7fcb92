package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "booking_wizard"

// Результаты подтверждения бронирования
const (
	ConfirmationSuccess  = "success"
	ConfirmationFailure  = "failure"
	ConfirmationRejected = "rejected"
)

// Metrics коллекторы Prometheus для HTTP и мастера бронирования
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	activeWizards       prometheus.Gauge
	stepTransitions     *prometheus.CounterVec
	validationFailures  *prometheus.CounterVec
	confirmations       *prometheus.CounterVec
	submissionDuration  *prometheus.HistogramVec
}

// New создает метрики и регистрирует их в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном registerer
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		activeWizards: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "wizard",
			Name:        "active_sessions",
			Help:        "Wizard sessions currently held in memory",
			ConstLabels: constLabels,
		}),
		stepTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "wizard",
			Name:        "step_transitions_total",
			Help:        "Step navigation attempts by target step and outcome",
			ConstLabels: constLabels,
		}, []string{"step", "advanced"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "wizard",
			Name:        "validation_failures_total",
			Help:        "Customer field validation failures",
			ConstLabels: constLabels,
		}, []string{"field"}),
		confirmations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "wizard",
			Name:        "confirmations_total",
			Help:        "Booking confirmation attempts by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
		submissionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "wizard",
			Name:        "submission_duration_seconds",
			Help:        "Latency of the booking submission collaborator",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"result"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.activeWizards,
		m.stepTransitions,
		m.validationFailures,
		m.confirmations,
		m.submissionDuration,
	)

	return m
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// SetActiveWizards выставляет количество активных сессий мастера
func (m *Metrics) SetActiveWizards(n int) {
	if m == nil {
		return
	}
	m.activeWizards.Set(float64(n))
}

// ObserveStepTransition учитывает попытку перехода на шаг
func (m *Metrics) ObserveStepTransition(step string, advanced bool) {
	if m == nil {
		return
	}
	m.stepTransitions.WithLabelValues(step, strconv.FormatBool(advanced)).Inc()
}

// ObserveValidationFailure учитывает ошибку валидации поля
func (m *Metrics) ObserveValidationFailure(field string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(field).Inc()
}

// ObserveConfirmation учитывает попытку подтверждения бронирования
// duration учитывается только для попыток, дошедших до внешнего сервиса
func (m *Metrics) ObserveConfirmation(result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.confirmations.WithLabelValues(result).Inc()
	if result != ConfirmationRejected {
		m.submissionDuration.WithLabelValues(result).Observe(duration.Seconds())
	}
}
