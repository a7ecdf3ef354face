package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics контейнер prometheus-коллекторов сервиса
type Metrics struct {
	// HTTP метрики (заполняются через middleware)
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Доменные метрики бронирований
	BookingsTotal *prometheus.CounterVec
}

// New регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		BookingsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "bookings_total",
				Help:        "Booking attempts by result (created or rejection reason)",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
	}
}

// IncBooking инкрементирует счетчик попыток бронирования
func (m *Metrics) IncBooking(result string) {
	m.BookingsTotal.WithLabelValues(result).Inc()
}

// Booking result label values
const (
	ResultCreated             = "created"
	ResultInvalidDate         = "invalid_date"
	ResultUserNotFound        = "user_not_found"
	ResultRoomNotFound        = "room_not_found"
	ResultRoomNotAvailable    = "room_not_available"
	ResultInsufficientBalance = "insufficient_balance"
	ResultError               = "error"
)
