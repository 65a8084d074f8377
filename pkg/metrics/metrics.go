package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Фоновая финализация записей
	AppointmentsFinalized *prometheus.CounterVec
	FinalizerTickErrors   prometheus.Counter

	// Пул соединений с БД
	DBOpenConnections  prometheus.Gauge
	DBIdleConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		AppointmentsFinalized: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_finalized_total",
			Help:        "Total number of appointments transitioned by the finalizer",
			ConstLabels: constLabels,
		}, []string{"transition"}),

		FinalizerTickErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "finalizer_tick_errors_total",
			Help:        "Total number of failed finalizer ticks",
			ConstLabels: constLabels,
		}),

		DBOpenConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of open connections to the database",
			ConstLabels: constLabels,
		}),

		DBIdleConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections in the pool",
			ConstLabels: constLabels,
		}),

		DBInUseConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveTransition учитывает массовый переход статусов при финализации
func (m *Metrics) ObserveTransition(transition string, count int64) {
	m.AppointmentsFinalized.WithLabelValues(transition).Add(float64(count))
}

// ObserveTickError учитывает неудавшийся тик финализации
func (m *Metrics) ObserveTickError() {
	m.FinalizerTickErrors.Inc()
}

// CollectDBStats периодически снимает статистику пула соединений.
// Останавливается при закрытии stopCh.
func (m *Metrics) CollectDBStats(db *sql.DB, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := db.Stats()
			m.DBOpenConnections.Set(float64(stats.OpenConnections))
			m.DBIdleConnections.Set(float64(stats.Idle))
			m.DBInUseConnections.Set(float64(stats.InUse))
		}
	}
}
