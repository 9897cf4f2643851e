package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса.
// HTTP-метрики пишет middleware, метрики БД - обёртка dbmetrics.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec

	dbPoolOpenConns  *prometheus.GaugeVec
	dbPoolInUseConns *prometheus.GaugeVec
	dbPoolIdleConns  *prometheus.GaugeVec
	dbPoolWaitCount  *prometheus.GaugeVec

	bookingsCreated   prometheus.Counter
	bookingsCancelled prometheus.Counter
	bookingsExtended  prometheus.Counter
	bookingsSwept     prometheus.Counter
}

// New регистрирует коллекторы в дефолтном регистре и возвращает Metrics
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		dbPoolOpenConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_open_connections",
			Help:        "Number of open connections in the pool",
			ConstLabels: constLabels,
		}, []string{"db"}),

		dbPoolInUseConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		dbPoolIdleConns: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_idle_connections",
			Help:        "Number of idle connections in the pool",
			ConstLabels: constLabels,
		}, []string{"db"}),

		dbPoolWaitCount: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		bookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "parking_bookings_created_total",
			Help:        "Total number of bookings created",
			ConstLabels: constLabels,
		}),

		bookingsCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "parking_bookings_cancelled_total",
			Help:        "Total number of bookings cancelled by their owners",
			ConstLabels: constLabels,
		}),

		bookingsExtended: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "parking_bookings_extended_total",
			Help:        "Total number of successful booking extensions",
			ConstLabels: constLabels,
		}),

		bookingsSwept: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "parking_bookings_swept_total",
			Help:        "Total number of elapsed bookings completed by the sweep",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest фиксирует завершённый HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueriesTotal.WithLabelValues(operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// Доменные счётчики терпимы к nil-получателю: когда метрики выключены,
// сервисы и usecases получают nil и инкременты становятся no-op.

// IncBookingsCreated фиксирует созданное бронирование
func (m *Metrics) IncBookingsCreated() {
	if m == nil {
		return
	}
	m.bookingsCreated.Inc()
}

// IncBookingsCancelled фиксирует отменённое бронирование
func (m *Metrics) IncBookingsCancelled() {
	if m == nil {
		return
	}
	m.bookingsCancelled.Inc()
}

// IncBookingsExtended фиксирует успешное продление бронирования
func (m *Metrics) IncBookingsExtended() {
	if m == nil {
		return
	}
	m.bookingsExtended.Inc()
}

// AddBookingsSwept фиксирует количество бронирований, завершённых sweep'ом
func (m *Metrics) AddBookingsSwept(n int64) {
	if m == nil {
		return
	}
	m.bookingsSwept.Add(float64(n))
}

// SetDBPoolStats обновляет gauge-метрики connection pool
func (m *Metrics) SetDBPoolStats(dbName string, stats sql.DBStats) {
	m.dbPoolOpenConns.WithLabelValues(dbName).Set(float64(stats.OpenConnections))
	m.dbPoolInUseConns.WithLabelValues(dbName).Set(float64(stats.InUse))
	m.dbPoolIdleConns.WithLabelValues(dbName).Set(float64(stats.Idle))
	m.dbPoolWaitCount.WithLabelValues(dbName).Set(float64(stats.WaitCount))
}
