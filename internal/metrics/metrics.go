package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	BookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teide_bookings_created_total",
			Help: "Number of bookings created",
		},
		[]string{"service_slug"},
	)

	ReferenceCollisions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "teide_booking_reference_collisions_total",
			Help: "Number of booking reference collisions that triggered a retry",
		},
	)

	AdminLogins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teide_admin_logins_total",
			Help: "Admin login attempts by result and session strategy",
		},
		[]string{"result", "strategy"},
	)

	SessionsSwept = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "teide_sessions_swept_total",
			Help: "Expired durable sessions removed by the scheduled sweep",
		},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "teide_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

func Register() {
	prometheus.MustRegister(
		BookingsCreated,
		ReferenceCollisions,
		AdminLogins,
		SessionsSwept,
		HTTPRequestDuration,
	)
}
