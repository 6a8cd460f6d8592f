package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures, labeled by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkup_redis_errors_total",
		Help: "Total number of Redis command errors",
	}, []string{"command"})

	// FeedRequests counts feed page loads, labeled by feed kind.
	FeedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkup_feed_requests_total",
		Help: "Total number of feed page requests",
	}, []string{"feed"})

	// AuthFailures counts rejected authentication attempts by reason.
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkup_auth_failures_total",
		Help: "Total number of failed authentication attempts",
	}, []string{"reason"})
)

// InitMetrics creates the Prometheus HTTP middleware for the service.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-level Prometheus middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
