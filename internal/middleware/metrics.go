package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evtele_redis_errors_total",
		Help: "Total number of Redis command errors",
	}, []string{"command"})

	// AuthFailures counts rejected authentication attempts by reason.
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evtele_auth_failures_total",
		Help: "Total number of rejected authentication attempts",
	}, []string{"reason"})
)

// NewPrometheusMiddleware creates the fiberprometheus middleware and registers
// its handler on the app at /metrics.
func NewPrometheusMiddleware(app *fiber.App, serviceName string) *fiberprometheus.FiberPrometheus {
	prom := fiberprometheus.New(serviceName)
	prom.RegisterAt(app, "/metrics")
	return prom
}
