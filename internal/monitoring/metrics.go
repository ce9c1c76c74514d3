// Package monitoring содержит prometheus метрики сервиса.
package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yield_http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "yield_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	SettlementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yield_settlements_total",
		Help: "Pending transactions settled by an admin, by type and outcome.",
	}, []string{"type", "outcome"})

	PlanPurchasesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yield_plan_purchases_total",
		Help: "Total number of plan purchases.",
	})

	AccrualsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yield_interest_accruals_total",
		Help: "Total number of daily interest credits.",
	})

	AdvisorFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yield_advisor_fallbacks_total",
		Help: "Advisor requests answered with the static fallback.",
	})
)

// Middleware считает запросы и их длительность. Путь берется из шаблона
// роута, чтобы не раздувать кардинальность метрик параметрами.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
	}
}
