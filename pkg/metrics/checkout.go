package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records settlement outcomes and gateway health.
type CheckoutMetrics struct {
	duration        *prometheus.HistogramVec
	settlements     *prometheus.CounterVec
	gatewayFailures prometheus.Counter
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "settlement_duration_seconds",
		Help:    "Duration of payment settlements in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
	settlements := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "settlements_total",
		Help: "Completed settlements by method and status.",
	}, []string{"method", "status"})
	gatewayFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_failures_total",
		Help: "Failed payment gateway intent creations.",
	})
	reg.MustRegister(duration, settlements, gatewayFailures)
	return &CheckoutMetrics{
		duration:        duration,
		settlements:     settlements,
		gatewayFailures: gatewayFailures,
	}
}

// ObserveSettlement records one finished settlement.
func (c *CheckoutMetrics) ObserveSettlement(method, status string, duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(method).Observe(duration.Seconds())
	c.settlements.WithLabelValues(method, status).Inc()
}

// IncGatewayFailure counts one failed gateway call.
func (c *CheckoutMetrics) IncGatewayFailure() {
	if c == nil || c.gatewayFailures == nil {
		return
	}
	c.gatewayFailures.Inc()
}
