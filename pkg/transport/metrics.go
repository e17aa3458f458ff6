package transport

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	pkghttp "github.com/jdziat/hubspot-go/pkg/http"
)

// Metrics holds the Prometheus collectors recorded by Instrument.
//
// Metrics recorded:
//   - hubspot_http_requests_total (counter): requests by method and status
//     code; transport failures use the code "error"
//   - hubspot_http_request_duration_seconds (histogram): latency by method
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg registers nothing, which is useful in tests.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hubspot",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HubSpot API requests by method and status code.",
		}, []string{"method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hubspot",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HubSpot API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.requests, m.duration} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Instrument wraps next so every call is counted and timed in m.
// Responses and errors are returned unchanged.
func Instrument(next pkghttp.Transport, m *Metrics) pkghttp.Transport {
	return pkghttp.TransportFunc(func(ctx context.Context, method pkghttp.Method, url string, opts *pkghttp.Options) (*pkghttp.Response, error) {
		start := time.Now()
		resp, err := pkghttp.Do(ctx, next, method, url, opts)

		code := "error"
		if err == nil && resp != nil {
			code = strconv.Itoa(resp.StatusCode)
		}
		m.requests.WithLabelValues(string(method), code).Inc()
		m.duration.WithLabelValues(string(method)).Observe(time.Since(start).Seconds())

		return resp, err
	})
}
