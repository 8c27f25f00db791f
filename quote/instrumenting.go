package quote

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go-triangle-arbitrage/domain"
)

// instrumentingService decorates a quote.Service with request metrics
type instrumentingService struct {
	backend  string
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	next     Service
}

// NewInstrumentingService registers quote metrics with reg and returns the decorated Service
func NewInstrumentingService(reg prometheus.Registerer, backend string, s Service) Service {
	factory := promauto.With(reg)
	return &instrumentingService{
		backend: backend,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "quote_requests_total",
			Help: "Quote requests by backend and outcome",
		}, []string{"backend", "outcome"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "quote_request_duration_seconds",
			Help:    "Quote request latency by backend",
			Buckets: prometheus.DefBuckets,
		}, []string{"backend"}),
		next: s,
	}
}

func (s *instrumentingService) LatestPrice(ctx context.Context, ticker string) (q domain.Quote, err error) {
	defer func(begin time.Time) {
		outcome := q.Status.String()
		if err != nil {
			outcome = "error"
		}
		s.requests.WithLabelValues(s.backend, outcome).Inc()
		s.latency.WithLabelValues(s.backend).Observe(time.Since(begin).Seconds())
	}(time.Now())
	return s.next.LatestPrice(ctx, ticker)
}
