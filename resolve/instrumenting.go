package resolve

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go-triangle-arbitrage/domain"
)

// instrumentingService counts how each resolution was obtained
type instrumentingService struct {
	resolutions *prometheus.CounterVec
	next        Service
}

// NewInstrumentingService registers resolver metrics with reg and returns the decorated Service
func NewInstrumentingService(reg prometheus.Registerer, s Service) Service {
	return &instrumentingService{
		resolutions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "rate_resolutions_total",
			Help: "Rate resolutions by path: direct, inverse, unavailable, non_finite or error",
		}, []string{"path"}),
		next: s,
	}
}

func (s *instrumentingService) Resolve(ctx context.Context, from domain.Currency, to domain.Currency) (r domain.ResolvedRate, err error) {
	defer func() {
		s.resolutions.WithLabelValues(resolutionPath(r, err)).Inc()
	}()
	return s.next.Resolve(ctx, from, to)
}

func resolutionPath(r domain.ResolvedRate, err error) string {
	switch {
	case errors.Is(err, domain.ErrQuoteUnavailable):
		return "unavailable"
	case errors.Is(err, domain.ErrNonFiniteRate):
		return "non_finite"
	case err != nil:
		return "error"
	case r.Inverted:
		return "inverse"
	default:
		return "direct"
	}
}
