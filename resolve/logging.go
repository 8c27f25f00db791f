package resolve

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-triangle-arbitrage/domain"
)

// loggingService decorates a resolve.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Resolve(ctx context.Context, from domain.Currency, to domain.Currency) (r domain.ResolvedRate, err error) {
	defer func(begin time.Time) {
		logger := level.Debug(s.logger)
		if err != nil {
			logger = level.Warn(s.logger)
		}
		logger.Log(
			"method", "resolve",
			"from", from,
			"to", to,
			"rate", r.Rate,
			"ticker", r.Ticker,
			"inverted", r.Inverted,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Resolve(ctx, from, to)
}
