package quote

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-triangle-arbitrage/domain"
)

// loggingService decorates a quote.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) LatestPrice(ctx context.Context, ticker string) (q domain.Quote, err error) {
	defer func(begin time.Time) {
		logger := level.Debug(s.logger)
		if err != nil {
			logger = level.Warn(s.logger)
		}
		logger.Log(
			"method", "latest_price",
			"ticker", ticker,
			"status", q.Status,
			"price", q.Price,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LatestPrice(ctx, ticker)
}
