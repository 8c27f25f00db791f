package triangle

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-triangle-arbitrage/domain"
)

// loggingService decorates a triangle.Service with logging
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

func (s *loggingService) Evaluate(ctx context.Context, cycle domain.Cycle) (ev domain.Evaluation, err error) {
	defer func(begin time.Time) {
		logger := level.Info(s.logger)
		if err != nil {
			logger = level.Warn(s.logger)
		}
		logger.Log(
			"method", "evaluate",
			"id", ev.ID,
			"cycle", cycle,
			"product", ev.Result.Product,
			"direction", ev.Opportunity.Direction,
			"return_bps", ev.Opportunity.ReturnBps,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Evaluate(ctx, cycle)
}
