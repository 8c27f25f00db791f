package triangle

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"go-triangle-arbitrage/domain"
	"go-triangle-arbitrage/resolve"
)

// Service evaluates a currency cycle end to end
type Service interface {
	Evaluate(ctx context.Context, cycle domain.Cycle) (domain.Evaluation, error)
}

// Config evaluation settings
type Config struct {
	// ThresholdBps minimum gross return, in basis points, reported as an opportunity
	ThresholdBps float64

	// Notional amount of the start currency sent round the cycle; defaults to 1
	Notional float64
}

// service resolves the three legs in order, then evaluates them
type service struct {
	// resolver resolves each leg of the cycle
	resolver resolve.Service

	cfg Config

	now   func() time.Time
	newID func() string
}

// NewService constructs a valid Service
func NewService(r resolve.Service, cfg Config) Service {
	if cfg.Notional <= 0 {
		cfg.Notional = 1
	}
	return &service{
		resolver: r,
		cfg:      cfg,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Evaluate validates the cycle before any quote is requested, then resolves
// A→B, B→C and C→A one after another. The first leg that cannot be resolved
// aborts the evaluation with a *domain.LegError.
func (s *service) Evaluate(ctx context.Context, cycle domain.Cycle) (domain.Evaluation, error) {
	if err := cycle.Validate(); err != nil {
		return domain.Evaluation{}, err
	}

	var legs [3]domain.ResolvedRate
	for i, pair := range cycle.Legs() {
		resolved, err := s.resolver.Resolve(ctx, pair.From, pair.To)
		if err != nil {
			return domain.Evaluation{}, &domain.LegError{Index: i, Pair: pair, Err: err}
		}
		legs[i] = resolved
	}

	result, err := Evaluate(legs[0].Rate, legs[1].Rate, legs[2].Rate)
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("evaluate [%v]: %w", cycle, err)
	}
	check, err := CrossCheck(cycle, result)
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("cross check [%v]: %w", cycle, err)
	}

	opportunity := Assess(result, s.cfg.ThresholdBps)
	outcome := s.cfg.Notional * result.Product
	for _, v := range [...]struct {
		name  string
		value float64
	}{
		{"return_bps", opportunity.ReturnBps},
		{"threshold_bps", opportunity.ThresholdBps},
		{"outcome", outcome},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return domain.Evaluation{}, fmt.Errorf("evaluate [%v]: %w: %v %v", cycle, domain.ErrNonFiniteRate, v.name, v.value)
		}
	}

	return domain.Evaluation{
		ID:          s.newID(),
		Cycle:       cycle,
		Legs:        legs,
		Result:      result,
		CrossCheck:  check,
		Opportunity: opportunity,
		Notional:    s.cfg.Notional,
		Outcome:     outcome,
		EvaluatedAt: s.now().UTC(),
	}, nil
}
