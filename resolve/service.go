package resolve

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-triangle-arbitrage/domain"
	"go-triangle-arbitrage/quote"
)

// Service resolves the exchange rate for an ordered currency pair
type Service interface {
	Resolve(ctx context.Context, from domain.Currency, to domain.Currency) (domain.ResolvedRate, error)
}

// Config controls how tickers are built and how provider failures are treated.
type Config struct {
	// TickerSuffix appended to the concatenated currency codes; empty means domain.DefaultTickerSuffix
	TickerSuffix string

	// StrictErrors aborts on provider failures instead of treating them as missing data
	StrictErrors bool
}

// service tries the direct ticker, then the inverse ticker
type service struct {
	// quotes source of ticker prices
	quotes quote.Service

	suffix string
	strict bool

	// logger records provider failures that were downgraded to missing data
	logger log.Logger
}

// NewService constructs a valid Service
func NewService(q quote.Service, cfg Config, logger log.Logger) Service {
	suffix := cfg.TickerSuffix
	if suffix == "" {
		suffix = domain.DefaultTickerSuffix
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &service{
		quotes: q,
		suffix: suffix,
		strict: cfg.StrictErrors,
		logger: logger,
	}
}

// Resolve returns the direct quote for from→to when it is usable, otherwise the
// reciprocal of the to→from quote. Each call makes one or two provider requests.
func (s *service) Resolve(ctx context.Context, from domain.Currency, to domain.Currency) (domain.ResolvedRate, error) {
	pair := domain.Pair{From: from, To: to}

	direct := pair.Ticker(s.suffix)
	q, err := s.lookup(ctx, direct)
	if err != nil {
		return domain.ResolvedRate{}, fmt.Errorf("resolve [%v]: %w", pair, err)
	}
	if q.Usable() {
		return domain.ResolvedRate{Pair: pair, Rate: domain.Rate(q.Price), Ticker: direct}, nil
	}

	inverse := pair.Inverse().Ticker(s.suffix)
	q, err = s.lookup(ctx, inverse)
	if err != nil {
		return domain.ResolvedRate{}, fmt.Errorf("resolve [%v]: %w", pair, err)
	}
	if !q.Usable() {
		return domain.ResolvedRate{}, fmt.Errorf("resolve [%v]: %w: no usable price for %v or %v",
			pair, domain.ErrQuoteUnavailable, direct, inverse)
	}

	rate := 1 / q.Price
	if !domain.IsUsable(rate) {
		return domain.ResolvedRate{}, fmt.Errorf("resolve [%v]: %w: reciprocal of %v quote %v",
			pair, domain.ErrNonFiniteRate, inverse, q.Price)
	}
	return domain.ResolvedRate{Pair: pair, Rate: domain.Rate(rate), Ticker: inverse, Inverted: true}, nil
}

// lookup fetches one quote. Unless strict, provider failures become a not found quote
// so the caller moves on to the inverse ticker. Cancellation is never downgraded.
func (s *service) lookup(ctx context.Context, ticker string) (domain.Quote, error) {
	q, err := s.quotes.LatestPrice(ctx, ticker)
	if err == nil {
		return q, nil
	}
	if s.strict || ctx.Err() != nil {
		return domain.Quote{}, err
	}
	level.Warn(s.logger).Log("msg", "provider failure treated as missing data", "ticker", ticker, "err", err)
	return domain.NotFoundQuote(ticker), nil
}
