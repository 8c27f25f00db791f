package quote

import (
	"context"

	"go-triangle-arbitrage/domain"
)

// staticService answers from a fixed ticker to price table
type staticService struct {
	prices map[string]float64
}

// NewStaticService constructs a Service that never leaves the process.
// Tickers missing from prices are reported as not found.
func NewStaticService(prices map[string]float64) Service {
	copied := make(map[string]float64, len(prices))
	for ticker, price := range prices {
		copied[ticker] = price
	}
	return &staticService{prices: copied}
}

func (s *staticService) LatestPrice(ctx context.Context, ticker string) (domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return domain.Quote{}, err
	}
	price, ok := s.prices[ticker]
	if !ok {
		return domain.NotFoundQuote(ticker), nil
	}
	return domain.NewQuote(ticker, price), nil
}
