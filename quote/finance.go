package quote

import (
	"context"
	"fmt"
	"net/http"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/forex"

	"go-triangle-arbitrage/domain"
)

// financeService reads forex quotes through piquette/finance-go
type financeService struct {
	// get looks up a single forex pair; nil pair and nil error means unknown symbol
	get func(symbol string) (*finance.ForexPair, error)
}

// NewFinanceService constructs a Service using finance-go's forex endpoint.
// finance-go keeps a package level HTTP client, so the timeout applies process wide.
func NewFinanceService(timeout time.Duration) Service {
	if timeout > 0 {
		finance.SetHTTPClient(&http.Client{Timeout: timeout})
	}
	return &financeService{get: forex.Get}
}

func (s *financeService) LatestPrice(ctx context.Context, ticker string) (domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return domain.Quote{}, err
	}
	pair, err := s.get(ticker)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("forex [%v]: %w: %w", ticker, domain.ErrProviderFailure, err)
	}
	if pair == nil {
		return domain.NotFoundQuote(ticker), nil
	}
	return domain.NewQuote(ticker, pair.RegularMarketPrice), nil
}
