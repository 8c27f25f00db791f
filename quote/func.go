package quote

import (
	"context"

	"go-triangle-arbitrage/domain"
)

// ServiceFunc adapts an ordinary function to the Service interface.
// Implementations must be concurrency-safe when served over HTTP.
type ServiceFunc func(ctx context.Context, ticker string) (domain.Quote, error)

// LatestPrice calls f(ctx, ticker)
func (f ServiceFunc) LatestPrice(ctx context.Context, ticker string) (domain.Quote, error) {
	return f(ctx, ticker)
}
