package domain

import "math"

// QuoteStatus outcome of a single provider lookup
type QuoteStatus int

const (
	// StatusOK the provider returned a usable price
	StatusOK QuoteStatus = iota
	// StatusNotFound the provider has no data for the ticker
	StatusNotFound
	// StatusInvalid the provider returned NaN, infinity, zero or a negative price
	StatusInvalid
)

func (s QuoteStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Quote latest price for a ticker, as reported by a provider
type Quote struct {
	Ticker string
	Price  float64
	Status QuoteStatus
}

// NewQuote classifies a raw provider price.
func NewQuote(ticker string, price float64) Quote {
	status := StatusOK
	if !IsUsable(price) {
		status = StatusInvalid
	}
	return Quote{Ticker: ticker, Price: price, Status: status}
}

// NotFoundQuote a quote for a ticker the provider knows nothing about
func NotFoundQuote(ticker string) Quote {
	return Quote{Ticker: ticker, Price: math.NaN(), Status: StatusNotFound}
}

// Usable reports whether the quote can be used as a rate.
func (q Quote) Usable() bool {
	return q.Status == StatusOK && IsUsable(q.Price)
}

// IsUsable reports whether v is finite and strictly positive.
func IsUsable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
