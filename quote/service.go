package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"go-triangle-arbitrage/domain"
)

const ApiUrlBase = "https://query1.finance.yahoo.com"

const userAgent = "go-triangle-arbitrage/1.0"

// Service a source of latest prices for provider tickers such as "EURUSD=X".
// Absence of data is reported through domain.Quote.Status; the error return is
// reserved for failures reaching the provider.
type Service interface {
	LatestPrice(ctx context.Context, ticker string) (domain.Quote, error)
}

// service Yahoo Finance chart API
type service struct {
	// client for HTTP requests, base URL and timeout already applied
	client *resty.Client
}

// NewService constructs a Service backed by the Yahoo Finance chart API.
// An empty url uses ApiUrlBase.
func NewService(url string, timeout time.Duration) Service {
	if url == "" {
		url = ApiUrlBase
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(url, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)
	return &service{client: client}
}

// chartResponse the parts of the chart payload we read
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol string `json:"symbol"`
			} `json:"meta"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// LatestPrice loads one day of one minute bars for ticker and returns the last close.
func (s *service) LatestPrice(ctx context.Context, ticker string) (domain.Quote, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("ticker", ticker).
		SetQueryParams(map[string]string{
			"range":    "1d",
			"interval": "1m",
		}).
		Get("/v8/finance/chart/{ticker}")
	if err != nil {
		return domain.Quote{}, fmt.Errorf("chart [%v]: %w: %w", ticker, domain.ErrProviderFailure, err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		return domain.Quote{}, fmt.Errorf("chart [%v]: %w: http status %d", ticker, domain.ErrProviderFailure, code)
	case code >= http.StatusBadRequest:
		return domain.NotFoundQuote(ticker), nil
	}

	var response chartResponse
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		return domain.Quote{}, fmt.Errorf("decoding json: %w: %w", domain.ErrProviderFailure, err)
	}

	if response.Chart.Error != nil || len(response.Chart.Result) == 0 {
		return domain.NotFoundQuote(ticker), nil
	}

	quotes := response.Chart.Result[0].Indicators.Quote
	if len(quotes) == 0 {
		return domain.NotFoundQuote(ticker), nil
	}
	closes := quotes[0].Close
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i] != nil {
			return domain.NewQuote(ticker, *closes[i]), nil
		}
	}
	return domain.NotFoundQuote(ticker), nil
}
