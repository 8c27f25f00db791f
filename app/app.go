package app

import (
	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"

	"go-triangle-arbitrage/config"
	"go-triangle-arbitrage/logging"
	"go-triangle-arbitrage/quote"
	"go-triangle-arbitrage/resolve"
	"go-triangle-arbitrage/triangle"
)

// App the decorated service graph shared by the CLI and the HTTP server
type App struct {
	Quotes   quote.Service
	Resolver resolve.Service
	Triangle triangle.Service
}

// New wires quote backend, resolver and triangle service from cfg.
// Metrics are registered with reg when it is not nil.
func New(cfg config.Config, logger log.Logger, reg prometheus.Registerer) (App, error) {
	quotes, err := quote.NewBackend(cfg.Provider.Backend, cfg.Provider.BaseURL, cfg.ProviderTimeout(), cfg.Provider.StaticQuotes)
	if err != nil {
		return App{}, err
	}
	quotes = quote.NewLoggingService(logging.Component(logger, "quote_"+cfg.Provider.Backend), quotes)
	if reg != nil {
		quotes = quote.NewInstrumentingService(reg, cfg.Provider.Backend, quotes)
	}

	resolverLogger := logging.Component(logger, "resolve")
	resolver := resolve.NewService(quotes, resolve.Config{
		TickerSuffix: cfg.Provider.TickerSuffix,
		StrictErrors: cfg.Resolver.StrictErrors,
	}, resolverLogger)
	resolver = resolve.NewLoggingService(resolverLogger, resolver)
	if reg != nil {
		resolver = resolve.NewInstrumentingService(reg, resolver)
	}

	evaluator := triangle.NewService(resolver, triangle.Config{
		ThresholdBps: cfg.Triangle.ThresholdBps,
		Notional:     cfg.Triangle.Notional,
	})
	evaluator = triangle.NewLoggingService(logging.Component(logger, "triangle"), evaluator)

	return App{Quotes: quotes, Resolver: resolver, Triangle: evaluator}, nil
}
