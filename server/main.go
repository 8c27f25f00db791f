package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-triangle-arbitrage/app"
	"go-triangle-arbitrage/config"
	"go-triangle-arbitrage/http"
	"go-triangle-arbitrage/logging"
	"go-triangle-arbitrage/report"

	nhttp "net/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
		_ = logger.Log("msg", "loading config", "err", err)
		os.Exit(1)
	}

	out, logFile := logging.Output(os.Stderr, cfg.LogFile())
	defer logFile.Close()
	logger := logging.New(out, cfg.Logging.Format, cfg.Logging.Level)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	services, err := app.New(cfg, logger, reg)
	if err != nil {
		_ = level.Error(logger).Log("msg", "wiring services", "err", err)
		os.Exit(1)
	}

	handler := http.NewServer(services.Triangle, services.Resolver, cfg.Currencies(), logging.Component(logger, "http"))
	if cfg.Kafka.Enabled {
		w := report.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer w.Close()
		handler.Reporter = report.NewKafkaReporter(w)
		_ = level.Info(logger).Log("msg", "publishing evaluations", "topic", w.Topic)
	}
	handler.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &nhttp.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		_ = level.Info(logger).Log("msg", "listening", "addr", cfg.Server.Addr, "backend", cfg.Provider.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nhttp.ErrServerClosed) {
			_ = level.Error(logger).Log("msg", "serving", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil {
		_ = level.Error(logger).Log("msg", "shutting down", "err", err)
	}
	_ = level.Info(logger).Log("msg", "stopped")
}
