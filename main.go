package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"go-triangle-arbitrage/app"
	"go-triangle-arbitrage/config"
	"go-triangle-arbitrage/domain"
	"go-triangle-arbitrage/logging"
	"go-triangle-arbitrage/report"
)

// Exit statuses
const (
	exitOK      = 0
	exitFailed  = 1
	exitInvalid = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("triangle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	a := fs.String("a", "", "start currency, e.g. USD")
	b := fs.String("b", "", "second currency, e.g. EUR")
	c := fs.String("c", "", "third currency, e.g. GBP")
	configPath := fs.String("config", os.Getenv(config.PathEnv), "YAML config file")
	format := fs.String("format", "text", "output format: text or json")
	threshold := fs.Float64("threshold-bps", 0, "opportunity threshold in basis points (default from config)")
	list := fs.Bool("list", false, "print the configured currencies and exit")
	if err := fs.Parse(args); err != nil {
		return exitInvalid
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInvalid
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "threshold-bps" {
			cfg.Triangle.ThresholdBps = *threshold
		}
	})
	if !config.ValidThreshold(cfg.Triangle.ThresholdBps) {
		fmt.Fprintln(stderr, "threshold-bps must be a non-negative number")
		return exitInvalid
	}

	if *list {
		for _, cur := range cfg.Currencies() {
			fmt.Fprintln(stdout, cur)
		}
		return exitOK
	}

	var reporter report.Reporter
	switch *format {
	case "text":
		reporter = report.NewTextReporter(stdout)
	case "json":
		reporter = report.NewJSONReporter(stdout)
	default:
		fmt.Fprintf(stderr, "unknown format %q\n", *format)
		return exitInvalid
	}
	if cfg.Kafka.Enabled {
		w := report.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer w.Close()
		reporter = report.Multi(reporter, report.NewKafkaReporter(w))
	}

	out, logFile := logging.Output(stderr, cfg.LogFile())
	defer logFile.Close()
	logger := logging.New(out, cfg.Logging.Format, cfg.Logging.Level)
	services, err := app.New(cfg, logger, nil)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInvalid
	}

	cycle := domain.Cycle{
		A: domain.ParseCurrency(*a),
		B: domain.ParseCurrency(*b),
		C: domain.ParseCurrency(*c),
	}
	ev, err := services.Triangle.Evaluate(ctx, cycle)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, domain.ErrInvalidCycle) {
			fmt.Fprintln(stderr, "pick three different currencies with -a, -b and -c")
			return exitInvalid
		}
		return exitFailed
	}

	if err := reporter.Report(ctx, ev); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailed
	}
	return exitOK
}
