package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"go-triangle-arbitrage/domain"
	"go-triangle-arbitrage/logging"
	"go-triangle-arbitrage/quote"
)

// PathEnv names the environment variable holding the YAML config path
const PathEnv = "TRIANGLE_CONFIG"

type Config struct {
	Provider struct {
		Backend        string             `yaml:"backend"`
		BaseURL        string             `yaml:"base_url"`
		TimeoutSeconds float64            `yaml:"timeout_seconds"`
		TickerSuffix   string             `yaml:"ticker_suffix"`
		StaticQuotes   map[string]float64 `yaml:"static_quotes"`
	} `yaml:"provider"`
	Resolver struct {
		StrictErrors bool `yaml:"strict_errors"`
	} `yaml:"resolver"`
	Triangle struct {
		ThresholdBps float64  `yaml:"threshold_bps"`
		Notional     float64  `yaml:"notional"`
		Currencies   []string `yaml:"currencies"`
	} `yaml:"triangle"`
	Logging struct {
		Level      string `yaml:"level"`
		Format     string `yaml:"format"`
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"logging"`
	Server struct {
		Addr                string `yaml:"addr"`
		ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
		WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	} `yaml:"server"`
	Kafka struct {
		Enabled bool     `yaml:"enabled"`
		Brokers []string `yaml:"brokers"`
		Topic   string   `yaml:"topic"`
	} `yaml:"kafka"`
}

func defaultConfig() Config {
	var c Config
	c.Provider.Backend = quote.BackendYahoo
	c.Provider.TimeoutSeconds = 10
	c.Provider.TickerSuffix = domain.DefaultTickerSuffix
	c.Triangle.ThresholdBps = 10
	c.Triangle.Notional = 1
	c.Triangle.Currencies = []string{"USD", "EUR", "GBP", "JPY", "CHF", "AUD", "CAD"}
	c.Logging.Level = "info"
	c.Logging.Format = "logfmt"
	c.Logging.MaxSizeMB = 100
	c.Logging.MaxBackups = 3
	c.Logging.MaxAgeDays = 28
	c.Server.Addr = ":8080"
	c.Server.ReadTimeoutSeconds = 5
	c.Server.WriteTimeoutSeconds = 30
	c.Kafka.Brokers = []string{"localhost:9092"}
	c.Kafka.Topic = "triangle.evaluations"
	return c
}

// Load builds the configuration from defaults, the YAML file named by
// TRIANGLE_CONFIG (if set) and TRIANGLE_* environment overrides, then validates it.
func Load() (Config, error) {
	return LoadFile(os.Getenv(PathEnv))
}

// LoadFile is Load with an explicit YAML path; an empty path skips the file.
func LoadFile(path string) (Config, error) {
	c := defaultConfig()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("decoding config %v: %w", path, err)
		}
	}
	if err := applyEnv(&c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func applyEnv(c *Config) error {
	if v := os.Getenv("TRIANGLE_PROVIDER"); v != "" {
		c.Provider.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("TRIANGLE_PROVIDER_URL"); v != "" {
		c.Provider.BaseURL = v
	}
	if v, ok := os.LookupEnv("TRIANGLE_TICKER_SUFFIX"); ok {
		c.Provider.TickerSuffix = v
	}
	if v := os.Getenv("TRIANGLE_CURRENCIES"); v != "" {
		c.Triangle.Currencies = splitCSV(v)
	}
	if v := os.Getenv("TRIANGLE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("TRIANGLE_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("TRIANGLE_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("TRIANGLE_HTTP_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = splitCSV(v)
	}
	if v := os.Getenv("TRIANGLE_KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"TRIANGLE_PROVIDER_TIMEOUT_SECONDS", &c.Provider.TimeoutSeconds},
		{"TRIANGLE_THRESHOLD_BPS", &c.Triangle.ThresholdBps},
		{"TRIANGLE_NOTIONAL", &c.Triangle.Notional},
	}
	for _, f := range floats {
		if v := os.Getenv(f.key); v != "" {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("parsing %v: %w", f.key, err)
			}
			*f.dst = parsed
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"TRIANGLE_STRICT_ERRORS", &c.Resolver.StrictErrors},
		{"TRIANGLE_KAFKA_ENABLED", &c.Kafka.Enabled},
	}
	for _, b := range bools {
		if v := os.Getenv(b.key); v != "" {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("parsing %v: %w", b.key, err)
			}
			*b.dst = parsed
		}
	}
	return nil
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	switch c.Provider.Backend {
	case quote.BackendYahoo, quote.BackendFinance:
	case quote.BackendStatic:
		if len(c.Provider.StaticQuotes) == 0 {
			return fmt.Errorf("config: provider.static_quotes is required for the %v backend", quote.BackendStatic)
		}
	default:
		return fmt.Errorf("config: unknown provider.backend %q", c.Provider.Backend)
	}
	if !positive(c.Provider.TimeoutSeconds) {
		return fmt.Errorf("config: provider.timeout_seconds must be a positive number")
	}
	if !ValidThreshold(c.Triangle.ThresholdBps) {
		return fmt.Errorf("config: triangle.threshold_bps must be a non-negative number")
	}
	if !positive(c.Triangle.Notional) {
		return fmt.Errorf("config: triangle.notional must be a positive number")
	}
	if len(c.Triangle.Currencies) < 3 {
		return fmt.Errorf("config: triangle.currencies needs at least three codes")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("config: kafka.brokers is required when kafka is enabled")
	}
	return nil
}

// ValidThreshold reports whether bps is a finite, non-negative threshold
func ValidThreshold(bps float64) bool {
	return bps >= 0 && !math.IsInf(bps, 0)
}

// positive rejects NaN, infinities, zero and negatives
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// LogFile rotation settings for the optional log file
func (c Config) LogFile() logging.FileOptions {
	return logging.FileOptions{
		Path:       c.Logging.File,
		MaxSizeMB:  c.Logging.MaxSizeMB,
		MaxBackups: c.Logging.MaxBackups,
		MaxAgeDays: c.Logging.MaxAgeDays,
		Compress:   c.Logging.Compress,
	}
}

// ProviderTimeout the provider timeout as a duration
func (c Config) ProviderTimeout() time.Duration {
	return time.Duration(c.Provider.TimeoutSeconds * float64(time.Second))
}

// Currencies the selectable currencies, normalised
func (c Config) Currencies() []domain.Currency {
	out := make([]domain.Currency, 0, len(c.Triangle.Currencies))
	for _, code := range c.Triangle.Currencies {
		if cur := domain.ParseCurrency(code); cur != "" {
			out = append(out, cur)
		}
	}
	return out
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
