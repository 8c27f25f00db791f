package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-triangle-arbitrage/domain"
	"go-triangle-arbitrage/quote"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(PathEnv, "")

	c, err := Load()

	require.NoError(t, err)
	assert.Equal(t, quote.BackendYahoo, c.Provider.Backend)
	assert.Equal(t, "=X", c.Provider.TickerSuffix)
	assert.Equal(t, 10*time.Second, c.ProviderTimeout())
	assert.Equal(t, 10.0, c.Triangle.ThresholdBps)
	assert.Equal(t, []domain.Currency{"USD", "EUR", "GBP", "JPY", "CHF", "AUD", "CAD"}, c.Currencies())
	assert.False(t, c.Resolver.StrictErrors)
	assert.False(t, c.Kafka.Enabled)
	assert.Equal(t, "", c.LogFile().Path)
	assert.Equal(t, 100, c.LogFile().MaxSizeMB)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangle.yaml")
	yml := `
provider:
  backend: static
  timeout_seconds: 2.5
  static_quotes:
    EURUSD=X: 1.10
    GBPUSD=X: 1.27
triangle:
  threshold_bps: 3
  currencies: [usd, eur, gbp]
kafka:
  enabled: true
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))
	t.Setenv(PathEnv, path)
	t.Setenv("TRIANGLE_THRESHOLD_BPS", "7.5")
	t.Setenv("TRIANGLE_STRICT_ERRORS", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")

	c, err := Load()

	require.NoError(t, err)
	assert.Equal(t, quote.BackendStatic, c.Provider.Backend)
	assert.Equal(t, 2500*time.Millisecond, c.ProviderTimeout())
	assert.Equal(t, map[string]float64{"EURUSD=X": 1.10, "GBPUSD=X": 1.27}, c.Provider.StaticQuotes)
	assert.Equal(t, 7.5, c.Triangle.ThresholdBps, "environment wins over the file")
	assert.Equal(t, 1.0, c.Triangle.Notional, "defaults survive a partial file")
	assert.Equal(t, []domain.Currency{"USD", "EUR", "GBP"}, c.Currencies())
	assert.True(t, c.Resolver.StrictErrors)
	assert.True(t, c.Kafka.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.Kafka.Brokers)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing file", map[string]string{PathEnv: filepath.Join(os.TempDir(), "does-not-exist.yaml")}},
		{"unknown backend", map[string]string{"TRIANGLE_PROVIDER": "bloomberg"}},
		{"static without quotes", map[string]string{"TRIANGLE_PROVIDER": "static"}},
		{"bad threshold", map[string]string{"TRIANGLE_THRESHOLD_BPS": "lots"}},
		{"negative threshold", map[string]string{"TRIANGLE_THRESHOLD_BPS": "-1"}},
		{"bad bool", map[string]string{"TRIANGLE_STRICT_ERRORS": "maybe"}},
		{"zero timeout", map[string]string{"TRIANGLE_PROVIDER_TIMEOUT_SECONDS": "0"}},
		{"too few currencies", map[string]string{"TRIANGLE_CURRENCIES": "USD,EUR"}},
		{"nan notional", map[string]string{"TRIANGLE_NOTIONAL": "NaN"}},
		{"infinite notional", map[string]string{"TRIANGLE_NOTIONAL": "Inf"}},
		{"zero notional", map[string]string{"TRIANGLE_NOTIONAL": "0"}},
		{"nan threshold", map[string]string{"TRIANGLE_THRESHOLD_BPS": "NaN"}},
		{"infinite threshold", map[string]string{"TRIANGLE_THRESHOLD_BPS": "+Inf"}},
		{"nan timeout", map[string]string{"TRIANGLE_PROVIDER_TIMEOUT_SECONDS": "NaN"}},
		{"infinite timeout", map[string]string{"TRIANGLE_PROVIDER_TIMEOUT_SECONDS": "Inf"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(PathEnv, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
