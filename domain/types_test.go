package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	assert.Equal(t, Currency("USD"), ParseCurrency(" usd "))
	assert.Equal(t, Currency(""), ParseCurrency("   "))
}

func TestPair_Ticker(t *testing.T) {
	p := Pair{From: "JPY", To: "AUD"}
	assert.Equal(t, "JPYAUD=X", p.Ticker(DefaultTickerSuffix))
	assert.Equal(t, "AUDJPY=X", p.Inverse().Ticker(DefaultTickerSuffix))
	assert.Equal(t, "JPYAUD", p.Ticker(""))
}

func TestCycle_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cycle   Cycle
		wantErr bool
	}{
		{"distinct", Cycle{A: "USD", B: "EUR", C: "GBP"}, false},
		{"a equals b", Cycle{A: "USD", B: "USD", C: "EUR"}, true},
		{"b equals c", Cycle{A: "USD", B: "EUR", C: "EUR"}, true},
		{"c equals a", Cycle{A: "USD", B: "EUR", C: "USD"}, true},
		{"all equal", Cycle{A: "USD", B: "USD", C: "USD"}, true},
		{"missing", Cycle{A: "USD", B: "", C: "EUR"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cycle.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidCycle), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCycle_Legs(t *testing.T) {
	c := Cycle{A: "USD", B: "EUR", C: "GBP"}
	legs := c.Legs()
	assert.Equal(t, Pair{From: "USD", To: "EUR"}, legs[0])
	assert.Equal(t, Pair{From: "EUR", To: "GBP"}, legs[1])
	assert.Equal(t, Pair{From: "GBP", To: "USD"}, legs[2])
	assert.Equal(t, "USD → EUR → GBP → USD", c.String())
}

func TestNewQuote(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  QuoteStatus
	}{
		{"positive", 1.1, StatusOK},
		{"zero", 0, StatusInvalid},
		{"negative", -2, StatusInvalid},
		{"nan", math.NaN(), StatusInvalid},
		{"inf", math.Inf(1), StatusInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuote("EURUSD=X", tt.price)
			assert.Equal(t, tt.want, q.Status)
			assert.Equal(t, tt.want == StatusOK, q.Usable())
		})
	}

	assert.False(t, NotFoundQuote("XXXYYY=X").Usable())
}

func TestLegError(t *testing.T) {
	err := &LegError{Index: 1, Pair: Pair{From: "EUR", To: "GBP"}, Err: ErrQuoteUnavailable}
	assert.True(t, errors.Is(err, ErrQuoteUnavailable))
	assert.Equal(t, "leg 2 (EUR→GBP): quote unavailable", err.Error())
}
