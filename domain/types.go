package domain

import (
	"fmt"
	"strings"
)

// Currency a currency code, e.g. "USD"
type Currency string

// ParseCurrency normalises operator input into a Currency.
// No check is made against a list of known codes.
func ParseCurrency(s string) Currency {
	return Currency(strings.ToUpper(strings.TrimSpace(s)))
}

// Rate an exchange rate, in units of the 'to' currency per unit of the 'from' currency
type Rate float64

// DefaultTickerSuffix market suffix the provider uses for currency pairs
const DefaultTickerSuffix = "=X"

// Pair an ordered currency pair
type Pair struct {
	From Currency `json:"from"`
	To   Currency `json:"to"`
}

// Inverse the same pair in the opposite orientation
func (p Pair) Inverse() Pair {
	return Pair{From: p.To, To: p.From}
}

// Ticker builds the provider's instrument identifier for the pair.
// Orientation is carried only by the order of the two codes.
func (p Pair) Ticker(suffix string) string {
	return string(p.From) + string(p.To) + suffix
}

func (p Pair) String() string {
	return fmt.Sprintf("%s→%s", p.From, p.To)
}

// Cycle three currencies converted A → B → C and back to A
type Cycle struct {
	A Currency `json:"a"`
	B Currency `json:"b"`
	C Currency `json:"c"`
}

// Validate rejects cycles with empty or repeated currencies.
func (c Cycle) Validate() error {
	if c.A == "" || c.B == "" || c.C == "" {
		return fmt.Errorf("%w: all three currencies are required", ErrInvalidCycle)
	}
	if c.A == c.B || c.B == c.C || c.C == c.A {
		return fmt.Errorf("%w: %s, %s and %s must be three different currencies", ErrInvalidCycle, c.A, c.B, c.C)
	}
	return nil
}

// Legs the three conversions of the cycle, in order
func (c Cycle) Legs() [3]Pair {
	return [3]Pair{
		{From: c.A, To: c.B},
		{From: c.B, To: c.C},
		{From: c.C, To: c.A},
	}
}

func (c Cycle) String() string {
	return fmt.Sprintf("%s → %s → %s → %s", c.A, c.B, c.C, c.A)
}
