package report

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"go-triangle-arbitrage/domain"
)

// ratePlaces decimal places printed for rates and products
const ratePlaces = 6

// textReporter writes a human readable summary
type textReporter struct {
	w io.Writer
}

// NewTextReporter returns a Reporter printing plain text to w
func NewTextReporter(w io.Writer) Reporter {
	return &textReporter{w: w}
}

func (r *textReporter) Report(_ context.Context, ev domain.Evaluation) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Triangle: %v\n", ev.Cycle)
	if ev.ID != "" {
		fmt.Fprintf(&b, "Evaluation: %s at %s\n", ev.ID, ev.EvaluatedAt.Format(time.RFC3339))
	}
	for _, leg := range ev.Legs {
		source := leg.Ticker
		if leg.Inverted {
			source = "1 / " + leg.Ticker
		}
		fmt.Fprintf(&b, "Exchange rate %s → %s: %s (%s)\n", leg.Pair.From, leg.Pair.To, fixed(float64(leg.Rate), ratePlaces), source)
	}

	check := ev.CrossCheck
	fmt.Fprintf(&b, "\nObserved %s → %s: %s\n", check.Pair.From, check.Pair.To, fixed(float64(check.Observed), ratePlaces))
	fmt.Fprintf(&b, "Implied %s → %s: %s\n", check.Pair.From, check.Pair.To, fixed(float64(check.Implied), ratePlaces))
	fmt.Fprintf(&b, "Mispricing: %s\n", fixed(check.Mispricing, ratePlaces))

	fmt.Fprintf(&b, "\nTriangle arbitrage product: %s\n", fixed(ev.Result.Product, ratePlaces))
	fmt.Fprintf(&b, "Opportunity: %s\n", describe(ev.Cycle, ev.Opportunity))
	fmt.Fprintf(&b, "%s %s → %s %s\n", fixed(ev.Notional, 2), ev.Cycle.A, fixed(ev.Outcome, 2), ev.Cycle.A)

	_, err := io.WriteString(r.w, b.String())
	return err
}

func describe(cycle domain.Cycle, o domain.Opportunity) string {
	threshold := fixed(o.ThresholdBps, 2)
	switch o.Direction {
	case domain.DirectionForward, domain.DirectionReverse:
		route := fmt.Sprintf("%s → %s → %s → %s", cycle.A, cycle.B, cycle.C, cycle.A)
		if o.Direction == domain.DirectionReverse {
			route = fmt.Sprintf("%s → %s → %s → %s", cycle.A, cycle.C, cycle.B, cycle.A)
		}
		verdict := "below threshold"
		if o.Exceeds {
			verdict = "ARBITRAGE"
		}
		return fmt.Sprintf("%s %s bps via %s (threshold %s bps)", verdict, fixed(o.ReturnBps, 2), route, threshold)
	default:
		return fmt.Sprintf("none (threshold %s bps)", threshold)
	}
}

// fixed rounds v to places; decimal cannot hold NaN or infinities
func fixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}
