package domain

import "time"

// ResolvedRate a rate for one pair and the ticker it was derived from
type ResolvedRate struct {
	Pair   Pair   `json:"pair"`
	Rate   Rate   `json:"rate"`
	Ticker string `json:"ticker"`
	// Inverted true when Rate is the reciprocal of the Ticker quote
	Inverted bool `json:"inverted"`
}

// TriangleResult the three leg rates of a cycle and their product
type TriangleResult struct {
	RateAB  Rate    `json:"rate_ab"`
	RateBC  Rate    `json:"rate_bc"`
	RateCA  Rate    `json:"rate_ca"`
	Product float64 `json:"product"`
}

// Deviation distance of the product from 1, the no-arbitrage value
func (r TriangleResult) Deviation() float64 {
	return r.Product - 1
}

// DeviationBps Deviation in basis points
func (r TriangleResult) DeviationBps() float64 {
	return r.Deviation() * 10_000
}

// CrossCheck an observed rate compared with the rate implied by the other two legs
type CrossCheck struct {
	Pair       Pair    `json:"pair"`
	Observed   Rate    `json:"observed"`
	Implied    Rate    `json:"implied"`
	Mispricing float64 `json:"mispricing"`
}

// Direction which way round a cycle is profitable
type Direction string

const (
	DirectionNone    Direction = "none"
	DirectionForward Direction = "forward"
	DirectionReverse Direction = "reverse"
)

// Opportunity the gross return of the profitable direction compared with a threshold
type Opportunity struct {
	Direction    Direction `json:"direction"`
	ReturnBps    float64   `json:"return_bps"`
	ThresholdBps float64   `json:"threshold_bps"`
	Exceeds      bool      `json:"exceeds"`
}

// Evaluation everything computed for one cycle
type Evaluation struct {
	// ID unique per evaluation, carried to every sink
	ID          string          `json:"id"`
	Cycle       Cycle           `json:"cycle"`
	Legs        [3]ResolvedRate `json:"legs"`
	Result      TriangleResult  `json:"result"`
	CrossCheck  CrossCheck      `json:"cross_check"`
	Opportunity Opportunity     `json:"opportunity"`
	// Notional amount of A converted around the cycle; Outcome is what comes back
	Notional    float64   `json:"notional"`
	Outcome     float64   `json:"outcome"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}
