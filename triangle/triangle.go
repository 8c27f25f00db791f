package triangle

import (
	"fmt"

	"go-triangle-arbitrage/domain"
)

// Evaluate multiplies the three leg rates of a cycle A → B → C → A.
// Without arbitrage the product is 1; any deviation is the arbitrage signal.
func Evaluate(rateAB, rateBC, rateCA domain.Rate) (domain.TriangleResult, error) {
	for i, r := range [...]domain.Rate{rateAB, rateBC, rateCA} {
		if !domain.IsUsable(float64(r)) {
			return domain.TriangleResult{}, fmt.Errorf("%w: leg %d rate %v", domain.ErrNonFiniteRate, i+1, float64(r))
		}
	}

	product := float64(rateAB) * float64(rateBC) * float64(rateCA)
	if !domain.IsUsable(product) {
		return domain.TriangleResult{}, fmt.Errorf("%w: product %v", domain.ErrNonFiniteRate, product)
	}

	return domain.TriangleResult{
		RateAB:  rateAB,
		RateBC:  rateBC,
		RateCA:  rateCA,
		Product: product,
	}, nil
}

// ImpliedRate the Z→Y rate implied by X→Y and X→Z, e.g. GBP/USD from EUR/USD and EUR/GBP.
func ImpliedRate(rateXY, rateXZ domain.Rate) (domain.Rate, error) {
	if !domain.IsUsable(float64(rateXY)) || !domain.IsUsable(float64(rateXZ)) {
		return 0, fmt.Errorf("%w: implied from %v and %v", domain.ErrNonFiniteRate, float64(rateXY), float64(rateXZ))
	}
	implied := rateXY / rateXZ
	if !domain.IsUsable(float64(implied)) {
		return 0, fmt.Errorf("%w: implied rate %v", domain.ErrNonFiniteRate, float64(implied))
	}
	return implied, nil
}

// Mispricing the signed difference between an observed rate and the implied one.
func Mispricing(observed, implied domain.Rate) (float64, error) {
	if !domain.IsUsable(float64(observed)) || !domain.IsUsable(float64(implied)) {
		return 0, fmt.Errorf("%w: mispricing of %v against %v", domain.ErrNonFiniteRate, float64(observed), float64(implied))
	}
	return float64(observed - implied), nil
}

// CrossCheck compares the C→A rate quoted on the closing leg with the C→A rate
// implied by the other two legs, pivoting on B: implied = rate(B→A) / rate(B→C).
// For USD, EUR, GBP that is GBP/USD against EUR/USD ÷ EUR/GBP.
func CrossCheck(cycle domain.Cycle, result domain.TriangleResult) (domain.CrossCheck, error) {
	if !domain.IsUsable(float64(result.RateAB)) {
		return domain.CrossCheck{}, fmt.Errorf("%w: cross check of %v", domain.ErrNonFiniteRate, cycle)
	}
	rateBA := 1 / result.RateAB
	implied, err := ImpliedRate(rateBA, result.RateBC)
	if err != nil {
		return domain.CrossCheck{}, err
	}
	observed := result.RateCA
	mispricing, err := Mispricing(observed, implied)
	if err != nil {
		return domain.CrossCheck{}, err
	}
	return domain.CrossCheck{
		Pair:       domain.Pair{From: cycle.C, To: cycle.A},
		Observed:   observed,
		Implied:    implied,
		Mispricing: mispricing,
	}, nil
}

// Assess picks the profitable direction and compares its gross return with thresholdBps.
// Going round the cycle in reverse yields 1/Product.
func Assess(result domain.TriangleResult, thresholdBps float64) domain.Opportunity {
	opportunity := domain.Opportunity{
		Direction:    domain.DirectionNone,
		ThresholdBps: thresholdBps,
	}
	switch {
	case result.Product > 1:
		opportunity.Direction = domain.DirectionForward
		opportunity.ReturnBps = (result.Product - 1) * 10_000
	case result.Product < 1:
		opportunity.Direction = domain.DirectionReverse
		opportunity.ReturnBps = (1/result.Product - 1) * 10_000
	}
	opportunity.Exceeds = opportunity.Direction != domain.DirectionNone && opportunity.ReturnBps >= thresholdBps
	return opportunity
}
