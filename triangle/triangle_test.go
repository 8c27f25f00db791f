package triangle

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-triangle-arbitrage/domain"
)

func TestEvaluate(t *testing.T) {
	type args struct {
		ab, bc, ca domain.Rate
	}
	tests := []struct {
		name    string
		args    args
		want    float64
		wantErr bool
	}{
		{"no arbitrage", args{2.0, 0.5, 1.0}, 1.0, false},
		{"usd eur gbp", args{1 / 1.10, 0.866, 1.27}, 1.27 * 0.866 / 1.10, false},
		{"zero leg", args{2.0, 0, 1.0}, 0, true},
		{"negative leg", args{2.0, 0.5, -1.0}, 0, true},
		{"nan leg", args{domain.Rate(math.NaN()), 0.5, 1.0}, 0, true},
		{"infinite leg", args{2.0, domain.Rate(math.Inf(1)), 1.0}, 0, true},
		{"overflowing product", args{1e200, 1e200, 1.0}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.args.ab, tt.args.bc, tt.args.ca)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domain.ErrNonFiniteRate), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.Product, 1e-12)
			assert.Equal(t, tt.args.ab, got.RateAB)
			assert.Equal(t, tt.args.bc, got.RateBC)
			assert.Equal(t, tt.args.ca, got.RateCA)
		})
	}
}

func TestEvaluate_ExactNoArbitrage(t *testing.T) {
	got, err := Evaluate(2.0, 0.5, 1.0)

	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Product)
	assert.Equal(t, 0.0, got.Deviation())
}

func TestEvaluate_OrderIndependent(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		a := domain.Rate(rnd.Float64()*200 + 1e-3)
		b := domain.Rate(rnd.Float64()*200 + 1e-3)
		c := domain.Rate(rnd.Float64()*200 + 1e-3)

		abc, err := Evaluate(a, b, c)
		require.NoError(t, err)
		cab, err := Evaluate(c, a, b)
		require.NoError(t, err)
		bca, err := Evaluate(b, c, a)
		require.NoError(t, err)

		assert.InEpsilon(t, abc.Product, cab.Product, 1e-12)
		assert.InEpsilon(t, abc.Product, bca.Product, 1e-12)
		assert.InEpsilon(t, float64(a)*(float64(b)*float64(c)), abc.Product, 1e-12)
	}
}

func TestImpliedRateAndMispricing(t *testing.T) {
	eurUSD, gbpUSD, eurGBP := domain.Rate(1.10), domain.Rate(1.27), domain.Rate(0.866)

	implied, err := ImpliedRate(eurUSD, eurGBP)
	require.NoError(t, err)
	assert.InDelta(t, 1.270208, float64(implied), 1e-6)

	mispricing, err := Mispricing(gbpUSD, implied)
	require.NoError(t, err)
	assert.InDelta(t, -0.000208, mispricing, 1e-6)

	_, err = ImpliedRate(eurUSD, 0)
	assert.True(t, errors.Is(err, domain.ErrNonFiniteRate))
	_, err = Mispricing(domain.Rate(math.NaN()), implied)
	assert.True(t, errors.Is(err, domain.ErrNonFiniteRate))
}

func TestCrossCheck(t *testing.T) {
	cycle := domain.Cycle{A: "USD", B: "EUR", C: "GBP"}
	result, err := Evaluate(1/1.10, 0.866, 1.27)
	require.NoError(t, err)

	check, err := CrossCheck(cycle, result)

	require.NoError(t, err)
	assert.Equal(t, domain.Pair{From: "GBP", To: "USD"}, check.Pair)
	assert.InDelta(t, 1.27, float64(check.Observed), 1e-12)
	assert.InDelta(t, 1.270208, float64(check.Implied), 1e-6)
	assert.InDelta(t, -0.000208, check.Mispricing, 1e-6)
	// observed - implied = (product - 1) / (rate(A→B) * rate(B→C))
	assert.InDelta(t, (result.Product-1)/(float64(result.RateAB)*0.866), check.Mispricing, 1e-12)
}

func TestCrossCheck_Overflow(t *testing.T) {
	result := domain.TriangleResult{RateAB: 1e-200, RateBC: 1e-200, RateCA: 1, Product: 1e-300}

	_, err := CrossCheck(domain.Cycle{A: "AAA", B: "BBB", C: "CCC"}, result)

	assert.True(t, errors.Is(err, domain.ErrNonFiniteRate), "got %v", err)
}

func TestAssess(t *testing.T) {
	tests := []struct {
		name      string
		product   float64
		threshold float64
		direction domain.Direction
		returnBps float64
		exceeds   bool
	}{
		{"balanced", 1.0, 0, domain.DirectionNone, 0, false},
		{"forward above threshold", 1.002, 10, domain.DirectionForward, 20, true},
		{"forward below threshold", 1.0005, 10, domain.DirectionForward, 5, false},
		{"reverse above threshold", 1 / 1.002, 10, domain.DirectionReverse, 20, true},
		{"reverse below threshold", 0.9998, 10, domain.DirectionReverse, 2.0004, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assess(domain.TriangleResult{Product: tt.product}, tt.threshold)
			assert.Equal(t, tt.direction, got.Direction)
			assert.InDelta(t, tt.returnBps, got.ReturnBps, 1e-3)
			assert.Equal(t, tt.exceeds, got.Exceeds)
			assert.Equal(t, tt.threshold, got.ThresholdBps)
		})
	}
}
