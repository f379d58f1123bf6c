// Package integration provides end-to-end tests crossing both pricing engines.
package integration

import (
	"math"
	"math/rand"
	"testing"

	"options-pricer/internal/models"
	"options-pricer/internal/pricing/blackscholes"
	"options-pricer/internal/pricing/montecarlo"
)

// TestEndToEndPricingWorkflow runs the full workflow the demo command walks
// through: analytic pricing for both sides, implied-volatility recovery from
// the analytic price, and a Monte Carlo estimate validated against the
// analytic value.
func TestEndToEndPricingWorkflow(t *testing.T) {
	call := models.OptionContract{
		SpotPrice:    100,
		StrikePrice:  100,
		TimeToExpiry: 1,
		RiskFreeRate: 0.05,
		Volatility:   0.25,
		Side:         models.Call,
	}
	put := call
	put.Side = models.Put

	if err := call.Validate(); err != nil {
		t.Fatalf("contract validation failed: %v", err)
	}

	// Step 1: analytic prices satisfy put-call parity.
	callPrice := blackscholes.New(call).Price()
	putPrice := blackscholes.New(put).Price()

	parity := call.SpotPrice - call.StrikePrice*math.Exp(-call.RiskFreeRate*call.TimeToExpiry)
	if math.Abs(callPrice-putPrice-parity) > 1e-6 {
		t.Errorf("put-call parity violated: C-P = %.10f, want %.10f", callPrice-putPrice, parity)
	}

	// Step 2: the analytic price round-trips through the solver.
	iv, err := blackscholes.ImpliedVolatility(
		call.SpotPrice, call.StrikePrice, call.TimeToExpiry, call.RiskFreeRate, callPrice, models.Call)
	if err != nil {
		t.Fatalf("implied volatility solve failed: %v", err)
	}
	if math.Abs(iv-call.Volatility) > 1e-4 {
		t.Errorf("implied volatility = %.6f, want ~%.2f", iv, call.Volatility)
	}

	// Step 3: the simulation estimate agrees with the analytic price within
	// its own confidence interval, widened for a ~6 sigma assertion.
	sim := montecarlo.NewWithSource(call, 100000, rand.NewSource(17))
	result, err := sim.PriceWithConfidence()
	if err != nil {
		t.Fatalf("simulation failed: %v", err)
	}

	halfWidth := result.Width() / 2
	if math.Abs(result.Price-callPrice) > 3*halfWidth {
		t.Errorf("monte carlo price %.4f too far from analytic %.4f (half-width %.4f)",
			result.Price, callPrice, halfWidth)
	}

	// Step 4: both engines agree on the direction of spot sensitivity.
	analyticDelta := blackscholes.New(call).Delta()
	simDelta := sim.Delta()
	if analyticDelta <= 0 || simDelta <= 0 {
		t.Errorf("call deltas should be positive: analytic=%.4f simulated=%.4f", analyticDelta, simDelta)
	}
}

// TestEnginesAgreeAcrossMoneyness compares the engines away from the money.
func TestEnginesAgreeAcrossMoneyness(t *testing.T) {
	for _, strike := range []float64{80, 100, 120} {
		c := models.OptionContract{
			SpotPrice:    100,
			StrikePrice:  strike,
			TimeToExpiry: 1,
			RiskFreeRate: 0.05,
			Volatility:   0.2,
			Side:         models.Put,
		}

		analytic := blackscholes.New(c).Price()
		result, err := montecarlo.NewWithSource(c, 100000, rand.NewSource(23)).PriceWithConfidence()
		if err != nil {
			t.Fatalf("strike %.0f: simulation failed: %v", strike, err)
		}

		halfWidth := result.Width() / 2
		if math.Abs(result.Price-analytic) > 3*halfWidth {
			t.Errorf("strike %.0f: monte carlo %.4f too far from analytic %.4f",
				strike, result.Price, analytic)
		}
	}
}
