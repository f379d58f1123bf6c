package montecarlo

import (
	"math"
	"math/rand"
	"testing"

	pricingerrors "options-pricer/internal/errors"
	"options-pricer/internal/models"
	"options-pricer/internal/pricing/blackscholes"
)

func contract(side models.OptionSide) models.OptionContract {
	return models.OptionContract{
		SpotPrice:    100,
		StrikePrice:  100,
		TimeToExpiry: 1,
		RiskFreeRate: 0.05,
		Volatility:   0.2,
		Side:         side,
	}
}

func seeded(c models.OptionContract, n int, seed int64) *Simulator {
	return NewWithSource(c, n, rand.NewSource(seed))
}

func TestCallPriceReasonable(t *testing.T) {
	price := seeded(contract(models.Call), 10000, 1).Price()

	if price <= 0 || price >= 100 {
		t.Errorf("call price = %.4f, want within (0, 100)", price)
	}
}

func TestPutPriceReasonable(t *testing.T) {
	price := seeded(contract(models.Put), 10000, 1).Price()

	if price <= 0 || price >= 100 {
		t.Errorf("put price = %.4f, want within (0, 100)", price)
	}
}

func TestSeededRunsAreReproducible(t *testing.T) {
	first := seeded(contract(models.Call), 5000, 42).Price()
	second := seeded(contract(models.Call), 5000, 42).Price()

	if first != second {
		t.Errorf("seeded runs differ: %.10f vs %.10f", first, second)
	}
}

func TestConvergesToAnalyticPrice(t *testing.T) {
	c := contract(models.Call)
	analytic := blackscholes.New(c).Price()

	result, err := seeded(c, 100000, 7).PriceWithConfidence()
	if err != nil {
		t.Fatalf("PriceWithConfidence returned an error: %v", err)
	}

	// Statistical assertion: the analytic price should sit within a generous
	// multiple of the estimator's standard error. The CI half-width is
	// 1.96 standard errors, so 3x the half-width is ~6 sigma.
	halfWidth := (result.Upper - result.Lower) / 2
	if math.Abs(result.Price-analytic) > 3*halfWidth {
		t.Errorf("monte carlo price %.4f too far from analytic %.4f (half-width %.4f)",
			result.Price, analytic, halfWidth)
	}
}

func TestConfidenceIntervalContainsPrice(t *testing.T) {
	result, err := seeded(contract(models.Call), 10000, 3).PriceWithConfidence()
	if err != nil {
		t.Fatalf("PriceWithConfidence returned an error: %v", err)
	}

	if result.Lower > result.Price || result.Price > result.Upper {
		t.Errorf("interval does not contain price: lower=%.4f price=%.4f upper=%.4f",
			result.Lower, result.Price, result.Upper)
	}
	if result.Lower <= 0 {
		t.Errorf("lower bound = %.4f, want > 0 for an ATM call", result.Lower)
	}
}

func TestIntervalWidthShrinksWithSampleCount(t *testing.T) {
	c := contract(models.Call)

	small, err := seeded(c, 10000, 11).PriceWithConfidence()
	if err != nil {
		t.Fatal(err)
	}
	large, err := seeded(c, 100000, 11).PriceWithConfidence()
	if err != nil {
		t.Fatal(err)
	}

	// Width scales as 1/sqrt(N): a 10x sample increase should shrink the
	// interval by roughly sqrt(10) ~ 3.16.
	ratio := small.Width() / large.Width()
	if ratio < 2 || ratio > 5 {
		t.Errorf("width ratio = %.2f, want roughly sqrt(10)", ratio)
	}
}

func TestPriceWithConfidenceRejectsDegenerateSampleSize(t *testing.T) {
	for _, n := range []int{0, 1} {
		_, err := New(contract(models.Call), n).PriceWithConfidence()
		if err == nil {
			t.Fatalf("n=%d: expected an error", n)
		}
		if !pricingerrors.Is(err, pricingerrors.ErrSampleSizeTooSmall) {
			t.Errorf("n=%d: error = %v, want ErrSampleSizeTooSmall", n, err)
		}
	}
}

func TestDeltaRange(t *testing.T) {
	delta := seeded(contract(models.Call), 50000, 5).Delta()

	if delta < 0 || delta > 1 {
		t.Errorf("call delta = %.4f, want within [0, 1]", delta)
	}
}

func TestDeltaNearAnalytic(t *testing.T) {
	c := contract(models.Call)
	analytic := blackscholes.New(c).Delta()

	delta := seeded(c, 100000, 9).Delta()

	// The finite-difference estimator resamples independently on each bump,
	// so it is noisy; only a loose agreement is expected.
	if math.Abs(delta-analytic) > 0.15 {
		t.Errorf("finite-difference delta %.4f too far from analytic %.4f", delta, analytic)
	}
}

func TestGammaFinite(t *testing.T) {
	gamma := seeded(contract(models.Call), 50000, 13).Gamma()

	// Three independent runs make the second difference very noisy; the
	// estimate just needs to stay in a plausible band around the analytic
	// value (~0.038 for this contract).
	if math.IsNaN(gamma) || math.Abs(gamma) > 1 {
		t.Errorf("gamma = %.4f, want a small finite value", gamma)
	}
}

func TestPayoffSides(t *testing.T) {
	call := New(contract(models.Call), 10)
	put := New(contract(models.Put), 10)

	if got := call.payoff(120); got != 20 {
		t.Errorf("call payoff(120) = %.2f, want 20", got)
	}
	if got := call.payoff(80); got != 0 {
		t.Errorf("call payoff(80) = %.2f, want 0", got)
	}
	if got := put.payoff(80); got != 20 {
		t.Errorf("put payoff(80) = %.2f, want 20", got)
	}
	if got := put.payoff(120); got != 0 {
		t.Errorf("put payoff(120) = %.2f, want 0", got)
	}
}

func TestSimulateTerminalPrice(t *testing.T) {
	sim := New(contract(models.Call), 10)

	// z=0 gives the pure drift path: S * exp((r - vol^2/2) * T)
	want := 100 * math.Exp((0.05-0.5*0.2*0.2)*1)
	if got := sim.simulateTerminalPrice(0); math.Abs(got-want) > 1e-9 {
		t.Errorf("terminal price at z=0 = %.6f, want %.6f", got, want)
	}

	// Larger draws move the terminal price monotonically
	if sim.simulateTerminalPrice(1) <= sim.simulateTerminalPrice(-1) {
		t.Error("terminal price should increase with z")
	}
}
