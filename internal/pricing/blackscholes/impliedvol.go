package blackscholes

import (
	"math"

	pricingerrors "options-pricer/internal/errors"
	"options-pricer/internal/models"
)

// Newton-Raphson solver parameters. The price-vs-volatility curve is
// monotonic (vega > 0 almost everywhere), so the iteration is well-posed for
// sane inputs.
const (
	ivInitialGuess  = 0.5
	ivTolerance     = 1e-6
	ivMinVega       = 1e-10
	ivMaxVolatility = 5.0
	ivMaxIterations = 100
)

// ImpliedVolatility inverts the Black-Scholes formula to recover the
// volatility that reproduces marketPrice, using Newton-Raphson iteration.
//
// The solve fails in three ways, each reported as a distinct sentinel wrapped
// in a SolverError: a near-zero vega makes the Newton step unstable
// (ErrVegaTooSmall), the iteration escapes the economically valid domain
// (0, 5] (ErrVolatilityOutOfRange), or the iteration budget runs out
// (ErrNoConvergence).
func ImpliedVolatility(spot, strike, timeToExpiry, riskFreeRate, marketPrice float64, side models.OptionSide) (float64, error) {
	volatility := ivInitialGuess

	for i := 0; i < ivMaxIterations; i++ {
		trial := New(models.OptionContract{
			SpotPrice:    spot,
			StrikePrice:  strike,
			TimeToExpiry: timeToExpiry,
			RiskFreeRate: riskFreeRate,
			Volatility:   volatility,
			Side:         side,
		})

		price := trial.Price()
		vega := trial.Vega() * 100 // undo the percentage scaling

		diff := marketPrice - price
		if math.Abs(diff) < ivTolerance {
			return volatility, nil
		}

		if math.Abs(vega) < ivMinVega {
			return 0, pricingerrors.NewSolverError(i, volatility, pricingerrors.ErrVegaTooSmall)
		}

		volatility += diff / vega

		if volatility <= 0 || volatility > ivMaxVolatility {
			return 0, pricingerrors.NewSolverError(i, volatility, pricingerrors.ErrVolatilityOutOfRange)
		}
	}

	return 0, pricingerrors.NewSolverError(ivMaxIterations, volatility, pricingerrors.ErrNoConvergence)
}
