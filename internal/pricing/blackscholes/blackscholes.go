// Package blackscholes implements closed-form pricing and Greeks for vanilla
// European options.
package blackscholes

import (
	"math"

	"options-pricer/internal/models"
)

// normCDF calculates the cumulative distribution function for a standard
// normal distribution. P(X <= x) = 0.5 * (1 + erf(x / sqrt(2)))
func normCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// normPDF calculates the probability density function for a standard normal
// distribution. f(x) = (1 / sqrt(2*pi)) * exp(-x^2 / 2)
func normPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2*math.Pi)
}

// Engine prices a single option contract with the Black-Scholes model.
// All methods are pure functions of the contract.
type Engine struct {
	contract models.OptionContract
}

// New creates a Black-Scholes engine for the given contract. The contract is
// assumed valid (positive spot, strike, expiry, volatility); see
// models.OptionContract.Validate.
func New(contract models.OptionContract) *Engine {
	return &Engine{contract: contract}
}

// Contract returns the contract the engine prices.
func (e *Engine) Contract() models.OptionContract {
	return e.contract
}

// d1 = [ln(S/K) + (r + sigma^2/2)*T] / (sigma*sqrt(T))
func (e *Engine) d1() float64 {
	c := e.contract
	numerator := math.Log(c.SpotPrice/c.StrikePrice) +
		(c.RiskFreeRate+0.5*c.Volatility*c.Volatility)*c.TimeToExpiry
	return numerator / (c.Volatility * math.Sqrt(c.TimeToExpiry))
}

// d2 = d1 - sigma*sqrt(T)
func (e *Engine) d2() float64 {
	return e.d1() - e.contract.Volatility*math.Sqrt(e.contract.TimeToExpiry)
}

// discount returns e^(-rT).
func (e *Engine) discount() float64 {
	return math.Exp(-e.contract.RiskFreeRate * e.contract.TimeToExpiry)
}

// Price returns the Black-Scholes price of the contract.
// Call: S*N(d1) - K*e^(-rT)*N(d2). Put: K*e^(-rT)*N(-d2) - S*N(-d1).
func (e *Engine) Price() float64 {
	c := e.contract
	d1, d2 := e.d1(), e.d2()

	if c.Side == models.Call {
		return c.SpotPrice*normCDF(d1) - c.StrikePrice*e.discount()*normCDF(d2)
	}
	return c.StrikePrice*e.discount()*normCDF(-d2) - c.SpotPrice*normCDF(-d1)
}

// Delta returns the sensitivity of the price to the spot price.
// N(d1) for a call, N(d1) - 1 for a put.
func (e *Engine) Delta() float64 {
	d1 := e.d1()
	if e.contract.Side == models.Call {
		return normCDF(d1)
	}
	return normCDF(d1) - 1
}

// Gamma returns the sensitivity of Delta to the spot price. Same for calls
// and puts.
func (e *Engine) Gamma() float64 {
	c := e.contract
	return normPDF(e.d1()) / (c.SpotPrice * c.Volatility * math.Sqrt(c.TimeToExpiry))
}

// Vega returns the sensitivity of the price to volatility, scaled to a
// 1 percentage-point move.
func (e *Engine) Vega() float64 {
	c := e.contract
	return c.SpotPrice * normPDF(e.d1()) * math.Sqrt(c.TimeToExpiry) / 100
}

// Theta returns the time decay of the price, scaled to one calendar day.
func (e *Engine) Theta() float64 {
	c := e.contract
	d2 := e.d2()

	term1 := -(c.SpotPrice * normPDF(e.d1()) * c.Volatility) / (2 * math.Sqrt(c.TimeToExpiry))
	term2 := c.RiskFreeRate * c.StrikePrice * e.discount()

	if c.Side == models.Call {
		return (term1 - term2*normCDF(d2)) / 365
	}
	return (term1 + term2*normCDF(-d2)) / 365
}

// Rho returns the sensitivity of the price to the risk-free rate, scaled to a
// 1 percentage-point move.
func (e *Engine) Rho() float64 {
	c := e.contract
	d2 := e.d2()

	if c.Side == models.Call {
		return c.StrikePrice * c.TimeToExpiry * e.discount() * normCDF(d2) / 100
	}
	return -c.StrikePrice * c.TimeToExpiry * e.discount() * normCDF(-d2) / 100
}

// Greeks bundles the five sensitivities for the contract.
func (e *Engine) Greeks() models.Greeks {
	return models.Greeks{
		Delta: e.Delta(),
		Gamma: e.Gamma(),
		Vega:  e.Vega(),
		Theta: e.Theta(),
		Rho:   e.Rho(),
	}
}
