// Package models defines the core value objects shared by the pricing engines.
package models

import "fmt"

// OptionSide identifies whether a contract is a call or a put.
type OptionSide int

const (
	// Call is the right to buy the underlying at the strike.
	Call OptionSide = iota
	// Put is the right to sell the underlying at the strike.
	Put
)

// String returns the display name of the side.
func (s OptionSide) String() string {
	switch s {
	case Call:
		return "CALL"
	case Put:
		return "PUT"
	default:
		return fmt.Sprintf("OptionSide(%d)", int(s))
	}
}

// ParseOptionSide parses "call" or "put" (case-insensitive prefixes CE/PE
// style strings are not accepted; the CLI normalizes before calling).
func ParseOptionSide(s string) (OptionSide, error) {
	switch s {
	case "call", "CALL", "Call", "c", "C":
		return Call, nil
	case "put", "PUT", "Put", "p", "P":
		return Put, nil
	default:
		return Call, fmt.Errorf("invalid option side: %q (must be call or put)", s)
	}
}

// MarshalJSON renders the side as its display name.
func (s OptionSide) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// OptionContract describes a vanilla European option. It is treated as an
// immutable value: construct it, price it, discard it.
type OptionContract struct {
	SpotPrice    float64    `json:"spot_price"`
	StrikePrice  float64    `json:"strike_price"`
	TimeToExpiry float64    `json:"time_to_expiry"` // years
	RiskFreeRate float64    `json:"risk_free_rate"` // annualized, continuously compounded
	Volatility   float64    `json:"volatility"`     // annualized stddev of log-returns
	Side         OptionSide `json:"side"`
}

// Validate checks the domain invariants the pricing formulas rely on.
// The engines themselves do not validate; callers at the boundary do.
func (c OptionContract) Validate() error {
	if c.SpotPrice <= 0 {
		return &ValidationError{Field: "spot_price", Value: c.SpotPrice, Message: "must be positive"}
	}
	if c.StrikePrice <= 0 {
		return &ValidationError{Field: "strike_price", Value: c.StrikePrice, Message: "must be positive"}
	}
	if c.TimeToExpiry <= 0 {
		return &ValidationError{Field: "time_to_expiry", Value: c.TimeToExpiry, Message: "must be positive"}
	}
	if c.Volatility <= 0 {
		return &ValidationError{Field: "volatility", Value: c.Volatility, Message: "must be positive"}
	}
	if c.Side != Call && c.Side != Put {
		return &ValidationError{Field: "side", Value: c.Side, Message: "must be call or put"}
	}
	return nil
}

// WithSpot returns a copy of the contract with the spot price replaced.
// Used by the finite-difference Greeks.
func (c OptionContract) WithSpot(spot float64) OptionContract {
	c.SpotPrice = spot
	return c
}

// WithVolatility returns a copy of the contract with the volatility replaced.
// Used by the implied-volatility solver.
func (c OptionContract) WithVolatility(vol float64) OptionContract {
	c.Volatility = vol
	return c
}

// Greeks holds the five price sensitivities of an option.
// Vega and Rho are per 1 percentage-point move; Theta is per calendar day.
type Greeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Vega  float64 `json:"vega"`
	Theta float64 `json:"theta"`
	Rho   float64 `json:"rho"`
}

// SimulationResult is a Monte Carlo price estimate with a two-sided 95%
// confidence interval. Lower <= Price <= Upper always holds.
type SimulationResult struct {
	Price float64 `json:"price"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Width returns the full width of the confidence interval.
func (r SimulationResult) Width() float64 {
	return r.Upper - r.Lower
}

// ValidationError represents a domain validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}
