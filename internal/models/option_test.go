package models

import (
	"errors"
	"testing"
)

func validContract() OptionContract {
	return OptionContract{
		SpotPrice:    100,
		StrikePrice:  100,
		TimeToExpiry: 1,
		RiskFreeRate: 0.05,
		Volatility:   0.2,
		Side:         Call,
	}
}

func TestValidateAcceptsValidContract(t *testing.T) {
	if err := validContract().Validate(); err != nil {
		t.Errorf("valid contract rejected: %v", err)
	}

	// Negative rates are economically valid
	c := validContract()
	c.RiskFreeRate = -0.01
	if err := c.Validate(); err != nil {
		t.Errorf("negative rate rejected: %v", err)
	}
}

func TestValidateRejectsNonPositiveInputs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*OptionContract)
	}{
		{"zero spot", func(c *OptionContract) { c.SpotPrice = 0 }},
		{"negative spot", func(c *OptionContract) { c.SpotPrice = -10 }},
		{"zero strike", func(c *OptionContract) { c.StrikePrice = 0 }},
		{"zero expiry", func(c *OptionContract) { c.TimeToExpiry = 0 }},
		{"negative expiry", func(c *OptionContract) { c.TimeToExpiry = -1 }},
		{"zero volatility", func(c *OptionContract) { c.Volatility = 0 }},
		{"invalid side", func(c *OptionContract) { c.Side = OptionSide(7) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validContract()
			tc.mutate(&c)

			err := c.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("error %v is not a ValidationError", err)
			}
		})
	}
}

func TestWithSpotDoesNotMutate(t *testing.T) {
	c := validContract()
	bumped := c.WithSpot(110)

	if c.SpotPrice != 100 {
		t.Errorf("original contract mutated: spot = %.2f", c.SpotPrice)
	}
	if bumped.SpotPrice != 110 {
		t.Errorf("bumped spot = %.2f, want 110", bumped.SpotPrice)
	}
}

func TestParseOptionSide(t *testing.T) {
	for _, s := range []string{"call", "CALL", "c"} {
		side, err := ParseOptionSide(s)
		if err != nil || side != Call {
			t.Errorf("ParseOptionSide(%q) = %v, %v; want Call", s, side, err)
		}
	}
	for _, s := range []string{"put", "PUT", "p"} {
		side, err := ParseOptionSide(s)
		if err != nil || side != Put {
			t.Errorf("ParseOptionSide(%q) = %v, %v; want Put", s, side, err)
		}
	}
	if _, err := ParseOptionSide("straddle"); err == nil {
		t.Error("expected an error for an unknown side")
	}
}

func TestSimulationResultWidth(t *testing.T) {
	r := SimulationResult{Price: 10, Lower: 9.5, Upper: 10.5}
	if r.Width() != 1 {
		t.Errorf("width = %.2f, want 1", r.Width())
	}
}
