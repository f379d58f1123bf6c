// Package cli provides the command-line interface for the pricing application.
package cli

import (
	"github.com/spf13/cobra"

	"options-pricer/internal/logging"
	"options-pricer/internal/models"
	"options-pricer/internal/pricing/blackscholes"
)

func newIVCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iv",
		Short: "Recover implied volatility from a market price",
		Long: `Invert the Black-Scholes formula with Newton-Raphson iteration to find the
volatility implied by an observed market price.

The solve fails when the market price is inconsistent with any volatility in
(0, 5], when vega is too flat for a stable iteration, or when the iteration
budget is exhausted.`,
		Example: `  pricer iv --spot 100 --strike 100 --market-price 12.5
  pricer iv --spot 100 --strike 110 --side put --market-price 8.2 --expiry 0.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			spot, _ := cmd.Flags().GetFloat64("spot")
			strike, _ := cmd.Flags().GetFloat64("strike")
			expiry, _ := cmd.Flags().GetFloat64("expiry")
			rate, _ := cmd.Flags().GetFloat64("rate")
			marketPrice, _ := cmd.Flags().GetFloat64("market-price")
			sideStr, _ := cmd.Flags().GetString("side")

			side, err := models.ParseOptionSide(sideStr)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			// Volatility is the unknown; validate the rest with a placeholder.
			probe := models.OptionContract{
				SpotPrice: spot, StrikePrice: strike, TimeToExpiry: expiry,
				RiskFreeRate: rate, Volatility: 1, Side: side,
			}
			if err := probe.Validate(); err != nil {
				output.Error("%v", err)
				return err
			}
			if marketPrice <= 0 {
				err := &models.ValidationError{Field: "market_price", Value: marketPrice, Message: "must be positive"}
				output.Error("%v", err)
				return err
			}

			iv, err := blackscholes.ImpliedVolatility(spot, strike, expiry, rate, marketPrice, side)
			logging.LogSolver(app.Logger, marketPrice, iv, err)
			if err != nil {
				output.Error("Implied volatility not found: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]float64{
					"market_price":       marketPrice,
					"implied_volatility": iv,
				})
			}

			output.Bold("Implied Volatility")
			output.Printf("  Market Price: %s\n", FormatPrice(marketPrice))
			output.Printf("  Implied Volatility: %s\n", FormatPercent(iv))
			return nil
		},
	}

	addContractFlags(cmd, app)
	cmd.Flags().Float64("market-price", 0, "observed market price of the option (required)")
	cmd.MarkFlagRequired("market-price")

	return cmd
}
