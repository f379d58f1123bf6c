// Package cli provides the command-line interface for the pricing application.
package cli

import (
	"math"

	"github.com/spf13/cobra"

	"options-pricer/internal/models"
	"options-pricer/internal/pricing/blackscholes"
)

func newDemoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the full pricing demo",
		Long: `Run a demonstration of both pricing engines on a sample contract:
Black-Scholes price and Greeks for a call and a put, implied volatility
recovery, a 100,000-path Monte Carlo estimate with confidence interval, and
a side-by-side model comparison.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			spot, _ := cmd.Flags().GetFloat64("spot")
			strike, _ := cmd.Flags().GetFloat64("strike")
			expiry, _ := cmd.Flags().GetFloat64("expiry")
			rate, _ := cmd.Flags().GetFloat64("rate")
			vol, _ := cmd.Flags().GetFloat64("vol")
			numSimulations, _ := cmd.Flags().GetInt("simulations")
			seed, _ := cmd.Flags().GetInt64("seed")

			call := models.OptionContract{
				SpotPrice:    spot,
				StrikePrice:  strike,
				TimeToExpiry: expiry,
				RiskFreeRate: rate,
				Volatility:   vol,
				Side:         models.Call,
			}
			if err := call.Validate(); err != nil {
				output.Error("%v", err)
				return err
			}
			put := call
			put.Side = models.Put

			output.Bold("=== Options Pricing Engine ===")
			output.Println()

			// Black-Scholes pricing
			output.Info("--- Black-Scholes Model ---")
			callEngine := blackscholes.New(call)
			putEngine := blackscholes.New(put)

			displayPriceReport(output, priceReport{Contract: call, Price: callEngine.Price(), Greeks: callEngine.Greeks()})
			output.Println()
			displayPriceReport(output, priceReport{Contract: put, Price: putEngine.Price(), Greeks: putEngine.Greeks()})

			// Implied volatility round trip on the call price
			output.Println()
			output.Info("--- Implied Volatility ---")
			marketPrice := callEngine.Price()
			iv, err := blackscholes.ImpliedVolatility(spot, strike, expiry, rate, marketPrice, models.Call)
			if err != nil {
				output.Warning("Implied volatility not found: %v", err)
			} else {
				output.Printf("Market Price: %s\n", FormatPrice(marketPrice))
				output.Printf("Implied Volatility: %s\n", FormatPercent(iv))
			}

			// Monte Carlo simulation
			output.Println()
			output.Info("--- Monte Carlo Simulation ---")
			sim := newSimulator(call, numSimulations, seed)
			result, err := sim.PriceWithConfidence()
			if err != nil {
				output.Error("Simulation failed: %v", err)
				return err
			}
			output.Printf("Call Option (%s simulations):\n", FormatCount(numSimulations))
			output.Printf("  Price:  %s\n", FormatPrice(result.Price))
			output.Printf("  95%% CI: %s\n", FormatInterval(result))
			output.Printf("  Delta:  %s\n", FormatGreek(sim.Delta()))

			// Comparison
			output.Println()
			output.Info("--- Model Comparison ---")
			output.Printf("Black-Scholes Call: %s\n", FormatPrice(callEngine.Price()))
			output.Printf("Monte Carlo Call:   %s\n", FormatPrice(result.Price))
			output.Printf("Difference:         %s\n", FormatPrice(math.Abs(callEngine.Price()-result.Price)))

			output.Println()
			output.Success("=== Demo completed ===")
			return nil
		},
	}

	cmd.Flags().Float64("spot", 100, "spot price of the underlying")
	cmd.Flags().Float64("strike", 100, "strike price")
	cmd.Flags().Float64("expiry", app.Config.Pricing.DefaultTimeToExpiry, "time to expiry in years")
	cmd.Flags().Float64("rate", app.Config.Pricing.DefaultRiskFreeRate, "annualized risk-free rate")
	cmd.Flags().Float64("vol", app.Config.Pricing.DefaultVolatility, "annualized volatility")
	cmd.Flags().IntP("simulations", "n", app.Config.Simulation.NumSimulations, "number of terminal-price draws")
	cmd.Flags().Int64("seed", app.Config.Simulation.Seed, "random seed (0 = fresh randomness)")

	return cmd
}
