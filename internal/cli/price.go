// Package cli provides the command-line interface for the pricing application.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"options-pricer/internal/logging"
	"options-pricer/internal/models"
	"options-pricer/internal/pricing/blackscholes"
)

// priceReport is the JSON shape of the price command output.
type priceReport struct {
	Contract models.OptionContract `json:"contract"`
	Price    float64               `json:"price"`
	Greeks   models.Greeks         `json:"greeks"`
}

func newPriceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price an option with the Black-Scholes model",
		Long: `Price a vanilla European option with the closed-form Black-Scholes model
and report its Greeks.`,
		Example: `  pricer price --spot 100 --strike 100 --expiry 1 --rate 0.05 --vol 0.25
  pricer price --spot 100 --strike 110 --side put --vol 0.2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			contract, err := contractFromFlags(cmd, app)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			start := time.Now()
			engine := blackscholes.New(contract)
			report := priceReport{
				Contract: contract,
				Price:    engine.Price(),
				Greeks:   engine.Greeks(),
			}
			logging.LogPricing(app.Logger, "black-scholes", contract.Side.String(), report.Price, time.Since(start))

			if output.IsJSON() {
				return output.JSON(report)
			}

			displayPriceReport(output, report)
			return nil
		},
	}

	addContractFlags(cmd, app)
	cmd.Flags().Float64("vol", app.Config.Pricing.DefaultVolatility, "annualized volatility")

	return cmd
}

func newGreeksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "greeks",
		Short: "Compute Black-Scholes Greeks",
		Long: `Compute the five closed-form sensitivities of an option: delta, gamma,
vega (per 1% vol move), theta (per calendar day), and rho (per 1% rate move).`,
		Example: `  pricer greeks --spot 100 --strike 100 --vol 0.25
  pricer greeks --spot 100 --strike 95 --side put --expiry 0.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			contract, err := contractFromFlags(cmd, app)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			greeks := blackscholes.New(contract).Greeks()

			if output.IsJSON() {
				return output.JSON(greeks)
			}

			output.Bold("Greeks - %s %s", FormatPrice(contract.StrikePrice), contract.Side)
			displayGreeks(output, greeks)
			return nil
		},
	}

	addContractFlags(cmd, app)
	cmd.Flags().Float64("vol", app.Config.Pricing.DefaultVolatility, "annualized volatility")

	return cmd
}

func displayPriceReport(output *Output, report priceReport) {
	output.Bold("%s Option", report.Contract.Side)
	output.Printf("  Price: %s\n", FormatPrice(report.Price))
	displayGreeks(output, report.Greeks)
}

func displayGreeks(output *Output, greeks models.Greeks) {
	output.Printf("  Delta: %s\n", FormatGreek(greeks.Delta))
	output.Printf("  Gamma: %s\n", FormatGreek(greeks.Gamma))
	output.Printf("  Vega:  %s\n", FormatGreek(greeks.Vega))
	output.Printf("  Theta: %s\n", FormatGreek(greeks.Theta))
	output.Printf("  Rho:   %s\n", FormatGreek(greeks.Rho))
}
