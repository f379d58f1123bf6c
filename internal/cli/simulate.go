// Package cli provides the command-line interface for the pricing application.
package cli

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"options-pricer/internal/logging"
	"options-pricer/internal/models"
	"options-pricer/internal/pricing/montecarlo"
)

// simulationReport is the JSON shape of the simulate command output.
type simulationReport struct {
	Contract    models.OptionContract   `json:"contract"`
	Simulations int                     `json:"simulations"`
	Result      models.SimulationResult `json:"result"`
	Delta       *float64                `json:"delta,omitempty"`
	Gamma       *float64                `json:"gamma,omitempty"`
}

func newSimulateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Price an option with Monte Carlo simulation",
		Long: `Estimate an option price by simulating terminal spot prices under
Geometric Brownian Motion. Reports the estimate with a 95% confidence
interval and, optionally, finite-difference delta and gamma.

Each run draws a fresh random stream unless --seed is set.`,
		Example: `  pricer simulate --spot 100 --strike 100 --vol 0.25
  pricer simulate --spot 100 --strike 100 --vol 0.2 -n 10000 --greeks
  pricer simulate --spot 100 --strike 110 --side put --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			contract, err := contractFromFlags(cmd, app)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			numSimulations, _ := cmd.Flags().GetInt("simulations")
			seed, _ := cmd.Flags().GetInt64("seed")
			withGreeks, _ := cmd.Flags().GetBool("greeks")

			sim := newSimulator(contract, numSimulations, seed)

			start := time.Now()
			result, err := sim.PriceWithConfidence()
			if err != nil {
				output.Error("Simulation failed: %v", err)
				return err
			}
			logging.LogSimulation(app.Logger, contract.Side.String(), numSimulations,
				result.Price, result.Lower, result.Upper, time.Since(start))

			report := simulationReport{
				Contract:    contract,
				Simulations: numSimulations,
				Result:      result,
			}
			if withGreeks {
				delta := sim.Delta()
				gamma := sim.Gamma()
				report.Delta = &delta
				report.Gamma = &gamma
			}

			if output.IsJSON() {
				return output.JSON(report)
			}

			displaySimulationReport(output, report)
			return nil
		},
	}

	addContractFlags(cmd, app)
	cmd.Flags().Float64("vol", app.Config.Pricing.DefaultVolatility, "annualized volatility")
	cmd.Flags().IntP("simulations", "n", app.Config.Simulation.NumSimulations, "number of terminal-price draws")
	cmd.Flags().Int64("seed", app.Config.Simulation.Seed, "random seed (0 = fresh randomness)")
	cmd.Flags().Bool("greeks", false, "also estimate finite-difference delta and gamma")

	return cmd
}

// newSimulator builds a simulator, injecting a seeded source when seed is
// non-zero so runs are reproducible.
func newSimulator(contract models.OptionContract, numSimulations int, seed int64) *montecarlo.Simulator {
	if seed != 0 {
		return montecarlo.NewWithSource(contract, numSimulations, rand.NewSource(seed))
	}
	return montecarlo.New(contract, numSimulations)
}

func displaySimulationReport(output *Output, report simulationReport) {
	output.Bold("%s Option (%s simulations)", report.Contract.Side, FormatCount(report.Simulations))
	output.Printf("  Price:  %s\n", FormatPrice(report.Result.Price))
	output.Printf("  95%% CI: %s\n", FormatInterval(report.Result))
	if report.Delta != nil {
		output.Printf("  Delta:  %s\n", FormatGreek(*report.Delta))
	}
	if report.Gamma != nil {
		output.Printf("  Gamma:  %s\n", FormatGreek(*report.Gamma))
	}
}
