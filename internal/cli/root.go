// Package cli provides the command-line interface for the pricing application.
package cli

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"options-pricer/internal/config"
	"options-pricer/internal/logging"
	"options-pricer/internal/models"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2026-08-23"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:   "pricer",
		Short: "Options Pricer - European option pricing and Greeks",
		Long: `Options Pricer prices vanilla European options and computes their risk
sensitivities using two independent models: the closed-form Black-Scholes
formula and a Monte Carlo simulation under Geometric Brownian Motion.

Use 'pricer help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/options-pricer)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newPriceCmd(app))
	rootCmd.AddCommand(newGreeksCmd(app))
	rootCmd.AddCommand(newIVCmd(app))
	rootCmd.AddCommand(newSimulateCmd(app))
	rootCmd.AddCommand(newDemoCmd(app))

	return rootCmd
}

// Execute loads configuration, builds the root command, and runs it.
func Execute() error {
	cfg, err := config.Load(configDirFromArgs())
	if err != nil {
		cfg = config.Default()
	}

	logger := logging.NewLoggerWithConfig(logging.LogConfig{
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
		File:    cfg.Logging.File,
	})

	return NewRootCmd(cfg, logger).Execute()
}

// configDirFromArgs pulls the --config value out of the raw arguments so the
// configuration can be loaded before cobra parses flags.
func configDirFromArgs() string {
	for i, arg := range os.Args {
		if arg == "--config" && i+1 < len(os.Args) {
			return os.Args[i+1]
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("Options Pricer v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			return output.JSON(app.Config)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

// addContractFlags registers the five contract parameter flags shared by all
// pricing commands.
func addContractFlags(cmd *cobra.Command, app *App) {
	cmd.Flags().Float64("spot", 0, "spot price of the underlying (required)")
	cmd.Flags().Float64("strike", 0, "strike price (required)")
	cmd.Flags().Float64("expiry", app.Config.Pricing.DefaultTimeToExpiry, "time to expiry in years")
	cmd.Flags().Float64("rate", app.Config.Pricing.DefaultRiskFreeRate, "annualized risk-free rate")
	cmd.Flags().String("side", "call", "option side: call or put")
	cmd.MarkFlagRequired("spot")
	cmd.MarkFlagRequired("strike")
}

// contractFromFlags builds and validates a contract from command flags.
// The volatility is read from --vol when the command defines it.
func contractFromFlags(cmd *cobra.Command, app *App) (models.OptionContract, error) {
	spot, _ := cmd.Flags().GetFloat64("spot")
	strike, _ := cmd.Flags().GetFloat64("strike")
	expiry, _ := cmd.Flags().GetFloat64("expiry")
	rate, _ := cmd.Flags().GetFloat64("rate")
	sideStr, _ := cmd.Flags().GetString("side")

	side, err := models.ParseOptionSide(sideStr)
	if err != nil {
		return models.OptionContract{}, err
	}

	vol := app.Config.Pricing.DefaultVolatility
	if cmd.Flags().Lookup("vol") != nil {
		vol, _ = cmd.Flags().GetFloat64("vol")
	}

	contract := models.OptionContract{
		SpotPrice:    spot,
		StrikePrice:  strike,
		TimeToExpiry: expiry,
		RiskFreeRate: rate,
		Volatility:   vol,
		Side:         side,
	}

	if err := contract.Validate(); err != nil {
		return models.OptionContract{}, err
	}
	return contract, nil
}
