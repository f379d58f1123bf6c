package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Options Pricer Configuration

[pricing]
# Continuously compounded annualized risk-free rate used when --rate is omitted
default_risk_free_rate = 0.05
# Annualized volatility used when --vol is omitted
default_volatility = 0.25
# Time to expiry in years used when --expiry is omitted
default_time_to_expiry = 1.0

[simulation]
# Number of independent terminal-price draws per Monte Carlo run
num_simulations = 100000
# Random seed; 0 draws a fresh stream on every run
seed = 0

[ui]
# Enable colored output
color_enabled = true

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log to the console
console = true
# Log to a rotating file under the config directory
file = false
`

// createTemplateConfig writes the default config file so the user has a
// starting point to edit.
func createTemplateConfig(configDir, name string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, name+".toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	return os.WriteFile(path, []byte(configTemplate), 0644)
}
