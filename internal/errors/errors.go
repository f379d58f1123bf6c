// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrInvalidContract      = errors.New("invalid contract parameters")
	ErrVegaTooSmall         = errors.New("vega too small for a stable newton step")
	ErrVolatilityOutOfRange = errors.New("implied volatility outside (0, 5]")
	ErrNoConvergence        = errors.New("implied volatility did not converge")
	ErrSampleSizeTooSmall   = errors.New("confidence interval requires at least 2 simulations")
	ErrConfigInvalid        = errors.New("invalid configuration")
)

// SolverError carries the state of a failed implied-volatility solve so the
// three failure modes can be reported with diagnostics.
type SolverError struct {
	Iterations int
	Volatility float64 // last trial volatility
	Err        error   // one of the solver sentinels
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("implied volatility solver failed after %d iterations (vol=%.6f): %v",
		e.Iterations, e.Volatility, e.Err)
}

func (e *SolverError) Unwrap() error {
	return e.Err
}

// NewSolverError creates a new SolverError.
func NewSolverError(iterations int, volatility float64, err error) *SolverError {
	return &SolverError{
		Iterations: iterations,
		Volatility: volatility,
		Err:        err,
	}
}

// SimulationError represents an error from the Monte Carlo engine.
type SimulationError struct {
	Simulations int
	Reason      string
	Err         error
}

func (e *SimulationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("simulation error (n=%d): %s: %v", e.Simulations, e.Reason, e.Err)
	}
	return fmt.Sprintf("simulation error (n=%d): %s", e.Simulations, e.Reason)
}

func (e *SimulationError) Unwrap() error {
	return e.Err
}

// NewSimulationError creates a new SimulationError.
func NewSimulationError(simulations int, reason string, err error) *SimulationError {
	return &SimulationError{
		Simulations: simulations,
		Reason:      reason,
		Err:         err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
