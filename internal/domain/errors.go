package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the scoring core. Callers match with errors.Is.
var (
	// ErrMalformedGenotype marks a genotype string violating the
	// length/alphabet invariant. It fails the specific variant
	// computation, never the whole run.
	ErrMalformedGenotype = errors.New("malformed genotype")

	// ErrNonNumericEffect marks a numeric-kind effect record carrying no
	// effect size. It fails the specific variant computation, never the
	// whole run.
	ErrNonNumericEffect = errors.New("effect size is non-numeric")

	ErrInvalidEffectKind     = errors.New("invalid effect kind")
	ErrNonPositiveEffectSize = errors.New("effect size must be > 0")
	ErrUnknownScoreModel     = errors.New("unknown score model")

	// ErrZeroPopulationSD guards the z-score normalization: population
	// standard deviation must be strictly positive.
	ErrZeroPopulationSD = errors.New("population standard deviation must be > 0")
)

// StageError wraps a failure inside one analysis stage. The safeguard wrapper
// produces it after persisting a diagnostic snapshot, so callers can
// distinguish "stage failed, diagnostics captured" from "stage succeeded".
type StageError struct {
	Stage    string
	DumpPath string
	Err      error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	if e.DumpPath != "" {
		return fmt.Sprintf("stage %s failed (diagnostics at %s): %v", e.Stage, e.DumpPath, e.Err)
	}
	return fmt.Sprintf("stage %s failed: %v", e.Stage, e.Err)
}

// Unwrap exposes the underlying stage failure.
func (e *StageError) Unwrap() error {
	return e.Err
}
