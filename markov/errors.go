// SPDX-License-Identifier: MIT
// Package markov: sentinel errors and typed failures.
// Every solver failure matches one of the sentinels below via errors.Is; the
// typed errors add the offending state or cell and are reachable via errors.As.
// Failures are never swallowed and never accompanied by a partial vector.

package markov

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateEquation is returned when Simplify meets complement == 0,
	// i.e. a state's balance equation reads π_i = 1·π_i + ... and cannot be
	// solved for π_i.
	ErrDegenerateEquation = errors.New("markov: degenerate balance equation")

	// ErrDimensionMismatch is returned when the transition matrix is empty,
	// not square or ragged. It is raised before any equation is built.
	ErrDimensionMismatch = errors.New("markov: dimension mismatch")

	// ErrInvalidProbability is returned for entries outside [0,1], non-finite
	// entries, stochastic sums that miss 1 by more than the tolerance, and
	// normalization results that are not a probability vector.
	ErrInvalidProbability = errors.New("markov: invalid probability")

	// ErrNotConverged is returned when elimination passes hit the configured
	// cap while a non-pivot equation still references a non-pivot state.
	ErrNotConverged = errors.New("markov: elimination did not converge")

	// ErrNilMatrix is returned when a nil matrix is supplied.
	ErrNilMatrix = errors.New("markov: nil matrix")

	// ErrBadEliminationOrder is returned when WithEliminationOrder does not
	// list every non-pivot state 1..N-1 exactly once.
	ErrBadEliminationOrder = errors.New("markov: elimination order must permute states 1..N-1")

	// ErrOutOfRange is returned by index accessors on Chain and Distribution.
	ErrOutOfRange = errors.New("markov: state index out of range")
)

// Operation tags used by markovErrorf.
const (
	opNewChain  = "NewChain"
	opSimplify  = "Simplify"
	opEliminate = "Eliminate"
	opNormalize = "Normalize"
	opResidual  = "Residual"
)

// markovErrorf wraps err with an operation tag, preserving it for errors.Is/As.
func markovErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// DegenerateEquationError names the state whose balance equation has a zero
// complement (the state only flows into itself).
type DegenerateEquationError struct {
	State int
}

func (e *DegenerateEquationError) Error() string {
	return fmt.Sprintf("%v: state %d has complement 0", ErrDegenerateEquation, e.State)
}

// Unwrap exposes ErrDegenerateEquation to errors.Is.
func (e *DegenerateEquationError) Unwrap() error { return ErrDegenerateEquation }

// DimensionMismatchError describes a malformed matrix shape.
// Row is the offending row, or -1 when the whole shape is wrong; in that case
// Want is the row count and Got the column count.
type DimensionMismatchError struct {
	Row  int
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	switch {
	case e.Row < 0 && e.Want == 0:
		return fmt.Sprintf("%v: empty matrix", ErrDimensionMismatch)
	case e.Row < 0:
		return fmt.Sprintf("%v: %d rows by %d columns is not square", ErrDimensionMismatch, e.Want, e.Got)
	default:
		return fmt.Sprintf("%v: row %d has %d entries, want %d", ErrDimensionMismatch, e.Row, e.Got, e.Want)
	}
}

// Unwrap exposes ErrDimensionMismatch to errors.Is.
func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

// Reasons carried by InvalidProbabilityError.
const (
	ReasonNotFinite  = "not a finite number"
	ReasonOutOfRange = "outside [0,1]"
	ReasonSum        = "does not sum to 1 within tolerance"
	ReasonNegative   = "negative stationary probability"
	ReasonNormalizer = "non-positive normalizer"
	ReasonMissing    = "missing value"
)

// InvalidProbabilityError locates an invalid entry or sum.
// For a column-sum violation Row is -1; for a row-sum violation Col is -1.
// For solved values (ReasonNegative) Row is the state and Col is -1.
type InvalidProbabilityError struct {
	Row    int
	Col    int
	Value  string
	Reason string
}

func (e *InvalidProbabilityError) Error() string {
	switch {
	case e.Reason == ReasonNegative:
		return fmt.Sprintf("%v: state %d: %s %s", ErrInvalidProbability, e.Row, e.Value, e.Reason)
	case e.Row < 0 && e.Col < 0:
		return fmt.Sprintf("%v: %s (%s)", ErrInvalidProbability, e.Reason, e.Value)
	case e.Row < 0:
		return fmt.Sprintf("%v: column %d: %s %s", ErrInvalidProbability, e.Col, e.Value, e.Reason)
	case e.Col < 0:
		return fmt.Sprintf("%v: row %d: %s %s", ErrInvalidProbability, e.Row, e.Value, e.Reason)
	default:
		return fmt.Sprintf("%v: entry (%d,%d)=%s %s", ErrInvalidProbability, e.Row, e.Col, e.Value, e.Reason)
	}
}

// Unwrap exposes ErrInvalidProbability to errors.Is.
func (e *InvalidProbabilityError) Unwrap() error { return ErrInvalidProbability }
