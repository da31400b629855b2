// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// NaN and ±Inf are rejected by Set and NewDenseFrom.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation on Set and ingestion.
//
// Notes:
//   - Callers that ingest the resulting matrix (e.g. the markov solver) still
//     reject non-finite entries on their own; this flag only relaxes storage.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions resolves user options over the documented defaults.
// Options apply left to right; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
