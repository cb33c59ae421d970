// SPDX-License-Identifier: MIT
// Package table: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the table
// package. Constructors and decoders MUST return these sentinels and tests
// MUST check them via errors.Is. Cell-level operations never return errors:
// absence is an ok-marker, and only the At/MutAt/SetAt seam panics.

package table

import "errors"

var (
	// ErrInvalidDimensions indicates a negative row or column bound was
	// requested at construction.
	ErrInvalidDimensions = errors.New("table: dimensions must be non-negative")

	// ErrRaggedGrid indicates a 2D literal whose rows differ in length.
	ErrRaggedGrid = errors.New("table: all rows must have the same length")

	// ErrSnapshotSize indicates a dense snapshot whose element count does not
	// match rows×cols exactly. Snapshots are never padded or truncated.
	ErrSnapshotSize = errors.New("table: snapshot cell count does not match dimensions")
)
