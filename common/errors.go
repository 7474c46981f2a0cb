// Package common holds error sentinels and small helpers shared by every
// invidx package.
package common

import "errors"

var (
	// ErrEmptyOperandList is returned when a composed cursor (Union,
	// Intersection, KVUnion) is constructed with zero child cursors.
	ErrEmptyOperandList = errors.New("invidx: empty operand list")

	// ErrMissingPositiveOperand is returned when GeneralIntersection is
	// constructed with only negated children.
	ErrMissingPositiveOperand = errors.New("invidx: generalized intersection requires at least one non-negated operand")

	// ErrInvalidRowShape is returned when an operation requires a
	// key-only row (e.g. KVUnion) but the row type does not have
	// key-only equality semantics.
	ErrInvalidRowShape = errors.New("invidx: row type is not a key-only row")
)
