// Package sdrerrors defines the sentinel errors shared across the
// discretization and placement pipeline, in the style used elsewhere in the
// Go ecosystem for typed, wrappable error taxonomies: callers match with
// errors.Is against these values rather than string comparison.
package sdrerrors

import "errors"

var (
	// ErrInstanceKindUnsupported is returned at the parse boundary when an
	// instance describes something other than an open-strip packing
	// problem (e.g. a fixed-bin instance).
	ErrInstanceKindUnsupported = errors.New("sdrpack: instance kind unsupported")

	// ErrShapeUnsupported is returned when an item's outline has too few
	// vertices to discretize, or its rotation specification is invalid.
	// Self-intersecting outlines are not detected.
	ErrShapeUnsupported = errors.New("sdrpack: shape unsupported")

	// ErrNumericDegenerate is returned when a polygon or configuration
	// value collapses to a non-finite or zero-measure result.
	ErrNumericDegenerate = errors.New("sdrpack: numeric degenerate")

	// ErrPlacementImpossible is returned when the strip cannot grow enough
	// to place every unit of an item's demand, given the caller's
	// MaxStripWidth. It is recovered internally up to that bound; it only
	// escapes to the caller once the bound is exhausted.
	ErrPlacementImpossible = errors.New("sdrpack: placement impossible")
)
