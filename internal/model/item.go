package model

import (
	"math"

	"github.com/google/uuid"
)

// RotationMode selects how an item is allowed to be reoriented before
// placement.
type RotationMode int

const (
	// RotationNone places the item only at its given orientation.
	RotationNone RotationMode = iota
	// RotationDiscrete places the item at a fixed, caller-supplied list of
	// angles.
	RotationDiscrete
	// RotationContinuous marks an item whose rotation is unconstrained.
	// This engine does not search continuous rotation (see Non-goals); it
	// is accepted at the instance boundary and discretized at zero degrees
	// only, recorded here so callers can tell the difference from
	// RotationNone.
	RotationContinuous
)

// RotationSpec describes which orientations an item may be discretized at.
type RotationSpec struct {
	Mode      RotationMode
	AnglesDeg []float64
}

// AnglesRadians expands the spec into the concrete list of angles, in
// radians, that the catalog should discretize this item at.
func (r RotationSpec) AnglesRadians() []float64 {
	switch r.Mode {
	case RotationDiscrete:
		out := make([]float64, len(r.AnglesDeg))
		for i, deg := range r.AnglesDeg {
			out[i] = deg * math.Pi / 180
		}
		return out
	default:
		return []float64{0}
	}
}

// Item is one polygon shape with a demand quantity and an allowed set of
// rotations.
type Item struct {
	ID        string
	Label     string
	Outline   Polygon
	Quantity  int
	Rotations RotationSpec
}

// NewItem builds an Item with a fresh short ID, in the style of the
// project's other entity constructors.
func NewItem(label string, outline Polygon, quantity int, rotations RotationSpec) Item {
	return Item{
		ID:        uuid.New().String()[:8],
		Label:     label,
		Outline:   outline,
		Quantity:  quantity,
		Rotations: rotations,
	}
}
