// Package interval implements the oriented one-dimensional interval algebra
// that the discretized strip-packing engine stacks columns with. An Interval
// is a closed span [Start, End] on a single column's vertical axis, tagged
// with an optional Orientation recording which side of a polygon boundary it
// came from.
package interval

import "math"

// Epsilon is the tolerance used throughout the package for overlap and
// boundary comparisons. Two values within Epsilon of each other are treated
// as equal.
const Epsilon = 1e-6

// Orientation records which side of a polygon boundary an interval was
// derived from. Two oriented intervals on opposite sides never conflict:
// they represent the same material viewed from its left and right edges.
type Orientation int

const (
	Unoriented Orientation = iota
	Left
	Right
)

// Interval is a closed span [Start, End] with an optional Orientation.
// Start is always <= End.
type Interval struct {
	Start, End  float64
	Orientation Orientation
}

// New builds an unoriented (blocking) interval, swapping the bounds if
// given in reverse order.
func New(start, end float64) Interval {
	if start > end {
		start, end = end, start
	}
	return Interval{Start: start, End: end}
}

// NewOriented builds an interval tagged with the given orientation.
func NewOriented(start, end float64, side Orientation) Interval {
	iv := New(start, end)
	iv.Orientation = side
	return iv
}

// IsPoint reports whether the interval has zero length.
func (iv Interval) IsPoint() bool {
	return iv.End-iv.Start < Epsilon
}

// Shifted returns the interval translated by offset along its axis. The
// orientation is preserved.
func (iv Interval) Shifted(offset float64) Interval {
	iv.Start += offset
	iv.End += offset
	return iv
}

// spatialOverlap reports whether a and b share any point on their axis.
// Point-point and point-interval comparisons use an inclusive (>=) test;
// interval-interval comparisons are strict, since two extended intervals
// that merely touch at a boundary are considered separated.
func spatialOverlap(a, b Interval) bool {
	lo := math.Max(a.Start, b.Start)
	hi := math.Min(a.End, b.End)
	if a.IsPoint() || b.IsPoint() {
		return lo <= hi+Epsilon
	}
	return lo < hi-Epsilon
}

// OverlapShift returns the upward shift required to move other clear of the
// receiver: zero when the two intervals do not spatially overlap (using the
// point-sensitive comparison above), and zero when both carry a defined,
// differing orientation (opposite faces of the same boundary never
// conflict). Otherwise it returns self.End - other.Start, the distance by
// which other must rise so its start lands exactly at the receiver's end.
func (iv Interval) OverlapShift(other Interval) float64 {
	if iv.Orientation != Unoriented && other.Orientation != Unoriented && iv.Orientation != other.Orientation {
		return 0
	}
	if !spatialOverlap(iv, other) {
		return 0
	}
	shift := iv.End - other.Start
	if shift < 0 {
		return 0
	}
	return shift
}
