// Package strip implements DiscreteStrip: the fixed-height, growable-width
// board of columns that items are slid into, and the try-fit sliding search
// that finds where a pattern of columns can land.
package strip

import (
	"math"

	"github.com/piwi3910/sdrpack/internal/discrete/interval"
	"github.com/piwi3910/sdrpack/internal/discrete/line"
)

// Pattern is the column-indexed occupancy of one item at one rotation, as
// produced by package discretize. Strip only needs the columns; it is
// agnostic to which item or rotation they came from.
type Pattern struct {
	Columns []line.Line
}

// Placement records where one unit of demand was committed: which pattern
// variant was used, which column it starts at, and the vertical offshoot
// applied to every one of its columns.
type Placement struct {
	RotationIndex  int
	Column         int
	VerticalOffset float64
}

// Strip is the fixed-height board, represented as a growable slice of
// columns.
type Strip struct {
	Columns    []line.Line
	Resolution float64
	Height     float64
}

// New allocates a strip wide enough to cover width at the given resolution.
func New(width, height, resolution float64) *Strip {
	n := int(math.Ceil(width / resolution))
	if n < 1 {
		n = 1
	}
	cols := make([]line.Line, n)
	for i := range cols {
		cols[i] = line.New(i)
	}
	return &Strip{Columns: cols, Resolution: resolution, Height: height}
}

// Width returns the strip's current width in continuous units.
func (s *Strip) Width() float64 {
	return float64(len(s.Columns)) * s.Resolution
}

// ExtendTo grows the strip, if needed, so it is at least width wide.
func (s *Strip) ExtendTo(width float64) {
	n := int(math.Ceil(width / s.Resolution))
	for len(s.Columns) < n {
		s.Columns = append(s.Columns, line.New(len(s.Columns)))
	}
}

// TryFit attempts to place up to quantity units of the given pattern
// variants, sliding each unit as far left and as low as it will fit given
// everything already committed. It returns every placement it managed to
// commit (which remain on the strip even on failure) and whether it placed
// all of quantity.
func (s *Strip) TryFit(patterns []Pattern, quantity int) ([]Placement, bool) {
	var placements []Placement
	cursorColumn, cursorOffshoot := 0, 0.0

	for placed := 0; placed < quantity; placed++ {
		variant, column, offshoot, ok := s.findBestPosition(patterns, cursorColumn, cursorOffshoot)
		if !ok {
			return placements, false
		}
		s.addSegments(patterns[variant], column, offshoot)
		placements = append(placements, Placement{RotationIndex: variant, Column: column, VerticalOffset: offshoot})
		cursorColumn, cursorOffshoot = column, offshoot
	}
	return placements, true
}

// findBestPosition scans every variant starting from (startColumn,
// startOffshoot), preferring the smallest starting column, then the
// smallest offshoot, then (as a tie-break favoring thinner starts) the
// variant whose first column has the least total occupied length.
func (s *Strip) findBestPosition(patterns []Pattern, startColumn int, startOffshoot float64) (variant, column int, offshoot float64, ok bool) {
	bestVariant, bestColumn := -1, -1
	var bestOffshoot, bestFirstColumnLoad float64

	for v, p := range patterns {
		if len(p.Columns) == 0 {
			continue
		}
		for i0 := startColumn; i0+len(p.Columns) <= len(s.Columns); i0++ {
			initOffshoot := 0.0
			if i0 == startColumn {
				initOffshoot = startOffshoot
			}
			shift, canStart := s.Columns[i0].FitShift(s.Height, p.Columns[0], initOffshoot)
			if !canStart {
				continue
			}
			final, verified := s.verifyAll(p, i0, initOffshoot+shift)
			if !verified {
				continue
			}

			load := p.Columns[0].TotalOccupied()
			better := bestColumn == -1 ||
				i0 < bestColumn ||
				(i0 == bestColumn && final < bestOffshoot-interval.Epsilon) ||
				(i0 == bestColumn && math.Abs(final-bestOffshoot) <= interval.Epsilon && load < bestFirstColumnLoad)
			if better {
				bestVariant, bestColumn, bestOffshoot, bestFirstColumnLoad = v, i0, final, load
			}
			break // columns beyond the first feasible one for this variant only get worse.
		}
	}

	if bestColumn == -1 {
		return 0, 0, 0, false
	}
	return bestVariant, bestColumn, bestOffshoot, true
}

// verifyAll re-checks every column of the pattern starting at i0 against
// the running offshoot, restarting from the first column whenever a later
// column demands a larger shift, until either every column agrees on one
// offshoot or the strip's height is exceeded.
func (s *Strip) verifyAll(p Pattern, i0 int, offshoot float64) (float64, bool) {
	current := offshoot
	for {
		if current > s.Height+interval.Epsilon {
			return 0, false
		}
		movedUp := false
		for k, col := range p.Columns {
			shift, ok := s.Columns[i0+k].FitShift(s.Height, col, current)
			if !ok {
				return 0, false
			}
			if shift > interval.Epsilon {
				current += shift
				movedUp = true
				break
			}
		}
		if !movedUp {
			return current, true
		}
	}
}

// addSegments commits pattern p's intervals into the strip starting at
// column i0, shifted by offshoot.
func (s *Strip) addSegments(p Pattern, i0 int, offshoot float64) {
	for k, col := range p.Columns {
		for _, iv := range col.Intervals {
			s.Columns[i0+k].AddInterval(iv.Shifted(offshoot))
		}
	}
}

// TrimTrailingEmpty shrinks the strip down to the last column that holds
// any material, leaving at least one column.
func (s *Strip) TrimTrailingEmpty() {
	last := 0
	for i, col := range s.Columns {
		if len(col.Intervals) > 0 {
			last = i
		}
	}
	if last+1 < len(s.Columns) {
		s.Columns = s.Columns[:last+1]
	}
}
