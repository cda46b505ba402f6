// Package line implements DiscreteLine, the sorted interval list that backs
// a single column of the discrete strip, and the fit-shift computation used
// to slide incoming material past whatever already occupies the column.
package line

import (
	"sort"

	"github.com/piwi3910/sdrpack/internal/discrete/interval"
	"github.com/piwi3910/sdrpack/internal/telemetry"
)

// Line is the occupied-interval list for one column of the strip, or one
// column of a discretized item's pattern. Intervals are kept sorted by
// Start, with End as the tie-break; they are never merged.
type Line struct {
	Column    int
	Intervals []interval.Interval
}

// New returns an empty line for the given column index.
func New(column int) Line {
	return Line{Column: column}
}

// AddInterval inserts iv keeping Intervals sorted. It never merges adjacent
// or overlapping intervals; callers that need merged occupancy call this
// once per already-disjoint segment.
func (l *Line) AddInterval(iv interval.Interval) {
	idx := sort.Search(len(l.Intervals), func(i int) bool {
		if l.Intervals[i].Start != iv.Start {
			return l.Intervals[i].Start > iv.Start
		}
		return l.Intervals[i].End > iv.End
	})
	l.Intervals = append(l.Intervals, interval.Interval{})
	copy(l.Intervals[idx+1:], l.Intervals[idx:])
	l.Intervals[idx] = iv
}

// TotalOccupied returns the sum of interval lengths on the line, used to
// break ties between placement candidates that start at the same column and
// offshoot.
func (l Line) TotalOccupied() float64 {
	var total float64
	for _, iv := range l.Intervals {
		total += iv.End - iv.Start
	}
	return total
}

// FitShift computes the additional upward shift, beyond offshoot, that the
// incoming line needs to clear every interval already recorded on the
// receiver without exceeding height. It returns (0, false) when no finite
// shift keeps the incoming line within height.
//
// The algorithm: first reject outright if offshoot alone already pushes any
// incoming interval past height. Then, for every incoming interval, walk the
// receiver's sorted intervals (stopping once an occupant starts past the
// incoming interval's shifted end, since nothing further on a sorted line
// can overlap it) and track the largest OverlapShift seen. Finally re-check
// that applying the accumulated shift still respects height.
func (l Line) FitShift(height float64, incoming Line, offshoot float64) (float64, bool) {
	for _, iv := range incoming.Intervals {
		if iv.Shifted(offshoot).End > height+interval.Epsilon {
			return 0, false
		}
	}

	var maxShift float64
	for _, iv := range incoming.Intervals {
		shifted := iv.Shifted(offshoot)
		for _, occupant := range l.Intervals {
			if occupant.Start > shifted.End+interval.Epsilon {
				break
			}
			telemetry.CountOverlapCheck()
			if s := occupant.OverlapShift(shifted); s > maxShift {
				maxShift = s
			}
		}
	}

	for _, iv := range incoming.Intervals {
		if iv.Shifted(offshoot + maxShift).End > height+interval.Epsilon {
			return 0, false
		}
	}
	return maxShift, true
}
