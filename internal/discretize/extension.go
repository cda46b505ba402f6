package discretize

import (
	"math"

	"github.com/piwi3910/sdrpack/internal/discrete/interval"
	"github.com/piwi3910/sdrpack/internal/discrete/line"
	"github.com/piwi3910/sdrpack/internal/model"
)

// extendConvexVertices corrects the plain column sweep for convex vertices
// that fall strictly between two sweep lines: without this step, a sharp
// point poking into the gap between columns i and i+1 is invisible to the
// sweep, and the discretized pattern would claim more free space at that
// column pair than the polygon actually leaves.
func extendConvexVertices(poly model.Polygon, resolution float64, cols []line.Line) {
	n := len(poly)
	if n < 3 {
		return
	}
	for i, v := range poly {
		prev := poly[(i-1+n)%n]
		next := poly[(i+1)%n]
		if !isConvexVertex(prev, v, next) {
			continue
		}
		left := int(math.Floor(v.X / resolution))
		if math.Abs(v.X/resolution-float64(left)) < epsilon {
			continue // vertex lands on a sweep line; already represented.
		}
		right := left + 1
		if left < 0 || right >= len(cols) {
			continue
		}
		extendEdge(prev, v, resolution, left, right, cols)
		extendEdge(v, next, resolution, left, right, cols)
	}
}

func isConvexVertex(prev, v, next model.Point) bool {
	ax, ay := v.X-prev.X, v.Y-prev.Y
	bx, by := next.X-prev.X, next.Y-prev.Y
	return ax*by-ay*bx > epsilon
}

// extendEdge classifies one edge adjacent to a convex vertex relative to
// the sweep columns immediately left and right of the vertex, then inserts
// the correction interval(s) it implies.
func extendEdge(a, b model.Point, resolution float64, left, right int, cols []line.Line) {
	lo, hi := a.X, b.X
	if lo > hi {
		lo, hi = hi, lo
	}
	leftX := float64(left) * resolution
	rightX := float64(right) * resolution

	switch {
	case lo-epsilon <= leftX && leftX <= hi+epsilon:
		// Crosses the left column: the edge continues on to the right, so
		// its intersection with the left line is a genuine interval there,
		// and only a single point pokes across the right line.
		y := edge{a.X, a.Y, b.X, b.Y}.yAt(leftX)
		yRight := math.Max(a.Y, b.Y)
		yLo, yHi := math.Abs(y), math.Abs(yRight)
		if yLo > yHi {
			yLo, yHi = yHi, yLo
		}
		insertExtension(&cols[left], interval.NewOriented(yLo, yHi, interval.Right))
		v := math.Abs(y)
		insertExtension(&cols[right], interval.NewOriented(v, v, interval.Left))
	case lo-epsilon <= rightX && rightX <= hi+epsilon:
		// Symmetric case, with orientations flipped.
		y := edge{a.X, a.Y, b.X, b.Y}.yAt(rightX)
		yLeft := math.Min(a.Y, b.Y)
		yLo, yHi := math.Abs(y), math.Abs(yLeft)
		if yLo > yHi {
			yLo, yHi = yHi, yLo
		}
		insertExtension(&cols[right], interval.NewOriented(yLo, yHi, interval.Left))
		v := math.Abs(y)
		insertExtension(&cols[left], interval.NewOriented(v, v, interval.Right))
	case lo >= leftX-epsilon && hi <= rightX+epsilon:
		// Wholly between the two columns: project the edge's own y-range
		// onto both neighboring columns.
		ys, ye := math.Abs(a.Y), math.Abs(b.Y)
		if ys > ye {
			ys, ye = ye, ys
		}
		insertExtension(&cols[left], interval.NewOriented(ys, ye, interval.Right))
		insertExtension(&cols[right], interval.NewOriented(ys, ye, interval.Left))
	}
}

// insertExtension adds iv to l, but first subtracts any portion already
// covered by an existing interval on the line: fully-covered extensions are
// dropped, and partially-covered extensions are split into the remaining
// uncovered piece(s).
func insertExtension(l *line.Line, iv interval.Interval) {
	for _, existing := range l.Intervals {
		if iv.Start >= existing.Start-epsilon && iv.End <= existing.End+epsilon {
			return
		}
	}

	remaining := []interval.Interval{iv}
	for _, existing := range l.Intervals {
		var next []interval.Interval
		for _, r := range remaining {
			if r.End <= existing.Start+epsilon || r.Start >= existing.End-epsilon {
				next = append(next, r)
				continue
			}
			if r.Start < existing.Start-epsilon {
				next = append(next, interval.Interval{Start: r.Start, End: existing.Start, Orientation: r.Orientation})
			}
			if r.End > existing.End+epsilon {
				next = append(next, interval.Interval{Start: existing.End, End: r.End, Orientation: r.Orientation})
			}
		}
		remaining = next
		if len(remaining) == 0 {
			return
		}
	}
	for _, r := range remaining {
		if r.End-r.Start > epsilon || r.IsPoint() {
			l.AddInterval(r)
		}
	}
}
