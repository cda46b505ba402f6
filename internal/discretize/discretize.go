// Package discretize turns a polygon at a given rotation into a
// column-indexed pattern of occupied intervals: the shape discretizer.
package discretize

import (
	"fmt"
	"math"

	"github.com/piwi3910/sdrpack/internal/discrete/interval"
	"github.com/piwi3910/sdrpack/internal/discrete/line"
	"github.com/piwi3910/sdrpack/internal/model"
	"github.com/piwi3910/sdrpack/internal/sdrerrors"
)

const epsilon = interval.Epsilon

// Discretize normalizes item's outline at the given rotation, sweeps it into
// columns of width cfg.Resolution, and extends the sweep with the
// convex-vertex correction so that narrow features between two sweep lines
// are not lost.
func Discretize(item model.Item, rotation float64, cfg model.Config) (model.DiscretizedItem, error) {
	poly := item.Outline
	if cfg.CenterPolygons {
		c := poly.Centroid()
		poly = poly.Translate(-c.X, -c.Y)
	}
	if cfg.PolySimplTolerance != nil {
		poly = simplify(poly, *cfg.PolySimplTolerance)
	}
	if len(poly) < 3 {
		return model.DiscretizedItem{}, fmt.Errorf("%w: item %s has fewer than 3 vertices after simplification", sdrerrors.ErrShapeUnsupported, item.ID)
	}

	area := poly.Area()
	if math.IsNaN(area) || math.IsInf(area, 0) || area < epsilon {
		return model.DiscretizedItem{}, fmt.Errorf("%w: item %s has zero or non-finite area", sdrerrors.ErrNumericDegenerate, item.ID)
	}

	normalized, offX, offY := normalize(poly, rotation)
	if cfg.Resolution <= 0 {
		return model.DiscretizedItem{}, fmt.Errorf("%w: resolution must be positive", sdrerrors.ErrNumericDegenerate)
	}

	cols := sweepColumns(normalized, cfg.Resolution)
	extendConvexVertices(normalized, cfg.Resolution, cols)

	return model.DiscretizedItem{
		ItemID:   item.ID,
		Rotation: normalizeAngle(rotation),
		Columns:  cols,
		OffsetX:  offX,
		OffsetY:  offY,
	}, nil
}

// normalize rotates poly about the origin and translates it into the first
// quadrant horizontally (min_x = 0) while aligning its top edge to y = 0
// vertically (max_y = 0, so the body extends downward into negative y).
// sweepColumn and extendConvexVertices both take the absolute value of every
// y they emit, which turns this top-aligned frame back into non-negative
// column coordinates while preserving which end of the item is "up" — the
// property the final placement formula (strip_height - offshoot) depends on.
// It returns the translation that was applied, so placements can be mapped
// back to the item's own frame.
func normalize(poly model.Polygon, rotation float64) (model.Polygon, float64, float64) {
	rotated := poly.Rotate(rotation)
	min, max := rotated.BoundingBox()
	offX, offY := -min.X, -max.Y
	return rotated.Translate(offX, offY), offX, offY
}

func normalizeAngle(theta float64) float64 {
	const twoPi = 2 * math.Pi
	theta = math.Mod(theta, twoPi)
	if theta < 0 {
		theta += twoPi
	}
	return theta
}

type edge struct {
	x0, y0, x1, y1 float64
}

func edgesOf(poly model.Polygon) []edge {
	n := len(poly)
	es := make([]edge, n)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		es[i] = edge{a.X, a.Y, b.X, b.Y}
	}
	return es
}

func (e edge) isVertical() bool { return math.Abs(e.x0-e.x1) < epsilon }

func (e edge) xRange() (lo, hi float64) {
	if e.x0 <= e.x1 {
		return e.x0, e.x1
	}
	return e.x1, e.x0
}

func (e edge) yAt(x float64) float64 {
	if math.Abs(e.x1-e.x0) < epsilon {
		return e.y0
	}
	t := (x - e.x0) / (e.x1 - e.x0)
	return e.y0 + t*(e.y1-e.y0)
}

// sweepColumns builds the column-by-column intersection pattern of the
// normalized polygon: one vertical sweep line every resolution units from
// the bounding box's left edge, ceil(width/resolution)+1 columns in all. For
// a width that is an exact multiple of resolution the last column lies on
// the right edge and holds it; otherwise it lies past the right edge and is
// empty (see the package test for the boundary case).
func sweepColumns(poly model.Polygon, resolution float64) []line.Line {
	min, max := poly.BoundingBox()
	width := max.X - min.X
	numCols := int(math.Ceil(width/resolution)) + 1
	if numCols < 1 {
		numCols = 1
	}

	edges := edgesOf(poly)
	cols := make([]line.Line, numCols)
	for c := 0; c < numCols; c++ {
		x := min.X + float64(c)*resolution
		cols[c] = sweepColumn(edges, x, c)
	}
	return cols
}

func sweepColumn(edges []edge, x float64, columnIdx int) line.Line {
	l := line.New(columnIdx)

	var verticals []edge
	var straddling []edge
	for _, e := range edges {
		if e.isVertical() {
			if math.Abs(e.x0-x) < epsilon {
				verticals = append(verticals, e)
			}
			continue
		}
		lo, hi := e.xRange()
		if lo-epsilon <= x && x <= hi+epsilon {
			straddling = append(straddling, e)
		}
	}

	if len(verticals) > 0 {
		for _, v := range verticals {
			lo, hi := v.y0, v.y1
			if lo > hi {
				lo, hi = hi, lo
			}
			side := interval.Right
			if v.y0 > v.y1 {
				side = interval.Left
			}
			l.AddInterval(interval.NewOriented(math.Abs(lo), math.Abs(hi), side))
		}
		for _, iv := range pairStraddlingNotSharingVerticalEndpoints(verticals, straddling, x) {
			l.AddInterval(iv)
		}
		return l
	}

	for _, iv := range pairStraddling(straddling, x) {
		l.AddInterval(iv)
	}
	return l
}

// pairStraddling walks the non-vertical edges that cross x in polygon edge
// order, pairing every two consecutive crossings into a filled interval. A
// final, unpaired crossing becomes a point interval oriented by whether its
// edge was ascending.
func pairStraddling(edges []edge, x float64) []interval.Interval {
	var out []interval.Interval
	var pending *float64
	var pendingAscended bool

	for _, e := range edges {
		y := e.yAt(x)
		ascended := e.y1 > e.y0
		if pending == nil {
			v := y
			pending = &v
			pendingAscended = ascended
			continue
		}
		a, b := math.Abs(*pending), math.Abs(y)
		out = append(out, interval.New(math.Min(a, b), math.Max(a, b)))
		pending = nil
	}
	if pending != nil {
		side := interval.Right
		if pendingAscended {
			side = interval.Left
		}
		v := math.Abs(*pending)
		out = append(out, interval.NewOriented(v, v, side))
	}
	return out
}

// pairStraddlingNotSharingVerticalEndpoints is the verticals-present variant
// of pairStraddling: straddling edges that share an endpoint with one of
// the column's vertical edges are already accounted for by that vertical
// edge's own interval, so they are excluded before pairing the rest.
func pairStraddlingNotSharingVerticalEndpoints(verticals, straddling []edge, x float64) []interval.Interval {
	shares := func(e edge) bool {
		for _, v := range verticals {
			if sharesEndpoint(e, v) {
				return true
			}
		}
		return false
	}
	var filtered []edge
	for _, e := range straddling {
		if !shares(e) {
			filtered = append(filtered, e)
		}
	}
	return pairStraddling(filtered, x)
}

func sharesEndpoint(a, b edge) bool {
	near := func(ax, ay, bx, by float64) bool {
		return math.Abs(ax-bx) < epsilon && math.Abs(ay-by) < epsilon
	}
	return near(a.x0, a.y0, b.x0, b.y0) || near(a.x0, a.y0, b.x1, b.y1) ||
		near(a.x1, a.y1, b.x0, b.y0) || near(a.x1, a.y1, b.x1, b.y1)
}
