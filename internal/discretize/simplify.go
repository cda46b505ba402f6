package discretize

import (
	"math"

	"github.com/piwi3910/sdrpack/internal/model"
)

// simplify reduces poly's vertex count with the Douglas-Peucker algorithm at
// the given tolerance, treating the polygon as a closed ring by simplifying
// from its widest pair of vertices.
func simplify(poly model.Polygon, tolerance float64) model.Polygon {
	if len(poly) < 4 || tolerance <= 0 {
		return poly
	}

	// Split the ring at its two farthest-apart vertices so douglasPeucker
	// can treat each half as an open polyline.
	i, j := farthestPair(poly)
	if i > j {
		i, j = j, i
	}
	first := append(model.Polygon{}, poly[i:j+1]...)
	second := append(model.Polygon{}, poly[j:]...)
	second = append(second, poly[:i+1]...)

	simplifiedFirst := douglasPeucker(first, tolerance)
	simplifiedSecond := douglasPeucker(second, tolerance)

	out := make(model.Polygon, 0, len(simplifiedFirst)+len(simplifiedSecond)-2)
	out = append(out, simplifiedFirst...)
	if len(simplifiedSecond) > 2 {
		out = append(out, simplifiedSecond[1:len(simplifiedSecond)-1]...)
	}
	return out
}

func farthestPair(poly model.Polygon) (int, int) {
	bi, bj := 0, 1
	best := -1.0
	for i := range poly {
		for j := i + 1; j < len(poly); j++ {
			d := math.Hypot(poly[i].X-poly[j].X, poly[i].Y-poly[j].Y)
			if d > best {
				best, bi, bj = d, i, j
			}
		}
	}
	return bi, bj
}

func douglasPeucker(points model.Polygon, tolerance float64) model.Polygon {
	if len(points) < 3 {
		return points
	}
	first, last := points[0], points[len(points)-1]
	maxDist := -1.0
	maxIdx := 0
	for i := 1; i < len(points)-1; i++ {
		d := perpendicularDistance(points[i], first, last)
		if d > maxDist {
			maxDist, maxIdx = d, i
		}
	}
	if maxDist <= tolerance {
		return model.Polygon{first, last}
	}
	left := douglasPeucker(points[:maxIdx+1], tolerance)
	right := douglasPeucker(points[maxIdx:], tolerance)
	out := make(model.Polygon, 0, len(left)+len(right)-1)
	out = append(out, left[:len(left)-1]...)
	out = append(out, right...)
	return out
}

func perpendicularDistance(p, a, b model.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length < epsilon {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	return math.Abs(dy*p.X-dx*p.Y+b.X*a.Y-b.Y*a.X) / length
}
