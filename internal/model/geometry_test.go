package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingBox(t *testing.T) {
	p := Polygon{{X: -1, Y: 2}, {X: 3, Y: -4}, {X: 0, Y: 0}}
	min, max := p.BoundingBox()
	assert.Equal(t, Point{X: -1, Y: -4}, min)
	assert.Equal(t, Point{X: 3, Y: 2}, max)
}

func TestTranslate(t *testing.T) {
	p := Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}
	got := p.Translate(2, 3)
	assert.Equal(t, Polygon{{X: 2, Y: 3}, {X: 3, Y: 4}}, got)
}

func TestRotateQuarterTurn(t *testing.T) {
	p := Polygon{{X: 1, Y: 0}}
	got := p.Rotate(math.Pi / 2)
	assert.InDelta(t, 0, got[0].X, 1e-9)
	assert.InDelta(t, 1, got[0].Y, 1e-9)
}

func TestAreaOfUnitSquare(t *testing.T) {
	p := Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	assert.InDelta(t, 1.0, p.Area(), 1e-9)
}

func TestHullDiameterOfSquareIsDiagonal(t *testing.T) {
	p := Polygon{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	assert.InDelta(t, math.Hypot(2, 2), p.HullDiameter(), 1e-9)
}

func TestConvexHullDropsInteriorPoint(t *testing.T) {
	p := Polygon{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 2, Y: 2}}
	hull := p.ConvexHull()
	assert.Len(t, hull, 4)
}
