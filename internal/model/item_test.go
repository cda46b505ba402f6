package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemAssignsShortID(t *testing.T) {
	it := NewItem("bracket", Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, 3, RotationSpec{})
	assert.Len(t, it.ID, 8)
	assert.Equal(t, 3, it.Quantity)
}

func TestRotationSpecAnglesRadiansNoneIsZero(t *testing.T) {
	r := RotationSpec{Mode: RotationNone}
	require.Equal(t, []float64{0}, r.AnglesRadians())
}

func TestRotationSpecAnglesRadiansConvertsDegrees(t *testing.T) {
	r := RotationSpec{Mode: RotationDiscrete, AnglesDeg: []float64{0, 90, 180}}
	got := r.AnglesRadians()
	require.Len(t, got, 3)
	assert.InDelta(t, math.Pi/2, got[1], 1e-9)
	assert.InDelta(t, math.Pi, got[2], 1e-9)
}
