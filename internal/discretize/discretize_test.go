package discretize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/sdrpack/internal/discrete/interval"
	"github.com/piwi3910/sdrpack/internal/model"
)

func square(w, h float64) model.Polygon {
	return model.Polygon{
		{X: 0, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: h},
		{X: 0, Y: h},
	}
}

func TestDiscretizeSquareExactMultipleOfResolutionProducesOvershootColumn(t *testing.T) {
	item := model.Item{ID: "sq", Outline: square(4, 3), Quantity: 1, Rotations: model.RotationSpec{Mode: model.RotationNone}}
	cfg := model.Config{Resolution: 1}

	di, err := Discretize(item, 0, cfg)
	require.NoError(t, err)

	// width 4 at resolution 1 => ceil(4/1)+1 = 5 columns; the last one sits
	// on the right edge (x = 4) and holds that vertical edge.
	require.Len(t, di.Columns, 5)
	assert.Len(t, di.Columns[4].Intervals, 1)
	assert.NotEmpty(t, di.Columns[0].Intervals)
}

func TestDiscretizeRejectsDegeneratePolygon(t *testing.T) {
	item := model.Item{ID: "bad", Outline: model.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}}, Quantity: 1}
	_, err := Discretize(item, 0, model.Config{Resolution: 1})
	assert.Error(t, err)
}

func TestDiscretizeNormalizesIntoFirstQuadrant(t *testing.T) {
	outline := model.Polygon{
		{X: -5, Y: -5}, {X: -2, Y: -5}, {X: -2, Y: -2}, {X: -5, Y: -2},
	}
	item := model.Item{ID: "neg", Outline: outline, Quantity: 1}
	di, err := Discretize(item, 0, model.Config{Resolution: 1})
	require.NoError(t, err)
	for _, col := range di.Columns {
		for _, iv := range col.Intervals {
			assert.GreaterOrEqual(t, iv.Start, -epsilon)
			assert.GreaterOrEqual(t, iv.End, -epsilon)
		}
	}
}

func TestDiscretizeAxisAlignedSquareHasOneFullHeightIntervalPerColumn(t *testing.T) {
	item := model.Item{ID: "sq", Outline: square(3, 3), Quantity: 1, Rotations: model.RotationSpec{Mode: model.RotationNone}}
	di, err := Discretize(item, 0, model.Config{Resolution: 1})
	require.NoError(t, err)

	// width 3 at resolution 1 => ceil(3/1)+1 = 4 columns; the last one sits
	// on the right edge (x = 3) and carries it as a Right-oriented interval.
	require.Len(t, di.Columns, 4)
	for _, col := range di.Columns {
		require.Len(t, col.Intervals, 1)
		assert.InDelta(t, 0, col.Intervals[0].Start, epsilon)
		assert.InDelta(t, 3, col.Intervals[0].End, epsilon)
	}
	assert.Equal(t, interval.Right, di.Columns[3].Intervals[0].Orientation)
}

func TestDiscretizeTriangleLeadingColumnIsPointInterval(t *testing.T) {
	// A single vertex at the leftmost x, with no vertical edge there, sweeps
	// to a zero-height interval in its column.
	triangle := model.Polygon{{X: 0, Y: 2}, {X: 4, Y: 0}, {X: 4, Y: 5}}
	item := model.Item{ID: "tri", Outline: triangle, Quantity: 1, Rotations: model.RotationSpec{Mode: model.RotationNone}}
	di, err := Discretize(item, 0, model.Config{Resolution: 1})
	require.NoError(t, err)

	require.NotEmpty(t, di.Columns[0].Intervals)
	first := di.Columns[0].Intervals[0]
	assert.True(t, first.IsPoint(), "leading column swept through a lone vertex should be a point interval")
}

func TestDiscretizeRotationProducesDifferentColumnCount(t *testing.T) {
	item := model.Item{ID: "sq", Outline: square(2, 4), Quantity: 1}
	cfg := model.Config{Resolution: 1}

	upright, err := Discretize(item, 0, cfg)
	require.NoError(t, err)
	rotated, err := Discretize(item, 3.14159265/2, cfg)
	require.NoError(t, err)

	assert.NotEqual(t, len(upright.Columns), len(rotated.Columns))
}
