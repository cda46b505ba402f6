package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/sdrpack/internal/model"
)

func TestBuildDiscretizesEveryItemRotationPair(t *testing.T) {
	square := model.Polygon{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	rotations := model.RotationSpec{Mode: model.RotationDiscrete, AnglesDeg: []float64{0, 90}}
	items := []model.Item{
		{ID: "a", Outline: square, Quantity: 1, Rotations: model.RotationSpec{Mode: model.RotationNone}},
		{ID: "b", Outline: square, Quantity: 1, Rotations: rotations},
	}

	cat, err := Build(context.Background(), items, model.Config{Resolution: 1})
	require.NoError(t, err)

	_, ok := cat.Get("a", 0)
	assert.True(t, ok)

	// Querying with the exact angles AnglesRadians() produces mirrors how
	// internal/engine looks entries up: it passes the very same slice back
	// through cat.Get rather than reconstructing the angle independently.
	angles := rotations.AnglesRadians()
	_, ok = cat.Get("b", angles[0])
	assert.True(t, ok)
	_, ok = cat.Get("b", angles[1])
	assert.True(t, ok)

	_, ok = cat.Get("missing", 0)
	assert.False(t, ok)
}

func TestBuildPropagatesDiscretizationErrors(t *testing.T) {
	items := []model.Item{
		{ID: "degenerate", Outline: model.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}}, Quantity: 1, Rotations: model.RotationSpec{Mode: model.RotationNone}},
	}
	_, err := Build(context.Background(), items, model.Config{Resolution: 1})
	assert.Error(t, err)
}
