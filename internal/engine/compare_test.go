package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/sdrpack/internal/model"
)

func TestCompareScenariosRunsEachAgainstSameItems(t *testing.T) {
	items := []model.Item{
		{ID: "sq", Outline: rect(2, 2), Quantity: 2, Rotations: model.RotationSpec{Mode: model.RotationNone}},
	}
	scenarios := BuildDefaultScenarios(model.Config{Resolution: 1})

	results := CompareScenarios(scenarios, items, 10)
	require.Len(t, results, len(scenarios))
	for _, r := range results {
		assert.NoError(t, r.Err)
		assert.Len(t, r.Result.Placements, 2)
	}
}
