package engine

import (
	"fmt"

	"github.com/piwi3910/sdrpack/internal/model"
)

// ComparisonScenario names one configuration to try against the same item
// set, so different resolutions or strip-growth bounds can be compared
// side by side.
type ComparisonScenario struct {
	Name   string
	Config model.Config
}

// ComparisonResult holds the packing result and a few derived statistics
// for a single scenario.
type ComparisonResult struct {
	Scenario   ComparisonScenario
	Result     model.Result
	Err        error
	PlacedArea float64
}

// CompareScenarios runs Optimize for each scenario against the same items
// and strip height, returning one result per scenario in scenario order.
// A scenario whose Optimize call fails still produces a ComparisonResult,
// with Err set and Result left zero.
func CompareScenarios(scenarios []ComparisonScenario, items []model.Item, stripHeight float64) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		opt := New(scenario.Config)
		result, err := opt.Optimize(items, stripHeight)
		cr := ComparisonResult{Scenario: scenario, Result: result, Err: err}
		if err == nil {
			cr.PlacedArea = placedArea(items, result)
		}
		results = append(results, cr)
	}
	return results
}

func placedArea(items []model.Item, result model.Result) float64 {
	areaByID := make(map[string]float64, len(items))
	for _, it := range items {
		areaByID[it.ID] = it.Outline.Area()
	}
	var total float64
	for _, p := range result.Placements {
		total += areaByID[p.ItemID]
	}
	return total
}

// BuildDefaultScenarios generates a few what-if variations on a base
// configuration: a coarser resolution (faster, less precise) and a finer
// one (slower, tighter nesting), alongside the base itself.
func BuildDefaultScenarios(base model.Config) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "base resolution", Config: base},
	}

	coarser := base
	coarser.Resolution = base.Resolution * 2
	scenarios = append(scenarios, ComparisonScenario{
		Name:   fmt.Sprintf("resolution %.3g (coarser)", coarser.Resolution),
		Config: coarser,
	})

	finer := base
	finer.Resolution = base.Resolution / 2
	scenarios = append(scenarios, ComparisonScenario{
		Name:   fmt.Sprintf("resolution %.3g (finer)", finer.Resolution),
		Config: finer,
	})

	return scenarios
}
