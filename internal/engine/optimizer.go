// Package engine implements the greedy outer optimizer: it orders items by
// convex-hull diameter, drives each one through the discrete strip's
// try-fit search, and grows the strip whenever a unit of demand does not
// fit.
package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/piwi3910/sdrpack/internal/catalog"
	"github.com/piwi3910/sdrpack/internal/model"
	"github.com/piwi3910/sdrpack/internal/sdrerrors"
	"github.com/piwi3910/sdrpack/internal/strip"
	"github.com/piwi3910/sdrpack/internal/telemetry"
)

// growthFactor is how much the strip widens, relative to its current
// width, each time an item's demand cannot be fully placed.
const growthFactor = 1.1

// Optimizer packs a set of items into a fixed-height strip.
type Optimizer struct {
	Config model.Config
}

// New builds an Optimizer with the given configuration.
func New(cfg model.Config) *Optimizer {
	return &Optimizer{Config: cfg}
}

// Optimize discretizes every item's allowed rotations, orders the items by
// descending convex-hull diameter, and places them one at a time, growing
// the strip whenever an item's remaining demand cannot fit at the current
// width. StripHeight is fixed for the whole run; only width grows.
func (o *Optimizer) Optimize(items []model.Item, stripHeight float64) (model.Result, error) {
	cat, err := catalog.Build(context.Background(), items, o.Config)
	if err != nil {
		return model.Result{}, err
	}

	ordered := sortByHullDiameterDesc(items)

	area := 0.0
	for _, it := range items {
		area += it.Outline.Area() * float64(it.Quantity)
	}
	initialWidth := 2 * area / stripHeight
	if o.Config.MaxStripWidth > 0 && initialWidth > o.Config.MaxStripWidth {
		initialWidth = o.Config.MaxStripWidth
	}
	s := strip.New(initialWidth, stripHeight, o.Config.Resolution)

	type placed struct {
		itemID string
		pl     strip.Placement
		dis    model.DiscretizedItem
	}
	var committed []placed

	for _, it := range ordered {
		variants, patterns := variantsFor(it, cat)
		if len(patterns) == 0 {
			continue
		}

		remaining := it.Quantity
		for remaining > 0 {
			ps, ok := s.TryFit(patterns, remaining)
			for _, p := range ps {
				committed = append(committed, placed{itemID: it.ID, pl: p, dis: variants[p.RotationIndex]})
				telemetry.Logger().Debug("placed unit", "item", it.ID, "column", p.Column, "offshoot", p.VerticalOffset)
			}
			remaining -= len(ps)
			if ok {
				break
			}
			if remaining == 0 {
				break
			}

			nextWidth := s.Width() * growthFactor
			if o.Config.MaxStripWidth > 0 && nextWidth > o.Config.MaxStripWidth {
				return model.Result{}, fmt.Errorf("%w: item %s needs %d more units but strip is capped at width %g",
					sdrerrors.ErrPlacementImpossible, it.ID, remaining, o.Config.MaxStripWidth)
			}
			s.ExtendTo(nextWidth)
			telemetry.Logger().Debug("extending strip", "item", it.ID, "new_width", s.Width())
		}
	}

	s.TrimTrailingEmpty()

	// The reported width is one resolution less than the number of columns
	// left after trimming.
	result := model.Result{
		StripWidth:  float64(len(s.Columns)-1) * o.Config.Resolution,
		StripHeight: stripHeight,
		Placements:  make([]model.Placement, 0, len(committed)),
	}
	for _, c := range committed {
		result.Placements = append(result.Placements, model.Placement{
			ItemID:          c.itemID,
			RotationRadians: c.dis.Rotation,
			X:               float64(c.pl.Column)*o.Config.Resolution + c.dis.OffsetX,
			Y:               stripHeight - c.pl.VerticalOffset + c.dis.OffsetY,
		})
	}
	return result, nil
}

// variantsFor returns, in the same order as item.Rotations.AnglesRadians(),
// the discretized pattern for each rotation the catalog actually has (a
// rotation the catalog failed to discretize is simply unavailable, not an
// error here; Build would already have returned the error to the caller).
func variantsFor(item model.Item, cat *catalog.Catalog) ([]model.DiscretizedItem, []strip.Pattern) {
	angles := item.Rotations.AnglesRadians()
	variants := make([]model.DiscretizedItem, 0, len(angles))
	patterns := make([]strip.Pattern, 0, len(angles))
	for _, a := range angles {
		di, ok := cat.Get(item.ID, a)
		if !ok {
			continue
		}
		variants = append(variants, di)
		patterns = append(patterns, strip.Pattern{Columns: di.Columns})
	}
	return variants, patterns
}

// sortByHullDiameterDesc returns items ordered by descending convex-hull
// diameter, breaking ties by input order.
func sortByHullDiameterDesc(items []model.Item) []model.Item {
	idx := make([]int, len(items))
	diameters := make([]float64, len(items))
	for i, it := range items {
		idx[i] = i
		diameters[i] = it.Outline.HullDiameter()
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return diameters[idx[a]] > diameters[idx[b]]
	})
	ordered := make([]model.Item, len(items))
	for i, j := range idx {
		ordered[i] = items[j]
	}
	return ordered
}
