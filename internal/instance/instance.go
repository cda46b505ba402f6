// Package instance loads a packing instance from JSON: the set of items to
// place and the strip they must be placed into. Collision engines,
// polygon-simplification tools, and SVG renderers are treated as external
// sources feeding this package, or sinks consuming model.Result; none of
// that lives here.
package instance

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/piwi3910/sdrpack/internal/model"
	"github.com/piwi3910/sdrpack/internal/sdrerrors"
)

// Instance is a fully parsed, validated packing problem: the items to place
// and the height of the strip they go into.
type Instance struct {
	Items       []model.Item
	StripHeight float64
}

type jsonRotation struct {
	Mode      string    `json:"mode"`
	AnglesDeg []float64 `json:"angles_deg,omitempty"`
}

type jsonItem struct {
	ID       string       `json:"id,omitempty"`
	Label    string       `json:"label,omitempty"`
	Outline  [][2]float64 `json:"outline"`
	Quantity int          `json:"quantity"`
	Rotation jsonRotation `json:"rotation"`
}

type jsonStrip struct {
	Height float64 `json:"height"`
}

type jsonInstance struct {
	Items []jsonItem        `json:"items"`
	Strip *jsonStrip        `json:"strip"`
	Bins  []json.RawMessage `json:"bins,omitempty"`
}

// Load decodes and validates an instance from r. It rejects anything that
// is not an open-strip instance (e.g. a fixed-bin layout) at the boundary,
// with ErrInstanceKindUnsupported.
func Load(r io.Reader) (Instance, error) {
	var raw jsonInstance
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Instance{}, fmt.Errorf("sdrpack: decode instance: %w", err)
	}
	if raw.Strip == nil || len(raw.Bins) > 0 {
		return Instance{}, sdrerrors.ErrInstanceKindUnsupported
	}
	if raw.Strip.Height <= 0 {
		return Instance{}, fmt.Errorf("%w: strip height must be positive", sdrerrors.ErrNumericDegenerate)
	}

	items := make([]model.Item, 0, len(raw.Items))
	for _, ji := range raw.Items {
		item, err := parseItem(ji)
		if err != nil {
			return Instance{}, err
		}
		items = append(items, item)
	}
	return Instance{Items: items, StripHeight: raw.Strip.Height}, nil
}

func parseItem(ji jsonItem) (model.Item, error) {
	if len(ji.Outline) < 3 {
		return model.Item{}, fmt.Errorf("%w: item %q has fewer than 3 outline vertices", sdrerrors.ErrShapeUnsupported, ji.ID)
	}
	if ji.Quantity <= 0 {
		return model.Item{}, fmt.Errorf("%w: item %q has non-positive quantity", sdrerrors.ErrNumericDegenerate, ji.ID)
	}

	poly := make(model.Polygon, len(ji.Outline))
	for i, pt := range ji.Outline {
		poly[i] = model.Point{X: pt[0], Y: pt[1]}
	}

	rotation, err := parseRotation(ji.Rotation)
	if err != nil {
		return model.Item{}, err
	}

	id := ji.ID
	if id == "" {
		id = uuid.New().String()[:8]
	}

	return model.Item{
		ID:        id,
		Label:     ji.Label,
		Outline:   poly,
		Quantity:  ji.Quantity,
		Rotations: rotation,
	}, nil
}

func parseRotation(r jsonRotation) (model.RotationSpec, error) {
	switch r.Mode {
	case "", "none":
		return model.RotationSpec{Mode: model.RotationNone}, nil
	case "discrete":
		if len(r.AnglesDeg) == 0 {
			return model.RotationSpec{}, fmt.Errorf("%w: discrete rotation requires at least one angle", sdrerrors.ErrShapeUnsupported)
		}
		return model.RotationSpec{Mode: model.RotationDiscrete, AnglesDeg: r.AnglesDeg}, nil
	case "continuous":
		return model.RotationSpec{Mode: model.RotationContinuous}, nil
	default:
		return model.RotationSpec{}, fmt.Errorf("%w: unknown rotation mode %q", sdrerrors.ErrShapeUnsupported, r.Mode)
	}
}
