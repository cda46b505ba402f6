package instance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/sdrpack/internal/sdrerrors"
)

func TestLoadParsesWellFormedInstance(t *testing.T) {
	r := strings.NewReader(`{
		"strip": {"height": 10},
		"items": [
			{"id": "a", "quantity": 2, "outline": [[0,0],[2,0],[2,2],[0,2]], "rotation": {"mode": "discrete", "angles_deg": [0, 90]}}
		]
	}`)

	inst, err := Load(r)
	require.NoError(t, err)
	require.Len(t, inst.Items, 1)
	assert.Equal(t, 10.0, inst.StripHeight)
	assert.Equal(t, 2, inst.Items[0].Quantity)
	assert.Len(t, inst.Items[0].Rotations.AnglesDeg, 2)
}

func TestLoadRejectsBinPackingInstance(t *testing.T) {
	r := strings.NewReader(`{"bins": [{"width": 10, "height": 10}], "items": []}`)
	_, err := Load(r)
	assert.ErrorIs(t, err, sdrerrors.ErrInstanceKindUnsupported)
}

func TestLoadRejectsMissingStrip(t *testing.T) {
	r := strings.NewReader(`{"items": []}`)
	_, err := Load(r)
	assert.ErrorIs(t, err, sdrerrors.ErrInstanceKindUnsupported)
}

func TestLoadRejectsDegenerateOutline(t *testing.T) {
	r := strings.NewReader(`{"strip": {"height": 10}, "items": [{"quantity": 1, "outline": [[0,0],[1,1]]}]}`)
	_, err := Load(r)
	assert.ErrorIs(t, err, sdrerrors.ErrShapeUnsupported)
}

func TestLoadAssignsIDWhenMissing(t *testing.T) {
	r := strings.NewReader(`{"strip": {"height": 10}, "items": [{"quantity": 1, "outline": [[0,0],[1,0],[1,1]]}]}`)
	inst, err := Load(r)
	require.NoError(t, err)
	require.Len(t, inst.Items, 1)
	assert.NotEmpty(t, inst.Items[0].ID)
}
