package model

import "github.com/piwi3910/sdrpack/internal/discrete/line"

// DiscretizedItem is one item discretized at one rotation: a column-indexed
// pattern of occupied intervals, plus the translation that was applied to
// move the rotated outline into the first quadrant. OffsetX and OffsetY are
// needed to translate a strip placement back into the item's own
// coordinate frame.
type DiscretizedItem struct {
	ItemID   string
	Rotation float64
	Columns  []line.Line
	OffsetX  float64
	OffsetY  float64
}
