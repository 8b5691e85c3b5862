package terrain

import (
	"fmt"

	"terrain-bg/pkg/core"
	"terrain-bg/pkg/noise"
)

// Composite subtracts the falloff weights from the normalised heights and
// clamps the result to [0,1], writing into heights.
func Composite(heights, falloff *core.FloatGrid) (*core.FloatGrid, error) {
	if heights.W != falloff.W || heights.H != falloff.H {
		return nil, fmt.Errorf("composite %dx%d with falloff %dx%d: %w",
			heights.W, heights.H, falloff.W, falloff.H, ErrInvalidParameter)
	}
	weights := falloff.Cells()
	cells := heights.Cells()
	for i, v := range cells {
		cells[i] = noise.Clamp01(v - weights[i])
	}
	return heights, nil
}
