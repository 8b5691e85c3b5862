package terrain

import (
	"fmt"
	"log"

	"terrain-bg/pkg/core"
)

// splitRows returns the height of the front band and of each outer part.
func splitRows(height int, ratio float64) (front, part int, err error) {
	front = int(float64(height) * ratio)
	part = (height - front + 1) / 2
	if part < 1 || front >= height {
		return 0, 0, fmt.Errorf("front ratio %v leaves no rows of a %d-row image: %w", ratio, height, ErrInvalidParameter)
	}
	return front, part, nil
}

// generateSplit fills the top and bottom parts with independent fields and
// leaves the front band at 0. The bottom part uses seed+1.
func generateSplit(req Request, seed int64, logger *log.Logger) (*core.FloatGrid, []FieldStats, error) {
	front, part, err := splitRows(req.Height, req.Split.FrontRatio)
	if err != nil {
		return nil, nil, err
	}
	top, topStats, err := generateField(req, req.Width, part, seed, logger)
	if err != nil {
		return nil, nil, err
	}
	bottom, bottomStats, err := generateField(req, req.Width, part, seed+1, logger)
	if err != nil {
		return nil, nil, err
	}

	out := core.NewFloatGrid(req.Width, req.Height)
	for y := 0; y < req.Height; y++ {
		switch {
		case y < part:
			copy(out.Row(y), top.Row(y))
		case y >= part+front:
			copy(out.Row(y), bottom.Row(y-part-front))
		}
	}
	return out, []FieldStats{topStats, bottomStats}, nil
}
