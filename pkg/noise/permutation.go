// Package noise implements the gradient noise and fractal accumulation used to
// build terrain height fields.
package noise

import (
	"errors"
	"fmt"

	"terrain-bg/pkg/core"
)

// ErrInvalidParameter reports a caller-supplied value the pipeline cannot use.
var ErrInvalidParameter = errors.New("invalid parameter")

// PermutationTable holds a shuffled 0..255 sequence followed by a copy of
// itself, so a lookup at i+1 for any i in 0..255 never needs to wrap.
type PermutationTable [512]int

// NewPermutationTable shuffles 0..255 with rng and duplicates the result.
func NewPermutationTable(rng *core.RNG) *PermutationTable {
	return buildTable(rng.Perm256())
}

// PermutationFromValues builds a table from an explicit permutation of 0..255.
func PermutationFromValues(values [256]int) (*PermutationTable, error) {
	var seen [256]bool
	for i, v := range values {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("permutation entry %d = %d: %w", i, v, ErrInvalidParameter)
		}
		if seen[v] {
			return nil, fmt.Errorf("permutation value %d repeated: %w", v, ErrInvalidParameter)
		}
		seen[v] = true
	}
	return buildTable(values), nil
}

func buildTable(values [256]int) *PermutationTable {
	var t PermutationTable
	copy(t[:256], values[:])
	copy(t[256:], values[:])
	return &t
}
