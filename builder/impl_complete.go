// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_complete.go - Complete(n) constructor.

package builder

import "fmt"

const (
	methodComplete      = "Complete"
	minCompleteVertices = 1
)

// Complete returns a Constructor adding u→v for every ordered pair u≠v
// over n vertices (n ≥ 1). WithSymmetric is redundant here and would
// double every edge.
//
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *coreGraph, cfg builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}
		addVertices(g, n)
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v {
					continue
				}
				if err := link(methodComplete, g, cfg, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
