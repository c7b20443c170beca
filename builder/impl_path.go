// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.

package builder

import "fmt"

const (
	methodPath       = "Path"
	methodCycle      = "Cycle"
	minPathVertices  = 1
	minCycleVertices = 3
)

// Path returns a Constructor for the chain 0→1→…→n-1 (n ≥ 1).
func Path(n int) Constructor {
	return func(g *coreGraph, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		addVertices(g, n)
		for i := 1; i < n; i++ {
			if err := link(methodPath, g, cfg, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring 0→1→…→n-1→0 (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *coreGraph, cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		addVertices(g, n)
		for i := 0; i < n; i++ {
			if err := link(methodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
