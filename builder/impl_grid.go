// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex (r, c) has index r*cols + c.
//   - Edges go right (r,c)→(r,c+1) and down (r,c)→(r+1,c); add WithSymmetric()
//     for a 4-neighbour undirected lattice.
//
// Complexity: O(rows·cols).

package builder

import "fmt"

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid returns a Constructor for a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *coreGraph, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		addVertices(g, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridIndex(cols, r, c)
				if c+1 < cols {
					if err := link(methodGrid, g, cfg, u, GridIndex(cols, r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(methodGrid, g, cfg, u, GridIndex(cols, r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// GridIndex maps cell (r, c) of a grid with cols columns to its vertex index.
func GridIndex(cols, r, c int) int { return r*cols + c }
