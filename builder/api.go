// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// api.go - BuildGraph orchestrator and the Constructor contract.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// coreGraph is the concrete graph type every constructor fills.
type coreGraph = core.Graph[int, int64]

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors instead of panicking.
type Constructor func(g *coreGraph, cfg builderConfig) error

// BuildGraph creates a new graph, resolves the builder configuration from
// bopts, and applies all constructors in order. Any error is wrapped with
// "BuildGraph: %w"; the partially built graph is discarded.
//
// Complexity: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[int, int64], error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", cfg.err)
	}

	g := core.NewGraph[int, int64]()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices registers 0..n-1 in ascending order.
func addVertices(g *coreGraph, n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
}

// link adds u→v with a freshly drawn weight, plus v→u when symmetric.
// The mirrored edge reuses the same weight.
func link(method string, g *coreGraph, cfg builderConfig, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}
	if cfg.symmetric && u != v {
		if err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, v, u, w, err)
		}
	}

	return nil
}
