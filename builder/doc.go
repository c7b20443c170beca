// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// Package builder assembles deterministic graph fixtures for the shortest-path
// engine: paths, cycles, grids, complete graphs and Erdős–Rényi-like random
// sparse graphs.
//
// Vertices are dense ints 0..n-1 (row-major r*cols+c for grids) and weights
// are int64, drawn from the configured WeightFn.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg,
//     runs cons in order.
//   - Edges are directed. WithSymmetric() adds the reverse of every edge, which
//     is how undirected topologies are modelled on a directed engine.
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; constructors return sentinel errors.
//
// Example:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 9), builder.WithSymmetric()},
//	    builder.Grid(10, 10),
//	)
package builder
