// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// options.go - functional options resolved into an immutable builderConfig.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is used when no weight option is given.
const DefaultEdgeWeight int64 = 1

// defaultSeed keeps fixtures reproducible when no seed is set.
const defaultSeed int64 = 1

// WeightFn produces an edge weight from the configured RNG.
type WeightFn func(rng *rand.Rand) int64

// BuilderOption configures a builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per BuildGraph call.
type builderConfig struct {
	rng       *rand.Rand
	weightFn  WeightFn
	symmetric bool
	err       error
}

// newBuilderConfig applies opts over the defaults: seed 1, constant weight 1, directed.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      rand.New(rand.NewSource(defaultSeed)),
		weightFn: func(*rand.Rand) int64 { return DefaultEdgeWeight },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithSeed fixes the RNG seed used for random topologies and weights.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r as the RNG. A nil r is ignored.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithWeightFn sets a custom weight generator. A nil fn is ignored.
// Negative weights it produces surface as core.ErrInvalidWeight from BuildGraph.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithConstantWeight gives every edge weight w (w ≥ 0).
func WithConstantWeight(w int64) BuilderOption {
	return func(c *builderConfig) {
		if w < 0 {
			c.err = fmt.Errorf("WithConstantWeight: w=%d < 0: %w", w, ErrOptionViolation)
			return
		}
		c.weightFn = func(*rand.Rand) int64 { return w }
	}
}

// WithUniformWeight draws weights uniformly from [min, max] (0 ≤ min ≤ max).
func WithUniformWeight(min, max int64) BuilderOption {
	return func(c *builderConfig) {
		if min < 0 || max < min {
			c.err = fmt.Errorf("WithUniformWeight: require 0 ≤ min ≤ max, got min=%d max=%d: %w",
				min, max, ErrOptionViolation)
			return
		}
		c.weightFn = func(rng *rand.Rand) int64 { return min + rng.Int63n(max-min+1) }
	}
}

// WithSymmetric mirrors every generated edge u→v with v→u of the same weight.
func WithSymmetric() BuilderOption {
	return func(c *builderConfig) { c.symmetric = true }
}
