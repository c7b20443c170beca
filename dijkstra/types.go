// Package dijkstra defines the sentinel errors, the Graph contract and the
// functional options of the shortest-path solver.
//
// Options:
//
//	– WithMaxDistance:      cap on explored distances; farther vertices stay unreached.
//	– WithInfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrInvalidWeight    if Engine.AddEdge receives a negative or NaN weight.
//	– ErrNilGraph         if a nil Graph is passed to Dijkstra.
//	– ErrNegativeWeight   if a negative or NaN weight is met while relaxing.
//	– ErrDistanceOverflow if a reachable shortest distance does not fit in W.
//	– ErrBadMaxDistance   if MaxDistance < 0.
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0.
//	– ErrNoPath           if PathTo is asked for a vertex that was not reached.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrInvalidWeight is core.ErrInvalidWeight, re-exported for Engine callers.
	ErrInvalidWeight = core.ErrInvalidWeight

	// ErrNilGraph indicates that a nil Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative (or NaN) edge weight was met
	// during relaxation. Graphs built through core.Graph never trigger it.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrDistanceOverflow indicates that the shortest distance to a reachable
	// vertex does not fit in the weight type.
	ErrDistanceOverflow = errors.New("dijkstra: distance overflows weight type")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a
	// negative value, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that the requested destination was not reached.
	ErrNoPath = errors.New("dijkstra: no path to vertex")
)

// Graph is the read-only view Dijkstra needs: the outgoing edges of a vertex.
// *core.Graph satisfies it. Unknown vertices must yield no edges.
type Graph[V comparable, W core.Weight] interface {
	Neighbors(u V) []core.Edge[V, W]
}

// Options configures a single Dijkstra run.
//
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
// InfEdgeThreshold – edges with weight ≥ this threshold are not traversed.
//
// The has* flags distinguish "unset" from the zero value, because W has no
// portable "infinity" across integer and floating-point types.
type Options[W core.Weight] struct {
	MaxDistance      W
	InfEdgeThreshold W

	hasMaxDistance bool
	hasInfEdge     bool
	err            error
}

// Option represents a functional option for configuring Dijkstra.
type Option[W core.Weight] func(*Options[W])

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed max are not finalized and
// are absent from the result. A negative (or NaN) max makes Dijkstra return
// ErrBadMaxDistance.
func WithMaxDistance[W core.Weight](max W) Option[W] {
	return func(o *Options[W]) {
		if !core.ValidWeight(max) {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
		o.hasMaxDistance = true
	}
}

// WithInfEdgeThreshold defines a weight at or above which edges are
// considered impassable. A zero, negative or NaN threshold makes Dijkstra
// return ErrBadInfThreshold.
func WithInfEdgeThreshold[W core.Weight](threshold W) Option[W] {
	return func(o *Options[W]) {
		if !core.ValidWeight(threshold) || threshold == 0 {
			o.err = fmt.Errorf("%w: got %v", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
		o.hasInfEdge = true
	}
}

// impassable reports whether an edge of weight w must be skipped.
func (o *Options[W]) impassable(w W) bool {
	return o.hasInfEdge && w >= o.InfEdgeThreshold
}

// beyond reports whether distance d exceeds the configured cap.
func (o *Options[W]) beyond(d W) bool {
	return o.hasMaxDistance && d > o.MaxDistance
}
