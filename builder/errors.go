// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// errors.go - sentinel errors for builder constructors and options.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrConstructFailed indicates a nil constructor or a failed edge insertion.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an invalid option value, such as a negative weight bound.
var ErrOptionViolation = errors.New("builder: invalid option value")
