// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pathfind

import (
	"context"
	"time"
)

// Verdict is the validator's judgment on one concrete candidate chain.
type Verdict struct {
	// Found reports whether the validator accepted the chain.
	Found bool

	// Reason explains a rejection. Populated only when Found is false.
	Reason string
}

// PathValidator is the external collaborator that renders the final
// cryptographic verdict on a candidate chain. Chain is ordered leaf-first:
// index 0 is the target, the last index is the would-be root-issuer.
//
// A non-nil error signals that the validator itself failed (as opposed to
// rejecting the chain) and aborts the search; see ValidatorError.
type PathValidator interface {
	Validate(ctx context.Context, chain []Certificate) (Verdict, error)
}

// FoundPath is the accepted chain and the parallel trace of how each of its
// certificates was discovered.
type FoundPath struct {
	Path        []Certificate
	OriginTrace []Origin
}

// Failure records one candidate chain the validator rejected during the
// search, in the order the validator rejected it.
type Failure struct {
	Chain       []Certificate
	OriginTrace []Origin
	Reason      string
}

// Report is the structured outcome of a Find call.
type Report struct {
	// Found is nil if no acceptable chain was discovered.
	Found *FoundPath

	// Duration is the wall-clock time the search took.
	Duration time.Duration

	// Failures lists every candidate chain the validator rejected, in the
	// order of rejection.
	Failures []Failure
}
