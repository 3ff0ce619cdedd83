// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pathfind

import (
	"errors"
	"fmt"
)

// ErrBudgetExceeded indicates that a search's configured time budget was
// exhausted before the frontier was drained or an accepted chain found.
var ErrBudgetExceeded = errors.New("pathfind: time budget exceeded")

// ErrNoValidator indicates that Find was called without a PathValidator
// configured. This is a programmer error, not a search outcome.
var ErrNoValidator = errors.New("pathfind: no validator configured")

// ErrNoFetcher indicates that AIA was enabled without an AIAFetcher
// configured. This is a programmer error, not a search outcome.
var ErrNoFetcher = errors.New("pathfind: AIA enabled without a fetcher")

// ValidatorError wraps a failure returned by the configured PathValidator
// itself, as distinct from a NotFound verdict. A ValidatorError signals a
// programmer error in the validator and aborts the search immediately; it
// is never recorded in a Report's Failures.
type ValidatorError struct {
	Err error
}

func (e *ValidatorError) Error() string {
	return fmt.Sprintf("pathfind: validator error: %v", e.Err)
}

func (e *ValidatorError) Unwrap() error {
	return e.Err
}
