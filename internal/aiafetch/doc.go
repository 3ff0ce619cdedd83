// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package aiafetch implements pathfind.AIAFetcher over HTTP, the way
// internal/net used to wrap network access for the rest of this module's
// tooling. Fetches are retried with backoff via go-retryablehttp,
// deduplicated across concurrent callers with singleflight, and cached by
// URL with an LRU so a busy search does not refetch the same intermediate
// on every branch that names it.
package aiafetch
