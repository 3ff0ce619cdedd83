// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pathfind

import "context"

// AIAFetcher is the external collaborator that resolves an Authority
// Information Access caIssuers URI to the certificates it publishes.
//
// The engine treats every failure from Fetch (network errors, timeouts,
// decode failures) as "no certificates available" and never surfaces it to
// Find's caller; implementations are free to log internally but must not
// rely on their errors propagating.
type AIAFetcher interface {
	Fetch(ctx context.Context, uri string) ([]Certificate, error)
}
