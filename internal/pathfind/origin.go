// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pathfind

import "fmt"

// OriginKind identifies how a certificate entered a candidate chain.
type OriginKind int

const (
	// OriginTarget marks the end-entity certificate the search began with.
	OriginTarget OriginKind = iota

	// OriginStore marks a certificate found via a store issuer lookup.
	OriginStore

	// OriginURL marks a certificate fetched from an AIA URI.
	OriginURL
)

// String renders the origin kind for logging and reporting.
func (k OriginKind) String() string {
	switch k {
	case OriginTarget:
		return "target"
	case OriginStore:
		return "store"
	case OriginURL:
		return "url"
	default:
		return "unknown"
	}
}

// Origin records how a single certificate in a candidate chain was
// discovered.
type Origin struct {
	Kind OriginKind

	// URL is populated only when Kind is OriginURL.
	URL string
}

// String renders the origin for logging, matching the Url(uri) notation
// used throughout the design.
func (o Origin) String() string {
	if o.Kind == OriginURL {
		return fmt.Sprintf("url(%s)", o.URL)
	}
	return o.Kind.String()
}
