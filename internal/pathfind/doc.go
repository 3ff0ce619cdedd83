// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package pathfind implements X.509 certificate path discovery: given a
// target (end-entity) certificate, it searches a store of known
// certificates, augmented on demand by an AIA fetcher, for a chain that a
// pluggable validator will accept.
//
// The package intentionally knows nothing about DER parsing, HTTP
// transport, or cryptographic verification. Those concerns are expressed as
// the Certificate, AIAFetcher and PathValidator interfaces and are supplied
// by the caller; see internal/x509cert, internal/aiafetch and
// internal/pathvalidate for concrete implementations built on top of this
// package.
package pathfind
