// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

// Package x509cert adapts *x509.Certificate to the pathfind.Certificate
// capability, the way internal/certs used to wrap the same type for the
// validation-focused tooling this module grew out of. It has no Subject or
// Issuer accessors of its own; name-match semantics go through IssuedBy,
// and Unwrap returns the full parsed certificate for callers that need it.
package x509cert
