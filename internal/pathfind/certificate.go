// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pathfind

// Certificate is the capability the search engine relies on. It treats a
// certificate as four pure queries so that the engine works independently
// of any specific ASN.1/DER library.
//
// Implementations MUST be immutable and side-effect free: IssuedBy, AIAURLs
// and DER must always return the same answer for the lifetime of the value.
type Certificate interface {
	// IssuedBy reports whether parent could be the issuer of this
	// certificate, judged purely by distinguished-name equality
	// (parent.Subject == self.Issuer, compared as canonical strings). This
	// is a name match only; no signature is verified.
	IssuedBy(parent Certificate) bool

	// AIAURLs returns the ordered list of caIssuers URIs carried by the
	// Authority Information Access extension. Non-URI access locations and
	// unparseable URIs are expected to already have been dropped by the
	// implementation. May be empty.
	AIAURLs() []string

	// DER returns the canonical DER encoding of the certificate. Two
	// certificates are the same certificate iff their DER bytes are equal;
	// the engine uses this for identity, deduplication, and cycle
	// detection.
	DER() []byte
}

// Equal reports whether two certificates are the same certificate, defined
// over DER byte equality per §3 of the design.
func Equal(a, b Certificate) bool {
	if a == nil || b == nil {
		return a == b
	}
	da, db := a.DER(), b.DER()
	if len(da) != len(db) {
		return false
	}
	for i := range da {
		if da[i] != db[i] {
			return false
		}
	}
	return true
}

// derKey returns a value suitable for use as a map key identifying a
// certificate by its DER bytes.
func derKey(c Certificate) string {
	return string(c.DER())
}

// isSelfSigned reports whether c appears to be self-signed, judged purely
// by the name-match predicate: a certificate is self-signed iff it is its
// own issuer by DN comparison. This deliberately reuses IssuedBy instead of
// exposing Subject/Issuer directly, keeping the Certificate capability to
// the four operations in §4.1.
func isSelfSigned(c Certificate) bool {
	return c.IssuedBy(c)
}
