// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package x509cert

import (
	"crypto/x509"
	"net/url"

	"github.com/atc0005/certpath/internal/pathfind"
)

// Certificate wraps a parsed *x509.Certificate to satisfy
// pathfind.Certificate. The zero value is not usable; build one with Wrap.
type Certificate struct {
	cert *x509.Certificate
}

// Wrap adapts an already-parsed certificate. cert.Raw must be populated, as
// is always true for certificates returned by x509.ParseCertificate(s).
func Wrap(cert *x509.Certificate) Certificate {
	return Certificate{cert: cert}
}

// Unwrap returns the underlying *x509.Certificate, for callers (such as
// internal/pathvalidate and cmd/certpath's pretty-printer) that need the
// full parsed structure rather than the narrow pathfind view of it.
func (c Certificate) Unwrap() *x509.Certificate {
	return c.cert
}

// IssuedBy reports whether parent's Subject matches this certificate's
// Issuer, compared the same way internal/certs historically did:
// canonical pkix.Name string comparison, not byte-for-byte RDN sequence
// comparison and no signature check.
func (c Certificate) IssuedBy(parent pathfind.Certificate) bool {
	other, ok := parent.(Certificate)
	if !ok {
		return false
	}
	return c.cert.Issuer.String() == other.cert.Subject.String()
}

// AIAURLs returns the certificate's caIssuers URIs, as populated by the
// standard library from the Authority Information Access extension,
// dropping anything that is not an absolute http(s) URI a
// pathfind.AIAFetcher could act on.
func (c Certificate) AIAURLs() []string {
	var out []string
	for _, raw := range c.cert.IssuingCertificateURL {
		u, err := url.Parse(raw)
		if err != nil || !u.IsAbs() {
			continue
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			continue
		}
		out = append(out, raw)
	}
	return out
}

// DER returns the certificate's raw DER encoding.
func (c Certificate) DER() []byte {
	return c.cert.Raw
}
