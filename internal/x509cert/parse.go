// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package x509cert

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"go.mozilla.org/pkcs7"

	"github.com/atc0005/certpath/internal/pathfind"
)

// ErrNoCertificatesFound indicates that a caIssuers response decoded
// without error but contained no certificates at all.
var ErrNoCertificatesFound = errors.New("x509cert: no certificates found in response body")

// ParseDER parses one or more certificates from a raw ASN.1 DER byte
// sequence, as produced by an AIA responder advertising
// application/pkix-cert or application/x-x509-ca-cert.
func ParseDER(data []byte) ([]pathfind.Certificate, error) {
	certs, err := x509.ParseCertificates(data)
	if err != nil {
		return nil, fmt.Errorf("x509cert: parsing DER certificates: %w", err)
	}
	return wrapAll(certs), nil
}

// ParsePKCS7Certificates extracts the certificates carried by a
// degenerate (certs-only) PKCS#7 SignedData structure, the content type an
// AIA responder advertising application/pkcs7-mime typically returns. Only
// the Certificates field is consulted; a degenerate SignedData message
// carries no signature to check.
func ParsePKCS7Certificates(data []byte) ([]pathfind.Certificate, error) {
	parsed, err := pkcs7.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("x509cert: parsing PKCS#7 certificates: %w", err)
	}
	if len(parsed.Certificates) == 0 {
		return nil, ErrNoCertificatesFound
	}
	return wrapAll(parsed.Certificates), nil
}

// ParsePEM parses one or more PEM-armored CERTIFICATE blocks, skipping
// blocks of any other type rather than treating them as an error.
func ParsePEM(data []byte) ([]pathfind.Certificate, error) {
	var certs []*x509.Certificate

	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("x509cert: parsing PEM certificate block: %w", err)
		}
		certs = append(certs, cert)
	}

	if len(certs) == 0 {
		return nil, ErrNoCertificatesFound
	}
	return wrapAll(certs), nil
}

func wrapAll(certs []*x509.Certificate) []pathfind.Certificate {
	out := make([]pathfind.Certificate, 0, len(certs))
	for _, c := range certs {
		out = append(out, Wrap(c))
	}
	return out
}
