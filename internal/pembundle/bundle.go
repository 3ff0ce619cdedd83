// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pembundle

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atc0005/certpath/internal/pathfind"
	"github.com/atc0005/certpath/internal/x509cert"
)

// ErrNoCertificateBlocks indicates that a file was read successfully but
// contained no PEM CERTIFICATE blocks.
var ErrNoCertificateBlocks = errors.New("pembundle: no PEM certificate blocks found")

// Load reads every CERTIFICATE block from the PEM bundle at filename, in
// file order. Blocks of any other type (private keys, CSRs) are skipped
// rather than treated as an error, the way a CA's published bundle file
// will often interleave comments and unrelated PEM content around the
// certificates a caller actually wants.
func Load(filename string) ([]*x509.Certificate, error) {
	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, fmt.Errorf("pembundle: reading %s: %w", filename, err)
	}

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
			return nil, fmt.Errorf("pembundle: parsing certificate %d in %s: %w", len(certs), filename, err)
		}
		certs = append(certs, cert)
	}

	if len(certs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCertificateBlocks, filename)
	}
	return certs, nil
}

// LoadAsCertificates is Load adapted to pathfind.Certificate, for seeding a
// pathfind.CertificateStore directly from a bundle file.
func LoadAsCertificates(filename string) ([]pathfind.Certificate, error) {
	certs, err := Load(filename)
	if err != nil {
		return nil, err
	}
	out := make([]pathfind.Certificate, 0, len(certs))
	for _, c := range certs {
		out = append(out, x509cert.Wrap(c))
	}
	return out, nil
}

// LoadAsPool is Load adapted to an *x509.CertPool, for building the trust
// anchor pool a pathvalidate.Validator verifies against.
func LoadAsPool(filename string) (*x509.CertPool, error) {
	certs, err := Load(filename)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	for _, c := range certs {
		pool.AddCert(c)
	}
	return pool, nil
}
