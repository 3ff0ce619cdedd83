// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pathvalidate

import (
	"context"
	"crypto/x509"
	"fmt"
	"time"

	"github.com/atc0005/certpath/internal/pathfind"
	"github.com/atc0005/certpath/internal/x509cert"
)

// Validator renders a Found/NotFound verdict on a candidate chain using the
// standard library's signature and validity-period verification, after
// first screening out chain-shape problems that would otherwise surface
// only as an opaque x509.Verify error.
type Validator struct {
	// Roots are the trust anchors a candidate chain's terminal certificate
	// must verify against. Required; an empty pool rejects every chain.
	Roots *x509.CertPool

	// KeyUsages restricts which extended key usages are accepted. A nil
	// slice defaults to x509.ExtKeyUsageAny, matching the permissive
	// default used when validating a chain in isolation from the
	// application that will ultimately use it.
	KeyUsages []x509.ExtKeyUsage

	// Now returns the time verification is evaluated at. A nil value
	// defaults to time.Now; tests substitute a fixed clock.
	Now func() time.Time
}

// New builds a Validator trusting roots, with the permissive ExtKeyUsageAny
// default.
func New(roots *x509.CertPool) *Validator {
	return &Validator{Roots: roots}
}

// Validate implements pathfind.PathValidator.
func (v *Validator) Validate(ctx context.Context, chain []pathfind.Certificate) (pathfind.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return pathfind.Verdict{}, err
	}

	certs, err := unwrapChain(chain)
	if err != nil {
		return pathfind.Verdict{}, err
	}
	if len(certs) == 0 {
		return pathfind.Verdict{Found: false, Reason: "empty chain"}, nil
	}

	now := time.Now
	if v.Now != nil {
		now = v.Now
	}
	evalTime := now()

	for i := 1; i < len(certs); i++ {
		c := certs[i]
		switch {
		case c.NotAfter.Before(evalTime):
			return pathfind.Verdict{Found: false, Reason: fmt.Sprintf("intermediate expired: %s", subjectName(c))}, nil
		case c.NotBefore.After(evalTime):
			return pathfind.Verdict{Found: false, Reason: fmt.Sprintf("intermediate not yet valid: %s", subjectName(c))}, nil
		}
	}

	for i := 0; i < len(certs)-1; i++ {
		if certs[i].Issuer.String() != certs[i+1].Subject.String() {
			return pathfind.Verdict{Found: false, Reason: fmt.Sprintf("chain misordered at position %d", i)}, nil
		}
	}

	intermediates := x509.NewCertPool()
	for _, c := range certs[1:] {
		intermediates.AddCert(c)
	}

	keyUsages := v.KeyUsages
	if keyUsages == nil {
		keyUsages = []x509.ExtKeyUsage{x509.ExtKeyUsageAny}
	}

	_, err = certs[0].Verify(x509.VerifyOptions{
		Roots:         v.Roots,
		Intermediates: intermediates,
		CurrentTime:   evalTime,
		KeyUsages:     keyUsages,
	})
	if err != nil {
		return pathfind.Verdict{Found: false, Reason: fmt.Sprintf("chain verification failed: %v", err)}, nil
	}

	return pathfind.Verdict{Found: true}, nil
}

// unwrapChain recovers the *x509.Certificate backing each pathfind.Certificate
// in chain. It fails closed: a chain containing a Certificate implementation
// this package doesn't know how to unwrap can't be verified at all.
func unwrapChain(chain []pathfind.Certificate) ([]*x509.Certificate, error) {
	certs := make([]*x509.Certificate, 0, len(chain))
	for i, c := range chain {
		wrapped, ok := c.(x509cert.Certificate)
		if !ok {
			return nil, fmt.Errorf("pathvalidate: chain element %d is not an x509cert.Certificate", i)
		}
		certs = append(certs, wrapped.Unwrap())
	}
	return certs, nil
}

func subjectName(c *x509.Certificate) string {
	if c.Subject.CommonName != "" {
		return c.Subject.CommonName
	}
	return c.Subject.String()
}
