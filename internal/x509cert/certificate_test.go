// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package x509cert

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"
)

// genCert builds a minimal, self-contained certificate for test purposes.
// issuerKey/issuerCert may be nil, in which case the certificate is
// self-signed.
func genCert(t *testing.T, subjectCN, issuerCN string, issuerKey *ecdsa.PrivateKey, issuerCert *x509.Certificate, aiaURLs []string) (*x509.Certificate, *ecdsa.PrivateKey) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(time.Now().UnixNano()),
		Subject:               pkix.Name{CommonName: subjectCN},
		Issuer:                pkix.Name{CommonName: issuerCN},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		IssuingCertificateURL: aiaURLs,
	}

	signerKey := key
	parent := tmpl
	if issuerKey != nil {
		signerKey = issuerKey
		parent = issuerCert
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, parent, &key.PublicKey, signerKey)
	if err != nil {
		t.Fatalf("creating certificate: %v", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("parsing created certificate: %v", err)
	}
	return cert, key
}

func TestCertificate_IssuedBy(t *testing.T) {
	root, rootKey := genCert(t, "root", "root", nil, nil, nil)
	leaf, _ := genCert(t, "leaf", "root", rootKey, root, nil)
	unrelated, _ := genCert(t, "unrelated", "unrelated", nil, nil, nil)

	wrappedRoot := Wrap(root)
	wrappedLeaf := Wrap(leaf)
	wrappedUnrelated := Wrap(unrelated)

	if !wrappedLeaf.IssuedBy(wrappedRoot) {
		t.Errorf("expected leaf to be issued by root")
	}
	if wrappedLeaf.IssuedBy(wrappedUnrelated) {
		t.Errorf("expected leaf not to be issued by an unrelated certificate")
	}
	if !wrappedRoot.IssuedBy(wrappedRoot) {
		t.Errorf("expected self-signed root to be issued by itself")
	}
}

func TestCertificate_AIAURLsAndDER(t *testing.T) {
	root, rootKey := genCert(t, "root", "root", nil, nil, nil)
	leaf, _ := genCert(t, "leaf", "root", rootKey, root, []string{"http://example.test/ca.crt"})

	wrapped := Wrap(leaf)
	urls := wrapped.AIAURLs()
	if len(urls) != 1 || urls[0] != "http://example.test/ca.crt" {
		t.Errorf("AIAURLs() = %v, want [http://example.test/ca.crt]", urls)
	}

	if len(wrapped.DER()) == 0 {
		t.Errorf("DER() returned no bytes")
	}
	if string(wrapped.DER()) != string(leaf.Raw) {
		t.Errorf("DER() did not return the certificate's raw bytes")
	}
}

func TestParsePEM(t *testing.T) {
	root, rootKey := genCert(t, "root", "root", nil, nil, nil)
	leaf, _ := genCert(t, "leaf", "root", rootKey, root, nil)

	var pemData []byte
	for _, c := range []*x509.Certificate{leaf, root} {
		pemData = append(pemData, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: c.Raw})...)
	}

	certs, err := ParsePEM(pemData)
	if err != nil {
		t.Fatalf("ParsePEM: %v", err)
	}
	if len(certs) != 2 {
		t.Fatalf("ParsePEM returned %d certificates, want 2", len(certs))
	}
}

func TestParsePEM_NoBlocks(t *testing.T) {
	_, err := ParsePEM([]byte("not pem data"))
	if err == nil {
		t.Fatalf("expected an error for data with no PEM blocks")
	}
}

func TestParseDER(t *testing.T) {
	root, _ := genCert(t, "root", "root", nil, nil, nil)

	certs, err := ParseDER(root.Raw)
	if err != nil {
		t.Fatalf("ParseDER: %v", err)
	}
	if len(certs) != 1 {
		t.Fatalf("ParseDER returned %d certificates, want 1", len(certs))
	}
}
