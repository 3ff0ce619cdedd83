// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pembundle

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func genBundleCert(t *testing.T, cn string) *x509.Certificate {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(time.Now().UnixNano()),
		Subject:      pkix.Name{CommonName: cn},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("creating certificate: %v", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("parsing certificate: %v", err)
	}
	return cert
}

func writeBundle(t *testing.T, certs ...*x509.Certificate) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "bundle.pem")

	var out []byte
	out = append(out, []byte("# comment line a CA bundle might include\n")...)
	for _, c := range certs {
		out = append(out, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: c.Raw})...)
	}

	if err := os.WriteFile(path, out, 0o600); err != nil {
		t.Fatalf("writing bundle: %v", err)
	}
	return path
}

func TestLoad_ReturnsCertificatesInFileOrder(t *testing.T) {
	a := genBundleCert(t, "a")
	b := genBundleCert(t, "b")
	path := writeBundle(t, a, b)

	certs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(certs) != 2 {
		t.Fatalf("Load returned %d certificates, want 2", len(certs))
	}
	if certs[0].Subject.CommonName != "a" || certs[1].Subject.CommonName != "b" {
		t.Errorf("Load returned certificates out of order: %s, %s", certs[0].Subject.CommonName, certs[1].Subject.CommonName)
	}
}

func TestLoad_NoCertificateBlocks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pem")
	if err := os.WriteFile(path, []byte("not a certificate"), 0o600); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected an error for a file with no certificate blocks")
	}
}

func TestLoadAsPool(t *testing.T) {
	root := genBundleCert(t, "root")
	path := writeBundle(t, root)

	pool, err := LoadAsPool(path)
	if err != nil {
		t.Fatalf("LoadAsPool: %v", err)
	}
	if pool.Equal(x509.NewCertPool()) {
		t.Errorf("expected the loaded pool to differ from an empty pool")
	}
}

func TestLoadAsCertificates(t *testing.T) {
	a := genBundleCert(t, "a")
	path := writeBundle(t, a)

	certs, err := LoadAsCertificates(path)
	if err != nil {
		t.Fatalf("LoadAsCertificates: %v", err)
	}
	if len(certs) != 1 {
		t.Fatalf("LoadAsCertificates returned %d certificates, want 1", len(certs))
	}
}
