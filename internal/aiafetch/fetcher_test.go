// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package aiafetch

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func genTestCert(t *testing.T) *x509.Certificate {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "issuer"},
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

func TestFetcher_Fetch_DER(t *testing.T) {
	cert := genTestCert(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pkix-cert")
		_, _ = w.Write(cert.Raw)
	}))
	defer srv.Close()

	f := New(Config{})
	certs, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(certs) != 1 {
		t.Fatalf("Fetch returned %d certificates, want 1", len(certs))
	}
}

func TestFetcher_Fetch_CachesByURL(t *testing.T) {
	cert := genTestCert(t)

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/pkix-cert")
		_, _ = w.Write(cert.Raw)
	}))
	defer srv.Close()

	f := New(Config{})
	ctx := context.Background()

	if _, err := f.Fetch(ctx, srv.URL); err != nil {
		t.Fatalf("first Fetch: %v", err)
	}
	if _, err := f.Fetch(ctx, srv.URL); err != nil {
		t.Fatalf("second Fetch: %v", err)
	}

	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("server received %d requests, want 1 (second call should be served from cache)", got)
	}
}

func TestFetcher_Fetch_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := New(Config{RetryMax: 0})
	_, err := f.Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatalf("expected an error for a non-200 response")
	}
}
