// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pathfind

import "testing"

func TestCertificateStore_InsertionOrderIsTieBreaker(t *testing.T) {
	subject := "intermediate-subject"
	a := &fakeCert{id: "a", subject: subject, issuer: "issuer-a"}
	b := &fakeCert{id: "b", subject: subject, issuer: "issuer-b"}
	leaf := &fakeCert{id: "leaf", subject: "leaf-subject", issuer: subject}

	store := NewCertificateStore(FilterSelfSigned)
	store.Insert(b)
	store.Insert(a)

	got := store.Issuers(leaf)
	if len(got) != 2 {
		t.Fatalf("Issuers returned %d candidates, want 2", len(got))
	}
	if got[0].(*fakeCert).id != "b" || got[1].(*fakeCert).id != "a" {
		t.Errorf("Issuers order = [%s %s], want [b a] (insertion order)",
			got[0].(*fakeCert).id, got[1].(*fakeCert).id)
	}
}

func TestCertificateStore_DuplicateInsertIsNoOp(t *testing.T) {
	c := &fakeCert{id: "dup", subject: "s", issuer: "i"}
	store := NewCertificateStore(FilterSelfSigned)

	if !store.Insert(c) {
		t.Fatalf("first insert should report novel")
	}
	if store.Insert(c) {
		t.Errorf("second insert of an equal certificate should report not-novel")
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
}

func TestCertificateStore_FiltersSelfSigned(t *testing.T) {
	root := &fakeCert{id: "root", subject: "root-subj", issuer: "root-subj"}
	store := NewCertificateStore(FilterSelfSigned)

	if store.Insert(root) {
		t.Errorf("self-signed certificate should be rejected under FilterSelfSigned")
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}

func TestCertificateStore_KeepSelfSignedPolicy(t *testing.T) {
	root := &fakeCert{id: "root", subject: "root-subj", issuer: "root-subj"}
	store := NewCertificateStore(KeepSelfSigned)

	if !store.Insert(root) {
		t.Errorf("self-signed certificate should be accepted under KeepSelfSigned")
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
}

func TestCertificateStore_IssuersOnlyReturnsNameMatches(t *testing.T) {
	match := &fakeCert{id: "match", subject: "issuer-subj", issuer: "other"}
	noMatch := &fakeCert{id: "no-match", subject: "unrelated", issuer: "other"}
	leaf := &fakeCert{id: "leaf", subject: "leaf-subj", issuer: "issuer-subj"}

	store := NewCertificateStoreFromSeed([]Certificate{match, noMatch}, FilterSelfSigned)
	got := store.Issuers(leaf)
	if len(got) != 1 || got[0].(*fakeCert).id != "match" {
		t.Errorf("Issuers = %v, want [match]", got)
	}
}
