// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pathfind

// edgeKind is a closed tagged variant over the three shapes a search
// frontier node can take.
type edgeKind int

const (
	edgeKindCertificate edgeKind = iota
	edgeKindURL
	edgeKindEnd
)

// edge is a node in the search DAG. Exactly one of the per-kind fields is
// meaningful, selected by kind; this mirrors the CertificateEdge / UrlEdge
// / EndEdge tagged variant from the design in a single allocation-friendly
// struct rather than three separate interface implementations.
type edge struct {
	kind   edgeKind
	serial int
	parent *edge

	// populated when kind == edgeKindCertificate
	cert   Certificate
	origin Origin

	// populated when kind == edgeKindURL
	url    string
	holder Certificate
}

func newCertificateEdge(cert Certificate, origin Origin) *edge {
	return &edge{kind: edgeKindCertificate, cert: cert, origin: origin}
}

func newURLEdge(url string, holder Certificate) *edge {
	return &edge{kind: edgeKindURL, url: url, holder: holder}
}

func newEndEdge() *edge {
	return &edge{kind: edgeKindEnd}
}
