// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pathfind

// edgeGraph maintains the search frontier, the parent links used to
// reconstruct a candidate chain, and the visited set. It is strictly
// process-local: exactly one edgeGraph backs exactly one in-flight search,
// and it must never be shared between concurrent searches (§5).
type edgeGraph struct {
	frontier   []*edge
	visited    map[int]bool
	nextSerial int
}

func newEdgeGraph() *edgeGraph {
	return &edgeGraph{
		visited: make(map[int]bool),
	}
}

// seed pushes the initial CertificateEdge for target, assigning it serial
// 0, and returns it.
func (g *edgeGraph) seed(target Certificate) *edge {
	e := newCertificateEdge(target, Origin{Kind: OriginTarget})
	e.serial = g.nextSerial
	g.nextSerial++
	g.frontier = append(g.frontier, e)
	return e
}

// pop removes and returns the most recently pushed edge (depth-first). The
// second return value is false once the frontier is empty.
func (g *edgeGraph) pop() (*edge, bool) {
	n := len(g.frontier)
	if n == 0 {
		return nil, false
	}
	e := g.frontier[n-1]
	g.frontier = g.frontier[:n-1]
	return e, true
}

// pushChildren assigns serials to children, records parent links to
// parent, filters out any CertificateEdge child whose certificate already
// appears on the root-to-parent ancestor path (the cycle guard required
// independently of the visited set, §9), and pushes the survivors onto the
// LIFO frontier so that children[0] is the first one popped.
//
// Callers pass children in the desired exploration order; pushChildren
// performs the LIFO-compensating reversal internally rather than requiring
// every call site to do it, which is behaviorally identical to "callers
// push children in reverse" from the design.
func (g *edgeGraph) pushChildren(parent *edge, children []*edge) {
	if len(children) == 0 {
		return
	}

	ancestors := g.ancestorCertificates(parent)

	survivors := make([]*edge, 0, len(children))
	for _, c := range children {
		if c.kind == edgeKindCertificate && certInSet(ancestors, c.cert) {
			continue
		}
		c.parent = parent
		c.serial = g.nextSerial
		g.nextSerial++
		survivors = append(survivors, c)
	}

	for i := len(survivors) - 1; i >= 0; i-- {
		g.frontier = append(g.frontier, survivors[i])
	}
}

// visit marks e as explored.
func (g *edgeGraph) visit(e *edge) {
	g.visited[e.serial] = true
}

// isVisited reports whether e has already been explored.
func (g *edgeGraph) isVisited(e *edge) bool {
	return g.visited[e.serial]
}

// ancestorCertificates walks e's parent chain (inclusive of e itself)
// collecting the certificate held by every CertificateEdge ancestor.
func (g *edgeGraph) ancestorCertificates(e *edge) []Certificate {
	var out []Certificate
	for cur := e; cur != nil; cur = cur.parent {
		if cur.kind == edgeKindCertificate {
			out = append(out, cur.cert)
		}
	}
	return out
}

// reconstruct walks e's parent links collecting the certificate and origin
// of each CertificateEdge ancestor, returning them leaf-first (target at
// index 0) as required by §6.
func (g *edgeGraph) reconstruct(e *edge) ([]Certificate, []Origin) {
	rootFirst := g.ancestorCertificates(e)

	path := make([]Certificate, len(rootFirst))
	origins := make([]Origin, len(rootFirst))
	for i, c := range rootFirst {
		path[len(rootFirst)-1-i] = c
	}

	// A second walk to collect origins in the same root-first order, then
	// reverse it the same way, keeps this function readable without a
	// parallel-slice dance inside the single walk above.
	idx := len(rootFirst) - 1
	for cur := e; cur != nil; cur = cur.parent {
		if cur.kind == edgeKindCertificate {
			origins[idx] = cur.origin
			idx--
		}
	}

	return path, origins
}

func certInSet(set []Certificate, c Certificate) bool {
	for _, s := range set {
		if Equal(s, c) {
			return true
		}
	}
	return false
}
