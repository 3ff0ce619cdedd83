// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package pathfind

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// AIAConfig controls whether and how the engine follows Authority
// Information Access URIs.
type AIAConfig struct {
	// Enabled turns AIA-driven discovery on or off. When false the engine
	// never invokes Fetcher and treats a certificate with no store issuers
	// as a dead end to be offered to the validator as-is.
	Enabled bool

	// Fetcher resolves a caIssuers URI to certificates. Required when
	// Enabled is true.
	Fetcher AIAFetcher

	// FetchTimeout bounds a single AIA fetch. Zero means the fetcher's own
	// default applies. Because a pending fetch is not interrupted by the
	// overall TimeBudget check, the effective wall-clock ceiling for a
	// search is TimeBudget + FetchTimeout; callers should size FetchTimeout
	// accordingly.
	FetchTimeout time.Duration
}

// Config bundles everything a single Find call needs.
type Config struct {
	// Store holds known certificates and answers issuer lookups. A nil Store
	// is replaced by an empty FilterSelfSigned store.
	Store *CertificateStore

	// Validator renders the final verdict on a candidate chain. Required.
	Validator PathValidator

	// AIA controls AIA-driven discovery.
	AIA AIAConfig

	// TimeBudget bounds the search's wall-clock duration. Zero means
	// unlimited.
	TimeBudget time.Duration

	// Logger receives debug-level tracing of edge pops, expansions and
	// validator verdicts. The zero value is zerolog's no-op logger.
	Logger zerolog.Logger
}

// Find searches for a chain from target to any certificate the configured
// validator accepts, following the depth-first, store-before-AIA algorithm
// of the design's §4.4.
func Find(ctx context.Context, target Certificate, cfg Config) (*Report, error) {
	if cfg.Validator == nil {
		return nil, ErrNoValidator
	}
	if cfg.AIA.Enabled && cfg.AIA.Fetcher == nil {
		return nil, ErrNoFetcher
	}
	if cfg.Store == nil {
		cfg.Store = NewCertificateStore(FilterSelfSigned)
	}

	start := time.Now()
	graph := newEdgeGraph()
	graph.seed(target)

	var failures []Failure

	for {
		if cfg.TimeBudget > 0 && time.Since(start) > cfg.TimeBudget {
			cfg.Logger.Debug().Dur("elapsed", time.Since(start)).Msg("pathfind: time budget exceeded")
			return nil, ErrBudgetExceeded
		}

		e, ok := graph.pop()
		if !ok {
			break
		}
		cfg.Logger.Debug().Int("serial", e.serial).Msg("pathfind: popped edge")

		if e.kind == edgeKindEnd {
			chain, origins := graph.reconstruct(e)
			verdict, err := cfg.Validator.Validate(ctx, chain)
			if err != nil {
				return nil, &ValidatorError{Err: err}
			}

			if verdict.Found {
				cfg.Logger.Debug().Int("chain_length", len(chain)).Msg("pathfind: accepted chain")
				return &Report{
					Found:    &FoundPath{Path: chain, OriginTrace: origins},
					Duration: time.Since(start),
					Failures: failures,
				}, nil
			}

			cfg.Logger.Debug().
				Int("chain_length", len(chain)).
				Str("reason", verdict.Reason).
				Msg("pathfind: candidate chain rejected")
			failures = append(failures, Failure{
				Chain:       chain,
				OriginTrace: origins,
				Reason:      verdict.Reason,
			})
			continue
		}

		if graph.isVisited(e) {
			continue
		}
		graph.visit(e)

		children := expand(ctx, cfg, e)
		graph.pushChildren(e, children)
	}

	return &Report{
		Found:    nil,
		Duration: time.Since(start),
		Failures: failures,
	}, nil
}

// expand computes the children of e per the expansion rules of §4.4,
// already ordered as the desired exploration order (store candidates
// before AIA candidates for a CertificateEdge; a trailing EndEdge whenever
// a branch would otherwise dead-end).
func expand(ctx context.Context, cfg Config, e *edge) []*edge {
	switch e.kind {
	case edgeKindCertificate:
		return expandCertificateEdge(ctx, cfg, e)
	case edgeKindURL:
		return expandURLEdge(ctx, cfg, e)
	default:
		return nil
	}
}

func expandCertificateEdge(ctx context.Context, cfg Config, e *edge) []*edge {
	cert := e.cert
	storeCandidates := cfg.Store.Issuers(cert)

	children := make([]*edge, 0, len(storeCandidates)+len(cert.AIAURLs())+1)
	for _, issuer := range storeCandidates {
		children = append(children, newCertificateEdge(issuer, Origin{Kind: OriginStore}))
	}

	switch {
	case len(storeCandidates) > 0:
		// Store expansion takes priority; AIA is only tried if it dead-ends,
		// so the URL edges are queued to be explored after the store edges.
		if cfg.AIA.Enabled {
			for _, u := range cert.AIAURLs() {
				children = append(children, newURLEdge(u, cert))
			}
		}

	case cfg.AIA.Enabled && len(cert.AIAURLs()) > 0:
		for _, u := range cert.AIAURLs() {
			children = append(children, newURLEdge(u, cert))
		}

	default:
		children = append(children, newEndEdge())
	}

	cfg.Logger.Debug().
		Int("store_candidates", len(storeCandidates)).
		Int("children", len(children)).
		Msg("pathfind: expanded certificate edge")

	return children
}

func expandURLEdge(ctx context.Context, cfg Config, e *edge) []*edge {
	fetchCtx := ctx
	if cfg.AIA.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, cfg.AIA.FetchTimeout)
		defer cancel()
	}

	fetched, err := cfg.AIA.Fetcher.Fetch(fetchCtx, e.url)
	if err != nil {
		// Fetch errors are swallowed per §4.5/§7: treated as no results.
		cfg.Logger.Debug().Str("url", e.url).Err(err).Msg("pathfind: AIA fetch failed, treating as empty")
		fetched = nil
	}

	var children []*edge
	for _, candidate := range fetched {
		cfg.Store.Insert(candidate)

		if isSelfSigned(candidate) {
			continue
		}
		if e.holder.IssuedBy(candidate) {
			children = append(children, newCertificateEdge(candidate, Origin{Kind: OriginURL, URL: e.url}))
		}
	}

	if len(children) == 0 {
		children = append(children, newEndEdge())
	}

	cfg.Logger.Debug().
		Str("url", e.url).
		Int("fetched", len(fetched)).
		Int("children", len(children)).
		Msg("pathfind: expanded AIA edge")

	return children
}
