// Copyright 2020 Adam Chalkley
//
// https://github.com/atc0005/certpath
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package aiafetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang/groupcache/lru"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/atc0005/certpath/internal/pathfind"
	"github.com/atc0005/certpath/internal/x509cert"
)

// defaultCacheEntries bounds the LRU cache used to avoid refetching a
// caIssuers URL that multiple branches of a search name.
const defaultCacheEntries = 256

// defaultTimeout is applied to a Fetcher's underlying HTTP client when
// Config.Timeout is zero.
const defaultTimeout = 10 * time.Second

// Config controls how a Fetcher retrieves and caches AIA responses.
type Config struct {
	// Timeout bounds each HTTP attempt; every retry gets its own Timeout.
	// Zero selects defaultTimeout.
	Timeout time.Duration

	// RetryMax is the maximum number of retry attempts for a failed
	// request. Zero selects retryablehttp's own default.
	RetryMax int

	// CacheEntries bounds the number of distinct URLs cached. Zero selects
	// defaultCacheEntries.
	CacheEntries int

	// Logger receives HTTP retry tracing. The zero value is zerolog's no-op
	// logger.
	Logger zerolog.Logger
}

// Fetcher resolves caIssuers URIs to certificates over HTTP. It implements
// pathfind.AIAFetcher.
type Fetcher struct {
	client *retryablehttp.Client
	cache  *lru.Cache
	group  singleflight.Group
}

// New builds a Fetcher from cfg.
func New(cfg Config) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := retryablehttp.NewClient()
	client.HTTPClient = &http.Client{Timeout: timeout}
	client.Logger = leveledLogger{log: cfg.Logger}
	if cfg.RetryMax > 0 {
		client.RetryMax = cfg.RetryMax
	}

	cacheEntries := cfg.CacheEntries
	if cacheEntries <= 0 {
		cacheEntries = defaultCacheEntries
	}

	return &Fetcher{
		client: client,
		cache:  lru.New(cacheEntries),
	}
}

// Fetch retrieves and parses the certificates published at uri, satisfying
// pathfind.AIAFetcher. Concurrent calls for the same uri are collapsed into
// a single HTTP round trip via singleflight; a successful result is cached
// by uri in an LRU holding at most Config.CacheEntries URLs.
func (f *Fetcher) Fetch(ctx context.Context, uri string) ([]pathfind.Certificate, error) {
	if cached, ok := f.cache.Get(uri); ok {
		return cached.([]pathfind.Certificate), nil
	}

	result, err, _ := f.group.Do(uri, func() (interface{}, error) {
		certs, err := f.fetch(ctx, uri)
		if err != nil {
			return nil, err
		}
		f.cache.Add(uri, certs)
		return certs, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]pathfind.Certificate), nil
}

func (f *Fetcher) fetch(ctx context.Context, uri string) ([]pathfind.Certificate, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("aiafetch: building request for %s: %w", uri, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("aiafetch: fetching %s: %w", uri, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("aiafetch: %s returned HTTP %d", uri, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("aiafetch: reading response body from %s: %w", uri, err)
	}

	return decodeCertificates(resp.Header.Get("Content-Type"), body)
}

// decodeCertificates dispatches on the advertised content type, falling
// back to trying each known encoding in turn when the type is missing or
// unrecognized; CA responders are not consistent about advertising
// application/pkix-cert versus application/pkcs7-mime.
func decodeCertificates(contentType string, body []byte) ([]pathfind.Certificate, error) {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))

	switch mediaType {
	case "application/pkcs7-mime", "application/x-pkcs7-certificates":
		return x509cert.ParsePKCS7Certificates(body)
	case "application/pkix-cert", "application/x-x509-ca-cert", "application/x-x509-ca-ra-cert":
		return x509cert.ParseDER(body)
	case "application/x-pem-file", "text/plain":
		return x509cert.ParsePEM(body)
	}

	if certs, err := x509cert.ParseDER(body); err == nil {
		return certs, nil
	}
	if certs, err := x509cert.ParsePEM(body); err == nil {
		return certs, nil
	}
	return x509cert.ParsePKCS7Certificates(body)
}
