/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package httpcache constructs http.Clients whose responses are cached in
// an S3-backed httpcache store, with a client-side TTL enforced regardless
// of what the origin's cache headers claim.
package httpcache

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/mikeb26/crosstab/s3cache"
)

// NewCachedHttpClient returns an http.Client that caches via the S3 bucket
// named by bucket. If the bucket cannot be reached it falls back to an
// in-process memory cache so repeat fetches within one run still hit cache.
func NewCachedHttpClient(ctx context.Context, bucket string,
	maxAge time.Duration) *http.Client {

	var transport *httpcache.Transport

	cache, err := s3cache.New(ctx, bucket)
	if err != nil {
		log.Printf("httpcache: warning failed to init S3 cache: %v; falling back to in-memory cache", err)
		transport = httpcache.NewMemoryCacheTransport()
	} else {
		transport = httpcache.NewTransport(cache)
	}

	// we have to inject our own header overrides here in order to override
	// server responses that might indicate caching shouldn't be done
	transport.Transport = &HeaderOverrideTransport{
		wrappedRT: http.DefaultTransport,
		Response: func(resp *http.Response) error {
			// Strip any cache-busting headers from origin
			resp.Header.Del("Pragma")
			resp.Header.Del("Expires")
			resp.Header.Del("Cache-Control")
			// Enforce the provided TTL
			resp.Header.Set("Cache-Control",
				fmt.Sprintf("public, max-age=%d", int(maxAge/time.Second)))
			return nil
		},
	}

	return &http.Client{Transport: transport}
}

type HeaderOverrideTransport struct {
	Request  func(req *http.Request)
	Response func(resp *http.Response) error

	// Underlying RoundTripper (e.g. default transport or another decorator)
	wrappedRT http.RoundTripper
}

// RoundTrip applies Request and Response hooks around the underlying transport.
func (t *HeaderOverrideTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone so we don't stomp on the caller's original
	req2 := req.Clone(req.Context())
	if t.Request != nil {
		t.Request(req2)
	}

	resp, err := t.wrappedRT.RoundTrip(req2)
	if err != nil {
		return nil, err
	}

	if t.Response != nil {
		if err := t.Response(resp); err != nil {
			return nil, err
		}
	}
	return resp, nil
}
