/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package fetch retrieves crosstable reports over HTTP. Published
// crosstables are effectively immutable once an event ends, so responses
// are cached aggressively in an S3-backed httpcache.
package fetch

import (
	"context"
	"net/http"
	"time"

	"github.com/mikeb26/crosstab/internal/config"
	"github.com/mikeb26/crosstab/internal/httpcache"
)

type Client struct {
	httpClient *http.Client
}

func NewClient(ctx context.Context, cfg *config.Config) *Client {
	if cfg.CacheDisable {
		return &Client{httpClient: http.DefaultClient}
	}

	// reports are rarely (if ever) updated so a 30 day TTL is fine
	return &Client{
		httpClient: httpcache.NewCachedHttpClient(ctx, cfg.CacheBucket,
			30*24*time.Hour),
	}
}
