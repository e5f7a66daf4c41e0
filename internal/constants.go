/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent          = "crosstab/0.2.0 (+https://github.com/mikeb26/crosstab)"
	EnvPrefix          = "CROSSTAB"
	DefaultCacheBucket = "bopmatic-crosstab-prod-webcache"
)
