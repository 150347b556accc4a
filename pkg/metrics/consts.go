/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package imetrics

const bitSize = 64

// Dispatch metrics names
const (
	DispatchTotal          = "s4_dispatch_total"
	DispatchCachedTotal    = "s4_dispatch_cached_total"
	DispatchAmbiguousTotal = "s4_dispatch_ambiguous_total"
	DispatchFailedTotal    = "s4_dispatch_failed_total"
	DispatchNextTotal      = "s4_dispatch_next_total"
	CacheInvalidatedTotal  = "s4_cache_invalidated_total"
)
