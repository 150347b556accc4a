/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objcache

// Objects cache.
//
// @ConcurrentAccess
type ICache[K comparable, V any] interface {
	// Gets value by key. Returns true and value if key exists, false and zero value overwise
	Get(K) (value V, ok bool)

	// Puts value with key
	Put(K, V)

	// Removes all values. Depending on provider, eviction callback may be called for purged values.
	Purge()

	// Returns count of cached values.
	Len() int
}

// Cache implementation provider.
//
// Ref. to consts.go for values
type CacheProvider uint8
