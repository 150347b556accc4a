/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objcache

const (
	// LRU cache by github.com/hashicorp/golang-lru/v2
	Hashicorp CacheProvider = iota

	// W-TinyLFU cache by github.com/Yiling-J/theine-go
	Theine

	CacheProvider_Count
)

var cacheProviderNames = [CacheProvider_Count]string{
	Hashicorp: "hashicorp",
	Theine:    "theine",
}

func (p CacheProvider) String() string {
	if p < CacheProvider_Count {
		return cacheProviderNames[p]
	}
	return "unknown"
}

// Returns provider by name. Returns false if name is unknown.
func ParseCacheProvider(name string) (CacheProvider, bool) {
	for p, n := range cacheProviderNames {
		if n == name {
			return CacheProvider(p), true
		}
	}
	return Hashicorp, false
}
