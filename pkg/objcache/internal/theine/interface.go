/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package theine

import (
	"sync"

	theine "github.com/Yiling-J/theine-go"
)

// Cache implemented by theine-go hybrid cache
type Cache[K comparable, V any] struct {
	mx        sync.RWMutex
	c         *theine.Cache[K, V]
	size      int
	onEvicted func(K, V)
}

func New[K comparable, V any](size int, onEvicted func(K, V)) *Cache[K, V] {
	c := &Cache[K, V]{size: size, onEvicted: onEvicted}
	c.c = c.build()
	return c
}

func (c *Cache[K, V]) build() *theine.Cache[K, V] {
	bld := theine.NewBuilder[K, V](int64(c.size))
	if c.onEvicted != nil {
		bld.RemovalListener(func(key K, value V, reason theine.RemoveReason) {
			if reason == theine.EVICTED {
				c.onEvicted(key, value)
			}
		})
	}
	cache, err := bld.Build()
	if err != nil {
		panic(err)
	}
	return cache
}
