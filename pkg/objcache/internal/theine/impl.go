/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package theine

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.c.Get(key)
}

func (c *Cache[K, V]) Len() int {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.c.Len()
}

// Theine has no clear operation, so purge replaces the underlying cache.
func (c *Cache[K, V]) Purge() {
	c.mx.Lock()
	old := c.c
	c.c = c.build()
	c.mx.Unlock()
	old.Close()
}

func (c *Cache[K, V]) Put(key K, value V) {
	c.mx.RLock()
	defer c.mx.RUnlock()
	_ = c.c.Set(key, value, 1)
}
