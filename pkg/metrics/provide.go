/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package imetrics

// Creates and returns new in-memory metrics.
func Provide() IMetrics {
	return newMetrics()
}
