/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package generics

import (
	"github.com/voedger/s4/pkg/classes"
	"github.com/voedger/s4/pkg/foreign"
	imetrics "github.com/voedger/s4/pkg/metrics"
)

// Creates and returns new empty generics registry.
//
// Registry subscribes to class changes to invalidate dispatch caches.
func Provide(cls classes.IClassesBuilder, bridge foreign.IBridge, metrics imetrics.IMetrics, cfg Config) IGenerics {
	return newGenerics(cls, bridge, metrics, cfg)
}
