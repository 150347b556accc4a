/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objsys

import (
	"github.com/voedger/s4/pkg/classes"
	"github.com/voedger/s4/pkg/foreign"
	"github.com/voedger/s4/pkg/generics"
	imetrics "github.com/voedger/s4/pkg/metrics"
	"github.com/voedger/s4/pkg/objcache"
	"github.com/voedger/s4/pkg/objects"
)

type Config struct {
	// Dispatch cache entries per generic. Zero disables dispatch cache
	DispatchCacheSize int

	DispatchCacheProvider objcache.CacheProvider

	// Foreign values bridge. Default bridge is used if nil
	Bridge foreign.IBridge

	AmbiguityHandlers []generics.AmbiguityHandler

	// Register bridge base classes on runtime creation
	RegisterBaseClasses bool
}

// Isolated object system runtime: registries share nothing with other runtimes.
type Runtime struct {
	Classes  classes.IClassesBuilder
	Generics generics.IGenerics
	Objects  objects.IObjects
	Metrics  imetrics.IMetrics
	Bridge   foreign.IBridge
}
