/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objsys

import (
	"github.com/voedger/s4/pkg/foreign"
	"github.com/voedger/s4/pkg/generics"
	"github.com/voedger/s4/pkg/objcache"
)

func NewDefaultConfig() Config {
	return Config{
		DispatchCacheSize:     generics.DefaultCacheSize,
		DispatchCacheProvider: objcache.Hashicorp,
		Bridge:                foreign.New(),
		RegisterBaseClasses:   true,
	}
}
