/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objsys

import (
	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"

	"github.com/voedger/s4/pkg/classes"
	"github.com/voedger/s4/pkg/foreign"
	"github.com/voedger/s4/pkg/generics"
)

// Returns new isolated runtime.
func Provide(cfg Config) (*Runtime, error) {
	rt, err := wireRuntime(&cfg)
	if err != nil {
		return nil, err
	}
	logger.Verbose("runtime provided, dispatch cache:", cfg.DispatchCacheProvider, cfg.DispatchCacheSize)
	return rt, nil
}

func provideBridge(cfg *Config) foreign.IBridge {
	if cfg.Bridge == nil {
		return foreign.New()
	}
	return cfg.Bridge
}

func provideClasses(cfg *Config, bridge foreign.IBridge) (classes.IClassesBuilder, error) {
	cls := classes.New()
	if cfg.RegisterBaseClasses {
		if err := foreign.RegisterBaseClasses(bridge, cls); err != nil {
			return nil, err
		}
	}
	return cls, nil
}

// wire can not use IClassesBuilder where IClasses is required
func provideIClasses(cls classes.IClassesBuilder) classes.IClasses {
	return cls
}

func provideGenericsConfig(cfg *Config) generics.Config {
	return generics.Config{
		CacheSize:         cfg.DispatchCacheSize,
		CacheProvider:     cfg.DispatchCacheProvider,
		AmbiguityHandlers: slices.Clone(cfg.AmbiguityHandlers),
	}
}
