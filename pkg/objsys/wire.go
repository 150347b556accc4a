//go:generate go run github.com/google/wire/cmd/wire
//go:build wireinject
// +build wireinject

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objsys

import (
	"github.com/google/wire"

	"github.com/voedger/s4/pkg/generics"
	imetrics "github.com/voedger/s4/pkg/metrics"
	"github.com/voedger/s4/pkg/objects"
)

func wireRuntime(cfg *Config) (*Runtime, error) {
	panic(wire.Build(
		wire.Struct(new(Runtime), "*"),
		provideBridge,
		provideClasses,
		provideIClasses,
		provideGenericsConfig,
		imetrics.Provide,
		generics.Provide,
		objects.Provide,
	))
}
