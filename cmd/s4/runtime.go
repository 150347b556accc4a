/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/s4/pkg/generics"
	"github.com/voedger/s4/pkg/objcache"
	"github.com/voedger/s4/pkg/objsys"
	"github.com/voedger/s4/pkg/parser"
)

var errSchemaNotSpecified = errors.New("schema is not specified, use --schema flag")

func initGlobalFlags(cmd *cobra.Command, params *s4Params) {
	cmd.SilenceErrors = true
	cmd.Flags().StringVarP(&params.Schema, "schema", "s", "", "Schema file or directory with *.s4 files")
	cmd.Flags().StringVar(&params.Cache, "cache", defaultCacheProvider, "Dispatch cache provider: hashicorp or theine")
	cmd.Flags().IntVar(&params.CacheSize, "cache-size", generics.DefaultCacheSize, "Dispatch cache entries per generic, 0 disables cache")
}

// Parses schema and builds runtime
func loadRuntime(params s4Params) (*objsys.Runtime, *parser.SchemaAST, error) {
	if params.Schema == "" {
		return nil, nil, errSchemaNotSpecified
	}

	cfg := objsys.NewDefaultConfig()
	cfg.DispatchCacheSize = params.CacheSize
	provider, ok := objcache.ParseCacheProvider(params.Cache)
	if !ok {
		return nil, nil, fmt.Errorf("unknown cache provider «%s»", params.Cache)
	}
	cfg.DispatchCacheProvider = provider
	cfg.AmbiguityHandlers = append(cfg.AmbiguityHandlers, func(w *generics.AmbiguousDispatchWarning) {
		logger.Verbose("ambiguity handled:", w.Chosen)
	})

	schema, err := parseSchema(params.Schema)
	if err != nil {
		return nil, nil, err
	}

	rt, err := objsys.Provide(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := parser.Build(schema, rt); err != nil {
		return nil, nil, err
	}
	return rt, schema, nil
}

func parseSchema(path string) (*parser.SchemaAST, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		logger.Verbose("parsing schema dir", path)
		fsys, ok := os.DirFS(path).(parser.IReadFS)
		if !ok {
			return nil, fmt.Errorf("can not read schema dir «%s»", path)
		}
		return parser.ParseFS(fsys, ".")
	}
	logger.Verbose("parsing schema file", path)
	return parser.ParseFile(path)
}
