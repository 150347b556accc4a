/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package parser

import (
	"os"

	"github.com/voedger/s4/pkg/objsys"
)

// ParseString parses schema content. File name is used in error positions.
// Performs syntax analysis and checks for redeclared generics and methods
func ParseString(fileName, content string) (*SchemaAST, error) {
	schema, err := parseImpl(fileName, content)
	if err != nil {
		return nil, err
	}
	return schema, analyseImpl(schema)
}

// ParseFile reads and parses single schema file.
func ParseFile(path string) (*SchemaAST, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseString(path, string(bytes))
}

// ParseFS parses all schema files from specified FS directory in file name order and merges them into one schema.
func ParseFS(fs IReadFS, dir string) (*SchemaAST, error) {
	schema, err := parseFSImpl(fs, dir)
	if err != nil {
		return nil, err
	}
	return schema, analyseImpl(schema)
}

// Build registers schema classes, generics and methods in runtime.
//
// Statements are applied in order. Errors are joined, each one is prefixed by statement position.
func Build(schema *SchemaAST, rt *objsys.Runtime) error {
	return newBuildContext(rt).build(schema)
}
