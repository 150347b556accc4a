/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package parser

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var schemaParser = participle.MustBuild[SchemaAST](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--.*`},
		{Name: "String", Pattern: `'(\\'|[^'])*'`},
		{Name: "Float", Pattern: `[-+]?\d+\.\d+`},
		{Name: "Int", Pattern: `[-+]?\d+`},
		{Name: "Ident", Pattern: `[a-zA-Z_.][a-zA-Z0-9_.]*`},
		{Name: "Punct", Pattern: `[;,()=]`},
		{Name: "Whitespace", Pattern: `[ \r\n\t]+`},
	})),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
)

func parseImpl(fileName string, content string) (*SchemaAST, error) {
	return schemaParser.ParseString(fileName, content)
}

func parseFSImpl(fs IReadFS, dir string) (*SchemaAST, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var schema *SchemaAST
	for _, entry := range entries {
		if strings.ToLower(filepath.Ext(entry.Name())) != SchemaFileExt {
			continue
		}
		fp := filepath.ToSlash(filepath.Join(dir, entry.Name()))
		bytes, err := fs.ReadFile(fp)
		if err != nil {
			return nil, err
		}
		fileSchema, err := parseImpl(entry.Name(), string(bytes))
		if err != nil {
			return nil, err
		}
		if schema == nil {
			schema = fileSchema
		} else {
			mergeSchemas(fileSchema, schema)
		}
	}
	if schema == nil {
		return nil, ErrDirContainsNoSchemaFiles
	}
	return schema, nil
}

func mergeSchemas(mergeFrom, mergeTo *SchemaAST) {
	mergeTo.Statements = append(mergeTo.Statements, mergeFrom.Statements...)
}

// Generics and methods can not be declared twice. Classes can, this is redefinition.
func analyseImpl(schema *SchemaAST) error {
	errs := make([]error, 0)
	generics := make(map[string]bool)
	methods := make(map[string]bool)

	schema.Iterate(func(stmt interface{}) {
		var index map[string]bool
		switch stmt.(type) {
		case *GenericStmt:
			index = generics
		case *MethodStmt:
			index = methods
		default:
			return
		}
		s := stmt.(INamedStatement)
		name := s.GetName()
		if index[name] {
			errs = append(errs, errorAt(ErrRedeclared(name), s.GetPos()))
			return
		}
		index[name] = true
	})
	return errors.Join(errs...)
}
