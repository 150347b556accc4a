/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package parser

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

var ErrDirContainsNoSchemaFiles = errors.New("directory contains no schema files")

var ErrRedeclaredError = errors.New("redeclared")

func ErrRedeclared(name string) error {
	return fmt.Errorf("%s %w", name, ErrRedeclaredError)
}

func errorAt(err error, pos *lexer.Position) error {
	return fmt.Errorf("%s: %w", pos.String(), err)
}
