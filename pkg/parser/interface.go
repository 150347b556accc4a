/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package parser

import (
	fs "io/fs"

	"github.com/alecthomas/participle/v2/lexer"
)

type IReadFS interface {
	fs.ReadDirFS
	fs.ReadFileFS
}

type IStatement interface {
	GetPos() *lexer.Position
}

// Statement which declares named entity
type INamedStatement interface {
	IStatement
	GetName() string
}
