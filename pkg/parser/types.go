/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

type Ident string

type SchemaAST struct {
	Statements []RootStatement `parser:"@@? (';' @@)* ';'?"`
}

func (s *SchemaAST) Iterate(callback func(stmt interface{})) {
	for i := 0; i < len(s.Statements); i++ {
		raw := &s.Statements[i]
		if raw.stmt == nil {
			raw.stmt = extractStatement(*raw)
		}
		callback(raw.stmt)
	}
}

type RootStatement struct {
	Foreign *ForeignStmt `parser:"@@"`
	Class   *ClassStmt   `parser:"| @@"`
	Generic *GenericStmt `parser:"| @@"`
	Method  *MethodStmt  `parser:"| @@"`

	stmt interface{}
}

type Statement struct {
	Pos lexer.Position
}

func (s *Statement) GetPos() *lexer.Position {
	return &s.Pos
}

type ForeignStmt struct {
	Statement
	Name      Ident   `parser:"'FOREIGN' 'CLASS' @Ident"`
	Ancestors []Ident `parser:"('EXTENDS' @Ident (',' @Ident)*)?"`
}

func (s ForeignStmt) GetName() string { return string(s.Name) }

type ClassStmt struct {
	Statement
	Virtual   bool        `parser:"@'VIRTUAL'?"`
	Name      Ident       `parser:"'CLASS' @Ident"`
	Parents   []Ident     `parser:"('EXTENDS' @Ident (',' @Ident)*)?"`
	Slots     []SlotExpr  `parser:"('(' (@@ (',' @@)*)? ')')?"`
	Sealed    bool        `parser:"@'SEALED'?"`
	Prototype []ValueExpr `parser:"('DEFAULTS' '(' @@ (',' @@)* ')')?"`
}

func (s ClassStmt) GetName() string { return string(s.Name) }

type SlotExpr struct {
	Pos  lexer.Position
	Name Ident `parser:"@Ident"`
	Type Ident `parser:"@Ident"`
}

type ValueExpr struct {
	Pos   lexer.Position
	Slot  Ident   `parser:"@Ident '='"`
	Value Literal `parser:"@@"`
}

type Literal struct {
	Str   *string  `parser:"@String"`
	Float *float64 `parser:"| @Float"`
	Int   *int     `parser:"| @Int"`
	Bool  *Bool    `parser:"| @('TRUE' | 'FALSE')"`
}

// Returns literal value as Go value: string, float64, int or bool
func (l Literal) Value() any {
	switch {
	case l.Str != nil:
		return *l.Str
	case l.Float != nil:
		return *l.Float
	case l.Int != nil:
		return *l.Int
	case l.Bool != nil:
		return bool(*l.Bool)
	}
	return nil
}

type Bool bool

func (b *Bool) Capture(values []string) error {
	*b = values[0] == "TRUE"
	return nil
}

type GenericStmt struct {
	Statement
	Name     Ident   `parser:"'GENERIC' @Ident"`
	Params   []Ident `parser:"'(' @Ident (',' @Ident)* ')'"`
	Dispatch []Ident `parser:"('DISPATCH' '(' @Ident (',' @Ident)* ')')?"`
	Default  *string `parser:"('DEFAULT' @String)?"`
}

func (s GenericStmt) GetName() string { return string(s.Name) }

type MethodStmt struct {
	Statement
	Generic   Ident   `parser:"'METHOD' @Ident"`
	Signature []Ident `parser:"'(' @Ident (',' @Ident)* ')'"`
	Returns   string  `parser:"'RETURNS' @String"`
	Next      bool    `parser:"@('THEN' 'NEXT')?"`
}

// Method is named by generic and signature, e.g. «describe(Person, ANY)»
func (s MethodStmt) GetName() string {
	return fmt.Sprintf("%s(%s)", s.Generic, strings.Join(idents(s.Signature), ", "))
}
