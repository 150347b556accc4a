/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package foreign

import "fmt"

// Two-dimensional grid of values stored by column.
//
// Reports class chain "matrix" followed by the chain of its data.
type Matrix struct {
	Rows, Cols int
	Data       any
}

// Creates matrix. Data should be a slice with rows×cols elements.
func NewMatrix(rows, cols int, data any) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, Data: data}
}

func (m *Matrix) String() string {
	return fmt.Sprintf("matrix %d×%d", m.Rows, m.Cols)
}

// Value with explicitly assigned class chain.
//
// # Implements:
//   - IClassReporter
type Tagged struct {
	Value any
	Chain []string
}

// Tags value with class chain.
func Tag(value any, chain ...string) Tagged {
	return Tagged{Value: value, Chain: chain}
}

func (t Tagged) ClassChain() []string {
	return append([]string(nil), t.Chain...)
}
