/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package foreign

// Foreign base class names
const (
	Class_NULL      = "NULL"
	Class_numeric   = "numeric"
	Class_integer   = "integer"
	Class_character = "character"
	Class_logical   = "logical"
	Class_list      = "list"
	Class_function  = "function"
	Class_matrix    = "matrix"
)

// Base class table. Ancestors must precede descendants.
var baseClasses = []struct {
	name      string
	ancestors []string
}{
	{Class_NULL, nil},
	{Class_numeric, nil},
	{Class_integer, []string{Class_numeric}},
	{Class_character, nil},
	{Class_logical, nil},
	{Class_list, nil},
	{Class_function, nil},
	{Class_matrix, nil},
}
