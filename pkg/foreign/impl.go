/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package foreign

import (
	"reflect"
)

// # Implements:
//   - IBridge
type bridge struct{}

func (bridge) BaseClasses(cb func(name string, ancestors []string)) {
	for _, c := range baseClasses {
		cb(c.name, append([]string(nil), c.ancestors...))
	}
}

func (b bridge) ClassChain(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{Class_NULL}
	case IClassReporter:
		return v.ClassChain()
	case *Matrix:
		if v == nil {
			return []string{Class_NULL}
		}
		return append([]string{Class_matrix}, b.ClassChain(v.Data)...)
	case string, []string:
		return []string{Class_character}
	case bool, []bool:
		return []string{Class_logical}
	case float32, float64, []float32, []float64:
		return []string{Class_numeric}
	case []any, map[string]any:
		return []string{Class_list}
	}

	t := reflect.TypeOf(value)
	if t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return []string{Class_integer, Class_numeric}
	case reflect.Func:
		return []string{Class_function}
	}
	return []string{}
}

func (bridge) Zero(class string) (any, bool) {
	switch class {
	case Class_NULL, Class_function:
		return nil, true
	case Class_numeric:
		return float64(0), true
	case Class_integer:
		return int(0), true
	case Class_character:
		return "", true
	case Class_logical:
		return false, true
	case Class_list:
		return []any{}, true
	case Class_matrix:
		return NewMatrix(0, 0, []any{}), true
	}
	return nil, false
}
