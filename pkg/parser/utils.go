/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package parser

import (
	"reflect"
)

func extractStatement(s any) interface{} {
	v := reflect.ValueOf(s)
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if field.Kind() == reflect.Ptr && !field.IsNil() {
			return field.Interface()
		}
	}
	panic("undefined statement")
}

func idents(ii []Ident) []string {
	res := make([]string, len(ii))
	for i, id := range ii {
		res[i] = string(id)
	}
	return res
}
