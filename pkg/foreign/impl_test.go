/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package foreign

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/s4/pkg/classes"
)

func Test_ClassChain(t *testing.T) {
	require := require.New(t)

	b := New()

	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{"nil", nil, []string{Class_NULL}},
		{"string", "a", []string{Class_character}},
		{"strings", []string{"a", "b"}, []string{Class_character}},
		{"bool", true, []string{Class_logical}},
		{"float", 1.5, []string{Class_numeric}},
		{"floats", []float64{1.5}, []string{Class_numeric}},
		{"int", 1, []string{Class_integer, Class_numeric}},
		{"uint8s", []uint8{1}, []string{Class_integer, Class_numeric}},
		{"int array", [2]int32{1, 2}, []string{Class_integer, Class_numeric}},
		{"list", []any{1, "a"}, []string{Class_list}},
		{"named list", map[string]any{"a": 1}, []string{Class_list}},
		{"function", func() {}, []string{Class_function}},
		{"character grid", NewMatrix(4, 3, make([]string, 12)), []string{Class_matrix, Class_character}},
		{"nil matrix", (*Matrix)(nil), []string{Class_NULL}},
		{"tagged", Tag(struct{}{}, "point", "shape"), []string{"point", "shape"}},
		{"unmapped", struct{}{}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(tt.want, b.ClassChain(tt.value))
		})
	}
}

func Test_Zero(t *testing.T) {
	require := require.New(t)

	b := New()
	b.BaseClasses(func(name string, _ []string) {
		_, ok := b.Zero(name)
		require.True(ok, "base class «%s» must have zero value", name)
	})

	v, ok := b.Zero(Class_numeric)
	require.True(ok)
	require.Equal(float64(0), v)

	v, ok = b.Zero(Class_character)
	require.True(ok)
	require.Equal("", v)

	_, ok = b.Zero("Person")
	require.False(ok)
}

func Test_RegisterBaseClasses(t *testing.T) {
	require := require.New(t)

	reg := classes.New()
	b := New()
	require.NoError(RegisterBaseClasses(b, reg))
	require.NoError(RegisterBaseClasses(b, reg), "repeated bridging must be ignored")

	c, err := reg.Class(Class_integer)
	require.NoError(err)
	require.True(c.Foreign())
	require.True(c.Sealed())
	require.True(reg.IsSubclassOf(Class_integer, Class_numeric))

	d := reg.ChainDistances(b.ClassChain(42))
	require.Equal(classes.Distances{Class_integer: 0, Class_numeric: 1}, d)
}
