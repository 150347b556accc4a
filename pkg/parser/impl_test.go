/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package parser

import (
	"embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/s4/pkg/classes"
	"github.com/voedger/s4/pkg/generics"
	"github.com/voedger/s4/pkg/objects"
	"github.com/voedger/s4/pkg/objsys"
)

//go:embed testdata/*.s4
var fsTestdata embed.FS

func newRuntime(t *testing.T) *objsys.Runtime {
	rt, err := objsys.Provide(objsys.NewDefaultConfig())
	require.NoError(t, err)
	return rt
}

func Test_BasicUsage(t *testing.T) {
	require := require.New(t)

	schema, err := ParseFS(fsTestdata, "testdata")
	require.NoError(err)
	require.Len(schema.Statements, 15)

	rt := newRuntime(t)
	require.NoError(Build(schema, rt))

	t.Run("classes must be registered", func(t *testing.T) {
		require.True(rt.Classes.IsSubclassOf("ordered", "numeric"))

		shape, err := rt.Classes.Class("Shape")
		require.NoError(err)
		require.True(shape.Virtual())

		e, err := rt.Classes.Class("Employee")
		require.NoError(err)
		require.True(e.Sealed())
		require.Equal([]string{"Person"}, e.Parents())
		require.Equal("Person", e.Slot("boss").Type())
		require.Equal("numeric", e.Slot("age").Type())

		a, err := rt.Construct("Adult", nil, nil)
		require.NoError(err)
		age, _ := a.Slot("age")
		name, _ := a.Slot("name")
		require.Equal(18, age)
		require.Equal("Anonymous", name)
	})

	t.Run("generics must dispatch to schema methods", func(t *testing.T) {
		g, err := rt.Generics.Generic("describe")
		require.NoError(err)
		require.Equal([]string{"x", "y", generics.ParamDots}, g.Params())
		require.Equal([]string{"x", "y"}, g.Signature())

		e, err := rt.Construct("Employee", nil, objects.Slots{"name": "Alice"})
		require.NoError(err)

		res, err := rt.Invoke("describe", e, 1)
		require.NoError(err)
		require.Equal("employee > person > default", res)

		res, err = rt.Invoke("describe", 42)
		require.NoError(err)
		require.Equal("number", res)

		res, err = rt.Invoke("describe", "text", 1)
		require.NoError(err)
		require.Equal("default", res)
	})

	t.Run("ambiguous dispatch must be deterministic", func(t *testing.T) {
		sel, err := rt.SelectMethod("move", "Duck")
		require.NoError(err)
		require.True(sel.Ambiguous())
		require.Equal([]string{"Swimmer"}, sel.Method().Signature())
	})
}

func Test_ParseString(t *testing.T) {
	require := require.New(t)

	t.Run("must be ok to parse all statements", func(t *testing.T) {
		schema, err := ParseString("example.s4", `
			FOREIGN CLASS vector;
			FOREIGN CLASS grid EXTENDS vector, list;
			VIRTUAL CLASS Shape;
			CLASS Point EXTENDS Shape (x numeric, y numeric) SEALED DEFAULTS (x = -1.5, y = 2);
			CLASS Flag DEFAULTS (on = TRUE);
			GENERIC area(shape, ...);
			METHOD area(Point) RETURNS 'zero'
		`)
		require.NoError(err)
		require.Len(schema.Statements, 7)

		grid := schema.Statements[1].Foreign
		require.NotNil(grid)
		require.Equal(Ident("grid"), grid.Name)
		require.Equal([]Ident{"vector", "list"}, grid.Ancestors)

		point := schema.Statements[3].Class
		require.NotNil(point)
		require.False(point.Virtual)
		require.True(point.Sealed)
		require.Len(point.Slots, 2)
		require.Equal(-1.5, point.Prototype[0].Value.Value())
		require.Equal(2, point.Prototype[1].Value.Value())
		require.Equal(5, point.Pos.Line)

		require.Equal(true, schema.Statements[4].Class.Prototype[0].Value.Value())

		area := schema.Statements[5].Generic
		require.Equal([]Ident{"shape", "..."}, area.Params)
		require.Nil(area.Default)

		m := schema.Statements[6].Method
		require.Equal("area(Point)", m.GetName())
		require.Equal("zero", m.Returns)
		require.False(m.Next)
	})

	t.Run("must fail on syntax error with position", func(t *testing.T) {
		_, err := ParseString("bad.s4", "CLASS Person (name);")
		require.Error(err)
		require.Contains(err.Error(), "bad.s4:1:")

		_, err = ParseString("bad.s4", "METHOD f(A) RETURNS;")
		require.Error(err)
	})

	t.Run("must fail if generic or method is redeclared", func(t *testing.T) {
		_, err := ParseString("dup.s4", `
			GENERIC f(x);
			GENERIC f(x);
			METHOD f(ANY) RETURNS 'a';
			METHOD f(ANY) RETURNS 'b';
			CLASS A;
			CLASS A;
		`)
		require.ErrorIs(err, ErrRedeclaredError)
		require.Contains(err.Error(), "dup.s4:3:")
		require.Contains(err.Error(), "f(ANY) redeclared")
		require.NotContains(err.Error(), "A redeclared")
	})
}

func Test_ParseFile(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "schema.s4")
	require.NoError(os.WriteFile(path, []byte("CLASS A; CLASS B EXTENDS A;"), 0600))

	schema, err := ParseFile(path)
	require.NoError(err)
	require.Len(schema.Statements, 2)

	_, err = ParseFile(filepath.Join(dir, "unknown.s4"))
	require.ErrorIs(err, os.ErrNotExist)

	_, err = ParseFS(fsTestdata, ".")
	require.ErrorIs(err, ErrDirContainsNoSchemaFiles)
}

func Test_BuildErrors(t *testing.T) {
	require := require.New(t)

	schema, err := ParseString("errors.s4", `
		CLASS A EXTENDS Unknown;
		CLASS S SEALED;
		CLASS S;
		GENERIC f(x);
		METHOD f(A) RETURNS 'a';
		METHOD g(ANY) RETURNS 'g';
		METHOD f(ANY, ANY) RETURNS 'f';
		CLASS B;
	`)
	require.NoError(err)

	rt := newRuntime(t)
	err = Build(schema, rt)
	require.ErrorIs(err, classes.ErrUnknownParentError)
	require.ErrorIs(err, classes.ErrSealedClassError)
	require.ErrorIs(err, classes.ErrUnknownClassError)
	require.ErrorIs(err, generics.ErrUnknownGenericError)
	require.ErrorIs(err, generics.ErrArityMismatchError)
	require.Contains(err.Error(), "errors.s4:2:")
	require.Contains(err.Error(), "errors.s4:4:")

	t.Run("must fail if default value is not assignable to slot", func(t *testing.T) {
		schema, err := ParseString("defaults.s4", `
			CLASS Person (name character, age numeric);
			CLASS Adult EXTENDS Person DEFAULTS (age = 'thirty');
			CLASS Child EXTENDS Person DEFAULTS (age = 7, name = 'Kid');
		`)
		require.NoError(err)

		rt := newRuntime(t)
		err = Build(schema, rt)
		require.ErrorIs(err, objects.ErrTypeMismatchError)
		require.Contains(err.Error(), "defaults.s4:3:")
		require.NotContains(err.Error(), "defaults.s4:4:")
		require.False(rt.Classes.Exists("Adult"))

		_, err = rt.Construct("Child", nil, nil)
		require.NoError(err)
	})

	require.True(rt.Classes.Exists("B"), "build must go on after errors")
	require.False(rt.Classes.Exists("A"))
}
