/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objects

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/voedger/s4/pkg/classes"
	"github.com/voedger/s4/pkg/foreign"
	"github.com/voedger/s4/pkg/generics"
	imetrics "github.com/voedger/s4/pkg/metrics"
)

func newTestObjects(t *testing.T) (classes.IClassesBuilder, generics.IGenerics, IObjects) {
	require := require.New(t)

	cls := classes.New()
	b := foreign.New()
	require.NoError(foreign.RegisterBaseClasses(b, cls))
	gen := generics.Provide(cls, b, imetrics.Provide(), generics.NewDefaultConfig())
	objs, err := Provide(cls, gen, b)
	require.NoError(err)

	_, err = cls.RegisterClass("Person", nil, []classes.SlotDef{
		classes.Slot("name", "character"),
		classes.Slot("age", "numeric"),
	})
	require.NoError(err)

	return cls, gen, objs
}

func Test_Construct(t *testing.T) {
	require := require.New(t)

	cls, _, objs := newTestObjects(t)

	t.Run("must be ok to construct instance", func(t *testing.T) {
		p, err := objs.Construct("Person", nil, Slots{"name": "Hadley", "age": 37})
		require.NoError(err)
		require.Equal("Person", p.ClassName())
		require.Equal([]string{"Person"}, p.ClassChain())
		require.NotEqual(uuid.Nil, p.ID())

		age, err := p.Slot("age")
		require.NoError(err)
		require.Equal(37, age)

		name, err := p.Slot("name")
		require.NoError(err)
		require.Equal("Hadley", name)

		require.Equal([]string{"name", "age"}, p.SlotNames())
		require.Equal(p.SlotNames(), objs.SlotNames(p))
		require.True(objs.IsInstance(p, "Person"))
		require.True(objs.IsInstance(p, classes.ClassName_ANY))
		require.False(objs.IsInstance(p, "numeric"))
	})

	t.Run("must be ok to fill omitted slots with defaults", func(t *testing.T) {
		p, err := objs.Construct("Person", nil, Slots{"name": "Hadley"})
		require.NoError(err)
		age, err := p.Slot("age")
		require.NoError(err)
		require.Equal(float64(0), age)
	})

	t.Run("must fail if slot value type mismatches", func(t *testing.T) {
		_, err := objs.Construct("Person", nil, Slots{"age": "thirty"})
		require.ErrorIs(err, ErrTypeMismatchError)
		require.Contains(err.Error(), "«age»")
	})

	t.Run("must fail if slot is unknown", func(t *testing.T) {
		_, err := objs.Construct("Person", nil, Slots{"sex": "male"})
		require.ErrorIs(err, classes.ErrUnknownSlotError)
	})

	t.Run("must report all slot problems", func(t *testing.T) {
		_, err := objs.Construct("Person", nil, Slots{"sex": "male", "age": "thirty"})
		require.ErrorIs(err, classes.ErrUnknownSlotError)
		require.ErrorIs(err, ErrTypeMismatchError)
	})

	t.Run("must fail if class can not have instances", func(t *testing.T) {
		_, err := objs.Construct("Unknown", nil, nil)
		require.ErrorIs(err, classes.ErrUnknownClassError)

		_, err = cls.RegisterClass("Shape", nil, nil, classes.Virtual())
		require.NoError(err)
		_, err = objs.Construct("Shape", nil, nil)
		require.ErrorIs(err, ErrVirtualClassError)

		_, err = objs.Construct("numeric", nil, nil)
		require.ErrorIs(err, ErrVirtualClassError)
	})

	t.Run("must be ok to assign instances to slots of ancestor type", func(t *testing.T) {
		_, err := cls.RegisterClass("Employee", []string{"Person"}, []classes.SlotDef{classes.Slot("boss", "Person")})
		require.NoError(err)

		boss, err := objs.Construct("Employee", nil, Slots{"name": "Boss"})
		require.NoError(err)

		e, err := objs.Construct("Employee", nil, Slots{"name": "Hadley", "boss": boss})
		require.NoError(err)
		v, err := e.Slot("boss")
		require.NoError(err)
		require.Equal(boss, v)

		_, err = objs.Construct("Employee", nil, Slots{"boss": 42})
		require.ErrorIs(err, ErrTypeMismatchError)
	})

	t.Run("default slot value of class type must be default instance", func(t *testing.T) {
		e, err := objs.Construct("Employee", nil, nil)
		require.NoError(err)
		v, err := e.Slot("boss")
		require.NoError(err)
		boss, ok := v.(IInstance)
		require.True(ok)
		require.Equal("Person", boss.ClassName())
	})

	t.Run("self referencing slot default must be nil", func(t *testing.T) {
		_, err := cls.RegisterClass("Node", nil, []classes.SlotDef{classes.Slot("next", "Node")})
		require.NoError(err)
		n, err := objs.Construct("Node", nil, nil)
		require.NoError(err)
		v, err := n.Slot("next")
		require.NoError(err)
		require.Nil(v)
	})

	t.Run("must be ok to use prototype values", func(t *testing.T) {
		_, err := cls.RegisterClass("Adult", []string{"Person"}, nil, classes.WithPrototype(map[string]any{"age": 18.0}))
		require.NoError(err)
		a, err := objs.Construct("Adult", nil, nil)
		require.NoError(err)
		v, err := a.Slot("age")
		require.NoError(err)
		require.Equal(18.0, v)
	})

	t.Run("must fail if prototype value is not assignable to slot", func(t *testing.T) {
		_, err := cls.RegisterClass("Minor", []string{"Person"}, nil, classes.WithPrototype(map[string]any{"age": "thirty"}))
		require.NoError(err)

		_, err = objs.Construct("Minor", nil, Slots{"age": 12})
		require.ErrorIs(err, ErrTypeMismatchError)
		require.Contains(err.Error(), "«age»")

		_, err = cls.RegisterClass("Family", nil, []classes.SlotDef{classes.Slot("child", "Minor")})
		require.NoError(err)
		_, err = objs.Construct("Family", nil, nil)
		require.ErrorIs(err, ErrTypeMismatchError, "default value of class slot must be checked too")
	})
}

func Test_Base(t *testing.T) {
	require := require.New(t)

	cls, _, objs := newTestObjects(t)

	_, err := cls.RegisterClass("Temperature", []string{"numeric"}, []classes.SlotDef{classes.Slot("unit", "character")})
	require.NoError(err)

	t.Run("must be ok to construct with base value", func(t *testing.T) {
		tt, err := objs.Construct("Temperature", 36.6, Slots{"unit": "C"})
		require.NoError(err)
		require.Equal(36.6, tt.Base())
	})

	t.Run("base must default to zero of foreign ancestor", func(t *testing.T) {
		tt, err := objs.Construct("Temperature", nil, nil)
		require.NoError(err)
		require.Equal(float64(0), tt.Base())
	})

	t.Run("must fail if base is not assignable", func(t *testing.T) {
		_, err := objs.Construct("Temperature", "hot", nil)
		require.ErrorIs(err, ErrTypeMismatchError)

		_, err = objs.Construct("Person", 1, nil)
		require.ErrorIs(err, ErrTypeMismatchError)
	})
}

func Test_Redefinition(t *testing.T) {
	require := require.New(t)

	cls, _, objs := newTestObjects(t)

	old, err := objs.Construct("Person", nil, Slots{"name": "Hadley"})
	require.NoError(err)

	t.Run("construct must use new definition", func(t *testing.T) {
		_, err := cls.RegisterClass("Person", nil, []classes.SlotDef{
			classes.Slot("name", "character"),
			classes.Slot("sex", "character"),
		})
		require.NoError(err)

		p, err := objs.Construct("Person", nil, Slots{"sex": "female"})
		require.NoError(err)
		require.Equal([]string{"name", "sex"}, p.SlotNames())

		_, err = objs.Construct("Person", nil, Slots{"age": 37})
		require.ErrorIs(err, classes.ErrUnknownSlotError)
	})

	t.Run("old instance must keep old definition and be reported stale", func(t *testing.T) {
		require.Equal([]string{"name", "age"}, old.SlotNames())

		err := objs.Validate(old)
		require.ErrorIs(err, ErrInvalidObjectError)
		require.ErrorIs(err, classes.ErrUnknownSlotError)
	})

	t.Run("must fail to redefine sealed class", func(t *testing.T) {
		_, err := cls.RegisterClass("Point", nil, []classes.SlotDef{classes.Slot("x", "numeric")}, classes.Sealed())
		require.NoError(err)

		_, err = cls.RegisterClass("Point", nil, []classes.SlotDef{classes.Slot("y", "numeric")})
		require.ErrorIs(err, classes.ErrSealedClassError)

		p, err := objs.Construct("Point", nil, Slots{"x": 1})
		require.NoError(err)
		require.Equal([]string{"x"}, p.SlotNames())
	})
}

func Test_ParentRedefinition(t *testing.T) {
	require := require.New(t)

	cls, _, objs := newTestObjects(t)

	_, err := cls.RegisterClass("Employee", []string{"Person"}, []classes.SlotDef{classes.Slot("boss", "Person")})
	require.NoError(err)
	old, err := objs.Construct("Employee", nil, Slots{"name": "Hadley"})
	require.NoError(err)

	_, err = cls.RegisterClass("Person", nil, []classes.SlotDef{
		classes.Slot("name", "character"),
		classes.Slot("age", "numeric"),
		classes.Slot("email", "character"),
	})
	require.NoError(err)

	t.Run("subclass instance must have slots of new parent definition", func(t *testing.T) {
		e, err := objs.Construct("Employee", nil, Slots{"email": "hadley@example.com"})
		require.NoError(err)
		require.Equal([]string{"boss", "name", "age", "email"}, e.SlotNames())
		require.True(objs.IsInstance(e, "Person"))
		require.NoError(objs.Validate(e))
	})

	t.Run("subclass instance constructed before must be reported stale", func(t *testing.T) {
		require.ErrorIs(objs.Validate(old), ErrInvalidObjectError)
	})
}

func Test_SlotAccess(t *testing.T) {
	require := require.New(t)

	_, _, objs := newTestObjects(t)

	p, err := objs.Construct("Person", nil, nil)
	require.NoError(err)

	t.Run("set slot must not check type", func(t *testing.T) {
		require.NoError(p.SetSlot("age", "thirty"))
		v, err := p.Slot("age")
		require.NoError(err)
		require.Equal("thirty", v)

		require.ErrorIs(objs.Check(p, "age"), ErrTypeMismatchError)
		require.NoError(objs.Check(p, "name"))
		require.ErrorIs(objs.Validate(p), ErrTypeMismatchError)

		require.NoError(p.SetSlot("age", 37))
		require.NoError(objs.Validate(p))
	})

	t.Run("must fail if slot is unknown", func(t *testing.T) {
		_, err := p.Slot("sex")
		require.ErrorIs(err, classes.ErrUnknownSlotError)
		require.ErrorIs(p.SetSlot("sex", "male"), classes.ErrUnknownSlotError)
		require.ErrorIs(objs.Check(p, "sex"), classes.ErrUnknownSlotError)
	})
}

func Test_Assignable(t *testing.T) {
	require := require.New(t)

	cls, _, objs := newTestObjects(t)
	_, err := cls.RegisterClass("Employee", []string{"Person"}, nil)
	require.NoError(err)

	e, err := objs.Construct("Employee", nil, nil)
	require.NoError(err)

	for _, c := range []struct {
		value any
		typ   string
		ok    bool
	}{
		{42, "numeric", true},
		{42, "integer", true},
		{4.2, "integer", false},
		{"x", "character", true},
		{"x", classes.ClassName_ANY, true},
		{nil, foreign.Class_NULL, true},
		{nil, "Person", true},
		{nil, "numeric", false},
		{e, "Person", true},
		{e, "Employee", true},
		{e, "numeric", false},
		{struct{}{}, "Person", false},
		{42, "Unknown", false},
	} {
		require.Equal(c.ok, objs.Assignable(c.value, c.typ), "%v → %s", c.value, c.typ)
	}
}

func Test_Validity(t *testing.T) {
	require := require.New(t)

	cls, _, objs := newTestObjects(t)

	calls := []string{}
	_, err := cls.RegisterClass("Adult", []string{"Person"}, nil, classes.WithValidity(func(obj any) error {
		calls = append(calls, "Adult")
		age, _ := obj.(IInstance).Slot("age")
		if n, ok := age.(int); ok && n < 18 {
			return errors.New("too young")
		}
		return nil
	}))
	require.NoError(err)
	_, err = cls.RegisterClass("Senior", []string{"Adult"}, nil, classes.WithValidity(func(obj any) error {
		calls = append(calls, "Senior")
		return nil
	}))
	require.NoError(err)

	t.Run("validity functions must run most general first", func(t *testing.T) {
		_, err := objs.Construct("Senior", nil, Slots{"age": 70})
		require.NoError(err)
		require.Equal([]string{"Adult", "Senior"}, calls)
	})

	t.Run("must fail if validity function fails", func(t *testing.T) {
		_, err := objs.Construct("Adult", nil, Slots{"age": 10})
		require.ErrorIs(err, ErrInvalidObjectError)
		require.Contains(err.Error(), "too young")
	})
}

func Test_Initializers(t *testing.T) {
	require := require.New(t)

	cls, gen, objs := newTestObjects(t)
	_, err := cls.RegisterClass("Employee", []string{"Person"}, []classes.SlotDef{classes.Slot("company", "character")})
	require.NoError(err)

	t.Run("initializers must compose through next method", func(t *testing.T) {
		_, err := gen.RegisterMethod(GenericName_Initialize, []string{"Employee"}, func(call generics.ICall) (any, error) {
			inst := call.Arg(0).(IInstance)
			if err := inst.SetSlot("company", "ACME"); err != nil {
				return nil, err
			}
			if err := objs.Check(inst, "company"); err != nil {
				return nil, err
			}
			return call.Next()
		})
		require.NoError(err)

		_, err = gen.RegisterMethod(GenericName_Initialize, []string{"Person"}, func(call generics.ICall) (any, error) {
			inst := call.Arg(0).(IInstance)
			if err := inst.SetSlot("name", "Anonymous"); err != nil {
				return nil, err
			}
			return call.Next()
		})
		require.NoError(err)

		e, err := objs.Construct("Employee", nil, Slots{"age": 40})
		require.NoError(err)

		company, _ := e.Slot("company")
		name, _ := e.Slot("name")
		age, _ := e.Slot("age")
		require.Equal("ACME", company)
		require.Equal("Anonymous", name)
		require.Equal(40, age)
	})

	t.Run("initializer error must leave no instance", func(t *testing.T) {
		_, err := gen.RegisterMethod(GenericName_Initialize, []string{"Employee"}, func(call generics.ICall) (any, error) {
			inst := call.Arg(0).(IInstance)
			if err := inst.SetSlot("company", 42); err != nil {
				return nil, err
			}
			if err := objs.Check(inst, "company"); err != nil {
				return nil, err
			}
			return call.Next()
		})
		require.NoError(err)

		e, err := objs.Construct("Employee", nil, nil)
		require.ErrorIs(err, ErrTypeMismatchError)
		require.Nil(e)
	})
}

func Test_Default(t *testing.T) {
	require := require.New(t)

	_, _, objs := newTestObjects(t)

	v, err := objs.Default("numeric")
	require.NoError(err)
	require.Equal(float64(0), v)

	v, err = objs.Default("Person")
	require.NoError(err)
	require.Equal("Person", v.(IInstance).ClassName())

	_, err = objs.Default("Unknown")
	require.ErrorIs(err, classes.ErrUnknownClassError)
}
