/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objsys_test

import (
	"fmt"

	"github.com/voedger/s4/pkg/classes"
	"github.com/voedger/s4/pkg/generics"
	"github.com/voedger/s4/pkg/objects"
	"github.com/voedger/s4/pkg/objsys"
)

func ExampleProvide() {
	rt, err := objsys.Provide(objsys.NewDefaultConfig())
	if err != nil {
		panic(err)
	}

	if _, err := rt.RegisterClass("Person", nil, []classes.SlotDef{
		classes.Slot("name", "character"),
		classes.Slot("age", "numeric"),
	}); err != nil {
		panic(err)
	}
	if _, err := rt.RegisterClass("Employee", []string{"Person"}, []classes.SlotDef{
		classes.Slot("boss", "Person"),
	}); err != nil {
		panic(err)
	}

	if _, err := rt.RegisterGeneric("greet", []string{"x", generics.ParamDots},
		generics.WithDefault(func(generics.ICall) (any, error) { return "hello, stranger", nil })); err != nil {
		panic(err)
	}
	if _, err := rt.RegisterMethod("greet", []string{"Person"}, func(call generics.ICall) (any, error) {
		name, err := call.Arg(0).(objects.IInstance).Slot("name")
		return fmt.Sprintf("hello, %v", name), err
	}); err != nil {
		panic(err)
	}

	hadley, err := rt.Construct("Employee", nil, objects.Slots{"name": "Hadley", "age": 37})
	if err != nil {
		panic(err)
	}

	for _, arg := range []any{hadley, 42} {
		res, err := rt.Invoke("greet", arg)
		if err != nil {
			panic(err)
		}
		fmt.Println(res)
	}

	sel, err := rt.SelectMethod("greet", "Employee")
	if err != nil {
		panic(err)
	}
	fmt.Println(sel.Method(), "at distance", sel.Distance())

	// Output:
	// hello, Hadley
	// hello, stranger
	// greet(Person) at distance 1
}
