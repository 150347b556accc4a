/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objsys

import (
	"github.com/voedger/s4/pkg/classes"
	"github.com/voedger/s4/pkg/generics"
	"github.com/voedger/s4/pkg/objects"
)

func (rt *Runtime) RegisterClass(name string, parents []string, slots []classes.SlotDef, opts ...classes.ClassOption) (classes.IClass, error) {
	return rt.Classes.RegisterClass(name, parents, slots, opts...)
}

func (rt *Runtime) RegisterForeign(name string, ancestors ...string) error {
	return rt.Classes.RegisterForeign(name, ancestors...)
}

func (rt *Runtime) Construct(className string, base any, slots objects.Slots) (objects.IInstance, error) {
	return rt.Objects.Construct(className, base, slots)
}

func (rt *Runtime) RegisterGeneric(name string, params []string, opts ...generics.GenericOption) (generics.IGeneric, error) {
	return rt.Generics.RegisterGeneric(name, params, opts...)
}

func (rt *Runtime) RegisterMethod(generic string, signature []string, body generics.Body) (generics.IMethod, error) {
	return rt.Generics.RegisterMethod(generic, signature, body)
}

func (rt *Runtime) Invoke(generic string, args ...any) (any, error) {
	return rt.Generics.Invoke(generic, args...)
}

func (rt *Runtime) SelectMethod(generic string, classes ...string) (*generics.Selection, error) {
	return rt.Generics.SelectMethod(generic, classes...)
}
