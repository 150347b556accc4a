/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package parser

import (
	"errors"
	"fmt"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/s4/pkg/classes"
	"github.com/voedger/s4/pkg/generics"
	"github.com/voedger/s4/pkg/objects"
	"github.com/voedger/s4/pkg/objsys"
)

type buildContext struct {
	rt   *objsys.Runtime
	errs []error
}

func newBuildContext(rt *objsys.Runtime) *buildContext {
	return &buildContext{
		rt:   rt,
		errs: make([]error, 0),
	}
}

// Applies statements in schema order. Statement errors are collected, build goes on.
func (c *buildContext) build(schema *SchemaAST) error {
	schema.Iterate(func(stmt interface{}) {
		var err error
		switch s := stmt.(type) {
		case *ForeignStmt:
			err = c.foreign(s)
		case *ClassStmt:
			err = c.class(s)
		case *GenericStmt:
			err = c.generic(s)
		case *MethodStmt:
			err = c.method(s)
		}
		if err != nil {
			c.stmtErr(stmt.(IStatement), err)
		}
	})
	return errors.Join(c.errs...)
}

func (c *buildContext) class(s *ClassStmt) error {
	slots := make([]classes.SlotDef, len(s.Slots))
	for i, slot := range s.Slots {
		slots[i] = classes.Slot(string(slot.Name), string(slot.Type))
	}

	opts := make([]classes.ClassOption, 0)
	if s.Sealed {
		opts = append(opts, classes.Sealed())
	}
	if s.Virtual {
		opts = append(opts, classes.Virtual())
	}
	if len(s.Prototype) > 0 {
		values := make(map[string]any, len(s.Prototype))
		var err error
		for _, v := range s.Prototype {
			value := v.Value.Value()
			if typ, ok := c.slotType(s, string(v.Slot)); ok && !c.rt.Objects.Assignable(value, typ) {
				err = errors.Join(err, objects.ErrSlotTypeMismatch(string(s.Name), string(v.Slot), typ, c.rt.Bridge.ClassChain(value)))
			}
			values[string(v.Slot)] = value
		}
		if err != nil {
			return err
		}
		opts = append(opts, classes.WithPrototype(values))
	}

	_, err := c.rt.RegisterClass(string(s.Name), idents(s.Parents), slots, opts...)
	return err
}

// Returns type of own or inherited slot of class being declared
func (c *buildContext) slotType(s *ClassStmt, slot string) (string, bool) {
	for _, d := range s.Slots {
		if string(d.Name) == slot {
			return string(d.Type), true
		}
	}
	for _, p := range s.Parents {
		if pc, err := c.rt.Classes.Class(string(p)); err == nil {
			if ps := pc.Slot(slot); ps != nil {
				return ps.Type(), true
			}
		}
	}
	return "", false
}

func (c *buildContext) foreign(s *ForeignStmt) error {
	return c.rt.RegisterForeign(string(s.Name), idents(s.Ancestors)...)
}

func (c *buildContext) generic(s *GenericStmt) error {
	opts := make([]generics.GenericOption, 0)
	if len(s.Dispatch) > 0 {
		opts = append(opts, generics.WithSignature(idents(s.Dispatch)...))
	}
	if s.Default != nil {
		opts = append(opts, generics.WithDefault(labelBody(*s.Default, false)))
	}
	_, err := c.rt.RegisterGeneric(string(s.Name), idents(s.Params), opts...)
	return err
}

func (c *buildContext) method(s *MethodStmt) error {
	_, err := c.rt.RegisterMethod(string(s.Generic), idents(s.Signature), labelBody(s.Returns, s.Next))
	return err
}

func (c *buildContext) stmtErr(s IStatement, err error) {
	err = errorAt(err, s.GetPos())
	if logger.IsVerbose() {
		logger.Verbose(err)
	}
	c.errs = append(c.errs, err)
}

// Returns method body which returns label.
// If next is true, body calls next method and returns label followed by next method result.
func labelBody(label string, next bool) generics.Body {
	if !next {
		return func(generics.ICall) (any, error) { return label, nil }
	}
	return func(call generics.ICall) (any, error) {
		res, err := call.Next()
		if err != nil {
			return nil, err
		}
		return fmt.Sprint(label, nextSeparator, res), nil
	}
}
