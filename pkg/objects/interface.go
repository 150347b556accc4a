/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objects

import (
	"github.com/google/uuid"

	"github.com/voedger/s4/pkg/classes"
	"github.com/voedger/s4/pkg/foreign"
)

// Object constructed against class definition.
//
// Instance reports its class to dispatcher as a single element class chain.
//
// Ref. to instance.go for implementation
type IInstance interface {
	foreign.IClassReporter

	// Object identity
	ID() uuid.UUID

	// Class definition used at construction. Class redefinition does not
	// affect existing instances.
	Class() classes.IClass

	ClassName() string

	// Positional base value. Not nil for classes with foreign ancestor only.
	Base() any

	// Returns slot value.
	//
	// # Errors:
	//   - classes.ErrUnknownSlotError if slot is not known by instance class
	Slot(name string) (any, error)

	// Sets slot value. Value type is not checked, use IObjects.Check or IObjects.Validate.
	//
	// # Errors:
	//   - classes.ErrUnknownSlotError if slot is not known by instance class
	SetSlot(name string, value any) error

	// Own and inherited slot names, as classes.IClass.AllSlots() returns.
	SlotNames() []string
}

// Instance model.
//
// Ref. to impl.go for implementation
type IObjects interface {
	// Constructs instance of class.
	//
	// Prototype with default slot values is created, then «initialize» generic is
	// invoked with prototype and InitArgs. Default initializer assigns slots and
	// runs class validity functions.
	//
	// # Errors:
	//   - classes.ErrUnknownClassError
	//   - ErrVirtualClassError if class is virtual or foreign
	//   - classes.ErrUnknownSlotError if slot is not known by class
	//   - ErrTypeMismatchError if slot value or base is not assignable
	//   - ErrInvalidObjectError if validity function fails
	//   - errors returned by custom initializers
	Construct(className string, base any, slots Slots) (IInstance, error)

	// Returns default value of class: foreign class zero value or default
	// constructed instance.
	Default(className string) (any, error)

	// Returns is value assignable to slot of specified type. Shallow.
	Assignable(value any, typ string) bool

	// Checks types of specified slots against instance class.
	Check(inst IInstance, slots ...string) error

	// Checks instance against current definition of its class, then runs
	// class validity functions, most general first.
	Validate(inst IInstance) error

	// Returns is instance class is specified class or its descendant.
	IsInstance(inst IInstance, className string) bool

	SlotNames(inst IInstance) []string
}
