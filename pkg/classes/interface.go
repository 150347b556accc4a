/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package classes

// Class definition.
//
// Definitions are immutable. Redefinition registers a new IClass under the
// same name; instances built earlier keep referencing the old one.
//
// Ref. to class.go for implementation
type IClass interface {
	// Unique class name
	Name() string

	// Declared parent class names in declaration order.
	Parents() []string

	// Own slots in declaration order.
	Slots() []ISlot

	// Own and inherited slots. Own slots go first, then inherited ones in
	// parent order, depth first. A slot redeclared by a child overrides the
	// inherited type constraint.
	AllSlots() []ISlot

	// Returns own or inherited slot by name. Returns nil if not found.
	Slot(name string) ISlot

	// Returns is class can not be redefined.
	Sealed() bool

	// Returns is class has no direct instances.
	Virtual() bool

	// Returns is class is registered by foreign bridge.
	Foreign() bool

	// Returns prototype (default) value for slot, own or inherited.
	Prototype(slot string) (value any, ok bool)

	// Own validity function. Returns nil if not assigned.
	Validity() ValidityFunc

	// Registry-wide definition counter. Each (re)definition gets a new version.
	Version() uint64
}

// Slot is a named, typed class field.
type ISlot interface {
	Name() string

	// Declared type: class name or ClassName_ANY
	Type() string

	// Class which declares slot
	Owner() string
}

// Class registry.
//
// Ref. to impl.go for implementation
type IClasses interface {
	// Returns class by name.
	//
	// # Errors:
	//   - ErrUnknownClassError if class is not registered
	Class(name string) (IClass, error)

	// Returns is class registered.
	Exists(name string) bool

	// Enumerates all classes in name order.
	Classes(func(IClass))

	// Returns all classes reachable by parents relation from specified class,
	// each with minimum distance in edges. The class itself has distance 0.
	//
	// # Errors:
	//   - ErrUnknownClassError if class is not registered
	Ancestors(name string) (Distances, error)

	// Returns distance table for value which reports ordered class chain.
	//
	// Chain entry i has distance i. Ancestors of registered entries are added
	// with distance i + own ancestor distance. Minimum distance wins.
	// ClassName_ANY entries are skipped.
	ChainDistances(chain []string) Distances

	// Returns is ancestor reachable from class by parents relation.
	// Class is subclass of itself.
	IsSubclassOf(name, ancestor string) bool

	// Returns direct and indirect descendants of class, sorted by name.
	Subclasses(name string) []string
}

// Class registry builder.
//
// Ref. to impl.go for implementation
type IClassesBuilder interface {
	IClasses

	// Registers new or replaces existing class definition.
	//
	// Registration is all or nothing: if error is returned, registry is not changed.
	//
	// # Errors:
	//   - ErrInvalidNameError if name, parent or slot name is empty, invalid or repeated
	//   - ErrReservedNameError if name is ClassName_ANY or ClassName_MISSING
	//   - ErrUnknownParentError if some parent is not registered
	//   - ErrSealedClassError if existing class is sealed
	//   - ErrCyclicInheritanceError if redefinition makes class its own ancestor
	//   - ErrUnknownClassError if some slot type is not registered
	//   - ErrUnknownSlotError if prototype refers to unknown slot
	RegisterClass(name string, parents []string, slots []SlotDef, opts ...ClassOption) (IClass, error)

	// Registers foreign class with specified ancestors.
	//
	// Foreign classes are sealed: repeated registration with the same
	// ancestors is ignored, with other ancestors fails with ErrSealedClassError.
	RegisterForeign(name string, ancestors ...string) error

	// Removes class.
	//
	// # Errors:
	//   - ErrUnknownClassError if class is not registered
	//   - ErrSealedClassError if class is sealed or foreign
	//   - ErrClassInUseError if other classes extend the class
	RemoveClass(name string) error

	// Adds listener which is called after each successful registration,
	// redefinition or removal with the changed class name.
	//
	// Listeners are called without registry lock held.
	Subscribe(func(name string))
}
