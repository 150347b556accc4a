/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package foreign

// Capability of values which know their own class chain.
//
// Instances and foreign value wrappers implement it.
type IClassReporter interface {
	// Returns ordered class chain, most specific class first.
	ClassChain() []string
}

// Bridge between values not constructed by the object system and classes.
//
// Ref. to impl.go for implementation
type IBridge interface {
	// Returns ordered class chain of value, most specific class first.
	// Returns empty chain if value has no mapped class, such value matches ANY only.
	ClassChain(value any) []string

	// Returns empty value for foreign class.
	// Returns false if class is not known by bridge.
	Zero(class string) (any, bool)

	// Enumerates foreign base classes with their ancestors in registration order.
	BaseClasses(func(name string, ancestors []string))
}
