/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package classes

// Creates and returns new empty class registry.
func New() IClassesBuilder {
	return newClasses()
}
