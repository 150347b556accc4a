/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package classes

// Pseudo class names. They are never registered as graph nodes.
const (
	// Matches any runtime class, always least specific.
	ClassName_ANY = "ANY"

	// Matches an omitted argument.
	ClassName_MISSING = "MISSING"
)

// Distance added to the farthest real ancestor to place ANY in a distance table.
const anyDistanceGap = 1

// Maximum class name length
const MaxClassNameLen = 255
