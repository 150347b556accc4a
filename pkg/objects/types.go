/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objects

// Slot values: slot name → value
type Slots map[string]any

// Second argument of «initialize» generic
type InitArgs struct {
	Slots Slots
}
