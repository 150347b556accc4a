/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package foreign

import "github.com/voedger/s4/pkg/classes"

// Returns default bridge for Go values.
func New() IBridge {
	return bridge{}
}

// Registers foreign base classes of bridge in class registry.
//
// This is the one-time bridging call; repeated calls are ignored by registry.
func RegisterBaseClasses(b IBridge, reg classes.IClassesBuilder) (err error) {
	b.BaseClasses(func(name string, ancestors []string) {
		if err == nil {
			err = reg.RegisterForeign(name, ancestors...)
		}
	})
	return err
}
