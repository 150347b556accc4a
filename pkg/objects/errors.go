/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objects

import (
	"errors"

	"github.com/voedger/s4/pkg/classes"
)

var ErrTypeMismatchError = errors.New("type mismatch")

func ErrTypeMismatch(msg string, args ...any) error {
	return classes.EnrichError(ErrTypeMismatchError, msg, args...)
}

func ErrSlotTypeMismatch(class, slot, typ string, got []string) error {
	return ErrTypeMismatch("class «%s» slot «%s» expects «%s», got «%s»", class, slot, typ, chainName(got))
}

var ErrVirtualClassError = errors.New("class has no instances")

func ErrVirtualClass(name string) error {
	return classes.EnrichError(ErrVirtualClassError, "«%s»", name)
}

var ErrInvalidObjectError = errors.New("invalid object")

func ErrInvalidObject(msg string, args ...any) error {
	return classes.EnrichError(ErrInvalidObjectError, msg, args...)
}

func chainName(chain []string) string {
	if len(chain) == 0 {
		return classes.ClassName_ANY
	}
	return chain[0]
}
