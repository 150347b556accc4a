/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package classes

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrUnknownClassError = errors.New("unknown class")

func ErrUnknownClass(name string) error {
	return EnrichError(ErrUnknownClassError, "«%s»", name)
}

var ErrUnknownParentError = errors.New("unknown parent class")

func ErrUnknownParent(class, parent string) error {
	return EnrichError(ErrUnknownParentError, "class «%s» extends unknown «%s»", class, parent)
}

var ErrSealedClassError = errors.New("sealed class")

func ErrSealedClass(name string) error {
	return EnrichError(ErrSealedClassError, "class «%s» can not be redefined or removed", name)
}

var ErrCyclicInheritanceError = errors.New("cyclic inheritance")

func ErrCyclicInheritance(class, parent string) error {
	return EnrichError(ErrCyclicInheritanceError, "class «%s» is an ancestor of its parent «%s»", class, parent)
}

var ErrReservedNameError = errors.New("reserved name")

func ErrReservedName(name string) error {
	return EnrichError(ErrReservedNameError, "«%s» is a pseudo class", name)
}

var ErrInvalidNameError = errors.New("invalid name")

func ErrInvalidName(msg string, args ...any) error {
	return EnrichError(ErrInvalidNameError, msg, args...)
}

var ErrUnknownSlotError = errors.New("unknown slot")

func ErrUnknownSlot(class, slot string) error {
	return EnrichError(ErrUnknownSlotError, "class «%s» has no slot «%s»", class, slot)
}

var ErrClassInUseError = errors.New("class in use")

func ErrClassInUse(class string, children []string) error {
	return EnrichError(ErrClassInUseError, "class «%s» is extended by %v", class, children)
}
