/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package generics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/voedger/s4/pkg/classes"
)

var ErrUnknownGenericError = errors.New("unknown generic")

func ErrUnknownGeneric(name string) error {
	return classes.EnrichError(ErrUnknownGenericError, "«%s»", name)
}

var ErrInvalidSignatureError = errors.New("invalid signature")

func ErrInvalidSignature(msg string, args ...any) error {
	return classes.EnrichError(ErrInvalidSignatureError, msg, args...)
}

var ErrArityMismatchError = errors.New("arity mismatch")

func ErrArityMismatch(generic string, arity, got int) error {
	return classes.EnrichError(ErrArityMismatchError, "generic «%s» dispatches on %d argument(s), got %d", generic, arity, got)
}

var ErrNoApplicableMethodError = errors.New("no applicable method")

func ErrNoApplicableMethod(generic string, params, argClasses []string) error {
	return classes.EnrichError(ErrNoApplicableMethodError, "unable to find an inherited method for «%s» for signature %s",
		generic, formatSignature(params, argClasses))
}

var ErrNoNextMethodError = errors.New("no next method")

func ErrNoNextMethod(generic string, params, argClasses []string) error {
	return classes.EnrichError(ErrNoNextMethodError, "no more methods for «%s» for signature %s",
		generic, formatSignature(params, argClasses))
}

// Formats signature as (x = "A", y = "B")
func formatSignature(params, argClasses []string) string {
	b := strings.Builder{}
	b.WriteRune('(')
	for i, c := range argClasses {
		if i > 0 {
			b.WriteString(", ")
		}
		if i < len(params) {
			b.WriteString(params[i])
			b.WriteString(" = ")
		}
		fmt.Fprintf(&b, "%q", c)
	}
	b.WriteRune(')')
	return b.String()
}
