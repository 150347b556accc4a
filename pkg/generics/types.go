/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package generics

import (
	"fmt"
	"strings"

	"github.com/voedger/s4/pkg/objcache"
)

// Generics registry configuration
type Config struct {
	// Dispatch cache size, entries per generic. Zero disables cache.
	CacheSize int

	CacheProvider objcache.CacheProvider

	AmbiguityHandlers []AmbiguityHandler
}

func NewDefaultConfig() Config {
	return Config{
		CacheSize:     DefaultCacheSize,
		CacheProvider: objcache.Hashicorp,
	}
}

type GenericOption func(*genericOpts)

type genericOpts struct {
	signature []string
	def       Body
}

// Dispatch parameters. Should be formal parameters listed in the same order.
func WithSignature(params ...string) GenericOption {
	return func(o *genericOpts) { o.signature = params }
}

// Default method body, registered with all ANY signature.
func WithDefault(body Body) GenericOption {
	return func(o *genericOpts) { o.def = body }
}

// Converts ordinary function to method body. Function receives all call arguments.
func FuncBody(f func(args ...any) (any, error)) Body {
	return func(call ICall) (any, error) {
		return f(call.Args()...)
	}
}

// Result of method resolution.
type Selection struct {
	generic  string
	params   []string
	classes  []string
	method   IMethod
	distance int
	warning  *AmbiguousDispatchWarning
}

// Selected method
func (s *Selection) Method() IMethod { return s.method }

// Total distance of selected method
func (s *Selection) Distance() int { return s.distance }

// Classes of dispatch arguments
func (s *Selection) Classes() []string { return append([]string(nil), s.classes...) }

// Returns is several methods tie for minimum distance.
func (s *Selection) Ambiguous() bool { return s.warning != nil }

// Returns ambiguity warning. Returns nil if selection is not ambiguous.
func (s *Selection) Warning() *AmbiguousDispatchWarning { return s.warning }

func (s *Selection) String() string {
	res := fmt.Sprintf("«%s» %s → %v, distance %d", s.generic, formatSignature(s.params, s.classes), s.method, s.distance)
	if s.warning != nil {
		res += " (ambiguous)"
	}
	return res
}

// Non fatal condition: several applicable methods tie for minimum distance.
//
// Method with lexicographically smallest signature is chosen.
type AmbiguousDispatchWarning struct {
	Generic    string
	Classes    []string
	Distance   int
	Candidates [][]string
	Chosen     []string
}

func (w *AmbiguousDispatchWarning) Error() string {
	cc := make([]string, 0, len(w.Candidates))
	for _, c := range w.Candidates {
		cc = append(cc, "("+strings.Join(c, ", ")+")")
	}
	return fmt.Sprintf("ambiguous dispatch: «%s» for classes (%s) has %d methods at distance %d: %s; chosen (%s)",
		w.Generic, strings.Join(w.Classes, ", "), len(w.Candidates), w.Distance, strings.Join(cc, ", "), strings.Join(w.Chosen, ", "))
}
