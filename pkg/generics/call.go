/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package generics

import (
	"fmt"

	"github.com/untillpro/goutils/logger"

	imetrics "github.com/voedger/s4/pkg/metrics"
)

// # Implements:
//   - ICall
type call struct {
	reg       *generics
	generic   *generic
	args      []any
	tokens    []token
	res       *resolution
	selection *Selection
	method    *method

	// methods visited by continuation chain, including executing one
	visited map[string]bool
}

func (c *call) Arg(i int) any {
	if i < 0 || i >= len(c.args) {
		return Missing
	}
	return c.args[i]
}

func (c *call) Args() []any           { return append([]any(nil), c.args...) }
func (c *call) Classes() []string     { return tokensClasses(c.tokens) }
func (c *call) Generic() IGeneric     { return c.generic }
func (c *call) Method() IMethod       { return c.method }
func (c *call) Selection() *Selection { return c.selection }
func (c *call) String() string        { return fmt.Sprintf("call %v %v", c.method, c.Classes()) }

func (c *call) HasNext() bool {
	for _, cand := range c.res.candidates {
		if !c.visited[cand.method.key] {
			return true
		}
	}
	return false
}

func (c *call) Next() (any, error) {
	return c.NextWith(c.args...)
}

func (c *call) NextWith(args ...any) (any, error) {
	sel := c.reg.selectFrom(c.generic, c.tokens, c.res, c.visited)
	if sel == nil {
		return nil, ErrNoNextMethod(c.generic.name, c.generic.signature, c.Classes())
	}
	c.reg.metrics.IncreaseGeneric(imetrics.DispatchNextTotal, c.generic.name, 1)
	if logger.IsVerbose() {
		logger.Verbose(c, "calls next", sel.method)
	}
	return c.reg.call(c.generic, args, c.tokens, c.res, sel, c.visited)
}

// Calls selected method body. Visited set is copied, so sibling continuations do not interfere.
func (r *generics) call(g *generic, args []any, tokens []token, res *resolution, sel *Selection, visited map[string]bool) (any, error) {
	m := sel.method.(*method)
	c := &call{
		reg:       r,
		generic:   g,
		args:      args,
		tokens:    tokens,
		res:       res,
		selection: sel,
		method:    m,
		visited:   make(map[string]bool, len(visited)+1),
	}
	for k := range visited {
		c.visited[k] = true
	}
	c.visited[m.key] = true

	return m.body(c)
}
