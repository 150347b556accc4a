/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package generics

import (
	"errors"
	"sort"
	"sync"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"

	"github.com/voedger/s4/pkg/classes"
	"github.com/voedger/s4/pkg/foreign"
	imetrics "github.com/voedger/s4/pkg/metrics"
)

// # Implements:
//   - IGenerics
type generics struct {
	mx       sync.RWMutex
	cfg      Config
	classes  classes.IClasses
	bridge   foreign.IBridge
	metrics  imetrics.IMetrics
	generics map[string]*generic
	handlers []AmbiguityHandler
}

func newGenerics(cls classes.IClassesBuilder, bridge foreign.IBridge, metrics imetrics.IMetrics, cfg Config) *generics {
	r := &generics{
		cfg:      cfg,
		classes:  cls,
		bridge:   bridge,
		metrics:  metrics,
		generics: make(map[string]*generic),
		handlers: append([]AmbiguityHandler(nil), cfg.AmbiguityHandlers...),
	}
	cls.Subscribe(r.classChanged)
	return r
}

func (r *generics) ExistsMethod(generic string, signature ...string) bool {
	r.mx.RLock()
	defer r.mx.RUnlock()

	if g, ok := r.generics[generic]; ok {
		_, exists := g.methods[signatureKey(signature)]
		return exists
	}
	return false
}

func (r *generics) Generic(name string) (IGeneric, error) {
	g, err := r.generic(name)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *generics) Generics(cb func(IGeneric)) {
	r.mx.RLock()
	list := make([]*generic, 0, len(r.generics))
	for _, g := range r.generics {
		list = append(list, g)
	}
	r.mx.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].name < list[j].name })
	for _, g := range list {
		cb(g)
	}
}

func (r *generics) HasMethod(generic string, classes ...string) bool {
	g, err := r.generic(generic)
	if err != nil {
		return false
	}
	tokens, err := r.classTokens(g, classes)
	if err != nil {
		return false
	}
	return len(r.resolution(g, tokens).candidates) > 0
}

func (r *generics) Invoke(generic string, args ...any) (any, error) {
	g, err := r.generic(generic)
	if err != nil {
		return nil, err
	}
	r.metrics.IncreaseGeneric(imetrics.DispatchTotal, g.name, 1)

	tokens := r.argTokens(g, args)
	res := r.resolution(g, tokens)
	sel := r.selectFrom(g, tokens, res, nil)
	if sel == nil {
		r.metrics.IncreaseGeneric(imetrics.DispatchFailedTotal, g.name, 1)
		return nil, ErrNoApplicableMethod(g.name, g.signature, tokensClasses(tokens))
	}

	if logger.IsVerbose() {
		logger.Verbose("invoke", sel)
	}
	return r.call(g, args, tokens, res, sel, nil)
}

func (r *generics) Methods(generic string) ([]IMethod, error) {
	g, err := r.generic(generic)
	if err != nil {
		return nil, err
	}
	return g.Methods(), nil
}

func (r *generics) MethodsFor(class string) []IMethod {
	res := make([]IMethod, 0)
	r.Generics(func(gi IGeneric) {
		for _, m := range gi.Methods() {
			if slices.Contains(m.Signature(), class) {
				res = append(res, m)
			}
		}
	})
	return res
}

func (r *generics) OnAmbiguity(h AmbiguityHandler) {
	r.mx.Lock()
	defer r.mx.Unlock()

	r.handlers = append(r.handlers, h)
}

func (r *generics) RegisterGeneric(name string, params []string, opts ...GenericOption) (IGeneric, error) {
	o := genericOpts{}
	for _, opt := range opts {
		opt(&o)
	}

	signature, positions, err := validateParams(name, params, o.signature)
	if err != nil {
		return nil, err
	}

	g := newGeneric(r, name, slices.Clone(params), signature, positions)

	if o.def != nil {
		sig := make([]string, len(signature))
		for i := range sig {
			sig[i] = classes.ClassName_ANY
		}
		m := newMethod(name, sig, o.def)
		g.methods[m.key] = m
	}

	r.mx.Lock()
	old, replaced := r.generics[name]
	r.generics[name] = g
	r.mx.Unlock()

	if replaced {
		old.invalidate("")
		logger.Info(g, "redefined,", len(old.methods), "method(s) discarded")
	} else {
		logger.Verbose(g, "registered, signature:", signature)
	}
	return g, nil
}

func (r *generics) RegisterMethod(generic string, signature []string, body Body) (IMethod, error) {
	if body == nil {
		return nil, ErrInvalidSignature("method body is nil")
	}

	r.mx.Lock()
	g, ok := r.generics[generic]
	if !ok {
		r.mx.Unlock()
		return nil, ErrUnknownGeneric(generic)
	}
	if err := r.validateSelectors(g, signature); err != nil {
		r.mx.Unlock()
		return nil, err
	}
	m := newMethod(generic, signature, body)
	_, replaced := g.methods[m.key]
	g.methods[m.key] = m
	r.mx.Unlock()

	g.invalidate("")

	if logger.IsVerbose() {
		if replaced {
			logger.Verbose("method replaced:", m)
		} else {
			logger.Verbose("method registered:", m)
		}
	}
	return m, nil
}

func (r *generics) RemoveMethod(generic string, signature []string) (bool, error) {
	r.mx.Lock()
	g, ok := r.generics[generic]
	if !ok {
		r.mx.Unlock()
		return false, ErrUnknownGeneric(generic)
	}
	key := signatureKey(signature)
	m, exists := g.methods[key]
	delete(g.methods, key)
	r.mx.Unlock()

	if exists {
		g.invalidate("")
		logger.Verbose("method removed:", m)
	}
	return exists, nil
}

func (r *generics) SelectMethod(generic string, classes ...string) (*Selection, error) {
	g, err := r.generic(generic)
	if err != nil {
		return nil, err
	}
	tokens, err := r.classTokens(g, classes)
	if err != nil {
		return nil, err
	}
	sel := r.selectFrom(g, tokens, r.resolution(g, tokens), nil)
	if sel == nil {
		return nil, ErrNoApplicableMethod(g.name, g.signature, classes)
	}
	return sel, nil
}

// Returns runtime class tokens for dispatch arguments.
//
// Argument which is out of args range or is Missing is MISSING. Class
// reporters report their own chain, other values are mapped by bridge.
func (r *generics) argTokens(g *generic, args []any) []token {
	tokens := make([]token, len(g.positions))
	for i, pos := range g.positions {
		if pos >= len(args) || args[pos] == Missing {
			tokens[i] = missingToken()
			continue
		}
		if rep, ok := args[pos].(foreign.IClassReporter); ok {
			tokens[i] = chainToken(rep.ClassChain()...)
			continue
		}
		tokens[i] = chainToken(r.bridge.ClassChain(args[pos])...)
	}
	return tokens
}

func (r *generics) classChanged(class string) {
	r.mx.RLock()
	list := make([]*generic, 0, len(r.generics))
	for _, g := range r.generics {
		list = append(list, g)
	}
	r.mx.RUnlock()

	for _, g := range list {
		if g.invalidate(class) {
			r.metrics.IncreaseGeneric(imetrics.CacheInvalidatedTotal, g.name, 1)
			logger.Verbose(g, "dispatch cache invalidated by", class)
		}
	}
}

// Returns tokens for explicitly specified class names.
func (r *generics) classTokens(g *generic, cc []string) ([]token, error) {
	if len(cc) != g.Arity() {
		return nil, ErrArityMismatch(g.name, g.Arity(), len(cc))
	}
	tokens := make([]token, len(cc))
	for i, c := range cc {
		switch {
		case c == classes.ClassName_MISSING:
			tokens[i] = missingToken()
		case r.classes.Exists(c):
			tokens[i] = chainToken(c)
		default:
			return nil, classes.ErrUnknownClass(c)
		}
	}
	return tokens, nil
}

func (r *generics) generic(name string) (*generic, error) {
	r.mx.RLock()
	defer r.mx.RUnlock()

	if g, ok := r.generics[name]; ok {
		return g, nil
	}
	return nil, ErrUnknownGeneric(name)
}

// Should be called under lock
func (r *generics) validateSelectors(g *generic, signature []string) (err error) {
	if len(signature) != g.Arity() {
		return ErrArityMismatch(g.name, g.Arity(), len(signature))
	}
	for _, s := range signature {
		switch s {
		case classes.ClassName_ANY, classes.ClassName_MISSING:
		default:
			if !r.classes.Exists(s) {
				err = errors.Join(err, classes.ErrUnknownClass(s))
			}
		}
	}
	return err
}

// Returns dispatch signature and formal param index of each signature param.
func validateParams(name string, params, signature []string) ([]string, []int, error) {
	if name == "" {
		return nil, nil, ErrInvalidSignature("empty generic name")
	}
	if len(params) == 0 {
		return nil, nil, ErrInvalidSignature("generic «%s» has no params", name)
	}

	index := make(map[string]int, len(params))
	dots := len(params)
	for i, p := range params {
		if p == "" {
			return nil, nil, ErrInvalidSignature("generic «%s» has empty param name", name)
		}
		if _, ok := index[p]; ok {
			return nil, nil, ErrInvalidSignature("generic «%s» repeats param «%s»", name, p)
		}
		index[p] = i
		if p == ParamDots {
			dots = i
		}
	}

	if len(signature) == 0 {
		signature = slices.Clone(params[:dots])
	}
	if len(signature) == 0 {
		return nil, nil, ErrInvalidSignature("generic «%s» has no dispatch params", name)
	}

	positions := make([]int, len(signature))
	for i, s := range signature {
		pos, ok := index[s]
		switch {
		case !ok:
			return nil, nil, ErrInvalidSignature("generic «%s» signature param «%s» is not a formal param", name, s)
		case pos >= dots:
			return nil, nil, ErrInvalidSignature("generic «%s» signature param «%s» can not follow «%s»", name, s, ParamDots)
		case i > 0 && pos <= positions[i-1]:
			return nil, nil, ErrInvalidSignature("generic «%s» signature params should follow formal params order", name)
		}
		positions[i] = pos
	}

	return slices.Clone(signature), positions, nil
}
