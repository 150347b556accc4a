/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package generics

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/voedger/s4/pkg/classes"
	"github.com/voedger/s4/pkg/objcache"
)

// # Implements:
//   - IGeneric
type generic struct {
	reg       *generics
	name      string
	params    []string
	signature []string
	positions []int

	// guarded by reg.mx
	methods map[string]*method

	// guarded by mx
	mx       sync.Mutex
	cache    objcache.ICache[string, *resolution]
	involved map[string]bool
	epoch    uint64
}

func newGeneric(reg *generics, name string, params, signature []string, positions []int) *generic {
	g := &generic{
		reg:       reg,
		name:      name,
		params:    params,
		signature: signature,
		positions: positions,
		methods:   make(map[string]*method),
		involved:  make(map[string]bool),
	}
	if reg.cfg.CacheSize > 0 {
		g.cache = objcache.NewProvider[string, *resolution](reg.cfg.CacheProvider, reg.cfg.CacheSize, nil)
	}
	return g
}

func (g *generic) Arity() int          { return len(g.signature) }
func (g *generic) Name() string        { return g.name }
func (g *generic) Params() []string    { return append([]string(nil), g.params...) }
func (g *generic) Positions() []int    { return append([]int(nil), g.positions...) }
func (g *generic) Signature() []string { return append([]string(nil), g.signature...) }
func (g *generic) String() string      { return fmt.Sprintf("generic «%s»", g.name) }

func (g *generic) Default() IMethod {
	g.reg.mx.RLock()
	defer g.reg.mx.RUnlock()

	sig := make([]string, g.Arity())
	for i := range sig {
		sig[i] = classes.ClassName_ANY
	}
	if m, ok := g.methods[signatureKey(sig)]; ok {
		return m
	}
	return nil
}

func (g *generic) Methods() []IMethod {
	g.reg.mx.RLock()
	defer g.reg.mx.RUnlock()

	return g.sortedMethods()
}

// Should be called under g.reg.mx lock
func (g *generic) sortedMethods() []IMethod {
	list := make([]*method, 0, len(g.methods))
	for _, m := range g.methods {
		list = append(list, m)
	}
	sort.Slice(list, func(i, j int) bool { return lessSignature(list[i].signature, list[j].signature) })

	res := make([]IMethod, len(list))
	for i, m := range list {
		res[i] = m
	}
	return res
}

// Returns resolution from cache and current cache epoch.
func (g *generic) cached(key string) (res *resolution, epoch uint64, ok bool) {
	g.mx.Lock()
	defer g.mx.Unlock()

	if g.cache != nil {
		res, ok = g.cache.Get(key)
	}
	return res, g.epoch, ok
}

// Stores resolution into cache, if cache was not invalidated since epoch.
func (g *generic) store(key string, res *resolution, epoch uint64) {
	g.mx.Lock()
	defer g.mx.Unlock()

	if g.cache == nil || g.epoch != epoch {
		return
	}
	for _, c := range res.involved {
		g.involved[c] = true
	}
	g.cache.Put(key, res)
}

// Purges cache. If class is specified, purges only if class was involved in some cached resolution.
// Epoch is advanced anyway, so resolutions computed before the change are not stored.
//
// Returns is cache purged.
func (g *generic) invalidate(class string) bool {
	g.mx.Lock()
	defer g.mx.Unlock()

	g.epoch++
	if class != "" && !g.involved[class] {
		return false
	}
	if g.cache != nil {
		g.cache.Purge()
	}
	g.involved = make(map[string]bool)
	return true
}

// # Implements:
//   - IMethod
type method struct {
	generic   string
	signature []string
	key       string
	body      Body
}

func newMethod(generic string, signature []string, body Body) *method {
	return &method{
		generic:   generic,
		signature: append([]string(nil), signature...),
		key:       signatureKey(signature),
		body:      body,
	}
}

func (m *method) Body() Body          { return m.body }
func (m *method) Generic() string     { return m.generic }
func (m *method) Signature() []string { return append([]string(nil), m.signature...) }
func (m *method) String() string      { return fmt.Sprintf("%s(%s)", m.generic, strings.Join(m.signature, ", ")) }

func signatureKey(signature []string) string {
	return strings.Join(signature, ",")
}

// Compares signatures position by position, bytewise.
func lessSignature(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
