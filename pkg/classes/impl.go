/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package classes

import (
	"errors"
	"regexp"
	"sort"
	"sync"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// # Implements:
//   - IClasses
//   - IClassesBuilder
type classes struct {
	mx        sync.RWMutex
	classes   map[string]*class
	version   uint64
	listeners []func(string)
}

func newClasses() *classes {
	return &classes{
		classes: make(map[string]*class),
	}
}

func (r *classes) Ancestors(name string) (Distances, error) {
	r.mx.RLock()
	defer r.mx.RUnlock()

	if _, ok := r.classes[name]; !ok {
		return nil, ErrUnknownClass(name)
	}
	return r.ancestors(name), nil
}

func (r *classes) ChainDistances(chain []string) Distances {
	r.mx.RLock()
	defer r.mx.RUnlock()

	d := make(Distances)
	for i, n := range chain {
		if n == ClassName_ANY {
			continue
		}
		if _, ok := r.classes[n]; !ok {
			d.merge(n, i)
			continue
		}
		for a, ad := range r.ancestors(n) {
			d.merge(a, i+ad)
		}
	}
	return d
}

func (r *classes) Class(name string) (IClass, error) {
	r.mx.RLock()
	defer r.mx.RUnlock()

	if c, ok := r.classes[name]; ok {
		return c, nil
	}
	return nil, ErrUnknownClass(name)
}

func (r *classes) Classes(cb func(IClass)) {
	r.mx.RLock()
	list := make([]*class, 0, len(r.classes))
	for _, c := range r.classes {
		list = append(list, c)
	}
	r.mx.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].name < list[j].name })
	for _, c := range list {
		cb(c)
	}
}

func (r *classes) Exists(name string) bool {
	r.mx.RLock()
	defer r.mx.RUnlock()

	_, ok := r.classes[name]
	return ok
}

func (r *classes) IsSubclassOf(name, ancestor string) bool {
	r.mx.RLock()
	defer r.mx.RUnlock()

	if _, ok := r.classes[name]; !ok {
		return false
	}
	return r.ancestors(name).Has(ancestor)
}

func (r *classes) RegisterClass(name string, parents []string, slots []SlotDef, opts ...ClassOption) (IClass, error) {
	c := newClass(name, parents)
	for _, opt := range opts {
		opt(c)
	}
	for _, s := range slots {
		c.slots = append(c.slots, &slot{name: s.Name, typ: s.Type, owner: name})
	}

	r.mx.Lock()
	err := r.validate(c)
	if err == nil {
		r.put(c)
	}
	r.mx.Unlock()

	if err != nil {
		return nil, err
	}

	if logger.IsVerbose() {
		logger.Verbose("class registered:", c, "parents:", c.parents, "version:", c.version)
	}
	r.notify(name)
	return c, nil
}

func (r *classes) RegisterForeign(name string, ancestors ...string) error {
	r.mx.Lock()
	if exists, ok := r.classes[name]; ok {
		r.mx.Unlock()
		switch {
		case !exists.foreign:
			return ErrInvalidName("«%s» is already registered as non-foreign class", name)
		case slices.Equal(exists.parents, ancestors):
			return nil
		}
		return ErrSealedClass(name)
	}

	c := newClass(name, ancestors)
	c.foreign, c.sealed = true, true
	err := r.validate(c)
	if err == nil {
		r.put(c)
	}
	r.mx.Unlock()

	if err != nil {
		return err
	}

	if logger.IsVerbose() {
		logger.Verbose("foreign class registered:", c, "ancestors:", ancestors)
	}
	r.notify(name)
	return nil
}

func (r *classes) RemoveClass(name string) error {
	r.mx.Lock()
	c, ok := r.classes[name]
	if !ok {
		r.mx.Unlock()
		return ErrUnknownClass(name)
	}
	if c.sealed {
		r.mx.Unlock()
		return ErrSealedClass(name)
	}
	children := make([]string, 0)
	for _, other := range r.classes {
		if slices.Contains(other.parents, name) {
			children = append(children, other.name)
		}
	}
	if len(children) > 0 {
		r.mx.Unlock()
		slices.Sort(children)
		return ErrClassInUse(name, children)
	}
	delete(r.classes, name)
	r.mx.Unlock()

	logger.Verbose("class removed:", c)
	r.notify(name)
	return nil
}

func (r *classes) Subclasses(name string) []string {
	r.mx.RLock()
	defer r.mx.RUnlock()

	res := make([]string, 0)
	for n := range r.classes {
		if n != name && r.ancestors(n).Has(name) {
			res = append(res, n)
		}
	}
	slices.Sort(res)
	return res
}

func (r *classes) Subscribe(cb func(name string)) {
	r.mx.Lock()
	defer r.mx.Unlock()

	r.listeners = append(r.listeners, cb)
}

// Breadth-first search over parents, so the first visit gives minimum distance.
//
// Should be called under lock.
func (r *classes) ancestors(name string) Distances {
	d := Distances{name: 0}
	queue := []string{name}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		c, ok := r.classes[n]
		if !ok {
			continue
		}
		for _, p := range c.parents {
			if !d.Has(p) {
				d[p] = d[n] + 1
				queue = append(queue, p)
			}
		}
	}
	return d
}

func (r *classes) notify(name string) {
	r.mx.RLock()
	listeners := slices.Clone(r.listeners)
	r.mx.RUnlock()

	for _, l := range listeners {
		l(name)
	}
}

// Stores validated class, then rebuilds its descendants, so they inherit
// slots and prototypes of the stored definition.
//
// Should be called under write lock.
func (r *classes) put(c *class) {
	r.store(c)

	pending := make(map[string]bool)
	for n := range r.classes {
		if n != c.name && r.ancestors(n).Has(c.name) {
			pending[n] = true
		}
	}

	// parents are rebuilt before children
	for len(pending) > 0 {
		names := maps.Keys(pending)
		slices.Sort(names)
		for _, n := range names {
			d := r.classes[n]
			if hasAny(d.parents, pending) {
				continue
			}
			r.store(d.rebuild())
			delete(pending, n)
			logger.Verbose("class rebuilt:", d, "after", c, "changed")
		}
	}
}

// Resolves inherited slots, assigns version and stores class.
//
// Should be called under write lock.
func (r *classes) store(c *class) {
	parents := make([]*class, 0, len(c.parents))
	for _, p := range c.parents {
		parents = append(parents, r.classes[p])
	}
	c.inherit(parents)

	r.version++
	c.version = r.version
	r.classes[c.name] = c
}

func hasAny(names []string, set map[string]bool) bool {
	for _, n := range names {
		if set[n] {
			return true
		}
	}
	return false
}

// Should be called under lock.
func (r *classes) validate(c *class) (err error) {
	if e := validName(c.name); e != nil {
		return e
	}

	if exists, ok := r.classes[c.name]; ok && exists.sealed {
		return ErrSealedClass(c.name)
	}

	seen := make(map[string]bool)
	for _, p := range c.parents {
		switch {
		case p == ClassName_ANY || p == ClassName_MISSING:
			err = errors.Join(err, ErrReservedName(p))
		case seen[p]:
			err = errors.Join(err, ErrInvalidName("class «%s» repeats parent «%s»", c.name, p))
		case p == c.name:
			err = errors.Join(err, ErrCyclicInheritance(c.name, p))
		default:
			if _, ok := r.classes[p]; !ok {
				err = errors.Join(err, ErrUnknownParent(c.name, p))
			} else if r.ancestors(p).Has(c.name) {
				err = errors.Join(err, ErrCyclicInheritance(c.name, p))
			}
		}
		seen[p] = true
	}

	slotNames := make(map[string]bool)
	for _, s := range c.slots {
		if e := validName(s.Name()); e != nil {
			err = errors.Join(err, ErrInvalidName("class «%s» slot: %v", c.name, e))
			continue
		}
		if slotNames[s.Name()] {
			err = errors.Join(err, ErrInvalidName("class «%s» repeats slot «%s»", c.name, s.Name()))
		}
		slotNames[s.Name()] = true

		switch t := s.Type(); t {
		case ClassName_ANY, c.name:
		default:
			if _, ok := r.classes[t]; !ok {
				err = errors.Join(err, ErrUnknownClass(t))
			}
		}
	}

	if len(c.prototype) > 0 && err == nil {
		known := maps.Clone(slotNames)
		for _, p := range c.parents {
			for _, s := range r.classes[p].allSlots {
				known[s.Name()] = true
			}
		}
		for n := range c.prototype {
			if !known[n] {
				err = errors.Join(err, ErrUnknownSlot(c.name, n))
			}
		}
	}

	return err
}

var nameRegexp = regexp.MustCompile(`^[a-zA-Z_.][a-zA-Z0-9_.]*$`)

func validName(name string) error {
	switch {
	case name == "":
		return ErrInvalidName("empty name")
	case name == ClassName_ANY || name == ClassName_MISSING:
		return ErrReservedName(name)
	case len(name) > MaxClassNameLen:
		return ErrInvalidName("name «%s» is too long", name)
	case !nameRegexp.MatchString(name):
		return ErrInvalidName("«%s»", name)
	}
	return nil
}
