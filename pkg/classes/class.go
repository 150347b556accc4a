/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package classes

import "fmt"

// # Implements:
//   - IClass
type class struct {
	name      string
	parents   []string
	slots     []ISlot
	allSlots  []ISlot
	slotIdx   map[string]ISlot
	sealed    bool
	virtual   bool
	foreign   bool
	prototype map[string]any
	inherited map[string]any
	validity  ValidityFunc
	version   uint64
}

func newClass(name string, parents []string) *class {
	return &class{
		name:      name,
		parents:   append([]string(nil), parents...),
		slotIdx:   make(map[string]ISlot),
		prototype: make(map[string]any),
		inherited: make(map[string]any),
	}
}

func (c *class) AllSlots() []ISlot      { return append([]ISlot(nil), c.allSlots...) }
func (c *class) Foreign() bool          { return c.foreign }
func (c *class) Name() string           { return c.name }
func (c *class) Parents() []string      { return append([]string(nil), c.parents...) }
func (c *class) Sealed() bool           { return c.sealed }
func (c *class) Slot(name string) ISlot { return c.slotIdx[name] }
func (c *class) Slots() []ISlot         { return append([]ISlot(nil), c.slots...) }
func (c *class) Validity() ValidityFunc { return c.validity }
func (c *class) Version() uint64        { return c.version }
func (c *class) Virtual() bool          { return c.virtual }
func (c *class) String() string         { return fmt.Sprintf("class «%s»", c.name) }

func (c *class) Prototype(slot string) (value any, ok bool) {
	if value, ok = c.prototype[slot]; ok {
		return value, ok
	}
	value, ok = c.inherited[slot]
	return value, ok
}

// Returns new definition with the same own declarations, inherited slots are not resolved.
func (c *class) rebuild() *class {
	n := newClass(c.name, c.parents)
	n.slots = c.slots
	n.sealed, n.virtual, n.foreign = c.sealed, c.virtual, c.foreign
	n.prototype = c.prototype
	n.validity = c.validity
	return n
}

// Collects own and inherited slots and prototypes. Parents must be resolved.
func (c *class) inherit(parents []*class) {
	add := func(s ISlot) {
		if _, exists := c.slotIdx[s.Name()]; exists {
			return
		}
		c.slotIdx[s.Name()] = s
		c.allSlots = append(c.allSlots, s)
	}
	for _, s := range c.slots {
		add(s)
	}
	for _, p := range parents {
		for _, s := range p.allSlots {
			add(s)
		}
		for _, s := range p.allSlots {
			if _, ok := c.inherited[s.Name()]; ok {
				continue
			}
			if v, ok := p.Prototype(s.Name()); ok {
				c.inherited[s.Name()] = v
			}
		}
	}
}

// # Implements:
//   - ISlot
type slot struct {
	name  string
	typ   string
	owner string
}

func (s *slot) Name() string   { return s.name }
func (s *slot) Owner() string  { return s.owner }
func (s *slot) Type() string   { return s.typ }
func (s *slot) String() string { return fmt.Sprintf("%s %s", s.name, s.typ) }
