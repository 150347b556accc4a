/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package classes

import (
	"sort"
)

// Slot declaration for class registration
type SlotDef struct {
	Name string
	Type string
}

// Shorthand slot declaration.
func Slot(name, typ string) SlotDef {
	return SlotDef{Name: name, Type: typ}
}

// Validity function checks constructed object. Object is objects.IInstance.
type ValidityFunc func(obj any) error

type ClassOption func(*class)

// Class can not be redefined or removed.
func Sealed() ClassOption {
	return func(c *class) { c.sealed = true }
}

// Class has no direct instances.
func Virtual() ClassOption {
	return func(c *class) { c.virtual = true }
}

// Default slot values used instead of type defaults.
func WithPrototype(values map[string]any) ClassOption {
	return func(c *class) {
		for n, v := range values {
			c.prototype[n] = v
		}
	}
}

// Validity function, called after construction and by explicit validation.
func WithValidity(f ValidityFunc) ClassOption {
	return func(c *class) { c.validity = f }
}

// Class distance table: class name → minimum distance in edges.
type Distances map[string]int

// Returns is class in table.
func (d Distances) Has(name string) bool {
	_, ok := d[name]
	return ok
}

// Returns maximum distance. Returns -1 if table is empty.
func (d Distances) Max() int {
	m := -1
	for _, v := range d {
		if v > m {
			m = v
		}
	}
	return m
}

// Returns class names ordered by distance, then by name.
func (d Distances) Sorted() []string {
	names := make([]string, 0, len(d))
	for n := range d {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		di, dj := d[names[i]], d[names[j]]
		if di != dj {
			return di < dj
		}
		return names[i] < names[j]
	})
	return names
}

// Returns copy of table with ClassName_ANY placed farther than every real class.
func (d Distances) WithAny() Distances {
	res := make(Distances, len(d)+1)
	for n, v := range d {
		res[n] = v
	}
	res[ClassName_ANY] = d.Max() + anyDistanceGap
	return res
}

func (d Distances) merge(name string, dist int) {
	if old, ok := d[name]; !ok || dist < old {
		d[name] = dist
	}
}
