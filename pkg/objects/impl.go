/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objects

import (
	"errors"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"

	"github.com/voedger/s4/pkg/classes"
	"github.com/voedger/s4/pkg/foreign"
	"github.com/voedger/s4/pkg/generics"
)

// # Implements:
//   - IObjects
type objects struct {
	classes  classes.IClasses
	generics generics.IGenerics
	bridge   foreign.IBridge
}

func (o *objects) Assignable(value any, typ string) bool {
	if typ == classes.ClassName_ANY {
		return true
	}
	if value == nil {
		if typ == foreign.Class_NULL {
			return true
		}
		c, err := o.classes.Class(typ)
		return err == nil && !c.Foreign()
	}
	return o.classes.ChainDistances(o.chain(value)).Has(typ)
}

func (o *objects) Check(inst IInstance, slots ...string) (err error) {
	c := inst.Class()
	for _, n := range slots {
		s := c.Slot(n)
		if s == nil {
			err = errors.Join(err, classes.ErrUnknownSlot(c.Name(), n))
			continue
		}
		v, e := inst.Slot(n)
		if e != nil {
			err = errors.Join(err, e)
			continue
		}
		if !o.Assignable(v, s.Type()) {
			err = errors.Join(err, ErrSlotTypeMismatch(c.Name(), n, s.Type(), o.chain(v)))
		}
	}
	return err
}

func (o *objects) Construct(className string, base any, slots Slots) (IInstance, error) {
	c, err := o.constructible(className)
	if err != nil {
		return nil, err
	}

	inst, err := o.prototype(c, map[string]bool{className: true})
	if err != nil {
		return nil, err
	}
	if err := o.assignBase(inst, base); err != nil {
		return nil, err
	}

	if _, err := o.generics.Invoke(GenericName_Initialize, inst, InitArgs{Slots: slots}); err != nil {
		return nil, err
	}

	if logger.IsVerbose() {
		logger.Verbose("constructed", inst)
	}
	return inst, nil
}

func (o *objects) Default(className string) (any, error) {
	c, err := o.classes.Class(className)
	if err != nil {
		return nil, err
	}
	if c.Foreign() {
		v, _ := o.bridge.Zero(className)
		return v, nil
	}
	return o.Construct(className, nil, nil)
}

func (o *objects) IsInstance(inst IInstance, className string) bool {
	if className == classes.ClassName_ANY {
		return true
	}
	return o.classes.IsSubclassOf(inst.ClassName(), className)
}

func (o *objects) SlotNames(inst IInstance) []string {
	return inst.SlotNames()
}

func (o *objects) Validate(inst IInstance) (err error) {
	c, e := o.classes.Class(inst.ClassName())
	if e != nil {
		return errors.Join(ErrInvalidObject("%v", inst), e)
	}

	if c.Version() != inst.Class().Version() {
		names := inst.SlotNames()
		for _, s := range c.AllSlots() {
			if !slices.Contains(names, s.Name()) {
				err = errors.Join(err, ErrInvalidObject("%v has no slot «%s» declared by current class definition", inst, s.Name()))
			}
		}
		for _, n := range names {
			if c.Slot(n) == nil {
				err = errors.Join(err, classes.ErrUnknownSlot(c.Name(), n))
			}
		}
	}

	for _, s := range c.AllSlots() {
		v, e := inst.Slot(s.Name())
		if e != nil {
			continue
		}
		if !o.Assignable(v, s.Type()) {
			err = errors.Join(err, ErrSlotTypeMismatch(c.Name(), s.Name(), s.Type(), o.chain(v)))
		}
	}

	if err != nil {
		return err
	}
	return o.validity(inst)
}

// Assigns positional base value. Base should be assignable to foreign ancestor of instance class.
// If base is nil, zero value of nearest foreign ancestor is assigned.
func (o *objects) assignBase(inst *instance, base any) error {
	d, err := o.classes.Ancestors(inst.ClassName())
	if err != nil {
		return err
	}
	bases := make([]string, 0)
	for _, n := range d.Sorted() {
		if c, err := o.classes.Class(n); err == nil && c.Foreign() {
			bases = append(bases, n)
		}
	}

	if base == nil {
		if len(bases) > 0 {
			inst.base, _ = o.bridge.Zero(bases[0])
		}
		return nil
	}

	for _, b := range bases {
		if o.Assignable(base, b) {
			inst.base = base
			return nil
		}
	}
	if len(bases) == 0 {
		return ErrTypeMismatch("class «%s» has no foreign base, base value «%s» is not allowed", inst.ClassName(), chainName(o.chain(base)))
	}
	return ErrTypeMismatch("class «%s» base expects %v, got «%s»", inst.ClassName(), bases, chainName(o.chain(base)))
}

// Returns class chain of value
func (o *objects) chain(value any) []string {
	if r, ok := value.(foreign.IClassReporter); ok {
		return r.ClassChain()
	}
	return o.bridge.ClassChain(value)
}

// Returns registered class which can have instances
func (o *objects) constructible(className string) (classes.IClass, error) {
	c, err := o.classes.Class(className)
	if err != nil {
		return nil, err
	}
	if c.Virtual() || c.Foreign() {
		return nil, ErrVirtualClass(className)
	}
	return c, nil
}

// Default «initialize» method: checks and assigns slot values, then runs validity functions.
func (o *objects) initialize(call generics.ICall) (any, error) {
	inst, ok := call.Arg(0).(*instance)
	if !ok {
		return nil, ErrInvalidObject("«%s» expects object constructed by registry, got %T", GenericName_Initialize, call.Arg(0))
	}
	var slots Slots
	if args, ok := call.Arg(1).(InitArgs); ok {
		slots = args.Slots
	}

	c := inst.class
	var err error
	for n, v := range slots {
		s := c.Slot(n)
		if s == nil {
			err = errors.Join(err, classes.ErrUnknownSlot(c.Name(), n))
			continue
		}
		if !o.Assignable(v, s.Type()) {
			err = errors.Join(err, ErrSlotTypeMismatch(c.Name(), n, s.Type(), o.chain(v)))
		}
	}
	if err != nil {
		return nil, err
	}

	for n, v := range slots {
		inst.slots[n] = v
	}

	if err := o.validity(inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// Returns instance with prototype or type default values.
// Prototype values must be assignable to slot types.
//
// Guard contains classes under construction, slots of such types are nil.
func (o *objects) prototype(c classes.IClass, guard map[string]bool) (*instance, error) {
	inst := newInstance(c)
	var err error
	for _, s := range c.AllSlots() {
		if v, ok := c.Prototype(s.Name()); ok {
			if !o.Assignable(v, s.Type()) {
				err = errors.Join(err, ErrSlotTypeMismatch(c.Name(), s.Name(), s.Type(), o.chain(v)))
				continue
			}
			inst.slots[s.Name()] = v
			continue
		}
		v, e := o.zero(s.Type(), guard)
		if e != nil {
			err = errors.Join(err, e)
			continue
		}
		inst.slots[s.Name()] = v
	}
	if err != nil {
		return nil, err
	}
	return inst, nil
}

// Runs validity functions of instance class and its ancestors, most general first.
func (o *objects) validity(inst IInstance) error {
	d, err := o.classes.Ancestors(inst.ClassName())
	if err != nil {
		return err
	}
	names := d.Sorted()
	for i := len(names) - 1; i >= 0; i-- {
		c, err := o.classes.Class(names[i])
		if err != nil {
			continue
		}
		if f := c.Validity(); f != nil {
			if err := f(inst); err != nil {
				return errors.Join(ErrInvalidObject("%v is not valid «%s»", inst, c.Name()), err)
			}
		}
	}
	return nil
}

// Returns type default value
func (o *objects) zero(typ string, guard map[string]bool) (any, error) {
	if typ == classes.ClassName_ANY || guard[typ] {
		return nil, nil
	}
	c, err := o.classes.Class(typ)
	if err != nil || c.Virtual() {
		return nil, nil
	}
	if c.Foreign() {
		v, _ := o.bridge.Zero(typ)
		return v, nil
	}
	guard[typ] = true
	defer delete(guard, typ)
	inst, err := o.prototype(c, guard)
	if err != nil {
		return nil, err
	}
	return inst, nil
}
