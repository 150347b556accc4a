/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objects

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/voedger/s4/pkg/classes"
)

// # Implements:
//   - IInstance
type instance struct {
	id    uuid.UUID
	class classes.IClass
	base  any
	names []string
	slots map[string]any
}

func newInstance(c classes.IClass) *instance {
	all := c.AllSlots()
	inst := &instance{
		id:    uuid.New(),
		class: c,
		names: make([]string, 0, len(all)),
		slots: make(map[string]any, len(all)),
	}
	for _, s := range all {
		inst.names = append(inst.names, s.Name())
		inst.slots[s.Name()] = nil
	}
	return inst
}

func (i *instance) Base() any             { return i.base }
func (i *instance) Class() classes.IClass { return i.class }
func (i *instance) ClassChain() []string  { return []string{i.class.Name()} }
func (i *instance) ClassName() string     { return i.class.Name() }
func (i *instance) ID() uuid.UUID         { return i.id }
func (i *instance) SlotNames() []string   { return append([]string(nil), i.names...) }
func (i *instance) String() string        { return fmt.Sprintf("object «%s» %v", i.class.Name(), i.id) }

func (i *instance) Slot(name string) (any, error) {
	v, ok := i.slots[name]
	if !ok {
		return nil, classes.ErrUnknownSlot(i.class.Name(), name)
	}
	return v, nil
}

func (i *instance) SetSlot(name string, value any) error {
	if _, ok := i.slots[name]; !ok {
		return classes.ErrUnknownSlot(i.class.Name(), name)
	}
	i.slots[name] = value
	return nil
}
