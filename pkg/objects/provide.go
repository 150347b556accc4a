/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objects

import (
	"github.com/voedger/s4/pkg/classes"
	"github.com/voedger/s4/pkg/foreign"
	"github.com/voedger/s4/pkg/generics"
)

// Returns instance model and registers «initialize» generic with default initializer.
func Provide(cls classes.IClasses, gen generics.IGenerics, bridge foreign.IBridge) (IObjects, error) {
	o := &objects{
		classes:  cls,
		generics: gen,
		bridge:   bridge,
	}
	_, err := gen.RegisterGeneric(GenericName_Initialize,
		[]string{ParamName_Object, ParamName_InitArgs, generics.ParamDots},
		generics.WithSignature(ParamName_Object),
		generics.WithDefault(o.initialize))
	if err != nil {
		return nil, err
	}
	return o, nil
}
