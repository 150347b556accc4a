/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objects

// Construction hook generic.
//
// Methods are registered on class name and receive prototype instance
// as the first argument and InitArgs as the second one.
const (
	GenericName_Initialize = "initialize"
	ParamName_Object       = ".Object"
	ParamName_InitArgs     = "args"
)
