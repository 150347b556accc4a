/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package generics

// Formal parameter which collects rest arguments. It never participates in dispatch.
const ParamDots = "..."

// Default dispatch cache size, entries per generic
const DefaultCacheSize = 1024

// Separators for dispatch cache keys
const (
	keyChainSep = "\x1f"
	keyArgSep   = "\x1e"
)

// Value for omitted argument, dispatched as classes.ClassName_MISSING.
var Missing = missing{}

type missing struct{}

func (missing) String() string { return "<missing>" }
