/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package generics

// Generic function definition.
//
// Ref. to generic.go for implementation
type IGeneric interface {
	Name() string

	// Formal parameters
	Params() []string

	// Dispatch parameters, subsequence of formal parameters.
	Signature() []string

	// Count of dispatch parameters
	Arity() int

	// Formal parameter index for each dispatch parameter
	Positions() []int

	// Returns method with all ANY signature. Returns nil if not registered.
	Default() IMethod

	// Returns registered methods ordered by signature.
	Methods() []IMethod
}

// Method of generic function.
//
// Ref. to generic.go for implementation
type IMethod interface {
	// Generic name
	Generic() string

	// Class selector for each dispatch parameter
	Signature() []string

	Body() Body
}

// Method body.
type Body func(call ICall) (result any, err error)

// Method call.
//
// Ref. to call.go for implementation
type ICall interface {
	Generic() IGeneric

	// Executing method
	Method() IMethod

	// Selection which elected executing method
	Selection() *Selection

	// All call arguments, including pass-through ones
	Args() []any

	// Returns argument by index. Returns Missing if index is out of range.
	Arg(int) any

	// Classes of dispatch arguments as used by resolution
	Classes() []string

	// Returns is next more general method exists.
	HasNext() bool

	// Calls next more general method with the same arguments.
	//
	// Next method is selected by the same arguments classes, excluding all
	// methods already visited by this continuation chain.
	//
	// # Errors:
	//   - ErrNoNextMethodError if there is no next method
	Next() (any, error)

	// Calls next more general method with other arguments.
	// Arguments classes used to select next method are not changed.
	NextWith(args ...any) (any, error)
}

// Called when ambiguous dispatch is resolved.
type AmbiguityHandler func(*AmbiguousDispatchWarning)

// Generic functions registry, method resolver and dispatcher.
//
// Ref. to impl.go for implementation
type IGenerics interface {
	// Registers new generic or replaces existing one.
	// Replaced generic loses all its methods.
	//
	// Dispatch signature is all formal params before ParamDots, if not specified by WithSignature().
	//
	// # Errors:
	//   - ErrInvalidSignatureError if name or params are empty or invalid
	//   - ErrUnknownClassError if default method can not be registered
	RegisterGeneric(name string, params []string, opts ...GenericOption) (IGeneric, error)

	// Returns generic by name.
	//
	// # Errors:
	//   - ErrUnknownGenericError if not found
	Generic(name string) (IGeneric, error)

	// Enumerates generics in name order.
	Generics(func(IGeneric))

	// Registers new method or replaces method with the same signature.
	//
	// # Errors:
	//   - ErrUnknownGenericError if generic not found
	//   - ErrArityMismatchError if signature length differs from generic arity
	//   - ErrUnknownClassError if some selector is not registered class, ANY or MISSING
	//   - ErrInvalidSignatureError if body is nil
	RegisterMethod(generic string, signature []string, body Body) (IMethod, error)

	// Removes method with exact signature. Returns false if method not found.
	RemoveMethod(generic string, signature []string) (bool, error)

	// Returns methods of generic ordered by signature.
	Methods(generic string) ([]IMethod, error)

	// Returns methods of all generics which signatures mention class,
	// ordered by generic name then by signature.
	MethodsFor(class string) []IMethod

	// Returns is method with exact signature registered.
	ExistsMethod(generic string, signature ...string) bool

	// Returns is some method applicable, directly or by inheritance, for classes.
	HasMethod(generic string, classes ...string) bool

	// Resolves method for classes without invoking it.
	//
	// # Errors:
	//   - ErrUnknownGenericError if generic not found
	//   - ErrArityMismatchError if classes count differs from generic arity
	//   - ErrUnknownClassError if some class is not registered nor MISSING
	//   - ErrNoApplicableMethodError if no method is applicable
	SelectMethod(generic string, classes ...string) (*Selection, error)

	// Invokes generic: resolves method by runtime classes of dispatch
	// arguments and calls its body with all arguments.
	//
	// # Errors:
	//   - ErrUnknownGenericError if generic not found
	//   - ErrNoApplicableMethodError if no method is applicable
	//   - any error returned by method body
	Invoke(generic string, args ...any) (any, error)

	// Adds ambiguity handler.
	OnAmbiguity(AmbiguityHandler)
}
