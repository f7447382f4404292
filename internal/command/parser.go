package command

// Parser turns one token (or the rejoined tail, for a final parameter) into
// a value. Parsers are stateless and shared across invocations; a parser may
// hit the network (entity lookups), so the binder calls them strictly one at
// a time.
type Parser interface {
	// TypeName identifies the produced type for registration-time
	// signature checks and usage rendering.
	TypeName() string
	Parse(ctx *Context, token string) (any, error)
}

// TypedParser is the compile-time-checked flavor of Parser. Action
// constructors (Do1..Do4) tie a TypedParser[T] to a handler parameter of
// type T, so a parser/handler mismatch is a build error, not a runtime one.
type TypedParser[T any] interface {
	TypeName() string
	Parse(ctx *Context, token string) (T, error)
}

// Param is one declared parameter: a display name plus its parser.
type Param struct {
	Name   string
	Parser Parser
}

// TypedArg declares a named parameter backed by a typed parser. Use Arg to
// construct one.
type TypedArg[T any] struct {
	Name   string
	parser TypedParser[T]
}

// Arg pairs a parameter name with a typed parser.
func Arg[T any](name string, p TypedParser[T]) TypedArg[T] {
	return TypedArg[T]{Name: name, parser: p}
}

func (a TypedArg[T]) param() Param {
	return Param{Name: a.Name, Parser: typedAdapter[T]{p: a.parser}}
}

// typedAdapter erases a TypedParser into the untyped Parser the binder
// iterates over.
type typedAdapter[T any] struct {
	p TypedParser[T]
}

func (a typedAdapter[T]) TypeName() string { return a.p.TypeName() }

func (a typedAdapter[T]) Parse(ctx *Context, token string) (any, error) {
	v, err := a.p.Parse(ctx, token)
	if err != nil {
		return nil, err
	}
	return v, nil
}
