package command

import (
	"strings"
)

// Action is one invocable unit of a command: an optional subcommand alias
// (empty for the base action), an ordered parameter list, and a handler.
// Actions are built once at registration and shared read-only across
// concurrent invocations.
type Action struct {
	Subcommand string
	Params     []Param

	run func(ctx *Context, args []any) error
}

// Sub returns a copy of the action bound to a subcommand alias. Alias
// matching at dispatch time is case-insensitive.
func (a Action) Sub(alias string) Action {
	a.Subcommand = alias
	return a
}

// signature identifies an action for duplicate detection: alias plus the
// ordered parser type names.
func (a Action) signature() string {
	types := make([]string, len(a.Params))
	for i, p := range a.Params {
		types[i] = p.Parser.TypeName()
	}
	return strings.ToLower(a.Subcommand) + "(" + strings.Join(types, ",") + ")"
}

// Usage renders the action's shape for help and error text, e.g.
// "add <name:string> <count:int>".
func (a Action) Usage() string {
	parts := make([]string, 0, len(a.Params)+1)
	if a.Subcommand != "" {
		parts = append(parts, a.Subcommand)
	}
	for _, p := range a.Params {
		parts = append(parts, "<"+p.Name+":"+p.Parser.TypeName()+">")
	}
	return strings.Join(parts, " ")
}

// Do builds a zero-argument action.
func Do(fn func(ctx *Context) error) Action {
	return Action{run: func(ctx *Context, _ []any) error {
		return fn(ctx)
	}}
}

// Do1 builds a one-argument action. The handler's parameter type is tied to
// the parser's output type at compile time.
func Do1[A any](a1 TypedArg[A], fn func(ctx *Context, a A) error) Action {
	return Action{
		Params: []Param{a1.param()},
		run: func(ctx *Context, args []any) error {
			return fn(ctx, args[0].(A))
		},
	}
}

// Do2 builds a two-argument action.
func Do2[A, B any](a1 TypedArg[A], a2 TypedArg[B], fn func(ctx *Context, a A, b B) error) Action {
	return Action{
		Params: []Param{a1.param(), a2.param()},
		run: func(ctx *Context, args []any) error {
			return fn(ctx, args[0].(A), args[1].(B))
		},
	}
}

// Do3 builds a three-argument action.
func Do3[A, B, C any](a1 TypedArg[A], a2 TypedArg[B], a3 TypedArg[C], fn func(ctx *Context, a A, b B, c C) error) Action {
	return Action{
		Params: []Param{a1.param(), a2.param(), a3.param()},
		run: func(ctx *Context, args []any) error {
			return fn(ctx, args[0].(A), args[1].(B), args[2].(C))
		},
	}
}

// Do4 builds a four-argument action.
func Do4[A, B, C, D any](a1 TypedArg[A], a2 TypedArg[B], a3 TypedArg[C], a4 TypedArg[D], fn func(ctx *Context, a A, b B, c C, d D) error) Action {
	return Action{
		Params: []Param{a1.param(), a2.param(), a3.param(), a4.param()},
		run: func(ctx *Context, args []any) error {
			return fn(ctx, args[0].(A), args[1].(B), args[2].(C), args[3].(D))
		},
	}
}
