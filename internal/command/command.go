package command

import (
	"fmt"
)

// PermLevel gates who may invoke a command. Enforced by middleware before
// dispatch ever sees the invocation.
type PermLevel int

const (
	PermPublic PermLevel = iota
	PermAdmin
	PermOwner
)

func (p PermLevel) String() string {
	switch p {
	case PermAdmin:
		return "admin"
	case PermOwner:
		return "owner"
	default:
		return "public"
	}
}

// Scope restricts where a command may be invoked.
type Scope int

const (
	ScopeAnywhere Scope = iota
	ScopeGuildOnly
	ScopeDMOnly
)

// Command is the contract every plugin command implements. Actions() returns
// the declared action set in declaration order; Run is expected to hand the
// context to Dispatch (or implement custom routing for exotic commands).
type Command interface {
	Name() string
	Description() string
	Aliases() []string
	Group() string
	Category() string
	Permission() PermLevel
	Scope() Scope
	Actions() []Action
	Run(ctx *Context) error
}

// Validate checks a command definition at build time. Registration must not
// proceed on error: a malformed definition is a programming mistake, never a
// runtime condition.
func Validate(cmd Command) error {
	if cmd.Name() == "" {
		return ErrNoName
	}
	actions := cmd.Actions()
	if len(actions) == 0 {
		return fmt.Errorf("%q: %w", cmd.Name(), ErrNoActions)
	}
	seen := make(map[string]struct{}, len(actions))
	for _, a := range actions {
		if a.run == nil {
			return fmt.Errorf("%q: action %q has no handler", cmd.Name(), a.Usage())
		}
		sig := a.signature()
		if _, dup := seen[sig]; dup {
			return fmt.Errorf("%q: action %q: %w", cmd.Name(), a.Usage(), ErrDuplicateAction)
		}
		seen[sig] = struct{}{}
	}
	return nil
}
