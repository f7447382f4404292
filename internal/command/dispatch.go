package command

import (
	"log"
	"strings"
)

// Dispatch resolves ctx.Tokens against cmd's actions and runs the first one
// that fully binds.
//
// Mode selection happens once per invocation: if token 1 case-insensitively
// matches any declared subcommand alias, only actions with that alias are
// candidates and arguments start at token 2; otherwise only base actions
// (empty alias) are candidates and arguments start at token 1. A token is
// never interpreted both as a subcommand name and as a literal argument.
//
// Candidates are tried strictly in declaration order; the first fully bound
// candidate runs its handler and dispatch is committed; a handler error is
// returned as-is and never causes another candidate to be tried. If no
// candidate binds, exactly one diagnosis is reported: missing arguments win
// over parse failures, and among parse failures the first in candidate
// declaration order wins.
func Dispatch(ctx *Context, cmd Command) error {
	actions := cmd.Actions()
	toks := ctx.Tokens

	var token1 string
	if toks.Count() > 1 {
		token1, _ = toks.Get(1)
	}

	subcommandUsed := false
	if token1 != "" {
		for _, a := range actions {
			if a.Subcommand != "" && strings.EqualFold(a.Subcommand, token1) {
				subcommandUsed = true
				break
			}
		}
	}

	firstArg := 1
	var candidates []Action
	if subcommandUsed {
		firstArg = 2
		for _, a := range actions {
			if strings.EqualFold(a.Subcommand, token1) {
				candidates = append(candidates, a)
			}
		}
	} else {
		for _, a := range actions {
			if a.Subcommand == "" {
				candidates = append(candidates, a)
			}
		}
	}

	var missing []string
	var firstParseErr *ArgumentParseError
	for _, a := range candidates {
		if ctx.Ctx != nil {
			if err := ctx.Ctx.Err(); err != nil {
				return err
			}
		}
		args, diag := bind(ctx, a, firstArg)
		if diag == nil {
			log.Printf("[INFO] Dispatching %s %s", cmd.Name(), a.Usage())
			return a.run(ctx, args)
		}
		switch d := diag.(type) {
		case *MissingArgumentsError:
			missing = append(missing, d.Names...)
		case *ArgumentParseError:
			if firstParseErr == nil {
				firstParseErr = d
			}
		default:
			// Cancellation mid-bind aborts the whole dispatch.
			return diag
		}
	}

	if len(missing) > 0 {
		return &MissingArgumentsError{Names: missing}
	}
	if firstParseErr != nil {
		return firstParseErr
	}
	return &UnknownSubcommandError{Command: cmd.Name(), Token: token1}
}

// bind tries to parse the remaining tokens against one action's parameter
// list. It returns the bound values, or exactly one diagnosis: either the
// token count cannot satisfy the parameter list (MissingArgumentsError,
// parsing never starts) or the first failing parser (ArgumentParseError,
// later parsers are never invoked). The last parameter always receives the
// rejoined tail, so free-form trailing text needs no quoting.
func bind(ctx *Context, a Action, firstArg int) ([]any, error) {
	available := ctx.Tokens.Count() - firstArg
	if available < len(a.Params) {
		if available < 0 {
			available = 0
		}
		short := a.Params[available:]
		names := make([]string, len(short))
		for i, p := range short {
			names[i] = p.Name
		}
		return nil, &MissingArgumentsError{Names: names}
	}

	args := make([]any, len(a.Params))
	last := len(a.Params) - 1
	for i, p := range a.Params {
		if ctx.Ctx != nil {
			if err := ctx.Ctx.Err(); err != nil {
				return nil, err
			}
		}
		var token string
		if i == last {
			token = ctx.Tokens.Tail(firstArg + i)
		} else {
			token, _ = ctx.Tokens.Get(firstArg + i)
		}
		v, err := p.Parser.Parse(ctx, token)
		if err != nil {
			return nil, &ArgumentParseError{Position: i + 1, Err: err}
		}
		args[i] = v
	}
	return args, nil
}
