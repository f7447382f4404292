package command

import (
	"errors"
	"fmt"
	"strings"
)

// Registration errors. These are configuration mistakes and abort command
// registration; they never occur at dispatch time.
var (
	ErrNoName          = errors.New("command has no name")
	ErrNoActions       = errors.New("command defines no actions")
	ErrDuplicateAction = errors.New("two actions share the same subcommand alias and argument signature")
	ErrDuplicateName   = errors.New("a command with this name or alias is already registered")
)

// MissingArgumentsError reports that the invocation supplied fewer tokens
// than every tried candidate required. Names lists the parameters still
// needed, in declaration order across the tried candidates.
type MissingArgumentsError struct {
	Names []string
}

func (e *MissingArgumentsError) Error() string {
	return "missing arguments: " + strings.Join(e.Names, ", ")
}

// UserMessage renders the diagnosis for the invoking user.
func (e *MissingArgumentsError) UserMessage(tr Translator) string {
	quoted := make([]string, len(e.Names))
	for i, n := range e.Names {
		quoted[i] = "`" + n + "`"
	}
	return fmt.Sprintf("%s: %s", translate(tr, "command", "missing_args"), strings.Join(quoted, ", "))
}

// ArgumentParseError reports that a candidate's parser rejected its token.
// Position is 1-based in parameter order.
type ArgumentParseError struct {
	Position int
	Err      error
}

func (e *ArgumentParseError) Error() string {
	return fmt.Sprintf("failed to parse argument %d: %v", e.Position, e.Err)
}

func (e *ArgumentParseError) Unwrap() error { return e.Err }

// UserMessage renders the diagnosis for the invoking user.
func (e *ArgumentParseError) UserMessage(tr Translator) string {
	return fmt.Sprintf("%s %d: %v", translate(tr, "command", "parse_failed"), e.Position, e.Err)
}

// UnknownSubcommandError reports that no candidate existed at all: either
// token 1 matched no declared alias and the command has no base action, or
// the command has no action for the current mode.
type UnknownSubcommandError struct {
	Command string
	Token   string
}

func (e *UnknownSubcommandError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s: no matching action for this input", e.Command)
	}
	return fmt.Sprintf("%s: unknown subcommand %q", e.Command, e.Token)
}

// UserMessage renders the diagnosis for the invoking user.
func (e *UnknownSubcommandError) UserMessage(tr Translator) string {
	return translate(tr, "command", "unknown_subcommand")
}

// Diagnosis is implemented by the three dispatch failure types. Handler
// errors are deliberately not diagnoses; they pass through untouched.
type Diagnosis interface {
	error
	UserMessage(tr Translator) string
}

// IsDiagnosis reports whether err (or anything it wraps) is a dispatch
// diagnosis rather than a handler or infrastructure failure.
func IsDiagnosis(err error) (Diagnosis, bool) {
	var d Diagnosis
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}
