package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testCommand struct {
	name    string
	actions []Action
}

func (c *testCommand) Name() string           { return c.name }
func (c *testCommand) Description() string    { return "test command" }
func (c *testCommand) Aliases() []string      { return nil }
func (c *testCommand) Group() string          { return "" }
func (c *testCommand) Category() string       { return "test" }
func (c *testCommand) Permission() PermLevel  { return PermPublic }
func (c *testCommand) Scope() Scope           { return ScopeAnywhere }
func (c *testCommand) Actions() []Action      { return c.actions }
func (c *testCommand) Run(ctx *Context) error { return Dispatch(ctx, c) }

func invoke(cmd Command, input string) error {
	ctx := NewContext(context.Background(), NewTokens(input), nil)
	return Dispatch(ctx, cmd)
}

func TestDispatchBaseActionBindsInOrder(t *testing.T) {
	var gotN int
	var gotS string
	cmd := &testCommand{name: "t", actions: []Action{
		Do2(Arg("count", IntParser{}), Arg("name", StringParser{}),
			func(_ *Context, n int, s string) error {
				gotN, gotS = n, s
				return nil
			}),
	}}

	require.NoError(t, invoke(cmd, "t 7 hello"))
	require.Equal(t, 7, gotN)
	require.Equal(t, "hello", gotS)
}

func TestDispatchGreedyTail(t *testing.T) {
	var gotID int
	var gotReason string
	cmd := &testCommand{name: "close", actions: []Action{
		Do2(Arg("id", IntParser{}), Arg("reason", StringParser{}),
			func(_ *Context, id int, reason string) error {
				gotID, gotReason = id, reason
				return nil
			}),
	}}

	require.NoError(t, invoke(cmd, "close 42 no longer needed"))
	require.Equal(t, 42, gotID)
	require.Equal(t, "no longer needed", gotReason)
}

func TestDispatchOverloadedArityPicksMatchingAction(t *testing.T) {
	var ran string
	cmd := &testCommand{name: "t", actions: []Action{
		Do2(Arg("a", StringParser{}), Arg("b", StringParser{}),
			func(_ *Context, _, _ string) error { ran = "two"; return nil }),
		Do1(Arg("a", IntParser{}),
			func(_ *Context, _ int) error { ran = "one"; return nil }),
	}}

	// Only one token available: the two-argument action reports missing
	// arguments and the one-argument overload is dispatched.
	require.NoError(t, invoke(cmd, "t 5"))
	require.Equal(t, "one", ran)
}

func TestDispatchFirstSuccessWinsNoFurtherCandidates(t *testing.T) {
	var calls []string
	cmd := &testCommand{name: "t", actions: []Action{
		Do1(Arg("a", StringParser{}),
			func(_ *Context, _ string) error { calls = append(calls, "first"); return nil }),
		Do1(Arg("a", IntParser{}),
			func(_ *Context, _ int) error { calls = append(calls, "second"); return nil }),
	}}

	require.NoError(t, invoke(cmd, "t 5"))
	require.Equal(t, []string{"first"}, calls)
}

func TestDispatchSubcommandPrecedence(t *testing.T) {
	var baseRan bool
	cmd := &testCommand{name: "t", actions: []Action{
		Do1(Arg("value", StringParser{}),
			func(_ *Context, _ string) error { baseRan = true; return nil }),
		Do1(Arg("filter", StringParser{}),
			func(_ *Context, _ string) error { return nil }).Sub("list"),
	}}

	// "list" matches a subcommand alias, so the base action must not be
	// tried even though it would have bound "list" as its argument.
	err := invoke(cmd, "t list")
	var missing *MissingArgumentsError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, []string{"filter"}, missing.Names)
	require.False(t, baseRan)
}

func TestDispatchSubcommandCaseInsensitive(t *testing.T) {
	var got string
	cmd := &testCommand{name: "t", actions: []Action{
		Do1(Arg("text", StringParser{}),
			func(_ *Context, s string) error { got = s; return nil }).Sub("Add"),
	}}

	require.NoError(t, invoke(cmd, "t ADD hello"))
	require.Equal(t, "hello", got)
}

func TestDispatchMissingArgumentNames(t *testing.T) {
	cmd := &testCommand{name: "t", actions: []Action{
		Do3(Arg("one", StringParser{}), Arg("two", StringParser{}), Arg("three", StringParser{}),
			func(_ *Context, _, _, _ string) error { return nil }),
	}}

	err := invoke(cmd, "t only")
	var missing *MissingArgumentsError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, []string{"two", "three"}, missing.Names)
}

func TestDispatchMissingArgumentsBeatsParseFailure(t *testing.T) {
	cmd := &testCommand{name: "t", actions: []Action{
		Do1(Arg("count", IntParser{}),
			func(_ *Context, _ int) error { return nil }),
		Do2(Arg("count", IntParser{}), Arg("name", StringParser{}),
			func(_ *Context, _ int, _ string) error { return nil }),
	}}

	// One token: the first candidate fails parsing ("abc" is no int), the
	// second is short on tokens. Missing arguments wins regardless of order.
	err := invoke(cmd, "t abc")
	var missing *MissingArgumentsError
	require.ErrorAs(t, err, &missing)
}

func TestDispatchFallsThroughAfterParseFailure(t *testing.T) {
	var gotCount int
	var gotChannel string
	cmd := &testCommand{name: "purge", actions: []Action{
		Do1(Arg("count", IntParser{}),
			func(_ *Context, n int) error { gotCount = n; return nil }),
		Do2(Arg("count", IntParser{}), Arg("channel", StringParser{}),
			func(_ *Context, n int, ch string) error {
				gotCount, gotChannel = n, ch
				return nil
			}),
	}}

	// Two tokens: the one-argument overload receives the rejoined tail
	// "5 #general" and fails parsing; the two-argument overload binds and
	// runs, and the earlier failure is not reported.
	require.NoError(t, invoke(cmd, "purge 5 #general"))
	require.Equal(t, 5, gotCount)
	require.Equal(t, "#general", gotChannel)
}

func TestDispatchFirstParseFailureInDeclarationOrder(t *testing.T) {
	cmd := &testCommand{name: "t", actions: []Action{
		Do2(Arg("a", StringParser{}), Arg("b", IntParser{}),
			func(_ *Context, _ string, _ int) error { return nil }),
		Do2(Arg("a", IntParser{}), Arg("b", StringParser{}),
			func(_ *Context, _ int, _ string) error { return nil }),
	}}

	// First candidate fails at position 2, second at position 1. The first
	// in declaration order is reported, not the earliest token position.
	err := invoke(cmd, "t x y")
	var parseErr *ArgumentParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 2, parseErr.Position)
}

func TestDispatchParserStopsAtFirstFailure(t *testing.T) {
	var secondCalled bool
	spy := Arg("b", parseSpy{called: &secondCalled})
	cmd := &testCommand{name: "t", actions: []Action{
		Do2(Arg("a", IntParser{}), spy,
			func(_ *Context, _ int, _ string) error { return nil }),
	}}

	err := invoke(cmd, "t notanumber x")
	var parseErr *ArgumentParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 1, parseErr.Position)
	require.False(t, secondCalled, "parser after the failure point must not run")
}

type parseSpy struct {
	called *bool
}

func (p parseSpy) TypeName() string { return "spy" }
func (p parseSpy) Parse(_ *Context, token string) (string, error) {
	*p.called = true
	return token, nil
}

func TestDispatchUnknownSubcommand(t *testing.T) {
	cmd := &testCommand{name: "t", actions: []Action{
		Do(func(_ *Context) error { return nil }).Sub("list"),
	}}

	err := invoke(cmd, "t frobnicate")
	var unknown *UnknownSubcommandError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "frobnicate", unknown.Token)
}

func TestDispatchHandlerErrorPropagatesWithoutRetry(t *testing.T) {
	boom := errors.New("boom")
	var secondTried bool
	cmd := &testCommand{name: "t", actions: []Action{
		Do1(Arg("a", StringParser{}),
			func(_ *Context, _ string) error { return boom }),
		Do1(Arg("a", StringParser{}),
			func(_ *Context, _ string) error { secondTried = true; return nil }),
	}}

	err := invoke(cmd, "t x")
	require.ErrorIs(t, err, boom)
	require.False(t, secondTried, "dispatch is committed after the first full bind")

	_, isDiag := IsDiagnosis(err)
	require.False(t, isDiag, "handler errors are not diagnoses")
}

func TestDispatchIdempotent(t *testing.T) {
	cmd := &testCommand{name: "t", actions: []Action{
		Do2(Arg("a", IntParser{}), Arg("b", IntParser{}),
			func(_ *Context, _, _ int) error { return nil }),
	}}

	first := invoke(cmd, "t 1 notanumber")
	second := invoke(cmd, "t 1 notanumber")
	var e1, e2 *ArgumentParseError
	require.ErrorAs(t, first, &e1)
	require.ErrorAs(t, second, &e2)
	require.Equal(t, e1.Position, e2.Position)
	require.Equal(t, e1.Error(), e2.Error())
}

func TestDispatchZeroArgActionIgnoresExtraTokens(t *testing.T) {
	var ran bool
	cmd := &testCommand{name: "t", actions: []Action{
		Do(func(_ *Context) error { ran = true; return nil }),
	}}

	require.NoError(t, invoke(cmd, "t unexpected extra"))
	require.True(t, ran)
}

func TestDispatchCancelledContext(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	var ran bool
	cmd := &testCommand{name: "t", actions: []Action{
		Do1(Arg("a", StringParser{}),
			func(_ *Context, _ string) error { ran = true; return nil }),
	}}

	ctx := NewContext(cancelled, NewTokens("t x"), nil)
	err := Dispatch(ctx, cmd)
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, ran)
}
