package command

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func noop(_ *Context) error { return nil }

func TestValidateRequiresName(t *testing.T) {
	cmd := &testCommand{name: "", actions: []Action{Do(noop)}}
	require.ErrorIs(t, Validate(cmd), ErrNoName)
}

func TestValidateRequiresActions(t *testing.T) {
	cmd := &testCommand{name: "empty"}
	require.ErrorIs(t, Validate(cmd), ErrNoActions)
}

func TestValidateRejectsDuplicateAliasSignature(t *testing.T) {
	cmd := &testCommand{name: "dup", actions: []Action{
		Do1(Arg("a", IntParser{}), func(_ *Context, _ int) error { return nil }).Sub("x"),
		Do1(Arg("b", IntParser{}), func(_ *Context, _ int) error { return nil }).Sub("X"),
	}}
	require.ErrorIs(t, Validate(cmd), ErrDuplicateAction)
}

func TestValidateAllowsSameAliasDifferentArity(t *testing.T) {
	cmd := &testCommand{name: "over", actions: []Action{
		Do1(Arg("a", IntParser{}), func(_ *Context, _ int) error { return nil }).Sub("x"),
		Do2(Arg("a", IntParser{}), Arg("b", IntParser{}),
			func(_ *Context, _, _ int) error { return nil }).Sub("x"),
	}}
	require.NoError(t, Validate(cmd))
}

func TestValidateAllowsSameSignatureDifferentAlias(t *testing.T) {
	cmd := &testCommand{name: "multi", actions: []Action{
		Do1(Arg("a", IntParser{}), func(_ *Context, _ int) error { return nil }).Sub("add"),
		Do1(Arg("a", IntParser{}), func(_ *Context, _ int) error { return nil }).Sub("del"),
	}}
	require.NoError(t, Validate(cmd))
}

func TestRegisterRejectsInvalidCommand(t *testing.T) {
	require.Error(t, Register(&testCommand{name: "bad-nocommand"}))
	_, ok := Get("bad-nocommand")
	require.False(t, ok)
}

func TestRegisterLooksUpByNameAndAliasCaseInsensitive(t *testing.T) {
	cmd := &aliasedCommand{testCommand{name: "reg-lookup", actions: []Action{Do(noop)}}}
	require.NoError(t, Register(cmd))

	got, ok := Get("REG-LOOKUP")
	require.True(t, ok)
	require.Equal(t, "reg-lookup", got.Name())

	got, ok = Get("rl-alias")
	require.True(t, ok)
	require.Equal(t, "reg-lookup", got.Name())
}

func TestRegisterRejectsDuplicateName(t *testing.T) {
	first := &testCommand{name: "reg-dup", actions: []Action{Do(noop)}}
	require.NoError(t, Register(first))
	require.ErrorIs(t, Register(&testCommand{name: "reg-dup", actions: []Action{Do(noop)}}), ErrDuplicateName)
}

type aliasedCommand struct {
	testCommand
}

func (c *aliasedCommand) Aliases() []string      { return []string{"rl-alias"} }
func (c *aliasedCommand) Run(ctx *Context) error { return Dispatch(ctx, c) }

func TestActionUsage(t *testing.T) {
	a := Do2(Arg("count", IntParser{}), Arg("reason", StringParser{}),
		func(_ *Context, _ int, _ string) error { return nil }).Sub("close")
	require.Equal(t, "close <count:int> <reason:string>", a.Usage())
}
