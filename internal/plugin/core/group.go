package core

import (
	"fmt"
	"strings"

	"guild-warden/internal/command"
)

// GroupCommand toggles whole command groups per guild. Disabling a group
// makes its commands invisible: the group-check middleware drops them
// without a reply.
type GroupCommand struct{}

func (c *GroupCommand) Name() string                  { return "group" }
func (c *GroupCommand) Description() string           { return "Enable or disable command groups" }
func (c *GroupCommand) Aliases() []string             { return []string{} }
func (c *GroupCommand) Group() string                 { return "" } // never disable the toggle itself
func (c *GroupCommand) Category() string              { return "⚙️ Core" }
func (c *GroupCommand) Permission() command.PermLevel { return command.PermAdmin }
func (c *GroupCommand) Scope() command.Scope          { return command.ScopeGuildOnly }

func (c *GroupCommand) Actions() []command.Action {
	name := command.Arg("group", command.StringParser{})
	return []command.Action{
		command.Do(c.list),
		command.Do1(name, func(ctx *command.Context, group string) error {
			return c.toggle(ctx, group, false)
		}).Sub("enable"),
		command.Do1(name, func(ctx *command.Context, group string) error {
			return c.toggle(ctx, group, true)
		}).Sub("disable"),
	}
}

func (c *GroupCommand) Run(ctx *command.Context) error {
	return command.Dispatch(ctx, c)
}

func (c *GroupCommand) list(ctx *command.Context) error {
	groups := map[string]bool{}
	var names []string
	for _, cmd := range command.All() {
		if g := cmd.Group(); g != "" && !groups[g] {
			groups[g] = true
			names = append(names, g)
		}
	}
	var sb strings.Builder
	for _, g := range names {
		disabled, err := ctx.Storage.IsGroupDisabled(ctx.GuildID(), g)
		if err != nil {
			return err
		}
		state := "enabled"
		if disabled {
			state = "disabled"
		}
		fmt.Fprintf(&sb, "`%s` — %s\n", g, state)
	}
	return ctx.Respond(sb.String())
}

func (c *GroupCommand) toggle(ctx *command.Context, group string, disabled bool) error {
	known := false
	for _, cmd := range command.All() {
		if cmd.Group() == group {
			known = true
			break
		}
	}
	if !known {
		return ctx.Respond(fmt.Sprintf("No command group named `%s`.", group))
	}
	if err := ctx.Storage.SetGroupDisabled(ctx.GuildID(), group, disabled); err != nil {
		return err
	}
	state := "enabled"
	if disabled {
		state = "disabled"
	}
	return ctx.Respond(fmt.Sprintf("Group `%s` is now %s.", group, state))
}

func init() {
	command.MustRegister(&GroupCommand{})
}
