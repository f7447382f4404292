package core

import (
	"fmt"

	"guild-warden/internal/command"
)

type PrefixCommand struct{}

func (c *PrefixCommand) Name() string                  { return "prefix" }
func (c *PrefixCommand) Description() string           { return "Show or change the command prefix for this server" }
func (c *PrefixCommand) Aliases() []string             { return []string{} }
func (c *PrefixCommand) Group() string                 { return "core" }
func (c *PrefixCommand) Category() string              { return "⚙️ Core" }
func (c *PrefixCommand) Permission() command.PermLevel { return command.PermAdmin }
func (c *PrefixCommand) Scope() command.Scope          { return command.ScopeGuildOnly }

func (c *PrefixCommand) Actions() []command.Action {
	// Setter first; a zero-argument action binds anything, so it must come
	// after the overload that consumes a token.
	return []command.Action{
		command.Do1(command.Arg("prefix", command.StringParser{}), func(ctx *command.Context, prefix string) error {
			if len(prefix) > 5 {
				return ctx.Respond("A prefix longer than 5 characters would be cruel to type.")
			}
			if err := ctx.Storage.SetPrefix(ctx.GuildID(), prefix); err != nil {
				return err
			}
			return ctx.Respond(ctx.Translate("core", "prefix_set"))
		}),
		command.Do(func(ctx *command.Context) error {
			p, err := ctx.Storage.GetPrefix(ctx.GuildID())
			if err != nil {
				return err
			}
			if p == "" {
				return ctx.Respond("This server uses the default prefix.")
			}
			return ctx.Respond(fmt.Sprintf("Current prefix: `%s`", p))
		}),
	}
}

func (c *PrefixCommand) Run(ctx *command.Context) error {
	return command.Dispatch(ctx, c)
}

func init() {
	command.MustRegister(&PrefixCommand{})
}
