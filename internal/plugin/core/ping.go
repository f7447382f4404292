package core

import (
	"guild-warden/internal/command"
)

type PingCommand struct{}

func (c *PingCommand) Name() string                   { return "ping" }
func (c *PingCommand) Description() string            { return "Check that the bot is alive" }
func (c *PingCommand) Aliases() []string              { return []string{} }
func (c *PingCommand) Group() string                  { return "core" }
func (c *PingCommand) Category() string               { return "⚙️ Core" }
func (c *PingCommand) Permission() command.PermLevel  { return command.PermPublic }
func (c *PingCommand) Scope() command.Scope           { return command.ScopeAnywhere }

func (c *PingCommand) Actions() []command.Action {
	return []command.Action{
		command.Do(func(ctx *command.Context) error {
			return ctx.Respond(ctx.Translate("core", "pong"))
		}),
	}
}

func (c *PingCommand) Run(ctx *command.Context) error {
	return command.Dispatch(ctx, c)
}

func init() {
	command.MustRegister(&PingCommand{})
}
