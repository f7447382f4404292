package core

import (
	"fmt"

	"guild-warden/internal/command"
	"guild-warden/internal/version"
)

type AboutCommand struct{}

func (c *AboutCommand) Name() string                  { return "about" }
func (c *AboutCommand) Description() string           { return "Show bot version and build info" }
func (c *AboutCommand) Aliases() []string             { return []string{"version"} }
func (c *AboutCommand) Group() string                 { return "core" }
func (c *AboutCommand) Category() string              { return "⚙️ Core" }
func (c *AboutCommand) Permission() command.PermLevel { return command.PermPublic }
func (c *AboutCommand) Scope() command.Scope          { return command.ScopeAnywhere }

func (c *AboutCommand) Actions() []command.Action {
	return []command.Action{
		command.Do(func(ctx *command.Context) error {
			return ctx.Respond(fmt.Sprintf("%s %s (built %s)",
				version.AppFullName, version.Version, version.BuildDate))
		}),
	}
}

func (c *AboutCommand) Run(ctx *command.Context) error {
	return command.Dispatch(ctx, c)
}

func init() {
	command.MustRegister(&AboutCommand{})
}
