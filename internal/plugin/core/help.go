package core

import (
	"fmt"
	"strings"

	"guild-warden/internal/command"
)

// HelpCommand has two base actions of different arity: a bare `help` lists
// every command, `help <command>` shows one command's actions and usage.
type HelpCommand struct{}

func (c *HelpCommand) Name() string                  { return "help" }
func (c *HelpCommand) Description() string           { return "List commands or show usage for one" }
func (c *HelpCommand) Aliases() []string             { return []string{"h"} }
func (c *HelpCommand) Group() string                 { return "core" }
func (c *HelpCommand) Category() string              { return "⚙️ Core" }
func (c *HelpCommand) Permission() command.PermLevel { return command.PermPublic }
func (c *HelpCommand) Scope() command.Scope          { return command.ScopeAnywhere }

func (c *HelpCommand) Actions() []command.Action {
	return []command.Action{
		command.Do1(command.Arg("command", command.StringParser{}), c.showOne),
		command.Do(c.listAll),
	}
}

func (c *HelpCommand) Run(ctx *command.Context) error {
	return command.Dispatch(ctx, c)
}

func (c *HelpCommand) listAll(ctx *command.Context) error {
	var sb strings.Builder
	byCategory := map[string][]command.Command{}
	var categories []string
	for _, cmd := range command.All() {
		if _, seen := byCategory[cmd.Category()]; !seen {
			categories = append(categories, cmd.Category())
		}
		byCategory[cmd.Category()] = append(byCategory[cmd.Category()], cmd)
	}
	for _, cat := range categories {
		sb.WriteString("**" + cat + "**\n")
		for _, cmd := range byCategory[cat] {
			fmt.Fprintf(&sb, "`%s` — %s\n", cmd.Name(), cmd.Description())
		}
	}
	return ctx.Respond(sb.String())
}

func (c *HelpCommand) showOne(ctx *command.Context, name string) error {
	cmd, ok := command.Get(name)
	if !ok {
		return ctx.Respond(fmt.Sprintf("No command named `%s`.", name))
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** — %s\n", cmd.Name(), cmd.Description())
	if len(cmd.Aliases()) > 0 {
		fmt.Fprintf(&sb, "Aliases: %s\n", strings.Join(cmd.Aliases(), ", "))
	}
	sb.WriteString("Usage:\n")
	for _, a := range cmd.Actions() {
		usage := a.Usage()
		if usage == "" {
			usage = "(no arguments)"
		}
		fmt.Fprintf(&sb, "`%s %s`\n", cmd.Name(), usage)
	}
	return ctx.Respond(sb.String())
}

func init() {
	command.MustRegister(&HelpCommand{})
}
