// Package notes provides per-user notes, exercising subcommand routing:
// every action hangs off an alias, there is no base action, so `note`
// without a known subcommand reports unknown-subcommand usage.
package notes

import (
	"fmt"
	"strings"

	"guild-warden/internal/command"
)

type NoteCommand struct{}

func (c *NoteCommand) Name() string                  { return "note" }
func (c *NoteCommand) Description() string           { return "Keep personal notes (add/list/del)" }
func (c *NoteCommand) Aliases() []string             { return []string{"notes"} }
func (c *NoteCommand) Group() string                 { return "notes" }
func (c *NoteCommand) Category() string              { return "📝 Notes" }
func (c *NoteCommand) Permission() command.PermLevel { return command.PermPublic }
func (c *NoteCommand) Scope() command.Scope          { return command.ScopeGuildOnly }

func (c *NoteCommand) Actions() []command.Action {
	return []command.Action{
		command.Do1(command.Arg("text", command.StringParser{}), c.add).Sub("add"),
		command.Do(c.list).Sub("list"),
		command.Do1(command.Arg("number", command.IntParser{}), c.del).Sub("del"),
	}
}

func (c *NoteCommand) Run(ctx *command.Context) error {
	return command.Dispatch(ctx, c)
}

func (c *NoteCommand) add(ctx *command.Context, text string) error {
	n, err := ctx.Storage.AddNote(ctx.GuildID(), ctx.AuthorID(), text)
	if err != nil {
		return err
	}
	return ctx.Respond(fmt.Sprintf("Saved note #%d.", n))
}

func (c *NoteCommand) list(ctx *command.Context) error {
	notes, err := ctx.Storage.ListNotes(ctx.GuildID(), ctx.AuthorID())
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		return ctx.Respond("You have no notes.")
	}
	var sb strings.Builder
	for i, n := range notes {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, n)
	}
	return ctx.Respond(sb.String())
}

func (c *NoteCommand) del(ctx *command.Context, number int) error {
	if err := ctx.Storage.DeleteNote(ctx.GuildID(), ctx.AuthorID(), number); err != nil {
		return ctx.Respond(err.Error())
	}
	return ctx.Respond(fmt.Sprintf("Deleted note #%d.", number))
}

func init() {
	command.MustRegister(&NoteCommand{})
}
