package core

import (
	"fmt"
	"strings"

	"guild-warden/internal/command"
)

type HistoryCommand struct{}

func (c *HistoryCommand) Name() string                  { return "history" }
func (c *HistoryCommand) Description() string           { return "Show recent command invocations" }
func (c *HistoryCommand) Aliases() []string             { return []string{} }
func (c *HistoryCommand) Group() string                 { return "core" }
func (c *HistoryCommand) Category() string              { return "⚙️ Core" }
func (c *HistoryCommand) Permission() command.PermLevel { return command.PermAdmin }
func (c *HistoryCommand) Scope() command.Scope          { return command.ScopeGuildOnly }

func (c *HistoryCommand) Actions() []command.Action {
	// The one-argument form comes first: a zero-argument action always
	// binds, so listing it first would shadow `history <count>`.
	return []command.Action{
		command.Do1(command.Arg("count", command.IntParser{}), c.show),
		command.Do(func(ctx *command.Context) error { return c.show(ctx, 10) }),
	}
}

func (c *HistoryCommand) Run(ctx *command.Context) error {
	return command.Dispatch(ctx, c)
}

func (c *HistoryCommand) show(ctx *command.Context, count int) error {
	records, err := ctx.Storage.FetchCommandHistory(ctx.GuildID())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return ctx.Respond("No commands logged yet.")
	}
	if count < 1 {
		count = 1
	}
	if count < len(records) {
		records = records[len(records)-count:]
	}
	var sb strings.Builder
	for _, r := range records {
		fmt.Fprintf(&sb, "%s — %s: `%s %s`\n",
			r.Datetime.Format("2006-01-02 15:04"), r.Username, r.Command, r.Param)
	}
	return ctx.Respond(sb.String())
}

func init() {
	command.MustRegister(&HistoryCommand{})
}
