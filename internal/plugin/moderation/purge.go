package moderation

import (
	"fmt"

	"guild-warden/internal/command"
	"guild-warden/internal/guildconfig"

	"github.com/bwmarrin/discordgo"
)

var purgeLimit = guildconfig.NewIntEntry(
	"purge_limit", "Maximum number of messages one purge may delete", 50, 1, 200)

type PurgeCommand struct{}

func (c *PurgeCommand) Name() string                  { return "purge" }
func (c *PurgeCommand) Description() string           { return "Bulk-delete recent messages" }
func (c *PurgeCommand) Aliases() []string             { return []string{"clean"} }
func (c *PurgeCommand) Group() string                 { return "moderation" }
func (c *PurgeCommand) Category() string              { return "🛡️ Moderation" }
func (c *PurgeCommand) Permission() command.PermLevel { return command.PermAdmin }
func (c *PurgeCommand) Scope() command.Scope          { return command.ScopeGuildOnly }

func (c *PurgeCommand) Actions() []command.Action {
	count := command.Arg("count", command.IntParser{})
	return []command.Action{
		command.Do1(count, func(ctx *command.Context, n int) error {
			return c.purge(ctx, ctx.Event.ChannelID, n)
		}),
		command.Do2(count, command.Arg("channel", command.ChannelParser{}),
			func(ctx *command.Context, n int, ch *discordgo.Channel) error {
				return c.purge(ctx, ch.ID, n)
			}),
	}
}

func (c *PurgeCommand) Run(ctx *command.Context) error {
	return command.Dispatch(ctx, c)
}

func (c *PurgeCommand) purge(ctx *command.Context, channelID string, n int) error {
	limit, err := purgeLimit.Value(ctx)
	if err != nil {
		return err
	}
	if n < 1 || n > limit {
		return ctx.Respond(fmt.Sprintf("Count must be between 1 and %d.", limit))
	}

	messages, err := ctx.Session.ChannelMessages(channelID, n, "", "", "",
		discordgo.WithContext(ctx.Ctx))
	if err != nil {
		return fmt.Errorf("fetch messages: %w", err)
	}
	ids := make([]string, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}
	if len(ids) == 0 {
		return ctx.Respond("Nothing to delete.")
	}
	if err := ctx.Session.ChannelMessagesBulkDelete(channelID, ids, discordgo.WithContext(ctx.Ctx)); err != nil {
		return fmt.Errorf("bulk delete: %w", err)
	}
	return ctx.Respond(fmt.Sprintf("Deleted %d message(s).", len(ids)))
}

func init() {
	guildconfig.Default.MustRegister(purgeLimit)
	command.MustRegister(&PurgeCommand{})
}
