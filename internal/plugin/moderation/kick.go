package moderation

import (
	"fmt"

	"guild-warden/internal/command"

	"github.com/bwmarrin/discordgo"
)

// KickCommand has two overloaded base actions: `kick @user` and
// `kick @user some free-form reason`. The reason is the trailing parameter
// and swallows everything to the end of the message.
type KickCommand struct{}

func (c *KickCommand) Name() string                  { return "kick" }
func (c *KickCommand) Description() string           { return "Remove a member from the server" }
func (c *KickCommand) Aliases() []string             { return []string{} }
func (c *KickCommand) Group() string                 { return "moderation" }
func (c *KickCommand) Category() string              { return "🛡️ Moderation" }
func (c *KickCommand) Permission() command.PermLevel { return command.PermAdmin }
func (c *KickCommand) Scope() command.Scope          { return command.ScopeGuildOnly }

func (c *KickCommand) Actions() []command.Action {
	target := command.Arg("target", command.MemberParser{})
	return []command.Action{
		command.Do2(target, command.Arg("reason", command.StringParser{}), c.kick),
		command.Do1(target, func(ctx *command.Context, member *discordgo.Member) error {
			return c.kick(ctx, member, "")
		}),
	}
}

func (c *KickCommand) Run(ctx *command.Context) error {
	return command.Dispatch(ctx, c)
}

func (c *KickCommand) kick(ctx *command.Context, member *discordgo.Member, reason string) error {
	err := ctx.Session.GuildMemberDeleteWithReason(ctx.GuildID(), member.User.ID, reason,
		discordgo.WithContext(ctx.Ctx))
	if err != nil {
		return fmt.Errorf("kick %s: %w", member.User.ID, err)
	}
	if reason == "" {
		return ctx.Respond(fmt.Sprintf("Kicked **%s**.", member.User.Username))
	}
	return ctx.Respond(fmt.Sprintf("Kicked **%s**: %s", member.User.Username, reason))
}

func init() {
	command.MustRegister(&KickCommand{})
}
