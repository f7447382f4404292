package command

import (
	"slices"

	"github.com/bwmarrin/discordgo"
)

// WithAccessControl enforces the command's permission level. Owner-level
// commands are restricted to the configured owner IDs; admin-level commands
// require the Administrator permission in the originating guild.
func WithAccessControl(ownerIDs []string) Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *Context) error {
				switch cmd.Permission() {
				case PermOwner:
					if !slices.Contains(ownerIDs, ctx.AuthorID()) {
						return ctx.Respond(ctx.Translate("command", "owner_only"))
					}
				case PermAdmin:
					if !isAdministrator(ctx) {
						return ctx.Respond(ctx.Translate("command", "admin_only"))
					}
				}
				return cmd.Run(ctx)
			},
		}
	}
}

func isAdministrator(ctx *Context) bool {
	if ctx.Session == nil || ctx.Event == nil || ctx.GuildID() == "" {
		return false
	}
	perms, err := ctx.Session.State.MessagePermissions(ctx.Event.Message)
	if err != nil {
		perms, err = ctx.Session.UserChannelPermissions(ctx.AuthorID(), ctx.Event.ChannelID)
		if err != nil {
			return false
		}
	}
	return perms&discordgo.PermissionAdministrator != 0
}
