package command

import (
	"log"
)

// WithCommandLogger records each invocation to the guild's command history
// before running it. History failures are logged and never block the command.
func WithCommandLogger() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *Context) error {
				if ctx.Storage != nil && ctx.GuildID() != "" && ctx.Event != nil {
					username := ""
					if ctx.Event.Author != nil {
						username = ctx.Event.Author.Username
					}
					err := ctx.Storage.AppendCommandToHistory(ctx.GuildID(), ctx.Event.ChannelID,
						ctx.AuthorID(), username, cmd.Name(), ctx.Tokens.Tail(1))
					if err != nil {
						log.Println("[WARN] Failed to record command history:", err)
					}
				}
				return cmd.Run(ctx)
			},
		}
	}
}
