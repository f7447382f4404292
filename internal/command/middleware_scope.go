package command

// WithScopeCheck enforces the command's declared scope: guild-only commands
// are refused in DMs and vice versa.
func WithScopeCheck() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *Context) error {
				switch cmd.Scope() {
				case ScopeGuildOnly:
					if ctx.GuildID() == "" {
						return ctx.Respond(ctx.Translate("command", "guild_only"))
					}
				case ScopeDMOnly:
					if ctx.GuildID() != "" {
						return ctx.Respond(ctx.Translate("command", "dm_only"))
					}
				}
				return cmd.Run(ctx)
			},
		}
	}
}
