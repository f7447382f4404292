package command

// WithGroupAccessCheck silently drops invocations of commands whose group
// has been disabled for the guild. No reply is sent; a disabled group should
// look like the command does not exist.
func WithGroupAccessCheck() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *Context) error {
				if cmd.Group() != "" && ctx.Storage != nil && ctx.GuildID() != "" {
					disabled, err := ctx.Storage.IsGroupDisabled(ctx.GuildID(), cmd.Group())
					if err == nil && disabled {
						return nil
					}
				}
				return cmd.Run(ctx)
			},
		}
	}
}
