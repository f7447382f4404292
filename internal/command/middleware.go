package command

type Middleware func(Command) Command

// WrappedCommand overrides Run while delegating identity to the inner
// command. Middlewares build on it; embedding keeps Actions and the other
// getters reachable through the wrapper.
type WrappedCommand struct {
	Command
	Wrap func(ctx *Context) error
}

func (w *WrappedCommand) Run(ctx *Context) error {
	if w.Wrap != nil {
		return w.Wrap(ctx)
	}
	return w.Command.Run(ctx)
}

func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}
