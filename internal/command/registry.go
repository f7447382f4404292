package command

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

var registry = map[string]Command{}

// Register validates a command, applies middlewares (last listed is
// outermost) and stores it under its name and aliases, case-insensitively.
func Register(cmd Command, mws ...Middleware) error {
	if err := Validate(cmd); err != nil {
		return fmt.Errorf("register command: %w", err)
	}

	names := append([]string{cmd.Name()}, cmd.Aliases()...)
	for _, n := range names {
		if _, exists := registry[strings.ToLower(n)]; exists {
			return fmt.Errorf("register %q: %w", n, ErrDuplicateName)
		}
	}

	wrapped := ApplyMiddlewares(cmd, mws...)
	for _, n := range names {
		registry[strings.ToLower(n)] = wrapped
	}
	return nil
}

// MustRegister registers a command or aborts the process. Meant for plugin
// init() where a bad definition should fail fast at startup.
func MustRegister(cmd Command, mws ...Middleware) {
	if err := Register(cmd, mws...); err != nil {
		log.Fatalf("[ERR] %v", err)
	}
}

// WrapAll re-wraps every registered command with the given middlewares.
// Called once from main after all plugins have registered; a command stored
// under several aliases is wrapped once.
func WrapAll(mws ...Middleware) {
	wrapped := map[Command]Command{}
	for name, cmd := range registry {
		w, ok := wrapped[cmd]
		if !ok {
			w = ApplyMiddlewares(cmd, mws...)
			wrapped[cmd] = w
		}
		registry[name] = w
	}
}

// Get returns the command registered under name (or an alias).
func Get(name string) (Command, bool) {
	cmd, ok := registry[strings.ToLower(name)]
	return cmd, ok
}

// All returns every registered command once, sorted by name.
func All() []Command {
	seen := map[string]bool{}
	list := make([]Command, 0, len(registry))
	for _, cmd := range registry {
		if seen[cmd.Name()] {
			continue
		}
		list = append(list, cmd)
		seen[cmd.Name()] = true
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}
