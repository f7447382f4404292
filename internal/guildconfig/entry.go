// Package guildconfig defines typed, validated per-guild settings. Entries
// are declared by plugins, stored as raw strings in guild storage, and read
// back through the entry's type. A visitor allows per-type rendering without
// switching on concrete types at call sites.
package guildconfig

import (
	"fmt"

	"guild-warden/internal/command"
)

// Entry is one configurable setting for a guild.
type Entry interface {
	Key() string
	Description() string
	// Display renders the current value (or the default) for the guild.
	Display(ctx *command.Context) (string, error)
	// Set validates raw user input and persists it.
	Set(ctx *command.Context, input string) error
	// Reset removes the stored value so the default applies again.
	Reset(ctx *command.Context) error
	Accept(v Visitor) error
}

// Visitor dispatches on the concrete entry type.
type Visitor interface {
	VisitString(e *StringEntry) error
	VisitInt(e *IntEntry) error
	VisitMember(e *MemberEntry) error
}

func requireGuild(ctx *command.Context) (string, error) {
	if ctx.Storage == nil {
		return "", fmt.Errorf("no storage attached to this invocation")
	}
	guildID := ctx.GuildID()
	if guildID == "" {
		return "", fmt.Errorf("guild settings are only available inside a server")
	}
	return guildID, nil
}

func resetValue(ctx *command.Context, key string) error {
	guildID, err := requireGuild(ctx)
	if err != nil {
		return err
	}
	return ctx.Storage.ResetConfigValue(guildID, key)
}
