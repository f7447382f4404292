package core

import (
	"fmt"
	"strings"

	"guild-warden/internal/command"
	"guild-warden/internal/guildconfig"
)

// ConfigCommand manages the guild's typed settings: a bare `config` lists
// everything, and the get/set/reset subcommands work on single entries.
// `config set` takes the value as the trailing parameter, so multi-word
// values need no quoting.
type ConfigCommand struct{}

func (c *ConfigCommand) Name() string                  { return "config" }
func (c *ConfigCommand) Description() string           { return "Inspect and change server settings" }
func (c *ConfigCommand) Aliases() []string             { return []string{"settings"} }
func (c *ConfigCommand) Group() string                 { return "core" }
func (c *ConfigCommand) Category() string              { return "⚙️ Core" }
func (c *ConfigCommand) Permission() command.PermLevel { return command.PermAdmin }
func (c *ConfigCommand) Scope() command.Scope          { return command.ScopeGuildOnly }

func (c *ConfigCommand) Actions() []command.Action {
	key := command.Arg("key", command.StringParser{})
	return []command.Action{
		command.Do(c.list),
		command.Do1(key, c.get).Sub("get"),
		command.Do2(key, command.Arg("value", command.StringParser{}), c.set).Sub("set"),
		command.Do1(key, c.reset).Sub("reset"),
	}
}

func (c *ConfigCommand) Run(ctx *command.Context) error {
	return command.Dispatch(ctx, c)
}

func (c *ConfigCommand) list(ctx *command.Context) error {
	entries := guildconfig.Default.Entries()
	if len(entries) == 0 {
		return ctx.Respond("No settings are defined.")
	}
	var sb strings.Builder
	for _, e := range entries {
		value, err := e.Display(ctx)
		if err != nil {
			return err
		}
		kind := entryKind(e)
		fmt.Fprintf(&sb, "`%s` (%s) = %s — %s\n", e.Key(), kind, value, e.Description())
	}
	return ctx.Respond(sb.String())
}

func (c *ConfigCommand) get(ctx *command.Context, key string) error {
	entry, ok := guildconfig.Default.Entry(key)
	if !ok {
		return ctx.Respond(ctx.Translate("core", "config_unknown"))
	}
	value, err := entry.Display(ctx)
	if err != nil {
		return err
	}
	return ctx.Respond(fmt.Sprintf("`%s` = %s", entry.Key(), value))
}

func (c *ConfigCommand) set(ctx *command.Context, key, value string) error {
	entry, ok := guildconfig.Default.Entry(key)
	if !ok {
		return ctx.Respond(ctx.Translate("core", "config_unknown"))
	}
	if err := entry.Set(ctx, value); err != nil {
		return ctx.Respond(fmt.Sprintf("Cannot set `%s`: %v", key, err))
	}
	return ctx.Respond(ctx.Translate("core", "config_set"))
}

func (c *ConfigCommand) reset(ctx *command.Context, key string) error {
	entry, ok := guildconfig.Default.Entry(key)
	if !ok {
		return ctx.Respond(ctx.Translate("core", "config_unknown"))
	}
	if err := entry.Reset(ctx); err != nil {
		return err
	}
	return ctx.Respond(ctx.Translate("core", "config_reset"))
}

// kindVisitor labels entries with a short type name for the listing.
type kindVisitor struct {
	kind string
}

func (v *kindVisitor) VisitString(*guildconfig.StringEntry) error { v.kind = "text"; return nil }
func (v *kindVisitor) VisitInt(*guildconfig.IntEntry) error       { v.kind = "number"; return nil }
func (v *kindVisitor) VisitMember(*guildconfig.MemberEntry) error { v.kind = "member"; return nil }

func entryKind(e guildconfig.Entry) string {
	var v kindVisitor
	if err := e.Accept(&v); err != nil || v.kind == "" {
		return "value"
	}
	return v.kind
}

func init() {
	guildconfig.Default.MustRegister(guildconfig.NewStringEntry(
		"greeting", "Message sent to members who join the server", "Welcome!", nil))
	guildconfig.Default.MustRegister(guildconfig.NewMemberEntry(
		"moderator", "Member who receives moderation reports"))
	command.MustRegister(&ConfigCommand{})
}
