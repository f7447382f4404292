package command

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Built-in parsers. Plugins may define their own by implementing
// TypedParser; these cover the argument types the bundled plugins need.

// StringParser accepts any token verbatim. As the last parameter of an
// action it receives the rejoined tail, so it doubles as a free-form text
// argument without quoting.
type StringParser struct{}

func (StringParser) TypeName() string { return "string" }

func (StringParser) Parse(_ *Context, token string) (string, error) {
	return token, nil
}

// IntParser parses a base-10 integer.
type IntParser struct{}

func (IntParser) TypeName() string { return "int" }

func (IntParser) Parse(_ *Context, token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("`%s` is not a valid number", token)
	}
	return n, nil
}

// BoolParser accepts the usual toggles: true/false, yes/no, on/off.
type BoolParser struct{}

func (BoolParser) TypeName() string { return "bool" }

func (BoolParser) Parse(_ *Context, token string) (bool, error) {
	switch strings.ToLower(token) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("`%s` is not a valid toggle (use on/off)", token)
}

// DurationParser parses Go duration syntax (e.g. 90s, 5m, 2h30m).
type DurationParser struct{}

func (DurationParser) TypeName() string { return "duration" }

func (DurationParser) Parse(_ *Context, token string) (time.Duration, error) {
	d, err := time.ParseDuration(token)
	if err != nil {
		return 0, fmt.Errorf("`%s` is not a valid duration (try 30s, 5m, 2h)", token)
	}
	return d, nil
}

// MemberParser resolves a guild member from a mention (<@id> / <@!id>) or a
// raw user ID. It consults the session state cache first and falls back to
// the API, so it can suspend; the binder's sequential contract keeps lookups
// from firing for arguments past a failure point.
type MemberParser struct{}

func (MemberParser) TypeName() string { return "member" }

func (MemberParser) Parse(ctx *Context, token string) (*discordgo.Member, error) {
	id := stripMention(token, "@")
	if id == "" {
		return nil, fmt.Errorf("`%s` is not a user mention or ID", token)
	}
	if ctx.Session == nil || ctx.GuildID() == "" {
		return nil, fmt.Errorf("member lookup is only available in a guild")
	}
	member, err := ctx.Session.State.Member(ctx.GuildID(), id)
	if err == nil {
		return member, nil
	}
	member, err = ctx.Session.GuildMember(ctx.GuildID(), id, discordgo.WithContext(ctx.Ctx))
	if err != nil {
		return nil, fmt.Errorf("no member found for `%s`", token)
	}
	return member, nil
}

// ChannelParser resolves a channel from a mention (<#id>) or a raw ID.
type ChannelParser struct{}

func (ChannelParser) TypeName() string { return "channel" }

func (ChannelParser) Parse(ctx *Context, token string) (*discordgo.Channel, error) {
	id := stripMention(token, "#")
	if id == "" {
		return nil, fmt.Errorf("`%s` is not a channel mention or ID", token)
	}
	if ctx.Session == nil {
		return nil, fmt.Errorf("channel lookup requires an active session")
	}
	channel, err := ctx.Session.State.Channel(id)
	if err == nil {
		return channel, nil
	}
	channel, err = ctx.Session.Channel(id, discordgo.WithContext(ctx.Ctx))
	if err != nil {
		return nil, fmt.Errorf("no channel found for `%s`", token)
	}
	return channel, nil
}

// stripMention extracts the snowflake from <sigil id>, <sigil!id>, or a bare
// numeric ID. Returns "" when the token is neither.
func stripMention(token, sigil string) string {
	id := token
	if strings.HasPrefix(id, "<"+sigil) && strings.HasSuffix(id, ">") {
		id = strings.TrimSuffix(strings.TrimPrefix(id, "<"+sigil), ">")
		id = strings.TrimPrefix(id, "!")
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return ""
		}
	}
	if id == "" {
		return ""
	}
	return id
}
