package command

import (
	"context"

	"guild-warden/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// Translator resolves a namespaced key to human-readable text. Implemented
// by internal/locale; kept as a consumer-side interface so the engine does
// not depend on a concrete bundle format.
type Translator interface {
	Translate(namespace, key string) string
}

// fallbackText backs diagnosis rendering when no translator is wired in
// (tests, the CLI adapter before locale setup).
var fallbackText = map[string]string{
	"command.missing_args":       "Missing arguments",
	"command.parse_failed":       "Failed to parse argument",
	"command.unknown_subcommand": "Unknown subcommand. Check the command usage.",
}

func translate(tr Translator, ns, key string) string {
	if tr != nil {
		if s := tr.Translate(ns, key); s != "" {
			return s
		}
	}
	return fallbackText[ns+"."+key]
}

// Context carries everything one invocation needs. It is created per
// invocation and never shared between invocations.
type Context struct {
	Ctx     context.Context
	Session *discordgo.Session
	Event   *discordgo.MessageCreate // nil outside the gateway adapter
	Tokens  Tokens
	Storage *storage.Storage
	Locale  Translator

	respond func(text string) error
}

// NewContext builds an invocation context. respond may be nil; Respond then
// silently drops output (useful in tests that only assert on dispatch).
func NewContext(ctx context.Context, tokens Tokens, respond func(string) error) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{Ctx: ctx, Tokens: tokens, respond: respond}
}

// Respond delivers text back to wherever the invocation came from.
func (c *Context) Respond(text string) error {
	if c.respond == nil {
		return nil
	}
	return c.respond(text)
}

// Translate renders a namespaced message key with fallback defaults.
func (c *Context) Translate(ns, key string) string {
	return translate(c.Locale, ns, key)
}

// GuildID returns the originating guild, or "" for DMs and non-gateway use.
func (c *Context) GuildID() string {
	if c.Event == nil {
		return ""
	}
	return c.Event.GuildID
}

// AuthorID returns the invoking user's ID when known.
func (c *Context) AuthorID() string {
	if c.Event == nil || c.Event.Author == nil {
		return ""
	}
	return c.Event.Author.ID
}
