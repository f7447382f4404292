package discord

import (
	"log"
	"strings"

	"guild-warden/internal/command"

	"github.com/bwmarrin/discordgo"
)

// onMessageCreate turns a prefixed message into a command invocation:
// strip the prefix, tokenize, look the command up by token 0, dispatch.
// Unknown command names are ignored silently; dispatch diagnoses are
// rendered for the user; handler errors are logged and answered generically.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}

	prefix := b.prefixFor(m.GuildID)
	if !strings.HasPrefix(m.Content, prefix) {
		return
	}

	tokens := command.NewTokens(strings.TrimPrefix(m.Content, prefix))
	if tokens.Count() == 0 {
		return
	}

	name, _ := tokens.Get(0)
	cmd, ok := command.Get(name)
	if !ok {
		return
	}

	cctx := command.NewContext(b.ctx, tokens, func(text string) error {
		_, err := s.ChannelMessageSend(m.ChannelID, text)
		return err
	})
	cctx.Session = s
	cctx.Event = m
	cctx.Storage = b.storage
	cctx.Locale = b.locale

	if err := cmd.Run(cctx); err != nil {
		if diag, ok := command.IsDiagnosis(err); ok {
			if rerr := cctx.Respond(diag.UserMessage(b.locale)); rerr != nil {
				log.Println("[WARN] Failed to deliver diagnosis:", rerr)
			}
			return
		}
		log.Printf("[ERR] Command %s failed: %v", cmd.Name(), err)
		if rerr := cctx.Respond(b.locale.Translate("command", "handler_failed")); rerr != nil {
			log.Println("[WARN] Failed to deliver error reply:", rerr)
		}
	}
}

// prefixFor returns the guild's configured prefix, falling back to the
// global one. DMs always use the global prefix.
func (b *Bot) prefixFor(guildID string) string {
	if guildID != "" && b.storage != nil {
		if p, err := b.storage.GetPrefix(guildID); err == nil && p != "" {
			return p
		}
	}
	return b.cfg.CommandPrefix
}
