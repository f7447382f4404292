package discord

import (
	"context"
	"fmt"
	"log"

	"guild-warden/internal/config"
	"guild-warden/internal/locale"
	"guild-warden/internal/storage"
	"guild-warden/pkg/retrylimit"

	"github.com/bwmarrin/discordgo"
)

// Bot owns the gateway session and routes incoming messages into the
// command engine.
type Bot struct {
	dg      *discordgo.Session
	storage *storage.Storage
	cfg     *config.Config
	locale  *locale.Locale
	ctx     context.Context

	apiLimiter *retrylimit.AdaptiveLimiter
}

// StartBot connects to Discord and blocks until ctx is done.
func StartBot(ctx context.Context, cfg *config.Config, store *storage.Storage) error {
	b := &Bot{
		cfg:        cfg,
		storage:    store,
		locale:     locale.New(cfg.Locale),
		ctx:        ctx,
		apiLimiter: retrylimit.NewAdaptiveLimiter(5, 1, 20, 1, 0.5),
	}
	if err := b.run(ctx, cfg.DiscordToken); err != nil {
		return fmt.Errorf("bot run error: %w", err)
	}
	return nil
}

func (b *Bot) run(ctx context.Context, token string) error {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	// Gateway connects fail transiently often enough to deserve a retry.
	err = retrylimit.WithRetryMax(ctx, func() error {
		return dg.Open()
	}, b.apiLimiter, 5)
	if err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] Shutdown signal received. Closing gateway...")
	return nil
}

func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] Logged in as %s#%s (%d guild(s))",
		r.User.Username, r.User.Discriminator, len(r.Guilds))
}
