// cmd/discord/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "guild-warden/internal/plugin/core"
	_ "guild-warden/internal/plugin/moderation"
	_ "guild-warden/internal/plugin/notes"

	"guild-warden/internal/command"
	"guild-warden/internal/config"
	"guild-warden/internal/discord"
	"guild-warden/internal/storage"
	v "guild-warden/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v bot...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.New(ctx, cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		// The store's autosave goroutine exits on cancel; Close waits for it.
		cancel()
		_ = store.Close()
	}()

	go storage.RunHistoryPruner(ctx, store)

	// Last listed is outermost: group check runs first, the history log last,
	// right before dispatch.
	command.WrapAll(
		command.WithCommandLogger(),
		command.WithAccessControl(cfg.OwnerIDs),
		command.WithScopeCheck(),
		command.WithGroupAccessCheck(),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := discord.StartBot(ctx, cfg, store); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
