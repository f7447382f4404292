// cmd/cli/main.go
//
// A local REPL that drives the same command registry and dispatch engine as
// the gateway, without connecting to Discord. Commands that need a session
// or a guild will refuse politely; everything else works.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	_ "guild-warden/internal/plugin/core"
	_ "guild-warden/internal/plugin/notes"

	"guild-warden/internal/command"
	"guild-warden/internal/config"
	"guild-warden/internal/locale"
	"guild-warden/internal/storage"
)

func main() {
	cfg, err := config.NewLocal()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	store, err := storage.New(ctx, cfg.StoragePath)
	if err != nil {
		cancel()
		log.Fatal(err)
	}
	defer func() {
		// The store's autosave goroutine exits on cancel; Close waits for it.
		cancel()
		_ = store.Close()
	}()

	loc := locale.New(cfg.Locale)

	fmt.Println("guild-warden REPL — type a command name, or 'exit'")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "exit" || line == "quit" {
			break
		}

		tokens := command.NewTokens(line)
		if tokens.Count() == 0 {
			continue
		}
		name, _ := tokens.Get(0)
		cmd, ok := command.Get(name)
		if !ok {
			fmt.Printf("unknown command: %s\n", name)
			continue
		}

		cctx := command.NewContext(ctx, tokens, func(text string) error {
			fmt.Println(text)
			return nil
		})
		cctx.Storage = store
		cctx.Locale = loc

		if err := cmd.Run(cctx); err != nil {
			if diag, ok := command.IsDiagnosis(err); ok {
				fmt.Println(diag.UserMessage(loc))
			} else {
				fmt.Println("error:", err)
			}
		}
	}
}
