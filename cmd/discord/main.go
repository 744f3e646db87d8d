// cmd/discord/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/keshon/prefixkit/internal/commands"
	"github.com/keshon/prefixkit/internal/config"
	"github.com/keshon/prefixkit/internal/discord"
	"github.com/keshon/prefixkit/internal/storage"
	v "github.com/keshon/prefixkit/internal/version"
	"github.com/keshon/prefixkit/pkg/cmd"
)

func main() {
	log.Printf("[INFO] Starting %v bot...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.DiscordToken == "" {
		log.Fatal("[ERR] DISCORD_TOKEN is not set")
	}

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	reg := cmd.NewRegistry(cfg.BotPrefix)
	if err := commands.Register(reg, cfg, store); err != nil {
		log.Fatal(err)
	}

	bot := discord.NewBot(cfg, reg)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
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
