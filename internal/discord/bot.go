package discord

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/keshon/prefixkit/internal/config"
	"github.com/keshon/prefixkit/pkg/cmd"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

// Bot bridges Discord to a command registry: every MessageCreate becomes a
// cmd.MessageEvent offered to the registry, and replies are rendered back as
// embeds. The bot owns no command logic of its own.
type Bot struct {
	dg      *discordgo.Session
	reg     *cmd.Registry
	cfg     *config.Config
	limiter *rate.Limiter
}

// NewBot builds a bot around an already assembled registry.
func NewBot(cfg *config.Config, reg *cmd.Registry) *Bot {
	return &Bot{
		cfg: cfg,
		reg: reg,
		// Outbound replies share one limiter, well under Discord's per-channel cap.
		limiter: rate.NewLimiter(rate.Every(time.Second/5), 5),
	}
}

// Run opens the Discord session and blocks until ctx is done. Commands must be
// registered before calling Run; the registry is read-only from here on.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

// configureIntents configures the Discord intents
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent
}

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	botInfo, err := s.User("@me")
	if err != nil {
		log.Println("[WARN] Error retrieving bot user:", err)
		return
	}
	log.Printf("[INFO] ✅ Bot %v is running with prefix %q (%d commands).",
		botInfo.Username, b.reg.BotPrefix(), len(b.reg.Commands()))
}

// onMessageCreate translates a Discord message into a message event and fans
// it out. Role IDs come straight from the guild member; in DMs the role set is
// empty.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}

	var roles []string
	if m.Member != nil {
		roles = m.Member.Roles
	}

	b.reg.Dispatch(&cmd.MessageEvent{
		Content: m.Content,
		Actor: cmd.Actor{
			ID:    m.Author.ID,
			Name:  m.Author.Username,
			Bot:   m.Author.Bot,
			Roles: roles,
		},
		Replier: &channelReplier{bot: b, session: s, channelID: m.ChannelID},
	})
}
