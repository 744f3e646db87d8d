package discord

import (
	"context"

	"github.com/keshon/prefixkit/pkg/cmd"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"
)

// channelReplier sends replies back to the channel a message came from.
// Delivery is best effort: the send waits on the shared limiter, fires once
// and reports the transport error without retrying.
type channelReplier struct {
	bot       *Bot
	session   *discordgo.Session
	channelID string
}

func (r *channelReplier) Send(reply *cmd.Reply) error {
	if err := r.bot.limiter.Wait(context.Background()); err != nil {
		return err
	}
	_, err := r.session.ChannelMessageSendEmbed(r.channelID, renderEmbed(reply))
	return err
}

// renderEmbed maps a transport-neutral reply onto a Discord embed.
func renderEmbed(reply *cmd.Reply) *discordgo.MessageEmbed {
	e := embed.NewEmbed().SetColor(int(reply.Color))
	if reply.Title != "" {
		e.SetTitle(reply.Title)
	}
	if reply.Body != "" {
		e.SetDescription(reply.Body)
	}
	for _, f := range reply.Fields {
		e.AddField(f.Name, f.Value)
	}
	return e.MessageEmbed
}
