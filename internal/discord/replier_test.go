package discord

import (
	"testing"

	"github.com/keshon/prefixkit/pkg/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmbed(t *testing.T) {
	got := renderEmbed(&cmd.Reply{
		Title: "Command: \"Roll\"",
		Body:  "Rolls dice.",
		Color: cmd.ColorPrompt,
		Fields: []cmd.Field{
			{Name: "Prefix", Value: "roll"},
			{Name: "Syntax", Value: "`&dice roll [formula]`"},
		},
	})

	assert.Equal(t, "Command: \"Roll\"", got.Title)
	assert.Equal(t, "Rolls dice.", got.Description)
	assert.Equal(t, 0x61bdff, got.Color)
	require.Len(t, got.Fields, 2)
	assert.Equal(t, "Prefix", got.Fields[0].Name)
	assert.Equal(t, "`&dice roll [formula]`", got.Fields[1].Value)
}

func TestRenderEmbedEmptyBody(t *testing.T) {
	got := renderEmbed(&cmd.Reply{Title: "Ping", Color: cmd.ColorSuccess})
	assert.Equal(t, "Ping", got.Title)
	assert.Empty(t, got.Description)
	assert.Empty(t, got.Fields)
}
