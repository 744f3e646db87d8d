package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	// t.Setenv registers the restore; the variables must be absent for the
	// defaults to apply.
	t.Setenv("BOT_PREFIX", "x")
	t.Setenv("STORAGE_PATH", "x")
	os.Unsetenv("BOT_PREFIX")
	os.Unsetenv("STORAGE_PATH")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "&", cfg.BotPrefix)
	assert.Equal(t, "datastore.json", cfg.StoragePath)
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token123")
	t.Setenv("BOT_PREFIX", "!")
	t.Setenv("MOD_ROLE_ID", "42")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "token123", cfg.DiscordToken)
	assert.Equal(t, "!", cfg.BotPrefix)
	assert.Equal(t, "42", cfg.ModRoleID)
}
