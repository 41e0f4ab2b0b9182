package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("DISCORD_CLIENT_ID", "12345")
	t.Setenv("STORAGE_BACKEND", "json")
	t.Setenv("DATA_DIR", "/tmp/bot-data")
	t.Setenv("PORT", "8080")

	require.NoError(t, LoadConfig())

	assert.Equal(t, "test-token", Cfg.Token)
	assert.Equal(t, "12345", Cfg.ClientID)
	assert.Equal(t, "json", Cfg.Storage.Backend)
	assert.Equal(t, "/tmp/bot-data", Cfg.Storage.DataDir)
	assert.Equal(t, 8080, Cfg.Port)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("DISCORD_CLIENT_ID", "12345")
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("PORT", "")

	require.NoError(t, LoadConfig())

	assert.Equal(t, "sqlite", Cfg.Storage.Backend)
	assert.Equal(t, 3000, Cfg.Port)
	assert.Equal(t, []string{"Coaches", "Moderators"}, Cfg.Points.AwardRoles)
}

func TestLoadConfigRequiresCredentials(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DISCORD_CLIENT_ID", "12345")
	assert.Error(t, LoadConfig())

	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("DISCORD_CLIENT_ID", "")
	assert.Error(t, LoadConfig())
}
