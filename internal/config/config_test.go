package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	for name, b := range map[string]Balance{"default": Default(), "casual": Casual(), "hard": Hard()} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, b.Validate())
		})
	}
}

func TestVideoEnergyCost(t *testing.T) {
	b := Default()
	assert.Equal(t, 25, b.VideoEnergyCost(false))
	assert.Equal(t, 20, b.VideoEnergyCost(true))
}

func TestChannelLimit(t *testing.T) {
	b := Default()
	assert.Equal(t, 3, b.ChannelLimit(false))
	assert.Equal(t, 4, b.ChannelLimit(true))
}

func TestLoadBalance_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
energy_per_video: 30
upload:
  viral_chance: 0.5
minigames:
  stream_seconds: 90
`), 0o644))

	b, err := LoadBalance(path, Default())
	require.NoError(t, err)
	assert.Equal(t, 30, b.EnergyPerVideo)
	assert.Equal(t, 0.5, b.Upload.ViralChance)
	assert.Equal(t, 90, b.Minigames.StreamSeconds)
	// untouched keys keep the preset
	assert.Equal(t, 50, b.EnergyRegenPerDay)
	assert.Equal(t, 0.05, b.Upload.WatchHoursPerView)
}

func TestLoadBalance_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yml")
	require.NoError(t, os.WriteFile(path, []byte("premium_energy_discount: 1.5\n"), 0o644))

	_, err := LoadBalance(path, Default())
	require.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DIFFICULTY", "hard")
	t.Setenv("ENERGY_REGEN_PER_DAY", "40")

	b := FromEnv()
	assert.Equal(t, 30, b.EnergyPerVideo)
	assert.Equal(t, 40, b.EnergyRegenPerDay)
}

func TestLoadServer_Defaults(t *testing.T) {
	t.Setenv("STORE_TYPE", " SQLite ")
	cfg, err := LoadServer()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:42069", cfg.HTTP.Address())
	assert.Equal(t, "sqlite", cfg.Store.Type)
	assert.Equal(t, "localhost:6379", cfg.Store.RedisAddress())
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromEnv_IgnoresBadValuesAndKeepsPremiumAboveFree(t *testing.T) {
	t.Setenv("STREAM_COST", "25")
	t.Setenv("COMMUNITY_COST", "-3")
	t.Setenv("THUMBNAIL_COST", "lots")
	t.Setenv("MAX_CHANNELS", "9")

	b := FromEnv()
	def := Default()
	assert.Equal(t, 25, b.Minigames.StreamCost)
	assert.Equal(t, def.Minigames.CommunityCost, b.Minigames.CommunityCost)
	assert.Equal(t, def.Minigames.ThumbnailCost, b.Minigames.ThumbnailCost)
	assert.Equal(t, 9, b.MaxChannels)
	assert.Equal(t, 9, b.PremiumMaxChannels)
}
