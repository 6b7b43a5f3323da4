package config

import (
	"os"
	"strconv"
	"strings"
)

// intOverrides maps an env var to the balance knob it replaces. Unset,
// malformed or non-positive values leave the preset alone.
var intOverrides = []struct {
	key   string
	field func(*Balance) *int
}{
	{"STARTING_ENERGY", func(b *Balance) *int { return &b.StartingEnergy }},
	{"ENERGY_PER_VIDEO", func(b *Balance) *int { return &b.EnergyPerVideo }},
	{"ENERGY_REGEN_PER_DAY", func(b *Balance) *int { return &b.EnergyRegenPerDay }},
	{"MONETIZATION_SUBSCRIBERS", func(b *Balance) *int { return &b.MonetizationSubscribers }},
	{"COMMUNITY_COST", func(b *Balance) *int { return &b.Minigames.CommunityCost }},
	{"THUMBNAIL_COST", func(b *Balance) *int { return &b.Minigames.ThumbnailCost }},
	{"STREAM_COST", func(b *Balance) *int { return &b.Minigames.StreamCost }},
}

// FromEnv starts from the DIFFICULTY preset and applies env overrides.
func FromEnv() Balance {
	cfg := Preset(os.Getenv("DIFFICULTY"))
	for _, o := range intOverrides {
		if v, ok := positiveEnv(o.key); ok {
			*o.field(&cfg) = v
		}
	}
	// premium never gets fewer slots than free
	if v, ok := positiveEnv("MAX_CHANNELS"); ok {
		cfg.MaxChannels = v
		cfg.PremiumMaxChannels = max(cfg.PremiumMaxChannels, v)
	}
	return cfg
}

func positiveEnv(key string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
