package config

import "fmt"

// Balance holds gameplay balance configuration
type Balance struct {
	// Energy
	StartingEnergy        int     `yaml:"starting_energy" json:"starting_energy"`
	EnergyPerVideo        int     `yaml:"energy_per_video" json:"energy_per_video"`
	PremiumEnergyDiscount float64 `yaml:"premium_energy_discount" json:"premium_energy_discount"`
	EnergyRegenPerDay     int     `yaml:"energy_regen_per_day" json:"energy_regen_per_day"`

	// Monetization
	MonetizationSubscribers   int     `yaml:"monetization_subscribers" json:"monetization_subscribers"`
	MonetizationWatchHours    float64 `yaml:"monetization_watch_hours" json:"monetization_watch_hours"`
	MoneyPerThousandViews     float64 `yaml:"money_per_thousand_views" json:"money_per_thousand_views"`
	PremiumEarningsMultiplier float64 `yaml:"premium_earnings_multiplier" json:"premium_earnings_multiplier"`

	// Upload performance
	Upload UploadBalance `yaml:"upload" json:"upload"`

	// Day advance growth
	DailyViewRate   float64 `yaml:"daily_view_rate" json:"daily_view_rate"`
	DailySubRate    float64 `yaml:"daily_sub_rate" json:"daily_sub_rate"`
	DailyJitterLow  float64 `yaml:"daily_jitter_low" json:"daily_jitter_low"`
	DailyJitterHigh float64 `yaml:"daily_jitter_high" json:"daily_jitter_high"`

	// Channels
	MaxChannels        int `yaml:"max_channels" json:"max_channels"`
	PremiumMaxChannels int `yaml:"premium_max_channels" json:"premium_max_channels"`

	Minigames MinigameBalance `yaml:"minigames" json:"minigames"`
}

type UploadBalance struct {
	BaseViews              int     `yaml:"base_views" json:"base_views"`
	BaseViewsPerSubscriber float64 `yaml:"base_views_per_subscriber" json:"base_views_per_subscriber"`
	BaseViewsSpread        float64 `yaml:"base_views_spread" json:"base_views_spread"`
	PremiumViewsMultiplier float64 `yaml:"premium_views_multiplier" json:"premium_views_multiplier"`
	ViralChance            float64 `yaml:"viral_chance" json:"viral_chance"`
	ViralMin               float64 `yaml:"viral_min" json:"viral_min"`
	ViralMax               float64 `yaml:"viral_max" json:"viral_max"`
	MinViews               int     `yaml:"min_views" json:"min_views"`
	MinViewsSpread         int     `yaml:"min_views_spread" json:"min_views_spread"`
	SubRateLow             float64 `yaml:"sub_rate_low" json:"sub_rate_low"`
	SubRateHigh            float64 `yaml:"sub_rate_high" json:"sub_rate_high"`
	CommunityPerPoint      float64 `yaml:"community_per_point" json:"community_per_point"`
	WatchHoursPerView      float64 `yaml:"watch_hours_per_view" json:"watch_hours_per_view"`
}

type MinigameBalance struct {
	CommunityCost      int `yaml:"community_cost" json:"community_cost"`
	CommunityRounds    int `yaml:"community_rounds" json:"community_rounds"`
	CommunityMaxPoints int `yaml:"community_max_points" json:"community_max_points"`

	ThumbnailCost         int     `yaml:"thumbnail_cost" json:"thumbnail_cost"`
	ThumbnailSeconds      int     `yaml:"thumbnail_seconds" json:"thumbnail_seconds"`
	ThumbnailMaxScore     int     `yaml:"thumbnail_max_score" json:"thumbnail_max_score"`
	ThumbnailMaxCTR       float64 `yaml:"thumbnail_max_ctr" json:"thumbnail_max_ctr"`
	ThumbnailReelSize     int     `yaml:"thumbnail_reel_size" json:"thumbnail_reel_size"`
	ThumbnailReelInterval int     `yaml:"thumbnail_reel_interval" json:"thumbnail_reel_interval"`

	StreamCost             int     `yaml:"stream_cost" json:"stream_cost"`
	StreamCountdownSeconds int     `yaml:"stream_countdown_seconds" json:"stream_countdown_seconds"`
	StreamSeconds          int     `yaml:"stream_seconds" json:"stream_seconds"`
	StreamInitialHype      int     `yaml:"stream_initial_hype" json:"stream_initial_hype"`
	StreamMaxHype          int     `yaml:"stream_max_hype" json:"stream_max_hype"`
	StreamFailHype         int     `yaml:"stream_fail_hype" json:"stream_fail_hype"`
	StreamHypeDecay        int     `yaml:"stream_hype_decay" json:"stream_hype_decay"`
	StreamPromptGapMin     int     `yaml:"stream_prompt_gap_min" json:"stream_prompt_gap_min"`
	StreamPromptGapMax     int     `yaml:"stream_prompt_gap_max" json:"stream_prompt_gap_max"`
	StreamMaxViews         float64 `yaml:"stream_max_views" json:"stream_max_views"`
	StreamMaxSubs          float64 `yaml:"stream_max_subs" json:"stream_max_subs"`
	StreamMaxMoney         float64 `yaml:"stream_max_money" json:"stream_max_money"`
}

// Default returns the default balance configuration
func Default() Balance {
	return Balance{
		StartingEnergy:            100,
		EnergyPerVideo:            25,
		PremiumEnergyDiscount:     0.2,
		EnergyRegenPerDay:         50,
		MonetizationSubscribers:   1000,
		MonetizationWatchHours:    1000,
		MoneyPerThousandViews:     1,
		PremiumEarningsMultiplier: 1.5,
		Upload: UploadBalance{
			BaseViews:              50,
			BaseViewsPerSubscriber: 0.1,
			BaseViewsSpread:        100,
			PremiumViewsMultiplier: 1.2,
			ViralChance:            0.05,
			ViralMin:               2,
			ViralMax:               5,
			MinViews:               10,
			MinViewsSpread:         50,
			SubRateLow:             0.005,
			SubRateHigh:            0.015,
			CommunityPerPoint:      0.001,
			WatchHoursPerView:      0.05,
		},
		DailyViewRate:      0.05,
		DailySubRate:       0.01,
		DailyJitterLow:     0.75,
		DailyJitterHigh:    1.25,
		MaxChannels:        3,
		PremiumMaxChannels: 4,
		Minigames: MinigameBalance{
			CommunityCost:          10,
			CommunityRounds:        5,
			CommunityMaxPoints:     25,
			ThumbnailCost:          15,
			ThumbnailSeconds:       45,
			ThumbnailMaxScore:      50,
			ThumbnailMaxCTR:        0.05,
			ThumbnailReelSize:      5,
			ThumbnailReelInterval:  3,
			StreamCost:             20,
			StreamCountdownSeconds: 3,
			StreamSeconds:          60,
			StreamInitialHype:      50,
			StreamMaxHype:          100,
			StreamFailHype:         25,
			StreamHypeDecay:        1,
			StreamPromptGapMin:     5,
			StreamPromptGapMax:     10,
			StreamMaxViews:         1.20,
			StreamMaxSubs:          1.15,
			StreamMaxMoney:         1.10,
		},
	}
}

// Casual returns easier balance for casual difficulty
func Casual() Balance {
	cfg := Default()
	cfg.EnergyPerVideo = 20
	cfg.EnergyRegenPerDay = 75
	cfg.Upload.ViralChance = 0.08
	cfg.Minigames.StreamFailHype = 15
	return cfg
}

// Hard returns harder balance for experienced players
func Hard() Balance {
	cfg := Default()
	cfg.EnergyPerVideo = 30
	cfg.EnergyRegenPerDay = 35
	cfg.Upload.ViralChance = 0.03
	cfg.MonetizationWatchHours = 4000
	cfg.Minigames.StreamFailHype = 30
	return cfg
}

// Preset resolves a difficulty name. Unknown names fall back to Default.
func Preset(name string) Balance {
	switch name {
	case "casual":
		return Casual()
	case "hard":
		return Hard()
	default:
		return Default()
	}
}

// VideoEnergyCost is the upload cost after the premium discount.
func (b Balance) VideoEnergyCost(premium bool) int {
	if !premium {
		return b.EnergyPerVideo
	}
	return int(float64(b.EnergyPerVideo) * (1 - b.PremiumEnergyDiscount))
}

func (b Balance) ChannelLimit(premium bool) int {
	if premium {
		return b.PremiumMaxChannels
	}
	return b.MaxChannels
}

// Validate rejects values that would break the simulation invariants.
func (b Balance) Validate() error {
	switch {
	case b.StartingEnergy <= 0:
		return fmt.Errorf("starting_energy must be positive")
	case b.EnergyPerVideo < 0:
		return fmt.Errorf("energy_per_video must not be negative")
	case b.PremiumEnergyDiscount < 0 || b.PremiumEnergyDiscount >= 1:
		return fmt.Errorf("premium_energy_discount must be in [0,1)")
	case b.EnergyRegenPerDay < 0:
		return fmt.Errorf("energy_regen_per_day must not be negative")
	case b.Upload.ViralMax < b.Upload.ViralMin:
		return fmt.Errorf("upload.viral_max must be >= viral_min")
	case b.Upload.SubRateHigh < b.Upload.SubRateLow:
		return fmt.Errorf("upload.sub_rate_high must be >= sub_rate_low")
	case b.DailyJitterHigh < b.DailyJitterLow:
		return fmt.Errorf("daily_jitter_high must be >= daily_jitter_low")
	case b.MaxChannels <= 0 || b.PremiumMaxChannels < b.MaxChannels:
		return fmt.Errorf("channel limits are inconsistent")
	case b.Minigames.CommunityRounds <= 0:
		return fmt.Errorf("minigames.community_rounds must be positive")
	case b.Minigames.ThumbnailSeconds <= 0 || b.Minigames.ThumbnailMaxScore <= 0:
		return fmt.Errorf("thumbnail timing and max score must be positive")
	case b.Minigames.ThumbnailReelSize < 3 || b.Minigames.ThumbnailReelInterval <= 0:
		return fmt.Errorf("thumbnail reel must hold at least one component per category")
	case b.Minigames.StreamSeconds <= 0 || b.Minigames.StreamMaxHype <= 0:
		return fmt.Errorf("stream timing and max hype must be positive")
	case b.Minigames.StreamPromptGapMax < b.Minigames.StreamPromptGapMin || b.Minigames.StreamPromptGapMin <= 0:
		return fmt.Errorf("stream prompt gap is inconsistent")
	}
	return nil
}
