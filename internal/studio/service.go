// Package studio is the application layer: it loads a channel, runs a game
// rule against it, pays out achievements and saves the result, one channel
// at a time.
package studio

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/thedidscuf/GameYoutube/internal/achievement"
	"github.com/thedidscuf/GameYoutube/internal/config"
	"github.com/thedidscuf/GameYoutube/internal/economy"
	"github.com/thedidscuf/GameYoutube/internal/game"
	"github.com/thedidscuf/GameYoutube/internal/minigame"
	"github.com/thedidscuf/GameYoutube/internal/model"
	"github.com/thedidscuf/GameYoutube/internal/store"

	"github.com/rs/zerolog"
)

type Options struct {
	Engine  game.Engine
	Repo    *store.Repository
	Logger  zerolog.Logger
	Metrics *Metrics
	// Premium is decided outside the game, e.g. by deployment config.
	Premium bool
}

type Service struct {
	engine  game.Engine
	repo    *store.Repository
	log     zerolog.Logger
	metrics *Metrics
	premium bool

	// catalogMu serializes create and delete so the channel limit holds.
	catalogMu sync.Mutex
	statsMu   sync.Mutex

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	sessMu    sync.Mutex
	sessions  map[string]minigame.Session
	byChannel map[string]string
}

func NewService(opts Options) *Service {
	m := opts.Metrics
	if m == nil {
		m = NewMetrics(nil)
	}
	return &Service{
		engine:    opts.Engine,
		repo:      opts.Repo,
		log:       opts.Logger,
		metrics:   m,
		premium:   opts.Premium,
		locks:     map[string]*sync.Mutex{},
		sessions:  map[string]minigame.Session{},
		byChannel: map[string]string{},
	}
}

// Outcome is what every mutating call returns: the rule's own result, the
// saved channel and any achievements unlocked on the way.
type Outcome[T any] struct {
	Result   T                         `json:"result"`
	Channel  model.Channel             `json:"channel"`
	Unlocked []achievement.Achievement `json:"unlocked"`
}

func (s *Service) Premium() bool { return s.premium }

func (s *Service) Balance() config.Balance { return s.engine.Balance }

// Ping checks the backing store.
func (s *Service) Ping(ctx context.Context) error { return s.repo.Ping(ctx) }

func (s *Service) lockChannel(id string) func() {
	s.locksMu.Lock()
	mu, ok := s.locks[id]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[id] = mu
	}
	s.locksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// mutate runs fn on the latest copy of the channel under its lock. Nothing
// is saved when fn fails.
func (s *Service) mutate(ctx context.Context, id string, fn func(ch *model.Channel) error) (model.Channel, []achievement.Achievement, error) {
	return s.mutateThen(ctx, id, fn, nil)
}

// mutateThen is mutate with a hook that runs, still under the channel lock,
// only once the channel has been saved.
func (s *Service) mutateThen(ctx context.Context, id string, fn func(ch *model.Channel) error, saved func(ch model.Channel)) (model.Channel, []achievement.Achievement, error) {
	unlock := s.lockChannel(id)
	defer unlock()

	cur, err := s.repo.GetChannel(ctx, id)
	if err != nil {
		return model.Channel{}, nil, fmt.Errorf("channel %s: %w", id, err)
	}
	ch := cur.Clone()
	if err := fn(&ch); err != nil {
		return model.Channel{}, nil, err
	}

	unlocked, reward := s.engine.EvaluateAchievements(&ch)
	if err := s.repo.SaveChannel(ctx, ch); err != nil {
		return model.Channel{}, nil, fmt.Errorf("save channel %s: %w", id, err)
	}
	if saved != nil {
		saved(ch)
	}

	for _, a := range unlocked {
		s.metrics.AchievementsUnlocked.WithLabelValues(a.ID).Inc()
		s.log.Info().
			Str("channel_id", id).
			Str("achievement", a.ID).
			Float64("reward_money", a.Reward.Money).
			Int("reward_energy", a.Reward.EnergyBoost).
			Msg("achievement_unlocked")
	}
	if len(unlocked) > 0 {
		s.log.Debug().Str("channel_id", id).Float64("money", reward.Money).Int("max_energy", reward.EnergyBoost).Msg("achievement_rewards")
	}

	if err := s.refreshStats(ctx, 0); err != nil {
		s.log.Warn().Err(err).Msg("refresh_stats_failed")
	}
	return ch, unlocked, nil
}

func (s *Service) refreshStats(ctx context.Context, created int) error {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()

	chs, err := s.repo.ListChannels(ctx)
	if err != nil {
		return err
	}
	st, err := s.repo.GetStats(ctx)
	if err != nil {
		return err
	}
	st.TotalChannelsCreated += created
	return s.repo.SaveStats(ctx, st.Recompute(chs))
}

func (s *Service) CreateChannel(ctx context.Context, name, picture string) (model.Channel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Channel{}, model.ErrInvalidName
	}

	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()

	existing, err := s.repo.ListChannels(ctx)
	if err != nil {
		return model.Channel{}, err
	}
	if limit := s.engine.Balance.ChannelLimit(s.premium); len(existing) >= limit {
		return model.Channel{}, fmt.Errorf("%d of %d slots used: %w", len(existing), limit, model.ErrChannelLimit)
	}

	ch := s.engine.NewChannel(name, strings.TrimSpace(picture), s.premium)
	if err := s.repo.SaveChannel(ctx, ch); err != nil {
		return model.Channel{}, err
	}
	if err := s.repo.SetActiveChannelID(ctx, ch.ID); err != nil {
		return model.Channel{}, err
	}
	if err := s.refreshStats(ctx, 1); err != nil {
		return model.Channel{}, err
	}

	s.metrics.ChannelsCreated.Inc()
	s.log.Info().Str("channel_id", ch.ID).Str("name", ch.Name).Bool("premium", ch.Premium).Msg("channel_created")
	return ch, nil
}

func (s *Service) ListChannels(ctx context.Context) ([]model.Channel, error) {
	return s.repo.ListChannels(ctx)
}

func (s *Service) GetChannel(ctx context.Context, id string) (model.Channel, error) {
	ch, err := s.repo.GetChannel(ctx, id)
	if err != nil {
		return model.Channel{}, fmt.Errorf("channel %s: %w", id, err)
	}
	return ch, nil
}

// DeleteChannel removes the channel and any live session it owns. If it was
// the active channel, the oldest remaining one takes over.
func (s *Service) DeleteChannel(ctx context.Context, id string) error {
	s.catalogMu.Lock()
	defer s.catalogMu.Unlock()
	unlock := s.lockChannel(id)
	defer unlock()

	if err := s.repo.DeleteChannel(ctx, id); err != nil {
		return fmt.Errorf("channel %s: %w", id, err)
	}
	s.dropSession(id, "deleted")

	active, err := s.repo.ActiveChannelID(ctx)
	if err != nil {
		return err
	}
	if active == id {
		next := ""
		rest, err := s.repo.ListChannels(ctx)
		if err != nil {
			return err
		}
		if len(rest) > 0 {
			next = rest[0].ID
		}
		if err := s.repo.SetActiveChannelID(ctx, next); err != nil {
			return err
		}
	}

	s.log.Info().Str("channel_id", id).Msg("channel_deleted")
	return s.refreshStats(ctx, 0)
}

func (s *Service) SelectChannel(ctx context.Context, id string) (model.Channel, error) {
	ch, err := s.GetChannel(ctx, id)
	if err != nil {
		return model.Channel{}, err
	}
	if err := s.repo.SetActiveChannelID(ctx, id); err != nil {
		return model.Channel{}, err
	}
	return ch, nil
}

// ActiveChannel returns the last selected channel, or ErrNotFound.
func (s *Service) ActiveChannel(ctx context.Context) (model.Channel, error) {
	id, err := s.repo.ActiveChannelID(ctx)
	if err != nil {
		return model.Channel{}, err
	}
	if id == "" {
		return model.Channel{}, fmt.Errorf("no active channel: %w", model.ErrNotFound)
	}
	return s.GetChannel(ctx, id)
}

func (s *Service) Upload(ctx context.Context, id string, choices economy.UploadChoices) (Outcome[game.UploadResult], error) {
	var res game.UploadResult
	ch, unlocked, err := s.mutate(ctx, id, func(ch *model.Channel) error {
		var err error
		res, err = s.engine.Upload(ch, choices)
		return err
	})
	if err != nil {
		return Outcome[game.UploadResult]{}, err
	}

	s.metrics.Uploads.Inc()
	s.metrics.UploadViews.Observe(float64(res.Video.Views))
	s.log.Debug().
		Str("channel_id", id).
		Str("video_id", res.Video.ID).
		Int("views", res.Video.Views).
		Int("subscribers", res.Video.SubscribersGained).
		Float64("money", res.Video.MoneyGained).
		Interface("consumed_boosts", res.Delta.Consumed).
		Msg("video_uploaded")
	s.noteMonetized(id, res.Monetized)
	return Outcome[game.UploadResult]{Result: res, Channel: ch, Unlocked: unlocked}, nil
}

func (s *Service) AdvanceDay(ctx context.Context, id string) (Outcome[game.DayResult], error) {
	var res game.DayResult
	ch, unlocked, err := s.mutate(ctx, id, func(ch *model.Channel) error {
		res = s.engine.AdvanceDay(ch)
		return nil
	})
	if err != nil {
		return Outcome[game.DayResult]{}, err
	}

	s.metrics.DayAdvances.Inc()
	s.log.Debug().
		Str("channel_id", id).
		Int("day", res.Day).
		Int("views_gained", res.ViewsGained).
		Int("subscribers_gained", res.SubscribersGained).
		Msg("day_advanced")
	s.noteMonetized(id, res.Monetized)
	return Outcome[game.DayResult]{Result: res, Channel: ch, Unlocked: unlocked}, nil
}

func (s *Service) UpgradeEquipment(ctx context.Context, id string, slot model.EquipmentSlot) (Outcome[economy.UpgradeResult], error) {
	var res economy.UpgradeResult
	ch, unlocked, err := s.mutate(ctx, id, func(ch *model.Channel) error {
		var err error
		res, err = s.engine.Upgrade(ch, slot)
		return err
	})
	if err != nil {
		return Outcome[economy.UpgradeResult]{}, err
	}

	s.metrics.Upgrades.WithLabelValues(string(slot)).Inc()
	s.log.Debug().Str("channel_id", id).Str("slot", string(slot)).Int("level", res.ToLevel).Float64("cost", res.Cost).Msg("equipment_upgraded")
	return Outcome[economy.UpgradeResult]{Result: res, Channel: ch, Unlocked: unlocked}, nil
}

func (s *Service) ActivateMonetization(ctx context.Context, id string) (Outcome[bool], error) {
	var on bool
	ch, unlocked, err := s.mutate(ctx, id, func(ch *model.Channel) error {
		var err error
		on, err = s.engine.ActivateMonetization(ch)
		return err
	})
	if err != nil {
		return Outcome[bool]{}, err
	}
	s.noteMonetized(id, on)
	return Outcome[bool]{Result: on, Channel: ch, Unlocked: unlocked}, nil
}

func (s *Service) noteMonetized(id string, on bool) {
	if !on {
		return
	}
	s.metrics.Monetized.Inc()
	s.log.Info().Str("channel_id", id).Msg("channel_monetized")
}

func (s *Service) Achievements(ctx context.Context, id string) ([]achievement.Status, error) {
	ch, err := s.GetChannel(ctx, id)
	if err != nil {
		return nil, err
	}
	return achievement.Statuses(ch), nil
}

func (s *Service) GlobalStats(ctx context.Context) (model.GlobalStats, error) {
	return s.repo.GetStats(ctx)
}
