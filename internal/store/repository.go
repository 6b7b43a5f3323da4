package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/thedidscuf/GameYoutube/internal/config"
	"github.com/thedidscuf/GameYoutube/internal/model"
)

const (
	channelPrefix = "channel:"
	statsKey      = "meta:stats"
	activeKey     = "meta:active_channel"
)

// Repository stores domain values as JSON on top of any KV.
type Repository struct {
	kv KV
}

func NewRepository(kv KV) *Repository {
	return &Repository{kv: kv}
}

// Open builds the backend named by cfg.Type.
func Open(cfg config.StoreConfig) (*Repository, error) {
	var (
		kv  KV
		err error
	)
	switch cfg.Type {
	case "", "file":
		kv, err = NewFileKV(cfg.DataDir)
	case "memory":
		kv = NewMemoryKV()
	case "sqlite":
		path := cfg.SQLitePath
		if path == "" {
			path = filepath.Join(cfg.DataDir, "gameyoutube.db")
		}
		kv, err = NewSQLiteKV(path)
	case "redis":
		kv, err = NewRedisKV(RedisConfig{
			Addr:      cfg.RedisAddress(),
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.RedisPrefix,
		})
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Type, err)
	}
	return NewRepository(kv), nil
}

func (r *Repository) Close() error { return r.kv.Close() }

func (r *Repository) Ping(ctx context.Context) error {
	_, err := r.kv.Keys(ctx, statsKey)
	return err
}

func (r *Repository) getJSON(ctx context.Context, key string, v any) error {
	b, err := r.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (r *Repository) putJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.kv.Put(ctx, key, b)
}

func (r *Repository) GetChannel(ctx context.Context, id string) (model.Channel, error) {
	var ch model.Channel
	if err := r.getJSON(ctx, channelPrefix+id, &ch); err != nil {
		return model.Channel{}, err
	}
	return normalizeChannel(ch), nil
}

func (r *Repository) SaveChannel(ctx context.Context, ch model.Channel) error {
	if strings.TrimSpace(ch.ID) == "" {
		return errors.New("channel id is required")
	}
	return r.putJSON(ctx, channelPrefix+ch.ID, ch)
}

func (r *Repository) DeleteChannel(ctx context.Context, id string) error {
	if _, err := r.kv.Get(ctx, channelPrefix+id); err != nil {
		return err
	}
	return r.kv.Delete(ctx, channelPrefix+id)
}

// ListChannels returns every channel ordered by creation time.
func (r *Repository) ListChannels(ctx context.Context) ([]model.Channel, error) {
	keys, err := r.kv.Keys(ctx, channelPrefix)
	if err != nil {
		return nil, err
	}
	out := make([]model.Channel, 0, len(keys))
	for _, k := range keys {
		ch, err := r.GetChannel(ctx, strings.TrimPrefix(k, channelPrefix))
		if errors.Is(err, model.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	sortChannels(out)
	return out, nil
}

func (r *Repository) GetStats(ctx context.Context) (model.GlobalStats, error) {
	var s model.GlobalStats
	err := r.getJSON(ctx, statsKey, &s)
	if errors.Is(err, model.ErrNotFound) {
		return model.GlobalStats{}, nil
	}
	return s, err
}

func (r *Repository) SaveStats(ctx context.Context, s model.GlobalStats) error {
	return r.putJSON(ctx, statsKey, s)
}

// ActiveChannelID returns "" when no channel has been selected.
func (r *Repository) ActiveChannelID(ctx context.Context) (string, error) {
	var id string
	err := r.getJSON(ctx, activeKey, &id)
	if errors.Is(err, model.ErrNotFound) {
		return "", nil
	}
	return id, err
}

func (r *Repository) SetActiveChannelID(ctx context.Context, id string) error {
	if id == "" {
		return r.kv.Delete(ctx, activeKey)
	}
	return r.putJSON(ctx, activeKey, id)
}
