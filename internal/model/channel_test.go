package model

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/thedidscuf/GameYoutube/internal/boost"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChannel_StartingState(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	ch := NewChannel("c1", "Tech Tips", "", false, now)

	assert.Equal(t, 100, ch.Energy)
	assert.Equal(t, 100, ch.MaxEnergy)
	assert.Equal(t, 1, ch.Day)
	assert.Equal(t, BasicEquipment(), ch.Equipment)
	assert.Empty(t, ch.Videos)
	assert.Empty(t, ch.Achievements)
	assert.Equal(t, now, ch.CreatedAt)
}

func TestChannel_CloneDeepCopies(t *testing.T) {
	ch := NewChannel("c1", "A", "", false, time.Time{})
	ch.Videos = append(ch.Videos, Video{ID: "v1", Views: 10})
	ch.Achievements = append(ch.Achievements, "videos_1")
	ch.Boosts.SetStream(boost.StreamBonus{ViewsMultiplier: 1.2})

	c := ch.Clone()
	c.Videos[0].Views = 999
	c.Achievements[0] = "x"
	c.Boosts.Stream.ViewsMultiplier = 3

	assert.Equal(t, 10, ch.Videos[0].Views)
	assert.Equal(t, "videos_1", ch.Achievements[0])
	assert.Equal(t, 1.2, ch.Boosts.Stream.ViewsMultiplier)
}

func TestDayLocks_GetSet(t *testing.T) {
	var d DayLocks
	for i, k := range []GameKind{GameCommunity, GameThumbnail, GameStream} {
		d.Set(k, i+3)
		assert.Equal(t, i+3, d.Get(k))
	}
	assert.Zero(t, d.Get(GameKind("bogus")))
}

func TestEquipment_LevelRoundTrip(t *testing.T) {
	e := BasicEquipment()
	for _, s := range EquipmentSlots {
		require.True(t, s.Valid())
		e.SetLevel(s, 4)
		assert.Equal(t, 4, e.Level(s))
	}
	assert.False(t, EquipmentSlot("tripod").Valid())
}

func TestGlobalStats_Recompute(t *testing.T) {
	s := GlobalStats{TotalChannelsCreated: 5}
	got := s.Recompute([]Channel{
		{Subscribers: 10, Views: 100, TotalEarnings: 1.111},
		{Subscribers: 5, Views: 50, TotalEarnings: 2.222},
	})
	assert.Equal(t, GlobalStats{
		TotalChannelsCreated: 5,
		TotalSubscribers:     15,
		TotalViews:           150,
		TotalMoneyEarned:     3.33,
	}, got)
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(fmt.Errorf("upload: %w", ErrInsufficientEnergy)))
	assert.True(t, IsValidation(ErrAlreadyPlayedToday))
	assert.False(t, IsValidation(ErrInvalidState))
	assert.False(t, IsValidation(errors.New("disk on fire")))
}
