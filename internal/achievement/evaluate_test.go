package achievement

import (
	"testing"
	"time"

	"github.com/thedidscuf/GameYoutube/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChannelForTest() model.Channel {
	return model.NewChannel("c1", "Test Channel", "", false, time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC))
}

func ids(as []Achievement) []string {
	out := make([]string, 0, len(as))
	for _, a := range as {
		out = append(out, a.ID)
	}
	return out
}

func TestCatalog_IDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Catalog() {
		require.False(t, seen[a.ID], a.ID)
		seen[a.ID] = true
		assert.Positive(t, a.Value, a.ID)
	}
	assert.Len(t, seen, 19)
}

func TestEvaluate_NewUnlocksOnlyInCatalogOrder(t *testing.T) {
	ch := newChannelForTest()
	assert.Empty(t, Evaluate(ch))

	ch.Subscribers = 120
	ch.Views = 1000
	ch.Videos = []model.Video{{ID: "v1"}}
	ch.Achievements = []string{"subs_10"}

	assert.Equal(t, []string{"subs_100", "views_1000", "videos_1"}, ids(Evaluate(ch)))
}

func TestEvaluate_TotalEarningsNotMoney(t *testing.T) {
	ch := newChannelForTest()
	ch.Money = 5000
	assert.Empty(t, Evaluate(ch), "spendable money is not earnings")

	ch.TotalEarnings = 100
	assert.Equal(t, []string{"money_100"}, ids(Evaluate(ch)))
}

func TestApply_RewardsMoneyAndMaxEnergy(t *testing.T) {
	ch := newChannelForTest()
	ch.Subscribers = 1000
	ch.Energy = 40
	ch.Money = 0.5
	ch.TotalEarnings = 3

	got := Apply(&ch, Evaluate(ch))

	assert.Equal(t, Reward{Money: 10 + 50 + 100 + 200, EnergyBoost: 10}, got)
	assert.Equal(t, []string{"subs_10", "subs_100", "subs_500", "subs_1000"}, ch.Achievements)
	assert.Equal(t, 360.5, ch.Money)
	assert.Equal(t, 3.0, ch.TotalEarnings, "rewards are not earnings")
	assert.Equal(t, 110, ch.MaxEnergy)
	assert.Equal(t, 40, ch.Energy, "energy is not refilled")

	assert.Empty(t, Evaluate(ch))
	assert.Equal(t, Reward{}, Apply(&ch, []Achievement{catalog[0]}), "already held")
	assert.Len(t, ch.Achievements, 4)
}

func TestProgressFor(t *testing.T) {
	ch := newChannelForTest()
	ch.WatchHours = 33.33
	a, ok := Lookup("watch_100")
	require.True(t, ok)

	p := ProgressFor(ch, a)
	assert.Equal(t, Progress{Current: 33.33, Required: 100, Complete: false, Percent: 33.3}, p)

	ch.WatchHours = 250
	p = ProgressFor(ch, a)
	assert.True(t, p.Complete)
	assert.Equal(t, 100.0, p.Percent)
}

func TestStatuses(t *testing.T) {
	ch := newChannelForTest()
	ch.Videos = []model.Video{{ID: "v1"}}
	Apply(&ch, Evaluate(ch))

	st := Statuses(ch)
	require.Len(t, st, len(catalog))
	for _, s := range st {
		if s.ID == "videos_1" {
			assert.True(t, s.Unlocked)
			assert.True(t, s.Progress.Complete)
			continue
		}
		assert.False(t, s.Unlocked, s.ID)
	}

	_, ok := Lookup("nope")
	assert.False(t, ok)
}
