package economy

import (
	"testing"
	"time"

	"github.com/thedidscuf/GameYoutube/internal/boost"
	"github.com/thedidscuf/GameYoutube/internal/config"
	"github.com/thedidscuf/GameYoutube/internal/dice"
	"github.com/thedidscuf/GameYoutube/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

func newChannelForTest() model.Channel {
	return model.NewChannel("c1", "Test Channel", "", false, testNow)
}

func liveChoices() UploadChoices {
	return UploadChoices{
		Title:           "My first video",
		Genre:           "Gaming",
		SubGenre:        "Minecraft",
		RecordingMethod: model.RecordingLive,
	}
}

// plainDraws yields base 100 views, no viral, min floor 35, sub rate 1%.
func plainDraws() *dice.Scripted {
	return dice.NewScripted(0.5, 0.9, 0.5, 0.5)
}

func TestComputeUpload_PlainVideo(t *testing.T) {
	ch := newChannelForTest()
	out, err := ComputeUpload(ch, liveChoices(), plainDraws(), config.Default(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 100, out.Video.Views)
	assert.Equal(t, 1, out.Video.SubscribersGained)
	assert.Equal(t, 5.0, out.Video.WatchHoursGained)
	assert.Zero(t, out.Video.MoneyGained)
	assert.Equal(t, "Minecraft", out.Video.SubGenre)
	assert.Equal(t, 1, out.Video.UploadDay)
	assert.Equal(t, testNow, out.Video.UploadedAt)
	assert.NotEmpty(t, out.Video.ID)
	assert.Empty(t, out.Delta.Consumed)
	assert.Zero(t, out.ViralMultiplier)

	// snapshot is untouched
	assert.Equal(t, 100, ch.Energy)
	assert.Empty(t, ch.Videos)
}

func TestComputeUpload_ScenarioB_UnmonetizedUpload(t *testing.T) {
	ch := newChannelForTest()
	bal := config.Default()

	out, err := ComputeUpload(ch, liveChoices(), dice.New(1), bal, testNow)
	require.NoError(t, err)
	Apply(&ch, out, bal)

	assert.Zero(t, out.Video.MoneyGained)
	assert.Equal(t, 75, ch.Energy)
	assert.Len(t, ch.Videos, 1)
}

func TestComputeUpload_Preconditions(t *testing.T) {
	bal := config.Default()
	cases := []struct {
		name   string
		mutate func(*model.Channel, *UploadChoices)
		want   error
	}{
		{"energy checked first", func(ch *model.Channel, c *UploadChoices) { ch.Energy = 24; c.Title = "" }, model.ErrInsufficientEnergy},
		{"blank title", func(_ *model.Channel, c *UploadChoices) { c.Title = "   " }, model.ErrInvalidTitle},
		{"no genre", func(_ *model.Channel, c *UploadChoices) { c.Genre = "" }, model.ErrInvalidGenre},
		{"unknown genre", func(_ *model.Channel, c *UploadChoices) { c.Genre = "ASMR" }, model.ErrInvalidGenre},
		{"missing sub-genre", func(_ *model.Channel, c *UploadChoices) { c.SubGenre = "" }, model.ErrInvalidSubGenre},
		{"foreign sub-genre", func(_ *model.Channel, c *UploadChoices) { c.SubGenre = "Baking" }, model.ErrInvalidSubGenre},
		{"unknown method", func(_ *model.Channel, c *UploadChoices) { c.RecordingMethod = "Potato" }, model.ErrInvalidRecordingMethod},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ch := newChannelForTest()
			c := liveChoices()
			tc.mutate(&ch, &c)
			_, err := ComputeUpload(ch, c, plainDraws(), bal, testNow)
			require.ErrorIs(t, err, tc.want)
			assert.True(t, model.IsValidation(err))
		})
	}
}

func TestComputeUpload_PremiumDiscountAndMultipliers(t *testing.T) {
	ch := newChannelForTest()
	ch.Premium = true
	ch.IsMonetized = true
	ch.Energy = 20
	bal := config.Default()

	out, err := ComputeUpload(ch, liveChoices(), plainDraws(), bal, testNow)
	require.NoError(t, err)
	assert.Equal(t, 20, out.Delta.EnergySpent)
	assert.Equal(t, 120, out.Video.Views)
	assert.Equal(t, 0.18, out.Video.MoneyGained)

	Apply(&ch, out, bal)
	assert.Zero(t, ch.Energy)
}

func TestComputeUpload_ViralRoll(t *testing.T) {
	ch := newChannelForTest()
	out, err := ComputeUpload(ch, liveChoices(), dice.NewScripted(0.5, 0.01, 0.5, 0.5, 0.5), config.Default(), testNow)
	require.NoError(t, err)
	assert.Equal(t, 3.5, out.ViralMultiplier)
	assert.Equal(t, 350, out.Video.Views)
	assert.Equal(t, 3, out.Video.SubscribersGained)
}

func TestComputeUpload_MinimumViewsFloor(t *testing.T) {
	ch := newChannelForTest()
	out, err := ComputeUpload(ch, liveChoices(), dice.NewScripted(0, 0.9, 0.999, 0), config.Default(), testNow)
	require.NoError(t, err)
	assert.Equal(t, 59, out.Video.Views)
}

func TestComputeUpload_ThumbnailAppliedBeforeFloor(t *testing.T) {
	ch := newChannelForTest()
	ch.Boosts.AddThumbnailCTR(0.1)

	out, err := ComputeUpload(ch, liveChoices(), plainDraws(), config.Default(), testNow)
	require.NoError(t, err)
	assert.Equal(t, 110, out.Video.Views)
	assert.Equal(t, []boost.Kind{boost.KindThumbnailCTR}, out.Delta.Consumed)
}

func TestComputeUpload_CommunityScalesViewsAndSubs(t *testing.T) {
	ch := newChannelForTest()
	ch.Subscribers = 1000
	ch.Boosts.AddCommunity(20)

	// base = 50 + floor(0.5*200) = 150, subs = floor(150*0.01) = 1
	out, err := ComputeUpload(ch, liveChoices(), plainDraws(), config.Default(), testNow)
	require.NoError(t, err)
	assert.Equal(t, 153, out.Video.Views)
	assert.Equal(t, 1, out.Video.SubscribersGained)
	assert.Equal(t, 7.65, out.Video.WatchHoursGained)
	assert.Equal(t, []boost.Kind{boost.KindCommunity}, out.Delta.Consumed)
}

func TestComputeUpload_MoneyFixedBeforeStreamBonus(t *testing.T) {
	ch := newChannelForTest()
	ch.IsMonetized = true
	ch.Boosts.SetStream(boost.StreamBonus{ViewsMultiplier: 3, SubsMultiplier: 1, MoneyMultiplier: 1})

	out, err := ComputeUpload(ch, liveChoices(), plainDraws(), config.Default(), testNow)
	require.NoError(t, err)
	assert.Equal(t, 300, out.Video.Views)
	assert.Equal(t, 0.1, out.Video.MoneyGained, "money uses pre-bonus views")
	assert.Equal(t, 5.0, out.Video.WatchHoursGained, "watch hours use pre-bonus views")
	assert.Equal(t, []boost.Kind{boost.KindStream}, out.Delta.Consumed)
}

func TestComputeUpload_StreamMoneyOnlyWhenMonetized(t *testing.T) {
	ch := newChannelForTest()
	ch.Boosts.SetStream(boost.StreamBonus{ViewsMultiplier: 1, SubsMultiplier: 1, MoneyMultiplier: 2})

	out, err := ComputeUpload(ch, liveChoices(), plainDraws(), config.Default(), testNow)
	require.NoError(t, err)
	assert.Zero(t, out.Video.MoneyGained)
}

func TestComputeUpload_SubGenreDroppedForGenresWithout(t *testing.T) {
	saved := Genres
	t.Cleanup(func() { Genres = saved })
	Genres = append([]Genre{{Name: "Shorts"}}, saved...)

	c := liveChoices()
	c.Genre = "Shorts"
	c.SubGenre = "ignored"
	out, err := ComputeUpload(newChannelForTest(), c, plainDraws(), config.Default(), testNow)
	require.NoError(t, err)
	assert.Empty(t, out.Video.SubGenre)
}

func TestApply_ConsumesExactlyOnce(t *testing.T) {
	bal := config.Default()
	ch := newChannelForTest()
	ch.Boosts.AddThumbnailCTR(0.02)
	ch.Boosts.AddCommunity(5)
	ch.Boosts.SetStream(boost.StreamBonus{ViewsMultiplier: 1.1, SubsMultiplier: 1.1, MoneyMultiplier: 1.1})

	out, err := ComputeUpload(ch, liveChoices(), dice.New(3), bal, testNow)
	require.NoError(t, err)
	Apply(&ch, out, bal)

	assert.Empty(t, ch.Boosts.Pending())

	out2, err := ComputeUpload(ch, liveChoices(), dice.New(4), bal, testNow)
	require.NoError(t, err)
	assert.Empty(t, out2.Delta.Consumed)
}

func TestApply_UntouchedBoostSurvives(t *testing.T) {
	bal := config.Default()
	ch := newChannelForTest()
	ch.Boosts.AddCommunity(5)

	Apply(&ch, Outcome{
		Video: model.Video{ID: "v"},
		Delta: Delta{EnergySpent: 25, Consumed: []boost.Kind{boost.KindThumbnailCTR}},
	}, bal)

	assert.Equal(t, 5, ch.Boosts.Community)
}

func TestApply_AccumulatesAndOrdersVideos(t *testing.T) {
	bal := config.Default()
	ch := newChannelForTest()
	ch.WatchHours = 0.1

	Apply(&ch, Outcome{Video: model.Video{ID: "old"}, Delta: Delta{EnergySpent: 25, Views: 10, Subscribers: 1, WatchHours: 0.2, Money: 0.01}}, bal)
	Apply(&ch, Outcome{Video: model.Video{ID: "new"}, Delta: Delta{EnergySpent: 25, Views: 5, Subscribers: 2, WatchHours: 0.3, Money: 0.02}}, bal)

	require.Len(t, ch.Videos, 2)
	assert.Equal(t, "new", ch.Videos[0].ID)
	assert.Equal(t, 15, ch.Views)
	assert.Equal(t, 3, ch.Subscribers)
	assert.Equal(t, 0.6, ch.WatchHours)
	assert.Equal(t, 0.03, ch.Money)
	assert.Equal(t, 0.03, ch.TotalEarnings)
	assert.Equal(t, 50, ch.Energy)
}

func TestApply_LatchesMonetization(t *testing.T) {
	bal := config.Default()
	ch := newChannelForTest()
	ch.Subscribers = 999
	ch.WatchHours = 999

	turnedOn := Apply(&ch, Outcome{Video: model.Video{ID: "v"}, Delta: Delta{Subscribers: 1, WatchHours: 1}}, bal)
	assert.True(t, turnedOn)
	assert.True(t, ch.IsMonetized)
}

func TestUpload_EnergyNeverNegative(t *testing.T) {
	bal := config.Default()
	ch := newChannelForTest()
	src := dice.New(99)
	for i := 0; i < 10; i++ {
		before := ch.Energy
		out, err := ComputeUpload(ch, liveChoices(), src, bal, testNow)
		if before < 25 {
			require.ErrorIs(t, err, model.ErrInsufficientEnergy)
			continue
		}
		require.NoError(t, err)
		Apply(&ch, out, bal)
		assert.Equal(t, before-25, ch.Energy)
		assert.GreaterOrEqual(t, out.Video.Views, 10)
	}
	assert.Len(t, ch.Videos, 4)
}
