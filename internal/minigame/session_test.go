package minigame

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

func newChannelForTest() model.Channel {
	return model.NewChannel("c1", "Test Channel", "", false, time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC))
}

func TestStart_ChargesEnergyAndLocksDay(t *testing.T) {
	bal := config.Default()
	cases := []struct {
		kind model.GameKind
		cost int
	}{
		{model.GameCommunity, 10},
		{model.GameThumbnail, 15},
		{model.GameStream, 20},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			ch := newChannelForTest()
			s, err := Start(tc.kind, &ch, dice.New(1), bal)
			require.NoError(t, err)

			assert.Equal(t, 100-tc.cost, ch.Energy)
			assert.Equal(t, ch.Day, ch.DayLocks.Get(tc.kind))
			assert.Equal(t, tc.kind, s.Kind())
			assert.Equal(t, "c1", s.ChannelID())
			assert.NotEmpty(t, s.ID())
			assert.False(t, s.IsComplete())
		})
	}
}

func TestStart_ScenarioE_SecondAttemptSameDay(t *testing.T) {
	bal := config.Default()
	ch := newChannelForTest()

	_, err := Start(model.GameCommunity, &ch, dice.New(1), bal)
	require.NoError(t, err)
	before := ch.Clone()

	_, err = Start(model.GameCommunity, &ch, dice.New(1), bal)
	require.ErrorIs(t, err, model.ErrAlreadyPlayedToday)
	assert.True(t, model.IsValidation(err))
	assert.Equal(t, before, ch)

	// other kinds are locked independently
	_, err = Start(model.GameStream, &ch, dice.New(1), bal)
	require.NoError(t, err)

	// and the lock lifts on the next day
	ch.Day++
	_, err = Start(model.GameCommunity, &ch, dice.New(1), bal)
	require.NoError(t, err)
}

func TestStart_InsufficientEnergyLeavesChannelAlone(t *testing.T) {
	ch := newChannelForTest()
	ch.Energy = 19
	before := ch.Clone()

	_, err := Start(model.GameStream, &ch, dice.New(1), config.Default())
	require.ErrorIs(t, err, model.ErrInsufficientEnergy)
	assert.Equal(t, before, ch)
}

func TestStart_DayLockCheckedBeforeEnergy(t *testing.T) {
	ch := newChannelForTest()
	ch.Energy = 0
	ch.DayLocks.Set(model.GameThumbnail, ch.Day)

	_, err := Start(model.GameThumbnail, &ch, dice.New(1), config.Default())
	require.ErrorIs(t, err, model.ErrAlreadyPlayedToday)
}

func TestStart_UnknownKind(t *testing.T) {
	ch := newChannelForTest()
	_, err := Start(model.GameKind("trivia"), &ch, dice.New(1), config.Default())
	require.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Equal(t, 100, ch.Energy)
}

func TestFinalize_OnlyOnce(t *testing.T) {
	ch := newChannelForTest()
	s, err := Start(model.GameThumbnail, &ch, dice.New(2), config.Default())
	require.NoError(t, err)

	var l boost.Ledger
	_, err = s.Finalize(&l)
	require.ErrorIs(t, err, model.ErrInvalidState, "still running")

	require.NoError(t, s.Advance(Input{Action: ActionTick, Seconds: 45}))
	_, err = s.Finalize(&l)
	require.NoError(t, err)
	assert.True(t, s.State().Finalized)

	_, err = s.Finalize(&l)
	require.ErrorIs(t, err, model.ErrInvalidState)
}

func TestSettle_LeavesSessionOpenUntilMarked(t *testing.T) {
	ch := newChannelForTest()
	s, err := Start(model.GameCommunity, &ch, dice.New(3), config.Default())
	require.NoError(t, err)
	for !s.IsComplete() {
		require.NoError(t, s.Advance(Input{Action: ActionChoose, Option: 0}))
	}

	first, err := s.Settle()
	require.NoError(t, err)
	second, err := s.Settle()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.False(t, s.State().Finalized)

	var l boost.Ledger
	first.ApplyTo(&l)
	assert.Equal(t, first.Community, l.Community)

	s.MarkFinalized()
	_, err = s.Settle()
	require.ErrorIs(t, err, model.ErrInvalidState)
}

func TestReward_ApplyToSkipsFailedStream(t *testing.T) {
	var l boost.Ledger
	Reward{Kind: boost.KindStream}.ApplyTo(&l)
	assert.Nil(t, l.Stream)

	b := boost.StreamBonus{ViewsMultiplier: 2, SubsMultiplier: 1.5, MoneyMultiplier: 1.2}
	Reward{Kind: boost.KindStream, Applied: true, Stream: &b}.ApplyTo(&l)
	require.NotNil(t, l.Stream)
	assert.Equal(t, b, *l.Stream)
}

func TestAdvance_RejectsForeignActions(t *testing.T) {
	bal := config.Default()
	cases := []struct {
		kind   model.GameKind
		action Action
	}{
		{model.GameCommunity, ActionTick},
		{model.GameCommunity, ActionRespond},
		{model.GameThumbnail, ActionChoose},
		{model.GameStream, ActionSelect},
		{model.GameStream, Action("dance")},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind)+"/"+string(tc.action), func(t *testing.T) {
			ch := newChannelForTest()
			s, err := Start(tc.kind, &ch, dice.New(1), bal)
			require.NoError(t, err)
			require.ErrorIs(t, s.Advance(Input{Action: tc.action}), model.ErrInvalidInput)
		})
	}
}

func TestAdvance_NegativeTick(t *testing.T) {
	ch := newChannelForTest()
	s, err := Start(model.GameStream, &ch, dice.New(1), config.Default())
	require.NoError(t, err)
	require.ErrorIs(t, s.Advance(Input{Action: ActionTick, Seconds: -1}), model.ErrInvalidInput)
}
