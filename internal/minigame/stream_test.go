package minigame

import (
	"testing"

	"github.com/thedidscuf/GameYoutube/internal/boost"
	"github.com/thedidscuf/GameYoutube/internal/config"
	"github.com/thedidscuf/GameYoutube/internal/dice"
	"github.com/thedidscuf/GameYoutube/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startStream uses an all-zero script: every gap is the minimum and every
// prompt is the first quick click.
func startStream(t *testing.T) *stream {
	t.Helper()
	ch := newChannelForTest()
	s, err := Start(model.GameStream, &ch, dice.NewScripted(0), config.Default())
	require.NoError(t, err)
	st, ok := s.(*stream)
	require.True(t, ok)
	return st
}

func goLive(t *testing.T, s *stream) {
	t.Helper()
	require.NoError(t, s.Advance(Input{Action: ActionTick, Seconds: 3}))
	require.Equal(t, PhasePlaying, s.Phase())
}

func TestStream_Countdown(t *testing.T) {
	s := startStream(t)
	assert.Equal(t, PhaseCountdown, s.Phase())
	assert.Equal(t, 3, s.State().Stream.Countdown)

	err := s.Advance(Input{Action: ActionRespond})
	require.ErrorIs(t, err, model.ErrInvalidState)

	require.NoError(t, s.Advance(Input{Action: ActionTick, Seconds: 2}))
	assert.Equal(t, PhaseCountdown, s.Phase())
	require.NoError(t, s.Advance(Input{Action: ActionTick}))
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, 60, s.State().Stream.SecondsLeft)
	assert.Equal(t, 50, s.State().Stream.Hype)
}

func TestStream_PromptLifecycle(t *testing.T) {
	s := startStream(t)
	goLive(t, s)

	require.ErrorIs(t, s.Advance(Input{Action: ActionRespond}), model.ErrInvalidState, "no prompt yet")

	require.NoError(t, s.Advance(Input{Action: ActionTick, Seconds: 5}))
	st := s.State().Stream
	require.NotNil(t, st.Prompt)
	assert.Equal(t, "qc1", st.Prompt.ID)
	assert.Equal(t, 5, st.Prompt.SecondsLeft)
	assert.Equal(t, 45, st.Hype)

	require.NoError(t, s.Advance(Input{Action: ActionRespond}))
	st = s.State().Stream
	assert.Nil(t, st.Prompt)
	assert.Equal(t, 57, st.Hype)
	assert.Equal(t, 1, st.Successes)
	assert.Equal(t, 57.0, st.AverageHype)
}

func TestStream_ExpiredPromptCountsAsFailure(t *testing.T) {
	s := startStream(t)
	goLive(t, s)

	// prompt spawns at 5 s and expires 5 s later
	require.NoError(t, s.Advance(Input{Action: ActionTick, Seconds: 10}))
	st := s.State().Stream
	assert.Nil(t, st.Prompt)
	assert.Equal(t, 1, st.Failures)
	assert.Equal(t, 50-10-8, st.Hype)
}

func TestStream_KeywordAndEmojiMatching(t *testing.T) {
	byID := func(id string) *StreamPrompt {
		for _, p := range StreamPrompts {
			if p.ID == id {
				p := p
				return &p
			}
		}
		t.Fatalf("prompt %q missing", id)
		return nil
	}

	cases := []struct {
		prompt string
		text   string
		delta  int
	}{
		{"kw1", "  sorteo ", 15},
		{"kw1", "SORTEOS", -10},
		{"em2", "😂", 12},
		{"em2", "😱", -6},
		{"qc3", "", 10},
	}
	for _, tc := range cases {
		t.Run(tc.prompt+"/"+tc.text, func(t *testing.T) {
			s := startStream(t)
			goLive(t, s)
			s.prompt = byID(tc.prompt)
			s.promptLeft = s.prompt.window()

			require.NoError(t, s.Advance(Input{Action: ActionRespond, Text: tc.text}))
			assert.Equal(t, 50+tc.delta, s.hype)
		})
	}
}

func TestStream_HypeClampedAndPostClampAccumulated(t *testing.T) {
	s := startStream(t)
	goLive(t, s)
	s.hype = 95
	p := StreamPrompts[0]
	s.prompt = &p

	require.NoError(t, s.Advance(Input{Action: ActionRespond}))
	assert.Equal(t, 100, s.hype)
	assert.Equal(t, 100, s.accumulated)
}

func TestStream_ScenarioC_FailsMidStream(t *testing.T) {
	s := startStream(t)
	goLive(t, s)

	// nobody answers: decay plus expired prompts sink the meter
	require.NoError(t, s.Advance(Input{Action: ActionTick, Seconds: 60}))
	st := s.State()
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.Less(t, st.Stream.Hype, 25)
	assert.Positive(t, st.Stream.SecondsLeft)

	prior := boost.StreamBonus{ViewsMultiplier: 1.1, SubsMultiplier: 1.05, MoneyMultiplier: 1.02}
	var l boost.Ledger
	l.SetStream(prior)

	r, err := s.Finalize(&l)
	require.NoError(t, err)
	assert.False(t, r.Applied)
	assert.Nil(t, r.Stream)
	require.NotNil(t, l.Stream)
	assert.Equal(t, prior, *l.Stream)
}

func TestStream_FailureBeatsTimer(t *testing.T) {
	s := startStream(t)
	goLive(t, s)
	s.secondsLeft = 1
	s.hype = 25

	require.NoError(t, s.Advance(Input{Action: ActionTick}))
	assert.Equal(t, PhaseFailed, s.Phase())
}

func TestStream_SuccessReplacesBonus(t *testing.T) {
	s := startStream(t)
	goLive(t, s)

	for !s.IsComplete() {
		if s.State().Stream.Prompt != nil {
			require.NoError(t, s.Advance(Input{Action: ActionRespond}))
			continue
		}
		require.NoError(t, s.Advance(Input{Action: ActionTick}))
	}
	st := s.State().Stream
	require.Equal(t, PhaseSuccess, s.Phase())
	assert.Equal(t, 11, st.Successes)
	assert.Zero(t, st.Failures)
	assert.Equal(t, 86.0, st.AverageHype)

	var l boost.Ledger
	l.SetStream(boost.StreamBonus{ViewsMultiplier: 1.01, SubsMultiplier: 1.01, MoneyMultiplier: 1.01})
	r, err := s.Finalize(&l)
	require.NoError(t, err)

	want := boost.StreamBonus{ViewsMultiplier: 1.17, SubsMultiplier: 1.13, MoneyMultiplier: 1.09}
	assert.True(t, r.Applied)
	assert.Equal(t, want, *r.Stream)
	assert.Equal(t, want, *l.Stream)

	require.ErrorIs(t, s.Advance(Input{Action: ActionTick}), model.ErrInvalidState)
}

func TestBonus(t *testing.T) {
	cfg := config.Default().Minigames
	assert.Equal(t, boost.StreamBonus{ViewsMultiplier: 1, SubsMultiplier: 1, MoneyMultiplier: 1}, Bonus(0, cfg))
	assert.Equal(t, boost.StreamBonus{ViewsMultiplier: 1.2, SubsMultiplier: 1.15, MoneyMultiplier: 1.1}, Bonus(100, cfg))
	assert.Equal(t, Bonus(100, cfg), Bonus(250, cfg))
}

func TestStream_NoSuccessesAveragesInitialHype(t *testing.T) {
	s := startStream(t)
	assert.Equal(t, 50.0, s.averageHype())
}
