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

func lookupComment(t *testing.T, id string) Comment {
	t.Helper()
	for _, c := range Comments {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("comment %q not in catalog", id)
	return Comment{}
}

func startCommunity(t *testing.T, seed uint64) Session {
	t.Helper()
	ch := newChannelForTest()
	s, err := Start(model.GameCommunity, &ch, dice.New(seed), config.Default())
	require.NoError(t, err)
	return s
}

// playCommunity answers every round with pick and returns the expected
// capped score.
func playCommunity(t *testing.T, s Session, pick func(Comment) int) int {
	t.Helper()
	want := 0
	seen := map[string]bool{}
	for !s.IsComplete() {
		cur := s.State().Community.Current
		require.NotNil(t, cur)
		require.False(t, seen[cur.ID], "comments are drawn without replacement")
		seen[cur.ID] = true

		c := lookupComment(t, cur.ID)
		opt := pick(c)
		want += c.Options[opt].Points
		if want > 25 {
			want = 25
		}
		require.NoError(t, s.Advance(Input{Action: ActionChoose, Option: opt}))
	}
	assert.Len(t, seen, 5)
	return want
}

func TestCommunity_BestAnswers(t *testing.T) {
	s := startCommunity(t, 11)
	assert.Equal(t, PhaseActive, s.Phase())

	want := playCommunity(t, s, func(Comment) int { return 0 })

	st := s.State()
	assert.Equal(t, PhaseComplete, st.Phase)
	assert.Equal(t, want, st.Community.Score)
	assert.Nil(t, st.Community.Current)
	assert.Len(t, st.Community.Answers, 5)

	l := boost.Ledger{Community: 10}
	r, err := s.Finalize(&l)
	require.NoError(t, err)
	assert.Equal(t, want, r.Community)
	assert.True(t, r.Applied)
	assert.Equal(t, 10+want, l.Community, "pending community points stack")
}

func TestCommunity_NegativeScoreWritesNothing(t *testing.T) {
	s := startCommunity(t, 5)
	worst := func(c Comment) int {
		idx := 0
		for i, o := range c.Options {
			if o.Points < c.Options[idx].Points {
				idx = i
			}
		}
		return idx
	}
	want := playCommunity(t, s, worst)
	require.Less(t, want, 0)
	assert.Equal(t, want, s.State().Community.Score)

	var l boost.Ledger
	r, err := s.Finalize(&l)
	require.NoError(t, err)
	assert.False(t, r.Applied)
	assert.Zero(t, r.Community)
	assert.Zero(t, l.Community)
}

func TestCommunity_ScoreCappedAtMax(t *testing.T) {
	ch := newChannelForTest()
	bal := config.Default()
	bal.Minigames.CommunityMaxPoints = 8
	s, err := Start(model.GameCommunity, &ch, dice.New(3), bal)
	require.NoError(t, err)

	for !s.IsComplete() {
		require.NoError(t, s.Advance(Input{Action: ActionChoose, Option: 0}))
		assert.LessOrEqual(t, s.State().Community.Score, 8)
	}
	var l boost.Ledger
	r, err := s.Finalize(&l)
	require.NoError(t, err)
	assert.Equal(t, 8, r.Community)
}

func TestCommunity_InvalidInput(t *testing.T) {
	s := startCommunity(t, 1)

	require.ErrorIs(t, s.Advance(Input{Action: ActionChoose, Option: 3}), model.ErrInvalidInput)
	require.ErrorIs(t, s.Advance(Input{Action: ActionChoose, Option: -1}), model.ErrInvalidInput)
	assert.Equal(t, 1, s.State().Community.Round)
	assert.Empty(t, s.State().Community.Answers)

	for !s.IsComplete() {
		require.NoError(t, s.Advance(Input{Action: ActionChoose, Option: 1}))
	}
	require.ErrorIs(t, s.Advance(Input{Action: ActionChoose, Option: 0}), model.ErrInvalidState)
}

func TestCommunity_ViewHidesPoints(t *testing.T) {
	s := startCommunity(t, 9)
	cur := s.State().Community.Current
	require.NotNil(t, cur)
	c := lookupComment(t, cur.ID)
	require.Len(t, cur.Options, len(c.Options))
	for i, o := range c.Options {
		assert.Equal(t, o.Text, cur.Options[i])
	}
}
