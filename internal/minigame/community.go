package minigame

import (
	"fmt"

	"github.com/thedidscuf/GameYoutube/internal/boost"
	"github.com/thedidscuf/GameYoutube/internal/config"
	"github.com/thedidscuf/GameYoutube/internal/dice"
	"github.com/thedidscuf/GameYoutube/internal/model"
)

// CommentView is a comment as shown to the player: no points.
type CommentView struct {
	ID      string      `json:"id"`
	Author  string      `json:"author"`
	Text    string      `json:"text"`
	Type    CommentType `json:"type"`
	Options []string    `json:"options"`
}

type CommunityAnswer struct {
	CommentID string `json:"commentId"`
	Option    int    `json:"option"`
	Points    int    `json:"points"`
	Feedback  string `json:"feedback"`
}

type CommunityState struct {
	Round    int               `json:"round"`
	Rounds   int               `json:"rounds"`
	Score    int               `json:"score"`
	MaxScore int               `json:"maxScore"`
	Current  *CommentView      `json:"current,omitempty"`
	Answers  []CommunityAnswer `json:"answers"`
}

type community struct {
	base
	maxScore int
	comments []Comment
	answers  []CommunityAnswer
	score    int
}

func newCommunity(b base, src dice.Source, cfg config.MinigameBalance) *community {
	pool := append([]Comment(nil), Comments...)
	dice.Shuffle(src, len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	rounds := cfg.CommunityRounds
	if rounds > len(pool) {
		rounds = len(pool)
	}
	return &community{
		base:     b,
		maxScore: cfg.CommunityMaxPoints,
		comments: pool[:rounds],
		answers:  []CommunityAnswer{},
	}
}

func (c *community) IsComplete() bool { return len(c.answers) >= len(c.comments) }

func (c *community) Phase() Phase {
	if c.IsComplete() {
		return PhaseComplete
	}
	return PhaseActive
}

func (c *community) Advance(in Input) error {
	if in.Action != ActionChoose {
		return unsupported(c.kind, in.Action)
	}
	if c.IsComplete() {
		return finishedErr(c.id)
	}
	cm := c.comments[len(c.answers)]
	if in.Option < 0 || in.Option >= len(cm.Options) {
		return fmt.Errorf("%w: option %d out of range for comment %s", model.ErrInvalidInput, in.Option, cm.ID)
	}
	opt := cm.Options[in.Option]

	// Only the ceiling is enforced while playing; the floor is applied when
	// the boost is written.
	c.score += opt.Points
	if c.score > c.maxScore {
		c.score = c.maxScore
	}
	c.answers = append(c.answers, CommunityAnswer{
		CommentID: cm.ID,
		Option:    in.Option,
		Points:    opt.Points,
		Feedback:  opt.Feedback,
	})
	return nil
}

func (c *community) Settle() (Reward, error) {
	if err := c.checkSettle(c.IsComplete()); err != nil {
		return Reward{}, err
	}
	pts := max(c.score, 0)
	return Reward{Kind: boost.KindCommunity, Applied: pts > 0, Community: pts}, nil
}

func (c *community) Finalize(l *boost.Ledger) (Reward, error) { return finalize(c, l) }

func (c *community) State() State {
	st := c.state(c.Phase(), c.IsComplete())
	cs := &CommunityState{
		Round:    len(c.answers) + 1,
		Rounds:   len(c.comments),
		Score:    c.score,
		MaxScore: c.maxScore,
		Answers:  append([]CommunityAnswer(nil), c.answers...),
	}
	if c.IsComplete() {
		cs.Round = len(c.comments)
	} else {
		cm := c.comments[len(c.answers)]
		v := &CommentView{ID: cm.ID, Author: cm.Author, Text: cm.Text, Type: cm.Type}
		for _, o := range cm.Options {
			v.Options = append(v.Options, o.Text)
		}
		cs.Current = v
	}
	st.Community = cs
	return st
}
