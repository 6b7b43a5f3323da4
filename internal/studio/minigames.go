package studio

import (
	"context"
	"fmt"

	"github.com/thedidscuf/GameYoutube/internal/minigame"
	"github.com/thedidscuf/GameYoutube/internal/model"
)

type FinalizeResult struct {
	State  minigame.State  `json:"state"`
	Reward minigame.Reward `json:"reward"`
}

// StartMinigame charges the channel and opens a session. A channel keeps at
// most one live session; starting another abandons the previous one, whose
// energy is not refunded.
func (s *Service) StartMinigame(ctx context.Context, id string, kind model.GameKind) (Outcome[minigame.State], error) {
	var sess minigame.Session
	ch, unlocked, err := s.mutate(ctx, id, func(ch *model.Channel) error {
		var err error
		sess, err = s.engine.StartMinigame(kind, ch)
		return err
	})
	if err != nil {
		return Outcome[minigame.State]{}, err
	}
	st := sess.State()

	s.dropSession(id, "replaced")
	s.sessMu.Lock()
	s.sessions[sess.ID()] = sess
	s.byChannel[id] = sess.ID()
	s.metrics.LiveSessions.Set(float64(len(s.sessions)))
	s.sessMu.Unlock()

	s.metrics.MinigamesStarted.WithLabelValues(string(kind)).Inc()
	s.log.Debug().Str("channel_id", id).Str("session_id", sess.ID()).Str("kind", string(kind)).Int("energy", ch.Energy).Msg("minigame_started")
	return Outcome[minigame.State]{Result: st, Channel: ch, Unlocked: unlocked}, nil
}

func (s *Service) session(sessionID string) (minigame.Session, error) {
	s.sessMu.Lock()
	defer s.sessMu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("minigame session %s: %w", sessionID, model.ErrNotFound)
	}
	return sess, nil
}

// withSession runs fn under the owning channel's lock so session input and
// channel writes never interleave.
func (s *Service) withSession(sessionID string, fn func(minigame.Session) error) error {
	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}
	unlock := s.lockChannel(sess.ChannelID())
	defer unlock()

	// it may have been dropped while we waited for the lock
	if _, err := s.session(sessionID); err != nil {
		return err
	}
	return fn(sess)
}

func (s *Service) MinigameState(_ context.Context, sessionID string) (minigame.State, error) {
	var st minigame.State
	err := s.withSession(sessionID, func(sess minigame.Session) error {
		st = sess.State()
		return nil
	})
	return st, err
}

func (s *Service) AdvanceMinigame(_ context.Context, sessionID string, in minigame.Input) (minigame.State, error) {
	var st minigame.State
	err := s.withSession(sessionID, func(sess minigame.Session) error {
		if err := sess.Advance(in); err != nil {
			return err
		}
		st = sess.State()
		return nil
	})
	return st, err
}

// FinalizeMinigame writes the session's boost into its channel and closes
// the session. The session stays open, and finalize can be retried, when
// the channel cannot be saved.
func (s *Service) FinalizeMinigame(ctx context.Context, sessionID string) (Outcome[FinalizeResult], error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return Outcome[FinalizeResult]{}, err
	}

	var (
		reward  minigame.Reward
		st      minigame.State
		outcome string
	)
	ch, unlocked, err := s.mutateThen(ctx, sess.ChannelID(), func(ch *model.Channel) error {
		if _, err := s.session(sessionID); err != nil {
			return err
		}
		var err error
		if reward, err = sess.Settle(); err != nil {
			return err
		}
		reward.ApplyTo(&ch.Boosts)
		return nil
	}, func(model.Channel) {
		sess.MarkFinalized()
		st = sess.State()
		outcome = string(st.Phase)
		s.removeSession(sess, outcome)
	})
	if err != nil {
		return Outcome[FinalizeResult]{}, err
	}

	s.log.Debug().
		Str("channel_id", ch.ID).
		Str("session_id", sessionID).
		Str("kind", string(sess.Kind())).
		Str("outcome", outcome).
		Bool("applied", reward.Applied).
		Msg("minigame_finalized")

	return Outcome[FinalizeResult]{
		Result:   FinalizeResult{State: st, Reward: reward},
		Channel:  ch,
		Unlocked: unlocked,
	}, nil
}

// AbandonMinigame drops a session without writing any boost.
func (s *Service) AbandonMinigame(_ context.Context, sessionID string) error {
	return s.withSession(sessionID, func(sess minigame.Session) error {
		s.removeSession(sess, "abandoned")
		s.log.Debug().Str("channel_id", sess.ChannelID()).Str("session_id", sessionID).Msg("minigame_abandoned")
		return nil
	})
}

// LiveSession returns the id of the channel's open session, if any.
func (s *Service) LiveSession(channelID string) (string, bool) {
	s.sessMu.Lock()
	defer s.sessMu.Unlock()
	id, ok := s.byChannel[channelID]
	return id, ok
}

func (s *Service) removeSession(sess minigame.Session, outcome string) {
	s.sessMu.Lock()
	defer s.sessMu.Unlock()
	if _, ok := s.sessions[sess.ID()]; !ok {
		return
	}
	delete(s.sessions, sess.ID())
	if s.byChannel[sess.ChannelID()] == sess.ID() {
		delete(s.byChannel, sess.ChannelID())
	}
	s.metrics.MinigamesFinished.WithLabelValues(string(sess.Kind()), outcome).Inc()
	s.metrics.LiveSessions.Set(float64(len(s.sessions)))
}

// dropSession abandons whatever session channelID holds.
func (s *Service) dropSession(channelID, outcome string) {
	s.sessMu.Lock()
	id, ok := s.byChannel[channelID]
	var sess minigame.Session
	if ok {
		sess = s.sessions[id]
	}
	s.sessMu.Unlock()
	if sess != nil {
		s.removeSession(sess, outcome)
	}
}
