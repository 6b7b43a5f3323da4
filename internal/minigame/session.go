// Package minigame runs the three once-per-day minigames as explicit state
// machines. Time only moves when a tick input arrives, so a session can be
// driven by a browser timer, a test, or a replay alike.
//
// Sessions are not safe for concurrent use; callers serialize access per
// channel.
package minigame

import (
	"fmt"

	"github.com/thedidscuf/GameYoutube/internal/boost"
	"github.com/thedidscuf/GameYoutube/internal/config"
	"github.com/thedidscuf/GameYoutube/internal/dice"
	"github.com/thedidscuf/GameYoutube/internal/model"

	"github.com/google/uuid"
)

type Phase string

const (
	PhaseActive    Phase = "active"
	PhaseComplete  Phase = "complete"
	PhasePlaying   Phase = "playing"
	PhaseFinished  Phase = "finished"
	PhaseCountdown Phase = "countdown"
	PhaseSuccess   Phase = "success"
	PhaseFailed    Phase = "failed"
)

type Action string

const (
	ActionTick    Action = "tick"
	ActionChoose  Action = "choose"
	ActionSelect  Action = "select"
	ActionRespond Action = "respond"
)

// Input is one player or clock event.
type Input struct {
	Action      Action `json:"action"`
	Seconds     int    `json:"seconds,omitempty"`
	Option      int    `json:"option"`
	ComponentID string `json:"componentId,omitempty"`
	Text        string `json:"text,omitempty"`
}

// Reward is what Finalize wrote into the ledger. Applied is false for a
// failed stream.
type Reward struct {
	Kind         boost.Kind         `json:"kind"`
	Applied      bool               `json:"applied"`
	Community    int                `json:"community,omitempty"`
	ThumbnailCTR float64            `json:"thumbnailCTR,omitempty"`
	Stream       *boost.StreamBonus `json:"stream,omitempty"`
}

// State is a JSON snapshot of a session. Exactly one of the per-kind
// fields is set.
type State struct {
	ID        string         `json:"id"`
	Kind      model.GameKind `json:"kind"`
	ChannelID string         `json:"channelId"`
	Phase     Phase          `json:"phase"`
	Complete  bool           `json:"complete"`
	Finalized bool           `json:"finalized"`

	Community *CommunityState `json:"community,omitempty"`
	Thumbnail *ThumbnailState `json:"thumbnail,omitempty"`
	Stream    *StreamState    `json:"stream,omitempty"`
}

type Session interface {
	ID() string
	Kind() model.GameKind
	ChannelID() string
	Phase() Phase
	IsComplete() bool
	Advance(in Input) error
	// Settle reports the reward Finalize would write without changing the
	// session. It fails once the session is finalized or while it still runs.
	Settle() (Reward, error)
	// MarkFinalized closes the session after its reward has been persisted.
	MarkFinalized()
	// Finalize writes the session's boost into l. It may only be called
	// once, after IsComplete reports true.
	Finalize(l *boost.Ledger) (Reward, error)
	State() State
}

// Cost returns the energy a minigame charges up front.
func Cost(kind model.GameKind, bal config.Balance) int {
	switch kind {
	case model.GameCommunity:
		return bal.Minigames.CommunityCost
	case model.GameThumbnail:
		return bal.Minigames.ThumbnailCost
	case model.GameStream:
		return bal.Minigames.StreamCost
	}
	return 0
}

// CanStart checks the day lock and energy without touching ch.
func CanStart(kind model.GameKind, ch model.Channel, bal config.Balance) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown minigame %q", model.ErrInvalidInput, kind)
	}
	if ch.DayLocks.Get(kind) == ch.Day {
		return fmt.Errorf("%s on day %d: %w", kind, ch.Day, model.ErrAlreadyPlayedToday)
	}
	if cost := Cost(kind, bal); ch.Energy < cost {
		return fmt.Errorf("%s needs %d energy, have %d: %w", kind, cost, ch.Energy, model.ErrInsufficientEnergy)
	}
	return nil
}

// Start charges the entry cost, locks the minigame for the current day and
// returns a fresh session. On error ch is left unchanged.
func Start(kind model.GameKind, ch *model.Channel, src dice.Source, bal config.Balance) (Session, error) {
	if err := CanStart(kind, *ch, bal); err != nil {
		return nil, err
	}
	ch.Energy -= Cost(kind, bal)
	ch.ClampEnergy()
	ch.DayLocks.Set(kind, ch.Day)

	b := base{id: uuid.NewString(), kind: kind, channelID: ch.ID}
	switch kind {
	case model.GameCommunity:
		return newCommunity(b, src, bal.Minigames), nil
	case model.GameThumbnail:
		return newThumbnail(b, src, bal.Minigames), nil
	default:
		return newStream(b, src, bal.Minigames), nil
	}
}

type base struct {
	id        string
	kind      model.GameKind
	channelID string
	finalized bool
}

func (b *base) ID() string           { return b.id }
func (b *base) Kind() model.GameKind { return b.kind }
func (b *base) ChannelID() string    { return b.channelID }

func (b *base) state(phase Phase, complete bool) State {
	return State{
		ID:        b.id,
		Kind:      b.kind,
		ChannelID: b.channelID,
		Phase:     phase,
		Complete:  complete,
		Finalized: b.finalized,
	}
}

// checkSettle guards the finalize path shared by every kind.
func (b *base) checkSettle(complete bool) error {
	if b.finalized {
		return fmt.Errorf("%w: session %s already finalized", model.ErrInvalidState, b.id)
	}
	if !complete {
		return fmt.Errorf("%w: session %s is still running", model.ErrInvalidState, b.id)
	}
	return nil
}

func (b *base) MarkFinalized() { b.finalized = true }

// ApplyTo writes r into l. A reward that was not applied writes nothing.
func (r Reward) ApplyTo(l *boost.Ledger) {
	switch r.Kind {
	case boost.KindCommunity:
		l.AddCommunity(r.Community)
	case boost.KindThumbnailCTR:
		l.AddThumbnailCTR(r.ThumbnailCTR)
	case boost.KindStream:
		if r.Applied && r.Stream != nil {
			l.SetStream(*r.Stream)
		}
	}
}

func finalize(s Session, l *boost.Ledger) (Reward, error) {
	r, err := s.Settle()
	if err != nil {
		return Reward{}, err
	}
	r.ApplyTo(l)
	s.MarkFinalized()
	return r, nil
}

func unsupported(kind model.GameKind, a Action) error {
	return fmt.Errorf("%w: %s does not accept %q", model.ErrInvalidInput, kind, a)
}

func finishedErr(id string) error {
	return fmt.Errorf("%w: session %s is over", model.ErrInvalidState, id)
}

// tickSeconds normalizes the tick length; zero means one second.
func tickSeconds(in Input) (int, error) {
	switch {
	case in.Seconds < 0:
		return 0, fmt.Errorf("%w: negative tick", model.ErrInvalidInput)
	case in.Seconds == 0:
		return 1, nil
	default:
		return in.Seconds, nil
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
