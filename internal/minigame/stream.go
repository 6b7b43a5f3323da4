package minigame

import (
	"fmt"
	"strings"

	"github.com/thedidscuf/GameYoutube/internal/boost"
	"github.com/thedidscuf/GameYoutube/internal/config"
	"github.com/thedidscuf/GameYoutube/internal/dice"
	"github.com/thedidscuf/GameYoutube/internal/model"
)

// PromptView is the live prompt as shown to the player.
type PromptView struct {
	ID          string     `json:"id"`
	Type        PromptType `json:"type"`
	DisplayText string     `json:"displayText"`
	ButtonText  string     `json:"buttonText,omitempty"`
	Keyword     string     `json:"keyword,omitempty"`
	Emojis      []string   `json:"emojis,omitempty"`
	SecondsLeft int        `json:"secondsLeft"`
}

type StreamState struct {
	Countdown   int         `json:"countdown"`
	SecondsLeft int         `json:"secondsLeft"`
	Hype        int         `json:"hype"`
	MaxHype     int         `json:"maxHype"`
	FailHype    int         `json:"failHype"`
	Successes   int         `json:"successes"`
	Failures    int         `json:"failures"`
	AverageHype float64     `json:"averageHype"`
	Prompt      *PromptView `json:"prompt,omitempty"`
}

type stream struct {
	base
	src   dice.Source
	cfg   config.MinigameBalance
	phase Phase

	countdown   int
	secondsLeft int
	hype        int

	prompt      *StreamPrompt
	promptLeft  int
	nextPrompt  int
	successes   int
	failures    int
	accumulated int
}

func newStream(b base, src dice.Source, cfg config.MinigameBalance) *stream {
	s := &stream{
		base:        b,
		src:         src,
		cfg:         cfg,
		phase:       PhaseCountdown,
		countdown:   cfg.StreamCountdownSeconds,
		secondsLeft: cfg.StreamSeconds,
		hype:        cfg.StreamInitialHype,
	}
	if s.countdown <= 0 {
		s.goLive()
	}
	return s
}

func (s *stream) Phase() Phase { return s.phase }

func (s *stream) IsComplete() bool {
	return s.phase == PhaseSuccess || s.phase == PhaseFailed
}

func (s *stream) goLive() {
	s.phase = PhasePlaying
	s.hype = s.cfg.StreamInitialHype
	s.scheduleNext()
}

func (s *stream) scheduleNext() {
	span := s.cfg.StreamPromptGapMax - s.cfg.StreamPromptGapMin + 1
	if span < 1 {
		span = 1
	}
	s.nextPrompt = s.cfg.StreamPromptGapMin + s.src.IntN(span)
}

func (s *stream) Advance(in Input) error {
	switch in.Action {
	case ActionTick:
		return s.tick(in)
	case ActionRespond:
		return s.respond(in)
	default:
		return unsupported(s.kind, in.Action)
	}
}

func (s *stream) tick(in Input) error {
	if s.IsComplete() {
		return finishedErr(s.id)
	}
	n, err := tickSeconds(in)
	if err != nil {
		return err
	}
	for i := 0; i < n && !s.IsComplete(); i++ {
		s.step()
	}
	return nil
}

// step advances one second. A failing hype meter wins over the timer
// running out on the same second.
func (s *stream) step() {
	if s.phase == PhaseCountdown {
		s.countdown--
		if s.countdown <= 0 {
			s.goLive()
		}
		return
	}

	s.secondsLeft--
	s.hype -= s.cfg.StreamHypeDecay
	if s.hype < 0 {
		s.hype = 0
	}
	if s.checkFail() {
		return
	}
	if s.secondsLeft <= 0 {
		s.phase = PhaseSuccess
		s.prompt = nil
		return
	}

	if s.prompt != nil {
		s.promptLeft--
		if s.promptLeft <= 0 {
			s.resolve(false)
			s.checkFail()
		}
		return
	}
	s.nextPrompt--
	if s.nextPrompt <= 0 {
		p := StreamPrompts[s.src.IntN(len(StreamPrompts))]
		s.prompt = &p
		s.promptLeft = p.window()
	}
}

func (s *stream) checkFail() bool {
	if s.hype < s.cfg.StreamFailHype {
		s.phase = PhaseFailed
		s.prompt = nil
		return true
	}
	return false
}

func (s *stream) respond(in Input) error {
	if s.IsComplete() {
		return finishedErr(s.id)
	}
	if s.phase != PhasePlaying {
		return fmt.Errorf("%w: stream has not started", model.ErrInvalidState)
	}
	if s.prompt == nil {
		return fmt.Errorf("%w: no active prompt", model.ErrInvalidState)
	}
	s.resolve(s.matches(in))
	s.checkFail()
	return nil
}

func (s *stream) matches(in Input) bool {
	p := s.prompt
	switch p.Type {
	case PromptQuickClick:
		return true
	case PromptKeywordType:
		return strings.EqualFold(strings.TrimSpace(in.Text), p.Keyword)
	case PromptEmojiSelect:
		return in.Text == p.CorrectEmoji
	}
	return false
}

// resolve applies the active prompt's outcome and schedules the next one.
func (s *stream) resolve(ok bool) {
	p := s.prompt
	pts := p.PointsForFailure
	if ok {
		pts = p.PointsForSuccess
	}
	s.hype = clampInt(s.hype+pts, 0, s.cfg.StreamMaxHype)
	if ok {
		s.successes++
		s.accumulated += s.hype
	} else {
		s.failures++
	}
	s.prompt = nil
	s.scheduleNext()
}

func (s *stream) averageHype() float64 {
	if s.successes == 0 {
		return float64(s.cfg.StreamInitialHype)
	}
	return float64(s.accumulated) / float64(s.successes)
}

// Bonus computes the multipliers a stream with the given average hype
// earns.
func Bonus(avg float64, cfg config.MinigameBalance) boost.StreamBonus {
	ratio := 0.0
	if cfg.StreamMaxHype > 0 {
		ratio = avg / float64(cfg.StreamMaxHype)
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	scale := func(max float64) float64 { return model.Round2(1 + (max-1)*ratio) }
	return boost.StreamBonus{
		ViewsMultiplier: scale(cfg.StreamMaxViews),
		SubsMultiplier:  scale(cfg.StreamMaxSubs),
		MoneyMultiplier: scale(cfg.StreamMaxMoney),
	}
}

// Settle on a failed stream yields an unapplied reward.
func (s *stream) Settle() (Reward, error) {
	if err := s.checkSettle(s.IsComplete()); err != nil {
		return Reward{}, err
	}
	if s.phase == PhaseFailed {
		return Reward{Kind: boost.KindStream}, nil
	}
	b := Bonus(s.averageHype(), s.cfg)
	return Reward{Kind: boost.KindStream, Applied: true, Stream: &b}, nil
}

func (s *stream) Finalize(l *boost.Ledger) (Reward, error) { return finalize(s, l) }

func (s *stream) State() State {
	st := s.state(s.phase, s.IsComplete())
	ss := &StreamState{
		Countdown:   s.countdown,
		SecondsLeft: s.secondsLeft,
		Hype:        s.hype,
		MaxHype:     s.cfg.StreamMaxHype,
		FailHype:    s.cfg.StreamFailHype,
		Successes:   s.successes,
		Failures:    s.failures,
		AverageHype: s.averageHype(),
	}
	if ss.Countdown < 0 {
		ss.Countdown = 0
	}
	if p := s.prompt; p != nil {
		ss.Prompt = &PromptView{
			ID:          p.ID,
			Type:        p.Type,
			DisplayText: p.DisplayText,
			ButtonText:  p.ButtonText,
			Keyword:     p.Keyword,
			Emojis:      append([]string(nil), p.Emojis...),
			SecondsLeft: s.promptLeft,
		}
	}
	st.Stream = ss
	return st
}
