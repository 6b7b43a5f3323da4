package minigame

import (
	"fmt"

	"github.com/thedidscuf/GameYoutube/internal/boost"
	"github.com/thedidscuf/GameYoutube/internal/config"
	"github.com/thedidscuf/GameYoutube/internal/dice"
	"github.com/thedidscuf/GameYoutube/internal/model"
)

type ThumbnailState struct {
	SecondsLeft int                                  `json:"secondsLeft"`
	Score       int                                  `json:"score"`
	MaxScore    int                                  `json:"maxScore"`
	Reel        []ThumbnailComponent                 `json:"reel"`
	Selected    map[ComponentType]ThumbnailComponent `json:"selected"`
}

type thumbnail struct {
	base
	src          dice.Source
	cfg          config.MinigameBalance
	secondsLeft  int
	sinceRefresh int
	reel         []ThumbnailComponent
	selected     map[ComponentType]ThumbnailComponent
	score        int
}

func newThumbnail(b base, src dice.Source, cfg config.MinigameBalance) *thumbnail {
	t := &thumbnail{
		base:        b,
		src:         src,
		cfg:         cfg,
		secondsLeft: cfg.ThumbnailSeconds,
		selected:    map[ComponentType]ThumbnailComponent{},
	}
	t.refresh()
	return t
}

// refresh deals a new reel: one component per category, then distinct
// extras from the rest of the catalog, shuffled together.
func (t *thumbnail) refresh() {
	size := t.cfg.ThumbnailReelSize
	reel := make([]ThumbnailComponent, 0, size)
	taken := map[string]bool{}

	for _, typ := range ComponentTypes {
		if len(reel) == size {
			break
		}
		var cands []ThumbnailComponent
		for _, c := range ThumbnailComponents {
			if c.Type == typ {
				cands = append(cands, c)
			}
		}
		if len(cands) == 0 {
			continue
		}
		pick := cands[t.src.IntN(len(cands))]
		reel = append(reel, pick)
		taken[pick.ID] = true
	}

	var rest []ThumbnailComponent
	for _, c := range ThumbnailComponents {
		if !taken[c.ID] {
			rest = append(rest, c)
		}
	}
	dice.Shuffle(t.src, len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	for _, c := range rest {
		if len(reel) == size {
			break
		}
		reel = append(reel, c)
	}

	dice.Shuffle(t.src, len(reel), func(i, j int) { reel[i], reel[j] = reel[j], reel[i] })
	t.reel = reel
	t.sinceRefresh = 0
}

func (t *thumbnail) IsComplete() bool { return t.secondsLeft <= 0 }

func (t *thumbnail) Phase() Phase {
	if t.IsComplete() {
		return PhaseFinished
	}
	return PhasePlaying
}

func (t *thumbnail) Advance(in Input) error {
	switch in.Action {
	case ActionTick:
		return t.tick(in)
	case ActionSelect:
		return t.pick(in.ComponentID)
	default:
		return unsupported(t.kind, in.Action)
	}
}

func (t *thumbnail) tick(in Input) error {
	if t.IsComplete() {
		return finishedErr(t.id)
	}
	n, err := tickSeconds(in)
	if err != nil {
		return err
	}
	for i := 0; i < n && !t.IsComplete(); i++ {
		t.secondsLeft--
		t.sinceRefresh++
		if t.IsComplete() {
			break
		}
		if t.sinceRefresh >= t.cfg.ThumbnailReelInterval {
			t.refresh()
		}
	}
	return nil
}

func (t *thumbnail) pick(id string) error {
	if t.IsComplete() {
		return finishedErr(t.id)
	}
	var comp ThumbnailComponent
	found := false
	for _, c := range t.reel {
		if c.ID == id {
			comp, found = c, true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: component %q is not on the reel", model.ErrInvalidInput, id)
	}

	change := comp.Points
	if old, ok := t.selected[comp.Type]; ok {
		change -= old.Points
	}
	t.score = clampInt(t.score+change, 0, t.cfg.ThumbnailMaxScore)
	t.selected[comp.Type] = comp
	t.refresh()
	return nil
}

// CTRBoost converts a score into the click-through boost it earns.
func CTRBoost(score int, cfg config.MinigameBalance) float64 {
	if cfg.ThumbnailMaxScore <= 0 {
		return 0
	}
	v := float64(score) / float64(cfg.ThumbnailMaxScore) * cfg.ThumbnailMaxCTR
	if v < 0 {
		return 0
	}
	if v > cfg.ThumbnailMaxCTR {
		return cfg.ThumbnailMaxCTR
	}
	return v
}

func (t *thumbnail) Settle() (Reward, error) {
	if err := t.checkSettle(t.IsComplete()); err != nil {
		return Reward{}, err
	}
	ctr := CTRBoost(t.score, t.cfg)
	return Reward{Kind: boost.KindThumbnailCTR, Applied: ctr > 0, ThumbnailCTR: ctr}, nil
}

func (t *thumbnail) Finalize(l *boost.Ledger) (Reward, error) { return finalize(t, l) }

func (t *thumbnail) State() State {
	st := t.state(t.Phase(), t.IsComplete())
	sel := make(map[ComponentType]ThumbnailComponent, len(t.selected))
	for k, v := range t.selected {
		sel[k] = v
	}
	st.Thumbnail = &ThumbnailState{
		SecondsLeft: t.secondsLeft,
		Score:       t.score,
		MaxScore:    t.cfg.ThumbnailMaxScore,
		Reel:        append([]ThumbnailComponent(nil), t.reel...),
		Selected:    sel,
	}
	return st
}
