package game

import (
	"fmt"
	"math"

	"github.com/thedidscuf/GameYoutube/internal/achievement"
	"github.com/thedidscuf/GameYoutube/internal/config"
	"github.com/thedidscuf/GameYoutube/internal/dice"
	"github.com/thedidscuf/GameYoutube/internal/economy"
	"github.com/thedidscuf/GameYoutube/internal/minigame"
	"github.com/thedidscuf/GameYoutube/internal/model"

	"github.com/google/uuid"
)

// Engine applies game rules to a single channel snapshot. It does no I/O;
// persistence and locking belong to the caller.
type Engine struct {
	Balance config.Balance
	Rand    dice.Source
	Clock   Clock
}

func NewEngine(bal config.Balance, src dice.Source, clock Clock) Engine {
	if src == nil {
		src = dice.NewFromTime()
	}
	if clock == nil {
		clock = SystemClock
	}
	return Engine{Balance: bal, Rand: src, Clock: clock}
}

// NewChannel builds a fresh channel using the configured starting energy.
func (e Engine) NewChannel(name, picture string, premium bool) model.Channel {
	ch := model.NewChannel(uuid.NewString(), name, picture, premium, e.Clock.Now())
	if e.Balance.StartingEnergy > 0 {
		ch.Energy = e.Balance.StartingEnergy
		ch.MaxEnergy = e.Balance.StartingEnergy
	}
	return ch
}

type DayResult struct {
	Day               int  `json:"day"`
	EnergyRegenerated int  `json:"energyRegenerated"`
	ViewsGained       int  `json:"viewsGained"`
	SubscribersGained int  `json:"subscribersGained"`
	VideosGrowing     int  `json:"videosGrowing"`
	Monetized         bool `json:"monetized"`
}

// AdvanceDay moves ch one simulated day forward: energy regenerates and
// every existing video picks up a share of its views again.
func (e Engine) AdvanceDay(ch *model.Channel) DayResult {
	b := e.Balance
	ch.Day++

	before := ch.Energy
	ch.Energy = min(ch.MaxEnergy, ch.Energy+b.EnergyRegenPerDay)
	res := DayResult{Day: ch.Day, EnergyRegenerated: max(0, ch.Energy-before)}

	for i := range ch.Videos {
		v := &ch.Videos[i]
		dv := int(math.Floor(float64(v.Views) * b.DailyViewRate * dice.Uniform(e.Rand, b.DailyJitterLow, b.DailyJitterHigh)))
		ds := int(math.Floor(float64(dv) * b.DailySubRate * dice.Uniform(e.Rand, b.DailyJitterLow, b.DailyJitterHigh)))
		v.Views += dv
		v.SubscribersGained += ds
		res.ViewsGained += dv
		res.SubscribersGained += ds
		if dv > 0 {
			res.VideosGrowing++
		}
	}
	ch.Views += res.ViewsGained
	ch.Subscribers += res.SubscribersGained

	res.Monetized = economy.Latch(ch, b)
	return res
}

type UploadResult struct {
	economy.Outcome
	Monetized bool `json:"monetized"`
}

// Upload validates the choices, simulates the video and applies it to ch.
// On error ch is unchanged.
func (e Engine) Upload(ch *model.Channel, choices economy.UploadChoices) (UploadResult, error) {
	out, err := economy.ComputeUpload(*ch, choices, e.Rand, e.Balance, e.Clock.Now())
	if err != nil {
		return UploadResult{}, fmt.Errorf("upload: %w", err)
	}
	on := economy.Apply(ch, out, e.Balance)
	return UploadResult{Outcome: out, Monetized: on}, nil
}

func (e Engine) Upgrade(ch *model.Channel, slot model.EquipmentSlot) (economy.UpgradeResult, error) {
	res, err := economy.Upgrade(ch, slot)
	if err != nil {
		return economy.UpgradeResult{}, fmt.Errorf("upgrade %s: %w", slot, err)
	}
	return res, nil
}

func (e Engine) ActivateMonetization(ch *model.Channel) (bool, error) {
	return economy.Activate(ch, e.Balance)
}

func (e Engine) StartMinigame(kind model.GameKind, ch *model.Channel) (minigame.Session, error) {
	return minigame.Start(kind, ch, e.Rand, e.Balance)
}

// EvaluateAchievements unlocks whatever ch now qualifies for and pays the
// rewards.
func (e Engine) EvaluateAchievements(ch *model.Channel) ([]achievement.Achievement, achievement.Reward) {
	unlocked := achievement.Evaluate(*ch)
	if len(unlocked) == 0 {
		return nil, achievement.Reward{}
	}
	return unlocked, achievement.Apply(ch, unlocked)
}
