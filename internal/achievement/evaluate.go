package achievement

import (
	"math"

	"github.com/thedidscuf/GameYoutube/internal/model"
)

// Progress tracks how far a channel is toward one achievement.
type Progress struct {
	Current  float64 `json:"current"`
	Required float64 `json:"required"`
	Complete bool    `json:"complete"`
	Percent  float64 `json:"percent"`
}

// Status is an achievement as seen by one channel.
type Status struct {
	Achievement
	Unlocked bool     `json:"unlocked"`
	Progress Progress `json:"progress"`
}

// Current reads the statistic m from ch.
func Current(ch model.Channel, m Milestone) float64 {
	switch m {
	case MilestoneSubscribers:
		return float64(ch.Subscribers)
	case MilestoneViews:
		return float64(ch.Views)
	case MilestoneWatchHours:
		return ch.WatchHours
	case MilestoneVideosUploaded:
		return float64(ch.VideosUploaded())
	case MilestoneTotalEarnings:
		return ch.TotalEarnings
	case MilestoneMoney:
		return ch.Money
	}
	return 0
}

func ProgressFor(ch model.Channel, a Achievement) Progress {
	cur := Current(ch, a.Milestone)
	p := Progress{Current: cur, Required: a.Value, Complete: cur >= a.Value}
	switch {
	case a.Value <= 0 || p.Complete:
		p.Percent = 100
	default:
		p.Percent = math.Floor(cur/a.Value*1000) / 10
	}
	return p
}

// Evaluate returns the achievements ch qualifies for but has not unlocked,
// in catalog order.
func Evaluate(ch model.Channel) []Achievement {
	var out []Achievement
	for _, a := range catalog {
		if ch.HasAchievement(a.ID) {
			continue
		}
		if Current(ch, a.Milestone) >= a.Value {
			out = append(out, a)
		}
	}
	return out
}

// Apply records unlocked on ch and pays out their rewards. Money goes to
// the spendable balance only; energy boosts raise the cap without refilling.
// Already-held ids are skipped.
func Apply(ch *model.Channel, unlocked []Achievement) Reward {
	var total Reward
	for _, a := range unlocked {
		if ch.HasAchievement(a.ID) {
			continue
		}
		ch.Achievements = append(ch.Achievements, a.ID)
		total.Money += a.Reward.Money
		total.EnergyBoost += a.Reward.EnergyBoost
	}
	ch.Money = model.Round2(ch.Money + total.Money)
	ch.MaxEnergy += total.EnergyBoost
	return total
}

// Statuses lists the whole catalog with ch's progress.
func Statuses(ch model.Channel) []Status {
	out := make([]Status, 0, len(catalog))
	for _, a := range catalog {
		out = append(out, Status{
			Achievement: a,
			Unlocked:    ch.HasAchievement(a.ID),
			Progress:    ProgressFor(ch, a),
		})
	}
	return out
}
