package model

import "math"

// GlobalStats aggregates every stored channel.
type GlobalStats struct {
	TotalChannelsCreated int     `json:"totalChannelsCreated"`
	TotalSubscribers     int     `json:"totalSubscribers"`
	TotalViews           int     `json:"totalViews"`
	TotalMoneyEarned     float64 `json:"totalMoneyEarned"`
}

// Recompute refreshes the aggregate totals from channels. The created
// counter is kept because deleted channels still count.
func (s GlobalStats) Recompute(channels []Channel) GlobalStats {
	out := GlobalStats{TotalChannelsCreated: s.TotalChannelsCreated}
	for _, ch := range channels {
		out.TotalSubscribers += ch.Subscribers
		out.TotalViews += ch.Views
		out.TotalMoneyEarned += ch.TotalEarnings
	}
	out.TotalMoneyEarned = Round2(out.TotalMoneyEarned)
	if out.TotalChannelsCreated < len(channels) {
		out.TotalChannelsCreated = len(channels)
	}
	return out
}

// Round2 rounds to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
