// Package page holds the server-rendered HTML pages. The markup lives in
// .templ files; run `templ generate` after editing them.
package page

import (
	"fmt"

	"github.com/thedidscuf/GameYoutube/internal/model"
)

// DashboardData is everything the dashboard renders.
type DashboardData struct {
	Stats        model.GlobalStats
	Channels     []model.Channel
	ActiveID     string
	ChannelLimit int
	Premium      bool
}

func (d DashboardData) planLabel() string {
	if d.Premium {
		return "Premium"
	}
	return "Free"
}

func money(v float64) string { return fmt.Sprintf("$%.2f", v) }

func energy(ch model.Channel) string { return fmt.Sprintf("%d/%d", ch.Energy, ch.MaxEnergy) }

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
