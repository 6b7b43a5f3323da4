package economy

import (
	"github.com/thedidscuf/GameYoutube/internal/config"
	"github.com/thedidscuf/GameYoutube/internal/model"
)

// EvaluateMonetization reports whether ch meets the partner program
// thresholds. It does not look at the current latch.
func EvaluateMonetization(ch model.Channel, bal config.Balance) bool {
	return ch.Subscribers >= bal.MonetizationSubscribers && ch.WatchHours >= bal.MonetizationWatchHours
}

// Latch switches monetization on when eligible. Once on it never goes off.
// Returns true only on the transition.
func Latch(ch *model.Channel, bal config.Balance) bool {
	if ch.IsMonetized || !EvaluateMonetization(*ch, bal) {
		return false
	}
	ch.IsMonetized = true
	return true
}

// Activate is the explicit "join the partner program" action.
func Activate(ch *model.Channel, bal config.Balance) (bool, error) {
	if ch.IsMonetized {
		return false, nil
	}
	if !EvaluateMonetization(*ch, bal) {
		return false, model.ErrNotEligible
	}
	return Latch(ch, bal), nil
}
