package economy

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/thedidscuf/GameYoutube/internal/boost"
	"github.com/thedidscuf/GameYoutube/internal/config"
	"github.com/thedidscuf/GameYoutube/internal/dice"
	"github.com/thedidscuf/GameYoutube/internal/model"

	"github.com/google/uuid"
)

// UploadChoices is what the player picks in the upload form.
type UploadChoices struct {
	Title           string                `json:"title"`
	Genre           string                `json:"genre"`
	SubGenre        string                `json:"subGenre,omitempty"`
	RecordingMethod model.RecordingMethod `json:"recordingMethod"`
}

// Delta is the change an upload makes to its channel.
type Delta struct {
	EnergySpent int          `json:"energySpent"`
	Subscribers int          `json:"subscribers"`
	Views       int          `json:"views"`
	Money       float64      `json:"money"`
	WatchHours  float64      `json:"watchHours"`
	Consumed    []boost.Kind `json:"consumedBoosts"`
}

type Outcome struct {
	Video           model.Video `json:"video"`
	Delta           Delta       `json:"delta"`
	ViralMultiplier float64     `json:"viralMultiplier,omitempty"`
}

// Validate runs the upload preconditions in order. The first failure wins.
func Validate(ch model.Channel, choices UploadChoices, bal config.Balance) error {
	if cost := bal.VideoEnergyCost(ch.Premium); ch.Energy < cost {
		return fmt.Errorf("upload needs %d energy, have %d: %w", cost, ch.Energy, model.ErrInsufficientEnergy)
	}
	if strings.TrimSpace(choices.Title) == "" {
		return model.ErrInvalidTitle
	}
	if strings.TrimSpace(choices.Genre) == "" {
		return model.ErrInvalidGenre
	}
	g, ok := LookupGenre(choices.Genre)
	if !ok {
		return fmt.Errorf("%w: %q", model.ErrInvalidGenre, choices.Genre)
	}
	if len(g.SubGenres) > 0 {
		if strings.TrimSpace(choices.SubGenre) == "" {
			return model.ErrInvalidSubGenre
		}
		if !g.HasSubGenre(choices.SubGenre) {
			return fmt.Errorf("%w: %q is not a %s sub-genre", model.ErrInvalidSubGenre, choices.SubGenre, g.Name)
		}
	}
	if _, ok := MethodMultiplier(choices.RecordingMethod); !ok {
		return fmt.Errorf("%w: %q", model.ErrInvalidRecordingMethod, choices.RecordingMethod)
	}
	return nil
}

// ComputeUpload works out a new video from a channel snapshot. ch is not
// modified; pass the outcome to Apply.
//
// The order of the steps matters: boosts are applied at different stages and
// money is fixed before the stream bonus multiplies views.
func ComputeUpload(ch model.Channel, choices UploadChoices, src dice.Source, bal config.Balance, now time.Time) (Outcome, error) {
	if err := Validate(ch, choices, bal); err != nil {
		return Outcome{}, err
	}
	u := bal.Upload
	methodMult, _ := MethodMultiplier(choices.RecordingMethod)
	quality := QualityMultiplier(ch.Equipment)

	premiumViews := 1.0
	premiumEarnings := 1.0
	if ch.Premium {
		premiumViews = u.PremiumViewsMultiplier
		premiumEarnings = bal.PremiumEarningsMultiplier
	}

	var consumed []boost.Kind

	base := float64(u.BaseViews) + math.Floor(src.Float64()*(float64(ch.Subscribers)*u.BaseViewsPerSubscriber+u.BaseViewsSpread))

	viral := 1.0
	if src.Float64() < u.ViralChance {
		viral = dice.Uniform(src, u.ViralMin, u.ViralMax)
	}

	views := floorInt(base * (1 + quality) * methodMult * premiumViews * viral)

	if ctr := ch.Boosts.ThumbnailCTR; ctr > 0 {
		views = floorInt(float64(views) * (1 + ctr))
		consumed = append(consumed, boost.KindThumbnailCTR)
	}

	minViews := u.MinViews + floorInt(src.Float64()*float64(u.MinViewsSpread))
	if views < minViews {
		views = minViews
	}

	subRate := dice.Uniform(src, u.SubRateLow, u.SubRateHigh)
	subs := floorInt(float64(views) * subRate * (1 + quality*0.5))

	if pts := ch.Boosts.Community; pts > 0 {
		factor := 1 + float64(pts)*u.CommunityPerPoint
		views = floorInt(float64(views) * factor)
		subs = floorInt(float64(subs) * factor)
		consumed = append(consumed, boost.KindCommunity)
	}

	watch := model.Round2(float64(views) * u.WatchHoursPerView * (1 + EditingBoost(ch.Equipment)*0.5))

	money := 0.0
	if ch.IsMonetized {
		money = model.Round2(float64(views) / 1000 * bal.MoneyPerThousandViews * premiumEarnings)
	}

	if sb := ch.Boosts.Stream; sb != nil {
		views = floorInt(float64(views) * sb.ViewsMultiplier)
		subs = floorInt(float64(subs) * sb.SubsMultiplier)
		if ch.IsMonetized {
			money = model.Round2(money * sb.MoneyMultiplier)
		}
		consumed = append(consumed, boost.KindStream)
	}

	v := model.Video{
		ID:                uuid.NewString(),
		Title:             strings.TrimSpace(choices.Title),
		Genre:             choices.Genre,
		RecordingMethod:   choices.RecordingMethod,
		UploadDay:         ch.Day,
		UploadedAt:        now,
		Views:             views,
		SubscribersGained: subs,
		MoneyGained:       money,
		WatchHoursGained:  watch,
	}
	if g, _ := LookupGenre(choices.Genre); len(g.SubGenres) > 0 {
		v.SubGenre = choices.SubGenre
	}

	out := Outcome{
		Video: v,
		Delta: Delta{
			EnergySpent: bal.VideoEnergyCost(ch.Premium),
			Subscribers: subs,
			Views:       views,
			Money:       money,
			WatchHours:  watch,
			Consumed:    consumed,
		},
	}
	if viral > 1 {
		out.ViralMultiplier = viral
	}
	return out, nil
}

// Apply writes an upload outcome into ch and re-checks monetization.
// It reports whether monetization switched on as a result.
func Apply(ch *model.Channel, out Outcome, bal config.Balance) bool {
	ch.Energy -= out.Delta.EnergySpent
	ch.ClampEnergy()

	ch.Videos = append([]model.Video{out.Video}, ch.Videos...)
	ch.Subscribers += out.Delta.Subscribers
	ch.Views += out.Delta.Views
	ch.Money = model.Round2(ch.Money + out.Delta.Money)
	ch.TotalEarnings = model.Round2(ch.TotalEarnings + out.Delta.Money)
	ch.WatchHours = model.Round2(ch.WatchHours + out.Delta.WatchHours)

	for _, k := range out.Delta.Consumed {
		switch k {
		case boost.KindThumbnailCTR:
			ch.Boosts.TakeThumbnailCTR()
		case boost.KindCommunity:
			ch.Boosts.TakeCommunity()
		case boost.KindStream:
			ch.Boosts.TakeStream()
		}
	}

	return Latch(ch, bal)
}

func floorInt(v float64) int {
	if v <= 0 {
		return 0
	}
	return int(math.Floor(v))
}
