package model

import (
	"time"

	"github.com/thedidscuf/GameYoutube/internal/boost"
)

const (
	StartingEnergy    = 100
	StartingMaxEnergy = 100
	StartingDay       = 1
)

// GameKind identifies one of the once-per-day minigames.
type GameKind string

const (
	GameCommunity GameKind = "community"
	GameThumbnail GameKind = "thumbnail"
	GameStream    GameKind = "stream"
)

func (k GameKind) Valid() bool {
	switch k {
	case GameCommunity, GameThumbnail, GameStream:
		return true
	default:
		return false
	}
}

// DayLocks stores the last simulated day each minigame was started on.
type DayLocks struct {
	Community int `json:"lastCommunityGamePlayedDay"`
	Thumbnail int `json:"lastThumbnailGamePlayedDay"`
	Stream    int `json:"lastStreamGamePlayedDay"`
}

func (d DayLocks) Get(k GameKind) int {
	switch k {
	case GameCommunity:
		return d.Community
	case GameThumbnail:
		return d.Thumbnail
	case GameStream:
		return d.Stream
	}
	return 0
}

func (d *DayLocks) Set(k GameKind, day int) {
	switch k {
	case GameCommunity:
		d.Community = day
	case GameThumbnail:
		d.Thumbnail = day
	case GameStream:
		d.Stream = day
	}
}

type Channel struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Premium        bool   `json:"premium"`

	Subscribers   int     `json:"subscribers"`
	Views         int     `json:"views"`
	Money         float64 `json:"money"`
	WatchHours    float64 `json:"watchHours"`
	TotalEarnings float64 `json:"totalEarnings"`

	Energy    int `json:"energy"`
	MaxEnergy int `json:"maxEnergy"`
	Day       int `json:"day"`

	IsMonetized bool `json:"isMonetized"`

	Equipment    Equipment    `json:"equipment"`
	Achievements []string     `json:"achievements"`
	Videos       []Video      `json:"videos"`
	Boosts       boost.Ledger `json:"boosts"`
	DayLocks     DayLocks     `json:"dayLocks"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewChannel returns a fresh channel on day 1 with basic equipment.
func NewChannel(id, name, picture string, premium bool, now time.Time) Channel {
	return Channel{
		ID:             id,
		Name:           name,
		ProfilePicture: picture,
		Premium:        premium,
		Energy:         StartingEnergy,
		MaxEnergy:      StartingMaxEnergy,
		Day:            StartingDay,
		Equipment:      BasicEquipment(),
		Achievements:   []string{},
		Videos:         []Video{},
		CreatedAt:      now,
	}
}

func (c Channel) VideosUploaded() int { return len(c.Videos) }

func (c Channel) HasAchievement(id string) bool {
	for _, a := range c.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// ClampEnergy pulls energy back into [0, maxEnergy].
func (c *Channel) ClampEnergy() {
	if c.Energy > c.MaxEnergy {
		c.Energy = c.MaxEnergy
	}
	if c.Energy < 0 {
		c.Energy = 0
	}
}

func (c Channel) Clone() Channel {
	out := c
	out.Achievements = append([]string(nil), c.Achievements...)
	if out.Achievements == nil {
		out.Achievements = []string{}
	}
	out.Videos = append([]Video(nil), c.Videos...)
	if out.Videos == nil {
		out.Videos = []Video{}
	}
	out.Boosts = c.Boosts.Clone()
	return out
}
