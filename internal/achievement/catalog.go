// Package achievement holds the milestone catalog and turns channel totals
// into unlocks and rewards.
package achievement

// Milestone is the channel statistic an achievement watches.
type Milestone string

const (
	MilestoneSubscribers    Milestone = "subscribers"
	MilestoneViews          Milestone = "views"
	MilestoneWatchHours     Milestone = "watchHours"
	MilestoneVideosUploaded Milestone = "videosUploaded"
	MilestoneTotalEarnings  Milestone = "totalEarnings"
	MilestoneMoney          Milestone = "money"
)

type Reward struct {
	Money       float64 `json:"money,omitempty"`
	EnergyBoost int     `json:"energyBoost,omitempty"`
}

type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Milestone   Milestone `json:"milestoneType"`
	Value       float64   `json:"milestoneValue"`
	Reward      Reward    `json:"reward"`
}

// catalog order is evaluation order.
var catalog = []Achievement{
	{ID: "subs_10", Name: "First Steps", Description: "Reach 10 subscribers.", Icon: "fas fa-shoe-prints", Milestone: MilestoneSubscribers, Value: 10, Reward: Reward{Money: 10}},
	{ID: "subs_100", Name: "Growing Community", Description: "Reach 100 subscribers.", Icon: "fas fa-users", Milestone: MilestoneSubscribers, Value: 100, Reward: Reward{Money: 50}},
	{ID: "subs_500", Name: "Half a K", Description: "Reach 500 subscribers.", Icon: "fas fa-user-friends", Milestone: MilestoneSubscribers, Value: 500, Reward: Reward{Money: 100}},
	{ID: "subs_1000", Name: "The Big K!", Description: "Reach 1,000 subscribers.", Icon: "fas fa-star", Milestone: MilestoneSubscribers, Value: 1000, Reward: Reward{Money: 200, EnergyBoost: 10}},
	{ID: "subs_10000", Name: "Viral Sensation", Description: "Reach 10,000 subscribers.", Icon: "fas fa-fire", Milestone: MilestoneSubscribers, Value: 10000, Reward: Reward{Money: 1000, EnergyBoost: 20}},
	{ID: "subs_100000", Name: "Silver Button (Virtual)", Description: "Reach 100,000 subscribers.", Icon: "fas fa-award", Milestone: MilestoneSubscribers, Value: 100000, Reward: Reward{Money: 5000, EnergyBoost: 50}},
	{ID: "subs_1000000", Name: "Subscriber Millionaire", Description: "Reach 1,000,000 subscribers.", Icon: "fas fa-trophy", Milestone: MilestoneSubscribers, Value: 1000000, Reward: Reward{Money: 25000, EnergyBoost: 100}},

	{ID: "views_1000", Name: "Seen by Thousands", Description: "Reach 1,000 total views.", Icon: "fas fa-eye", Milestone: MilestoneViews, Value: 1000, Reward: Reward{Money: 20}},
	{ID: "views_10000", Name: "Rising Popularity", Description: "Reach 10,000 total views.", Icon: "fas fa-chart-line", Milestone: MilestoneViews, Value: 10000, Reward: Reward{Money: 100}},
	{ID: "views_100000", Name: "King of Views", Description: "Reach 100,000 total views.", Icon: "fas fa-crown", Milestone: MilestoneViews, Value: 100000, Reward: Reward{Money: 500}},
	{ID: "views_1000000", Name: "View Dominator", Description: "Reach 1,000,000 total views.", Icon: "fas fa-globe-americas", Milestone: MilestoneViews, Value: 1000000, Reward: Reward{Money: 2000}},

	{ID: "watch_100", Name: "Hooking the Audience", Description: "Reach 100 watch hours.", Icon: "fas fa-history", Milestone: MilestoneWatchHours, Value: 100, Reward: Reward{Money: 30}},
	{ID: "watch_1000", Name: "Ready to Monetize", Description: "Reach 1,000 watch hours.", Icon: "fas fa-hourglass-half", Milestone: MilestoneWatchHours, Value: 1000, Reward: Reward{Money: 150}},

	{ID: "videos_1", Name: "First Video!", Description: "Upload your first video.", Icon: "fas fa-video", Milestone: MilestoneVideosUploaded, Value: 1},
	{ID: "videos_10", Name: "Consistent Creator", Description: "Upload 10 videos.", Icon: "fas fa-film", Milestone: MilestoneVideosUploaded, Value: 10, Reward: Reward{Money: 50}},
	{ID: "videos_50", Name: "Growing Library", Description: "Upload 50 videos.", Icon: "fas fa-photo-video", Milestone: MilestoneVideosUploaded, Value: 50, Reward: Reward{Money: 250}},

	{ID: "money_100", Name: "First Income", Description: "Earn your first $100.", Icon: "fas fa-dollar-sign", Milestone: MilestoneTotalEarnings, Value: 100},
	{ID: "money_1000", Name: "A Thousand Dollars", Description: "Earn $1,000 in total.", Icon: "fas fa-money-bill-wave", Milestone: MilestoneTotalEarnings, Value: 1000},
	{ID: "money_10000", Name: "Content Mogul", Description: "Earn $10,000 in total.", Icon: "fas fa-wallet", Milestone: MilestoneTotalEarnings, Value: 10000},
}

// Catalog returns a copy of every achievement in evaluation order.
func Catalog() []Achievement {
	return append([]Achievement(nil), catalog...)
}

func Lookup(id string) (Achievement, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
