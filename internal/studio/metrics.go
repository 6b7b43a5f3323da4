package studio

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for gameplay events.
type Metrics struct {
	ChannelsCreated      prometheus.Counter
	Uploads              prometheus.Counter
	UploadViews          prometheus.Histogram
	DayAdvances          prometheus.Counter
	Upgrades             *prometheus.CounterVec
	Monetized            prometheus.Counter
	MinigamesStarted     *prometheus.CounterVec
	MinigamesFinished    *prometheus.CounterVec
	AchievementsUnlocked *prometheus.CounterVec
	LiveSessions         prometheus.Gauge
}

// NewMetrics builds the collectors and registers them with reg. A nil reg
// leaves them unregistered, which is what tests want.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ChannelsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gameyoutube_channels_created_total",
			Help: "Channels created.",
		}),
		Uploads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gameyoutube_uploads_total",
			Help: "Videos uploaded.",
		}),
		UploadViews: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gameyoutube_upload_views",
			Help:    "Views earned by a single upload.",
			Buckets: prometheus.ExponentialBuckets(10, 4, 8),
		}),
		DayAdvances: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gameyoutube_day_advances_total",
			Help: "Simulated days advanced.",
		}),
		Upgrades: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gameyoutube_equipment_upgrades_total",
			Help: "Equipment upgrades, by slot.",
		}, []string{"slot"}),
		Monetized: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gameyoutube_channels_monetized_total",
			Help: "Channels that switched monetization on.",
		}),
		MinigamesStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gameyoutube_minigames_started_total",
			Help: "Minigame sessions started, by kind.",
		}, []string{"kind"}),
		MinigamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gameyoutube_minigames_finished_total",
			Help: "Minigame sessions ended, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		AchievementsUnlocked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gameyoutube_achievements_unlocked_total",
			Help: "Achievements unlocked, by id.",
		}, []string{"achievement"}),
		LiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gameyoutube_minigame_sessions_live",
			Help: "Minigame sessions currently held in memory.",
		}),
	}
	if reg != nil {
		reg.MustRegister(
			m.ChannelsCreated,
			m.Uploads,
			m.UploadViews,
			m.DayAdvances,
			m.Upgrades,
			m.Monetized,
			m.MinigamesStarted,
			m.MinigamesFinished,
			m.AchievementsUnlocked,
			m.LiveSessions,
		)
	}
	return m
}
