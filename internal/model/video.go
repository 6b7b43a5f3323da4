package model

import "time"

type RecordingMethod string

const (
	RecordingLive         RecordingMethod = "Live (Low Quality)"
	RecordingRecorded     RecordingMethod = "Recorded (Medium Quality)"
	RecordingProfessional RecordingMethod = "Professional (High Quality)"
)

// Video is fixed once uploaded, except Views and SubscribersGained which keep
// growing a little every simulated day.
type Video struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Genre           string          `json:"genre"`
	SubGenre        string          `json:"subGenre,omitempty"`
	RecordingMethod RecordingMethod `json:"recordingMethod"`
	UploadDay       int             `json:"uploadDay"`
	UploadedAt      time.Time       `json:"uploadedAt"`

	Views             int     `json:"views"`
	SubscribersGained int     `json:"subscribersGained"`
	MoneyGained       float64 `json:"moneyGained"`
	WatchHoursGained  float64 `json:"watchHoursGained"`
}
