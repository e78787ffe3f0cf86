package model

import "time"

// Settings is the global recovery configuration singleton shared by all
// campaigns.
type Settings struct {
	IsEnabled            bool `json:"is_enabled"`
	MaxMessagesPerCharge int  `json:"max_messages_per_charge"`
	MinIntervalMinutes   int  `json:"min_interval_minutes"`
}

// MinInterval returns the global floor between two messages to the same
// charge, regardless of what a campaign's steps ask for.
func (s Settings) MinInterval() time.Duration {
	return time.Duration(s.MinIntervalMinutes) * time.Minute
}
