package model

import (
	"time"

	"github.com/google/uuid"
)

// Channels a campaign step may dispatch through.
const (
	ChannelWhatsApp = "whatsapp"
	ChannelEmail    = "email"
	ChannelBoth     = "both"
)

// Step wait units.
const (
	WaitUnitMinutes = "minutes"
	WaitUnitHours   = "hours"
	WaitUnitDays    = "days"
)

// Campaign is a seller's recovery configuration. It is created and edited
// by the seller's dashboard and read-only to the engine.
type Campaign struct {
	ID       uuid.UUID `json:"id"`
	SellerID uuid.UUID `json:"seller_id"`
	IsActive bool      `json:"is_active"`
	Steps    []Step    `json:"message_intervals"` // consumed strictly in order
}

// Step is one (wait interval, channel) pair within a campaign.
type Step struct {
	Type    string `json:"type"`    // minutes, hours or days
	Value   int    `json:"value"`   // wait amount in the given unit
	Channel string `json:"channel"` // whatsapp, email or both
}

// Wait returns the step's wait interval as a duration. Unknown units fall
// back to minutes so a malformed step delays rather than fires immediately.
func (s Step) Wait() time.Duration {
	switch s.Type {
	case WaitUnitHours:
		return time.Duration(s.Value) * time.Hour
	case WaitUnitDays:
		return time.Duration(s.Value) * 24 * time.Hour
	default:
		return time.Duration(s.Value) * time.Minute
	}
}
