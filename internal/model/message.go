package model

import (
	"time"

	"github.com/google/uuid"
)

// Outcomes of a recovery message attempt.
const (
	MessageStatusSent   = "sent"
	MessageStatusFailed = "failed"
)

// RecoveryMessage is one ledger entry: a single send attempt for a charge.
// Entries are immutable once written; the count of entries for a charge is
// the authoritative number of messages it has received.
type RecoveryMessage struct {
	ID            uuid.UUID `json:"id"`
	ChargeID      uuid.UUID `json:"charge_id"`
	CampaignID    uuid.UUID `json:"campaign_id"`
	Channel       string    `json:"channel"`                 // the step's nominal channel
	Status        string    `json:"status"`                  // sent or failed
	MessageNumber int       `json:"message_number"`          // 1-based, dense per charge
	SentAt        time.Time `json:"sent_at"`
	ErrorMessage  string    `json:"error_message,omitempty"` // cause when status is failed
}
