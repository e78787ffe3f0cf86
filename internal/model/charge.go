package model

import (
	"time"

	"github.com/google/uuid"
)

// Charge statuses as written by the payment subsystem and the expiry sweeper.
const (
	ChargeStatusPending   = "pending"
	ChargeStatusPaid      = "paid"
	ChargeStatusExpired   = "expired"
	ChargeStatusCancelled = "cancelled"
)

// Charge represents a payment intent created by the checkout subsystem.
//
// The recovery engine only ever reads charges and transitions them from
// "pending" to "expired"; everything else is owned by other subsystems.
type Charge struct {
	ID              uuid.UUID  `json:"id"`                          // unique identifier for the charge
	ProductID       uuid.UUID  `json:"product_id"`                  // product the buyer attempted to purchase
	SellerID        uuid.UUID  `json:"seller_id"`                   // owning seller
	BuyerName       string     `json:"buyer_name"`                  // buyer display name used in message templates
	BuyerEmail      string     `json:"buyer_email"`                 // always present
	BuyerPhone      string     `json:"buyer_phone,omitempty"`       // empty when no phone is on file
	Amount          int64      `json:"amount"`                      // amount in cents
	Status          string     `json:"status"`                      // pending, paid, expired, cancelled
	RetryOfChargeID *uuid.UUID `json:"retry_of_charge_id,omitempty"` // set when this charge was spawned by a recovery flow
	ExpiresAt       time.Time  `json:"expires_at"`                  // payment deadline
	CreatedAt       time.Time  `json:"created_at"`
}
