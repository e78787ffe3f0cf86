package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/charge-recovery/internal/model"
)

// ErrDuplicateMessage is returned when an insert collides with an existing
// (charge_id, message_number) pair, i.e. a concurrent pass already claimed
// that slot.
var ErrDuplicateMessage = errors.New("recovery message already recorded for this charge and number")

const uniqueViolation = "23505"

// Repository provides append-only access to the recovery message ledger.
// Entries are never updated or deleted.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new ledger repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateMessage appends one ledger entry and returns its ID. The unique
// constraint on (charge_id, message_number) turns a racing duplicate into
// ErrDuplicateMessage instead of a silent double record.
func (r *Repository) CreateMessage(ctx context.Context, msg model.RecoveryMessage) (uuid.UUID, error) {
	query := `
		INSERT INTO recovery_messages (
		    charge_id, campaign_id, channel, status, message_number, sent_at, error_message
		) VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
		RETURNING id;
    `

	var id uuid.UUID
	err := r.db.QueryRowContext(
		ctx, query,
		msg.ChargeID, msg.CampaignID, msg.Channel, msg.Status,
		msg.MessageNumber, msg.SentAt, msg.ErrorMessage,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return uuid.Nil, ErrDuplicateMessage
		}

		return uuid.Nil, fmt.Errorf("failed to create recovery message: %w", err)
	}

	return id, nil
}

// ListMessagesByCharge retrieves every ledger entry for a charge, newest
// message number first. The length of the result is the charge's
// authoritative sent count.
func (r *Repository) ListMessagesByCharge(ctx context.Context, chargeID uuid.UUID) ([]model.RecoveryMessage, error) {
	query := `
		SELECT id, charge_id, campaign_id, channel, status, message_number,
		       sent_at, COALESCE(error_message, '')
		FROM recovery_messages
		WHERE charge_id = $1
		ORDER BY message_number DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, chargeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recovery messages: %w", err)
	}
	defer rows.Close()

	var messages []model.RecoveryMessage
	for rows.Next() {
		var m model.RecoveryMessage
		if err := rows.Scan(
			&m.ID, &m.ChargeID, &m.CampaignID, &m.Channel, &m.Status,
			&m.MessageNumber, &m.SentAt, &m.ErrorMessage,
		); err != nil {
			return nil, err
		}

		messages = append(messages, m)
	}

	return messages, rows.Err()
}

// CountMessagesByCharge returns how many ledger entries a charge has.
func (r *Repository) CountMessagesByCharge(ctx context.Context, chargeID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM recovery_messages
		WHERE charge_id = $1;
    `

	var count int
	if err := r.db.QueryRowContext(ctx, query, chargeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count recovery messages: %w", err)
	}

	return count, nil
}
