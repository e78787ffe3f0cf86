package charge

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/charge-recovery/internal/model"
)

var ErrChargeNotFound = errors.New("charge not found")

// Repository provides read access to charges plus the single status
// transition the recovery engine owns (pending -> expired).
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new charge repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetChargeByID retrieves a single charge by its ID.
func (r *Repository) GetChargeByID(ctx context.Context, id uuid.UUID) (model.Charge, error) {
	query := `
		SELECT id, product_id, seller_id, buyer_name, buyer_email,
		       COALESCE(buyer_phone, ''), amount, status, retry_of_charge_id,
		       expires_at, created_at
		FROM charges
		WHERE id = $1;
    `

	var c model.Charge
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.ProductID, &c.SellerID, &c.BuyerName, &c.BuyerEmail,
		&c.BuyerPhone, &c.Amount, &c.Status, &c.RetryOfChargeID,
		&c.ExpiresAt, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Charge{}, ErrChargeNotFound
		}

		return model.Charge{}, fmt.Errorf("failed to get charge: %w", err)
	}

	return c, nil
}

// MarkExpiredCharges transitions every pending charge whose deadline has
// passed to expired and returns how many rows changed. A single bulk
// statement, so there is no partial-failure ambiguity, and running it again
// immediately is a no-op.
func (r *Repository) MarkExpiredCharges(ctx context.Context) (int64, error) {
	query := `
		UPDATE charges
		SET status = 'expired'
		WHERE status = 'pending' AND expires_at < NOW();
    `

	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to mark expired charges: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows, nil
}

// ListRecoverableCharges retrieves the seller's expired charges that are
// candidates for recovery messaging: not themselves recovery retries, and
// with no retry charge already spawned from them.
func (r *Repository) ListRecoverableCharges(ctx context.Context, sellerID uuid.UUID) ([]model.Charge, error) {
	query := `
		SELECT c.id, c.product_id, c.seller_id, c.buyer_name, c.buyer_email,
		       COALESCE(c.buyer_phone, ''), c.amount, c.status, c.retry_of_charge_id,
		       c.expires_at, c.created_at
		FROM charges c
		WHERE c.seller_id = $1
		  AND c.status = 'expired'
		  AND c.retry_of_charge_id IS NULL
		  AND NOT EXISTS (
		      SELECT 1 FROM charges r WHERE r.retry_of_charge_id = c.id
		  )
		ORDER BY c.expires_at;
    `

	rows, err := r.db.QueryContext(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recoverable charges: %w", err)
	}
	defer rows.Close()

	var charges []model.Charge
	for rows.Next() {
		var c model.Charge
		if err := rows.Scan(
			&c.ID, &c.ProductID, &c.SellerID, &c.BuyerName, &c.BuyerEmail,
			&c.BuyerPhone, &c.Amount, &c.Status, &c.RetryOfChargeID,
			&c.ExpiresAt, &c.CreatedAt,
		); err != nil {
			return nil, err
		}

		charges = append(charges, c)
	}

	return charges, rows.Err()
}
