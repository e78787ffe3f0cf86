package campaign

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/charge-recovery/internal/model"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// Repository provides read access to recovery campaigns. Campaigns are
// edited by the seller dashboard; the engine never writes them.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new campaign repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetActiveCampaigns retrieves every campaign with is_active = true.
func (r *Repository) GetActiveCampaigns(ctx context.Context) ([]model.Campaign, error) {
	query := `
		SELECT id, seller_id, is_active, message_intervals
		FROM recovery_campaigns
		WHERE is_active = TRUE;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []model.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}

		campaigns = append(campaigns, c)
	}

	return campaigns, rows.Err()
}

// GetCampaignByID retrieves a single campaign by its ID.
func (r *Repository) GetCampaignByID(ctx context.Context, id uuid.UUID) (model.Campaign, error) {
	query := `
		SELECT id, seller_id, is_active, message_intervals
		FROM recovery_campaigns
		WHERE id = $1;
    `

	var (
		c         model.Campaign
		intervals []byte
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.SellerID, &c.IsActive, &intervals)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Campaign{}, ErrCampaignNotFound
		}

		return model.Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}

	if err := json.Unmarshal(intervals, &c.Steps); err != nil {
		return model.Campaign{}, fmt.Errorf("failed to decode campaign steps: %w", err)
	}

	return c, nil
}

// scanCampaign scans one row with a jsonb message_intervals column.
func scanCampaign(rows *sql.Rows) (model.Campaign, error) {
	var (
		c         model.Campaign
		intervals []byte
	)
	if err := rows.Scan(&c.ID, &c.SellerID, &c.IsActive, &intervals); err != nil {
		return model.Campaign{}, err
	}

	if err := json.Unmarshal(intervals, &c.Steps); err != nil {
		return model.Campaign{}, fmt.Errorf("failed to decode campaign steps: %w", err)
	}

	return c, nil
}
