package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/charge-recovery/internal/model"
)

var ErrSettingsNotFound = errors.New("recovery settings not found")

// Repository provides read access to the global recovery settings singleton.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new settings repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetSettings retrieves the settings row. There is exactly one; a missing
// row is a deployment fault, not a default.
func (r *Repository) GetSettings(ctx context.Context) (model.Settings, error) {
	query := `
		SELECT is_enabled, max_messages_per_charge, min_interval_minutes
		FROM recovery_settings
		LIMIT 1;
    `

	var s model.Settings
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.IsEnabled, &s.MaxMessagesPerCharge, &s.MinIntervalMinutes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Settings{}, ErrSettingsNotFound
		}

		return model.Settings{}, fmt.Errorf("failed to get recovery settings: %w", err)
	}

	return s, nil
}
