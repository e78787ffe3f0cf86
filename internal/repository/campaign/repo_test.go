package campaign

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/charge-recovery/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestGetActiveCampaigns(t *testing.T) {
	repo, mock := setupMockDB(t)

	sellerID := uuid.New()
	intervals := []byte(`[
		{"type": "minutes", "value": 60, "channel": "email"},
		{"type": "days", "value": 1, "channel": "both"}
	]`)

	rows := sqlmock.NewRows([]string{"id", "seller_id", "is_active", "message_intervals"}).
		AddRow(uuid.New(), sellerID, true, intervals)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, seller_id, is_active, message_intervals
		FROM recovery_campaigns
		WHERE is_active = TRUE;
    `)).WillReturnRows(rows)

	campaigns, err := repo.GetActiveCampaigns(context.Background())
	assert.NoError(t, err)
	assert.Len(t, campaigns, 1)
	assert.Equal(t, sellerID, campaigns[0].SellerID)
	assert.Equal(t, []model.Step{
		{Type: "minutes", Value: 60, Channel: "email"},
		{Type: "days", Value: 1, Channel: "both"},
	}, campaigns[0].Steps)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCampaignByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	intervals := []byte(`[{"type": "hours", "value": 2, "channel": "whatsapp"}]`)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, seller_id, is_active, message_intervals
		FROM recovery_campaigns
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "seller_id", "is_active", "message_intervals"}).
			AddRow(id, uuid.New(), true, intervals))

	campaign, err := repo.GetCampaignByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, id, campaign.ID)
	assert.Len(t, campaign.Steps, 1)
	assert.Equal(t, "whatsapp", campaign.Steps[0].Channel)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, seller_id, is_active, message_intervals
		FROM recovery_campaigns
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetCampaignByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrCampaignNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
