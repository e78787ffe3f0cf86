package ledger

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
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

func TestCreateMessage(t *testing.T) {
	repo, mock := setupMockDB(t)

	messageID := uuid.New()
	msg := model.RecoveryMessage{
		ChargeID:      uuid.New(),
		CampaignID:    uuid.New(),
		Channel:       "email",
		Status:        "sent",
		MessageNumber: 1,
		SentAt:        time.Now(),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO recovery_messages (
		    charge_id, campaign_id, channel, status, message_number, sent_at, error_message
		) VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
		RETURNING id;
    `)).
		WithArgs(msg.ChargeID, msg.CampaignID, msg.Channel, msg.Status, msg.MessageNumber, msg.SentAt, msg.ErrorMessage).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(messageID))

	id, err := repo.CreateMessage(context.Background(), msg)
	assert.NoError(t, err)
	assert.Equal(t, messageID, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMessage_Duplicate(t *testing.T) {
	repo, mock := setupMockDB(t)

	msg := model.RecoveryMessage{
		ChargeID:      uuid.New(),
		CampaignID:    uuid.New(),
		Channel:       "whatsapp",
		Status:        "sent",
		MessageNumber: 2,
		SentAt:        time.Now(),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO recovery_messages (
		    charge_id, campaign_id, channel, status, message_number, sent_at, error_message
		) VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
		RETURNING id;
    `)).
		WithArgs(msg.ChargeID, msg.CampaignID, msg.Channel, msg.Status, msg.MessageNumber, msg.SentAt, msg.ErrorMessage).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "recovery_messages_charge_id_message_number_key"})

	id, err := repo.CreateMessage(context.Background(), msg)
	assert.ErrorIs(t, err, ErrDuplicateMessage)
	assert.Equal(t, uuid.Nil, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMessagesByCharge(t *testing.T) {
	repo, mock := setupMockDB(t)

	chargeID := uuid.New()
	campaignID := uuid.New()
	columns := []string{"id", "charge_id", "campaign_id", "channel", "status", "message_number", "sent_at", "error_message"}

	rows := sqlmock.NewRows(columns).
		AddRow(uuid.New(), chargeID, campaignID, "whatsapp", "failed", 2, time.Now().Add(-time.Hour), "buyer has no phone number on file").
		AddRow(uuid.New(), chargeID, campaignID, "email", "sent", 1, time.Now().Add(-3*time.Hour), "")

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, charge_id, campaign_id, channel, status, message_number,
		       sent_at, COALESCE(error_message, '')
		FROM recovery_messages
		WHERE charge_id = $1
		ORDER BY message_number DESC;
    `)).
		WithArgs(chargeID).
		WillReturnRows(rows)

	messages, err := repo.ListMessagesByCharge(context.Background(), chargeID)
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, 2, messages[0].MessageNumber)
	assert.Equal(t, "failed", messages[0].Status)
	assert.Empty(t, messages[1].ErrorMessage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountMessagesByCharge(t *testing.T) {
	repo, mock := setupMockDB(t)

	chargeID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT COUNT(*)
		FROM recovery_messages
		WHERE charge_id = $1;
    `)).
		WithArgs(chargeID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountMessagesByCharge(context.Background(), chargeID)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
