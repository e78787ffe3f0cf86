package settings

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"
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

func TestGetSettings(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT is_enabled, max_messages_per_charge, min_interval_minutes
		FROM recovery_settings
		LIMIT 1;
    `)).
		WillReturnRows(sqlmock.NewRows([]string{"is_enabled", "max_messages_per_charge", "min_interval_minutes"}).
			AddRow(true, 3, 60))

	s, err := repo.GetSettings(context.Background())
	assert.NoError(t, err)
	assert.True(t, s.IsEnabled)
	assert.Equal(t, 3, s.MaxMessagesPerCharge)
	assert.Equal(t, 60, s.MinIntervalMinutes)
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT is_enabled, max_messages_per_charge, min_interval_minutes
		FROM recovery_settings
		LIMIT 1;
    `)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetSettings(context.Background())
	assert.ErrorIs(t, err, ErrSettingsNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
