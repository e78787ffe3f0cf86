package sweeper

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	mocks "github.com/aliskhannn/charge-recovery/internal/mocks/service/sweeper"
)

func TestSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	charges := mocks.NewMockchargeRepository(ctrl)
	svc := NewService(charges)

	charges.EXPECT().MarkExpiredCharges(gomock.Any()).Return(int64(5), nil)

	expired, err := svc.Sweep(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(5), expired)
}

func TestSweep_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	charges := mocks.NewMockchargeRepository(ctrl)
	svc := NewService(charges)

	charges.EXPECT().MarkExpiredCharges(gomock.Any()).Return(int64(0), errors.New("connection refused"))

	expired, err := svc.Sweep(context.Background())
	assert.Error(t, err)
	assert.Equal(t, int64(0), expired)
}
