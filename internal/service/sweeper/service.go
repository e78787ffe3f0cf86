package sweeper

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/sweeper/mock.go -package=mocks

type chargeRepository interface {
	MarkExpiredCharges(ctx context.Context) (int64, error)
}

// Service transitions charges whose payment deadline has passed from
// pending to expired. It has no other side effects: sweeping never sends
// or enqueues anything.
type Service struct {
	charges chargeRepository
}

// NewService creates a new expiry sweeper.
func NewService(charges chargeRepository) *Service {
	return &Service{charges: charges}
}

// Sweep runs one expiry pass and returns how many charges it expired.
// Safe to run arbitrarily often; already-expired charges are untouched.
func (s *Service) Sweep(ctx context.Context) (int64, error) {
	expired, err := s.charges.MarkExpiredCharges(ctx)
	if err != nil {
		return 0, fmt.Errorf("sweep expired charges: %w", err)
	}

	if expired > 0 {
		zlog.Logger.Info().Int64("expired", expired).Msg("charges transitioned to expired")
	}

	return expired, nil
}
