package recovery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/charge-recovery/internal/model"
	"github.com/aliskhannn/charge-recovery/internal/repository/ledger"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/recovery/mock.go -package=mocks

var (
	// ErrUnknownChannel is returned for a manual send with a channel outside
	// the whatsapp/email/both set.
	ErrUnknownChannel = errors.New("unknown channel")

	// ErrNoPhoneOnFile is returned for a manual whatsapp send when the buyer
	// has no phone number on file.
	ErrNoPhoneOnFile = errors.New("buyer has no phone number on file")

	// ErrChargeExhausted is returned when a charge already received the
	// maximum number of messages allowed by the global settings.
	ErrChargeExhausted = errors.New("charge already received the maximum number of messages")

	// ErrChargeBusy is returned when another pass currently holds the
	// charge's dispatch lock or claimed its next message number first.
	ErrChargeBusy = errors.New("charge is being processed concurrently")

	// ErrDispatchFailed is returned by a manual send whose channel call
	// failed; the failed attempt is already recorded in the ledger.
	ErrDispatchFailed = errors.New("dispatch failed")

	// ErrNoBatchRun is returned when no batch summary has been cached yet.
	ErrNoBatchRun = errors.New("no batch run recorded yet")
)

const lastRunKey = "recovery:last_run"

type chargeRepository interface {
	GetChargeByID(ctx context.Context, id uuid.UUID) (model.Charge, error)
	ListRecoverableCharges(ctx context.Context, sellerID uuid.UUID) ([]model.Charge, error)
}

type campaignRepository interface {
	GetActiveCampaigns(ctx context.Context) ([]model.Campaign, error)
	GetCampaignByID(ctx context.Context, id uuid.UUID) (model.Campaign, error)
}

type settingsRepository interface {
	GetSettings(ctx context.Context) (model.Settings, error)
}

type ledgerRepository interface {
	CreateMessage(ctx context.Context, msg model.RecoveryMessage) (uuid.UUID, error)
	ListMessagesByCharge(ctx context.Context, chargeID uuid.UUID) ([]model.RecoveryMessage, error)
}

type chargeSweeper interface {
	Sweep(ctx context.Context) (int64, error)
}

type locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Notifier sends one message to one recipient over one channel. Exactly one
// attempt per call; scheduling decides when to try again.
type Notifier interface {
	Send(to string, msg string) error
}

// BatchResult summarizes one batch pass.
type BatchResult struct {
	Processed int `json:"processed"` // candidate charges evaluated
	Sent      int `json:"sent"`      // messages dispatched successfully
}

// Service is the recovery scheduler: it decides, per campaign and expired
// charge, whether the next follow-up message is due, dispatches it and
// records the outcome in the ledger. All decisions are derived fresh from
// stored state, so a pass that dies mid-sweep simply resumes on the next one.
type Service struct {
	charges   chargeRepository
	campaigns campaignRepository
	settings  settingsRepository
	ledger    ledgerRepository
	sweeper   chargeSweeper
	locker    locker
	cache     cache
	notifiers map[string]Notifier
	workers   int
	lockTTL   time.Duration
}

// NewService creates a new recovery service.
func NewService(
	charges chargeRepository,
	campaigns campaignRepository,
	settings settingsRepository,
	ledgerRepo ledgerRepository,
	sweeper chargeSweeper,
	locker locker,
	cache cache,
	notifiers map[string]Notifier,
	workers int,
	lockTTL time.Duration,
) *Service {
	if workers < 1 {
		workers = 1
	}

	return &Service{
		charges:   charges,
		campaigns: campaigns,
		settings:  settings,
		ledger:    ledgerRepo,
		sweeper:   sweeper,
		locker:    locker,
		cache:     cache,
		notifiers: notifiers,
		workers:   workers,
		lockTTL:   lockTTL,
	}
}

// RunBatch executes one full pass: sweep expired charges, then walk every
// active campaign and send whatever is due right now. Per-charge failures
// never abort the pass; only store-level failures do.
func (s *Service) RunBatch(ctx context.Context, strategy retry.Strategy) (BatchResult, error) {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return BatchResult{}, fmt.Errorf("get recovery settings: %w", err)
	}

	// Expiring overdue charges is bookkeeping, not messaging, so it runs
	// even when the engine is disabled.
	if _, err := s.sweeper.Sweep(ctx); err != nil {
		zlog.Logger.Error().Err(err).Msg("expiry sweep failed")
	}

	if !settings.IsEnabled {
		zlog.Logger.Info().Msg("recovery disabled, skipping pass")
		return BatchResult{}, nil
	}

	campaigns, err := s.campaigns.GetActiveCampaigns(ctx)
	if err != nil {
		return BatchResult{}, fmt.Errorf("list active campaigns: %w", err)
	}

	var (
		mu     sync.Mutex
		result BatchResult
		wg     sync.WaitGroup
	)

	campaignChan := make(chan model.Campaign)

	wg.Add(s.workers)
	for i := 0; i < s.workers; i++ {
		go func() {
			defer wg.Done()

			for c := range campaignChan {
				processed, sent := s.processCampaign(ctx, c, settings)

				mu.Lock()
				result.Processed += processed
				result.Sent += sent
				mu.Unlock()
			}
		}()
	}

	for _, c := range campaigns {
		campaignChan <- c
	}
	close(campaignChan)
	wg.Wait()

	s.cacheLastRun(ctx, strategy, result)

	return result, nil
}

// processCampaign evaluates every recoverable charge of one campaign's
// seller. A malformed campaign is skipped for the pass, not propagated.
func (s *Service) processCampaign(ctx context.Context, campaign model.Campaign, settings model.Settings) (processed, sent int) {
	if len(campaign.Steps) == 0 {
		zlog.Logger.Warn().Str("campaign_id", campaign.ID.String()).Msg("campaign has no steps, skipping")
		return 0, 0
	}

	charges, err := s.charges.ListRecoverableCharges(ctx, campaign.SellerID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("campaign_id", campaign.ID.String()).Msg("failed to list recoverable charges")
		return 0, 0
	}

	for _, charge := range charges {
		processed++

		ok, err := s.processCharge(ctx, campaign, charge, settings)
		if err != nil {
			zlog.Logger.Error().Err(err).Str("charge_id", charge.ID.String()).Msg("failed to process charge")
			continue
		}

		if ok {
			sent++
		}
	}

	return processed, sent
}

// processCharge decides whether the charge's next step is due right now
// and, if so, dispatches it and appends exactly one ledger entry. At most
// one message per charge per pass.
func (s *Service) processCharge(ctx context.Context, campaign model.Campaign, charge model.Charge, settings model.Settings) (bool, error) {
	key := chargeLockKey(charge.ID)

	acquired, err := s.locker.Acquire(ctx, key, s.lockTTL)
	if err != nil {
		return false, fmt.Errorf("acquire charge lock: %w", err)
	}
	if !acquired {
		// Another pass owns the charge; it will be reconsidered next tick.
		return false, nil
	}
	defer s.releaseLock(ctx, key, charge.ID)

	entries, err := s.ledger.ListMessagesByCharge(ctx, charge.ID)
	if err != nil {
		return false, fmt.Errorf("list ledger entries: %w", err)
	}

	// The ledger count is the authoritative sent count; failed attempts
	// consume a slot too.
	sentCount := len(entries)
	if sentCount >= settings.MaxMessagesPerCharge {
		return false, nil
	}
	if sentCount >= len(campaign.Steps) {
		return false, nil
	}

	step := campaign.Steps[sentCount]
	now := time.Now()

	reference := charge.ExpiresAt
	if sentCount > 0 {
		last := entries[0]

		// Global floor between messages, even when the step interval is
		// shorter.
		if now.Sub(last.SentAt) < settings.MinInterval() {
			return false, nil
		}

		reference = last.SentAt
	}

	if now.Before(reference.Add(step.Wait())) {
		return false, nil
	}

	status, errMsg := s.dispatch(charge, step.Channel)

	entry := model.RecoveryMessage{
		ChargeID:      charge.ID,
		CampaignID:    campaign.ID,
		Channel:       step.Channel,
		Status:        status,
		MessageNumber: sentCount + 1,
		SentAt:        now,
		ErrorMessage:  errMsg,
	}

	if _, err := s.ledger.CreateMessage(ctx, entry); err != nil {
		if errors.Is(err, ledger.ErrDuplicateMessage) {
			zlog.Logger.Warn().
				Str("charge_id", charge.ID.String()).
				Int("message_number", entry.MessageNumber).
				Msg("duplicate recovery message discarded")
			return false, nil
		}

		return false, fmt.Errorf("record recovery message: %w", err)
	}

	if status == model.MessageStatusFailed {
		zlog.Logger.Error().
			Str("charge_id", charge.ID.String()).
			Str("channel", step.Channel).
			Str("cause", errMsg).
			Msg("recovery message failed")
		return false, nil
	}

	return true, nil
}

// SendManual sends one out-of-band message for a charge, bypassing the
// timing checks but not the sequence numbering or the global cap. The
// ledger entry it writes consumes the next message number exactly like a
// scheduled one.
func (s *Service) SendManual(ctx context.Context, chargeID, campaignID uuid.UUID, channel string) error {
	switch channel {
	case model.ChannelWhatsApp, model.ChannelEmail, model.ChannelBoth:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownChannel, channel)
	}

	charge, err := s.charges.GetChargeByID(ctx, chargeID)
	if err != nil {
		return fmt.Errorf("get charge: %w", err)
	}

	campaign, err := s.campaigns.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("get campaign: %w", err)
	}

	// Rejected synchronously with no ledger entry; "both" still has the
	// email leg, so only a pure whatsapp send requires a phone.
	if channel == model.ChannelWhatsApp && charge.BuyerPhone == "" {
		return ErrNoPhoneOnFile
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("get recovery settings: %w", err)
	}

	key := chargeLockKey(charge.ID)

	acquired, err := s.locker.Acquire(ctx, key, s.lockTTL)
	if err != nil {
		return fmt.Errorf("acquire charge lock: %w", err)
	}
	if !acquired {
		return ErrChargeBusy
	}
	defer s.releaseLock(ctx, key, charge.ID)

	entries, err := s.ledger.ListMessagesByCharge(ctx, charge.ID)
	if err != nil {
		return fmt.Errorf("list ledger entries: %w", err)
	}

	sentCount := len(entries)
	if sentCount >= settings.MaxMessagesPerCharge {
		return ErrChargeExhausted
	}

	status, errMsg := s.dispatch(charge, channel)

	entry := model.RecoveryMessage{
		ChargeID:      charge.ID,
		CampaignID:    campaign.ID,
		Channel:       channel,
		Status:        status,
		MessageNumber: sentCount + 1,
		SentAt:        time.Now(),
		ErrorMessage:  errMsg,
	}

	if _, err := s.ledger.CreateMessage(ctx, entry); err != nil {
		if errors.Is(err, ledger.ErrDuplicateMessage) {
			return ErrChargeBusy
		}

		return fmt.Errorf("record recovery message: %w", err)
	}

	if status == model.MessageStatusFailed {
		return fmt.Errorf("%w: %s", ErrDispatchFailed, errMsg)
	}

	return nil
}

// ListChargeMessages returns the charge's full recovery history, newest
// first.
func (s *Service) ListChargeMessages(ctx context.Context, chargeID uuid.UUID) ([]model.RecoveryMessage, error) {
	if _, err := s.charges.GetChargeByID(ctx, chargeID); err != nil {
		return nil, fmt.Errorf("get charge: %w", err)
	}

	messages, err := s.ledger.ListMessagesByCharge(ctx, chargeID)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}

	return messages, nil
}

// LastRun returns the cached summary of the most recent batch pass.
func (s *Service) LastRun(ctx context.Context, strategy retry.Strategy) (BatchResult, error) {
	raw, err := s.cache.GetWithRetry(ctx, strategy, lastRunKey)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return BatchResult{}, ErrNoBatchRun
		}

		return BatchResult{}, fmt.Errorf("get batch summary: %w", err)
	}

	var result BatchResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return BatchResult{}, fmt.Errorf("decode batch summary: %w", err)
	}

	return result, nil
}

// dispatch sends the rendered message through the step's channel. "both" is
// sugar for both legs with the results folded: success if either leg
// succeeded, concatenated error text when both failed. The returned status
// and error text go straight into the ledger entry.
func (s *Service) dispatch(charge model.Charge, channel string) (status, errMsg string) {
	content := renderMessage(charge)

	switch channel {
	case model.ChannelWhatsApp:
		if err := s.sendWhatsApp(charge, content); err != nil {
			return model.MessageStatusFailed, err.Error()
		}
		return model.MessageStatusSent, ""

	case model.ChannelEmail:
		if err := s.sendEmail(charge, content); err != nil {
			return model.MessageStatusFailed, err.Error()
		}
		return model.MessageStatusSent, ""

	case model.ChannelBoth:
		waErr := s.sendWhatsApp(charge, content)
		emErr := s.sendEmail(charge, content)
		if waErr != nil && emErr != nil {
			return model.MessageStatusFailed, fmt.Sprintf("whatsapp: %v; email: %v", waErr, emErr)
		}
		return model.MessageStatusSent, ""

	default:
		return model.MessageStatusFailed, fmt.Sprintf("unknown channel %s", channel)
	}
}

func (s *Service) sendWhatsApp(charge model.Charge, content string) error {
	if charge.BuyerPhone == "" {
		return ErrNoPhoneOnFile
	}

	notifier, ok := s.notifiers[model.ChannelWhatsApp]
	if !ok {
		return fmt.Errorf("no whatsapp dispatcher configured")
	}

	return notifier.Send(charge.BuyerPhone, content)
}

func (s *Service) sendEmail(charge model.Charge, content string) error {
	notifier, ok := s.notifiers[model.ChannelEmail]
	if !ok {
		return fmt.Errorf("no email dispatcher configured")
	}

	return notifier.Send(charge.BuyerEmail, content)
}

func (s *Service) releaseLock(ctx context.Context, key string, chargeID uuid.UUID) {
	if err := s.locker.Release(ctx, key); err != nil {
		zlog.Logger.Error().Err(err).Str("charge_id", chargeID.String()).Msg("failed to release charge lock")
	}
}

func (s *Service) cacheLastRun(ctx context.Context, strategy retry.Strategy, result BatchResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode batch summary")
		return
	}

	if err := s.cache.SetWithRetry(ctx, strategy, lastRunKey, string(payload)); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to cache batch summary")
	}
}

func chargeLockKey(id uuid.UUID) string {
	return "recovery:charge:" + id.String()
}

func renderMessage(c model.Charge) string {
	return fmt.Sprintf(
		"Hi %s, your payment of %s is still waiting. Complete it to finish your order.",
		c.BuyerName, formatAmount(c.Amount),
	)
}

func formatAmount(cents int64) string {
	return fmt.Sprintf("R$ %d.%02d", cents/100, cents%100)
}
