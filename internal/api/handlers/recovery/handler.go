package recovery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/charge-recovery/internal/api/dto"
	"github.com/aliskhannn/charge-recovery/internal/api/respond"
	"github.com/aliskhannn/charge-recovery/internal/config"
	"github.com/aliskhannn/charge-recovery/internal/model"
	"github.com/aliskhannn/charge-recovery/internal/repository/campaign"
	"github.com/aliskhannn/charge-recovery/internal/repository/charge"
	recoverysvc "github.com/aliskhannn/charge-recovery/internal/service/recovery"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/recovery/mock.go -package=mocks

type recoveryService interface {
	RunBatch(ctx context.Context, strategy retry.Strategy) (recoverysvc.BatchResult, error)
	SendManual(ctx context.Context, chargeID, campaignID uuid.UUID, channel string) error
	ListChargeMessages(ctx context.Context, chargeID uuid.UUID) ([]model.RecoveryMessage, error)
	LastRun(ctx context.Context, strategy retry.Strategy) (recoverysvc.BatchResult, error)
}

type Handler struct {
	service   recoveryService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(
	s recoveryService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Run executes one batch pass and returns its summary counts. It fails with
// a 5xx only when the store itself is unreachable.
func (h *Handler) Run(c *ginext.Context) {
	result, err := h.service.RunBatch(c.Request.Context(), h.cfg.Retry)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("batch pass failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, result)
}

// SendMessage is the manual trigger: it sends one out-of-band recovery
// message immediately. Validation failures come back as 2xx with
// success=false, never as a silent no-op.
func (h *Handler) SendMessage(c *ginext.Context) {
	var req dto.ManualSendRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	chargeID, err := uuid.Parse(req.ChargeID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid charge_id"))
		return
	}

	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid campaign_id"))
		return
	}

	err = h.service.SendManual(c.Request.Context(), chargeID, campaignID, req.Channel)
	if err != nil {
		if isRejection(err) {
			zlog.Logger.Warn().Err(err).Str("charge_id", req.ChargeID).Msg("manual send rejected")
			respond.Fail(c.Writer, http.StatusOK, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("charge_id", req.ChargeID).Msg("manual send failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "message sent")
}

// ChargeMessages returns a charge's recovery history, newest first.
func (h *Handler) ChargeMessages(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	messages, err := h.service.ListChargeMessages(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, charge.ErrChargeNotFound) {
			zlog.Logger.Warn().Interface("id", id).Err(err).Msg("charge not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("charge not found"))
			return
		}

		zlog.Logger.Error().Err(err).Interface("id", id).Msg("failed to list charge messages")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, messages)
}

// Status returns the summary of the most recent batch pass.
func (h *Handler) Status(c *ginext.Context) {
	result, err := h.service.LastRun(c.Request.Context(), h.cfg.Retry)
	if err != nil {
		if errors.Is(err, recoverysvc.ErrNoBatchRun) {
			respond.Fail(c.Writer, http.StatusNotFound, err)
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to get last run summary")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, result)
}

// isRejection reports whether a manual-send error is a validation-class
// rejection (descriptive, user-facing) rather than an infrastructure
// failure.
func isRejection(err error) bool {
	return errors.Is(err, charge.ErrChargeNotFound) ||
		errors.Is(err, campaign.ErrCampaignNotFound) ||
		errors.Is(err, recoverysvc.ErrUnknownChannel) ||
		errors.Is(err, recoverysvc.ErrNoPhoneOnFile) ||
		errors.Is(err, recoverysvc.ErrChargeExhausted) ||
		errors.Is(err, recoverysvc.ErrChargeBusy) ||
		errors.Is(err, recoverysvc.ErrDispatchFailed)
}
