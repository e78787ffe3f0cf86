package recovery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/charge-recovery/internal/api/dto"
	"github.com/aliskhannn/charge-recovery/internal/config"
	mocks "github.com/aliskhannn/charge-recovery/internal/mocks/api/handlers/recovery"
	"github.com/aliskhannn/charge-recovery/internal/model"
	recoverysvc "github.com/aliskhannn/charge-recovery/internal/service/recovery"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockrecoveryService, *config.Config) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockrecoveryService(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{}}
	validate := validator.New()
	handler := NewHandler(mockService, validate, cfg)
	return handler, mockService, cfg
}

func TestHandler_Run_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/recovery/run", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		RunBatch(gomock.Any(), cfg.Retry).
		Return(recoverysvc.BatchResult{Processed: 3, Sent: 2}, nil)

	handler.Run(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var body struct {
		Success bool                    `json:"success"`
		Data    recoverysvc.BatchResult `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, recoverysvc.BatchResult{Processed: 3, Sent: 2}, body.Data)
}

func TestHandler_SendMessage_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	chargeID := uuid.New()
	campaignID := uuid.New()

	reqBody := dto.ManualSendRequest{
		ChargeID:   chargeID.String(),
		CampaignID: campaignID.String(),
		Channel:    "email",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/recovery/messages", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		SendManual(gomock.Any(), chargeID, campaignID, "email").
		Return(nil)

	handler.SendMessage(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_SendMessage_ValidationError(t *testing.T) {
	handler, _, _ := setupHandler(t)

	reqBody := dto.ManualSendRequest{
		ChargeID:   uuid.New().String(),
		CampaignID: uuid.New().String(),
		Channel:    "pigeon",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/recovery/messages", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.SendMessage(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_SendMessage_RejectionIsDescriptive(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	chargeID := uuid.New()
	campaignID := uuid.New()

	reqBody := dto.ManualSendRequest{
		ChargeID:   chargeID.String(),
		CampaignID: campaignID.String(),
		Channel:    "whatsapp",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/recovery/messages", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		SendManual(gomock.Any(), chargeID, campaignID, "whatsapp").
		Return(recoverysvc.ErrNoPhoneOnFile)

	handler.SendMessage(c)

	// Rejections come back as a 2xx with success=false and a reason, never
	// as a bare 5xx.
	assert.Equal(t, http.StatusOK, w.Result().StatusCode)

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Error, "phone")
}

func TestHandler_SendMessage_InfrastructureError(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	chargeID := uuid.New()
	campaignID := uuid.New()

	reqBody := dto.ManualSendRequest{
		ChargeID:   chargeID.String(),
		CampaignID: campaignID.String(),
		Channel:    "email",
	}

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/recovery/messages", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		SendManual(gomock.Any(), chargeID, campaignID, "email").
		Return(assert.AnError)

	handler.SendMessage(c)

	assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
}

func TestHandler_ChargeMessages_Success(t *testing.T) {
	handler, mockService, _ := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/recovery/charges/"+id.String()+"/messages", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	messages := []model.RecoveryMessage{
		{ChargeID: id, Channel: "email", Status: "sent", MessageNumber: 1, SentAt: time.Now()},
	}

	mockService.EXPECT().
		ListChargeMessages(gomock.Any(), id).
		Return(messages, nil)

	handler.ChargeMessages(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_ChargeMessages_InvalidID(t *testing.T) {
	handler, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/recovery/charges/not-a-uuid/messages", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	handler.ChargeMessages(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Status_Success(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/recovery/status", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		LastRun(gomock.Any(), cfg.Retry).
		Return(recoverysvc.BatchResult{Processed: 7, Sent: 4}, nil)

	handler.Status(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Status_NoRunYet(t *testing.T) {
	handler, mockService, cfg := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/recovery/status", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockService.EXPECT().
		LastRun(gomock.Any(), cfg.Retry).
		Return(recoverysvc.BatchResult{}, recoverysvc.ErrNoBatchRun)

	handler.Status(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}
