package dto

type ManualSendRequest struct {
	ChargeID   string `json:"charge_id" validate:"required,uuid"`
	CampaignID string `json:"campaign_id" validate:"required,uuid"`
	Channel    string `json:"channel" validate:"required,oneof=whatsapp email both"`
}
