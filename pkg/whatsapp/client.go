// Package whatsapp provides a simple client for sending recovery messages
// through a WhatsApp business API provider.
//
// It performs exactly one HTTP call per Send; retry policy belongs to the
// caller's scheduling, not to the transport.
package whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client represents a WhatsApp provider client used to send messages.
type Client struct {
	apiURL string       // provider endpoint, e.g. https://provider.example/v1/messages
	token  string       // provider API token
	client *http.Client // HTTP client used to make requests
}

// NewClient creates a new WhatsApp Client for the given provider endpoint.
func NewClient(apiURL, token string) *Client {
	return &Client{
		apiURL: apiURL,
		token:  token,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// sendMessageRequest represents the provider's message payload.
type sendMessageRequest struct {
	Phone   string `json:"phone"`   // recipient phone number
	Message string `json:"message"` // message text
}

// Send sends a message to the given phone number.
//
// It constructs the request payload, posts it to the provider, and returns
// an error if the request fails or the provider responds with a non-200
// status. The underlying HTTP client carries a bounded timeout, so a hung
// provider surfaces as a failed send rather than a stuck pass.
func (c *Client) Send(to string, msg string) error {
	reqBody := sendMessageRequest{
		Phone:   to,
		Message: msg,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("whatsapp API error: %s", resp.Status)
	}

	return nil
}
