package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// SMSGatewaySender delivers notifications through an HTTP SMS gateway.
type SMSGatewaySender struct {
	gatewayURL string
	apiKey     string
	client     *http.Client
}

// NewSMSGatewaySender creates a sender posting to the given gateway endpoint.
func NewSMSGatewaySender(gatewayURL, apiKey string) *SMSGatewaySender {
	return &SMSGatewaySender{
		gatewayURL: gatewayURL,
		apiKey:     apiKey,
		client:     &http.Client{},
	}
}

// sendSMSRequest represents the payload for the gateway's send endpoint.
type sendSMSRequest struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

// Send posts one message to the gateway. A non-200 response counts as a
// delivery failure.
func (s *SMSGatewaySender) Send(destination, message string) error {
	body, err := json.Marshal(sendSMSRequest{
		To:   destination,
		Text: message,
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.gatewayURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sms gateway error: %s", resp.Status)
	}

	return nil
}
