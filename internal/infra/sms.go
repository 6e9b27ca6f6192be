package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SMSPayload is posted to the external SMS gateway when email delivery of an
// OTP fails and the user registered with a phone number.
type SMSPayload struct {
	Sender  string `json:"sender"`
	To      string `json:"to"`
	Message string `json:"message"`
}

// SMSResponse is returned by the gateway after dispatching a message.
type SMSResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"` // "queued" | "sent" | "failed"
}

// SMSClient is an HTTP client for the SMS gateway. Keeping the gateway behind
// its own client isolates its failures from the core backend; callers are
// expected to wrap calls in a CircuitBreaker.
type SMSClient struct {
	gatewayURL string
	sender     string
	httpClient *http.Client
}

func NewSMSClient(gatewayURL, sender string) *SMSClient {
	return &SMSClient{
		gatewayURL: gatewayURL,
		sender:     sender,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Send posts a message to the gateway and returns its dispatch status.
func (c *SMSClient) Send(ctx context.Context, to, message string) (*SMSResponse, error) {
	body, err := json.Marshal(SMSPayload{Sender: c.sender, To: to, Message: message})
	if err != nil {
		return nil, fmt.Errorf("sms: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("sms: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sms: gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return nil, fmt.Errorf("sms: gateway returned %d", resp.StatusCode)
	}

	var result SMSResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("sms: decode response: %w", err)
	}
	if result.Status == "failed" {
		return &result, fmt.Errorf("sms: gateway rejected message %s", result.MessageID)
	}
	return &result, nil
}
