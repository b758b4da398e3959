package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultSendTimeout = 5 * time.Second

// MobileSasaSender posts messages to the Mobile Sasa SMS gateway.
type MobileSasaSender struct {
	apiURL   string
	apiToken string
	senderID string
	client   *http.Client
}

func NewMobileSasaSender(apiURL, apiToken, senderID string) *MobileSasaSender {
	return &MobileSasaSender{
		apiURL:   apiURL,
		apiToken: apiToken,
		senderID: senderID,
		client:   &http.Client{Timeout: defaultSendTimeout},
	}
}

type mobileSasaPayload struct {
	SenderID string `json:"senderID"`
	Message  string `json:"message"`
	Phone    string `json:"phone"`
}

func (s *MobileSasaSender) Send(ctx context.Context, phone string, message string) error {
	if s.apiToken == "" {
		return fmt.Errorf("mobile sasa api token not configured")
	}

	// The gateway wants the number without a leading plus.
	payload := mobileSasaPayload{
		SenderID: s.senderID,
		Message:  message,
		Phone:    strings.ReplaceAll(phone, "+", ""),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms gateway returned %d: %s", resp.StatusCode, snippet)
	}
	return nil
}
