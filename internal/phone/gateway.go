package phone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// GatewaySender posts messages to a self-hosted SMS gateway using basic auth.
type GatewaySender struct {
	Host     string
	Port     string
	Username string
	Password string
	client   *http.Client
}

type smsPayload struct {
	TextMessage struct {
		Text string `json:"text"`
	} `json:"textMessage"`
	PhoneNumbers []string `json:"phoneNumbers"`
}

func NewGatewaySender(host, port, username, password string) *GatewaySender {
	return &GatewaySender{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (p *GatewaySender) SendSMS(ctx context.Context, phoneNumber, message string) error {
	const op = "GatewaySender.SendSMS"
	log := slog.With("operation", op)

	if p.Host == "" {
		return ErrNotConfigured
	}

	url := fmt.Sprintf("%s:%s/message", p.Host, p.Port)
	if p.Port == "" {
		url = fmt.Sprintf("%s/message", p.Host)
	}

	payload := smsPayload{
		PhoneNumbers: []string{phoneNumber},
	}
	payload.TextMessage.Text = message

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SMS payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.SetBasicAuth(p.Username, p.Password)
	req.Header.Set("Content-Type", "application/json")

	startTime := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		log.Error("Failed to send SMS request (network/timeout error)",
			"error", err,
			"elapsed_time", time.Since(startTime),
		)
		return fmt.Errorf("failed to send SMS request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		responseBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			responseBody = fmt.Appendf(nil, "failed to read response body: %v", readErr)
		}

		log.Error("External server returned non-success status",
			"status_code", resp.StatusCode,
			"response_body", string(responseBody),
			"url", url,
		)
		return fmt.Errorf("external server returned non-success status: %s. Response body: %s", resp.Status, responseBody)
	}

	log.Info("SMS successfully sent",
		"status", resp.Status,
		"elapsed_time", time.Since(startTime),
	)
	return nil
}
