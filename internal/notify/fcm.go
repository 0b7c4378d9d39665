package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/stokwatch/stokwatch/internal/config"
)

// FCMNotifier implements Notifier via the Firebase Cloud Messaging legacy
// HTTP API. Messages without explicit tokens are broadcast to the
// configured topic.
type FCMNotifier struct {
	endpoint string
	apiKey   string
	topic    string
	client   *http.Client
}

// NewFCMNotifier creates a new FCMNotifier.
func NewFCMNotifier(cfg config.FCMConfig, opts ...FCMOption) *FCMNotifier {
	f := &FCMNotifier{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		topic:    cfg.Topic,
		client:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FCMOption configures an FCMNotifier.
type FCMOption func(*FCMNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) FCMOption {
	return func(f *FCMNotifier) {
		f.client = c
	}
}

// fcmPayload is the legacy FCM send JSON structure.
type fcmPayload struct {
	To              string            `json:"to,omitempty"`
	RegistrationIDs []string          `json:"registration_ids,omitempty"`
	Priority        string            `json:"priority"`
	Notification    fcmNotification   `json:"notification"`
	Data            map[string]string `json:"data,omitempty"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `json:"sound"`
	Badge string `json:"badge"`
}

// fcmResponse is the subset of the FCM response we check.
type fcmResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

// Send delivers a message through FCM.
func (f *FCMNotifier) Send(ctx context.Context, msg Message) error {
	payload := fcmPayload{
		Priority: "high",
		Notification: fcmNotification{
			Title: msg.Title,
			Body:  msg.Body,
			Sound: "default",
			Badge: "1",
		},
		Data: msg.Data,
	}

	if len(msg.Tokens) > 0 {
		payload.RegistrationIDs = msg.Tokens
	} else {
		payload.To = "/topics/" + f.topic
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling fcm payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		f.endpoint,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating fcm request: %w", err)
	}
	req.Header.Set("Authorization", "key="+f.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending fcm request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("fcm returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("fcm returned %d: %s", resp.StatusCode, respBody)
	}

	// Topic broadcasts omit the success counter; only reject an explicit
	// all-failure response for token sends.
	var result fcmResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decoding fcm response: %w", err)
	}
	if len(msg.Tokens) > 0 && result.Success == 0 && result.Failure > 0 {
		return fmt.Errorf("fcm delivered to 0 of %d tokens", len(msg.Tokens))
	}

	return nil
}
