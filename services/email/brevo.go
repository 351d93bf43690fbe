package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBrevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoClient sends transactional email through the Brevo SMTP API.
type BrevoClient struct {
	apiKey      string
	senderEmail string
	senderName  string
	endpoint    string
	httpClient  *http.Client
}

// NewBrevoClient returns nil when credentials are missing; callers treat a
// nil sender as email disabled.
func NewBrevoClient(apiKey, senderEmail, senderName string) *BrevoClient {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(senderEmail) == "" {
		return nil
	}
	if strings.TrimSpace(senderName) == "" {
		senderName = senderEmail
	}
	return &BrevoClient{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
		endpoint:    defaultBrevoEndpoint,
		httpClient:  &http.Client{Timeout: 8 * time.Second},
	}
}

type brevoSender struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type brevoRecipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoSendRequest struct {
	Sender      brevoSender      `json:"sender"`
	To          []brevoRecipient `json:"to"`
	Subject     string           `json:"subject"`
	HtmlContent string           `json:"htmlContent"`
}

// Send posts one HTML message to the Brevo API.
func (c *BrevoClient) Send(ctx context.Context, toEmail, toName, subject, htmlBody string) error {
	if c == nil {
		return errors.New("email sender is not configured")
	}
	if strings.TrimSpace(toEmail) == "" {
		return errors.New("missing recipient email")
	}
	if strings.TrimSpace(subject) == "" {
		return errors.New("missing subject")
	}

	payload := brevoSendRequest{
		Sender:      brevoSender{Name: c.senderName, Email: c.senderEmail},
		To:          []brevoRecipient{{Email: toEmail, Name: toName}},
		Subject:     subject,
		HtmlContent: htmlBody,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("brevo marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("brevo create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("brevo send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("brevo send failed: status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
