package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// HTTPMailer sends verification email through a Resend-compatible HTTP
// mail API.  The request carries a hard timeout so a slow provider can
// only delay one signup, not wedge the handler pool.
type HTTPMailer struct {
	apiKey  string
	from    string
	baseURL string
	appURL  string // public base URL the verification link points back to
	client  *http.Client
}

// NewHTTPMailer builds a mailer for the given provider and application
// base URLs.
func NewHTTPMailer(apiKey, from, baseURL, appURL string) *HTTPMailer {
	return &HTTPMailer{
		apiKey:  apiKey,
		from:    from,
		baseURL: baseURL,
		appURL:  appURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendVerification posts one verification mail to the provider.  Any
// transport failure or non-2xx response is returned as an error; the
// caller decides how to surface it to the user.
func (m *HTTPMailer) SendVerification(ctx context.Context, email, token string) error {
	verifyURL := m.appURL + "/verify/" + token
	body := sendRequest{
		From:    m.from,
		To:      []string{email},
		Subject: "Verify your email",
		HTML: `
			<p>Welcome!</p>
			<p>Please verify your email by clicking the link below:</p>
			<p><a href="` + verifyURL + `">Verify Email</a></p>
		`,
	}

	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		m.baseURL+"/emails", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.New("send verification email: " + resp.Status + ": " + string(msg))
	}
	return nil
}
