// Package hubnet wraps the Hubnet reseller API: volume-based bundle
// transactions with delivery pushed back over a webhook.
package hubnet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"github.com/ghbundles/fulfillment-service/internal/config"
	"github.com/ghbundles/fulfillment-service/internal/provider"
)

var (
	ErrDisabled      = errors.New("hubnet is disabled")
	ErrNotConfigured = errors.New("hubnet API key is not configured")
	ErrInvalidPhone  = errors.New("invalid phone number")
)

// APIError is a rejected request: a non-2xx response with whatever reason the
// provider included.
type APIError struct {
	StatusCode int
	Reason     string
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("hubnet request failed with status %d", e.StatusCode)
}

type Client struct {
	cfg   config.Hubnet
	httpc *http.Client
}

func NewClient(cfg config.Hubnet, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{cfg: cfg, httpc: httpc}
}

type TransactionRequest struct {
	Network   string
	Phone     string
	VolumeMB  int
	Reference string
	// Referrer is optional and dropped silently when not normalizable.
	Referrer   string
	WebhookURL string
}

type TransactionResult struct {
	TransactionID string
	PaymentID     string
}

// NewTransaction submits one bundle delivery. The reference doubles as the
// idempotency key: resubmitting with the same reference is safe.
func (c *Client) NewTransaction(ctx context.Context, req TransactionRequest) (TransactionResult, error) {
	if err := c.ready(); err != nil {
		return TransactionResult{}, err
	}

	phone, err := NormalizePhone(req.Phone)
	if err != nil {
		return TransactionResult{}, err
	}

	payload := map[string]string{
		"phone":     phone,
		"volume":    strconv.Itoa(req.VolumeMB),
		"reference": req.Reference,
	}
	if ref, err := NormalizePhone(req.Referrer); err == nil && req.Referrer != "" {
		payload["referrer"] = ref
	}
	if req.WebhookURL != "" {
		payload["webhook"] = req.WebhookURL
	}

	endpoint := fmt.Sprintf("%s/%s-new-transaction", c.cfg.BaseURL, url.PathEscape(req.Network))
	doc, err := c.do(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return TransactionResult{}, err
	}

	res := TransactionResult{}
	res.TransactionID, _ = provider.FirstString(doc, "transaction_id", "data.transaction_id")
	res.PaymentID, _ = provider.FirstString(doc, "payment_id", "data.payment_id")
	return res, nil
}

// Balance returns the raw provider balance document for the admin surface.
func (c *Client) Balance(ctx context.Context) (json.RawMessage, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	doc, err := c.do(ctx, http.MethodGet, c.cfg.BaseURL+"/check_balance", nil)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

func (c *Client) ready() error {
	if !c.cfg.Enabled {
		return ErrDisabled
	}
	if c.cfg.APIKey == "" {
		return ErrNotConfigured
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload any) (map[string]any, error) {
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	// Hubnet expects the key in a nonstandard "token" header.
	req.Header.Set("token", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hubnet request failed: %w", err)
	}
	defer resp.Body.Close()

	var doc map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		doc = nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reason, _ := provider.FirstString(doc, "reason", "message")
		return nil, &APIError{StatusCode: resp.StatusCode, Reason: reason}
	}
	return doc, nil
}

var nonDigits = regexp.MustCompile(`\D+`)

// NormalizePhone converts a phone number to the local 10-digit format the
// provider expects. Accepts either 10 local digits or a 233-prefixed
// 12-digit international number.
func NormalizePhone(phone string) (string, error) {
	digits := nonDigits.ReplaceAllString(phone, "")
	switch {
	case len(digits) == 10:
		return digits, nil
	case len(digits) == 12 && digits[:3] == "233":
		return "0" + digits[3:], nil
	default:
		return "", ErrInvalidPhone
	}
}
