// Package datahubnet wraps the DataHubnet reseller API: capacity-based bundle
// orders confirmed by status polling.
package datahubnet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ghbundles/fulfillment-service/internal/config"
	"github.com/ghbundles/fulfillment-service/internal/provider"
)

var (
	ErrDisabled      = errors.New("datahubnet is disabled")
	ErrNotConfigured = errors.New("datahubnet API key is not configured")
)

type APIError struct {
	StatusCode int
	Reason     string
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("datahubnet request failed with status %d", e.StatusCode)
}

type Client struct {
	cfg   config.Datahubnet
	httpc *http.Client
}

func NewClient(cfg config.Datahubnet, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{cfg: cfg, httpc: httpc}
}

type OrderRequest struct {
	Phone     string
	Network   string
	Capacity  int
	Reference string
	Express   bool
}

type OrderResult struct {
	// OrderID is the provider-assigned id used for later status checks.
	// Empty when the provider acknowledged without one.
	OrderID string
}

func (c *Client) PlaceOrder(ctx context.Context, req OrderRequest) (OrderResult, error) {
	if err := c.ready(); err != nil {
		return OrderResult{}, err
	}

	payload := map[string]any{
		"phone":     req.Phone,
		"network":   req.Network,
		"capacity":  req.Capacity,
		"reference": req.Reference,
		"express":   req.Express,
	}

	doc, err := c.do(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/placeOrder/", payload, "")
	if err != nil {
		return OrderResult{}, err
	}

	// Some rejections come back with HTTP 200 and an error field.
	if reason, ok := provider.FirstString(doc, "error"); ok {
		return OrderResult{}, &APIError{StatusCode: http.StatusBadGateway, Reason: reason}
	}

	orderID, _ := provider.FirstString(doc, "data.order_id", "order_id", "id")
	return OrderResult{OrderID: orderID}, nil
}

// CheckStatus returns the provider's free-text delivery status for an order
// id or reference. Classification of the text is the caller's concern.
func (c *Client) CheckStatus(ctx context.Context, idOrReference string) (string, error) {
	if err := c.ready(); err != nil {
		return "", err
	}

	endpoint := c.cfg.BaseURL + "/v1/check-status/" + url.PathEscape(idOrReference)
	doc, err := c.do(ctx, http.MethodGet, endpoint, nil, c.cfg.AuthSchemeStatus)
	if err != nil {
		return "", err
	}

	status, _ := provider.FirstString(doc, "data.order.status", "data.status", "status")
	return status, nil
}

func (c *Client) Balance(ctx context.Context) (json.RawMessage, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	doc, err := c.do(ctx, http.MethodGet, c.cfg.BaseURL+"/user/balance/", nil, "")
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

func (c *Client) do(ctx context.Context, method, endpoint string, payload any, authScheme string) (map[string]any, error) {
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

	scheme := c.cfg.AuthScheme
	if authScheme != "" {
		scheme = authScheme
	}
	req.Header.Set("Authorization", scheme+" "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("datahubnet request failed: %w", err)
	}
	defer resp.Body.Close()

	var doc map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		doc = nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reason, _ := provider.FirstString(doc, "message", "error")
		return nil, &APIError{StatusCode: resp.StatusCode, Reason: reason}
	}
	return doc, nil
}
