// Package payment implements the payment gateway port against the Stripe
// PaymentIntents REST API. The surface used here is one endpoint, so the
// client speaks form-encoded HTTP directly instead of pulling in an SDK.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.stripe.com"

// StripeClient calls the Stripe PaymentIntents API.
type StripeClient struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

// Option customises a StripeClient.
type Option func(*StripeClient)

// WithBaseURL overrides the API host. Intended for tests.
func WithBaseURL(u string) Option {
	return func(c *StripeClient) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *StripeClient) { c.httpClient = hc }
}

func NewStripeClient(secretKey string, opts ...Option) *StripeClient {
	c := &StripeClient{
		secretKey:  secretKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type paymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

type stripeError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// CreateIntent registers a card payment intent for amount (smallest currency
// unit) and returns its client secret.
func (c *StripeClient) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Add("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("stripe: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("stripe: create payment intent: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var se stripeError
		if err := json.NewDecoder(resp.Body).Decode(&se); err == nil && se.Error.Message != "" {
			return "", fmt.Errorf("stripe: %s (status %d)", se.Error.Message, resp.StatusCode)
		}
		return "", fmt.Errorf("stripe: unexpected status %d", resp.StatusCode)
	}

	var pi paymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&pi); err != nil {
		return "", fmt.Errorf("stripe: decode response: %w", err)
	}
	if pi.ClientSecret == "" {
		return "", fmt.Errorf("stripe: response missing client secret")
	}
	return pi.ClientSecret, nil
}
