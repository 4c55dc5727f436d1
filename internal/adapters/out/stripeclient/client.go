// Package stripeclient provides the HTTP implementation of the
// PaymentProcessor port against a Stripe-compatible payment intents API.
// Amounts cross the wire in minor currency units, the convention the
// provider uses.
package stripeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/ports"
	"docflow/internal/pkg/errs"
)

const requestTimeout = 10 * time.Second

// Client talks to the payment provider's payment intents endpoints.
type Client struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

// NewClient creates a payment processor client. The secret key is sent as a
// bearer token on every request.
func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		client:    &http.Client{Timeout: requestTimeout},
	}
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

// CreateIntent registers a new payment intent with the provider. The order
// identifier travels as intent metadata for reconciliation.
func (c *Client) CreateIntent(ctx context.Context, amount kernel.Money, currency string, orderID kernel.UUID) (ports.PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount.MinorUnits(), 10))
	form.Set("currency", strings.ToLower(currency))
	form.Set("metadata[order_id]", orderID.String())

	endpoint := c.baseURL + "/v1/payment_intents"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return ports.PaymentIntent{}, errs.NewPaymentProcessingErrorWithCause("create intent request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	return c.doIntentRequest(req)
}

// RetrieveIntent fetches the current state of a previously created intent.
func (c *Client) RetrieveIntent(ctx context.Context, intentID string) (ports.PaymentIntent, error) {
	endpoint := c.baseURL + "/v1/payment_intents/" + url.PathEscape(intentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.PaymentIntent{}, errs.NewPaymentProcessingErrorWithCause("retrieve intent request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	return c.doIntentRequest(req)
}

func (c *Client) doIntentRequest(req *http.Request) (ports.PaymentIntent, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return ports.PaymentIntent{}, errs.NewPaymentProcessingErrorWithCause("payment provider unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.PaymentIntent{}, errs.NewPaymentProcessingError(
			fmt.Sprintf("payment provider returned status %d", resp.StatusCode))
	}

	var body intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.PaymentIntent{}, errs.NewPaymentProcessingErrorWithCause("decode intent response", err)
	}

	return ports.PaymentIntent{
		ID:           body.ID,
		ClientSecret: body.ClientSecret,
		Status:       body.Status,
	}, nil
}
