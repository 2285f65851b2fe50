package checkout

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// SessionItem is one cart line in the session-creation payload.
type SessionItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// SessionRequest is the payload POSTed to the hosted payment provider
// to open a checkout session.
type SessionRequest struct {
	Items           []SessionItem `json:"items"`
	DeliveryAddress string        `json:"deliveryAddress"`
	DeliveryOption  string        `json:"deliveryOption"`
	TotalAmount     float64       `json:"totalAmount"`
}

// SessionResponse carries the redirect target the shopper is handed
// off to. Everything behind that URL is the provider's own surface.
type SessionResponse struct {
	URL string `json:"url"`
}

// SessionCreator is the outbound contract of PaymentClient.
type SessionCreator interface {
	CreateSession(ctx context.Context, req *SessionRequest) (*SessionResponse, error)
}

// PaymentClient creates hosted checkout sessions over HTTP.
type PaymentClient struct {
	http *resty.Client
}

func NewPaymentClient(baseURL string) *PaymentClient {
	return &PaymentClient{
		http: resty.New().SetBaseURL(baseURL),
	}
}

func (c *PaymentClient) CreateSession(ctx context.Context, req *SessionRequest) (*SessionResponse, error) {
	var session SessionResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&session).
		Post("/api/payment/create-checkout-session")
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("checkout session request failed with status %d: %s", resp.StatusCode(), resp.Body())
	}

	return &session, nil
}
