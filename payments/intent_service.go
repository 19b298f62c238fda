package payments

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	config "github.com/yogamaster/yoga_master/configs"
)

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

// IntentClient talks to the Stripe payment-intents API. The service never
// captures anything itself: the client confirms the intent in the browser and
// posts the resulting transaction reference back to the checkout endpoint.
type IntentClient struct {
	http      *resty.Client
	secretKey string
}

func NewIntentClient() *IntentClient {
	apiBase := config.ConfigOr("STRIPE_API_BASE_URL", "https://api.stripe.com")

	return &IntentClient{
		http:      resty.New().SetBaseURL(apiBase).SetTimeout(15 * time.Second),
		secretKey: config.Config("STRIPE_SECRET_KEY"),
	}
}

// CreatePaymentIntent authorizes a charge of amount in the smallest currency
// unit and returns the client-usable secret. Gateway errors are surfaced
// as-is to the caller.
func (c *IntentClient) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*PaymentIntent, error) {
	var intent PaymentIntent

	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.secretKey, "").
		SetHeader("Idempotency-Key", uuid.NewString()).
		SetFormData(map[string]string{
			"amount":                 strconv.FormatInt(amount, 10),
			"currency":               currency,
			"payment_method_types[]": "card",
		}).
		SetResult(&intent).
		Post("/v1/payment_intents")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to create payment intent: %s", resp.String())
	}

	return &intent, nil
}
