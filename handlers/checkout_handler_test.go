package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yogamaster/yoga_master/models"
	"github.com/yogamaster/yoga_master/payments"
	"github.com/yogamaster/yoga_master/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeIntentCreator struct {
	amount   int64
	currency string
	err      error
}

func (f *fakeIntentCreator) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*payments.PaymentIntent, error) {
	f.amount = amount
	f.currency = currency
	if f.err != nil {
		return nil, f.err
	}
	return &payments.PaymentIntent{ID: "pi_test", ClientSecret: "pi_test_secret"}, nil
}

type fakeCheckoutService struct {
	in     services.CheckoutInput
	result *models.CheckoutResult
	err    error
}

func (f *fakeCheckoutService) Checkout(ctx context.Context, in services.CheckoutInput) (*models.CheckoutResult, error) {
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type stubPaymentStore struct {
	payments []models.Payment
}

func (s *stubPaymentStore) Insert(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error) {
	panic("not used")
}
func (s *stubPaymentStore) ExistsByTransaction(ctx context.Context, transactionID string) (bool, error) {
	panic("not used")
}
func (s *stubPaymentStore) FindByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	return s.payments, nil
}
func (s *stubPaymentStore) CountByEmail(ctx context.Context, email string) (int64, error) {
	return int64(len(s.payments)), nil
}

func checkoutApp(intents *fakeIntentCreator, checkout *fakeCheckoutService, store *stubPaymentStore) *fiber.App {
	h := NewCheckoutHandler(intents, checkout, store, nil)

	app := fiber.New()
	app.Post("/payments/create-payment-intent", h.CreatePaymentIntent)
	app.Post("/payments/info", h.PostPaymentInfo)
	app.Get("/payments/history/:email", h.GetPaymentHistory)
	app.Get("/payments/history-length/:email", h.GetPaymentHistoryLength)
	return app
}

func TestCreatePaymentIntentConvertsPriceToCents(t *testing.T) {
	intents := &fakeIntentCreator{}
	app := checkoutApp(intents, &fakeCheckoutService{}, &stubPaymentStore{})

	req := httptest.NewRequest("POST", "/payments/create-payment-intent", strings.NewReader(`{"price": 19.99}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, int64(1999), intents.amount)
	assert.Equal(t, "usd", intents.currency)

	var out struct {
		ClientSecret string `json:"client_secret"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "pi_test_secret", out.ClientSecret)
}

func TestCreatePaymentIntentRejectsMissingPrice(t *testing.T) {
	app := checkoutApp(&fakeIntentCreator{}, &fakeCheckoutService{}, &stubPaymentStore{})

	req := httptest.NewRequest("POST", "/payments/create-payment-intent", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPostPaymentInfoReturnsCompositeResult(t *testing.T) {
	classA := primitive.NewObjectID()
	checkout := &fakeCheckoutService{result: &models.CheckoutResult{
		UpdatedResult:  models.UpdateOutcome{MatchedCount: 1, ModifiedCount: 1},
		EnrolledResult: models.InsertOutcome{InsertedID: "enr1"},
		DeletedResult:  models.DeleteOutcome{DeletedCount: 1},
		PaymentResult:  models.InsertOutcome{InsertedID: "pay1"},
	}}
	app := checkoutApp(&fakeIntentCreator{}, checkout, &stubPaymentStore{})

	body := `{"user_email":"student@example.com","transaction_id":"txn_1","amount":19.99,"classes_id":["` + classA.Hex() + `"]}`
	req := httptest.NewRequest("POST", "/payments/info", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result models.CheckoutResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, int64(1), result.UpdatedResult.MatchedCount)
	assert.Equal(t, "enr1", result.EnrolledResult.InsertedID)
	assert.Equal(t, int64(1), result.DeletedResult.DeletedCount)
	assert.Equal(t, "pay1", result.PaymentResult.InsertedID)

	assert.Equal(t, "student@example.com", checkout.in.UserEmail)
	assert.Equal(t, []primitive.ObjectID{classA}, checkout.in.ClassIDs)
	assert.Nil(t, checkout.in.SingleClassID)
}

func TestPostPaymentInfoForwardsSingleClassHint(t *testing.T) {
	classA := primitive.NewObjectID()
	checkout := &fakeCheckoutService{result: &models.CheckoutResult{}}
	app := checkoutApp(&fakeIntentCreator{}, checkout, &stubPaymentStore{})

	body := `{"user_email":"student@example.com","transaction_id":"txn_2","amount":10,"classes_id":["` + classA.Hex() + `"],"single_class_id":"` + classA.Hex() + `"}`
	req := httptest.NewRequest("POST", "/payments/info", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.NotNil(t, checkout.in.SingleClassID)
	assert.Equal(t, classA, *checkout.in.SingleClassID)
}

func TestPostPaymentInfoMapsWorkflowErrors(t *testing.T) {
	classA := primitive.NewObjectID()
	body := `{"user_email":"student@example.com","transaction_id":"txn_3","amount":10,"classes_id":["` + classA.Hex() + `"]}`

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"duplicate transaction", services.ErrDuplicateTransaction, fiber.StatusConflict},
		{"unknown class", services.ErrClassNotFound, fiber.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := checkoutApp(&fakeIntentCreator{}, &fakeCheckoutService{err: tc.err}, &stubPaymentStore{})

			req := httptest.NewRequest("POST", "/payments/info", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.code, resp.StatusCode)
		})
	}
}

func TestPostPaymentInfoRejectsMalformedClassID(t *testing.T) {
	app := checkoutApp(&fakeIntentCreator{}, &fakeCheckoutService{}, &stubPaymentStore{})

	body := `{"user_email":"student@example.com","transaction_id":"txn_4","amount":10,"classes_id":["not-an-id"]}`
	req := httptest.NewRequest("POST", "/payments/info", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPaymentHistoryEndpoints(t *testing.T) {
	store := &stubPaymentStore{payments: []models.Payment{
		{TransactionID: "txn_new", Date: time.Now()},
		{TransactionID: "txn_old", Date: time.Now().Add(-time.Hour)},
	}}
	app := checkoutApp(&fakeIntentCreator{}, &fakeCheckoutService{}, store)

	resp, err := app.Test(httptest.NewRequest("GET", "/payments/history/student@example.com", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var history []models.Payment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&history))
	assert.Len(t, history, 2)

	resp, err = app.Test(httptest.NewRequest("GET", "/payments/history-length/student@example.com", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count struct {
		Count int64 `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&count))
	assert.Equal(t, int64(2), count.Count)
}
