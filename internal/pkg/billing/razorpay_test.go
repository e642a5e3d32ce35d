package billing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRazorpayClient(baseURL string) *RazorpayClient {
	return &RazorpayClient{
		KeyID:      "rzp_test_key",
		KeySecret:  "rzp_test_secret",
		APIBaseURL: baseURL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestRazorpayCreateOrder(t *testing.T) {
	var gotPath, gotAuthUser string
	var gotPayload map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuthUser, _, _ = r.BasicAuth()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(GatewayOrder{
			ID:       "order_abc123",
			Amount:   79920,
			Currency: "INR",
			Receipt:  "rcpt-1",
			Status:   "created",
		})
	}))
	defer srv.Close()

	client := newTestRazorpayClient(srv.URL)
	order, err := client.CreateOrder(context.Background(), 79920, "INR", "rcpt-1")
	require.NoError(t, err)

	assert.Equal(t, "/orders", gotPath)
	assert.Equal(t, "rzp_test_key", gotAuthUser)
	assert.Equal(t, float64(79920), gotPayload["amount"])
	assert.Equal(t, "INR", gotPayload["currency"])
	assert.Equal(t, "order_abc123", order.ID)
	assert.Equal(t, int64(79920), order.Amount)
}

func TestRazorpayCreateOrderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"description":"Authentication failed"}}`))
	}))
	defer srv.Close()

	client := newTestRazorpayClient(srv.URL)
	_, err := client.CreateOrder(context.Background(), 99900, "INR", "rcpt-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")
}

func TestRazorpayCreateOrderMissingCredentials(t *testing.T) {
	client := &RazorpayClient{HTTPClient: http.DefaultClient}
	_, err := client.CreateOrder(context.Background(), 99900, "INR", "rcpt-3")
	require.Error(t, err)
}

func TestRazorpayCreateOrderRejectsZeroAmount(t *testing.T) {
	client := newTestRazorpayClient("http://unused")
	_, err := client.CreateOrder(context.Background(), 0, "INR", "rcpt-4")
	require.Error(t, err)
}

func TestRazorpayCreateOrderMissingOrderID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newTestRazorpayClient(srv.URL)
	_, err := client.CreateOrder(context.Background(), 99900, "INR", "rcpt-5")
	require.Error(t, err)
}
