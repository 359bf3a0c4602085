package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaystackInitialize(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/abc123","access_code":"abc123","reference":"SWIM-1-tok"}}`))
	}))
	defer srv.Close()

	client := NewPaystackClient(srv.URL, "sk_test_secret")
	res, err := client.Initialize(context.Background(), InitializeRequest{
		Amount:      500000,
		Email:       "a@x.com",
		Reference:   "SWIM-1-tok",
		CallbackURL: "https://swimly.test/payment/success",
		Metadata:    map[string]interface{}{"slotId": "S1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/transaction/initialize", gotPath)
	assert.Equal(t, "Bearer sk_test_secret", gotAuth)
	assert.Equal(t, float64(500000), gotBody["amount"])
	assert.Equal(t, "SWIM-1-tok", gotBody["reference"])
	assert.Equal(t, "https://swimly.test/payment/success", gotBody["callback_url"])
	assert.Equal(t, "https://checkout.paystack.com/abc123", res.AuthorizationURL)
	assert.Equal(t, "abc123", res.AccessCode)
	assert.Equal(t, "SWIM-1-tok", res.ProviderReference)
}

func TestPaystackInitializeRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":false,"message":"Invalid amount"}`))
	}))
	defer srv.Close()

	client := NewPaystackClient(srv.URL, "sk_test_secret")
	_, err := client.Initialize(context.Background(), InitializeRequest{Amount: -1, Email: "a@x.com", Reference: "SWIM-2-tok"})
	require.ErrorIs(t, err, ErrRejected)
}

func TestPaystackInitializeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewPaystackClient(srv.URL, "sk_test_secret")
	_, err := client.Initialize(context.Background(), InitializeRequest{Amount: 100, Email: "a@x.com", Reference: "SWIM-3-tok"})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestPaystackVerify(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"success","amount":500000,"currency":"NGN"}}`))
	}))
	defer srv.Close()

	client := NewPaystackClient(srv.URL, "sk_test_secret")
	res, err := client.Verify(context.Background(), "SWIM-1-tok")
	require.NoError(t, err)

	assert.Equal(t, "/transaction/verify/SWIM-1-tok", gotPath)
	assert.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, int64(500000), res.Amount)
	assert.NotNil(t, res.Raw["data"])
}

func TestPaystackVerifyUnknownReference(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":false,"message":"Transaction reference not found"}`))
	}))
	defer srv.Close()

	client := NewPaystackClient(srv.URL, "sk_test_secret")
	_, err := client.Verify(context.Background(), "no-such-ref")
	require.ErrorIs(t, err, ErrReferenceUnknown)
}

func TestPaystackVerifyStatusMapping(t *testing.T) {
	cases := []struct {
		provider string
		want     string
	}{
		{"success", StatusSuccess},
		{"failed", StatusFailed},
		{"reversed", StatusFailed},
		{"abandoned", StatusPending},
		{"ongoing", StatusPending},
		{"pending", StatusPending},
		{"", StatusPending},
	}
	for _, tc := range cases {
		t.Run("status_"+tc.provider, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]interface{}{
					"status": true,
					"data":   map[string]interface{}{"status": tc.provider, "amount": 1000},
				})
			}))
			defer srv.Close()

			client := NewPaystackClient(srv.URL, "sk_test_secret")
			res, err := client.Verify(context.Background(), "SWIM-4-tok")
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Status)
		})
	}
}
