package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newSurjopayTestServer(t *testing.T, verification []map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/get_token":
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["username"] != "teststore" || body["password"] != "testpass" {
				t.Errorf("get_token body = %v", body)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"token":      "sp-token-1",
				"store_id":   1027,
				"token_type": "Bearer",
			})
		case "/api/secret-pay":
			if r.Header.Get("Authorization") != "Bearer sp-token-1" {
				t.Errorf("secret-pay Authorization = %q", r.Header.Get("Authorization"))
			}
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if body["order_id"] != "ART-10042" {
				t.Errorf("order_id = %v", body["order_id"])
			}
			if body["value1"] != "6f1e8c1a-3a21-4c95-9b5d-0f4f0a2d9f11" {
				t.Errorf("value1 = %v", body["value1"])
			}
			json.NewEncoder(w).Encode(map[string]string{
				"checkout_url": "https://sandbox.shurjopay.example/checkout/SP123",
				"sp_order_id":  "ART6543abc",
			})
		case "/api/verification":
			json.NewEncoder(w).Encode(verification)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestSurjopayCreatePayment(t *testing.T) {
	srv := newSurjopayTestServer(t, nil)
	defer srv.Close()

	adapter := NewSurjopayAdapter(testClient())
	adapter.sandboxBase = srv.URL

	result, err := adapter.CreatePayment(context.Background(), testSession(testOrder()))
	if err != nil {
		t.Fatalf("CreatePayment error: %v", err)
	}
	if result.RedirectURL != "https://sandbox.shurjopay.example/checkout/SP123" {
		t.Errorf("RedirectURL = %q", result.RedirectURL)
	}
	if result.PaymentRef != "ART6543abc" {
		t.Errorf("PaymentRef = %q", result.PaymentRef)
	}
}

func TestSurjopayVerifyCallback(t *testing.T) {
	tests := []struct {
		name         string
		verification []map[string]any
		wantStatus   CallbackStatus
		wantOrderID  string
		wantTrxID    string
	}{
		{
			name: "verified success",
			verification: []map[string]any{{
				"sp_code":     1000,
				"sp_message":  "Success",
				"order_id":    "ART6543abc",
				"bank_trx_id": "NAG112233",
				"amount":      1080.0,
				"value1":      "order-x",
			}},
			wantStatus:  CallbackSuccess,
			wantOrderID: "order-x",
			wantTrxID:   "NAG112233",
		},
		{
			name: "sp_code as string",
			verification: []map[string]any{{
				"sp_code":    "1000",
				"sp_message": "Success",
				"order_id":   "ART6543abc",
				"value1":     "order-x",
			}},
			wantStatus:  CallbackSuccess,
			wantOrderID: "order-x",
			wantTrxID:   "ART6543abc",
		},
		{
			name: "declined",
			verification: []map[string]any{{
				"sp_code":    1005,
				"sp_message": "Failed",
				"value1":     "order-x",
			}},
			wantStatus:  CallbackFailed,
			wantOrderID: "order-x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newSurjopayTestServer(t, tt.verification)
			defer srv.Close()

			adapter := NewSurjopayAdapter(testClient())
			adapter.sandboxBase = srv.URL

			result, err := adapter.VerifyCallback(context.Background(), &CallbackRequest{
				Action:      "success",
				Params:      map[string]string{"order_id": "ART6543abc"},
				Credentials: testSession(testOrder()).Credentials,
				Sandbox:     true,
			})
			if err != nil {
				t.Fatalf("VerifyCallback error: %v", err)
			}
			if result.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", result.Status, tt.wantStatus)
			}
			if result.OrderID != tt.wantOrderID {
				t.Errorf("OrderID = %q, want %q", result.OrderID, tt.wantOrderID)
			}
			if tt.wantTrxID != "" && result.TransactionID != tt.wantTrxID {
				t.Errorf("TransactionID = %q, want %q", result.TransactionID, tt.wantTrxID)
			}
		})
	}
}

func TestSurjopayVerifyCallbackMissingRef(t *testing.T) {
	adapter := NewSurjopayAdapter(testClient())
	adapter.sandboxBase = "http://127.0.0.1:0"

	result, err := adapter.VerifyCallback(context.Background(), &CallbackRequest{
		Action:  "success",
		Params:  map[string]string{},
		Sandbox: true,
	})
	if err != nil {
		t.Fatalf("VerifyCallback error: %v", err)
	}
	if result.Status != CallbackFailed {
		t.Errorf("Status = %s, want failed", result.Status)
	}
}
