package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAamarpayCreatePayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jsonpost.php" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["signature_key"] != "testsig" {
			t.Errorf("signature_key = %q", body["signature_key"])
		}
		if body["opt_a"] != "6f1e8c1a-3a21-4c95-9b5d-0f4f0a2d9f11" {
			t.Errorf("opt_a = %q", body["opt_a"])
		}
		if body["tran_id"] != "ART-10042" {
			t.Errorf("tran_id = %q", body["tran_id"])
		}
		json.NewEncoder(w).Encode(map[string]string{
			"result":      "true",
			"payment_url": "https://sandbox.aamarpay.example/paynow/ABC",
		})
	}))
	defer srv.Close()

	adapter := NewAamarpayAdapter(testClient())
	adapter.sandboxBase = srv.URL

	result, err := adapter.CreatePayment(context.Background(), testSession(testOrder()))
	if err != nil {
		t.Fatalf("CreatePayment error: %v", err)
	}
	if result.RedirectURL != "https://sandbox.aamarpay.example/paynow/ABC" {
		t.Errorf("RedirectURL = %q", result.RedirectURL)
	}
}

func TestAamarpayVerifyCallbackRequiresTrxCheck(t *testing.T) {
	tests := []struct {
		name           string
		trxCheckStatus string
		wantStatus     CallbackStatus
	}{
		{"confirmed by trxcheck", "Successful", CallbackSuccess},
		{"trxcheck disagrees with callback", "Failed", CallbackFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var trxCheckCalled bool
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/v1/trxcheck/request.php" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				trxCheckCalled = true
				if r.URL.Query().Get("request_id") != "ART-10042" {
					t.Errorf("request_id = %q", r.URL.Query().Get("request_id"))
				}
				json.NewEncoder(w).Encode(map[string]string{
					"pay_status": tt.trxCheckStatus,
					"pg_txnid":   "AAM998877",
					"mer_txnid":  "ART-10042",
					"amount":     "1080.00",
					"opt_a":      "order-x",
				})
			}))
			defer srv.Close()

			adapter := NewAamarpayAdapter(testClient())
			adapter.sandboxBase = srv.URL

			// Callback claims success either way; only trxcheck decides.
			result, err := adapter.VerifyCallback(context.Background(), &CallbackRequest{
				Action: "success",
				Params: map[string]string{
					"pay_status": "Successful",
					"mer_txnid":  "ART-10042",
					"opt_a":      "order-x",
				},
				Credentials: testSession(testOrder()).Credentials,
				Sandbox:     true,
			})
			if err != nil {
				t.Fatalf("VerifyCallback error: %v", err)
			}
			if !trxCheckCalled {
				t.Fatal("trxcheck was not called; callback body must not be trusted alone")
			}
			if result.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", result.Status, tt.wantStatus)
			}
			if tt.wantStatus == CallbackSuccess && result.TransactionID != "AAM998877" {
				t.Errorf("TransactionID = %q", result.TransactionID)
			}
		})
	}
}

func TestAamarpayVerifyCallbackFailedStatus(t *testing.T) {
	adapter := NewAamarpayAdapter(testClient())
	adapter.sandboxBase = "http://127.0.0.1:0"

	result, err := adapter.VerifyCallback(context.Background(), &CallbackRequest{
		Action:  "fail",
		Params:  map[string]string{"pay_status": "Failed", "opt_a": "order-x"},
		Sandbox: true,
	})
	if err != nil {
		t.Fatalf("VerifyCallback error: %v", err)
	}
	if result.Status != CallbackFailed {
		t.Errorf("Status = %s, want failed", result.Status)
	}
	if result.OrderID != "order-x" {
		t.Errorf("OrderID = %q", result.OrderID)
	}
}
