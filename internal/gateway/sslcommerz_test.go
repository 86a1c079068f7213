package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSslcommerzCreatePayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gwprocess/v4/api.php" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		r.ParseForm()
		if r.PostForm.Get("store_id") != "teststore" || r.PostForm.Get("store_passwd") != "testpass" {
			t.Errorf("credentials not in form: %v", r.PostForm)
		}
		if r.PostForm.Get("tran_id") != "ART-10042" {
			t.Errorf("tran_id = %q", r.PostForm.Get("tran_id"))
		}
		if r.PostForm.Get("value_a") != "6f1e8c1a-3a21-4c95-9b5d-0f4f0a2d9f11" {
			t.Errorf("value_a = %q", r.PostForm.Get("value_a"))
		}
		if r.PostForm.Get("total_amount") != "1080.00" {
			t.Errorf("total_amount = %q", r.PostForm.Get("total_amount"))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":         "SUCCESS",
			"sessionkey":     "SESSION123",
			"GatewayPageURL": "https://sandbox.sslcommerz.example/EasyCheckOut/SESSION123",
		})
	}))
	defer srv.Close()

	adapter := NewSslcommerzAdapter(testClient())
	adapter.sandboxBase = srv.URL

	result, err := adapter.CreatePayment(context.Background(), testSession(testOrder()))
	if err != nil {
		t.Fatalf("CreatePayment error: %v", err)
	}
	if result.RedirectURL != "https://sandbox.sslcommerz.example/EasyCheckOut/SESSION123" {
		t.Errorf("RedirectURL = %q", result.RedirectURL)
	}
}

func TestSslcommerzCreatePaymentFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"status":       "FAILED",
			"failedreason": "Store Credential Error Or Store is De-active",
		})
	}))
	defer srv.Close()

	adapter := NewSslcommerzAdapter(testClient())
	adapter.sandboxBase = srv.URL

	_, err := adapter.CreatePayment(context.Background(), testSession(testOrder()))
	if err == nil {
		t.Fatal("expected gateway error")
	}
}

func TestSslcommerzVerifyCallback(t *testing.T) {
	tests := []struct {
		name            string
		callbackStatus  string
		validatorStatus string
		wantStatus      CallbackStatus
	}{
		{"validated", "VALID", "VALID", CallbackSuccess},
		{"validator says invalid", "VALID", "INVALID_TRANSACTION", CallbackFailed},
		{"failed redirect", "FAILED", "", CallbackFailed},
		{"cancelled redirect", "CANCELLED", "", CallbackCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var validatorCalled bool
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/validator/api/validationserverAPI.php" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				validatorCalled = true
				json.NewEncoder(w).Encode(map[string]string{
					"status":       tt.validatorStatus,
					"tran_id":      "ART-10042",
					"val_id":       "VAL123",
					"amount":       "1080.00",
					"bank_tran_id": "BANKTRX987",
					"value_a":      "order-x",
				})
			}))
			defer srv.Close()

			adapter := NewSslcommerzAdapter(testClient())
			adapter.sandboxBase = srv.URL

			result, err := adapter.VerifyCallback(context.Background(), &CallbackRequest{
				Action: "success",
				Params: map[string]string{
					"status":  tt.callbackStatus,
					"val_id":  "VAL123",
					"value_a": "order-x",
				},
				Credentials: testSession(testOrder()).Credentials,
				Sandbox:     true,
			})
			if err != nil {
				t.Fatalf("VerifyCallback error: %v", err)
			}
			if result.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", result.Status, tt.wantStatus)
			}
			if result.OrderID != "order-x" {
				t.Errorf("OrderID = %q, want order-x", result.OrderID)
			}
			if tt.wantStatus == CallbackSuccess {
				if !validatorCalled {
					t.Error("validator API was not called for a VALID callback")
				}
				if result.TransactionID != "BANKTRX987" {
					t.Errorf("TransactionID = %q", result.TransactionID)
				}
				if result.Amount != 1080 {
					t.Errorf("Amount = %v", result.Amount)
				}
			}
			if tt.callbackStatus == "FAILED" || tt.callbackStatus == "CANCELLED" {
				if validatorCalled {
					t.Error("validator called for a terminal failed/cancelled callback")
				}
			}
		})
	}
}

func TestSslcommerzVerifyCallbackValidatorUnreachable(t *testing.T) {
	adapter := NewSslcommerzAdapter(testClient())
	adapter.sandboxBase = "http://127.0.0.1:0"

	_, err := adapter.VerifyCallback(context.Background(), &CallbackRequest{
		Action:  "success",
		Params:  map[string]string{"status": "VALID", "val_id": "VAL123", "value_a": "order-x"},
		Sandbox: true,
	})
	if err == nil {
		t.Fatal("expected error when validator unreachable, must fail closed")
	}
}
