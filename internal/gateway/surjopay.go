package gateway

import (
	"context"
	"strconv"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
)

// SurjopayAdapter speaks the shurjoPay v2 engine API. Credentials map as
// StoreID = merchant username, StorePassword = merchant password. The order
// id travels in the value1 passthrough field; the callback only echoes the
// shurjoPay order reference, so the verification response is the sole
// source of both outcome and correlation.
type SurjopayAdapter struct {
	client      *Client
	liveBase    string
	sandboxBase string
	prefix      string
}

func NewSurjopayAdapter(client *Client) *SurjopayAdapter {
	return &SurjopayAdapter{
		client:      client,
		liveBase:    "https://engine.shurjopayment.com",
		sandboxBase: "https://sandbox.shurjopayment.com",
		prefix:      "ART",
	}
}

func (a *SurjopayAdapter) Name() domain.ProviderType {
	return domain.ProviderSurjopay
}

func (a *SurjopayAdapter) baseURL(sandbox bool) string {
	if sandbox {
		return a.sandboxBase
	}
	return a.liveBase
}

type surjopayTokenResponse struct {
	Token     string `json:"token"`
	StoreID   int    `json:"store_id"`
	TokenType string `json:"token_type"`
	Message   string `json:"message"`
	SpCode    any    `json:"sp_code"`
}

type surjopaySecretPayResponse struct {
	CheckoutURL string `json:"checkout_url"`
	SpOrderID   string `json:"sp_order_id"`
	Message     string `json:"message"`
}

type surjopayVerification struct {
	SpCode     any     `json:"sp_code"`
	SpMessage  string  `json:"sp_message"`
	OrderID    string  `json:"order_id"`
	BankTrxID  string  `json:"bank_trx_id"`
	Amount     float64 `json:"amount"`
	BankStatus string  `json:"bank_status"`
	Value1     string  `json:"value1"`
}

func (a *SurjopayAdapter) fetchToken(ctx context.Context, creds Credentials, sandbox bool) (*surjopayTokenResponse, error) {
	var token surjopayTokenResponse
	err := a.client.PostJSON(ctx,
		a.baseURL(sandbox)+"/api/get_token",
		nil,
		map[string]string{
			"username": creds.StoreID,
			"password": creds.StorePassword,
		},
		&token,
	)
	if err != nil {
		return nil, domain.NewGatewayError(domain.ProviderSurjopay, err.Error())
	}
	if token.Token == "" {
		return nil, domain.NewGatewayError(domain.ProviderSurjopay, token.Message)
	}
	return &token, nil
}

func (a *SurjopayAdapter) CreatePayment(ctx context.Context, session *Session) (*InitResult, error) {
	token, err := a.fetchToken(ctx, session.Credentials, session.Sandbox)
	if err != nil {
		return nil, err
	}

	order := session.Order
	address := order.Address
	var created surjopaySecretPayResponse
	err = a.client.PostJSON(ctx,
		a.baseURL(session.Sandbox)+"/api/secret-pay",
		map[string]string{"Authorization": "Bearer " + token.Token},
		map[string]any{
			"prefix":           a.prefix,
			"token":            token.Token,
			"store_id":         token.StoreID,
			"order_id":         order.OrderNumber,
			"amount":           order.Total,
			"currency":         "BDT",
			"customer_name":    address.FullName,
			"customer_phone":   address.Phone,
			"customer_address": address.AddressLine,
			"customer_city":    address.District,
			"client_ip":        "127.0.0.1",
			"return_url":       session.CallbackURL + "?action=success",
			"cancel_url":       session.CallbackURL + "?action=cancel",
			"value1":           order.ID,
			"value2":           session.PaymentRef,
		},
		&created,
	)
	if err != nil {
		return nil, domain.NewGatewayError(domain.ProviderSurjopay, err.Error())
	}
	if created.CheckoutURL == "" {
		return nil, domain.NewGatewayError(domain.ProviderSurjopay, created.Message)
	}

	return &InitResult{RedirectURL: created.CheckoutURL, PaymentRef: created.SpOrderID}, nil
}

func (a *SurjopayAdapter) VerifyCallback(ctx context.Context, req *CallbackRequest) (*CallbackResult, error) {
	spOrderID := req.Params["order_id"]
	if spOrderID == "" {
		return &CallbackResult{Status: CallbackFailed}, nil
	}
	if req.Action == "cancel" {
		return &CallbackResult{Status: CallbackCancelled}, nil
	}

	token, err := a.fetchToken(ctx, req.Credentials, req.Sandbox)
	if err != nil {
		return nil, err
	}

	var verifications []surjopayVerification
	err = a.client.PostJSON(ctx,
		a.baseURL(req.Sandbox)+"/api/verification",
		map[string]string{"Authorization": "Bearer " + token.Token},
		map[string]string{"order_id": spOrderID},
		&verifications,
	)
	if err != nil {
		return nil, domain.NewGatewayError(domain.ProviderSurjopay, err.Error())
	}
	if len(verifications) == 0 {
		return nil, domain.NewGatewayError(domain.ProviderSurjopay, "empty verification response")
	}

	verified := verifications[0]
	orderID := verified.Value1
	if spCodeValue(verified.SpCode) != 1000 {
		return &CallbackResult{OrderID: orderID, Status: CallbackFailed}, nil
	}

	transactionID := verified.BankTrxID
	if transactionID == "" {
		transactionID = verified.OrderID
	}
	return &CallbackResult{
		OrderID:       orderID,
		TransactionID: transactionID,
		Status:        CallbackSuccess,
		Amount:        verified.Amount,
	}, nil
}

// spCodeValue tolerates the engine returning sp_code as either a number or
// a quoted string.
func spCodeValue(v any) int {
	switch code := v.(type) {
	case float64:
		return int(code)
	case string:
		n, err := strconv.Atoi(code)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func parseAmount(s string) float64 {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return amount
}
