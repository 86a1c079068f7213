package gateway

import (
	"context"
	"fmt"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
)

// BkashAdapter speaks the bKash tokenized checkout API. Credentials map as
// StoreID = app key (also the token-grant username), StorePassword = app
// secret, SignatureKey = token-grant password. A grant token is fetched
// fresh for every call; bKash tokens are not reused across requests.
type BkashAdapter struct {
	client      *Client
	liveBase    string
	sandboxBase string
}

func NewBkashAdapter(client *Client) *BkashAdapter {
	return &BkashAdapter{
		client:      client,
		liveBase:    "https://tokenized.pay.bka.sh/v1.2.0-beta",
		sandboxBase: "https://tokenized.sandbox.bka.sh/v1.2.0-beta",
	}
}

func (a *BkashAdapter) Name() domain.ProviderType {
	return domain.ProviderBkash
}

func (a *BkashAdapter) baseURL(sandbox bool) string {
	if sandbox {
		return a.sandboxBase
	}
	return a.liveBase
}

type bkashTokenResponse struct {
	IDToken       string `json:"id_token"`
	StatusCode    string `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
}

type bkashCreateResponse struct {
	PaymentID     string `json:"paymentID"`
	BkashURL      string `json:"bkashURL"`
	StatusCode    string `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
}

type bkashExecuteResponse struct {
	PaymentID             string `json:"paymentID"`
	TrxID                 string `json:"trxID"`
	TransactionStatus     string `json:"transactionStatus"`
	Amount                string `json:"amount"`
	MerchantInvoiceNumber string `json:"merchantInvoiceNumber"`
	StatusCode            string `json:"statusCode"`
	StatusMessage         string `json:"statusMessage"`
}

func (a *BkashAdapter) grantToken(ctx context.Context, creds Credentials, sandbox bool) (string, error) {
	var token bkashTokenResponse
	err := a.client.PostJSON(ctx,
		a.baseURL(sandbox)+"/tokenized/checkout/token/grant",
		map[string]string{
			"username": creds.StoreID,
			"password": creds.SignatureKey,
		},
		map[string]string{
			"app_key":    creds.StoreID,
			"app_secret": creds.StorePassword,
		},
		&token,
	)
	if err != nil {
		return "", domain.NewGatewayError(domain.ProviderBkash, err.Error())
	}
	if token.IDToken == "" {
		return "", domain.NewGatewayError(domain.ProviderBkash, token.StatusMessage)
	}
	return token.IDToken, nil
}

func (a *BkashAdapter) CreatePayment(ctx context.Context, session *Session) (*InitResult, error) {
	idToken, err := a.grantToken(ctx, session.Credentials, session.Sandbox)
	if err != nil {
		return nil, err
	}

	order := session.Order
	var created bkashCreateResponse
	err = a.client.PostJSON(ctx,
		a.baseURL(session.Sandbox)+"/tokenized/checkout/create",
		map[string]string{
			"Authorization": idToken,
			"X-APP-Key":     session.Credentials.StoreID,
		},
		map[string]string{
			"mode":                  "0011",
			"payerReference":        order.Address.Phone,
			"callbackURL":           fmt.Sprintf("%s?order_id=%s", session.CallbackURL, order.ID),
			"amount":                fmt.Sprintf("%.2f", order.Total),
			"currency":              "BDT",
			"intent":                "sale",
			"merchantInvoiceNumber": order.OrderNumber,
		},
		&created,
	)
	if err != nil {
		return nil, domain.NewGatewayError(domain.ProviderBkash, err.Error())
	}
	if created.StatusCode != "0000" || created.BkashURL == "" {
		return nil, domain.NewGatewayError(domain.ProviderBkash, created.StatusMessage)
	}

	return &InitResult{RedirectURL: created.BkashURL, PaymentRef: created.PaymentID}, nil
}

// VerifyCallback executes the payment for a success redirect. bKash only
// settles the transaction on execute, so the callback status alone is never
// sufficient.
func (a *BkashAdapter) VerifyCallback(ctx context.Context, req *CallbackRequest) (*CallbackResult, error) {
	orderID := req.Params["order_id"]
	paymentID := req.Params["paymentID"]

	switch req.Params["status"] {
	case "success":
	case "cancel":
		return &CallbackResult{OrderID: orderID, Status: CallbackCancelled}, nil
	default:
		return &CallbackResult{OrderID: orderID, Status: CallbackFailed}, nil
	}
	if paymentID == "" {
		return &CallbackResult{OrderID: orderID, Status: CallbackFailed}, nil
	}

	idToken, err := a.grantToken(ctx, req.Credentials, req.Sandbox)
	if err != nil {
		return nil, err
	}

	var executed bkashExecuteResponse
	err = a.client.PostJSON(ctx,
		a.baseURL(req.Sandbox)+"/tokenized/checkout/execute",
		map[string]string{
			"Authorization": idToken,
			"X-APP-Key":     req.Credentials.StoreID,
		},
		map[string]string{"paymentID": paymentID},
		&executed,
	)
	if err != nil {
		return nil, domain.NewGatewayError(domain.ProviderBkash, err.Error())
	}

	if executed.StatusCode != "0000" || executed.TransactionStatus != "Completed" {
		return &CallbackResult{OrderID: orderID, TransactionID: executed.TrxID, Status: CallbackFailed}, nil
	}

	return &CallbackResult{
		OrderID:       orderID,
		TransactionID: executed.TrxID,
		Status:        CallbackSuccess,
		Amount:        parseAmount(executed.Amount),
	}, nil
}
