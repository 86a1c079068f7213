package gateway

import (
	"context"
	"fmt"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
)

// NagadAdapter integrates the Nagad merchant checkout. Credentials map as
// StoreID = merchant id, StorePassword = merchant key. Like bKash the access
// token is exchanged fresh on every call.
type NagadAdapter struct {
	client      *Client
	liveBase    string
	sandboxBase string
}

func NewNagadAdapter(client *Client) *NagadAdapter {
	return &NagadAdapter{
		client:      client,
		liveBase:    "https://api.mynagad.com/remote-payment-gateway-1.0",
		sandboxBase: "https://sandbox.mynagad.com/remote-payment-gateway-1.0",
	}
}

func (a *NagadAdapter) Name() domain.ProviderType {
	return domain.ProviderNagad
}

func (a *NagadAdapter) baseURL(sandbox bool) string {
	if sandbox {
		return a.sandboxBase
	}
	return a.liveBase
}

type nagadTokenResponse struct {
	AccessToken string `json:"access_token"`
	Message     string `json:"message"`
}

type nagadInitializeResponse struct {
	Status             string `json:"status"`
	Message            string `json:"message"`
	GatewayURL         string `json:"gatewayUrl"`
	CallBackURL        string `json:"callBackUrl"`
	PaymentReferenceID string `json:"paymentReferenceId"`
}

type nagadVerifyResponse struct {
	Status             string `json:"status"`
	StatusCode         string `json:"statusCode"`
	IssuerPaymentRef   string `json:"issuerPaymentRefNo"`
	Amount             string `json:"amount"`
	OrderID            string `json:"orderId"`
	PaymentReferenceID string `json:"paymentRefId"`
}

func (a *NagadAdapter) fetchToken(ctx context.Context, creds Credentials, sandbox bool) (string, error) {
	var token nagadTokenResponse
	err := a.client.PostJSON(ctx,
		a.baseURL(sandbox)+"/api/dfs/check-out/token",
		nil,
		map[string]string{
			"merchant_id":  creds.StoreID,
			"merchant_key": creds.StorePassword,
		},
		&token,
	)
	if err != nil {
		return "", domain.NewGatewayError(domain.ProviderNagad, err.Error())
	}
	if token.AccessToken == "" {
		return "", domain.NewGatewayError(domain.ProviderNagad, token.Message)
	}
	return token.AccessToken, nil
}

func (a *NagadAdapter) CreatePayment(ctx context.Context, session *Session) (*InitResult, error) {
	accessToken, err := a.fetchToken(ctx, session.Credentials, session.Sandbox)
	if err != nil {
		return nil, err
	}

	order := session.Order
	var initialized nagadInitializeResponse
	err = a.client.PostJSON(ctx,
		a.baseURL(session.Sandbox)+"/api/dfs/check-out/initialize",
		map[string]string{"Authorization": "Bearer " + accessToken},
		map[string]string{
			"merchantOrderId": order.OrderNumber,
			"amount":          fmt.Sprintf("%.2f", order.Total),
			"currency":        "BDT",
			"callbackUrl":     fmt.Sprintf("%s?order_id=%s", session.CallbackURL, order.ID),
		},
		&initialized,
	)
	if err != nil {
		return nil, domain.NewGatewayError(domain.ProviderNagad, err.Error())
	}

	// Older API revisions return callBackUrl instead of gatewayUrl.
	redirectURL := initialized.GatewayURL
	if redirectURL == "" {
		redirectURL = initialized.CallBackURL
	}
	if initialized.Status != "Success" || redirectURL == "" {
		return nil, domain.NewGatewayError(domain.ProviderNagad, initialized.Message)
	}

	return &InitResult{RedirectURL: redirectURL, PaymentRef: initialized.PaymentReferenceID}, nil
}

func (a *NagadAdapter) VerifyCallback(ctx context.Context, req *CallbackRequest) (*CallbackResult, error) {
	orderID := req.Params["order_id"]
	paymentRefID := req.Params["payment_ref_id"]

	switch req.Params["status"] {
	case "Success":
	case "Aborted":
		return &CallbackResult{OrderID: orderID, Status: CallbackCancelled}, nil
	default:
		return &CallbackResult{OrderID: orderID, Status: CallbackFailed}, nil
	}
	if paymentRefID == "" {
		return &CallbackResult{OrderID: orderID, Status: CallbackFailed}, nil
	}

	accessToken, err := a.fetchToken(ctx, req.Credentials, req.Sandbox)
	if err != nil {
		return nil, err
	}

	var verified nagadVerifyResponse
	err = a.client.GetJSON(ctx,
		fmt.Sprintf("%s/api/dfs/verify/payment/%s", a.baseURL(req.Sandbox), paymentRefID),
		map[string]string{"Authorization": "Bearer " + accessToken},
		&verified,
	)
	if err != nil {
		return nil, domain.NewGatewayError(domain.ProviderNagad, err.Error())
	}

	if verified.Status != "Success" {
		return &CallbackResult{OrderID: orderID, TransactionID: verified.IssuerPaymentRef, Status: CallbackFailed}, nil
	}

	transactionID := verified.IssuerPaymentRef
	if transactionID == "" {
		transactionID = paymentRefID
	}
	return &CallbackResult{
		OrderID:       orderID,
		TransactionID: transactionID,
		Status:        CallbackSuccess,
		Amount:        parseAmount(verified.Amount),
	}, nil
}
