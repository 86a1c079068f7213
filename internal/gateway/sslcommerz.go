package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
)

// SslcommerzAdapter speaks the SSLCommerz v4 gateway-process API. Store
// credentials go directly into the init payload; there is no token step.
// The application order id travels in the value_a passthrough field and the
// callback's val_id is re-validated against the validator API before the
// order is touched.
type SslcommerzAdapter struct {
	client      *Client
	liveBase    string
	sandboxBase string
}

func NewSslcommerzAdapter(client *Client) *SslcommerzAdapter {
	return &SslcommerzAdapter{
		client:      client,
		liveBase:    "https://securepay.sslcommerz.com",
		sandboxBase: "https://sandbox.sslcommerz.com",
	}
}

func (a *SslcommerzAdapter) Name() domain.ProviderType {
	return domain.ProviderSslcommerz
}

func (a *SslcommerzAdapter) baseURL(sandbox bool) string {
	if sandbox {
		return a.sandboxBase
	}
	return a.liveBase
}

type sslcommerzInitResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

type sslcommerzValidationResponse struct {
	Status     string `json:"status"`
	TranID     string `json:"tran_id"`
	ValID      string `json:"val_id"`
	Amount     string `json:"amount"`
	BankTranID string `json:"bank_tran_id"`
	ValueA     string `json:"value_a"`
}

func (a *SslcommerzAdapter) CreatePayment(ctx context.Context, session *Session) (*InitResult, error) {
	order := session.Order
	address := order.Address

	form := url.Values{}
	form.Set("store_id", session.Credentials.StoreID)
	form.Set("store_passwd", session.Credentials.StorePassword)
	form.Set("total_amount", fmt.Sprintf("%.2f", order.Total))
	form.Set("currency", "BDT")
	form.Set("tran_id", order.OrderNumber)
	form.Set("success_url", session.CallbackURL+"?action=success")
	form.Set("fail_url", session.CallbackURL+"?action=fail")
	form.Set("cancel_url", session.CallbackURL+"?action=cancel")
	form.Set("ipn_url", session.CallbackURL+"?action=ipn")
	form.Set("cus_name", address.FullName)
	form.Set("cus_phone", address.Phone)
	form.Set("cus_add1", address.AddressLine)
	form.Set("cus_city", address.District)
	form.Set("cus_country", "Bangladesh")
	form.Set("shipping_method", "NO")
	form.Set("product_name", fmt.Sprintf("Order %s", order.OrderNumber))
	form.Set("product_category", "general")
	form.Set("product_profile", "general")
	form.Set("value_a", order.ID)
	form.Set("value_b", session.PaymentRef)

	var initialized sslcommerzInitResponse
	err := a.client.PostForm(ctx, a.baseURL(session.Sandbox)+"/gwprocess/v4/api.php", form, &initialized)
	if err != nil {
		return nil, domain.NewGatewayError(domain.ProviderSslcommerz, err.Error())
	}

	if initialized.Status != "SUCCESS" || initialized.GatewayPageURL == "" {
		return nil, domain.NewGatewayError(domain.ProviderSslcommerz, initialized.FailedReason)
	}

	return &InitResult{RedirectURL: initialized.GatewayPageURL, PaymentRef: initialized.SessionKey}, nil
}

// VerifyCallback never trusts the posted status field: a VALID/VALIDATED
// answer from the validator API is the only path to success.
func (a *SslcommerzAdapter) VerifyCallback(ctx context.Context, req *CallbackRequest) (*CallbackResult, error) {
	orderID := req.Params["value_a"]
	valID := req.Params["val_id"]

	switch req.Params["status"] {
	case "VALID", "VALIDATED":
	case "CANCELLED":
		return &CallbackResult{OrderID: orderID, Status: CallbackCancelled}, nil
	default:
		return &CallbackResult{OrderID: orderID, Status: CallbackFailed}, nil
	}
	if valID == "" {
		return &CallbackResult{OrderID: orderID, Status: CallbackFailed}, nil
	}

	endpoint := fmt.Sprintf(
		"%s/validator/api/validationserverAPI.php?val_id=%s&store_id=%s&store_passwd=%s&format=json",
		a.baseURL(req.Sandbox),
		url.QueryEscape(valID),
		url.QueryEscape(req.Credentials.StoreID),
		url.QueryEscape(req.Credentials.StorePassword),
	)

	var validated sslcommerzValidationResponse
	if err := a.client.GetJSON(ctx, endpoint, nil, &validated); err != nil {
		return nil, domain.NewGatewayError(domain.ProviderSslcommerz, err.Error())
	}

	if validated.Status != "VALID" && validated.Status != "VALIDATED" {
		return &CallbackResult{OrderID: orderID, Status: CallbackFailed}, nil
	}

	// The validator echoes value_a; prefer it over the callback body copy.
	if validated.ValueA != "" {
		orderID = validated.ValueA
	}
	transactionID := validated.BankTranID
	if transactionID == "" {
		transactionID = validated.ValID
	}
	return &CallbackResult{
		OrderID:       orderID,
		TransactionID: transactionID,
		Status:        CallbackSuccess,
		Amount:        parseAmount(validated.Amount),
	}, nil
}
