package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
)

// AamarpayAdapter speaks the AamarPay jsonpost checkout API. Credentials
// map as StoreID = store id, SignatureKey = signature key. The order id
// travels in the opt_a passthrough field. The posted pay_status is never
// taken at face value: the transaction is re-checked through trxcheck
// before reconciliation.
type AamarpayAdapter struct {
	client      *Client
	liveBase    string
	sandboxBase string
}

func NewAamarpayAdapter(client *Client) *AamarpayAdapter {
	return &AamarpayAdapter{
		client:      client,
		liveBase:    "https://secure.aamarpay.com",
		sandboxBase: "https://sandbox.aamarpay.com",
	}
}

func (a *AamarpayAdapter) Name() domain.ProviderType {
	return domain.ProviderAamarpay
}

func (a *AamarpayAdapter) baseURL(sandbox bool) string {
	if sandbox {
		return a.sandboxBase
	}
	return a.liveBase
}

type aamarpayInitResponse struct {
	Result     string `json:"result"`
	PaymentURL string `json:"payment_url"`
	Reason     string `json:"reason"`
}

type aamarpayTrxCheckResponse struct {
	PayStatus  string `json:"pay_status"`
	PgTxnID    string `json:"pg_txnid"`
	MerTxnID   string `json:"mer_txnid"`
	Amount     string `json:"amount"`
	OptA       string `json:"opt_a"`
	StatusCode string `json:"status_code"`
}

func (a *AamarpayAdapter) CreatePayment(ctx context.Context, session *Session) (*InitResult, error) {
	order := session.Order
	address := order.Address

	body := map[string]string{
		"store_id":      session.Credentials.StoreID,
		"signature_key": session.Credentials.SignatureKey,
		"tran_id":       order.OrderNumber,
		"amount":        fmt.Sprintf("%.2f", order.Total),
		"currency":      "BDT",
		"desc":          fmt.Sprintf("Order %s", order.OrderNumber),
		"cus_name":      address.FullName,
		"cus_email":     "customer@artistiya.com",
		"cus_phone":     address.Phone,
		"cus_add1":      address.AddressLine,
		"cus_city":      address.District,
		"cus_country":   "Bangladesh",
		"success_url":   session.CallbackURL + "?action=success",
		"fail_url":      session.CallbackURL + "?action=fail",
		"cancel_url":    session.CallbackURL + "?action=cancel",
		"opt_a":         order.ID,
		"opt_b":         session.PaymentRef,
		"type":          "json",
	}

	var initialized aamarpayInitResponse
	err := a.client.PostJSON(ctx, a.baseURL(session.Sandbox)+"/jsonpost.php", nil, body, &initialized)
	if err != nil {
		return nil, domain.NewGatewayError(domain.ProviderAamarpay, err.Error())
	}

	if initialized.Result != "true" || initialized.PaymentURL == "" {
		return nil, domain.NewGatewayError(domain.ProviderAamarpay, initialized.Reason)
	}

	return &InitResult{RedirectURL: initialized.PaymentURL, PaymentRef: order.OrderNumber}, nil
}

func (a *AamarpayAdapter) VerifyCallback(ctx context.Context, req *CallbackRequest) (*CallbackResult, error) {
	orderID := req.Params["opt_a"]
	merTxnID := req.Params["mer_txnid"]

	switch req.Params["pay_status"] {
	case "Successful":
	case "Cancelled":
		return &CallbackResult{OrderID: orderID, Status: CallbackCancelled}, nil
	default:
		return &CallbackResult{OrderID: orderID, Status: CallbackFailed}, nil
	}
	if merTxnID == "" {
		return &CallbackResult{OrderID: orderID, Status: CallbackFailed}, nil
	}

	endpoint := fmt.Sprintf(
		"%s/api/v1/trxcheck/request.php?request_id=%s&store_id=%s&signature_key=%s&type=json",
		a.baseURL(req.Sandbox),
		url.QueryEscape(merTxnID),
		url.QueryEscape(req.Credentials.StoreID),
		url.QueryEscape(req.Credentials.SignatureKey),
	)

	var checked aamarpayTrxCheckResponse
	if err := a.client.GetJSON(ctx, endpoint, nil, &checked); err != nil {
		return nil, domain.NewGatewayError(domain.ProviderAamarpay, err.Error())
	}

	if checked.PayStatus != "Successful" {
		return &CallbackResult{OrderID: orderID, Status: CallbackFailed}, nil
	}

	if checked.OptA != "" {
		orderID = checked.OptA
	}
	transactionID := checked.PgTxnID
	if transactionID == "" {
		transactionID = merTxnID
	}
	return &CallbackResult{
		OrderID:       orderID,
		TransactionID: transactionID,
		Status:        CallbackSuccess,
		Amount:        parseAmount(checked.Amount),
	}, nil
}
