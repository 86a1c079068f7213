// Package documents renders the print-oriented invoice and delivery-slip
// HTML consumed by the admin console's print workflow. Rendering is a pure
// function of order, address and letterhead settings.
package documents

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
)

// Letterhead fallbacks used when no invoice settings row exists.
const (
	defaultCompanyName    = "Artistiya"
	defaultCompanyAddress = "Dhaka, Bangladesh"
	defaultCompanyPhone   = "+880 1700-000000"
	defaultCompanyEmail   = "support@artistiya.com"
)

type documentData struct {
	Settings  *domain.InvoiceSettings
	Order     *domain.Order
	Address   *domain.Address
	Items     []itemRow
	Subtotal  string
	Shipping  string
	Total     string
	Paid      bool
	COD       bool
	IssueDate string
}

type itemRow struct {
	Name      string
	Quantity  int
	UnitPrice string
	LineTotal string
}

func buildData(order *domain.Order, settings *domain.InvoiceSettings) *documentData {
	if settings == nil {
		settings = &domain.InvoiceSettings{}
	}
	resolved := *settings
	if resolved.CompanyName == "" {
		resolved.CompanyName = defaultCompanyName
	}
	if resolved.CompanyAddress == "" {
		resolved.CompanyAddress = defaultCompanyAddress
	}
	if resolved.CompanyPhone == "" {
		resolved.CompanyPhone = defaultCompanyPhone
	}
	if resolved.CompanyEmail == "" {
		resolved.CompanyEmail = defaultCompanyEmail
	}

	items := make([]itemRow, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, itemRow{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			UnitPrice: FormatAmount(item.ProductPrice),
			LineTotal: FormatAmount(item.ProductPrice * float64(item.Quantity)),
		})
	}

	address := order.Address
	if address == nil {
		address = &domain.Address{}
	}

	return &documentData{
		Settings:  &resolved,
		Order:     order,
		Address:   address,
		Items:     items,
		Subtotal:  FormatAmount(order.Subtotal),
		Shipping:  FormatAmount(order.ShippingCost),
		Total:     FormatAmount(order.Total),
		Paid:      order.Status == domain.StatusConfirmed && order.PaymentTransactionID != "",
		COD:       order.PaymentMethod == "cod",
		IssueDate: order.CreatedAt.Format("02 Jan 2006"),
	}
}

// RenderInvoice produces the customer-facing A4 invoice document.
func RenderInvoice(order *domain.Order, settings *domain.InvoiceSettings) (string, error) {
	var sb strings.Builder
	if err := invoiceTemplate.Execute(&sb, buildData(order, settings)); err != nil {
		return "", fmt.Errorf("rendering invoice for order %s: %w", order.OrderNumber, err)
	}
	return sb.String(), nil
}

// RenderDeliverySlip produces the narrow label document sized for thermal
// printers.
func RenderDeliverySlip(order *domain.Order, settings *domain.InvoiceSettings) (string, error) {
	var sb strings.Builder
	if err := deliverySlipTemplate.Execute(&sb, buildData(order, settings)); err != nil {
		return "", fmt.Errorf("rendering delivery slip for order %s: %w", order.OrderNumber, err)
	}
	return sb.String(), nil
}

// FormatAmount renders a taka amount with thousands separators: integral
// values get no decimals ("1,080"), fractional values two ("1,080.50").
func FormatAmount(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	// Round to paisa first so 999.999 carries into 1,000 instead of
	// producing a three-digit fraction.
	cents := int64(math.Round(amount * 100))
	integral := cents / 100
	fraction := cents % 100

	grouped := groupThousands(integral)
	var result string
	if fraction == 0 {
		result = grouped
	} else {
		result = fmt.Sprintf("%s.%02d", grouped, fraction)
	}
	if negative {
		return "-" + result
	}
	return result
}

func groupThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)
	return strings.Join(parts, ",")
}

var templateFuncs = template.FuncMap{
	"money": FormatAmount,
}
