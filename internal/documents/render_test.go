package documents

import (
	"strings"
	"testing"
	"time"

	"github.com/MdAshrafuddinnoyon/artistiya-showcase-sub004/internal/domain"
)

func sampleOrder() *domain.Order {
	return &domain.Order{
		ID:            "order-1",
		OrderNumber:   "ART-10042",
		Subtotal:      1000,
		ShippingCost:  80,
		Total:         1080,
		Status:        domain.StatusPending,
		PaymentMethod: "cod",
		Address: &domain.Address{
			FullName:    "Rahim Uddin",
			Phone:       "01711000000",
			AddressLine: "House 12, Road 3",
			Thana:       "Dhanmondi",
			District:    "Dhaka",
			Division:    "Dhaka",
		},
		Items: []domain.OrderItem{
			{ProductName: "Nakshi Kantha Throw", ProductPrice: 650, Quantity: 1},
			{ProductName: "Jamdani Scarf", ProductPrice: 175, Quantity: 2},
		},
		CreatedAt: time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC),
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{80, "80"},
		{1000, "1,000"},
		{1080, "1,080"},
		{1080.5, "1,080.50"},
		{1234567, "1,234,567"},
		{0, "0"},
		{999, "999"},
		{999.999, "1,000"},
		{0.005, "0.01"},
		{-1500, "-1,500"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.amount); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestRenderInvoiceTotals(t *testing.T) {
	html, err := RenderInvoice(sampleOrder(), nil)
	if err != nil {
		t.Fatalf("RenderInvoice error: %v", err)
	}

	for _, want := range []string{"1,080", "1,000", "80", "ART-10042"} {
		if !strings.Contains(html, want) {
			t.Errorf("invoice missing %q", want)
		}
	}
}

func TestRenderInvoiceItemRows(t *testing.T) {
	order := sampleOrder()
	html, err := RenderInvoice(order, nil)
	if err != nil {
		t.Fatalf("RenderInvoice error: %v", err)
	}

	tbody := html[strings.Index(html, "<tbody>"):strings.Index(html, "</tbody>")]
	if got := strings.Count(tbody, "<tr>"); got != len(order.Items) {
		t.Errorf("item rows = %d, want %d", got, len(order.Items))
	}
	if !strings.Contains(html, "Nakshi Kantha Throw") {
		t.Error("invoice missing item name")
	}
	// 175 x 2 line total
	if !strings.Contains(html, "350") {
		t.Error("invoice missing computed line total 350")
	}
}

func TestRenderInvoiceBanners(t *testing.T) {
	order := sampleOrder()
	html, err := RenderInvoice(order, nil)
	if err != nil {
		t.Fatalf("RenderInvoice error: %v", err)
	}
	if !strings.Contains(html, "CASH ON DELIVERY") {
		t.Error("pending COD invoice missing COD banner")
	}

	order.Status = domain.StatusConfirmed
	order.PaymentTransactionID = "9H7J2K1L"
	order.PaymentMethod = "bkash"
	html, err = RenderInvoice(order, nil)
	if err != nil {
		t.Fatalf("RenderInvoice error: %v", err)
	}
	if !strings.Contains(html, "PAID") || !strings.Contains(html, "9H7J2K1L") {
		t.Error("paid invoice missing PAID banner with transaction id")
	}
}

func TestRenderInvoiceSettingsFallbacks(t *testing.T) {
	html, err := RenderInvoice(sampleOrder(), nil)
	if err != nil {
		t.Fatalf("RenderInvoice error: %v", err)
	}
	if !strings.Contains(html, defaultCompanyName) {
		t.Error("invoice missing default company name")
	}

	html, err = RenderInvoice(sampleOrder(), &domain.InvoiceSettings{
		CompanyName:  "Artistiya Crafts Ltd",
		CompanyPhone: "+880 1999-888777",
	})
	if err != nil {
		t.Fatalf("RenderInvoice error: %v", err)
	}
	if !strings.Contains(html, "Artistiya Crafts Ltd") {
		t.Error("invoice missing configured company name")
	}
	if !strings.Contains(html, "+880 1999-888777") {
		t.Error("invoice missing configured phone")
	}
	// Unset fields still fall back.
	if !strings.Contains(html, defaultCompanyEmail) {
		t.Error("invoice missing default email fallback")
	}
}

func TestRenderInvoiceDeterministic(t *testing.T) {
	first, err := RenderInvoice(sampleOrder(), nil)
	if err != nil {
		t.Fatalf("RenderInvoice error: %v", err)
	}
	second, err := RenderInvoice(sampleOrder(), nil)
	if err != nil {
		t.Fatalf("RenderInvoice error: %v", err)
	}
	if first != second {
		t.Error("invoice rendering is not deterministic for identical inputs")
	}
}

func TestRenderDeliverySlip(t *testing.T) {
	order := sampleOrder()
	html, err := RenderDeliverySlip(order, nil)
	if err != nil {
		t.Fatalf("RenderDeliverySlip error: %v", err)
	}

	for _, want := range []string{
		"Rahim Uddin", "01711000000", "Dhanmondi", "Dhaka",
		"ART-10042", "1,080", "COLLECT",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("delivery slip missing %q", want)
		}
	}

	order.Status = domain.StatusConfirmed
	order.PaymentTransactionID = "TRX1"
	html, err = RenderDeliverySlip(order, nil)
	if err != nil {
		t.Fatalf("RenderDeliverySlip error: %v", err)
	}
	if !strings.Contains(html, "DO NOT COLLECT") {
		t.Error("paid delivery slip missing DO NOT COLLECT marker")
	}
}
