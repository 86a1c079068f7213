package domain

// InvoiceSettings is the company letterhead used on invoices and delivery
// slips. A nil settings row is valid: the renderer falls back to defaults.
type InvoiceSettings struct {
	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string
	LogoURL        string
	FooterNote     string
}
