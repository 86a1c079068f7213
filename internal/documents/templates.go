package documents

import "html/template"

var invoiceTemplate = template.Must(template.New("invoice").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.Order.OrderNumber}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; color: #222; margin: 0; padding: 24px; }
  .sheet { max-width: 760px; margin: 0 auto; }
  .letterhead { display: flex; justify-content: space-between; border-bottom: 2px solid #222; padding-bottom: 12px; }
  .letterhead h1 { margin: 0; font-size: 22px; }
  .letterhead .meta { text-align: right; font-size: 12px; }
  .banner { margin: 16px 0; padding: 8px 12px; font-weight: bold; font-size: 14px; }
  .banner.paid { background: #e6f4ea; color: #1e7e34; border: 1px solid #1e7e34; }
  .banner.cod { background: #fff3cd; color: #856404; border: 1px solid #856404; }
  table.items { width: 100%; border-collapse: collapse; margin-top: 16px; font-size: 13px; }
  table.items th, table.items td { border: 1px solid #999; padding: 6px 8px; }
  table.items th { background: #f1f1f1; text-align: left; }
  td.num, th.num { text-align: right; }
  table.totals { margin-top: 12px; margin-left: auto; font-size: 13px; border-collapse: collapse; }
  table.totals td { padding: 4px 8px; }
  table.totals tr.grand td { font-weight: bold; border-top: 1px solid #222; }
  .addresses { display: flex; gap: 32px; margin-top: 16px; font-size: 13px; }
  .footer { margin-top: 32px; font-size: 11px; color: #666; text-align: center; }
  @media print { body { padding: 0; } }
</style>
</head>
<body>
<div class="sheet">
  <div class="letterhead">
    <div>
      <h1>{{.Settings.CompanyName}}</h1>
      <div>{{.Settings.CompanyAddress}}</div>
      <div>{{.Settings.CompanyPhone}} &middot; {{.Settings.CompanyEmail}}</div>
    </div>
    <div class="meta">
      <div><strong>Invoice</strong></div>
      <div>Order No: {{.Order.OrderNumber}}</div>
      <div>Date: {{.IssueDate}}</div>
    </div>
  </div>

  {{if .Paid}}
  <div class="banner paid">PAID &mdash; Transaction {{.Order.PaymentTransactionID}}</div>
  {{else if .COD}}
  <div class="banner cod">CASH ON DELIVERY &mdash; &#2547;{{.Total}} due on delivery</div>
  {{else}}
  <div class="banner cod">PAYMENT PENDING</div>
  {{end}}

  <div class="addresses">
    <div>
      <strong>Bill To</strong><br>
      {{.Address.FullName}}<br>
      {{.Address.Phone}}<br>
      {{.Address.AddressLine}}<br>
      {{.Address.Thana}}, {{.Address.District}}, {{.Address.Division}}
    </div>
  </div>

  <table class="items">
    <thead>
      <tr><th>Item</th><th class="num">Qty</th><th class="num">Unit Price</th><th class="num">Total</th></tr>
    </thead>
    <tbody>
      {{range .Items}}
      <tr><td>{{.Name}}</td><td class="num">{{.Quantity}}</td><td class="num">{{.UnitPrice}}</td><td class="num">{{.LineTotal}}</td></tr>
      {{end}}
    </tbody>
  </table>

  <table class="totals">
    <tr><td>Subtotal</td><td class="num">&#2547;{{.Subtotal}}</td></tr>
    <tr><td>Shipping</td><td class="num">&#2547;{{.Shipping}}</td></tr>
    <tr class="grand"><td>Total</td><td class="num">&#2547;{{.Total}}</td></tr>
  </table>

  <div class="footer">
    {{if .Settings.FooterNote}}{{.Settings.FooterNote}}{{else}}Thank you for shopping with {{.Settings.CompanyName}}.{{end}}
  </div>
</div>
</body>
</html>
`))

var deliverySlipTemplate = template.Must(template.New("delivery-slip").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Delivery Slip {{.Order.OrderNumber}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; color: #000; margin: 0; }
  .slip { width: 76mm; padding: 4mm; font-size: 11px; }
  .slip h2 { margin: 0 0 2mm 0; font-size: 13px; text-align: center; }
  .rule { border-top: 1px dashed #000; margin: 2mm 0; }
  .row { display: flex; justify-content: space-between; }
  .recipient { margin: 2mm 0; }
  .cod-box { border: 2px solid #000; padding: 2mm; text-align: center; font-weight: bold; font-size: 13px; margin-top: 2mm; }
  table { width: 100%; border-collapse: collapse; font-size: 10px; }
  td { padding: 1mm 0; vertical-align: top; }
  td.num { text-align: right; white-space: nowrap; }
  @media print { body { width: 76mm; } }
</style>
</head>
<body>
<div class="slip">
  <h2>{{.Settings.CompanyName}}</h2>
  <div class="row"><span>Order</span><span>{{.Order.OrderNumber}}</span></div>
  <div class="row"><span>Date</span><span>{{.IssueDate}}</span></div>
  <div class="rule"></div>
  <div class="recipient">
    <strong>{{.Address.FullName}}</strong><br>
    {{.Address.Phone}}<br>
    {{.Address.AddressLine}}<br>
    {{.Address.Thana}}, {{.Address.District}}<br>
    {{.Address.Division}}
  </div>
  <div class="rule"></div>
  <table>
    {{range .Items}}
    <tr><td>{{.Name}} x{{.Quantity}}</td><td class="num">{{.LineTotal}}</td></tr>
    {{end}}
  </table>
  <div class="rule"></div>
  <div class="row"><span>Subtotal</span><span>&#2547;{{.Subtotal}}</span></div>
  <div class="row"><span>Shipping</span><span>&#2547;{{.Shipping}}</span></div>
  <div class="row"><strong>Total</strong><strong>&#2547;{{.Total}}</strong></div>
  {{if .Paid}}
  <div class="cod-box">PAID &mdash; DO NOT COLLECT</div>
  {{else if .COD}}
  <div class="cod-box">COLLECT &#2547;{{.Total}}</div>
  {{end}}
</div>
</body>
</html>
`))
