package order

import (
	"html/template"
	"strings"

	"dinepos-be/internal/utils"
)

// receiptTmpl mirrors the printable receipt the ordering screen opens in a
// new window: customer info, line items with extended prices, total.
var receiptTmpl = template.Must(template.New("receipt").Parse(`<html>
  <head>
    <title>Receipt</title>
    <style>
      body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
      h1, h2 { color: #333; }
      p { margin: 5px 0; }
      ul { list-style-type: none; padding: 0; }
      li { background-color: #fff; margin: 5px 0; padding: 10px; border-radius: 5px; }
    </style>
  </head>
  <body>
    <h1>Order Receipt</h1>
    <p><strong>Receipt No:</strong> {{.ReceiptNumber}}</p>
    <p><strong>Customer Name:</strong> {{.Order.CustomerName}}</p>
    <p><strong>Phone Number:</strong> {{.Order.Phone}}</p>
    {{- if .Order.TableID}}
    <p><strong>Table:</strong> {{.Order.TableID}}</p>
    {{- end}}
    <p><strong>Payment Method:</strong> {{.Order.PaymentMethod}}</p>
    <h2>Order Details:</h2>
    <ul>
      {{- range .Order.Lines}}
      <li>{{.Name}} x {{.Quantity}} - ${{printf "%.2f" .Subtotal}}</li>
      {{- end}}
    </ul>
    <p><strong>Total Price:</strong> ${{printf "%.2f" .Order.TotalPrice}}</p>
  </body>
</html>
`))

// RenderReceipt formats a placed order into the printable HTML document.
// Pure presentation; no state.
func RenderReceipt(o *Order) (string, error) {
	var b strings.Builder
	err := receiptTmpl.Execute(&b, struct {
		ReceiptNumber string
		Order         *Order
	}{
		ReceiptNumber: utils.GenerateReceiptNumber(),
		Order:         o,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
