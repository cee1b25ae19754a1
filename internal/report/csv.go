package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"dinepos-be/internal/order"
)

var csvHeader = []string{"Customer Name", "Date", "Total Price", "Payment Method", "Items"}

// writeCSV renders completed orders in the sales-report download format:
// one row per order, items collapsed to "name(qty) | name(qty)".
func writeCSV(orders []*order.Order) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, o := range orders {
		items := make([]string, 0, len(o.Lines))
		for _, line := range o.Lines {
			items = append(items, fmt.Sprintf("%s(%d)", line.Name, line.Quantity))
		}

		record := []string{
			o.CustomerName,
			o.CreatedAt.Format("1/2/2006"),
			fmt.Sprintf("%.2f", o.TotalPrice),
			o.PaymentMethod,
			strings.Join(items, " | "),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
