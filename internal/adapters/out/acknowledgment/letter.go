// Package acknowledgment renders acknowledgment letters and delivers them.
package acknowledgment

import (
	"bytes"
	"html/template"

	"ordertaking/internal/core/domain/model/order"
)

var letterTemplate = template.Must(template.New("letter").Parse(`<!DOCTYPE html>
<html>
<body>
<p>Dear {{.FirstName}} {{.LastName}},</p>
<p>Thank you for your order {{.OrderID}}.</p>
<table>
{{- range .Lines}}
<tr><td>{{.Description}}</td><td>{{.Quantity}}</td><td>{{.Price}}</td></tr>
{{- end}}
</table>
<p>Shipping ({{.ShippingMethod}}): {{.ShippingCost}}</p>
<p>Amount to bill: {{.AmountToBill}}</p>
</body>
</html>
`))

type letterLine struct {
	Description string
	Quantity    string
	Price       string
}

type letterData struct {
	FirstName      string
	LastName       string
	OrderID        string
	Lines          []letterLine
	ShippingMethod string
	ShippingCost   string
	AmountToBill   string
}

// HTMLLetterWriter renders letters from an HTML template. Customer supplied
// values are escaped.
type HTMLLetterWriter struct{}

func (HTMLLetterWriter) CreateLetter(placed order.PricedOrderWithShipping) order.HTMLString {
	var buf bytes.Buffer
	if err := letterTemplate.Execute(&buf, toLetterData(placed)); err != nil {
		return order.HTMLString("<p>Thank you for your order " + template.HTMLEscapeString(placed.OrderID().String()) + ".</p>")
	}
	return order.HTMLString(buf.String())
}

func toLetterData(placed order.PricedOrderWithShipping) letterData {
	name := placed.CustomerInfo().Name()
	data := letterData{
		FirstName:      name.FirstName().String(),
		LastName:       name.LastName().String(),
		OrderID:        placed.OrderID().String(),
		ShippingMethod: placed.ShippingInfo().ShippingMethod.String(),
		ShippingCost:   placed.ShippingInfo().ShippingCost.String(),
		AmountToBill:   placed.AmountToBill().String(),
	}

	for _, line := range placed.Lines() {
		switch line.Kind() {
		case order.ProductLine:
			data.Lines = append(data.Lines, letterLine{
				Description: line.ProductCode().String(),
				Quantity:    line.Quantity().String(),
				Price:       line.LinePrice().String(),
			})
		case order.CommentLine:
			data.Lines = append(data.Lines, letterLine{Description: line.Comment()})
		case order.PricedOrderLineUnknown:
		}
	}
	return data
}
