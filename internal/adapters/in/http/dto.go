package http

import (
	"github.com/google/uuid"

	"ordertaking/internal/core/application/usecases/queries"
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
)

// AddressForm is an address as sent by clients and as returned in events.
type AddressForm struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	AddressLine3 string `json:"addressLine3,omitempty"`
	AddressLine4 string `json:"addressLine4,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
	State        string `json:"state"`
	Country      string `json:"country"`
}

type CustomerInfoForm struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	VipStatus    string `json:"vipStatus,omitempty"`
}

type OrderLineForm struct {
	OrderLineID string  `json:"orderLineId"`
	ProductCode string  `json:"productCode"`
	Quantity    float64 `json:"quantity"`
}

// OrderForm is the body of POST /api/v1/orders.
type OrderForm struct {
	OrderID         string           `json:"orderId"`
	CustomerInfo    CustomerInfoForm `json:"customerInfo"`
	ShippingAddress AddressForm      `json:"shippingAddress"`
	BillingAddress  AddressForm      `json:"billingAddress"`
	Lines           []OrderLineForm  `json:"lines"`
	PromotionCode   *string          `json:"promotionCode,omitempty"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Event wraps one placed-order event for the response.
type Event struct {
	ID   uuid.UUID `json:"id"`
	Type string    `json:"type"`
	Data any       `json:"data"`
}

type ShipmentLineDTO struct {
	ProductCode string  `json:"productCode"`
	Quantity    float64 `json:"quantity"`
}

type PdfDTO struct {
	Name  string `json:"name"`
	Bytes []byte `json:"bytes"`
}

type ShippableOrderPlacedDTO struct {
	OrderID         string            `json:"orderId"`
	ShippingAddress AddressForm       `json:"shippingAddress"`
	ShipmentLines   []ShipmentLineDTO `json:"shipmentLines"`
	Pdf             PdfDTO            `json:"pdf"`
}

type BillableOrderPlacedDTO struct {
	OrderID        string      `json:"orderId"`
	BillingAddress AddressForm `json:"billingAddress"`
	AmountToBill   float64     `json:"amountToBill"`
}

type AcknowledgmentSentDTO struct {
	OrderID      string `json:"orderId"`
	EmailAddress string `json:"emailAddress"`
}

type ProductPriceDTO struct {
	ProductCode   string  `json:"productCode"`
	StandardPrice float64 `json:"standardPrice"`
	Price         float64 `json:"price"`
	Promoted      bool    `json:"promoted"`
}

func fromProductPrice(p queries.GetProductPricesQueryResponse) ProductPriceDTO {
	return ProductPriceDTO{
		ProductCode:   p.ProductCode,
		StandardPrice: p.StandardPrice.Value().InexactFloat64(),
		Price:         p.Price.Value().InexactFloat64(),
		Promoted:      p.Promoted,
	}
}

func (f AddressForm) toUnvalidated() order.UnvalidatedAddress {
	return order.UnvalidatedAddress(f)
}

func (f OrderForm) toUnvalidated() order.UnvalidatedOrder {
	lines := make([]order.UnvalidatedOrderLine, 0, len(f.Lines))
	for _, l := range f.Lines {
		lines = append(lines, order.UnvalidatedOrderLine{
			OrderLineID: l.OrderLineID,
			ProductCode: l.ProductCode,
			Quantity:    l.Quantity,
		})
	}

	return order.UnvalidatedOrder{
		OrderID: f.OrderID,
		CustomerInfo: order.UnvalidatedCustomerInfo{
			FirstName:    f.CustomerInfo.FirstName,
			LastName:     f.CustomerInfo.LastName,
			EmailAddress: f.CustomerInfo.EmailAddress,
			VipStatus:    f.CustomerInfo.VipStatus,
		},
		ShippingAddress: f.ShippingAddress.toUnvalidated(),
		BillingAddress:  f.BillingAddress.toUnvalidated(),
		Lines:           lines,
		PromotionCode:   f.PromotionCode,
	}
}

func fromAddress(a order.Address) AddressForm {
	return AddressForm(a.ToUnvalidated())
}

func fromQuantity(q kernel.OrderQuantity) float64 {
	return q.Value().InexactFloat64()
}

func fromEvent(id uuid.UUID, e order.PlaceOrderEvent) Event {
	envelope := Event{ID: id, Type: e.Kind().String()}

	switch e.Kind() {
	case order.ShippableOrderPlacedEvent:
		shippable := e.ShippableOrderPlaced()
		lines := make([]ShipmentLineDTO, 0, len(shippable.ShipmentLines))
		for _, l := range shippable.ShipmentLines {
			lines = append(lines, ShipmentLineDTO{ProductCode: l.ProductCode.String(), Quantity: fromQuantity(l.Quantity)})
		}
		envelope.Data = ShippableOrderPlacedDTO{
			OrderID:         shippable.OrderID.String(),
			ShippingAddress: fromAddress(shippable.ShippingAddress),
			ShipmentLines:   lines,
			Pdf:             PdfDTO{Name: shippable.Pdf.Name, Bytes: shippable.Pdf.Bytes},
		}
	case order.BillableOrderPlacedEvent:
		billable := e.BillableOrderPlaced()
		envelope.Data = BillableOrderPlacedDTO{
			OrderID:        billable.OrderID.String(),
			BillingAddress: fromAddress(billable.BillingAddress),
			AmountToBill:   billable.AmountToBill.Value().InexactFloat64(),
		}
	case order.AcknowledgmentSentEvent:
		ack := e.AcknowledgmentSent()
		envelope.Data = AcknowledgmentSentDTO{
			OrderID:      ack.OrderID.String(),
			EmailAddress: ack.EmailAddress.String(),
		}
	case order.EventUnknown:
	}
	return envelope
}
