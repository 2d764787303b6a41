// Package services implements the stages of the PlaceOrder workflow.
//
// Each stage turns one order state into the next:
//   - OrderValidator: UnvalidatedOrder to ValidatedOrder
//   - OrderPricer: ValidatedOrder to PricedOrder
//   - AddShippingInfo and FreeVipShipping: PricedOrder to PricedOrderWithShipping
//   - OrderAcknowledger: sends the acknowledgment letter
//   - CreateEvents: derives the events a placed order emits
//
// Stages that depend on the outside world receive their collaborators through
// the ports package. Failures are reported as *order.PlaceOrderError.
package services
