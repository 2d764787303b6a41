// Package order models the documents of the order-taking workflow, from the raw
// UnvalidatedOrder through ValidatedOrder and PricedOrder to the events a placed
// order emits.
//
// The package includes:
//   - PersonalName, CustomerInfo and Address: composite entities built from kernel types
//   - UnvalidatedOrder, ValidatedOrder, PricedOrder, PricedOrderWithShipping: one type per stage
//   - PricedOrderLine: a product line or a zero-price comment line
//   - PlaceOrderEvent: ShippableOrderPlaced, BillableOrderPlaced or AcknowledgmentSent
//   - PlaceOrderError: the typed failure (validation, pricing or remote service)
//
// Every stage type is immutable; later stages build new values instead of
// modifying earlier ones.
package order
