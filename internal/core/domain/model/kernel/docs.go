// Package kernel provides the constrained value types of the order-taking domain.
//
// The package includes:
//   - Constructor families: CreateString, CreateStringOption, CreateInt, CreateDecimal, CreateLike
//   - Identifiers and text: String50, OrderID, OrderLineID, EmailAddress, ZipCode, UsStateCode
//   - Products and quantities: ProductCode (Widget or Gizmo), UnitQuantity, KilogramQuantity, OrderQuantity
//   - Money: Price, BillingAmount
//   - Pricing: PromotionCode, PricingMethod, and the customer's VipStatus
//
// Every type is an immutable value object built by a constructor that either
// returns a valid instance or an error from internal/pkg/errs naming the field
// that failed. Zero values fail Validate.
package kernel
