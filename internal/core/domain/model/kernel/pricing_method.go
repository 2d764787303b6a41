package kernel

import (
	"errors"
	"strings"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

var ErrPromotionCodeIsNotConstructed = errors.New("PromotionCode must be created via NewPromotionCode constructor")

// PromotionCode names a promotion with its own price table.
type PromotionCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewPromotionCode wraps a non-empty promotion code.
func NewPromotionCode(fieldName string, s string) (PromotionCode, error) {
	if strings.TrimSpace(s) == "" {
		return PromotionCode{}, errs.NewValueIsRequiredError(fieldName)
	}
	return PromotionCode{value: s, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the PromotionCode was created through the constructor.
func (p PromotionCode) Validate() error {
	return p.guard.Validate(ErrPromotionCodeIsNotConstructed)
}

func (p PromotionCode) String() string {
	return p.value
}

// PricingMethodKind selects the price table an order is priced with.
type PricingMethodKind int

const (
	// Standard pricing uses the regular price table.
	Standard PricingMethodKind = iota
	// Promotion pricing uses a promotion's table, falling back to standard prices.
	Promotion
)

func (k PricingMethodKind) String() string {
	switch k {
	case Standard:
		return "Standard"
	case Promotion:
		return "Promotion"
	}
	return "Unknown"
}

// PricingMethod is either Standard or Promotion(code). The zero value is Standard.
type PricingMethod struct {
	kind      PricingMethodKind
	promotion PromotionCode
}

// StandardPricing returns the Standard pricing method.
func StandardPricing() PricingMethod {
	return PricingMethod{kind: Standard}
}

// PromotionPricing returns the Promotion pricing method for code.
func PromotionPricing(code PromotionCode) PricingMethod {
	return PricingMethod{kind: Promotion, promotion: code}
}

// NewPricingMethod maps an optional raw promotion code to a pricing method:
// absent or blank means Standard, anything else is a Promotion.
func NewPricingMethod(promotionCode *string) PricingMethod {
	if promotionCode == nil || strings.TrimSpace(*promotionCode) == "" {
		return StandardPricing()
	}
	return PromotionPricing(PromotionCode{value: *promotionCode, guard: guard.NewConstructorGuard()})
}

func (m PricingMethod) Kind() PricingMethodKind {
	return m.kind
}

// PromotionCode returns the promotion and true for Promotion pricing,
// or a zero value and false for Standard pricing.
func (m PricingMethod) PromotionCode() (PromotionCode, bool) {
	if m.kind != Promotion {
		return PromotionCode{}, false
	}
	return m.promotion, true
}

func (m PricingMethod) String() string {
	if m.kind == Promotion {
		return "Promotion(" + m.promotion.String() + ")"
	}
	return m.kind.String()
}
