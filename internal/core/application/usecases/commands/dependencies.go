// Package commands contains the business operations callers invoke.
// Each command is validated at construction and executed by its handler.
package commands

import (
	"errors"

	"ordertaking/internal/core/ports"
	"ordertaking/internal/pkg/errs"
)

// PlaceOrderDependencies are the collaborators the PlaceOrder workflow consults.
// All of them are required.
type PlaceOrderDependencies struct {
	ProductCatalog       ports.ProductCatalog
	AddressChecker       ports.AddressChecker
	PricingResolver      ports.PricingResolver
	LetterWriter         ports.AcknowledgmentLetterWriter
	AcknowledgmentSender ports.AcknowledgmentSender
}

func (d PlaceOrderDependencies) Validate() error {
	var errList []error
	if d.ProductCatalog == nil {
		errList = append(errList, errs.NewValueIsRequiredError("ProductCatalog"))
	}
	if d.AddressChecker == nil {
		errList = append(errList, errs.NewValueIsRequiredError("AddressChecker"))
	}
	if d.PricingResolver == nil {
		errList = append(errList, errs.NewValueIsRequiredError("PricingResolver"))
	}
	if d.LetterWriter == nil {
		errList = append(errList, errs.NewValueIsRequiredError("LetterWriter"))
	}
	if d.AcknowledgmentSender == nil {
		errList = append(errList, errs.NewValueIsRequiredError("AcknowledgmentSender"))
	}
	return errors.Join(errList...)
}
