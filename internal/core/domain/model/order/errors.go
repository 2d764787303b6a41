package order

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrPricing       = errors.New("pricing error")
	ErrRemoteService = errors.New("remote service error")
)

// ErrorKind classifies why placing an order failed.
type ErrorKind int

const (
	// ValidationFailed covers invalid input and rejected addresses or products.
	ValidationFailed ErrorKind = iota + 1
	// PricingFailed covers line prices or totals outside their bounds.
	PricingFailed
	// RemoteServiceFailed covers collaborators that could not be reached.
	RemoteServiceFailed
)

func (k ErrorKind) String() string {
	switch k {
	case ValidationFailed:
		return "Validation"
	case PricingFailed:
		return "Pricing"
	case RemoteServiceFailed:
		return "RemoteService"
	}
	return "Unknown"
}

func (k ErrorKind) sentinel() error {
	switch k {
	case ValidationFailed:
		return ErrValidation
	case PricingFailed:
		return ErrPricing
	case RemoteServiceFailed:
		return ErrRemoteService
	}
	return nil
}

// ServiceInfo names the remote collaborator behind a RemoteServiceFailed error.
type ServiceInfo struct {
	Name     string
	Endpoint string
}

// PlaceOrderError is the single error a failed PlaceOrder returns.
// errors.Is matches both its kind sentinel and anything in Cause's chain.
//
// Example:
//
//	events, err := handler.Handle(ctx, cmd)
//	var placeErr *order.PlaceOrderError
//	if errors.As(err, &placeErr) && placeErr.Kind == order.ValidationFailed {
//	    // report placeErr.Cause to the caller
//	}
type PlaceOrderError struct {
	Kind    ErrorKind
	Service ServiceInfo
	Cause   error
}

// NewValidationError reports input that failed validation.
func NewValidationError(cause error) *PlaceOrderError {
	return &PlaceOrderError{Kind: ValidationFailed, Cause: cause}
}

// NewPricingError reports a price that could not be computed.
func NewPricingError(cause error) *PlaceOrderError {
	return &PlaceOrderError{Kind: PricingFailed, Cause: cause}
}

// NewRemoteServiceError reports a failure of the named external service.
func NewRemoteServiceError(service ServiceInfo, cause error) *PlaceOrderError {
	return &PlaceOrderError{Kind: RemoteServiceFailed, Service: service, Cause: cause}
}

func (e *PlaceOrderError) Error() string {
	if e.Kind == RemoteServiceFailed {
		if e.Service.Endpoint != "" {
			return fmt.Sprintf("%s: %s (%s): %v", ErrRemoteService, e.Service.Name, e.Service.Endpoint, e.Cause)
		}
		return fmt.Sprintf("%s: %s: %v", ErrRemoteService, e.Service.Name, e.Cause)
	}
	return fmt.Sprintf("%v: %v", e.Kind.sentinel(), e.Cause)
}

func (e *PlaceOrderError) Unwrap() []error {
	return []error{e.Kind.sentinel(), e.Cause}
}
