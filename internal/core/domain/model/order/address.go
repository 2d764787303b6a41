package order

import (
	"errors"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/guard"
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// UnvalidatedAddress is an address as received from the caller.
type UnvalidatedAddress struct {
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	AddressLine4 string
	City         string
	ZipCode      string
	State        string
	Country      string
}

// CheckedAddress is an address the address service has confirmed exists.
// Its fields are still raw strings; NewAddress validates them.
type CheckedAddress UnvalidatedAddress

// AddressValidationErrorKind is the reason an address check rejected an address.
type AddressValidationErrorKind int

const (
	// InvalidFormat means the address service could not parse the address.
	InvalidFormat AddressValidationErrorKind = iota + 1
	// AddressNotFound means the address parsed but does not exist.
	AddressNotFound
)

// AddressValidationError is the typed negative outcome of an address check.
// Any other error returned by a checker is an infrastructure failure.
type AddressValidationError struct {
	Kind AddressValidationErrorKind
}

func (e *AddressValidationError) Error() string {
	switch e.Kind {
	case InvalidFormat:
		return "address has bad format"
	case AddressNotFound:
		return "address not found"
	}
	return "address is invalid"
}

// Address is a validated postal address. Lines 2 to 4 are optional.
type Address struct {
	addressLine1 kernel.String50
	addressLine2 *kernel.String50
	addressLine3 *kernel.String50
	addressLine4 *kernel.String50
	city         kernel.String50
	zipCode      kernel.ZipCode
	state        kernel.UsStateCode
	country      kernel.String50
	guard        guard.ConstructorGuard
}

// NewAddress assembles validated parts into an Address.
//
// Parameters:
//   - line1, city, country: Required lines
//   - line2, line3, line4: Optional lines, nil when absent
//   - zip, state: Validated US zip and state codes
//
// Returns:
//   - Address: The assembled address
//   - error: Joined constructor-guard errors for any zero-value part
func NewAddress(
	line1 kernel.String50,
	line2, line3, line4 *kernel.String50,
	city kernel.String50,
	zip kernel.ZipCode,
	state kernel.UsStateCode,
	country kernel.String50,
) (Address, error) {
	if err := errors.Join(
		line1.Validate(),
		validateOptional(line2),
		validateOptional(line3),
		validateOptional(line4),
		city.Validate(),
		zip.Validate(),
		state.Validate(),
		country.Validate(),
	); err != nil {
		return Address{}, err
	}

	return Address{
		addressLine1: line1,
		addressLine2: line2,
		addressLine3: line3,
		addressLine4: line4,
		city:         city,
		zipCode:      zip,
		state:        state,
		country:      country,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func validateOptional(s *kernel.String50) error {
	if s == nil {
		return nil
	}
	return s.Validate()
}

// Validate ensures the Address was created through the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) AddressLine1() kernel.String50 { return a.addressLine1 }
func (a Address) AddressLine2() *kernel.String50 { return a.addressLine2 }
func (a Address) AddressLine3() *kernel.String50 { return a.addressLine3 }
func (a Address) AddressLine4() *kernel.String50 { return a.addressLine4 }
func (a Address) City() kernel.String50 { return a.city }
func (a Address) ZipCode() kernel.ZipCode { return a.zipCode }
func (a Address) State() kernel.UsStateCode { return a.state }
func (a Address) Country() kernel.String50 { return a.country }

// ToUnvalidated returns the raw form of the address, with absent lines as "".
func (a Address) ToUnvalidated() UnvalidatedAddress {
	return UnvalidatedAddress{
		AddressLine1: a.addressLine1.String(),
		AddressLine2: kernel.OptionalString50Value(a.addressLine2),
		AddressLine3: kernel.OptionalString50Value(a.addressLine3),
		AddressLine4: kernel.OptionalString50Value(a.addressLine4),
		City:         a.city.String(),
		ZipCode:      a.zipCode.String(),
		State:        a.state.String(),
		Country:      a.country.String(),
	}
}
