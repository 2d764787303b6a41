package kernel

import (
	"errors"
	"fmt"
	"regexp"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

var (
	emailAddressPattern = regexp.MustCompile(`^.+@.+$`)
	zipCodePattern      = regexp.MustCompile(`^\d{5}$`)
	usStateCodePattern  = regexp.MustCompile(`^(A[KLRZ]|C[AOT]|D[CE]|FL|GA|HI|I[ADLN]|K[SY]|LA|M[ADEINOST]|N[CDEHJMVY]|O[HKR]|P[AR]|RI|S[CD]|T[NX]|UT|V[AIT]|W[AIVY])$`)
)

var (
	ErrEmailAddressIsNotConstructed = errors.New("EmailAddress must be created via NewEmailAddress constructor")
	ErrZipCodeIsNotConstructed      = errors.New("ZipCode must be created via NewZipCode constructor")
	ErrUsStateCodeIsNotConstructed  = errors.New("UsStateCode must be created via NewUsStateCode constructor")
)

// EmailAddress is a string containing an @ with at least one character on each side.
type EmailAddress struct {
	value string
	guard guard.ConstructorGuard
}

// NewEmailAddress checks that s has an @ with text on each side.
func NewEmailAddress(fieldName string, s string) (EmailAddress, error) {
	v, err := CreateLike(fieldName, emailAddressPattern, s)
	if err != nil {
		return EmailAddress{}, err
	}
	return EmailAddress{value: v, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the EmailAddress was created through the constructor.
func (e EmailAddress) Validate() error {
	return e.guard.Validate(ErrEmailAddressIsNotConstructed)
}

func (e EmailAddress) String() string {
	return e.value
}

// ZipCode is a US zip code: exactly five digits.
type ZipCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewZipCode checks that s is a five digit US zip code.
func NewZipCode(fieldName string, s string) (ZipCode, error) {
	v, err := CreateLike(fieldName, zipCodePattern, s)
	if err != nil {
		return ZipCode{}, err
	}
	return ZipCode{value: v, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the ZipCode was created through the constructor.
func (z ZipCode) Validate() error {
	return z.guard.Validate(ErrZipCodeIsNotConstructed)
}

func (z ZipCode) String() string {
	return z.value
}

// UsStateCode is a two-letter US state, district or territory abbreviation.
type UsStateCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewUsStateCode checks that s is a known two letter US state code.
func NewUsStateCode(fieldName string, s string) (UsStateCode, error) {
	v, err := CreateLike(fieldName, usStateCodePattern, s)
	if err != nil {
		return UsStateCode{}, err
	}
	return UsStateCode{value: v, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the UsStateCode was created through the constructor.
func (s UsStateCode) Validate() error {
	return s.guard.Validate(ErrUsStateCodeIsNotConstructed)
}

func (s UsStateCode) String() string {
	return s.value
}

// VipStatus tells whether a customer gets VIP treatment (free shipping).
type VipStatus int

const (
	// VipStatusUnknown is the zero value and never a valid status.
	VipStatusUnknown VipStatus = iota
	// Normal customers pay for shipping.
	Normal
	// VIP customers ship for free.
	VIP
)

// NewVipStatus parses the raw status. An empty string is treated as Normal,
// since the status is optional on incoming orders.
func NewVipStatus(fieldName string, s string) (VipStatus, error) {
	switch s {
	case "", "Normal":
		return Normal, nil
	case "VIP":
		return VIP, nil
	default:
		return VipStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			fieldName,
			fmt.Errorf("'%s' must be one of 'Normal', 'VIP'", s),
		)
	}
}

// Validate ensures the VipStatus was created through the constructor.
func (v VipStatus) Validate() error {
	if v != Normal && v != VIP {
		return errs.NewValueIsInvalidErrorWithCause("VipStatus", fmt.Errorf("%d is not a valid VIP status", v))
	}
	return nil
}

func (v VipStatus) String() string {
	switch v {
	case Normal:
		return "Normal"
	case VIP:
		return "VIP"
	case VipStatusUnknown:
		return "Unknown"
	}
	return "Unknown"
}
