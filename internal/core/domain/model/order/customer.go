package order

import (
	"errors"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/guard"
)

var (
	ErrPersonalNameIsNotConstructed = errors.New("PersonalName must be created via NewPersonalName constructor")
	ErrCustomerInfoIsNotConstructed = errors.New("CustomerInfo must be created via NewCustomerInfo constructor")
)

// PersonalName is a customer's first and last name.
type PersonalName struct {
	firstName kernel.String50
	lastName  kernel.String50
	guard     guard.ConstructorGuard
}

// NewPersonalName assembles already validated first and last names.
func NewPersonalName(firstName, lastName kernel.String50) (PersonalName, error) {
	if err := errors.Join(firstName.Validate(), lastName.Validate()); err != nil {
		return PersonalName{}, err
	}
	return PersonalName{firstName: firstName, lastName: lastName, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the PersonalName was created through the constructor.
func (n PersonalName) Validate() error {
	return n.guard.Validate(ErrPersonalNameIsNotConstructed)
}

func (n PersonalName) FirstName() kernel.String50 {
	return n.firstName
}

func (n PersonalName) LastName() kernel.String50 {
	return n.lastName
}

// CustomerInfo identifies who placed the order and how to reach them.
type CustomerInfo struct {
	name         PersonalName
	emailAddress kernel.EmailAddress
	vipStatus    kernel.VipStatus
	guard        guard.ConstructorGuard
}

// NewCustomerInfo assembles already validated parts into a CustomerInfo.
func NewCustomerInfo(name PersonalName, email kernel.EmailAddress, vip kernel.VipStatus) (CustomerInfo, error) {
	if err := errors.Join(name.Validate(), email.Validate(), vip.Validate()); err != nil {
		return CustomerInfo{}, err
	}
	return CustomerInfo{
		name:         name,
		emailAddress: email,
		vipStatus:    vip,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the CustomerInfo was created through the constructor.
func (c CustomerInfo) Validate() error {
	return c.guard.Validate(ErrCustomerInfoIsNotConstructed)
}

func (c CustomerInfo) Name() PersonalName {
	return c.name
}

func (c CustomerInfo) EmailAddress() kernel.EmailAddress {
	return c.emailAddress
}

func (c CustomerInfo) VipStatus() kernel.VipStatus {
	return c.vipStatus
}
