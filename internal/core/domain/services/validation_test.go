package services_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/domain/services"
	"ordertaking/internal/pkg/errs"
)

func TestOrderValidator_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("should validate a well-formed order", func(t *testing.T) {
		// Given
		validator := services.NewOrderValidator(defaultCatalog(), &fakeAddressChecker{})

		// When
		validated, err := validator.Validate(ctx, newUnvalidatedOrder())

		// Then
		require.NoError(t, err)
		assert.Equal(t, "ord1", validated.OrderID().String())
		assert.Equal(t, "Jane", validated.CustomerInfo().Name().FirstName().String())
		assert.Equal(t, kernel.Normal, validated.CustomerInfo().VipStatus())
		assert.Equal(t, "1 Ship St", validated.ShippingAddress().AddressLine1().String())
		assert.Equal(t, "2 Bill St", validated.BillingAddress().AddressLine1().String())
		assert.Nil(t, validated.ShippingAddress().AddressLine2())
		require.Len(t, validated.Lines(), 1)
		assert.Equal(t, kernel.Widget, validated.Lines()[0].ProductCode().Kind())
		assert.Equal(t, 2, validated.Lines()[0].Quantity().Units().Value())
		assert.Equal(t, kernel.Standard, validated.PricingMethod().Kind())
	})

	t.Run("should check both addresses", func(t *testing.T) {
		checker := &fakeAddressChecker{}
		validator := services.NewOrderValidator(defaultCatalog(), checker)

		_, err := validator.Validate(ctx, newUnvalidatedOrder())

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"1 Ship St", "2 Bill St"}, checker.checked)
	})

	t.Run("should select promotion pricing for a promotion code", func(t *testing.T) {
		unvalidated := newUnvalidatedOrder()
		code := "HALF"
		unvalidated.PromotionCode = &code
		validator := services.NewOrderValidator(defaultCatalog(), &fakeAddressChecker{})

		validated, err := validator.Validate(ctx, unvalidated)

		require.NoError(t, err)
		promotion, ok := validated.PricingMethod().PromotionCode()
		require.True(t, ok)
		assert.Equal(t, "HALF", promotion.String())
	})

	t.Run("should select standard pricing for a blank promotion code", func(t *testing.T) {
		unvalidated := newUnvalidatedOrder()
		blank := "   "
		unvalidated.PromotionCode = &blank
		validator := services.NewOrderValidator(defaultCatalog(), &fakeAddressChecker{})

		validated, err := validator.Validate(ctx, unvalidated)

		require.NoError(t, err)
		assert.Equal(t, kernel.Standard, validated.PricingMethod().Kind())
	})

	t.Run("should accept a fractional gizmo quantity", func(t *testing.T) {
		unvalidated := newUnvalidatedOrder()
		unvalidated.Lines = []order.UnvalidatedOrderLine{{OrderLineID: "line1", ProductCode: "G123", Quantity: 0.5}}
		validator := services.NewOrderValidator(defaultCatalog(), &fakeAddressChecker{})

		validated, err := validator.Validate(ctx, unvalidated)

		require.NoError(t, err)
		assert.Equal(t, "0.5", validated.Lines()[0].Quantity().Kilograms().Value().String())
	})

	t.Run("should accept an order without lines", func(t *testing.T) {
		unvalidated := newUnvalidatedOrder()
		unvalidated.Lines = nil
		validator := services.NewOrderValidator(defaultCatalog(), &fakeAddressChecker{})

		validated, err := validator.Validate(ctx, unvalidated)

		require.NoError(t, err)
		assert.Empty(t, validated.Lines())
	})
}

func TestOrderValidator_Validate_Failures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		modify    func(o *order.UnvalidatedOrder)
		wantIs    error
		wantInMsg string
	}{
		{
			name:      "empty order id",
			modify:    func(o *order.UnvalidatedOrder) { o.OrderID = "" },
			wantIs:    errs.ErrValueIsRequired,
			wantInMsg: "OrderId",
		},
		{
			name:      "order id longer than 50 chars",
			modify:    func(o *order.UnvalidatedOrder) { o.OrderID = strings.Repeat("x", 51) },
			wantIs:    errs.ErrValueIsInvalid,
			wantInMsg: "must not be more than 50 chars",
		},
		{
			name:      "empty last name",
			modify:    func(o *order.UnvalidatedOrder) { o.CustomerInfo.LastName = "" },
			wantIs:    errs.ErrValueIsRequired,
			wantInMsg: "LastName",
		},
		{
			name:      "email without at sign",
			modify:    func(o *order.UnvalidatedOrder) { o.CustomerInfo.EmailAddress = "jane.example.com" },
			wantIs:    errs.ErrValueIsInvalid,
			wantInMsg: "EmailAddress",
		},
		{
			name:      "unknown vip status",
			modify:    func(o *order.UnvalidatedOrder) { o.CustomerInfo.VipStatus = "Gold" },
			wantIs:    errs.ErrValueIsInvalid,
			wantInMsg: "VipStatus",
		},
		{
			name:      "four digit zip code",
			modify:    func(o *order.UnvalidatedOrder) { o.ShippingAddress.ZipCode = "1234" },
			wantIs:    errs.ErrValueIsInvalid,
			wantInMsg: "ZipCode",
		},
		{
			name:      "unknown state code",
			modify:    func(o *order.UnvalidatedOrder) { o.BillingAddress.State = "XX" },
			wantIs:    errs.ErrValueIsInvalid,
			wantInMsg: "State",
		},
		{
			name: "unrecognized product code format",
			modify: func(o *order.UnvalidatedOrder) {
				o.Lines[0].ProductCode = "X123"
			},
			wantIs:    errs.ErrValueIsInvalid,
			wantInMsg: "format not recognized 'X123'",
		},
		{
			name: "product not in catalog",
			modify: func(o *order.UnvalidatedOrder) {
				o.Lines[0].ProductCode = "W9999"
			},
			wantIs:    errs.ErrValueIsInvalid,
			wantInMsg: "invalid product code",
		},
		{
			name: "fractional widget quantity",
			modify: func(o *order.UnvalidatedOrder) {
				o.Lines[0].Quantity = 1.5
			},
			wantIs:    errs.ErrValueIsInvalid,
			wantInMsg: "UnitQuantity",
		},
		{
			name: "widget quantity above 1000",
			modify: func(o *order.UnvalidatedOrder) {
				o.Lines[0].Quantity = 1001
			},
			wantIs:    errs.ErrValueIsOutOfRange,
			wantInMsg: "UnitQuantity",
		},
		{
			name: "gizmo quantity below 0.05",
			modify: func(o *order.UnvalidatedOrder) {
				o.Lines[0].ProductCode = "G123"
				o.Lines[0].Quantity = 0.01
			},
			wantIs:    errs.ErrValueIsOutOfRange,
			wantInMsg: "KilogramQuantity",
		},
		{
			name: "gizmo quantity that is not a number",
			modify: func(o *order.UnvalidatedOrder) {
				o.Lines[0].ProductCode = "G123"
				o.Lines[0].Quantity = math.NaN()
			},
			wantIs:    errs.ErrValueIsInvalid,
			wantInMsg: "KilogramQuantity",
		},
		{
			name: "infinite widget quantity",
			modify: func(o *order.UnvalidatedOrder) {
				o.Lines[0].Quantity = math.Inf(1)
			},
			wantIs:    errs.ErrValueIsInvalid,
			wantInMsg: "UnitQuantity",
		},
		{
			name: "empty order line id",
			modify: func(o *order.UnvalidatedOrder) {
				o.Lines[0].OrderLineID = ""
			},
			wantIs:    errs.ErrValueIsRequired,
			wantInMsg: "OrderLineId",
		},
	}

	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			// Given
			unvalidated := newUnvalidatedOrder()
			tt.modify(&unvalidated)
			validator := services.NewOrderValidator(defaultCatalog(), &fakeAddressChecker{})

			// When
			_, err := validator.Validate(ctx, unvalidated)

			// Then
			require.Error(t, err)
			require.ErrorIs(t, err, order.ErrValidation)
			require.ErrorIs(t, err, tt.wantIs)
			assert.Contains(t, err.Error(), tt.wantInMsg)

			var placeErr *order.PlaceOrderError
			require.ErrorAs(t, err, &placeErr)
			assert.Equal(t, order.ValidationFailed, placeErr.Kind)
		})
	}
}

func TestOrderValidator_Validate_FirstFailureWins(t *testing.T) {
	t.Run("should report the order id before the customer", func(t *testing.T) {
		unvalidated := newUnvalidatedOrder()
		unvalidated.OrderID = ""
		unvalidated.CustomerInfo.FirstName = ""
		validator := services.NewOrderValidator(defaultCatalog(), &fakeAddressChecker{})

		_, err := validator.Validate(context.Background(), unvalidated)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "OrderId")
		assert.NotContains(t, err.Error(), "FirstName")
	})
}

func TestOrderValidator_Validate_AddressCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("should map a bad format to a validation error", func(t *testing.T) {
		checker := &fakeAddressChecker{failures: map[string]error{
			"1 Ship St": &order.AddressValidationError{Kind: order.InvalidFormat},
		}}
		validator := services.NewOrderValidator(defaultCatalog(), checker)

		_, err := validator.Validate(ctx, newUnvalidatedOrder())

		require.ErrorIs(t, err, order.ErrValidation)
		assert.Equal(t, "validation error: address has bad format", err.Error())
	})

	t.Run("should map a missing address to a validation error", func(t *testing.T) {
		checker := &fakeAddressChecker{failures: map[string]error{
			"2 Bill St": &order.AddressValidationError{Kind: order.AddressNotFound},
		}}
		validator := services.NewOrderValidator(defaultCatalog(), checker)

		_, err := validator.Validate(ctx, newUnvalidatedOrder())

		require.ErrorIs(t, err, order.ErrValidation)
		assert.Equal(t, "validation error: address not found", err.Error())
	})

	t.Run("should report the shipping address before the billing address", func(t *testing.T) {
		checker := &fakeAddressChecker{failures: map[string]error{
			"1 Ship St": &order.AddressValidationError{Kind: order.AddressNotFound},
			"2 Bill St": &order.AddressValidationError{Kind: order.InvalidFormat},
		}}
		validator := services.NewOrderValidator(defaultCatalog(), checker)

		for range 20 {
			_, err := validator.Validate(ctx, newUnvalidatedOrder())
			require.Error(t, err)
			assert.Equal(t, "validation error: address not found", err.Error())
		}
	})

	t.Run("should map an unreachable service to a remote service error", func(t *testing.T) {
		cause := errors.New("connection refused")
		checker := &fakeAddressChecker{failures: map[string]error{"1 Ship St": cause}}
		validator := services.NewOrderValidator(defaultCatalog(), checker)

		_, err := validator.Validate(ctx, newUnvalidatedOrder())

		require.ErrorIs(t, err, order.ErrRemoteService)
		require.ErrorIs(t, err, cause)
		var placeErr *order.PlaceOrderError
		require.ErrorAs(t, err, &placeErr)
		assert.Equal(t, services.AddressService, placeErr.Service)
	})

	t.Run("should keep cancellation visible", func(t *testing.T) {
		checker := &fakeAddressChecker{failures: map[string]error{"2 Bill St": context.Canceled}}
		validator := services.NewOrderValidator(defaultCatalog(), checker)

		_, err := validator.Validate(ctx, newUnvalidatedOrder())

		require.ErrorIs(t, err, context.Canceled)
		require.ErrorIs(t, err, order.ErrRemoteService)
	})

	t.Run("should validate the checked address fields after the check", func(t *testing.T) {
		unvalidated := newUnvalidatedOrder()
		unvalidated.ShippingAddress.City = ""
		checker := &fakeAddressChecker{}
		validator := services.NewOrderValidator(defaultCatalog(), checker)

		_, err := validator.Validate(ctx, unvalidated)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "City")
		assert.Contains(t, checker.checked, "1 Ship St")
	})
}
