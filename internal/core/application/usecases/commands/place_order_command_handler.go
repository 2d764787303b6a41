package commands

import (
	"context"
	"log/slog"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/domain/services"
)

// PlaceOrderStage is a state of a single PlaceOrder run.
type PlaceOrderStage int

const (
	StageStart PlaceOrderStage = iota
	StageValidating
	StagePricing
	StageShipping
	StageAcknowledging
	StageEventAssembly
	StageDone
	StageFailed
)

func (s PlaceOrderStage) String() string {
	switch s {
	case StageStart:
		return "Start"
	case StageValidating:
		return "Validating"
	case StagePricing:
		return "Pricing"
	case StageShipping:
		return "Shipping"
	case StageAcknowledging:
		return "Acknowledging"
	case StageEventAssembly:
		return "EventAssembly"
	case StageDone:
		return "Done"
	case StageFailed:
		return "Failed"
	}
	return "Unknown"
}

// PlaceOrderCommandHandler runs the PlaceOrder workflow:
// validate, price, add shipping, waive VIP shipping, acknowledge, assemble events.
//
// The handler holds no per-order state and may be shared between goroutines.
//
// Example:
//
//	handler, err := NewPlaceOrderCommandHandler(deps, logger)
//	if err != nil {
//	    return err
//	}
//	events, err := handler.Handle(ctx, NewPlaceOrderCommand(unvalidated))
//	var placeErr *order.PlaceOrderError
//	if errors.As(err, &placeErr) {
//	    // placeErr.Kind tells validation, pricing and remote failures apart
//	}
type PlaceOrderCommandHandler struct {
	validator    services.OrderValidator
	pricer       services.OrderPricer
	acknowledger services.OrderAcknowledger
	logger       *slog.Logger
}

// NewPlaceOrderCommandHandler wires the workflow stages to deps.
// Returns an error naming every missing collaborator.
func NewPlaceOrderCommandHandler(deps PlaceOrderDependencies, logger *slog.Logger) (*PlaceOrderCommandHandler, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PlaceOrderCommandHandler{
		validator:    services.NewOrderValidator(deps.ProductCatalog, deps.AddressChecker),
		pricer:       services.NewOrderPricer(deps.PricingResolver),
		acknowledger: services.NewOrderAcknowledger(deps.LetterWriter, deps.AcknowledgmentSender),
		logger:       logger.With("component", "place_order"),
	}, nil
}

// Handle places the order carried by cmd.
//
// Returns:
//   - []order.PlaceOrderEvent: acknowledgment (if sent), shipment, billing (if amount > 0)
//   - error: a *order.PlaceOrderError, or ErrPlaceOrderCommandIsNotConstructed
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) ([]order.PlaceOrderEvent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	logger := h.logger.With("order_id", cmd.Order().OrderID)

	h.transition(ctx, logger, StageStart, StageValidating)
	validated, err := h.validator.Validate(ctx, cmd.Order())
	if err != nil {
		return nil, h.fail(ctx, logger, StageValidating, err)
	}

	h.transition(ctx, logger, StageValidating, StagePricing)
	priced, err := h.pricer.Price(ctx, validated)
	if err != nil {
		return nil, h.fail(ctx, logger, StagePricing, err)
	}

	h.transition(ctx, logger, StagePricing, StageShipping)
	withShipping, err := services.AddShippingInfo(priced)
	if err != nil {
		return nil, h.fail(ctx, logger, StageShipping, order.NewPricingError(err))
	}
	withShipping = services.FreeVipShipping(withShipping)

	h.transition(ctx, logger, StageShipping, StageAcknowledging)
	ack := h.acknowledger.Acknowledge(ctx, withShipping)
	if ack == nil {
		logger.WarnContext(ctx, "acknowledgment was not sent")
	}

	h.transition(ctx, logger, StageAcknowledging, StageEventAssembly)
	events := services.CreateEvents(withShipping, ack)

	h.transition(ctx, logger, StageEventAssembly, StageDone)
	logger.InfoContext(ctx, "order placed",
		"amount_to_bill", withShipping.AmountToBill().String(),
		"shipping_cost", withShipping.ShippingInfo().ShippingCost.String(),
		"events", len(events),
	)
	return events, nil
}

func (h *PlaceOrderCommandHandler) transition(ctx context.Context, logger *slog.Logger, from, to PlaceOrderStage) {
	logger.DebugContext(ctx, "stage transition", "from", from.String(), "to", to.String())
}

func (h *PlaceOrderCommandHandler) fail(ctx context.Context, logger *slog.Logger, stage PlaceOrderStage, err error) error {
	h.transition(ctx, logger, stage, StageFailed)
	logger.WarnContext(ctx, "order rejected", "stage", stage.String(), "error", err)
	return err
}
