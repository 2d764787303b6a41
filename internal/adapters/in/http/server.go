package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/application/usecases/queries"
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
)

// OrderPlacer runs the PlaceOrder workflow.
type OrderPlacer interface {
	Handle(ctx context.Context, cmd commands.PlaceOrderCommand) ([]order.PlaceOrderEvent, error)
}

// PriceLister answers the product price list query.
type PriceLister interface {
	Handle(ctx context.Context, query queries.GetProductPricesQuery) ([]queries.GetProductPricesQueryResponse, error)
}

// ServerInterface lists the operations of the OpenAPI document.
type ServerInterface interface {
	// PlaceOrder handles POST /api/v1/orders.
	PlaceOrder(ctx echo.Context) error
	// ListProductPrices handles GET /api/v1/products.
	ListProductPrices(ctx echo.Context) error
	// Health handles GET /health.
	Health(ctx echo.Context) error
}

// RegisterHandlers routes every documented operation to si.
func RegisterHandlers(router *echo.Echo, si ServerInterface) {
	router.POST("/api/v1/orders", si.PlaceOrder)
	router.GET("/api/v1/products", si.ListProductPrices)
	router.GET("/health", si.Health)
}

// Server translates HTTP requests into commands and results into responses.
type Server struct {
	placeOrderHandler OrderPlacer
	priceLister       PriceLister
	newEventID        func() uuid.UUID
	logger            *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

func NewServer(placeOrderHandler OrderPlacer, priceLister PriceLister, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		placeOrderHandler: placeOrderHandler,
		priceLister:       priceLister,
		newEventID:        uuid.New,
		logger:            logger.With("component", "http_server"),
	}
}

// PlaceOrder handles POST /api/v1/orders - places an order and returns its events.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var form OrderForm
	if err := ctx.Bind(&form); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd := commands.NewPlaceOrderCommand(form.toUnvalidated())
	events, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		status, message := s.errorStatus(ctx.Request().Context(), err)
		return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
	}

	response := make([]Event, 0, len(events))
	for _, e := range events {
		response = append(response, fromEvent(s.newEventID(), e))
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListProductPrices handles GET /api/v1/products - lists prices under the
// optional promotionCode query parameter.
func (s *Server) ListProductPrices(ctx echo.Context) error {
	var promotionCode *string
	if raw := ctx.QueryParam("promotionCode"); raw != "" {
		promotionCode = &raw
	}

	query := queries.NewGetProductPricesQuery(kernel.NewPricingMethod(promotionCode))
	prices, err := s.priceLister.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "list product prices failed", "error", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to list product prices",
		})
	}

	response := make([]ProductPriceDTO, 0, len(prices))
	for _, p := range prices {
		response = append(response, fromProductPrice(p))
	}
	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func (s *Server) errorStatus(ctx context.Context, err error) (int, string) {
	var placeErr *order.PlaceOrderError
	if !errors.As(err, &placeErr) {
		s.logger.ErrorContext(ctx, "place order failed", "error", err)
		return http.StatusInternalServerError, "Failed to place order"
	}

	switch placeErr.Kind {
	case order.ValidationFailed:
		return http.StatusBadRequest, placeErr.Error()
	case order.PricingFailed:
		return http.StatusUnprocessableEntity, placeErr.Error()
	case order.RemoteServiceFailed:
		s.logger.ErrorContext(ctx, "remote service failed", "service", placeErr.Service.Name, "error", placeErr.Cause)
		return http.StatusBadGateway, "Remote service " + placeErr.Service.Name + " is unavailable"
	}
	return http.StatusInternalServerError, "Failed to place order"
}
