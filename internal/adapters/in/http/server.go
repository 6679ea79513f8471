// Package http exposes the marketplace order API over HTTP.
// Handlers translate between the wire format and application commands and
// queries; all business decisions stay in the domain layer.
package http

import (
	"errors"
	"net/http"
	"time"

	"linkmarket/internal/core/application/usecases/commands"
	"linkmarket/internal/core/application/usecases/queries"
	"linkmarket/internal/core/domain/model/kernel"
	"linkmarket/internal/core/domain/model/order"
	"linkmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Identity headers set by the authenticating gateway in front of this service.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler        commands.PlaceOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	getOrdersHandler     queries.GetOrdersQueryHandler
	getOrderStatsHandler queries.GetOrderStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderStatsHandler:     getOrderStatsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/openapi.json", s.OpenAPISpec)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.PlaceOrder)
	v1.POST("/orders/:id/status", s.ChangeOrderStatus)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/stats", s.GetOrderStats)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/v1/orders.
//
//	@Summary		Place an order
//	@Description	Converts a purchase into a placed order in the requested status.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			X-User-Id	header		string			true	"acting user identifier"
//	@Param			X-User-Role	header		string			true	"acting role, must be advertiser"
//	@Param			request		body		PlaceOrderRequest	true	"order to place"
//	@Success		201			{object}	OrderResponse
//	@Failure		400			{object}	Error
//	@Failure		401			{object}	Error
//	@Failure		403			{object}	Error
//	@Router			/api/v1/orders [post]
func (s *Server) PlaceOrder(ctx echo.Context) error {
	actorID, actorRole, err := s.identity(ctx)
	if err != nil {
		return err
	}

	var req PlaceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	if actorRole != order.Advertiser {
		return forbidden(ctx, "only advertisers place orders")
	}
	if req.Advertiser.ID != actorID.String() {
		return forbidden(ctx, "advertiser does not match the authenticated user")
	}

	cmd, err := req.toCommand()
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFrom(placed))
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status.
//
//	@Summary		Transition an order
//	@Description	Moves an order to a new lifecycle status on behalf of the acting party.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string					true	"order identifier"
//	@Param			X-User-Id	header		string					true	"acting user identifier"
//	@Param			X-User-Role	header		string					true	"acting role"
//	@Param			request		body		ChangeOrderStatusRequest	true	"requested transition"
//	@Success		200			{object}	OrderResponse
//	@Failure		400			{object}	Error
//	@Failure		403			{object}	Error
//	@Failure		404			{object}	Error
//	@Failure		409			{object}	Error
//	@Router			/api/v1/orders/{id}/status [post]
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	actorID, actorRole, err := s.identity(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order identifier")
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	targetStatus, err := order.StatusFromString(req.TargetStatus)
	if err != nil {
		return badRequest(ctx, "invalid target status")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(
		orderID, actorID, actorRole, targetStatus, req.Note, req.RejectionReason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFrom(updated))
}

// GetOrders handles GET /api/v1/orders.
//
//	@Summary		List orders
//	@Description	Lists the acting party's orders, optionally filtered by status and a search term.
//	@Tags			orders
//	@Produce		json
//	@Param			X-User-Id	header		string	true	"acting user identifier"
//	@Param			X-User-Role	header		string	true	"acting role"
//	@Param			status		query		string	false	"status filter"
//	@Param			search		query		string	false	"search over counterpart, website, and post title"
//	@Success		200			{array}		OrderListItem
//	@Failure		400			{object}	Error
//	@Router			/api/v1/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	actorID, actorRole, err := s.identity(ctx)
	if err != nil {
		return err
	}

	statusFilter := order.StatusUnknown
	if raw := ctx.QueryParam("status"); raw != "" {
		statusFilter, err = order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "invalid status filter")
		}
	}

	query, err := queries.NewGetOrdersQuery(actorID, actorRole, statusFilter, ctx.QueryParam("search"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]OrderListItem, len(orders))
	for i, o := range orders {
		response[i] = OrderListItem{
			ID:               o.ID.String(),
			Status:           o.Status,
			ServiceType:      o.ServiceType,
			PriceCents:       o.PriceCents,
			PostTitle:        o.PostTitle,
			CounterpartName:  o.CounterpartName,
			CounterpartEmail: o.CounterpartEmail,
			WebsiteDomain:    o.WebsiteDomain,
			RejectionReason:  o.RejectionReason,
			CompletedAt:      o.CompletedAt,
			CreatedAt:        o.CreatedAt,
			UpdatedAt:        o.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderStats handles GET /api/v1/orders/stats.
//
//	@Summary		Order statistics
//	@Description	Returns per-status order counts for the acting party.
//	@Tags			orders
//	@Produce		json
//	@Param			X-User-Id	header		string	true	"acting user identifier"
//	@Param			X-User-Role	header		string	true	"acting role"
//	@Success		200			{object}	OrderStatsResponse
//	@Failure		400			{object}	Error
//	@Router			/api/v1/orders/stats [get]
func (s *Server) GetOrderStats(ctx echo.Context) error {
	actorID, actorRole, err := s.identity(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderStatsQuery(actorID, actorRole)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	stats, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatsResponse{
		Total:              stats.Total,
		Requested:          stats.Requested,
		InProgress:         stats.InProgress,
		AdvertiserApproval: stats.AdvertiserApproval,
		Completed:          stats.Completed,
		Rejected:           stats.Rejected,
	})
}

// identity extracts the acting party from the gateway-set identity headers.
func (s *Server) identity(ctx echo.Context) (kernel.UUID, order.Role, error) {
	rawID := ctx.Request().Header.Get(HeaderUserID)
	rawRole := ctx.Request().Header.Get(HeaderUserRole)
	if rawID == "" || rawRole == "" {
		return kernel.UUID{}, order.RoleUnknown, ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "missing identity headers",
		})
	}

	actorID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return kernel.UUID{}, order.RoleUnknown, ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "invalid user identifier",
		})
	}

	actorRole, err := order.RoleFromString(rawRole)
	if err != nil {
		return kernel.UUID{}, order.RoleUnknown, ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "invalid user role",
		})
	}

	return actorID, actorRole, nil
}

// errorResponse maps domain errors onto HTTP status codes. Version conflicts
// are flagged retryable so clients know to re-read the order and try again.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrActorForbidden):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrVersionConflict):
		return ctx.JSON(http.StatusConflict, Error{
			Code:      http.StatusConflict,
			Message:   err.Error(),
			Retryable: true,
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, order.ErrSamePartyOnBothSides):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func forbidden(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusForbidden, Error{
		Code:    http.StatusForbidden,
		Message: message,
	})
}

// toCommand converts the wire request into a validated application command.
func (r PlaceOrderRequest) toCommand() (commands.PlaceOrderCommand, error) {
	advertiser, err := r.Advertiser.toParty()
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}
	publisher, err := r.Publisher.toParty()
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	websiteID, err := kernel.UUIDFromString(r.Website.ID)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}
	website, err := order.NewWebsite(websiteID, r.Website.Domain)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	serviceType, err := order.ServiceTypeFromString(r.ServiceType)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	price, err := kernel.NewPrice(r.PriceCents)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	var deadline *time.Time
	if r.Requirements.Deadline != "" {
		parsed, parseErr := time.Parse(time.RFC3339, r.Requirements.Deadline)
		if parseErr != nil {
			return commands.PlaceOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("deadline", parseErr)
		}
		deadline = &parsed
	}

	requirements, err := order.NewRequirements(
		r.Requirements.MinWordCount,
		r.Requirements.MaxLinks,
		r.Requirements.TopicsAllowed,
		r.Requirements.TopicsDenied,
		deadline,
	)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	return commands.NewPlaceOrderCommand(
		kernel.NewUUID(), advertiser, publisher, website, serviceType, price, r.PostTitle, requirements)
}

func (p PartyRequest) toParty() (order.Party, error) {
	id, err := kernel.UUIDFromString(p.ID)
	if err != nil {
		return order.Party{}, err
	}
	return order.NewParty(id, p.Name, p.Email)
}
