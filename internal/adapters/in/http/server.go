package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Server handles the marketplace HTTP API. It coordinates between HTTP
// handlers and application use cases: each route binds its input, builds a
// command or query, and maps the result (or the domain error) back onto
// the wire.
type Server struct {
	// Command handlers
	submitOrderHandler   commands.SubmitOrderCommandHandler
	acceptOrderHandler   commands.AcceptOrderCommandHandler
	startWorkHandler     commands.StartWorkCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	rateOrderHandler     commands.RateOrderCommandHandler

	// Query handlers
	getOpenOrdersHandler          queries.GetOpenOrdersQueryHandler
	getCourierActiveOrdersHandler queries.GetCourierActiveOrdersQueryHandler
	getCourierHistoryHandler      queries.GetCourierHistoryQueryHandler
	getCourierStatsHandler        queries.GetCourierStatsQueryHandler
	getClientActiveOrdersHandler  queries.GetClientActiveOrdersQueryHandler
	getClientHistoryHandler       queries.GetClientHistoryQueryHandler
	getPublicReviewsHandler       queries.GetPublicReviewsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	startWorkHandler commands.StartWorkCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	rateOrderHandler commands.RateOrderCommandHandler,
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler,
	getCourierActiveOrdersHandler queries.GetCourierActiveOrdersQueryHandler,
	getCourierHistoryHandler queries.GetCourierHistoryQueryHandler,
	getCourierStatsHandler queries.GetCourierStatsQueryHandler,
	getClientActiveOrdersHandler queries.GetClientActiveOrdersQueryHandler,
	getClientHistoryHandler queries.GetClientHistoryQueryHandler,
	getPublicReviewsHandler queries.GetPublicReviewsQueryHandler,
) *Server {
	return &Server{
		submitOrderHandler:            submitOrderHandler,
		acceptOrderHandler:            acceptOrderHandler,
		startWorkHandler:              startWorkHandler,
		completeOrderHandler:          completeOrderHandler,
		cancelOrderHandler:            cancelOrderHandler,
		rateOrderHandler:              rateOrderHandler,
		getOpenOrdersHandler:          getOpenOrdersHandler,
		getCourierActiveOrdersHandler: getCourierActiveOrdersHandler,
		getCourierHistoryHandler:      getCourierHistoryHandler,
		getCourierStatsHandler:        getCourierStatsHandler,
		getClientActiveOrdersHandler:  getClientActiveOrdersHandler,
		getClientHistoryHandler:       getClientHistoryHandler,
		getPublicReviewsHandler:       getPublicReviewsHandler,
	}
}

// RegisterRoutes mounts all marketplace routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.SubmitOrder)
	v1.GET("/orders/open", s.GetOpenOrders)
	v1.POST("/orders/:id/accept", s.AcceptOrder)
	v1.POST("/orders/:id/start", s.StartWork)
	v1.POST("/orders/:id/complete", s.CompleteOrder)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
	v1.POST("/orders/:id/rating", s.RateOrder)

	v1.GET("/couriers/:courier/orders/active", s.GetCourierActiveOrders)
	v1.GET("/couriers/:courier/orders/history", s.GetCourierHistory)
	v1.GET("/couriers/:courier/stats", s.GetCourierStats)

	v1.GET("/clients/:client/orders/active", s.GetClientActiveOrders)
	v1.GET("/clients/:client/orders/history", s.GetClientHistory)

	v1.GET("/reviews", s.GetPublicReviews)
}

func errorResponse(ctx echo.Context, err error) error {
	code := statusCodeOf(err)
	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

func orderID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// SubmitOrder handles POST /api/v1/orders - publishes a new order to the
// open pool.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var req SubmitOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSubmitOrderCommand(req.ClientName, req.Address, req.Description, req.Price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	submitted, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(submitted))
}

// GetOpenOrders handles GET /api/v1/orders/open - lists the open pool.
// An optional ?limit= query parameter caps the listing.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	var limitParam *int
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &limitParam); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid limit parameter",
		})
	}

	var limit int
	if limitParam != nil {
		limit = *limitParam
	}

	query, err := queries.NewGetOpenOrdersQuery(limit)
	if err != nil {
		return errorResponse(ctx, err)
	}

	open, err := s.getOpenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(open))
}

// AcceptOrder handles POST /api/v1/orders/:id/accept - a courier claims a
// pending order. Of concurrent claims exactly one succeeds; the rest get 409.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req CourierActionRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAcceptOrderCommand(id, req.CourierName)
	if err != nil {
		return errorResponse(ctx, err)
	}

	accepted, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(accepted))
}

// StartWork handles POST /api/v1/orders/:id/start - the fulfilling courier
// reports having begun the work on site.
func (s *Server) StartWork(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req CourierActionRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewStartWorkCommand(id, req.CourierName)
	if err != nil {
		return errorResponse(ctx, err)
	}

	working, err := s.startWorkHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(working))
}

// CompleteOrder handles POST /api/v1/orders/:id/complete - the fulfilling
// courier marks the order done.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req CourierActionRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCompleteOrderCommand(id, req.CourierName)
	if err != nil {
		return errorResponse(ctx, err)
	}

	completed, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(completed))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - the owning client
// withdraws a still-pending order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req ClientActionRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(id, req.ClientName)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(cancelled))
}

// RateOrder handles POST /api/v1/orders/:id/rating - the owning client
// rates a completed order, exactly once.
func (s *Server) RateOrder(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req RateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRateOrderCommand(id, req.ClientName, req.Rating, req.Review)
	if err != nil {
		return errorResponse(ctx, err)
	}

	rated, err := s.rateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(rated))
}

// GetCourierActiveOrders handles GET /api/v1/couriers/:courier/orders/active.
func (s *Server) GetCourierActiveOrders(ctx echo.Context) error {
	query, err := queries.NewGetCourierOrdersQuery(ctx.Param("courier"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	held, err := s.getCourierActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(held))
}

// GetCourierHistory handles GET /api/v1/couriers/:courier/orders/history.
func (s *Server) GetCourierHistory(ctx echo.Context) error {
	query, err := queries.NewGetCourierOrdersQuery(ctx.Param("courier"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	history, err := s.getCourierHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(history))
}

// GetCourierStats handles GET /api/v1/couriers/:courier/stats.
func (s *Server) GetCourierStats(ctx echo.Context) error {
	query, err := queries.NewGetCourierStatsQuery(ctx.Param("courier"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	stats, err := s.getCourierStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CourierStats{
		CourierName:   stats.CourierName,
		OrderCount:    stats.OrderCount,
		TotalEarned:   stats.TotalEarned,
		AvgOrderValue: stats.AvgOrderValue,
		AvgRating:     stats.AvgRating,
	})
}

// GetClientActiveOrders handles GET /api/v1/clients/:client/orders/active.
func (s *Server) GetClientActiveOrders(ctx echo.Context) error {
	query, err := queries.NewGetClientOrdersQuery(ctx.Param("client"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	active, err := s.getClientActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(active))
}

// GetClientHistory handles GET /api/v1/clients/:client/orders/history.
func (s *Server) GetClientHistory(ctx echo.Context) error {
	query, err := queries.NewGetClientOrdersQuery(ctx.Param("client"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	history, err := s.getClientHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(history))
}

// GetPublicReviews handles GET /api/v1/reviews - the public review feed.
func (s *Server) GetPublicReviews(ctx echo.Context) error {
	reviews, err := s.getPublicReviewsHandler.Handle(ctx.Request().Context(), queries.NewGetPublicReviewsQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Review, len(reviews))
	for i, review := range reviews {
		response[i] = Review{
			ClientName: review.ClientName,
			Rating:     review.Rating,
			Review:     review.Review,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
