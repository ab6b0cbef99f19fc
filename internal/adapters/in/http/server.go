// Package http is the inbound HTTP adapter. It binds and validates request
// bodies, builds commands and queries, and maps domain errors to statuses;
// all business rules live behind the handlers it calls.
package http

import (
	"net/http"
	"strconv"
	"time"

	"autoservice/internal/core/application/usecases/commands"
	"autoservice/internal/core/application/usecases/queries"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	updateOrderHandler    commands.UpdateOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	addOrderLineHandler   commands.AddOrderLineCommandHandler
	postReviewHandler     commands.PostReviewCommandHandler
	createCarModelHandler commands.CreateCarModelCommandHandler
	createCarHandler      commands.CreateCarCommandHandler
	createServiceHandler  commands.CreateServiceCommandHandler

	// Query handlers
	listOrdersHandler     queries.ListOrdersQueryHandler
	listUserOrdersHandler queries.ListUserOrdersQueryHandler
	getOrderHandler       queries.GetOrderQueryHandler
	listCarsHandler       queries.ListCarsQueryHandler
	getDashboardHandler   queries.GetDashboardQueryHandler
}

// NewServer creates the HTTP server with all command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	addOrderLineHandler commands.AddOrderLineCommandHandler,
	postReviewHandler commands.PostReviewCommandHandler,
	createCarModelHandler commands.CreateCarModelCommandHandler,
	createCarHandler commands.CreateCarCommandHandler,
	createServiceHandler commands.CreateServiceCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	listUserOrdersHandler queries.ListUserOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listCarsHandler queries.ListCarsQueryHandler,
	getDashboardHandler queries.GetDashboardQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		updateOrderHandler:    updateOrderHandler,
		cancelOrderHandler:    cancelOrderHandler,
		addOrderLineHandler:   addOrderLineHandler,
		postReviewHandler:     postReviewHandler,
		createCarModelHandler: createCarModelHandler,
		createCarHandler:      createCarHandler,
		createServiceHandler:  createServiceHandler,
		listOrdersHandler:     listOrdersHandler,
		listUserOrdersHandler: listUserOrdersHandler,
		getOrderHandler:       getOrderHandler,
		listCarsHandler:       listCarsHandler,
		getDashboardHandler:   getDashboardHandler,
	}
}

// RegisterRoutes wires all routes onto the echo instance. Routes touching a
// specific customer's data sit behind the auth middleware; catalog and list
// reads are public.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware) {
	requireAuth := auth.Require()

	e.GET("/", s.Dashboard, VisitCounter())
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.GET("/orders", s.ListOrders)
	v1.GET("/orders/:orderID", s.GetOrder)
	v1.POST("/orders", s.CreateOrder, requireAuth)
	v1.PUT("/orders/:orderID", s.UpdateOrder, requireAuth)
	v1.DELETE("/orders/:orderID", s.CancelOrder, requireAuth)
	v1.POST("/orders/:orderID/lines", s.AddOrderLine, requireAuth)
	v1.POST("/orders/:orderID/reviews", s.PostReview, requireAuth)
	v1.GET("/my/orders", s.MyOrders, requireAuth)

	v1.GET("/cars", s.ListCars)
	v1.POST("/car-models", s.CreateCarModel, requireAuth)
	v1.POST("/cars", s.CreateCar, requireAuth)
	v1.POST("/services", s.CreateService, requireAuth)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Dashboard handles GET / with the landing page counters and the visitor's
// visit count.
func (s *Server) Dashboard(ctx echo.Context) error {
	counters, err := s.getDashboardHandler.Handle(ctx.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	visits, _ := ctx.Get(VisitCountContextKey).(int)

	return ctx.JSON(http.StatusOK, DashboardResponse{
		CarCount:     counters.CarCount,
		OrderCount:   counters.OrderCount,
		ServiceCount: counters.ServiceCount,
		ReviewCount:  counters.ReviewCount,
		VisitCount:   visits,
	})
}

// ListOrders handles GET /api/v1/orders with optional search and page query
// parameters.
func (s *Server) ListOrders(ctx echo.Context) error {
	page, err := pageParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid page parameter")
	}

	query, err := queries.NewListOrdersQuery(ctx.QueryParam("search"), page)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrdersPageResponse{
		Items:      orderSummariesToResponse(result.Items),
		TotalCount: result.TotalCount,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	})
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	details, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailsToResponse(details))
}

// CreateOrder handles POST /api/v1/orders. The order's owner is the
// authenticated customer, never a field of the request body.
func (s *Server) CreateOrder(ctx echo.Context) error {
	readerID, err := userFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request CreateOrderRequest
	if err = bindAndValidate(ctx, &request); err != nil {
		return respondBadRequest(ctx, "Invalid request body: "+err.Error())
	}

	carID, err := kernel.UUIDFromString(request.CarID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid car ID")
	}

	estimateDate, err := parseOptionalDate(request.EstimateDate)
	if err != nil {
		return respondBadRequest(ctx, "Invalid estimate date")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, readerID, carID, estimateDate)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// UpdateOrder handles PUT /api/v1/orders/:orderID. Only the order's owner may
// edit it; a successful edit advances the order to advance-paid.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	actorID, err := userFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}

	var request UpdateOrderRequest
	if err = bindAndValidate(ctx, &request); err != nil {
		return respondBadRequest(ctx, "Invalid request body: "+err.Error())
	}

	estimateDate, err := parseOptionalDate(request.EstimateDate)
	if err != nil {
		return respondBadRequest(ctx, "Invalid estimate date")
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, actorID, estimateDate)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: result.Message})
}

// CancelOrder handles DELETE /api/v1/orders/:orderID. Cancellation removes
// the order with its lines and reviews.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actorID, err := userFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: result.Message})
}

// AddOrderLine handles POST /api/v1/orders/:orderID/lines. The service price
// is snapshotted into the line at this moment.
func (s *Server) AddOrderLine(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}

	var request AddOrderLineRequest
	if err = bindAndValidate(ctx, &request); err != nil {
		return respondBadRequest(ctx, "Invalid request body: "+err.Error())
	}

	serviceID, err := kernel.UUIDFromString(request.ServiceID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid service ID")
	}

	lineID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderLineCommand(lineID, orderID, serviceID, request.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addOrderLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: lineID.String()})
}

// PostReview handles POST /api/v1/orders/:orderID/reviews. Submissions are
// throttled to one per minute per customer.
func (s *Server) PostReview(ctx echo.Context) error {
	ownerID, err := userFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order ID")
	}

	var request PostReviewRequest
	if err = bindAndValidate(ctx, &request); err != nil {
		return respondBadRequest(ctx, "Invalid request body: "+err.Error())
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewPostReviewCommand(reviewID, orderID, ownerID, request.Content, time.Now())
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.postReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: reviewID.String()})
}

// MyOrders handles GET /api/v1/my/orders with the authenticated customer's
// orders.
func (s *Server) MyOrders(ctx echo.Context) error {
	readerID, err := userFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListUserOrdersQuery(readerID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.listUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummariesToResponse(orders))
}

// ListCars handles GET /api/v1/cars with an optional page query parameter.
func (s *Server) ListCars(ctx echo.Context) error {
	page, err := pageParam(ctx)
	if err != nil {
		return respondBadRequest(ctx, "Invalid page parameter")
	}

	query, err := queries.NewListCarsQuery(page)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.listCarsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, carsPageToResponse(result))
}

// CreateCarModel handles POST /api/v1/car-models.
func (s *Server) CreateCarModel(ctx echo.Context) error {
	var request CreateCarModelRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return respondBadRequest(ctx, "Invalid request body: "+err.Error())
	}

	carModelID := kernel.NewUUID()
	cmd, err := commands.NewCreateCarModelCommand(carModelID, request.Make, request.Model, request.Engine, request.Year)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createCarModelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: carModelID.String()})
}

// CreateCar handles POST /api/v1/cars.
func (s *Server) CreateCar(ctx echo.Context) error {
	var request CreateCarRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return respondBadRequest(ctx, "Invalid request body: "+err.Error())
	}

	carModelID, err := kernel.UUIDFromString(request.CarModelID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid car model ID")
	}

	carID := kernel.NewUUID()
	cmd, err := commands.NewCreateCarCommand(
		carID, carModelID,
		request.PlateNumber, request.VIN, request.OwnerName, request.ImageURL, request.Description,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createCarHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: carID.String()})
}

// CreateService handles POST /api/v1/services.
func (s *Server) CreateService(ctx echo.Context) error {
	var request CreateServiceRequest
	if err := bindAndValidate(ctx, &request); err != nil {
		return respondBadRequest(ctx, "Invalid request body: "+err.Error())
	}

	price, err := kernel.MoneyFromString(request.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	serviceID := kernel.NewUUID()
	cmd, err := commands.NewCreateServiceCommand(serviceID, request.Name, price)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createServiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: serviceID.String()})
}

func bindAndValidate(ctx echo.Context, request any) error {
	if err := ctx.Bind(request); err != nil {
		return err
	}
	return ctx.Validate(request)
}

func userFromContext(ctx echo.Context) (kernel.UUID, error) {
	userID, ok := ctx.Get(UserIDContextKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, errs.NewNotAuthenticatedError("read user from request context")
	}
	return userID, nil
}

func pageParam(ctx echo.Context) (int, error) {
	raw := ctx.QueryParam("page")
	if raw == "" {
		return 1, nil
	}
	return strconv.Atoi(raw)
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
