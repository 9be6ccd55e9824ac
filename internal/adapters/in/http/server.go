// Package http wires the HTTP surface to the application's command and
// query handlers. Routes keep their legacy paths and statuses so existing
// clients continue to work unchanged.
package http

import (
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// customerIDHeader carries the acting customer's identity.
// A caller-set header is a weak trust model inherited from the legacy
// system; it is preserved as-is rather than silently strengthened.
const customerIDHeader = "CustomerId"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addServiceHandler        commands.AddServiceCommandHandler
	updateServiceHandler     commands.UpdateServiceCommandHandler
	deleteServiceHandler     commands.DeleteServiceCommandHandler
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	signupHandler            commands.SignupCommandHandler
	updateAddressHandler     commands.UpdateAddressCommandHandler

	// Query handlers
	getServicesHandler queries.GetServicesQueryHandler
	getServiceHandler  queries.GetServiceQueryHandler
	getOrdersHandler   queries.GetOrdersQueryHandler
	getOrderHandler    queries.GetOrderQueryHandler
	loginHandler       queries.LoginQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	addServiceHandler commands.AddServiceCommandHandler,
	updateServiceHandler commands.UpdateServiceCommandHandler,
	deleteServiceHandler commands.DeleteServiceCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	signupHandler commands.SignupCommandHandler,
	updateAddressHandler commands.UpdateAddressCommandHandler,
	getServicesHandler queries.GetServicesQueryHandler,
	getServiceHandler queries.GetServiceQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	loginHandler queries.LoginQueryHandler,
) *Server {
	return &Server{
		addServiceHandler:        addServiceHandler,
		updateServiceHandler:     updateServiceHandler,
		deleteServiceHandler:     deleteServiceHandler,
		placeOrderHandler:        placeOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		signupHandler:            signupHandler,
		updateAddressHandler:     updateAddressHandler,
		getServicesHandler:       getServicesHandler,
		getServiceHandler:        getServiceHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderHandler:          getOrderHandler,
		loginHandler:             loginHandler,
	}
}

// RegisterRoutes attaches the legacy route table to an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/api/Admin")
	admin.POST("/AddService", s.AddService)
	admin.GET("/Services", s.AdminGetServices)
	admin.GET("/Services/:id", s.GetService)
	admin.PUT("/Services/:id", s.UpdateService)
	admin.DELETE("/Services/:id", s.DeleteService)
	admin.GET("/Orders", s.AdminGetOrders)
	admin.PUT("/Orders/:id/Status", s.UpdateOrderStatus)

	customer := e.Group("/api/Customer")
	customer.GET("/Services", s.CustomerGetServices)
	customer.GET("/Services/:id", s.GetService)
	customer.POST("/PlaceOrder", s.PlaceOrder)
	customer.GET("/Orders", s.CustomerGetOrders)
	customer.GET("/Orders/:id", s.CustomerGetOrder)
	customer.GET("/Orders/:id/Status", s.CustomerGetOrderStatus)
	customer.POST("/Orders/:id/Cancel", s.CancelOrder)

	user := e.Group("/api/User")
	user.POST("/Signup", s.Signup)
	user.POST("/Login", s.Login)
	user.PATCH("/UpdateAddress", s.UpdateAddress)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// AddService handles POST /api/Admin/AddService.
func (s *Server) AddService(ctx echo.Context) error {
	var req ServiceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddServiceCommand(req.Name, req.MaterialType, req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	svc, err := s.addServiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, serviceResponseFromDomain(svc))
}

// AdminGetServices handles GET /api/Admin/Services.
// The administrative listing returns an empty list as 200.
func (s *Server) AdminGetServices(ctx echo.Context) error {
	services, err := s.getServicesHandler.Handle(
		ctx.Request().Context(), queries.NewGetServicesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servicesToResponse(services))
}

// CustomerGetServices handles GET /api/Customer/Services.
// The legacy customer listing reports an empty catalog as 404.
func (s *Server) CustomerGetServices(ctx echo.Context) error {
	services, err := s.getServicesHandler.Handle(
		ctx.Request().Context(), queries.NewGetServicesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	if len(services) == 0 {
		return notFound(ctx, "no services available")
	}

	return ctx.JSON(http.StatusOK, servicesToResponse(services))
}

// GetService handles GET /api/Admin/Services/:id and
// GET /api/Customer/Services/:id.
func (s *Server) GetService(ctx echo.Context) error {
	serviceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid service id")
	}

	query, err := queries.NewGetServiceQuery(serviceID)
	if err != nil {
		return respondError(ctx, err)
	}

	svc, err := s.getServiceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, serviceResponseFromReadModel(svc))
}

// UpdateService handles PUT /api/Admin/Services/:id.
func (s *Server) UpdateService(ctx echo.Context) error {
	serviceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid service id")
	}

	var req ServiceRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateServiceCommand(serviceID, req.Name, req.MaterialType, req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	svc, err := s.updateServiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, serviceResponseFromDomain(svc))
}

// DeleteService handles DELETE /api/Admin/Services/:id.
func (s *Server) DeleteService(ctx echo.Context) error {
	serviceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid service id")
	}

	cmd, err := commands.NewDeleteServiceCommand(serviceID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteServiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdminGetOrders handles GET /api/Admin/Orders.
// The legacy listing reports an empty order book as 404.
func (s *Server) AdminGetOrders(ctx echo.Context) error {
	orders, err := s.getOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	if len(orders) == 0 {
		return notFound(ctx, "no orders found")
	}

	return ctx.JSON(http.StatusOK, ordersToResponse(orders))
}

// UpdateOrderStatus handles PUT /api/Admin/Orders/:id/Status.
// Administrative updates may set any defined status, in any direction.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/Customer/PlaceOrder.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	customerID, err := customerIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req PlaceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	serviceID, err := kernel.UUIDFromString(req.ServiceID)
	if err != nil {
		return badRequest(ctx, "invalid service id")
	}

	cmd, err := commands.NewPlaceOrderCommand(
		customerID, serviceID, req.Quantity, req.ExpectedDeliveryDate, req.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(o.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromReadModel(created))
}

// CustomerGetOrders handles GET /api/Customer/Orders.
// The legacy listing reports an empty result as 404.
func (s *Server) CustomerGetOrders(ctx echo.Context) error {
	customerID, err := customerIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrdersQueryForCustomer(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	if len(orders) == 0 {
		return notFound(ctx, "no orders found")
	}

	return ctx.JSON(http.StatusOK, ordersToResponse(orders))
}

// CustomerGetOrder handles GET /api/Customer/Orders/:id.
func (s *Server) CustomerGetOrder(ctx echo.Context) error {
	resp, err := s.customerOrder(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromReadModel(resp))
}

// CustomerGetOrderStatus handles GET /api/Customer/Orders/:id/Status.
func (s *Server) CustomerGetOrderStatus(ctx echo.Context) error {
	resp, err := s.customerOrder(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		ID:     resp.ID.String(),
		Status: resp.Status.String(),
	})
}

// CancelOrder handles POST /api/Customer/Orders/:id/Cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	customerID, err := customerIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: "order cancelled"})
}

// Signup handles POST /api/User/Signup.
func (s *Server) Signup(ctx echo.Context) error {
	var req SignupRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSignupCommand(
		req.FirstName, req.LastName, req.Email, req.PhoneNumber, req.Address, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	u, err := s.signupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, userResponseFromDomain(u))
}

// Login handles POST /api/User/Login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	query, err := queries.NewLoginQuery(req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	u, err := s.loginHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userResponseFromReadModel(u))
}

// UpdateAddress handles PATCH /api/User/UpdateAddress.
func (s *Server) UpdateAddress(ctx echo.Context) error {
	customerID, err := customerIdentity(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateAddressRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateAddressCommand(customerID, req.NewAddress)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: "address updated"})
}

func (s *Server) customerOrder(ctx echo.Context) (queries.OrderResponse, error) {
	customerID, err := customerIdentity(ctx)
	if err != nil {
		return queries.OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return queries.OrderResponse{}, errs.NewValueIsInvalidError("order id")
	}

	query, err := queries.NewGetOrderQueryForCustomer(orderID, customerID)
	if err != nil {
		return queries.OrderResponse{}, err
	}

	return s.getOrderHandler.Handle(ctx.Request().Context(), query)
}

// customerIdentity resolves the acting customer from the identity header.
// A missing or unparseable value is an authorization failure.
func customerIdentity(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(customerIDHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewUnauthorizedError("missing " + customerIDHeader + " header")
	}

	customerID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewUnauthorizedErrorWithCause(
			"malformed "+customerIDHeader+" header", err)
	}

	return customerID, nil
}

func servicesToResponse(services []queries.ServiceResponse) []ServiceResponse {
	response := make([]ServiceResponse, len(services))
	for i, svc := range services {
		response[i] = serviceResponseFromReadModel(svc)
	}
	return response
}

func ordersToResponse(orders []queries.OrderResponse) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderResponseFromReadModel(o)
	}
	return response
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{
		Code:    http.StatusNotFound,
		Message: message,
	})
}
