// Package http is the inbound HTTP adapter. It translates echo requests
// into commands and queries and maps domain errors onto status codes.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// ErrorResponse is the JSON error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CredentialsReader loads accounts by email for login.
type CredentialsReader interface {
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}

// Server wires the command and query handlers into echo routes.
type Server struct {
	tokens      *TokenService
	credentials CredentialsReader

	registerAccountHandler     commands.RegisterAccountCommandHandler
	createRestaurantHandler    commands.CreateRestaurantCommandHandler
	addMenuItemHandler         commands.AddMenuItemCommandHandler
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderStatusHandler   commands.UpdateOrderStatusCommandHandler
	assignRiderHandler         commands.AssignRiderCommandHandler
	updateRiderLocationHandler commands.UpdateRiderLocationCommandHandler

	listRestaurantsHandler   queries.ListRestaurantsQueryHandler
	getRestaurantMenuHandler queries.GetRestaurantMenuQueryHandler
	listOrdersHandler        queries.ListOrdersForActorQueryHandler
	listPendingOrdersHandler queries.ListPendingOrdersQueryHandler
	getOrderTrackingHandler  queries.GetOrderTrackingQueryHandler
}

// NewServer creates the HTTP server over the application's handlers.
func NewServer(
	tokens *TokenService,
	credentials CredentialsReader,
	registerAccountHandler commands.RegisterAccountCommandHandler,
	createRestaurantHandler commands.CreateRestaurantCommandHandler,
	addMenuItemHandler commands.AddMenuItemCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	updateRiderLocationHandler commands.UpdateRiderLocationCommandHandler,
	listRestaurantsHandler queries.ListRestaurantsQueryHandler,
	getRestaurantMenuHandler queries.GetRestaurantMenuQueryHandler,
	listOrdersHandler queries.ListOrdersForActorQueryHandler,
	listPendingOrdersHandler queries.ListPendingOrdersQueryHandler,
	getOrderTrackingHandler queries.GetOrderTrackingQueryHandler,
) *Server {
	return &Server{
		tokens:                     tokens,
		credentials:                credentials,
		registerAccountHandler:     registerAccountHandler,
		createRestaurantHandler:    createRestaurantHandler,
		addMenuItemHandler:         addMenuItemHandler,
		createOrderHandler:         createOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		assignRiderHandler:         assignRiderHandler,
		updateRiderLocationHandler: updateRiderLocationHandler,
		listRestaurantsHandler:     listRestaurantsHandler,
		getRestaurantMenuHandler:   getRestaurantMenuHandler,
		listOrdersHandler:          listOrdersHandler,
		listPendingOrdersHandler:   listPendingOrdersHandler,
		getOrderTrackingHandler:    getOrderTrackingHandler,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)

	api.GET("/restaurants", s.ListRestaurants)
	api.GET("/restaurants/:id/menu", s.GetRestaurantMenu)

	authed := api.Group("", s.tokens.Authenticate)
	authed.POST("/restaurants", s.CreateRestaurant)
	authed.POST("/restaurants/:id/menu", s.AddMenuItem)
	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders", s.ListOrders)
	authed.GET("/orders/pending", s.ListPendingOrders)
	authed.POST("/orders/:id/status", s.UpdateOrderStatus)
	authed.POST("/orders/:id/rider", s.AssignRider)
	authed.GET("/orders/:id/tracking", s.GetOrderTracking)
	authed.PUT("/riders/location", s.UpdateRiderLocation)
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type authResponse struct {
	AccountID string `json:"account_id"`
	Token     string `json:"token"`
}

// Register handles POST /api/v1/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewRegisterAccountCommand(
		accountID, req.Email, req.Password, req.FullName, req.Phone, role,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.registerAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrEmailAlreadyRegistered) {
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: err.Error(),
			})
		}
		return s.mapError(ctx, err)
	}

	token, err := s.tokens.Issue(accountID, role)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, authResponse{
		AccountID: accountID.String(),
		Token:     token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	aggregate, err := s.credentials.GetByEmail(ctx.Request().Context(), req.Email)
	if err != nil {
		return unauthorized(ctx)
	}

	err = bcrypt.CompareHashAndPassword([]byte(aggregate.PasswordHash()), []byte(req.Password))
	if err != nil {
		return unauthorized(ctx)
	}

	token, err := s.tokens.Issue(aggregate.ID(), aggregate.Role())
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, authResponse{
		AccountID: aggregate.ID().String(),
		Token:     token,
	})
}

type restaurantResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Cuisine string `json:"cuisine"`
	IsOpen  bool   `json:"is_open"`
}

// ListRestaurants handles GET /api/v1/restaurants.
func (s *Server) ListRestaurants(ctx echo.Context) error {
	result, err := s.listRestaurantsHandler.Handle(
		ctx.Request().Context(), queries.NewListRestaurantsQuery(),
	)
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]restaurantResponse, len(result))
	for i, r := range result {
		response[i] = restaurantResponse{
			ID:      r.ID.String(),
			Name:    r.Name,
			Address: r.Address,
			Cuisine: r.Cuisine.String(),
			IsOpen:  r.IsOpen,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type menuItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	IsAvailable bool   `json:"is_available"`
}

// GetRestaurantMenu handles GET /api/v1/restaurants/:id/menu.
func (s *Server) GetRestaurantMenu(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	query, err := queries.NewGetRestaurantMenuQuery(restaurantID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getRestaurantMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]menuItemResponse, len(result))
	for i, item := range result {
		response[i] = menuItemResponse{
			ID:          item.ID.String(),
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price.StringFixed(2),
			Category:    item.Category.String(),
			IsAvailable: item.IsAvailable,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type createRestaurantRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Cuisine     string `json:"cuisine"`
}

// CreateRestaurant handles POST /api/v1/restaurants. The authenticated
// account becomes the owner.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	principal, ok := currentPrincipal(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req createRestaurantRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cuisine, err := restaurant.CuisineFromString(req.Cuisine)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewCreateRestaurantCommand(
		restaurantID, principal.AccountID,
		req.Name, req.Description, req.Address, req.Phone, cuisine,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createRestaurantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrOwnerAlreadyHasRestaurant) {
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: err.Error(),
			})
		}
		if errors.Is(err, commands.ErrOwnerIsNotRestaurantOwner) {
			return forbidden(ctx, err)
		}
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": restaurantID.String()})
}

type addMenuItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
}

// AddMenuItem handles POST /api/v1/restaurants/:id/menu.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	principal, ok := currentPrincipal(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	var req addMenuItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoneyFromString(req.Price)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	category, err := restaurant.CategoryFromString(req.Category)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	menuItemID := kernel.NewUUID()
	cmd, err := commands.NewAddMenuItemCommand(
		menuItemID, restaurantID, principal.AccountID,
		req.Name, req.Description, price, category,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.addMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, commands.ErrActorDoesNotOwnRestaurant) {
			return forbidden(ctx, err)
		}
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": menuItemID.String()})
}

type createOrderRequest struct {
	RestaurantID    string `json:"restaurant_id"`
	DeliveryAddress string `json:"delivery_address"`
	Items           []struct {
		MenuItemID string `json:"menu_item_id"`
		Quantity   int    `json:"quantity"`
	} `json:"items"`
}

// CreateOrder handles POST /api/v1/orders. Only customers place orders; the
// authenticated account becomes the order's customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, ok := currentPrincipal(ctx)
	if !ok {
		return unauthorized(ctx)
	}
	if principal.Role != account.RoleCustomer {
		return forbidden(ctx,
			services.NewPermissionDeniedError(principal.Role, "place an order"))
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	items := make([]commands.OrderItemSpec, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, idErr := kernel.UUIDFromString(item.MenuItemID)
		if idErr != nil {
			return badRequest(ctx, "invalid menu item id")
		}
		items = append(items, commands.OrderItemSpec{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, principal.AccountID, restaurantID, req.DeliveryAddress, items,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

type orderSummaryResponse struct {
	ID             string `json:"id"`
	RestaurantID   string `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	Status         string `json:"status"`
	TotalAmount    string `json:"total_amount"`
	CreatedAt      string `json:"created_at"`
}

// ListOrders handles GET /api/v1/orders. An optional ?status= parameter
// narrows the list to one status.
func (s *Server) ListOrders(ctx echo.Context) error {
	principal, ok := currentPrincipal(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var query queries.ListOrdersForActorQuery
	var err error
	if rawStatus := ctx.QueryParam("status"); rawStatus != "" {
		status, statusErr := order.StatusFromString(rawStatus)
		if statusErr != nil {
			return badRequest(ctx, statusErr.Error())
		}
		query, err = queries.NewListOrdersForActorQueryWithStatus(
			principal.AccountID, principal.Role, status)
	} else {
		query, err = queries.NewListOrdersForActorQuery(principal.AccountID, principal.Role)
	}
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]orderSummaryResponse, len(result))
	for i, o := range result {
		response[i] = orderSummaryResponse{
			ID:             o.ID.String(),
			RestaurantID:   o.RestaurantID.String(),
			RestaurantName: o.RestaurantName,
			Status:         o.Status.String(),
			TotalAmount:    o.TotalAmount.StringFixed(2),
			CreatedAt:      o.CreatedAt.Format(timeFormat),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type pendingOrderResponse struct {
	ID              string `json:"id"`
	RestaurantID    string `json:"restaurant_id"`
	RestaurantName  string `json:"restaurant_name"`
	DeliveryAddress string `json:"delivery_address"`
	TotalAmount     string `json:"total_amount"`
	CreatedAt       string `json:"created_at"`
}

// ListPendingOrders handles GET /api/v1/orders/pending. Owners get their
// restaurant's PENDING orders, riders get unclaimed READY_FOR_PICKUP orders.
func (s *Server) ListPendingOrders(ctx echo.Context) error {
	principal, ok := currentPrincipal(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewListPendingOrdersQuery(principal.AccountID, principal.Role)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.listPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]pendingOrderResponse, len(result))
	for i, o := range result {
		response[i] = pendingOrderResponse{
			ID:              o.ID.String(),
			RestaurantID:    o.RestaurantID.String(),
			RestaurantName:  o.RestaurantName,
			DeliveryAddress: o.DeliveryAddress,
			TotalAmount:     o.TotalAmount.StringFixed(2),
			CreatedAt:       o.CreatedAt.Format(timeFormat),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	principal, ok := currentPrincipal(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req updateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	requested, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		orderID, principal.AccountID, principal.Role, requested, req.Reason,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type assignRiderRequest struct {
	RiderID string `json:"rider_id"`
}

// AssignRider handles POST /api/v1/orders/:id/rider.
func (s *Server) AssignRider(ctx echo.Context) error {
	principal, ok := currentPrincipal(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req assignRiderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return badRequest(ctx, "invalid rider id")
	}

	cmd, err := commands.NewAssignRiderCommand(
		orderID, riderID, principal.AccountID, principal.Role,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assignRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type trackingRiderResponse struct {
	RiderID    string  `json:"rider_id"`
	FullName   string  `json:"full_name"`
	Latitude   *string `json:"latitude,omitempty"`
	Longitude  *string `json:"longitude,omitempty"`
	LocationAt *string `json:"location_at,omitempty"`
}

type trackingResponse struct {
	OrderID            string                 `json:"order_id"`
	Status             string                 `json:"status"`
	TotalAmount        string                 `json:"total_amount"`
	DeliveryAddress    string                 `json:"delivery_address"`
	RestaurantName     string                 `json:"restaurant_name"`
	RestaurantAddress  string                 `json:"restaurant_address"`
	CancellationReason string                 `json:"cancellation_reason,omitempty"`
	CreatedAt          string                 `json:"created_at"`
	PreparedAt         *string                `json:"prepared_at,omitempty"`
	PickedUpAt         *string                `json:"picked_up_at,omitempty"`
	DeliveredAt        *string                `json:"delivered_at,omitempty"`
	CancelledAt        *string                `json:"cancelled_at,omitempty"`
	Rider              *trackingRiderResponse `json:"rider,omitempty"`
}

// GetOrderTracking handles GET /api/v1/orders/:id/tracking.
func (s *Server) GetOrderTracking(ctx echo.Context) error {
	principal, ok := currentPrincipal(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID, principal.AccountID, principal.Role)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getOrderTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := trackingResponse{
		OrderID:            result.OrderID.String(),
		Status:             result.Status.String(),
		TotalAmount:        result.TotalAmount.StringFixed(2),
		DeliveryAddress:    result.DeliveryAddress,
		RestaurantName:     result.RestaurantName,
		RestaurantAddress:  result.RestaurantAddress,
		CancellationReason: result.CancellationReason,
		CreatedAt:          result.CreatedAt.Format(timeFormat),
		PreparedAt:         formatTimePtr(result.PreparedAt),
		PickedUpAt:         formatTimePtr(result.PickedUpAt),
		DeliveredAt:        formatTimePtr(result.DeliveredAt),
		CancelledAt:        formatTimePtr(result.CancelledAt),
	}

	if result.Rider != nil {
		rider := &trackingRiderResponse{
			RiderID:  result.Rider.RiderID.String(),
			FullName: result.Rider.FullName,
		}
		if result.Rider.Latitude != nil && result.Rider.Longitude != nil {
			lat := result.Rider.Latitude.StringFixed(6)
			lng := result.Rider.Longitude.StringFixed(6)
			rider.Latitude = &lat
			rider.Longitude = &lng
		}
		if result.Rider.LocationAt != nil {
			at := result.Rider.LocationAt.Format(timeFormat)
			rider.LocationAt = &at
		}
		response.Rider = rider
	}

	return ctx.JSON(http.StatusOK, response)
}

type updateRiderLocationRequest struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// UpdateRiderLocation handles PUT /api/v1/riders/location. Riders report
// their own position; the rider id comes from the token.
func (s *Server) UpdateRiderLocation(ctx echo.Context) error {
	principal, ok := currentPrincipal(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req updateRiderLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	latitude, err := decimal.NewFromString(req.Latitude)
	if err != nil {
		return badRequest(ctx, "invalid latitude")
	}
	longitude, err := decimal.NewFromString(req.Longitude)
	if err != nil {
		return badRequest(ctx, "invalid longitude")
	}

	cmd, err := commands.NewUpdateRiderLocationCommand(
		principal.AccountID, principal.Role, latitude, longitude,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateRiderLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

const timeFormat = time.RFC3339

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(timeFormat)
	return &formatted
}

// mapError translates domain and application errors to status codes.
// Authorization failures come before not-found so a denied caller cannot
// probe which orders exist.
func (s *Server) mapError(ctx echo.Context, err error) error {
	var invalidTransition *order.InvalidTransitionError
	var itemMismatch *restaurant.MenuItemRestaurantMismatchError
	var itemUnavailable *restaurant.MenuItemNotAvailableError

	switch {
	case errors.Is(err, services.ErrPermissionDenied):
		return forbidden(ctx, err)
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.As(err, &invalidTransition),
		errors.As(err, &itemMismatch),
		errors.As(err, &itemUnavailable),
		errors.Is(err, order.ErrCancellationReasonIsRequired),
		errors.Is(err, commands.ErrRestaurantIsNotActive),
		errors.Is(err, commands.ErrRestaurantIsClosed),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func forbidden(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusForbidden, ErrorResponse{
		Code:    http.StatusForbidden,
		Message: err.Error(),
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "unauthorized",
	})
}
