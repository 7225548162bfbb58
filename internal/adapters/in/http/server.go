// Package http exposes the lab workflow over a REST API. Handlers parse
// and validate input, delegate to command and query handlers, and map
// domain error families to HTTP statuses.
package http

import (
	"net/http"
	"strconv"

	"pathlab/internal/core/application/usecases/commands"
	"pathlab/internal/core/application/usecases/queries"
	"pathlab/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createTestHandler      commands.CreateTestCommandHandler
	updateTestHandler      commands.UpdateTestCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderStatusCommandHandler
	createResultHandler    commands.CreateResultCommandHandler
	updateResultHandler    commands.UpdateResultCommandHandler
	completeResultHandler  commands.CompleteResultCommandHandler

	// Query handlers
	getAllTestsHandler  queries.GetAllTestsQueryHandler
	searchTestsHandler  queries.SearchTestsQueryHandler
	getTestByIDHandler  queries.GetTestByIDQueryHandler
	getOrdersHandler    queries.GetOrdersQueryHandler
	getOrderHandler     queries.GetOrderQueryHandler
	getResultsHandler   queries.GetResultsQueryHandler
	getDashboardHandler queries.GetDashboardStatsQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createTestHandler commands.CreateTestCommandHandler,
	updateTestHandler commands.UpdateTestCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderStatusCommandHandler,
	createResultHandler commands.CreateResultCommandHandler,
	updateResultHandler commands.UpdateResultCommandHandler,
	completeResultHandler commands.CompleteResultCommandHandler,
	getAllTestsHandler queries.GetAllTestsQueryHandler,
	searchTestsHandler queries.SearchTestsQueryHandler,
	getTestByIDHandler queries.GetTestByIDQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getResultsHandler queries.GetResultsQueryHandler,
	getDashboardHandler queries.GetDashboardStatsQueryHandler,
) *Server {
	return &Server{
		createTestHandler:      createTestHandler,
		updateTestHandler:      updateTestHandler,
		createOrderHandler:     createOrderHandler,
		transitionOrderHandler: transitionOrderHandler,
		createResultHandler:    createResultHandler,
		updateResultHandler:    updateResultHandler,
		completeResultHandler:  completeResultHandler,
		getAllTestsHandler:     getAllTestsHandler,
		searchTestsHandler:     searchTestsHandler,
		getTestByIDHandler:     getTestByIDHandler,
		getOrdersHandler:       getOrdersHandler,
		getOrderHandler:        getOrderHandler,
		getResultsHandler:      getResultsHandler,
		getDashboardHandler:    getDashboardHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.GET("/tests", s.GetTests)
	api.POST("/tests", s.CreateTest)
	api.GET("/tests/:testId", s.GetTest)
	api.PATCH("/tests/:testId", s.UpdateTest)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/status", s.TransitionOrder)

	api.GET("/results", s.GetResults)
	api.POST("/results", s.CreateResult)
	api.PATCH("/results/:resultId", s.UpdateResult)
	api.POST("/results/:resultId/complete", s.CompleteResult)

	api.GET("/dashboard/stats", s.GetDashboard)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetTests handles GET /api/v1/tests. With a "q" parameter it searches the
// catalog by name or code; otherwise it lists the catalog, restricted to
// active tests when "activeOnly" is truthy.
func (s *Server) GetTests(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if term := ctx.QueryParam("q"); term != "" {
		tests, err := s.searchTestsHandler.Handle(reqCtx, queries.NewSearchTestsQuery(term))
		if err != nil {
			return writeError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, testViewsFromResponses(tests))
	}

	activeOnly, _ := strconv.ParseBool(ctx.QueryParam("activeOnly"))
	tests, err := s.getAllTestsHandler.Handle(reqCtx, queries.NewGetAllTestsQuery(activeOnly))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, testViewsFromResponses(tests))
}

func testViewsFromResponses(tests []queries.TestResponse) []TestView {
	views := make([]TestView, len(tests))
	for i, t := range tests {
		views[i] = testViewFromResponse(t)
	}
	return views
}

// CreateTest handles POST /api/v1/tests.
func (s *Server) CreateTest(ctx echo.Context) error {
	var req CreateTestRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewPriceFromString(req.Price)
	if err != nil {
		return writeError(ctx, err)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	cmd, err := commands.NewCreateTestCommand(req.Name, req.Code, req.SampleType, req.NormalRange, price, active)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createTestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, testViewFromAggregate(created))
}

// GetTest handles GET /api/v1/tests/:testId.
func (s *Server) GetTest(ctx echo.Context) error {
	testID, err := kernel.UUIDFromString(ctx.Param("testId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTestByIDQuery(testID)
	if err != nil {
		return writeError(ctx, err)
	}

	test, err := s.getTestByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, testViewFromResponse(test))
}

// UpdateTest handles PATCH /api/v1/tests/:testId.
func (s *Server) UpdateTest(ctx echo.Context) error {
	testID, err := kernel.UUIDFromString(ctx.Param("testId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateTestRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	var price *kernel.Price
	if req.Price != nil {
		parsed, priceErr := kernel.NewPriceFromString(*req.Price)
		if priceErr != nil {
			return writeError(ctx, priceErr)
		}
		price = &parsed
	}

	cmd, err := commands.NewUpdateTestCommand(testID, req.Name, price, req.NormalRange, req.Active)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateTestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, testViewFromAggregate(updated))
}

// GetOrders handles GET /api/v1/orders. Supports "status", "q" (patient
// name or order code), and "today" filters.
func (s *Server) GetOrders(ctx echo.Context) error {
	todayOnly, _ := strconv.ParseBool(ctx.QueryParam("today"))

	query, err := queries.NewGetOrdersQuery(ctx.QueryParam("status"), ctx.QueryParam("q"), todayOnly)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	views := make([]OrderView, len(orders))
	for i, o := range orders {
		views[i] = orderViewFromResponse(o)
	}
	return ctx.JSON(http.StatusOK, views)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	testID, err := kernel.UUIDFromString(req.TestID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(req.PatientName, req.PatientPhone, testID, req.OrderDate)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderViewFromAggregate(created))
}

// GetOrder handles GET /api/v1/orders/:orderId. The path parameter may be
// the order's UUID or its code ("LTO-1001").
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderViewFromResponse(o))
}

// TransitionOrder handles POST /api/v1/orders/:orderId/status.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req TransitionOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderViewFromAggregate(updated))
}

// GetResults handles GET /api/v1/results. Supports "orderId" and
// "completedOnly" filters.
func (s *Server) GetResults(ctx echo.Context) error {
	var orderID *kernel.UUID
	if raw := ctx.QueryParam("orderId"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		orderID = &parsed
	}

	completedOnly, _ := strconv.ParseBool(ctx.QueryParam("completedOnly"))

	query, err := queries.NewGetResultsQuery(orderID, completedOnly)
	if err != nil {
		return writeError(ctx, err)
	}

	results, err := s.getResultsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	views := make([]ResultView, len(results))
	for i, r := range results {
		views[i] = resultViewFromResponse(r)
	}
	return ctx.JSON(http.StatusOK, views)
}

// CreateResult handles POST /api/v1/results.
func (s *Server) CreateResult(ctx echo.Context) error {
	var req CreateResultRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateResultCommand(orderID, req.Value, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createResultHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, resultViewFromAggregate(created))
}

// UpdateResult handles PATCH /api/v1/results/:resultId.
func (s *Server) UpdateResult(ctx echo.Context) error {
	resultID, err := kernel.UUIDFromString(ctx.Param("resultId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateResultRequest
	if err = ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateResultCommand(resultID, req.Value, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateResultHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resultViewFromAggregate(updated))
}

// CompleteResult handles POST /api/v1/results/:resultId/complete.
func (s *Server) CompleteResult(ctx echo.Context) error {
	resultID, err := kernel.UUIDFromString(ctx.Param("resultId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCompleteResultCommand(resultID)
	if err != nil {
		return writeError(ctx, err)
	}

	completed, err := s.completeResultHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resultViewFromAggregate(completed))
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	stats, err := s.getDashboardHandler.Handle(ctx.Request().Context(), queries.NewGetDashboardStatsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardView(stats))
}
