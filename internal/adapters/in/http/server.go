package http

import (
	"log/slog"
	"net/http"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	addMenuItemHandler    commands.AddMenuItemCommandHandler
	removeItemHandler     commands.RemoveItemCommandHandler
	setDiscountHandler    commands.SetDiscountCommandHandler
	changeStatusHandler   commands.ChangeStatusCommandHandler
	calculateTotalHandler commands.CalculateTotalCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getMenuHandler         queries.GetMenuQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler

	logger *slog.Logger
}

// Handlers groups the dependencies of NewServer.
type Handlers struct {
	CreateOrder    commands.CreateOrderCommandHandler
	AddMenuItem    commands.AddMenuItemCommandHandler
	RemoveItem     commands.RemoveItemCommandHandler
	SetDiscount    commands.SetDiscountCommandHandler
	ChangeStatus   commands.ChangeStatusCommandHandler
	CalculateTotal commands.CalculateTotalCommandHandler

	GetOrder        queries.GetOrderQueryHandler
	GetActiveOrders queries.GetActiveOrdersQueryHandler
	GetMenu         queries.GetMenuQueryHandler
	GetOrderHistory queries.GetOrderHistoryQueryHandler
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		createOrderHandler:     h.CreateOrder,
		addMenuItemHandler:     h.AddMenuItem,
		removeItemHandler:      h.RemoveItem,
		setDiscountHandler:     h.SetDiscount,
		changeStatusHandler:    h.ChangeStatus,
		calculateTotalHandler:  h.CalculateTotal,
		getOrderHandler:        h.GetOrder,
		getActiveOrdersHandler: h.GetActiveOrders,
		getMenuHandler:         h.GetMenu,
		getOrderHistoryHandler: h.GetOrderHistory,
		logger:                 logger.With("component", "HTTPServer"),
	}
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	menu, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Menu{
		Beverages: toMenuItems(menu.Beverages),
		Desserts:  toMenuItems(menu.Desserts),
		AddOns:    toMenuItems(menu.AddOns),
	})
}

// CreateOrder handles POST /api/v1/orders and returns the new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	id, err := s.createOrderHandler.Handle(ctx.Request().Context(), commands.NewCreateOrderCommand())
	if err != nil {
		if id == 0 {
			return writeError(ctx, err)
		}
		// The order exists; a subscriber failed after it was stored.
		s.logger.Warn("order created with notification failure", "orderId", id, "error", err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, id)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrder(o))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id servers.OrderId) error {
	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// AddOrderItem handles POST /api/v1/orders/{id}/items.
func (s *Server) AddOrderItem(ctx echo.Context, id servers.OrderId) error {
	var body servers.AddOrderItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var addOns []string
	if body.AddOns != nil {
		addOns = *body.AddOns
	}

	cmd, err := commands.NewAddMenuItemCommand(id, body.Item, addOns)
	if err != nil {
		return badRequest(ctx, "Invalid order item: "+err.Error())
	}

	line, err := s.addMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	names := make([]string, 0, len(line.AddOns()))
	for _, addOn := range line.AddOns() {
		names = append(names, addOn.Name())
	}
	return ctx.JSON(http.StatusCreated, servers.OrderLine{
		Id:     line.ID().String(),
		Item:   line.Item().Name(),
		AddOns: names,
		Name:   line.DisplayName(),
		Price:  line.Price(),
	})
}

// RemoveOrderItem handles DELETE /api/v1/orders/{id}/items/{index}.
func (s *Server) RemoveOrderItem(ctx echo.Context, id servers.OrderId, index int) error {
	cmd, err := commands.NewRemoveItemCommand(id, index)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetDiscount handles PUT /api/v1/orders/{id}/discount.
func (s *Server) SetDiscount(ctx echo.Context, id servers.OrderId) error {
	var body servers.SetDiscountJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetDiscountCommand(id, body.Percent, body.Label)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.setDiscountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ChangeStatus handles PUT /api/v1/orders/{id}/status. The status is the
// English name or the display label.
func (s *Server) ChangeStatus(ctx echo.Context, id servers.OrderId) error {
	var body servers.ChangeStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeStatusCommand(id, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderTotal handles GET /api/v1/orders/{id}/total. The total is
// recomputed and cached on the order.
func (s *Server) GetOrderTotal(ctx echo.Context, id servers.OrderId) error {
	cmd, err := commands.NewCalculateTotalCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.calculateTotalHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Total{Total: result.Total, DiscountPercent: result.DiscountPercent})
}

// GetOrderHistory handles GET /api/v1/orders/{id}/history.
func (s *Server) GetOrderHistory(ctx echo.Context, id servers.OrderId) error {
	query, err := queries.NewGetOrderHistoryQuery(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entries, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		response = append(response, toHistoryEntry(e))
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) respondWithOrder(ctx echo.Context, code int, id int) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(code, toOrder(o))
}

func toMenuItems(items []queries.MenuItemResponse) []servers.MenuItem {
	result := make([]servers.MenuItem, 0, len(items))
	for _, item := range items {
		result = append(result, servers.MenuItem{
			Name:     item.Name,
			Category: item.Category.String(),
			Price:    item.Price,
		})
	}
	return result
}

func toOrder(o queries.OrderResponse) servers.Order {
	lines := make([]servers.OrderLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, servers.OrderLine{
			Id:     l.ID,
			Item:   l.Item,
			AddOns: l.AddOns,
			Name:   l.Name,
			Price:  l.Price,
		})
	}

	return servers.Order{
		Id:              o.ID,
		Status:          o.Status.String(),
		StatusLabel:     o.Status.Label(),
		Lines:           lines,
		DiscountPercent: o.DiscountPercent,
		DiscountLabel:   o.DiscountLabel,
		Total:           o.Total,
		Subtotal:        o.Subtotal,
	}
}

func toHistoryEntry(e ports.JournalEntry) servers.HistoryEntry {
	return servers.HistoryEntry{
		EventId:         e.EventID,
		Event:           e.Event,
		Status:          e.Status,
		StatusLabel:     e.StatusLabel,
		Lines:           e.Lines,
		Total:           e.Total,
		DiscountPercent: e.DiscountPercent,
		OccurredAt:      e.OccurredAt,
	}
}
