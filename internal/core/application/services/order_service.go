package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/domain/model/order"
	domainservices "coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is the cause attached when an order id is unknown.
var ErrOrderNotFound = errors.New("order not found")

// OrderService manages the lifecycle of every order in the shop.
type OrderService struct {
	mu sync.Mutex

	repository  ports.OrderRepository
	catalog     ports.MenuCatalog
	composer    domainservices.LineComposer
	subscribers []order.Subscriber

	logger *slog.Logger
}

// NewOrderService wires the service. subscribers become the default set
// attached to every order created afterwards.
//
// Example:
//
//	svc, err := services.NewOrderService(repo, catalog, logger,
//	    notifiers.NewKitchenDisplay(os.Stdout),
//	    notifiers.NewCustomerNotifier(os.Stdout),
//	)
func NewOrderService(
	repository ports.OrderRepository,
	catalog ports.MenuCatalog,
	logger *slog.Logger,
	subscribers ...order.Subscriber,
) (*OrderService, error) {
	if repository == nil {
		return nil, errs.NewValueIsRequiredError("repository")
	}
	if catalog == nil {
		return nil, errs.NewValueIsRequiredError("catalog")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &OrderService{
		repository: repository,
		catalog:    catalog,
		composer:   domainservices.NewLineComposer(),
		logger:     logger.With("component", "OrderService"),
	}
	if err := s.setSubscribers(subscribers); err != nil {
		return nil, err
	}
	return s, nil
}

// CreateOrder allocates the next id, attaches the current default subscribers,
// stores the order and emits order.EventCreated.
//
// The order is stored before subscribers run. When one of them fails the
// stored order is returned together with the error.
func (s *OrderService) CreateOrder(ctx context.Context) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.repository.NextID(ctx)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(id)
	if err != nil {
		return nil, err
	}
	for _, sub := range s.subscribers {
		if err = o.Subscribe(sub); err != nil {
			return nil, err
		}
	}

	if err = s.repository.Add(ctx, o); err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "order created", "order_id", id, "subscribers", len(s.subscribers))

	if err = o.Emit(ctx, order.EventCreated); err != nil {
		return o, err
	}
	return o, nil
}

// GetOrder returns the live aggregate. Callers running concurrently with other
// service calls should use ViewOrder instead.
func (s *OrderService) GetOrder(ctx context.Context, id int) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.getOrder(ctx, id)
}

// ViewOrder returns a copy of the order taken under the service lock.
func (s *OrderService) ViewOrder(ctx context.Context, id int) (OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.getOrder(ctx, id)
	if err != nil {
		return OrderView{}, err
	}
	return newOrderView(o), nil
}

// ListActiveOrders returns every order whose status is not Paid, in creation
// order.
func (s *OrderService) ListActiveOrders(ctx context.Context) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listActive(ctx)
}

// ViewActiveOrders is ListActiveOrders returning copies.
func (s *OrderService) ViewActiveOrders(ctx context.Context) ([]OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, err := s.listActive(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]OrderView, 0, len(active))
	for _, o := range active {
		views = append(views, newOrderView(o))
	}
	return views, nil
}

// AddMenuItem resolves the order, then the menu names, applies the
// composition rules and appends the resulting line.
//
// Returns:
//   - order.Line: the line that was appended
//   - error: ErrOrderNotFound, menu.ErrItemNotFound or order.ErrInvalidAddOn,
//     checked in that order; the order is unchanged on error
func (s *OrderService) AddMenuItem(
	ctx context.Context,
	orderID int,
	itemName string,
	addOnNames []string,
) (order.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.getOrder(ctx, orderID)
	if err != nil {
		return order.Line{}, err
	}

	line, err := s.composer.Compose(s.catalog, itemName, addOnNames)
	if err != nil {
		return order.Line{}, err
	}
	if err = o.AddLine(line); err != nil {
		return order.Line{}, err
	}

	s.logger.DebugContext(ctx, "line added",
		"order_id", orderID, "line", line.DisplayName(), "price", line.Price().String())
	return line, nil
}

// RemoveItem removes the line at index; order.ErrIndexOutOfRange otherwise.
func (s *OrderService) RemoveItem(ctx context.Context, orderID, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.getOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if err = o.RemoveLine(index); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "line removed", "order_id", orderID, "index", index)
	return nil
}

func (s *OrderService) SetDiscount(ctx context.Context, orderID int, percent decimal.Decimal, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.getOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if err = o.SetDiscount(percent, label); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "discount set", "order_id", orderID, "percent", percent.String(), "label", label)
	return nil
}

// CalculateTotal recomputes the total from the current lines and discount,
// stores it in the order and returns it unrounded.
func (s *OrderService) CalculateTotal(ctx context.Context, orderID int) (decimal.Decimal, error) {
	view, err := s.CalculateTotalView(ctx, orderID)
	if err != nil {
		return decimal.Zero, err
	}
	return view.CachedTotal, nil
}

// CalculateTotalView recomputes the total like CalculateTotal and returns a
// view taken under the same lock, so the total and the discount match.
func (s *OrderService) CalculateTotalView(ctx context.Context, orderID int) (OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.getOrder(ctx, orderID)
	if err != nil {
		return OrderView{}, err
	}
	total := o.CalculateTotal()

	s.logger.DebugContext(ctx, "total calculated", "order_id", orderID, "total", total.StringFixed(2))
	return newOrderView(o), nil
}

// ChangeStatus moves the order to status and notifies its subscribers. A
// subscriber error is returned but the new status is kept.
func (s *OrderService) ChangeStatus(ctx context.Context, orderID int, status order.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.getOrder(ctx, orderID)
	if err != nil {
		return err
	}
	previous := o.Status()
	if err = o.SetStatus(ctx, status); err != nil {
		if o.Status() == status {
			s.logger.WarnContext(ctx, "status changed with failed notification",
				"order_id", orderID, "status", status.String(), "error", err)
		}
		return err
	}

	s.logger.DebugContext(ctx, "status changed",
		"order_id", orderID, "from", previous.String(), "to", status.String())
	return nil
}

// SetSubscribers replaces the default subscriber set for orders created from
// now on. Existing orders keep the subscribers they were created with.
func (s *OrderService) SetSubscribers(subscribers ...order.Subscriber) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setSubscribers(subscribers)
}

// ListOrderItems returns the display names of the order lines.
func (s *OrderService) ListOrderItems(ctx context.Context, orderID int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, o.LineCount())
	for _, line := range o.Lines() {
		names = append(names, line.DisplayName())
	}
	return names, nil
}

// GetOrderItems returns a copy of the order lines.
func (s *OrderService) GetOrderItems(ctx context.Context, orderID int) ([]order.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return o.Lines(), nil
}

func (s *OrderService) ListBeverages() []menu.Item {
	return s.catalog.ListBeverages()
}

func (s *OrderService) ListDesserts() []menu.Item {
	return s.catalog.ListDesserts()
}

func (s *OrderService) ListAddOns() []menu.Item {
	return s.catalog.ListAddOns()
}

func (s *OrderService) getOrder(ctx context.Context, id int) (*order.Order, error) {
	o, err := s.repository.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("order", id, ErrOrderNotFound)
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return o, nil
}

func (s *OrderService) listActive(ctx context.Context) ([]*order.Order, error) {
	all, err := s.repository.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]*order.Order, 0, len(all))
	for _, o := range all {
		if o.Status().IsActive() {
			active = append(active, o)
		}
	}
	return active, nil
}

func (s *OrderService) setSubscribers(subscribers []order.Subscriber) error {
	next := make([]order.Subscriber, 0, len(subscribers))
	for i, sub := range subscribers {
		if sub == nil {
			return errs.NewValueIsRequiredError(fmt.Sprintf("subscriber #%d", i))
		}
		next = append(next, sub)
	}
	s.subscribers = next
	return nil
}
