package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	httpadapter "coffeeshop/internal/adapters/in/http"
	"coffeeshop/internal/adapters/in/ws"
	"coffeeshop/internal/adapters/out/journal"
	"coffeeshop/internal/adapters/out/memory/orderrepo"
	"coffeeshop/internal/adapters/out/menufile"
	"coffeeshop/internal/adapters/out/notifiers"
	"coffeeshop/internal/adapters/out/rabbitmq"
	"coffeeshop/internal/adapters/out/redisbus"
	"coffeeshop/internal/core/application/services"
	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/jobs"

	"github.com/labstack/echo/v4"
)

// CompositionRoot owns the long-lived objects of the application.
type CompositionRoot struct {
	config  Config
	logger  *slog.Logger
	service *services.OrderService
	hub     *ws.Hub
	journal *journal.GormJournal

	closers []io.Closer
}

// NewCompositionRoot loads the menu, connects the configured sinks and builds
// the order service. Display output goes to displays; nil means stdout.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger, displays io.Writer) (*CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &CompositionRoot{config: config, logger: logger}

	catalog, err := c.loadMenu()
	if err != nil {
		return nil, err
	}

	subscribers := []order.Subscriber{
		notifiers.NewKitchenDisplay(displays),
		notifiers.NewCustomerNotifier(displays),
		notifiers.NewAuditLog(displays),
	}

	sinks, err := c.connectSinks(ctx)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	subscribers = append(subscribers, sinks...)

	c.service, err = services.NewOrderService(orderrepo.NewMemoryOrderRepository(), catalog, logger, subscribers...)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func (c *CompositionRoot) loadMenu() (*menu.Catalog, error) {
	if c.config.MenuFile == "" {
		return menufile.Default()
	}
	catalog, err := menufile.Load(c.config.MenuFile)
	if err != nil {
		return nil, fmt.Errorf("load menu %s: %w", c.config.MenuFile, err)
	}
	return catalog, nil
}

// connectSinks builds the network subscribers. Each one is isolated so an
// outage never fails an order change, and each call is bounded by SinkTimeout.
func (c *CompositionRoot) connectSinks(ctx context.Context) ([]order.Subscriber, error) {
	var sinks []order.Subscriber

	if c.config.JournalDriver != "" {
		db, err := journal.Open(c.config.JournalDriver, c.config.JournalDSN)
		if err != nil {
			return nil, fmt.Errorf("open journal: %w", err)
		}
		j, err := journal.NewGormJournal(db)
		if err != nil {
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				_ = sqlDB.Close()
			}
			return nil, fmt.Errorf("migrate journal: %w", err)
		}
		c.journal = j
		c.closers = append(c.closers, j)
		sinks = append(sinks, notifiers.Isolate(j, c.logger, "journal", c.config.SinkTimeout))
		c.logger.Info("event journal enabled", "driver", c.config.JournalDriver)
	}

	if c.config.RedisAddr != "" {
		client := redisbus.NewClient(c.config.RedisAddr)
		c.closers = append(c.closers, client)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect redis %s: %w", c.config.RedisAddr, err)
		}
		publisher := redisbus.NewPublisher(client, c.config.RedisChannel)
		sinks = append(sinks, notifiers.Isolate(publisher, c.logger, "redis", c.config.SinkTimeout))
		c.logger.Info("redis publisher enabled", "channel", publisher.Channel())
	}

	if c.config.AMQPURL != "" {
		conn, err := rabbitmq.Dial(c.config.AMQPURL)
		if err != nil {
			return nil, fmt.Errorf("connect rabbitmq: %w", err)
		}
		c.closers = append(c.closers, conn)
		publisher := rabbitmq.NewPublisher(conn, c.config.AMQPExchange)
		sinks = append(sinks, notifiers.Isolate(publisher, c.logger, "rabbitmq", c.config.SinkTimeout))
		c.logger.Info("rabbitmq publisher enabled", "exchange", publisher.Exchange())
	}

	c.hub = ws.NewHub(c.logger)
	sinks = append(sinks, notifiers.Isolate(c.hub, c.logger, "kitchen_ws", c.config.SinkTimeout))

	return sinks, nil
}

// OrderService returns the shared service.
func (c *CompositionRoot) OrderService() *services.OrderService {
	return c.service
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.service)
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	return commands.NewAddMenuItemCommandHandler(c.service)
}

func (c *CompositionRoot) CreateRemoveItemCommandHandler() commands.RemoveItemCommandHandler {
	return commands.NewRemoveItemCommandHandler(c.service)
}

func (c *CompositionRoot) CreateSetDiscountCommandHandler() commands.SetDiscountCommandHandler {
	return commands.NewSetDiscountCommandHandler(c.service)
}

func (c *CompositionRoot) CreateChangeStatusCommandHandler() commands.ChangeStatusCommandHandler {
	return commands.NewChangeStatusCommandHandler(c.service)
}

func (c *CompositionRoot) CreateCalculateTotalCommandHandler() commands.CalculateTotalCommandHandler {
	return commands.NewCalculateTotalCommandHandler(c.service)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.service)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.service)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.service)
}

// CreateGetOrderHistoryQueryHandler passes a nil interface when the journal
// is off, so the handler reports ErrJournalDisabled.
func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	var history ports.EventJournal
	if c.journal != nil {
		history = c.journal
	}
	return queries.NewGetOrderHistoryQueryHandler(history)
}

// CreateRouter builds the HTTP entry point.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		AddMenuItem:     c.CreateAddMenuItemCommandHandler(),
		RemoveItem:      c.CreateRemoveItemCommandHandler(),
		SetDiscount:     c.CreateSetDiscountCommandHandler(),
		ChangeStatus:    c.CreateChangeStatusCommandHandler(),
		CalculateTotal:  c.CreateCalculateTotalCommandHandler(),
		GetOrder:        c.CreateGetOrderQueryHandler(),
		GetActiveOrders: c.CreateGetActiveOrdersQueryHandler(),
		GetMenu:         c.CreateGetMenuQueryHandler(),
		GetOrderHistory: c.CreateGetOrderHistoryQueryHandler(),
	}, c.logger)

	return httpadapter.NewRouter(server, httpadapter.RouterOptions{
		RateLimit: c.config.RateLimit,
		Kitchen:   c.hub.ServeWS,
		Logger:    c.logger,
	})
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(c.CreateGetActiveOrdersQueryHandler(), c.config.ReportSchedule, c.logger)
}

// Close disconnects the kitchen boards and releases every connection, newest first.
func (c *CompositionRoot) Close() error {
	if c.hub != nil {
		c.hub.Close()
	}

	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errList = append(errList, err)
		}
	}
	c.closers = nil
	return errors.Join(errList...)
}
