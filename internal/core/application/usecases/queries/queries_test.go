package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"coffeeshop/internal/adapters/out/memory/orderrepo"
	"coffeeshop/internal/core/application/services"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MockEventJournal struct{ mock.Mock }

func (m *MockEventJournal) History(ctx context.Context, orderID int) ([]ports.JournalEntry, error) {
	args := m.Called(ctx, orderID)
	entries, _ := args.Get(0).([]ports.JournalEntry)
	return entries, args.Error(1)
}

type OrderQueriesTestSuite struct {
	suite.Suite
	ctx     context.Context
	service *services.OrderService
}

func (s *OrderQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()

	catalog, err := menu.NewCatalog([]menu.Item{
		menu.MustNewItem("Капучино", menu.Beverage, "3.5"),
		menu.MustNewItem("Латте", menu.Beverage, "4.0"),
		menu.MustNewItem("Круассан", menu.Dessert, "3.0"),
		menu.MustNewItem("Ванильный сироп", menu.AddOn, "0.5"),
		menu.MustNewItem("Кокосовое молоко", menu.AddOn, "0.7"),
	})
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service, err = services.NewOrderService(orderrepo.NewMemoryOrderRepository(), catalog, logger)
	s.Require().NoError(err)
}

func (s *OrderQueriesTestSuite) TestGetOrderReturnsLinesAndCachedTotal() {
	o, err := s.service.CreateOrder(s.ctx)
	s.Require().NoError(err)
	_, err = s.service.AddMenuItem(s.ctx, o.ID(), "Капучино", []string{"Кокосовое молоко", "Ванильный сироп"})
	s.Require().NoError(err)
	_, err = s.service.AddMenuItem(s.ctx, o.ID(), "Круассан", nil)
	s.Require().NoError(err)

	query, err := queries.NewGetOrderQuery(o.ID())
	s.Require().NoError(err)
	handler := queries.NewGetOrderQueryHandler(s.service)

	resp, err := handler.Handle(s.ctx, query)
	s.Require().NoError(err)
	s.Equal(o.ID(), resp.ID)
	s.Equal(order.Created, resp.Status)
	s.Require().Len(resp.Lines, 2)
	s.Equal("Капучино (+ Кокосовое молоко, Ванильный сироп)", resp.Lines[0].Name)
	s.Equal([]string{"Кокосовое молоко", "Ванильный сироп"}, resp.Lines[0].AddOns)
	s.Empty(resp.Lines[1].AddOns)
	s.True(decimal.RequireFromString("7.7").Equal(resp.Subtotal))
	s.True(resp.Total.IsZero(), "cached total is zero until calculated")

	_, err = s.service.CalculateTotal(s.ctx, o.ID())
	s.Require().NoError(err)
	resp, err = handler.Handle(s.ctx, query)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("7.7").Equal(resp.Total))
}

func (s *OrderQueriesTestSuite) TestGetOrderUnknownID() {
	query, err := queries.NewGetOrderQuery(404)
	s.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(s.service).Handle(s.ctx, query)
	s.Require().ErrorIs(err, services.ErrOrderNotFound)
}

func (s *OrderQueriesTestSuite) TestGetActiveOrdersSkipsPaid() {
	for i := 0; i < 3; i++ {
		_, err := s.service.CreateOrder(s.ctx)
		s.Require().NoError(err)
	}
	s.Require().NoError(s.service.ChangeStatus(s.ctx, 2, order.Paid))

	resp, err := queries.NewGetActiveOrdersQueryHandler(s.service).Handle(s.ctx, queries.NewGetActiveOrdersQuery())
	s.Require().NoError(err)
	s.Require().Len(resp, 2)
	s.Equal(1, resp[0].ID)
	s.Equal(3, resp[1].ID)
}

func (s *OrderQueriesTestSuite) TestGetMenuKeepsSections() {
	resp, err := queries.NewGetMenuQueryHandler(s.service).Handle(s.ctx, queries.NewGetMenuQuery())
	s.Require().NoError(err)

	s.Require().Len(resp.Beverages, 2)
	s.Equal("Капучино", resp.Beverages[0].Name)
	s.Equal(menu.Beverage, resp.Beverages[0].Category)
	s.Len(resp.Desserts, 1)
	s.Len(resp.AddOns, 2)
	s.True(decimal.RequireFromString("0.7").Equal(resp.AddOns[1].Price))
}

func TestOrderQueries(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}

func TestQueriesNotConstructed(t *testing.T) {
	ctx := context.Background()

	_, err := queries.NewGetOrderQueryHandler(nil).Handle(ctx, queries.GetOrderQuery{})
	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)

	_, err = queries.NewGetActiveOrdersQueryHandler(nil).Handle(ctx, queries.GetActiveOrdersQuery{})
	require.ErrorIs(t, err, queries.ErrGetActiveOrdersQueryIsNotConstructed)

	_, err = queries.NewGetMenuQueryHandler(nil).Handle(ctx, queries.GetMenuQuery{})
	require.ErrorIs(t, err, queries.ErrGetMenuQueryIsNotConstructed)

	_, err = queries.NewGetOrderHistoryQueryHandler(nil).Handle(ctx, queries.GetOrderHistoryQuery{})
	require.ErrorIs(t, err, queries.ErrGetOrderHistoryQueryIsNotConstructed)
}

func TestQueriesRejectBadIDs(t *testing.T) {
	_, err := queries.NewGetOrderQuery(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewGetOrderHistoryQuery(-2)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestGetOrderHistoryQueryHandler_Handle(t *testing.T) {
	t.Run("returns journal entries", func(t *testing.T) {
		ctx := context.Background()
		entries := []ports.JournalEntry{
			{OrderID: 1, Event: "created", Status: "Created", OccurredAt: time.Unix(10, 0)},
			{OrderID: 1, Event: "status_changed", Status: "Ready", OccurredAt: time.Unix(20, 0)},
		}
		journal := new(MockEventJournal)
		journal.On("History", ctx, 1).Return(entries, nil).Once()

		query, err := queries.NewGetOrderHistoryQuery(1)
		require.NoError(t, err)

		got, err := queries.NewGetOrderHistoryQueryHandler(journal).Handle(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, entries, got)
		journal.AssertExpectations(t)
	})

	t.Run("propagates journal errors", func(t *testing.T) {
		ctx := context.Background()
		boom := errors.New("database is locked")
		journal := new(MockEventJournal)
		journal.On("History", ctx, 2).Return(nil, boom).Once()

		query, err := queries.NewGetOrderHistoryQuery(2)
		require.NoError(t, err)

		_, err = queries.NewGetOrderHistoryQueryHandler(journal).Handle(ctx, query)
		require.ErrorIs(t, err, boom)
	})

	t.Run("disabled journal", func(t *testing.T) {
		query, err := queries.NewGetOrderHistoryQuery(1)
		require.NoError(t, err)

		_, err = queries.NewGetOrderHistoryQueryHandler(nil).Handle(context.Background(), query)
		require.ErrorIs(t, err, queries.ErrJournalDisabled)
	})
}
