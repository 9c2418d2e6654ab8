package commands_test

import (
	"context"

	"coffeeshop/internal/core/application/services"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderManager struct{ mock.Mock }

func (m *MockOrderManager) CreateOrder(ctx context.Context) (*order.Order, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderManager) AddMenuItem(
	ctx context.Context,
	orderID int,
	itemName string,
	addOnNames []string,
) (order.Line, error) {
	args := m.Called(ctx, orderID, itemName, addOnNames)
	return args.Get(0).(order.Line), args.Error(1)
}

func (m *MockOrderManager) RemoveItem(ctx context.Context, orderID, index int) error {
	args := m.Called(ctx, orderID, index)
	return args.Error(0)
}

func (m *MockOrderManager) SetDiscount(ctx context.Context, orderID int, percent decimal.Decimal, label string) error {
	args := m.Called(ctx, orderID, percent, label)
	return args.Error(0)
}

func (m *MockOrderManager) CalculateTotalView(ctx context.Context, orderID int) (services.OrderView, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(services.OrderView), args.Error(1)
}

func (m *MockOrderManager) ChangeStatus(ctx context.Context, orderID int, status order.Status) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}
