package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/audit"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/refund"
	"orderflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockRefundRepository struct{ mock.Mock }

func (m *MockRefundRepository) Add(ctx context.Context, r *refund.Refund) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRefundRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*refund.Refund, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*refund.Refund), args.Error(1)
}

type MockAuditSink struct{ mock.Mock }

func (m *MockAuditSink) Append(ctx context.Context, entry audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ MockOrderUoW }

func (m *MockUoW) RefundRepository() ports.RefundRepository {
	args := m.Called()
	return args.Get(0).(ports.RefundRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type noopAuditSink struct{}

func (noopAuditSink) Append(context.Context, audit.Entry) error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustItem(t *testing.T, productID string, quantity int, cents int64) order.Item {
	t.Helper()
	price, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	item, err := order.NewItem(productID, quantity, price)
	require.NoError(t, err)
	return item
}

func shipDate(t *testing.T) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", "2026-03-15")
	require.NoError(t, err)
	return d
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"c1",
		[]order.Item{mustItem(t, "p1", 2, 5000)},
		"card",
		"1 Main St",
	)
	require.NoError(t, err)
	return o
}

func orderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o := newPendingOrder(t)

	switch status {
	case order.Pending:
	case order.Approved:
		require.NoError(t, o.Approve("staff-1"))
	case order.Shipping:
		require.NoError(t, o.Approve("staff-1"))
		require.NoError(t, o.Ship("TRK-1", shipDate(t)))
	case order.Completed:
		require.NoError(t, o.Approve("staff-1"))
		require.NoError(t, o.Ship("TRK-1", shipDate(t)))
		require.NoError(t, o.Complete())
	default:
		t.Fatalf("unsupported fixture status %s", status)
	}

	return o
}
