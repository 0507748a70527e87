package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	storekafka "store/internal/adapters/out/kafka"
	"store/internal/core/domain/model/customer"
	"store/internal/core/domain/model/kernel"
	"store/internal/core/domain/model/order"
	"store/internal/core/domain/model/product"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriter struct{ mock.Mock }

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockWriter) Close() error {
	return m.Called().Error(0)
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	c, err := customer.NewCustomer("12345678911", "Bruce Wayne", "")
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), "Mouse", decimal.NewFromInt(10), true)
	require.NoError(t, err)

	o := order.NewOrder(c, decimal.NewFromInt(3), nil, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	o.AddItem(p, 2)
	return o
}

func TestRegisterMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	require.NotPanics(t, func() { storekafka.RegisterMetrics(reg) })
}

func TestOrderCreatedPublisher_OrderCreated(t *testing.T) {
	t.Run("should write keyed json message", func(t *testing.T) {
		ctx := t.Context()
		o := newOrder(t)
		writer := new(MockWriter)
		var written []kafka.Message
		writer.On("WriteMessages", ctx, mock.Anything).
			Run(func(args mock.Arguments) { written = args.Get(1).([]kafka.Message) }).
			Return(nil).Once()

		err := storekafka.NewOrderCreatedPublisherWithWriter(writer).OrderCreated(ctx, o)

		require.NoError(t, err)
		require.Len(t, written, 1)
		msg := written[0]
		assert.Equal(t, o.Number(), string(msg.Key))
		require.Len(t, msg.Headers, 1)
		assert.Equal(t, "OrderCreated", string(msg.Headers[0].Value))

		var event storekafka.OrderCreatedEvent
		require.NoError(t, json.Unmarshal(msg.Value, &event))
		assert.Equal(t, o.Number(), event.Number)
		assert.Equal(t, "12345678911", event.Customer)
		assert.Equal(t, "WaitingPayment", event.Status)
		assert.True(t, event.Total.Equal(decimal.NewFromInt(23)))
		require.Len(t, event.Items, 1)
		assert.Equal(t, 2, event.Items[0].Quantity)
		writer.AssertExpectations(t)
	})

	t.Run("should wrap write errors", func(t *testing.T) {
		ctx := t.Context()
		writeErr := errors.New("leader not available")
		writer := new(MockWriter)
		writer.On("WriteMessages", ctx, mock.Anything).Return(writeErr).Once()

		err := storekafka.NewOrderCreatedPublisherWithWriter(writer).OrderCreated(ctx, newOrder(t))

		require.ErrorIs(t, err, writeErr)
	})
}

func TestOrderCreatedPublisher_Close(t *testing.T) {
	writer := new(MockWriter)
	writer.On("Close").Return(nil).Once()

	require.NoError(t, storekafka.NewOrderCreatedPublisherWithWriter(writer).Close())
	writer.AssertExpectations(t)
}
