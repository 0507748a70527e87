// Package kafka publishes order lifecycle events with segmentio/kafka-go.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"store/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

const orderCreatedEventType = "OrderCreated"

var (
	eventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "store",
			Subsystem: "kafka_producer",
			Name:      "events_published_total",
			Help:      "Total number of events written to Kafka",
		},
		[]string{"type"},
	)

	eventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "store",
			Subsystem: "kafka_producer",
			Name:      "events_failed_total",
			Help:      "Total number of events that could not be written to Kafka",
		},
		[]string{"type"},
	)
)

// RegisterMetrics adds the producer collectors to reg.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(eventsPublished, eventsFailed)
}

// OrderCreatedEvent is the message value written for every placed order.
type OrderCreatedEvent struct {
	Number      string                 `json:"number"`
	Customer    string                 `json:"customer"`
	Date        time.Time              `json:"date"`
	Status      string                 `json:"status"`
	DeliveryFee decimal.Decimal        `json:"deliveryFee"`
	Discount    decimal.Decimal        `json:"discount"`
	Total       decimal.Decimal        `json:"total"`
	Items       []OrderCreatedItemData `json:"items"`
}

type OrderCreatedItemData struct {
	Product  string          `json:"product"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderCreatedPublisher implements ports.OrderEventPublisher. Messages are
// keyed by order number so every event of one order lands on one partition.
type OrderCreatedPublisher struct {
	writer messageWriter
}

// NewOrderCreatedPublisher creates a publisher writing to topic on brokers.
func NewOrderCreatedPublisher(brokers []string, topic string, batchTimeout time.Duration) *OrderCreatedPublisher {
	return NewOrderCreatedPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           batchTimeout,
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	})
}

// NewOrderCreatedPublisherWithWriter wraps an existing writer.
func NewOrderCreatedPublisherWithWriter(writer messageWriter) *OrderCreatedPublisher {
	return &OrderCreatedPublisher{writer: writer}
}

func (p *OrderCreatedPublisher) OrderCreated(ctx context.Context, o *order.Order) error {
	value, err := json.Marshal(newOrderCreatedEvent(o))
	if err != nil {
		return fmt.Errorf("failed to marshal order created event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(o.Number()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(orderCreatedEventType)},
		},
		Time: o.Date(),
	})
	if err != nil {
		eventsFailed.WithLabelValues(orderCreatedEventType).Inc()
		return fmt.Errorf("failed to write order created event: %w", err)
	}

	eventsPublished.WithLabelValues(orderCreatedEventType).Inc()
	return nil
}

func (p *OrderCreatedPublisher) Close() error {
	return p.writer.Close()
}

func newOrderCreatedEvent(o *order.Order) OrderCreatedEvent {
	var document string
	if c := o.Customer(); c != nil {
		document = c.Document()
	}

	items := o.Items()
	data := make([]OrderCreatedItemData, 0, len(items))
	for _, item := range items {
		data = append(data, OrderCreatedItemData{
			Product:  item.Product().ID().String(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	return OrderCreatedEvent{
		Number:      o.Number(),
		Customer:    document,
		Date:        o.Date(),
		Status:      o.Status().String(),
		DeliveryFee: o.DeliveryFee(),
		Discount:    o.DiscountAmount(),
		Total:       o.Total(),
		Items:       data,
	}
}
