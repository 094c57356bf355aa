package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/model"
)

const (
	// EventPaymentVerified notifies downstream consumers (receipt
	// generation, notifications) that an order's payment was verified.
	EventPaymentVerified = "OrderPaymentVerified"

	producerName = "storefront"
)

// Envelope wraps every published event.
type Envelope struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Producer   string          `json:"producer"`
	Payload    json.RawMessage `json:"payload"`
}

// PaymentVerifiedPayload carries the order details downstream consumers need.
type PaymentVerifiedPayload struct {
	OrderID    int64 `json:"order_id"`
	UserID     int64 `json:"user_id"`
	TotalCents int64 `json:"total_cents"`
}

type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher emits order events to kafka. Publishing is buffered and
// asynchronous: it must never hold up (or run inside) the transaction that
// produced the event, and failures are logged rather than propagated.
type Publisher struct {
	writer kafkaWriter
	inbox  chan kafka.Message
	logger *slog.Logger

	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
	closed  bool
}

// NewPublisher constructs kafka publisher with a buffered inbox.
func NewPublisher(brokers []string, topic string, buffer int, logger *slog.Logger) *Publisher {
	if buffer <= 0 {
		buffer = 64
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		inbox:  make(chan kafka.Message, buffer),
		logger: logger,
	}
}

// Start launches the delivery goroutine.
func (p *Publisher) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for msg := range p.inbox {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := p.writer.WriteMessages(ctx, msg); err != nil {
				p.logger.Error("publish event failed", slog.String("error", err.Error()))
			}
			cancel()
		}
	}()
}

// Close flushes buffered messages and releases the writer.
func (p *Publisher) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	close(p.inbox)
	p.wg.Wait()
	if err := p.writer.Close(); err != nil {
		p.logger.Error("close kafka writer failed", slog.String("error", err.Error()))
	}
}

// OrderPaymentVerified enqueues a payment verification event for the order.
// Events for one order share a partition key so consumers see them in order.
func (p *Publisher) OrderPaymentVerified(order *model.Order) {
	payload, err := json.Marshal(PaymentVerifiedPayload{
		OrderID:    order.ID,
		UserID:     order.UserID,
		TotalCents: order.TotalCents,
	})
	if err != nil {
		p.logger.Error("marshal event payload failed", slog.String("error", err.Error()))
		return
	}

	envelope, err := json.Marshal(Envelope{
		EventID:    uuid.NewString(),
		EventType:  EventPaymentVerified,
		OccurredAt: time.Now().UTC(),
		Producer:   producerName,
		Payload:    payload,
	})
	if err != nil {
		p.logger.Error("marshal event envelope failed", slog.String("error", err.Error()))
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(order.ID, 10)),
		Value: envelope,
		Time:  time.Now(),
	}

	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return
	}

	select {
	case p.inbox <- msg:
	default:
		p.logger.Warn("event inbox full, dropping event", slog.Int64("order_id", order.ID))
	}
}
