package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/IBM/sarama"

	"delivery-matching/internal/domain"
	"delivery-matching/internal/logx"
)

var newAsyncProducer = sarama.NewAsyncProducer

// Broker timeouts for the action producer. Delivery happens in the background,
// these only bound how long a dead broker holds buffered events.
const (
	producerDialTimeout  = 3 * time.Second
	producerWriteTimeout = 3 * time.Second
	producerAckTimeout   = 5 * time.Second
)

// Publisher writes driver action events to a Kafka topic, keyed by order id.
// PublishAction only enqueues; delivery errors are reported through the logger.
type Publisher struct {
	producer sarama.AsyncProducer
	topic    string
	logger   logx.Logger

	closeOnce sync.Once
	drained   sync.WaitGroup
}

// NewPublisher creates a Publisher. It returns nil when Kafka is not configured.
func NewPublisher(brokers []string, topic string, logger logx.Logger) (*Publisher, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Net.DialTimeout = producerDialTimeout
	cfg.Net.WriteTimeout = producerWriteTimeout
	cfg.Producer.Timeout = producerAckTimeout
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = false
	cfg.Producer.Return.Errors = true

	producer, err := newAsyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return NewPublisherWithProducer(producer, topic, logger), nil
}

// NewPublisherWithProducer wraps an existing producer and starts draining its error channel.
// The producer must be configured with Return.Successes off.
func NewPublisherWithProducer(producer sarama.AsyncProducer, topic string, logger logx.Logger) *Publisher {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Publisher{producer: producer, topic: topic, logger: logger}
	p.drained.Add(1)
	go p.drainErrors()
	return p
}

// PublishAction enqueues one action event. It blocks only while the producer
// buffer is full, and never longer than ctx allows. A nil Publisher drops events.
func (p *Publisher) PublishAction(ctx context.Context, ev domain.ActionEvent) error {
	if p == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(ActionEventFromDomain(ev))
	if err != nil {
		return fmt.Errorf("marshal action event: %w", err)
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(ev.OrderID, 10)),
		Value: sarama.ByteEncoder(payload),
	}
	select {
	case p.producer.Input() <- msg:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("enqueue action event: %w", ctx.Err())
	}
}

func (p *Publisher) drainErrors() {
	defer p.drained.Done()
	for perr := range p.producer.Errors() {
		fields := []logx.Field{logx.String("topic", p.topic), logx.Err(perr.Err)}
		if perr.Msg != nil && perr.Msg.Key != nil {
			if key, err := perr.Msg.Key.Encode(); err == nil {
				fields = append(fields, logx.String("order_id", string(key)))
			}
		}
		p.logger.Warn("kafka action event delivery failed", fields...)
	}
}

// Close flushes buffered events and waits until every delivery error has been logged.
// It must not race with PublishAction.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	p.closeOnce.Do(func() {
		p.producer.AsyncClose()
		p.drained.Wait()
	})
	return nil
}
