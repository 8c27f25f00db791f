package report

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"go-triangle-arbitrage/domain"
)

const DefaultTopic = "triangle.evaluations"

// IDHeader message header carrying the evaluation ID
const IDHeader = "evaluation-id"

// MessageWriter the part of *kafka.Writer the reporter needs
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// kafkaReporter publishes evaluations to a topic
type kafkaReporter struct {
	writer MessageWriter
}

// NewKafkaWriter builds a writer for topic on brokers
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	if topic == "" {
		topic = DefaultTopic
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           100 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// NewKafkaReporter returns a Reporter publishing JSON evaluations through w.
// Messages are keyed by cycle so evaluations of one cycle stay ordered.
func NewKafkaReporter(w MessageWriter) Reporter {
	return &kafkaReporter{writer: w}
}

func (r *kafkaReporter) Report(ctx context.Context, ev domain.Evaluation) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal evaluation %v: %w", ev.Cycle, err)
	}
	msg := kafka.Message{
		Key:   []byte(cycleKey(ev.Cycle)),
		Value: payload,
		Time:  ev.EvaluatedAt,
	}
	if ev.ID != "" {
		msg.Headers = []kafka.Header{{Key: IDHeader, Value: []byte(ev.ID)}}
	}
	if err := r.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish evaluation %v: %w", ev.Cycle, err)
	}
	return nil
}

func cycleKey(c domain.Cycle) string {
	return strings.Join([]string{string(c.A), string(c.B), string(c.C)}, "-")
}
