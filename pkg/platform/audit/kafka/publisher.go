// Package kafka publishes audit events to a Kafka topic. Kafka is the
// durable audit trail; consumers materialize events for reporting.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	audit "dealgate/pkg/platform/audit"
)

// Publisher writes audit events to a single topic, keyed by investor ID so
// per-investor ordering is preserved within a partition.
type Publisher struct {
	client *kgo.Client
	topic  string
}

// New connects a franz-go producer to the given brokers.
func New(brokers []string, topic string) (*Publisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ProducerLinger(50*time.Millisecond),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &Publisher{client: client, topic: topic}, nil
}

// payload is the JSON structure written to Kafka. Field names are part of
// the consumer contract.
type payload struct {
	Timestamp  string            `json:"timestamp"`
	InvestorID string            `json:"investor_id,omitempty"`
	Action     string            `json:"action"`
	ActorID    string            `json:"actor_id,omitempty"`
	Reason     string            `json:"reason,omitempty"`
	RequestID  string            `json:"request_id,omitempty"`
	Detail     map[string]string `json:"detail,omitempty"`
}

// Emit produces the event synchronously. A broker fault surfaces as an
// error for the caller to log; it must not fail the business operation.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	body, err := json.Marshal(payload{
		Timestamp:  event.Timestamp.Format(time.RFC3339Nano),
		InvestorID: event.InvestorID,
		Action:     event.Action,
		ActorID:    event.ActorID,
		Reason:     event.Reason,
		RequestID:  event.RequestID,
		Detail:     event.Detail,
	})
	if err != nil {
		return fmt.Errorf("marshal audit payload: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.InvestorID),
		Value: body,
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce audit event: %w", err)
	}
	return nil
}

// Close flushes buffered records and releases the client.
func (p *Publisher) Close() {
	p.client.Close()
}
