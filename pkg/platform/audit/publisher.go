package audit

import (
	"context"
	"sync"
)

// Publisher is the sink for audit events. Implementations must be safe for
// concurrent use. Emit is best-effort from the caller's point of view: the
// service logs a failed emit but never fails the business operation over
// it, because the store write is the source of truth.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

// MemoryPublisher collects events in memory for tests and dev mode.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

func (p *MemoryPublisher) Emit(_ context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Events returns a copy of everything emitted so far.
func (p *MemoryPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Event{}, p.events...)
}

// ByInvestor returns emitted events for one investor, in emit order.
func (p *MemoryPublisher) ByInvestor(investorID string) []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []Event
	for _, e := range p.events {
		if e.InvestorID == investorID {
			out = append(out, e)
		}
	}
	return out
}
