package outbox

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/orris-inc/complaintdesk/internal/domain/outbox"
	"github.com/orris-inc/complaintdesk/internal/domain/shared/events"
)

// memoryOutboxRepository keeps rows in memory with the same status, lease
// and retry rules as the gorm repository.
type memoryOutboxRepository struct {
	mu     sync.Mutex
	nextID uint
	rows   map[uint]*outbox.Event
	leases map[uint]lease
}

type lease struct {
	owner string
	until time.Time
}

func newMemoryOutboxRepository() *memoryOutboxRepository {
	return &memoryOutboxRepository{rows: make(map[uint]*outbox.Event), leases: make(map[uint]lease)}
}

func (m *memoryOutboxRepository) Append(ctx context.Context, e *outbox.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	if err := e.SetID(m.nextID); err != nil {
		return err
	}
	m.rows[e.ID()] = e
	return nil
}

func (m *memoryOutboxRepository) ClaimDeliverable(ctx context.Context, claim outbox.Claim, limit int) ([]*outbox.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var open []*outbox.Event
	for _, r := range m.rows {
		if r.Status() == outbox.StatusPending || r.Status() == outbox.StatusFailed {
			open = append(open, r)
		}
	}
	sort.Slice(open, func(i, j int) bool { return open[i].ID() < open[j].ID() })

	held := make(map[string]bool)
	var out []*outbox.Event
	for _, r := range open {
		backingOff := r.NextAttemptAt() != nil && r.NextAttemptAt().After(claim.Now)
		l, leased := m.leases[r.ID()]
		leasedElsewhere := leased && l.owner != claim.Owner && !l.until.Before(claim.Now)
		if backingOff || leasedElsewhere || held[r.StreamKey()] {
			if backingOff || leasedElsewhere {
				held[r.StreamKey()] = true
			}
			continue
		}
		if len(out) < limit {
			m.leases[r.ID()] = lease{owner: claim.Owner, until: claim.Until}
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryOutboxRepository) MarkPublished(ctx context.Context, id uint, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.rows[id]
	m.rows[id] = outbox.ReconstructEvent(r.ID(), r.EventID(), r.EventType(), r.AggregateID(), r.Payload(),
		outbox.StatusPublished, r.Attempts(), r.LastError(), r.CreatedAt(), &at, nil)
	delete(m.leases, id)
	return nil
}

func (m *memoryOutboxRepository) MarkFailed(ctx context.Context, id uint, lastError string, dead bool, retryAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.rows[id]
	status := outbox.StatusFailed
	next := &retryAt
	if dead {
		status = outbox.StatusDead
		next = nil
	}
	m.rows[id] = outbox.ReconstructEvent(r.ID(), r.EventID(), r.EventType(), r.AggregateID(), r.Payload(),
		status, r.Attempts()+1, lastError, r.CreatedAt(), nil, next)
	delete(m.leases, id)
	return nil
}

func (m *memoryOutboxRepository) Release(ctx context.Context, owner string, ids []uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		if l, ok := m.leases[id]; ok && l.owner == owner {
			delete(m.leases, id)
		}
	}
	return nil
}

func (m *memoryOutboxRepository) leased(id uint) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.leases[id]
	return ok
}

func (m *memoryOutboxRepository) CountByStatus(ctx context.Context, status outbox.Status) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, r := range m.rows {
		if r.Status() == status {
			n++
		}
	}
	return n, nil
}

func (m *memoryOutboxRepository) get(id uint) *outbox.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[id]
}

type recordingDispatcher struct {
	mu         sync.Mutex
	DispatchFn func(ctx context.Context, evt *events.Event) error
	delivered  []string
}

func (d *recordingDispatcher) Subscribe(eventType string, handler events.EventHandler) error {
	return nil
}

func (d *recordingDispatcher) Dispatch(ctx context.Context, evt *events.Event) error {
	if d.DispatchFn != nil {
		if err := d.DispatchFn(ctx, evt); err != nil {
			return err
		}
	}
	d.mu.Lock()
	d.delivered = append(d.delivered, evt.EventID)
	d.mu.Unlock()
	return nil
}

type mockPublisher struct {
	PublishFunc func(ctx context.Context, key, value []byte) error
	published   []string
	deadLetters [][]byte
}

func (p *mockPublisher) Publish(ctx context.Context, key, value []byte) error {
	if p.PublishFunc != nil {
		if err := p.PublishFunc(ctx, key, value); err != nil {
			return err
		}
	}
	p.published = append(p.published, string(key))
	return nil
}

func (p *mockPublisher) PublishDLQ(ctx context.Context, key, value []byte) error {
	p.deadLetters = append(p.deadLetters, value)
	return nil
}

type countingMetrics struct {
	published int
	failed    int
	dead      int
}

func (c *countingMetrics) EventPublished(string) { c.published++ }

func (c *countingMetrics) EventFailed(_ string, dead bool) {
	c.failed++
	if dead {
		c.dead++
	}
}
