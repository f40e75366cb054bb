package notification

import (
	"context"
	"sync"
	"time"
)

const defaultDedupeTTL = 24 * time.Hour

// Deduper is the fast-path check for deliveries that already happened.
// It may forget entries; the unique dedupe key in storage is authoritative.
type Deduper interface {
	Seen(ctx context.Context, key string) (bool, error)
	MarkSeen(ctx context.Context, key string) error
}

// MemoryDeduper is used when Redis is not configured.
type MemoryDeduper struct {
	mu      sync.Mutex
	entries map[string]time.Time
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryDeduper(ttl time.Duration) *MemoryDeduper {
	if ttl <= 0 {
		ttl = defaultDedupeTTL
	}
	return &MemoryDeduper{
		entries: make(map[string]time.Time),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (d *MemoryDeduper) Seen(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	d.cleanupLocked(now)

	seenAt, ok := d.entries[key]
	if !ok {
		return false, nil
	}
	if now.Sub(seenAt) > d.ttl {
		delete(d.entries, key)
		return false, nil
	}
	return true, nil
}

func (d *MemoryDeduper) MarkSeen(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.entries[key] = d.now()
	return nil
}

func (d *MemoryDeduper) cleanupLocked(now time.Time) {
	for key, seenAt := range d.entries {
		if now.Sub(seenAt) > d.ttl {
			delete(d.entries, key)
		}
	}
}
