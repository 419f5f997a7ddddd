package memory

import (
	"context"
	"sync"

	"github.com/aidynbek/paysim/internal/domain/audit"
)

// AuditLog is the in-memory audit trail, keyed by entity ID.
type AuditLog struct {
	mu     sync.RWMutex
	events map[string][]*audit.Event
}

// NewAuditLog creates an empty in-memory audit log.
func NewAuditLog() *AuditLog {
	return &AuditLog{
		events: make(map[string][]*audit.Event),
	}
}

// Append records an event.
func (l *AuditLog) Append(_ context.Context, e *audit.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events[e.EntityID] = append(l.events[e.EntityID], e)
	return nil
}

// ByEntity retrieves all events for an entity in append order.
func (l *AuditLog) ByEntity(_ context.Context, entityID string) ([]*audit.Event, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	events := l.events[entityID]
	out := make([]*audit.Event, len(events))
	copy(out, events)
	return out, nil
}
