package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types recorded by the transaction engine.
const (
	EventOrderCreated    = "order.created"
	EventPaymentCreated  = "payment.created"
	EventPaymentRefunded = "payment.refunded"
)

// Event represents a lifecycle event for an order or payment, kept as an
// in-process audit trail so tests can assert on engine behaviour.
type Event struct {
	ID        uuid.UUID
	EntityID  string
	Type      string
	Data      map[string]any
	CreatedAt time.Time
}

// NewEvent creates an event for the given entity.
func NewEvent(entityID, eventType string, data map[string]any) *Event {
	return &Event{
		ID:        uuid.New(),
		EntityID:  entityID,
		Type:      eventType,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
}

// Log defines the interface for the audit trail.
type Log interface {
	// Append records an event
	Append(ctx context.Context, event *Event) error

	// ByEntity retrieves all events for an entity in append order
	ByEntity(ctx context.Context, entityID string) ([]*Event, error)
}
