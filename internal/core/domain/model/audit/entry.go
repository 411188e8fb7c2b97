// Package audit contains the append-only audit trail entry recorded for
// every successful order transition. Entries are immutable: they are created
// once and never updated or deleted.
package audit

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created via NewEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Entry records one attempted order transition for traceability: which
// action was applied to which order, by whom, when, and with what payload.
type Entry struct {
	id         kernel.UUID
	orderID    kernel.UUID
	action     string
	actorID    string
	occurredAt time.Time
	payload    map[string]string

	isConstructed bool
}

// NewEntry creates an audit entry for an order transition.
// The payload carries action-specific details (tracking number, reason, amount)
// and may be nil.
func NewEntry(orderID kernel.UUID, action, actorID string, payload map[string]string) (Entry, error) {
	if err := orderID.Validate(); err != nil {
		return Entry{}, err
	}
	if action == "" {
		return Entry{}, errs.NewValueIsRequiredError("action")
	}
	if actorID == "" {
		return Entry{}, errs.NewValueIsRequiredError("actor id")
	}

	copied := make(map[string]string, len(payload))
	for k, v := range payload {
		copied[k] = v
	}

	return Entry{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		action:        action,
		actorID:       actorID,
		occurredAt:    time.Now().UTC(),
		payload:       copied,
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs an entry from persistence.
func RestoreEntry(
	id, orderID kernel.UUID,
	action, actorID string,
	occurredAt time.Time,
	payload map[string]string,
) (Entry, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return Entry{}, err
	}

	return Entry{
		id:            id,
		orderID:       orderID,
		action:        action,
		actorID:       actorID,
		occurredAt:    occurredAt,
		payload:       payload,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was created through a constructor.
func (e Entry) Validate() error {
	if !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e Entry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the identifier of the order the transition applied to.
func (e Entry) OrderID() kernel.UUID {
	return e.orderID
}

// Action returns the transition action name.
func (e Entry) Action() string {
	return e.action
}

// ActorID returns the acting staff or customer identifier.
func (e Entry) ActorID() string {
	return e.actorID
}

// OccurredAt returns the transition timestamp.
func (e Entry) OccurredAt() time.Time {
	return e.occurredAt
}

// Payload returns a copy of the action-specific details.
func (e Entry) Payload() map[string]string {
	copied := make(map[string]string, len(e.payload))
	for k, v := range e.payload {
		copied[k] = v
	}
	return copied
}
