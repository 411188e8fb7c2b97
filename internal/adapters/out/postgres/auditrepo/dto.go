// Package auditrepo implements the audit trail sink as an append-only
// table. Rows are inserted outside the caller's transaction and never
// updated or deleted.
package auditrepo

import (
	"encoding/json"
	"time"

	"orderflow/internal/core/domain/model/audit"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO represents the database row for one audit entry.
// The payload map is stored as a JSON document.
type EntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Action     string
	ActorID    string
	OccurredAt time.Time `gorm:"index"`
	Payload    string    `gorm:"type:jsonb"`
}

// TableName overrides GORM's default naming to use "audit_entries".
func (EntryDTO) TableName() string {
	return "audit_entries"
}

// fromDomain converts an audit entry to its database representation.
func fromDomain(entry audit.Entry) (EntryDTO, error) {
	payload, err := json.Marshal(entry.Payload())
	if err != nil {
		return EntryDTO{}, err
	}

	return EntryDTO{
		ID:         entry.ID().Bytes(),
		OrderID:    entry.OrderID().Bytes(),
		Action:     entry.Action(),
		ActorID:    entry.ActorID(),
		OccurredAt: entry.OccurredAt(),
		Payload:    string(payload),
	}, nil
}

// toDomain reconstructs an audit entry from its database row.
func toDomain(dto EntryDTO) (audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return audit.Entry{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return audit.Entry{}, err
	}

	payload := make(map[string]string)
	if dto.Payload != "" {
		if err = json.Unmarshal([]byte(dto.Payload), &payload); err != nil {
			return audit.Entry{}, err
		}
	}

	return audit.RestoreEntry(id, orderID, dto.Action, dto.ActorID, dto.OccurredAt, payload)
}
