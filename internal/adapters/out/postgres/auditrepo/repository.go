package auditrepo

import (
	"context"

	"orderflow/internal/core/domain/model/audit"
	"orderflow/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAuditSink implements ports.AuditSink using GORM.
//
// It writes on the main connection, not a caller's transaction: audit
// entries are appended after the order transition has committed and must
// not be able to roll it back.
type GormAuditSink struct {
	db *gorm.DB
}

// NewGormAuditSink creates a new GORM audit sink.
func NewGormAuditSink(db *gorm.DB) *GormAuditSink {
	return &GormAuditSink{db: db}
}

// Append inserts one audit entry.
func (s *GormAuditSink) Append(ctx context.Context, entry audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(entry)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Create(&dto).Error
}

// GetByOrder retrieves the audit trail of an order, oldest first.
func (s *GormAuditSink) GetByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]audit.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	err := s.db.WithContext(ctx).
		Order("occurred_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]audit.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
