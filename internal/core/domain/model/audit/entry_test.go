package audit_test

import (
	"testing"
	"time"

	"orderflow/internal/core/domain/model/audit"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	t.Run("should create entry with generated id and timestamp", func(t *testing.T) {
		orderID := kernel.NewUUID()

		entry, err := audit.NewEntry(orderID, "approve", "s1", map[string]string{"note": "ok"})

		require.NoError(t, err)
		require.NoError(t, entry.Validate())
		assert.NoError(t, entry.ID().Validate())
		assert.True(t, entry.OrderID().IsEqual(orderID))
		assert.Equal(t, "approve", entry.Action())
		assert.Equal(t, "s1", entry.ActorID())
		assert.WithinDuration(t, time.Now().UTC(), entry.OccurredAt(), time.Minute)
		assert.Equal(t, map[string]string{"note": "ok"}, entry.Payload())
	})

	t.Run("payload may be nil", func(t *testing.T) {
		entry, err := audit.NewEntry(kernel.NewUUID(), "complete", "s1", nil)

		require.NoError(t, err)
		assert.Empty(t, entry.Payload())
	})

	t.Run("payload is copied, not shared", func(t *testing.T) {
		payload := map[string]string{"reason": "damaged"}
		entry, err := audit.NewEntry(kernel.NewUUID(), "refund", "s1", payload)
		require.NoError(t, err)

		payload["reason"] = "mutated"

		assert.Equal(t, "damaged", entry.Payload()["reason"])
	})

	t.Run("should require action and actor", func(t *testing.T) {
		_, err := audit.NewEntry(kernel.NewUUID(), "", "s1", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = audit.NewEntry(kernel.NewUUID(), "approve", "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require valid order id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := audit.NewEntry(zero, "approve", "s1", nil)
		require.Error(t, err)
	})
}

func TestEntry_Validate(t *testing.T) {
	t.Run("zero value entry is rejected", func(t *testing.T) {
		var entry audit.Entry
		require.ErrorIs(t, entry.Validate(), audit.ErrEntryIsNotConstructed)
	})
}

func TestRestoreEntry(t *testing.T) {
	t.Run("should restore persisted entry", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		occurredAt := time.Now().UTC().Add(-time.Hour)

		entry, err := audit.RestoreEntry(id, orderID, "ship", "s2", occurredAt, map[string]string{"trackingNumber": "TRK-1"})

		require.NoError(t, err)
		assert.True(t, entry.ID().IsEqual(id))
		assert.True(t, entry.OccurredAt().Equal(occurredAt))
		assert.Equal(t, "TRK-1", entry.Payload()["trackingNumber"])
	})
}
