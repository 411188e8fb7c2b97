package refund_test

import (
	"testing"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/refund"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRefund(t *testing.T) {
	t.Run("should create pending refund with processing estimate", func(t *testing.T) {
		orderID := kernel.NewUUID()
		amount, _ := kernel.NewMoney(5000)

		r, err := refund.NewRefund(orderID, amount, "damaged item", "card")

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.NoError(t, r.ID().Validate())
		assert.True(t, r.OrderID().IsEqual(orderID))
		assert.Equal(t, refund.Pending, r.Status())
		assert.Equal(t, refund.DefaultProcessingEstimate, r.ProcessingEstimate())
		assert.Equal(t, int64(5000), r.Amount().Cents())
		assert.WithinDuration(t, time.Now().UTC(), r.CreatedAt(), time.Minute)
	})

	t.Run("should require positive amount, reason and method", func(t *testing.T) {
		orderID := kernel.NewUUID()
		amount, _ := kernel.NewMoney(5000)
		zero, _ := kernel.NewMoney(0)

		_, err := refund.NewRefund(orderID, zero, "damaged", "card")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = refund.NewRefund(orderID, amount, "", "card")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = refund.NewRefund(orderID, amount, "damaged", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRefundStatus(t *testing.T) {
	t.Run("valid statuses pass validation", func(t *testing.T) {
		for _, s := range []refund.Status{refund.Pending, refund.Processing, refund.Completed} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("Unknown is invalid", func(t *testing.T) {
		require.ErrorIs(t, refund.Unknown.Validate(), errs.ErrValueIsInvalid)
	})

	t.Run("String returns names", func(t *testing.T) {
		assert.Equal(t, "Pending", refund.Pending.String())
		assert.Equal(t, "Processing", refund.Processing.String())
		assert.Equal(t, "Completed", refund.Completed.String())
		assert.Equal(t, "Unknown", refund.Status(9).String())
	})
}

func TestRestoreRefund(t *testing.T) {
	t.Run("should restore persisted refund", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		amount, _ := kernel.NewMoney(2500)
		createdAt := time.Now().UTC().Add(-time.Hour)

		r, err := refund.RestoreRefund(id, orderID, amount, "late delivery", "card",
			refund.Processing, "3-5 business days", createdAt)

		require.NoError(t, err)
		assert.True(t, r.ID().IsEqual(id))
		assert.Equal(t, refund.Processing, r.Status())
		assert.True(t, r.CreatedAt().Equal(createdAt))
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		amount, _ := kernel.NewMoney(2500)
		_, err := refund.RestoreRefund(kernel.NewUUID(), kernel.NewUUID(), amount,
			"late", "card", refund.Unknown, "", time.Now())
		require.Error(t, err)
	})

	t.Run("zero value refund fails validation", func(t *testing.T) {
		var r refund.Refund
		require.ErrorIs(t, r.Validate(), refund.ErrRefundIsNotConstructed)
	})
}
