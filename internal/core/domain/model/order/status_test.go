package order_test

import (
	"fmt"
	"testing"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Approved))
		assert.Equal(t, 3, int(order.Shipping))
		assert.Equal(t, 4, int(order.Completed))
		assert.Equal(t, 5, int(order.Cancelled))
		assert.Equal(t, 6, int(order.Refunded))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Approved,
			order.Shipping,
			order.Completed,
			order.Cancelled,
			order.Refunded,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		err := order.Status(42).Validate()
		require.Error(t, err)
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return status names", func(t *testing.T) {
		assert.Equal(t, "Pending", order.Pending.String())
		assert.Equal(t, "Approved", order.Approved.String())
		assert.Equal(t, "Shipping", order.Shipping.String())
		assert.Equal(t, "Completed", order.Completed.String())
		assert.Equal(t, "Cancelled", order.Cancelled.String())
		assert.Equal(t, "Refunded", order.Refunded.String())
	})

	t.Run("should return Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Unknown.String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid names", func(t *testing.T) {
		status, err := order.StatusFromString("Shipping")

		require.NoError(t, err)
		assert.Equal(t, order.Shipping, status)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("Delivered")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Transitions(t *testing.T) {
	all := []order.Status{
		order.Pending,
		order.Approved,
		order.Shipping,
		order.Completed,
		order.Cancelled,
		order.Refunded,
	}

	type transition struct {
		name    string
		apply   func(order.Status) (order.Status, error)
		allowed map[order.Status]order.Status
	}

	transitions := []transition{
		{
			name:    "approve",
			apply:   order.Status.Approve,
			allowed: map[order.Status]order.Status{order.Pending: order.Approved},
		},
		{
			name:    "ship",
			apply:   order.Status.Ship,
			allowed: map[order.Status]order.Status{order.Approved: order.Shipping},
		},
		{
			name:    "complete",
			apply:   order.Status.Complete,
			allowed: map[order.Status]order.Status{order.Shipping: order.Completed},
		},
		{
			name:    "confirm-receipt",
			apply:   order.Status.ConfirmReceipt,
			allowed: map[order.Status]order.Status{order.Shipping: order.Completed},
		},
		{
			name:  "cancel by staff",
			apply: order.Status.CancelByStaff,
			allowed: map[order.Status]order.Status{
				order.Pending:  order.Cancelled,
				order.Approved: order.Cancelled,
			},
		},
		{
			name:    "cancel by customer",
			apply:   order.Status.CancelByCustomer,
			allowed: map[order.Status]order.Status{order.Pending: order.Cancelled},
		},
		{
			name:    "refund",
			apply:   order.Status.Refund,
			allowed: map[order.Status]order.Status{order.Completed: order.Refunded},
		},
	}

	for _, tr := range transitions {
		t.Run(tr.name, func(t *testing.T) {
			for _, from := range all {
				target, ok := tr.allowed[from]
				if ok {
					t.Run(fmt.Sprintf("allows %s", from), func(t *testing.T) {
						next, err := tr.apply(from)
						require.NoError(t, err)
						assert.Equal(t, target, next)
					})
					continue
				}

				t.Run(fmt.Sprintf("rejects %s", from), func(t *testing.T) {
					_, err := tr.apply(from)
					require.Error(t, err)
					require.ErrorIs(t, err, errs.ErrInvalidTransition)
				})
			}
		})
	}
}

func TestStatus_FinalStates(t *testing.T) {
	t.Run("Cancelled allows no further transitions", func(t *testing.T) {
		_, err := order.Cancelled.Approve()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		_, err = order.Cancelled.Refund()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("Refunded allows no further transitions", func(t *testing.T) {
		_, err := order.Refunded.CancelByStaff()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		_, err = order.Refunded.Complete()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}
