package commands

import (
	"context"
	"sync"
	"time"

	"orderflow/internal/core/domain/model/kernel"
)

// BulkUpdateResult is the transient outcome of one bulk invocation.
// It is the normal result shape for partial failure: callers inspect the
// counts instead of expecting an all-or-nothing error.
type BulkUpdateResult struct {
	// Successful counts orders whose transition was committed.
	Successful int

	// Failed counts orders whose transition was rejected or timed out.
	Failed int

	// Errors maps each failed order id to its error description.
	// Keying by order id lets callers attribute every failure to the
	// order that caused it.
	Errors map[string]string
}

// BulkUpdateOrdersCommandHandler fans a batch out to concurrent single-order
// transitions and aggregates the outcomes.
//
// Every order runs in its own goroutine with its own unit of work; one
// order's failure never aborts, delays or rolls back its siblings. The
// handler returns only after every dispatched task has settled. Relative
// completion order across order ids is unspecified; writes to the same id
// are serialized by the order store's version check.
//
// Example:
//
//	handler := NewBulkUpdateOrdersCommandHandler(updateHandler, 30*time.Second)
//	cmd, _ := NewBulkUpdateOrdersCommand(ids, "staff-7", ApproveChange{})
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // the command itself was malformed
//	}
//	log.Printf("approved %d of %d orders", result.Successful, len(ids))
type BulkUpdateOrdersCommandHandler struct {
	updateHandler UpdateOrderStatusCommandHandler

	// perOrderTimeout bounds each task so one unresponsive order cannot
	// block the whole batch. Zero disables the bound.
	perOrderTimeout time.Duration
}

// NewBulkUpdateOrdersCommandHandler creates a bulk coordinator delegating
// each order to the given single-order handler.
func NewBulkUpdateOrdersCommandHandler(
	updateHandler UpdateOrderStatusCommandHandler,
	perOrderTimeout time.Duration,
) BulkUpdateOrdersCommandHandler {
	return BulkUpdateOrdersCommandHandler{
		updateHandler:   updateHandler,
		perOrderTimeout: perOrderTimeout,
	}
}

// Handle dispatches one task per order id and waits for all of them.
// The returned error is non-nil only when the command itself is invalid;
// per-order failures are reported through the result.
func (h BulkUpdateOrdersCommandHandler) Handle(
	ctx context.Context,
	command BulkUpdateOrdersCommand,
) (BulkUpdateResult, error) {
	if err := command.Validate(); err != nil {
		return BulkUpdateResult{}, err
	}

	result := BulkUpdateResult{
		Errors: make(map[string]string),
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for _, orderID := range command.OrderIDs() {
		wg.Add(1)

		go func(orderID kernel.UUID) {
			defer wg.Done()

			err := h.updateOne(ctx, orderID, command)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				result.Errors[orderID.String()] = err.Error()
				return
			}
			result.Successful++
		}(orderID)
	}

	wg.Wait()

	return result, nil
}

func (h BulkUpdateOrdersCommandHandler) updateOne(
	ctx context.Context,
	orderID kernel.UUID,
	command BulkUpdateOrdersCommand,
) error {
	if h.perOrderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.perOrderTimeout)
		defer cancel()
	}

	cmd, err := NewUpdateOrderStatusCommand(orderID, command.ActorID(), command.Change())
	if err != nil {
		return err
	}

	_, err = h.updateHandler.Handle(ctx, cmd)
	return err
}
