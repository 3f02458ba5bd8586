package commands

import (
	"context"

	"tacoshare/internal/core/ports"
	"tacoshare/internal/pkg/errs"
)

// DeliverPendingGroupOrdersCommandHandler resubmits locked carts whose first
// gateway submission did not confirm. Each pending order is retried with the
// snapshot persisted at lock time, so the storefront sees the exact payload of
// the original attempt.
type DeliverPendingGroupOrdersCommandHandler struct {
	uowFactory GroupOrderUoWFactory
	gateway    ports.FulfillmentGateway
}

// NewDeliverPendingGroupOrdersCommandHandler creates a handler for delivery retries.
func NewDeliverPendingGroupOrdersCommandHandler(
	uowFactory GroupOrderUoWFactory, gateway ports.FulfillmentGateway,
) DeliverPendingGroupOrdersCommandHandler {
	return DeliverPendingGroupOrdersCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle retries every pending group order. A gateway failure on one order
// does not stop the batch; still-failing orders simply stay pending for the
// next run.
func (h *DeliverPendingGroupOrdersCommandHandler) Handle(ctx context.Context, cmd DeliverPendingGroupOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	groupOrderRepo := uow.GroupOrderRepository()
	pending, err := groupOrderRepo.GetPendingDelivery(ctx)
	if err != nil {
		return err
	}

	for _, groupOrder := range pending {
		snapshot := groupOrder.LockedSnapshot()
		if snapshot == nil {
			return errs.NewValueIsRequiredError("lockedSnapshot")
		}

		receipt, submitErr := h.gateway.Submit(ctx, *snapshot)
		if submitErr != nil {
			continue
		}

		if err = groupOrder.MarkDelivered(receipt.ExternalOrderID, receipt.TransactionID); err != nil {
			return err
		}

		if err = groupOrderRepo.Update(ctx, groupOrder); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
