package commands

import (
	"context"
	"time"

	"tacoshare/internal/core/domain/model/grouporder"
	"tacoshare/internal/core/ports"
)

// LockGroupOrderCommandHandler freezes an open cart and submits it to the
// fulfillment gateway.
//
// The lock is persisted first; the gateway submission is best effort within
// the same request. When the gateway fails, the order stays locked with the
// pending-delivery flag set and the retry job resubmits the identical snapshot
// until it succeeds. This means a leader may get a successful lock response
// while the storefront confirmation arrives later.
type LockGroupOrderCommandHandler struct {
	uowFactory CartUoWFactory
	gateway    ports.FulfillmentGateway
}

// NewLockGroupOrderCommandHandler creates a handler for locking group orders.
func NewLockGroupOrderCommandHandler(
	uowFactory CartUoWFactory, gateway ports.FulfillmentGateway,
) LockGroupOrderCommandHandler {
	return LockGroupOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle locks the cart and attempts the first gateway submission.
//
// Only the leader may lock. The repository persists the transition with a
// conditional update on the stored status, so two concurrent locks cannot both
// succeed: the loser gets a Conflict error.
func (h *LockGroupOrderCommandHandler) Handle(ctx context.Context, cmd LockGroupOrderCommand) error {
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
	groupOrder, err := groupOrderRepo.Get(ctx, cmd.GroupOrderID())
	if err != nil {
		return err
	}

	participantOrders, err := uow.ParticipantOrderRepository().GetAllForGroupOrder(ctx, cmd.GroupOrderID())
	if err != nil {
		return err
	}

	snapshot, err := grouporder.BuildSnapshot(groupOrder, participantOrders)
	if err != nil {
		return err
	}
	snapshot.Customer = customerSection(cmd.Details())

	if err = groupOrder.Lock(cmd.ActorID(), snapshot); err != nil {
		return err
	}

	if err = groupOrderRepo.Lock(ctx, groupOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best-effort first submission. A gateway failure is not an error here:
	// the order is already locked and pending, and the retry job resubmits
	// the same snapshot.
	receipt, err := h.gateway.Submit(ctx, snapshot)
	if err != nil {
		return nil
	}

	return h.confirmDelivery(ctx, cmd, receipt)
}

func (h *LockGroupOrderCommandHandler) confirmDelivery(
	ctx context.Context, cmd LockGroupOrderCommand, receipt ports.Receipt,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	groupOrderRepo := uow.GroupOrderRepository()
	groupOrder, err := groupOrderRepo.Get(ctx, cmd.GroupOrderID())
	if err != nil {
		return err
	}

	if err = groupOrder.MarkDelivered(receipt.ExternalOrderID, receipt.TransactionID); err != nil {
		return err
	}

	if err = groupOrderRepo.Update(ctx, groupOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func customerSection(details ports.Details) grouporder.SnapshotCustomer {
	customer := grouporder.SnapshotCustomer{
		Name:    details.CustomerName,
		Phone:   details.CustomerPhone,
		Mode:    string(details.Mode),
		Address: details.Address,
	}
	if !details.RequestedTime.IsZero() {
		customer.RequestedTime = details.RequestedTime.Format(time.RFC3339)
	}
	return customer
}
