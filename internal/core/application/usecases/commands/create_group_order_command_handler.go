package commands

import (
	"context"

	"tacoshare/internal/core/domain/model/grouporder"
)

// CreateGroupOrderCommandHandler handles the business logic for opening a
// shared cart.
type CreateGroupOrderCommandHandler struct {
	uowFactory GroupOrderUoWFactory
}

// NewCreateGroupOrderCommandHandler creates a handler for group order creation.
func NewCreateGroupOrderCommandHandler(uowFactory GroupOrderUoWFactory) CreateGroupOrderCommandHandler {
	return CreateGroupOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle opens the group order in Open status with the command's leader.
func (h *CreateGroupOrderCommandHandler) Handle(ctx context.Context, cmd CreateGroupOrderCommand) error {
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

	groupOrder, err := grouporder.NewGroupOrder(cmd.GroupOrderID(), cmd.LeaderID(), cmd.Name(), cmd.Window())
	if err != nil {
		return err
	}

	if err = uow.GroupOrderRepository().Add(ctx, groupOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
