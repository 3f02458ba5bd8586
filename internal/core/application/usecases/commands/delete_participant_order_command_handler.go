package commands

import (
	"context"

	"tacoshare/internal/pkg/errs"
)

// DeleteParticipantOrderCommandHandler handles removal of a participant order
// from an open cart.
type DeleteParticipantOrderCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewDeleteParticipantOrderCommandHandler creates a handler for participant
// order deletion.
func NewDeleteParticipantOrderCommandHandler(uowFactory CartUoWFactory) DeleteParticipantOrderCommandHandler {
	return DeleteParticipantOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the participant order after checking that the cart is still
// open, the order belongs to it, and the actor is its owner or the leader.
func (h *DeleteParticipantOrderCommandHandler) Handle(ctx context.Context, cmd DeleteParticipantOrderCommand) error {
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

	groupOrder, err := uow.GroupOrderRepository().Get(ctx, cmd.GroupOrderID())
	if err != nil {
		return err
	}
	if !groupOrder.IsOpen() {
		return errs.NewConflictError("group order", "is already locked")
	}

	participantOrderRepo := uow.ParticipantOrderRepository()
	participantOrder, err := participantOrderRepo.Get(ctx, cmd.ParticipantOrderID())
	if err != nil {
		return err
	}
	if !participantOrder.GroupOrderID().IsEqual(cmd.GroupOrderID()) {
		return errs.NewObjectNotFoundError("participantOrderID", cmd.ParticipantOrderID().String())
	}

	if err = groupOrder.AuthorizeEdit(cmd.ActorID(), participantOrder.OwnerID()); err != nil {
		return err
	}

	if err = participantOrderRepo.Delete(ctx, cmd.ParticipantOrderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
