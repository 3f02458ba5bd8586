package commands

import (
	"context"
)

// AcceptJoinRequestCommandHandler handles approval of pending join requests.
type AcceptJoinRequestCommandHandler struct {
	uowFactory MembershipUoWFactory
}

// NewAcceptJoinRequestCommandHandler creates a handler for join request approvals.
func NewAcceptJoinRequestCommandHandler(uowFactory MembershipUoWFactory) AcceptJoinRequestCommandHandler {
	return AcceptJoinRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle activates the pending membership, keeping its role unchanged. The
// actor must be an active admin; accepting a non-pending record is a conflict.
func (h *AcceptJoinRequestCommandHandler) Handle(ctx context.Context, cmd AcceptJoinRequestCommand) error {
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

	membershipRepo := uow.MembershipRepository()

	if err := requireActiveAdmin(ctx, membershipRepo, cmd.OrgID(), cmd.ActorID(), "accept join request"); err != nil {
		return err
	}

	record, err := membershipRepo.Get(ctx, cmd.OrgID(), cmd.UserID())
	if err != nil {
		return err
	}

	if err = record.Accept(); err != nil {
		return err
	}

	if err = membershipRepo.Update(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
