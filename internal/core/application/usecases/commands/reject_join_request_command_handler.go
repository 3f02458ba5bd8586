package commands

import (
	"context"

	"tacoshare/internal/pkg/errs"
)

// RejectJoinRequestCommandHandler handles rejection of pending join requests.
type RejectJoinRequestCommandHandler struct {
	uowFactory MembershipUoWFactory
}

// NewRejectJoinRequestCommandHandler creates a handler for join request rejections.
func NewRejectJoinRequestCommandHandler(uowFactory MembershipUoWFactory) RejectJoinRequestCommandHandler {
	return RejectJoinRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the pending record entirely. Rejecting an active member is a
// conflict; removal of members goes through RemoveMember instead.
func (h *RejectJoinRequestCommandHandler) Handle(ctx context.Context, cmd RejectJoinRequestCommand) error {
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

	if err := requireActiveAdmin(ctx, membershipRepo, cmd.OrgID(), cmd.ActorID(), "reject join request"); err != nil {
		return err
	}

	record, err := membershipRepo.Get(ctx, cmd.OrgID(), cmd.UserID())
	if err != nil {
		return err
	}
	if !record.IsPending() {
		return errs.NewConflictError("membership", "is not a pending join request")
	}

	if err = membershipRepo.Remove(ctx, cmd.OrgID(), cmd.UserID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
