package commands

import (
	"context"
)

// RemoveMemberCommandHandler handles member removals.
type RemoveMemberCommandHandler struct {
	uowFactory MembershipUoWFactory
}

// NewRemoveMemberCommandHandler creates a handler for member removals.
func NewRemoveMemberCommandHandler(uowFactory MembershipUoWFactory) RemoveMemberCommandHandler {
	return RemoveMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the member's record. The actor must be an active admin.
// Removing the last admin is permitted; the bootstrap repair restores
// administrability on the next qualifying access.
func (h *RemoveMemberCommandHandler) Handle(ctx context.Context, cmd RemoveMemberCommand) error {
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

	if err := requireActiveAdmin(ctx, membershipRepo, cmd.OrgID(), cmd.ActorID(), "remove member"); err != nil {
		return err
	}

	// Ensure the record exists so a bogus user id surfaces as NotFound.
	if _, err := membershipRepo.Get(ctx, cmd.OrgID(), cmd.UserID()); err != nil {
		return err
	}

	if err := membershipRepo.Remove(ctx, cmd.OrgID(), cmd.UserID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
