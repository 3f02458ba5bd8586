package commands

import (
	"context"
)

// UpdateMemberRoleCommandHandler handles role changes on active members.
type UpdateMemberRoleCommandHandler struct {
	uowFactory MembershipUoWFactory
}

// NewUpdateMemberRoleCommandHandler creates a handler for member role updates.
func NewUpdateMemberRoleCommandHandler(uowFactory MembershipUoWFactory) UpdateMemberRoleCommandHandler {
	return UpdateMemberRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns the new role. The actor must be an active admin; changing the
// role of a pending join request is a conflict.
func (h *UpdateMemberRoleCommandHandler) Handle(ctx context.Context, cmd UpdateMemberRoleCommand) error {
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

	if err := requireActiveAdmin(ctx, membershipRepo, cmd.OrgID(), cmd.ActorID(), "update member role"); err != nil {
		return err
	}

	record, err := membershipRepo.Get(ctx, cmd.OrgID(), cmd.UserID())
	if err != nil {
		return err
	}

	if err = record.ChangeRole(cmd.Role()); err != nil {
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
