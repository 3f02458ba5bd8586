package commands

import (
	"context"
	"errors"

	"tacoshare/internal/core/domain/model/membership"
	"tacoshare/internal/pkg/errs"
)

// DirectAddMemberCommandHandler handles admin-initiated member additions.
type DirectAddMemberCommandHandler struct {
	uowFactory MembershipUoWFactory
}

// NewDirectAddMemberCommandHandler creates a handler for direct member additions.
func NewDirectAddMemberCommandHandler(uowFactory MembershipUoWFactory) DirectAddMemberCommandHandler {
	return DirectAddMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds the user with the given role and status. The actor must be an
// active admin. An existing record for the user is overwritten wholesale.
func (h *DirectAddMemberCommandHandler) Handle(ctx context.Context, cmd DirectAddMemberCommand) error {
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

	if err := requireActiveAdmin(ctx, membershipRepo, cmd.OrgID(), cmd.ActorID(), "add member"); err != nil {
		return err
	}

	record, err := membership.NewDirectMembership(cmd.OrgID(), cmd.UserID(), cmd.Role(), cmd.Status())
	if err != nil {
		return err
	}

	_, err = membershipRepo.Get(ctx, cmd.OrgID(), cmd.UserID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		err = membershipRepo.Add(ctx, record)
	case err == nil:
		err = membershipRepo.Update(ctx, record)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
