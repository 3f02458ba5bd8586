package commands

import (
	"context"
)

// RepairAdminCommandHandler runs the bootstrap repair as a standalone command.
type RepairAdminCommandHandler struct {
	uowFactory MembershipUoWFactory
}

// NewRepairAdminCommandHandler creates a handler for the bootstrap repair.
func NewRepairAdminCommandHandler(uowFactory MembershipUoWFactory) RepairAdminCommandHandler {
	return RepairAdminCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle promotes the actor to active admin iff the organization currently has
// zero active admins. Repeated invocations are no-ops once an admin exists, so
// exactly one caller wins under concurrency.
func (h *RepairAdminCommandHandler) Handle(ctx context.Context, cmd RepairAdminCommand) error {
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

	if _, err := repairAdminIfMissing(ctx, uow.MembershipRepository(), cmd.OrgID(), cmd.ActorID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
