package commands

import (
	"context"
	"errors"

	"tacoshare/internal/core/domain/model/membership"
	"tacoshare/internal/pkg/errs"
)

// RequestToJoinCommandHandler handles join requests.
//
// The bootstrap repair runs first, inside the same transaction: when the
// organization has lost its last active admin, the requesting user is promoted
// directly instead of being parked as an unapprovable pending request. Only
// then are the duplicate checks applied.
type RequestToJoinCommandHandler struct {
	uowFactory MembershipUoWFactory
}

// NewRequestToJoinCommandHandler creates a handler for join requests.
func NewRequestToJoinCommandHandler(uowFactory MembershipUoWFactory) RequestToJoinCommandHandler {
	return RequestToJoinCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle files the join request. A user with an existing active membership
// gets an AlreadyMember conflict; an existing pending request gets AlreadyPending.
func (h *RequestToJoinCommandHandler) Handle(ctx context.Context, cmd RequestToJoinCommand) error {
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

	promoted, err := repairAdminIfMissing(ctx, membershipRepo, cmd.OrgID(), cmd.UserID())
	if err != nil {
		return err
	}
	if promoted {
		// The requester now holds an active admin membership; there is
		// nothing left to request.
		return uow.Commit(ctx)
	}

	existing, err := membershipRepo.Get(ctx, cmd.OrgID(), cmd.UserID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// No record yet; proceed.
	case err != nil:
		return err
	case existing.IsPending():
		return errs.NewConflictError("membership", "join request is already pending")
	default:
		return errs.NewConflictError("membership", "user is already a member")
	}

	joinRequest, err := membership.NewJoinRequest(cmd.OrgID(), cmd.UserID())
	if err != nil {
		return err
	}

	if err = membershipRepo.Add(ctx, joinRequest); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
