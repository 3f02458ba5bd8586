package commands

import (
	"context"
	"errors"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/domain/model/membership"
	"tacoshare/internal/core/ports"
	"tacoshare/internal/pkg/errs"
)

// requireActiveAdmin ensures the actor is an active admin of the organization.
// A missing membership is reported as a NotAuthorized error, not as NotFound,
// so outsiders cannot probe which organizations exist.
func requireActiveAdmin(
	ctx context.Context, repo ports.MembershipRepository, orgID kernel.UUID, actorID kernel.UUID, operation string,
) error {
	actorMembership, err := repo.Get(ctx, orgID, actorID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewNotAuthorizedError(operation, actorID.String())
	}
	if err != nil {
		return err
	}
	if !actorMembership.IsActiveAdmin() {
		return errs.NewNotAuthorizedError(operation, actorID.String())
	}
	return nil
}

// repairAdminIfMissing grants the actor an active admin membership when the
// organization has no active admin left. The check-and-grant runs inside the
// caller's transaction, so concurrent invocations cannot both promote.
//
// Returns whether the actor was promoted. When the actor already holds a
// record (for example a pending join request) the record is activated and
// promoted in place, keeping the composite key unique.
func repairAdminIfMissing(
	ctx context.Context, repo ports.MembershipRepository, orgID kernel.UUID, actorID kernel.UUID,
) (bool, error) {
	activeAdmins, err := repo.CountActiveAdmins(ctx, orgID)
	if err != nil {
		return false, err
	}
	if activeAdmins > 0 {
		return false, nil
	}

	existing, err := repo.Get(ctx, orgID, actorID)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		promoted, newErr := membership.NewDirectMembership(
			orgID, actorID, membership.RoleAdmin, membership.StatusActive)
		if newErr != nil {
			return false, newErr
		}
		if err = repo.Add(ctx, promoted); err != nil {
			return false, err
		}
	case err != nil:
		return false, err
	default:
		if existing.IsPending() {
			if err = existing.Accept(); err != nil {
				return false, err
			}
		}
		if err = existing.ChangeRole(membership.RoleAdmin); err != nil {
			return false, err
		}
		if err = repo.Update(ctx, existing); err != nil {
			return false, err
		}
	}

	return true, nil
}
