package commands

import (
	"errors"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/domain/model/membership"
	"tacoshare/internal/pkg/guard"
)

var (
	ErrUpdateMemberRoleCommandIsNotConstructed = errors.New(
		"UpdateMemberRoleCommand must be created via NewUpdateMemberRoleCommand constructor",
	)
)

// UpdateMemberRoleCommand represents an admin changing an active member's role.
type UpdateMemberRoleCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	orgID   kernel.UUID
	userID  kernel.UUID
	role    membership.Role

	guard guard.ConstructorGuard
}

// NewUpdateMemberRoleCommand creates a command to change a member's role.
func NewUpdateMemberRoleCommand(
	actorID kernel.UUID, orgID kernel.UUID, userID kernel.UUID, role membership.Role,
) (UpdateMemberRoleCommand, error) {
	command := UpdateMemberRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		command.setOrgID(orgID),
		command.setUserID(userID),
		command.setRole(role),
	); err != nil {
		return UpdateMemberRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMemberRoleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMemberRoleCommandIsNotConstructed)
}

// ActorID returns the admin changing the role.
func (c UpdateMemberRoleCommand) ActorID() kernel.UUID {
	return c.actorID
}

// OrgID returns the organization.
func (c UpdateMemberRoleCommand) OrgID() kernel.UUID {
	return c.orgID
}

// UserID returns the member whose role changes.
func (c UpdateMemberRoleCommand) UserID() kernel.UUID {
	return c.userID
}

// Role returns the new role.
func (c UpdateMemberRoleCommand) Role() membership.Role {
	return c.role
}

func (c *UpdateMemberRoleCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *UpdateMemberRoleCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *UpdateMemberRoleCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *UpdateMemberRoleCommand) setRole(role membership.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
