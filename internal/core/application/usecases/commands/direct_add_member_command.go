package commands

import (
	"errors"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/domain/model/membership"
	"tacoshare/internal/pkg/guard"
)

var (
	ErrDirectAddMemberCommandIsNotConstructed = errors.New(
		"DirectAddMemberCommand must be created via NewDirectAddMemberCommand constructor",
	)
)

// DirectAddMemberCommand represents an admin adding a user with an explicit
// role and status, bypassing the request/accept round trip. An existing record
// for the user is overwritten.
type DirectAddMemberCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	orgID   kernel.UUID
	userID  kernel.UUID
	role    membership.Role
	status  membership.MemberStatus

	guard guard.ConstructorGuard
}

// NewDirectAddMemberCommand creates a command to add a member directly.
func NewDirectAddMemberCommand(
	actorID kernel.UUID,
	orgID kernel.UUID,
	userID kernel.UUID,
	role membership.Role,
	status membership.MemberStatus,
) (DirectAddMemberCommand, error) {
	command := DirectAddMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		command.setOrgID(orgID),
		command.setUserID(userID),
		command.setRole(role),
		command.setStatus(status),
	); err != nil {
		return DirectAddMemberCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DirectAddMemberCommand) Validate() error {
	return c.guard.Validate(ErrDirectAddMemberCommandIsNotConstructed)
}

// ActorID returns the admin performing the addition.
func (c DirectAddMemberCommand) ActorID() kernel.UUID {
	return c.actorID
}

// OrgID returns the target organization.
func (c DirectAddMemberCommand) OrgID() kernel.UUID {
	return c.orgID
}

// UserID returns the user being added.
func (c DirectAddMemberCommand) UserID() kernel.UUID {
	return c.userID
}

// Role returns the role to grant.
func (c DirectAddMemberCommand) Role() membership.Role {
	return c.role
}

// Status returns the status to set.
func (c DirectAddMemberCommand) Status() membership.MemberStatus {
	return c.status
}

func (c *DirectAddMemberCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *DirectAddMemberCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *DirectAddMemberCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *DirectAddMemberCommand) setRole(role membership.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *DirectAddMemberCommand) setStatus(status membership.MemberStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
