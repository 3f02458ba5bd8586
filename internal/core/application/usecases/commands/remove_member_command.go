package commands

import (
	"errors"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/guard"
)

var (
	ErrRemoveMemberCommandIsNotConstructed = errors.New(
		"RemoveMemberCommand must be created via NewRemoveMemberCommand constructor",
	)
)

// RemoveMemberCommand represents an admin removing a member from the
// organization.
type RemoveMemberCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	orgID   kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveMemberCommand creates a command to remove a member.
func NewRemoveMemberCommand(
	actorID kernel.UUID, orgID kernel.UUID, userID kernel.UUID,
) (RemoveMemberCommand, error) {
	command := RemoveMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		command.setOrgID(orgID),
		command.setUserID(userID),
	); err != nil {
		return RemoveMemberCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveMemberCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMemberCommandIsNotConstructed)
}

// ActorID returns the removing admin.
func (c RemoveMemberCommand) ActorID() kernel.UUID {
	return c.actorID
}

// OrgID returns the organization.
func (c RemoveMemberCommand) OrgID() kernel.UUID {
	return c.orgID
}

// UserID returns the member being removed.
func (c RemoveMemberCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *RemoveMemberCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *RemoveMemberCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *RemoveMemberCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
