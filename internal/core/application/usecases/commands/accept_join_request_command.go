package commands

import (
	"errors"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/guard"
)

var (
	ErrAcceptJoinRequestCommandIsNotConstructed = errors.New(
		"AcceptJoinRequestCommand must be created via NewAcceptJoinRequestCommand constructor",
	)
)

// AcceptJoinRequestCommand represents an admin approving a pending join request.
type AcceptJoinRequestCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	orgID   kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptJoinRequestCommand creates a command to approve a join request.
func NewAcceptJoinRequestCommand(
	actorID kernel.UUID, orgID kernel.UUID, userID kernel.UUID,
) (AcceptJoinRequestCommand, error) {
	command := AcceptJoinRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		command.setOrgID(orgID),
		command.setUserID(userID),
	); err != nil {
		return AcceptJoinRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptJoinRequestCommand) Validate() error {
	return c.guard.Validate(ErrAcceptJoinRequestCommandIsNotConstructed)
}

// ActorID returns the approving admin.
func (c AcceptJoinRequestCommand) ActorID() kernel.UUID {
	return c.actorID
}

// OrgID returns the organization.
func (c AcceptJoinRequestCommand) OrgID() kernel.UUID {
	return c.orgID
}

// UserID returns the user whose request is approved.
func (c AcceptJoinRequestCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *AcceptJoinRequestCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *AcceptJoinRequestCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *AcceptJoinRequestCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
