package commands

import (
	"errors"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/guard"
)

var (
	ErrRequestToJoinCommandIsNotConstructed = errors.New(
		"RequestToJoinCommand must be created via NewRequestToJoinCommand constructor",
	)
)

// RequestToJoinCommand represents a user asking to join an organization.
type RequestToJoinCommand struct { //nolint:recvcheck //using for validation
	orgID  kernel.UUID
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestToJoinCommand creates a command to file a join request.
func NewRequestToJoinCommand(orgID kernel.UUID, userID kernel.UUID) (RequestToJoinCommand, error) {
	command := RequestToJoinCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrgID(orgID),
		command.setUserID(userID),
	); err != nil {
		return RequestToJoinCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestToJoinCommand) Validate() error {
	return c.guard.Validate(ErrRequestToJoinCommandIsNotConstructed)
}

// OrgID returns the target organization.
func (c RequestToJoinCommand) OrgID() kernel.UUID {
	return c.orgID
}

// UserID returns the requesting user.
func (c RequestToJoinCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *RequestToJoinCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *RequestToJoinCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
