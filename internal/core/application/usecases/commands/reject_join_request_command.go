package commands

import (
	"errors"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/guard"
)

var (
	ErrRejectJoinRequestCommandIsNotConstructed = errors.New(
		"RejectJoinRequestCommand must be created via NewRejectJoinRequestCommand constructor",
	)
)

// RejectJoinRequestCommand represents an admin declining a pending join
// request. The record is removed; the user may request again later.
type RejectJoinRequestCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	orgID   kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectJoinRequestCommand creates a command to decline a join request.
func NewRejectJoinRequestCommand(
	actorID kernel.UUID, orgID kernel.UUID, userID kernel.UUID,
) (RejectJoinRequestCommand, error) {
	command := RejectJoinRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		command.setOrgID(orgID),
		command.setUserID(userID),
	); err != nil {
		return RejectJoinRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectJoinRequestCommand) Validate() error {
	return c.guard.Validate(ErrRejectJoinRequestCommandIsNotConstructed)
}

// ActorID returns the declining admin.
func (c RejectJoinRequestCommand) ActorID() kernel.UUID {
	return c.actorID
}

// OrgID returns the organization.
func (c RejectJoinRequestCommand) OrgID() kernel.UUID {
	return c.orgID
}

// UserID returns the user whose request is declined.
func (c RejectJoinRequestCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *RejectJoinRequestCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *RejectJoinRequestCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *RejectJoinRequestCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
