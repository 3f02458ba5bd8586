package commands

import (
	"errors"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/pkg/guard"
)

var (
	ErrDeleteParticipantOrderCommandIsNotConstructed = errors.New(
		"DeleteParticipantOrderCommand must be created via NewDeleteParticipantOrderCommand constructor",
	)
)

// DeleteParticipantOrderCommand represents a request to remove a participant
// order from an open cart. The owner and the group leader may delete it.
type DeleteParticipantOrderCommand struct { //nolint:recvcheck //using for validation
	actorID            kernel.UUID
	groupOrderID       kernel.UUID
	participantOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteParticipantOrderCommand creates a command to delete a participant order.
func NewDeleteParticipantOrderCommand(
	actorID kernel.UUID, groupOrderID kernel.UUID, participantOrderID kernel.UUID,
) (DeleteParticipantOrderCommand, error) {
	command := DeleteParticipantOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		command.setGroupOrderID(groupOrderID),
		command.setParticipantOrderID(participantOrderID),
	); err != nil {
		return DeleteParticipantOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteParticipantOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteParticipantOrderCommandIsNotConstructed)
}

// ActorID returns the member requesting the deletion.
func (c DeleteParticipantOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// GroupOrderID returns the cart the order belongs to.
func (c DeleteParticipantOrderCommand) GroupOrderID() kernel.UUID {
	return c.groupOrderID
}

// ParticipantOrderID returns the order to delete.
func (c DeleteParticipantOrderCommand) ParticipantOrderID() kernel.UUID {
	return c.participantOrderID
}

func (c *DeleteParticipantOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *DeleteParticipantOrderCommand) setGroupOrderID(groupOrderID kernel.UUID) error {
	if err := groupOrderID.Validate(); err != nil {
		return err
	}
	c.groupOrderID = groupOrderID
	return nil
}

func (c *DeleteParticipantOrderCommand) setParticipantOrderID(participantOrderID kernel.UUID) error {
	if err := participantOrderID.Validate(); err != nil {
		return err
	}
	c.participantOrderID = participantOrderID
	return nil
}
