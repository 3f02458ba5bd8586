package commands

import (
	"errors"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/domain/model/taco"
	"tacoshare/internal/pkg/errs"
	"tacoshare/internal/pkg/guard"
)

var (
	ErrSubmitParticipantOrderCommandIsNotConstructed = errors.New(
		"SubmitParticipantOrderCommand must be created via NewSubmitParticipantOrderCommand constructor",
	)
)

// SubmitParticipantOrderCommand represents a member's request to put their
// order into an open group cart. Re-submission replaces the member's previous
// order wholesale.
//
// The configuration is optional: a side-items-only order carries nil. The
// actor is either the owner or the group leader submitting on the owner's
// behalf.
type SubmitParticipantOrderCommand struct { //nolint:recvcheck //using for validation
	actorID      kernel.UUID
	groupOrderID kernel.UUID
	ownerID      kernel.UUID

	configuration *taco.Configuration
	sides         []taco.SideSelection

	guard guard.ConstructorGuard
}

// NewSubmitParticipantOrderCommand creates a command to submit or replace the
// owner's order. At least a configuration or one side is required.
func NewSubmitParticipantOrderCommand(
	actorID kernel.UUID,
	groupOrderID kernel.UUID,
	ownerID kernel.UUID,
	configuration *taco.Configuration,
	sides []taco.SideSelection,
) (SubmitParticipantOrderCommand, error) {
	command := SubmitParticipantOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		command.setGroupOrderID(groupOrderID),
		command.setOwnerID(ownerID),
		command.setContent(configuration, sides),
	); err != nil {
		return SubmitParticipantOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitParticipantOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitParticipantOrderCommandIsNotConstructed)
}

// ActorID returns the member performing the submission.
func (c SubmitParticipantOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// GroupOrderID returns the target group order.
func (c SubmitParticipantOrderCommand) GroupOrderID() kernel.UUID {
	return c.groupOrderID
}

// OwnerID returns the member whose order is being submitted.
func (c SubmitParticipantOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Configuration returns the composed item, or nil for side-items-only orders.
func (c SubmitParticipantOrderCommand) Configuration() *taco.Configuration {
	return c.configuration
}

// Sides returns the side selections. The returned slice is a copy.
func (c SubmitParticipantOrderCommand) Sides() []taco.SideSelection {
	return append([]taco.SideSelection(nil), c.sides...)
}

func (c *SubmitParticipantOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *SubmitParticipantOrderCommand) setGroupOrderID(groupOrderID kernel.UUID) error {
	if err := groupOrderID.Validate(); err != nil {
		return err
	}
	c.groupOrderID = groupOrderID
	return nil
}

func (c *SubmitParticipantOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *SubmitParticipantOrderCommand) setContent(configuration *taco.Configuration, sides []taco.SideSelection) error {
	if configuration == nil && len(sides) == 0 {
		return errs.NewValueIsRequiredError("order content")
	}
	if configuration != nil {
		if err := configuration.Validate(); err != nil {
			return err
		}
	}

	c.configuration = configuration
	c.sides = append([]taco.SideSelection(nil), sides...)
	return nil
}
