package commands

import (
	"errors"

	"tacoshare/internal/core/domain/model/kernel"
	"tacoshare/internal/core/ports"
	"tacoshare/internal/pkg/errs"
	"tacoshare/internal/pkg/guard"
)

var (
	ErrLockGroupOrderCommandIsNotConstructed = errors.New(
		"LockGroupOrderCommand must be created via NewLockGroupOrderCommand constructor",
	)
)

// LockGroupOrderCommand represents the leader's request to freeze the cart and
// hand it to the fulfillment gateway.
type LockGroupOrderCommand struct { //nolint:recvcheck //using for validation
	actorID      kernel.UUID
	groupOrderID kernel.UUID
	details      ports.Details

	guard guard.ConstructorGuard
}

// NewLockGroupOrderCommand creates a command to lock a group order. The
// handover details must carry a customer name and phone; delivery mode
// requires an address.
func NewLockGroupOrderCommand(
	actorID kernel.UUID, groupOrderID kernel.UUID, details ports.Details,
) (LockGroupOrderCommand, error) {
	command := LockGroupOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		command.setGroupOrderID(groupOrderID),
		command.setDetails(details),
	); err != nil {
		return LockGroupOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c LockGroupOrderCommand) Validate() error {
	return c.guard.Validate(ErrLockGroupOrderCommandIsNotConstructed)
}

// ActorID returns the member requesting the lock.
func (c LockGroupOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// GroupOrderID returns the cart to lock.
func (c LockGroupOrderCommand) GroupOrderID() kernel.UUID {
	return c.groupOrderID
}

// Details returns the handover details frozen into the snapshot.
func (c LockGroupOrderCommand) Details() ports.Details {
	return c.details
}

func (c *LockGroupOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *LockGroupOrderCommand) setGroupOrderID(groupOrderID kernel.UUID) error {
	if err := groupOrderID.Validate(); err != nil {
		return err
	}
	c.groupOrderID = groupOrderID
	return nil
}

func (c *LockGroupOrderCommand) setDetails(details ports.Details) error {
	if details.CustomerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if details.CustomerPhone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	if details.Mode != ports.DeliveryModePickup && details.Mode != ports.DeliveryModeDelivery {
		return errs.NewValueIsInvalidError("deliveryMode")
	}
	if details.Mode == ports.DeliveryModeDelivery && details.Address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.details = details
	return nil
}
