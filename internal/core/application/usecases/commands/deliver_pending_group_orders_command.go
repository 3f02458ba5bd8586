package commands

import (
	"errors"

	"tacoshare/internal/pkg/guard"
)

var (
	ErrDeliverPendingGroupOrdersCommandIsNotConstructed = errors.New(
		"DeliverPendingGroupOrdersCommand must be created via NewDeliverPendingGroupOrdersCommand constructor",
	)
)

// DeliverPendingGroupOrdersCommand triggers resubmission of every locked group
// order still awaiting gateway confirmation. This batch operation is run
// periodically by the retry job.
type DeliverPendingGroupOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewDeliverPendingGroupOrdersCommand creates a command to retry pending deliveries.
// This is a parameterless command that processes all pending group orders.
func NewDeliverPendingGroupOrdersCommand() DeliverPendingGroupOrdersCommand {
	command := DeliverPendingGroupOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
func (c *DeliverPendingGroupOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDeliverPendingGroupOrdersCommandIsNotConstructed)
}
